package patch_test

import (
	"encoding/json"
	"testing"

	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/patch"

	"github.com/stretchr/testify/assert"
)

type testPatch struct {
	Name  patch.Field[string] `json:"name"`
	Age   patch.Field[int]    `json:"age"`
	Email patch.Field[string] `json:"email"`
}

func TestFieldStates(t *testing.T) {
	var p testPatch
	err := json.Unmarshal([]byte(`{"name":"Kim","age":null}`), &p)
	assert.NoError(t, err)

	// present with value
	assert.True(t, p.Name.Present())
	v, ok := p.Name.Value()
	assert.True(t, ok)
	assert.Equal(t, "Kim", v)

	// present, explicit null
	assert.True(t, p.Age.Present())
	assert.True(t, p.Age.IsNull())
	_, ok = p.Age.Value()
	assert.False(t, ok)

	// absent
	assert.False(t, p.Email.Present())
	assert.False(t, p.Email.IsNull())
}

func TestUnknownKeysIgnored(t *testing.T) {
	var p testPatch
	err := json.Unmarshal([]byte(`{"name":"Kim","no_such_field":1}`), &p)
	assert.NoError(t, err)
	assert.True(t, p.Name.Present())
}

func TestEmptyStringIsStillAValue(t *testing.T) {
	// The lifecycle services decide that empty means null; the field type
	// itself must not collapse the two.
	var p testPatch
	assert.NoError(t, json.Unmarshal([]byte(`{"name":""}`), &p))
	v, ok := p.Name.Value()
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestMarshalRoundTrip(t *testing.T) {
	b, err := json.Marshal(testPatch{Name: patch.Set("Lee"), Age: patch.Null[int]()})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"name":"Lee","age":null,"email":null}`, string(b))
}
