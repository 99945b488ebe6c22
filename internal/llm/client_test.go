package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mskim5976-cpu/hr-ai-system/internal/llm"

	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	calls   int
	outputs []string
	err     error
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := ""
	if f.calls <= len(f.outputs) {
		out = f.outputs[f.calls-1]
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: out}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", errors.New("not used")
}

func TestClient_Complete_FirstAttempt(t *testing.T) {
	model := &fakeModel{outputs: []string{"hello there"}}
	client := llm.NewClientWithModel(model, "test-model")

	out, err := client.Complete(context.Background(), "say hi")
	assert.NoError(t, err)
	assert.Equal(t, "hello there", out)
	assert.Equal(t, 1, model.calls)
}

func TestClient_Complete_RetriesEmptyThenSucceeds(t *testing.T) {
	model := &fakeModel{outputs: []string{"", "  ", "third time"}}
	client := llm.NewClientWithModel(model, "test-model")

	out, err := client.Complete(context.Background(), "say hi")
	assert.NoError(t, err)
	assert.Equal(t, "third time", out)
	assert.Equal(t, 3, model.calls)
}

func TestClient_Complete_GivesUpAfterThreeEmpties(t *testing.T) {
	model := &fakeModel{outputs: []string{"", "", ""}}
	client := llm.NewClientWithModel(model, "test-model")

	_, err := client.Complete(context.Background(), "say hi")
	assert.ErrorIs(t, err, llm.ErrEmptyCompletion)
	assert.Equal(t, 3, model.calls)
}

func TestClient_Complete_PropagatesUpstreamError(t *testing.T) {
	upstream := errors.New("rate limited")
	model := &fakeModel{err: upstream}
	client := llm.NewClientWithModel(model, "test-model")

	_, err := client.Complete(context.Background(), "say hi")
	assert.ErrorIs(t, err, upstream)
	assert.Equal(t, 3, model.calls)
}

func TestClient_Complete_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	model := &fakeModel{outputs: []string{"never"}}
	client := llm.NewClientWithModel(model, "test-model")

	_, err := client.Complete(ctx, "say hi")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, model.calls)
}
