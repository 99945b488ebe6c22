package site_test

import (
	"testing"

	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/localdate"
	"github.com/mskim5976-cpu/hr-ai-system/internal/site"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) *localdate.Date {
	t.Helper()
	d, err := localdate.Parse(s)
	require.NoError(t, err)
	return &d
}

func TestDeriveStatus(t *testing.T) {
	today, err := localdate.Parse("2024-06-15")
	require.NoError(t, err)

	tests := []struct {
		name  string
		start *localdate.Date
		end   *localdate.Date
		want  string
	}{
		{"both dates absent", nil, nil, site.StatusInProgress},
		{"today within range", mustDate(t, "2024-01-01"), mustDate(t, "2024-12-31"), site.StatusInProgress},
		{"end equals today is inclusive", mustDate(t, "2024-01-01"), mustDate(t, "2024-06-15"), site.StatusInProgress},
		{"end yesterday", mustDate(t, "2024-01-01"), mustDate(t, "2024-06-14"), site.StatusEnded},
		{"start tomorrow", mustDate(t, "2024-06-16"), nil, site.StatusPending},
		{"start equals today", mustDate(t, "2024-06-15"), nil, site.StatusInProgress},
		{"only end in future", nil, mustDate(t, "2025-01-01"), site.StatusInProgress},
		{"only end in past", nil, mustDate(t, "2023-12-31"), site.StatusEnded},
		{"only start in past", mustDate(t, "2020-01-01"), nil, site.StatusInProgress},
		{"ended wins over pending", mustDate(t, "2024-07-01"), mustDate(t, "2024-06-01"), site.StatusEnded},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, site.DeriveStatus(tc.start, tc.end, today))
		})
	}
}

func TestDeriveStatus_Deterministic(t *testing.T) {
	today := localdate.Today()
	start := mustDate(t, "2024-01-01")
	end := mustDate(t, "2024-12-31")

	first := site.DeriveStatus(start, end, today)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, site.DeriveStatus(start, end, today))
	}
}
