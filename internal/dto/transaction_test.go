package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionFilterParamsNormalize(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, DefaultPage, DefaultLimit},
		{"negative page", -5, 10, DefaultPage, 10},
		{"limit above cap", 2, 1000, 2, MaxLimit},
		{"valid passthrough", 3, 50, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := TransactionFilterParams{Page: tt.page, Limit: tt.limit}
			p.Normalize()
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}
