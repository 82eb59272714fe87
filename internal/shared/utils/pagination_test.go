package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"replydesk/internal/shared/constants"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"valid values pass through", 2, 50, 2, 50},
		{"zero page falls back to default", 0, 50, constants.DefaultPage, 50},
		{"negative page falls back to default", -3, 50, constants.DefaultPage, 50},
		{"zero page size falls back to default", 2, 0, 2, constants.DefaultPageSize},
		{"oversized page size is capped", 2, 500, 2, constants.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ValidatePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 5, TotalPages(100, 20))
	assert.Equal(t, 1, TotalPages(5, 0))
}
