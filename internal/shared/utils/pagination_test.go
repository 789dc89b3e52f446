package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestValidatePageWithLimits(t *testing.T) {
	tests := []struct {
		name         string
		offset       int
		limit        int
		defaultLimit int
		maxLimit     int
		wantOffset   int
		wantLimit    int
	}{
		{
			name:         "valid values - no adjustment needed",
			offset:       40,
			limit:        20,
			defaultLimit: 20,
			maxLimit:     100,
			wantOffset:   40,
			wantLimit:    20,
		},
		{
			name:         "negative offset - clamped to zero",
			offset:       -5,
			limit:        20,
			defaultLimit: 20,
			maxLimit:     100,
			wantOffset:   0,
			wantLimit:    20,
		},
		{
			name:         "zero limit - defaults applied",
			offset:       0,
			limit:        0,
			defaultLimit: 20,
			maxLimit:     100,
			wantOffset:   0,
			wantLimit:    20,
		},
		{
			name:         "negative limit - defaults applied",
			offset:       0,
			limit:        -1,
			defaultLimit: 20,
			maxLimit:     100,
			wantOffset:   0,
			wantLimit:    20,
		},
		{
			name:         "limit exceeds cap - clamped",
			offset:       0,
			limit:        500,
			defaultLimit: 20,
			maxLimit:     100,
			wantOffset:   0,
			wantLimit:    100,
		},
		{
			name:         "limit equals cap - no clamp",
			offset:       0,
			limit:        100,
			defaultLimit: 20,
			maxLimit:     100,
			wantOffset:   0,
			wantLimit:    100,
		},
		{
			name:         "custom default applied when limit missing",
			offset:       0,
			limit:        0,
			defaultLimit: 10,
			maxLimit:     50,
			wantOffset:   0,
			wantLimit:    10,
		},
		{
			name:         "custom cap above the package fallback",
			offset:       0,
			limit:        300,
			defaultLimit: 20,
			maxLimit:     500,
			wantOffset:   0,
			wantLimit:    300,
		},
		{
			name:         "non-positive custom limits fall back to package defaults",
			offset:       0,
			limit:        0,
			defaultLimit: 0,
			maxLimit:     0,
			wantOffset:   0,
			wantLimit:    DefaultLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePageWithLimits(tt.offset, tt.limit, tt.defaultLimit, tt.maxLimit)
			if got.Offset != tt.wantOffset {
				t.Errorf("ValidatePageWithLimits().Offset = %v, want %v", got.Offset, tt.wantOffset)
			}
			if got.Limit != tt.wantLimit {
				t.Errorf("ValidatePageWithLimits().Limit = %v, want %v", got.Limit, tt.wantLimit)
			}
		})
	}
}

func TestQueryInt(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		queryParams string
		key         string
		defaultVal  int
		want        int
	}{
		{
			name:        "present and parsable",
			queryParams: "limit=25",
			key:         "limit",
			defaultVal:  0,
			want:        25,
		},
		{
			name:        "negative value passes through",
			queryParams: "offset=-10",
			key:         "offset",
			defaultVal:  0,
			want:        -10,
		},
		{
			name:        "absent - default",
			queryParams: "",
			key:         "limit",
			defaultVal:  7,
			want:        7,
		},
		{
			name:        "unparsable - default",
			queryParams: "limit=many",
			key:         "limit",
			defaultVal:  7,
			want:        7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.queryParams, nil)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			if got := QueryInt(c, tt.key, tt.defaultVal); got != tt.want {
				t.Errorf("QueryInt(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}
