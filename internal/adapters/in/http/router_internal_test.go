package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitBurst(t *testing.T) {
	tests := map[string]struct {
		rps  float64
		want int
	}{
		"fraction":      {rps: 0.5, want: 1},
		"small":         {rps: 0.1, want: 1},
		"rounds up":     {rps: 1.3, want: 3},
		"whole numbers": {rps: 20, want: 40},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, rateLimitBurst(tt.rps))
		})
	}
}
