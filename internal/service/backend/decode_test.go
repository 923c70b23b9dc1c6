package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeNonFinite(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a": NaN}`, `{"a": null}`},
		{`[Infinity, -Infinity, 1]`, `[null, null, 1]`},
		{`{"label": "NaN stays", "v": NaN}`, `{"label": "NaN stays", "v": null}`},
		{`{"s": "esc \" NaN"}`, `{"s": "esc \" NaN"}`},
		{`{"v": -1.5}`, `{"v": -1.5}`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, string(sanitizeNonFinite([]byte(tt.in))), tt.in)
	}
}
