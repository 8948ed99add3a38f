package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern_EscapesMetacharacters(t *testing.T) {
	tests := []struct {
		name string
		term string
		want string
	}{
		{"plain term", "Centro", "%Centro%"},
		{"percent is literal", "100%", `%100\%%`},
		{"underscore is literal", "rua_velha", `%rua\_velha%`},
		{"backslash is literal", `a\b`, `%a\\b%`},
		{"mixed", `50%_off\`, `%50\%\_off\\%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, likePattern(tt.term))
		})
	}
}
