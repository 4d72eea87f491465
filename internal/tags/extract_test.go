package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		sep  string
		want []string
	}{
		{name: "absent", raw: nil, sep: ",", want: []string{}},
		{name: "empty string", raw: "", sep: ",", want: []string{}},
		{name: "whitespace around tags", raw: "  javascript  ,  react  ", sep: ",", want: []string{"javascript", "react"}},
		{name: "order kept", raw: "javascript, web development, programming", sep: ",", want: []string{"javascript", "web development", "programming"}},
		{name: "duplicates kept", raw: "go, web, go", sep: ",", want: []string{"go", "web", "go"}},
		{name: "empty tokens dropped", raw: "a,, b ,", sep: ",", want: []string{"a", "b"}},
		{name: "literal separator", raw: "tag1|tag2|tag3", sep: "|", want: []string{"tag1", "tag2", "tag3"}},
		{name: "separator is not a pattern", raw: "a.b.c", sep: ".", want: []string{"a", "b", "c"}},
		{name: "default separator leaves pipes", raw: "tag1|tag2|tag3", sep: ",", want: []string{"tag1|tag2|tag3"}},
		{name: "multi-character separator", raw: "go :: web", sep: "::", want: []string{"go", "web"}},
		{name: "empty separator falls back to comma", raw: "a,b", sep: "", want: []string{"a", "b"}},
		{name: "yaml sequence", raw: []any{" go ", "web", nil, 2024}, sep: ",", want: []string{"go", "web", "2024"}},
		{name: "string slice", raw: []string{"a", " b"}, sep: ",", want: []string{"a", "b"}},
		{name: "scalar", raw: 42, sep: ",", want: []string{"42"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.raw, tt.sep))
		})
	}
}
