package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	cases := map[string]string{
		"Düğme":    "dugme",
		"ÇELİK":    "celik",
		"València": "valencia",
		"plain":    "plain",
		"":         "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Fold(in), "Fold(%q)", in)
	}
}
