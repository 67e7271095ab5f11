package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeMarkdown(t *testing.T) {
	assert.Equal(t, "plain text", EscapeMarkdown("plain text"))
	assert.Equal(t, "\\*bold\\*", EscapeMarkdown("*bold*"))
	assert.Equal(t, "\\[link\\]\\(url\\)", EscapeMarkdown("[link](url)"))
	assert.Equal(t, "a \\- b\\.", EscapeMarkdown("a - b."))
}

func TestLimitLenShortTextUntouched(t *testing.T) {
	assert.Equal(t, "hello", LimitLen("hello", 10))
	assert.Equal(t, "hello", LimitLen("hello", 5))
}

func TestLimitLenTruncates(t *testing.T) {
	long := strings.Repeat("a", 300)

	out := LimitLen(long, 100)
	assert.True(t, strings.HasSuffix(out, " [...]"))
	assert.LessOrEqual(t, len(out), 100)
	assert.Equal(t, 100, len(out))
}

func TestLimitLenNeverSplitsRunes(t *testing.T) {
	// each rune is 3 bytes, a naive byte cut would land mid-sequence
	long := strings.Repeat("日", 100)

	out := LimitLen(long, 50)
	assert.True(t, strings.HasSuffix(out, " [...]"))
	assert.LessOrEqual(t, len(out), 50)
	for _, r := range out {
		assert.NotEqual(t, '�', r)
	}
}

func TestLimitDescrLen(t *testing.T) {
	long := strings.Repeat("x", EmbedDescrMaxLen+1)

	out := LimitDescrLen(long)
	assert.Equal(t, EmbedDescrMaxLen, len(out))
	assert.True(t, strings.HasSuffix(out, " [...]"))

	exact := strings.Repeat("x", EmbedDescrMaxLen)
	assert.Equal(t, exact, LimitDescrLen(exact))
}
