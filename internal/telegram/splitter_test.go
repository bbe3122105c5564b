package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessageShortTextUntouched(t *testing.T) {
	parts := SplitMessage("hello", 100)

	require.Len(t, parts, 1)
	assert.Equal(t, "hello", parts[0])
}

func TestSplitMessageRespectsLimit(t *testing.T) {
	text := strings.Repeat("a", 250)

	parts := SplitMessage(text, 100)

	require.Len(t, parts, 3)
	for _, part := range parts {
		assert.LessOrEqual(t, utf8.RuneCountInString(part), 100)
	}
	assert.Equal(t, text, strings.Join(parts, ""))
}

func TestSplitMessagePrefersNewline(t *testing.T) {
	text := strings.Repeat("a", 80) + "\n" + strings.Repeat("b", 80)

	parts := SplitMessage(text, 100)

	require.Len(t, parts, 2)
	assert.Equal(t, strings.Repeat("a", 80)+"\n", parts[0])
	assert.Equal(t, strings.Repeat("b", 80), parts[1])
}

func TestSplitMessageIgnoresEarlyNewline(t *testing.T) {
	// A newline in the first half is not a good split point.
	text := "ab\n" + strings.Repeat("c", 150)

	parts := SplitMessage(text, 100)

	require.Len(t, parts, 2)
	assert.Equal(t, 100, utf8.RuneCountInString(parts[0]))
}

func TestSplitMessageMultibyte(t *testing.T) {
	text := strings.Repeat("я", 150)

	parts := SplitMessage(text, 100)

	require.Len(t, parts, 2)
	assert.Equal(t, 100, utf8.RuneCountInString(parts[0]))
	assert.Equal(t, 50, utf8.RuneCountInString(parts[1]))
	assert.Equal(t, text, strings.Join(parts, ""))
}
