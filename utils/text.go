package utils

import (
	"strings"
	"unicode/utf8"
)

const (
	// EmbedTitleMaxLen is Discord's hard limit for embed titles.
	EmbedTitleMaxLen = 256
	// EmbedDescrMaxLen is Discord's hard limit for embed descriptions.
	EmbedDescrMaxLen = 2048
)

const shortenedMarker = " [...]"

var markdownEscaper = strings.NewReplacer(
	"`", "\\`",
	"*", "\\*",
	"_", "\\_",
	"{", "\\{",
	"}", "\\}",
	"[", "\\[",
	"]", "\\]",
	"(", "\\(",
	")", "\\)",
	"#", "\\#",
	"+", "\\+",
	"-", "\\-",
	".", "\\.",
	"!", "\\!",
)

// EscapeMarkdown escapes every character with special meaning in Discord
// markdown. Apply to untrusted text only, never to URLs.
func EscapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}

// LimitLen truncates text to at most limit bytes, appending a marker when
// truncation happens. The cut never splits a multi-byte UTF-8 sequence, so
// the result can be slightly shorter than the limit.
func LimitLen(text string, limit int) string {
	if len(text) <= limit {
		return text
	}

	cut := limit - len(shortenedMarker)
	if cut < 0 {
		cut = 0
	}
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}

	return text[:cut] + shortenedMarker
}

// LimitDescrLen is LimitLen bound to the embed description ceiling.
func LimitDescrLen(text string) string {
	return LimitLen(text, EmbedDescrMaxLen)
}
