package pptx

import (
	"strings"
)

// DefaultWrapThreshold is the number of characters per line before Wrap breaks.
const DefaultWrapThreshold = 40

// WrapIndent prefixes every continuation line so it lines up under the text
// following a label such as "词根词缀：" rather than under the label itself.
const WrapIndent = "                  "

const wrapSeparator = "\n" + WrapIndent

// Wrap breaks text into lines of threshold characters, joined by a newline and
// WrapIndent. Text of threshold characters or fewer is returned unchanged, as
// is everything when threshold <= 0.
//
// The split counts runes and ignores word and grapheme boundaries, so a line
// may end mid-word or between a base letter and its combining mark.
func Wrap(text string, threshold int) string {
	if threshold <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= threshold {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + (len(runes)/threshold)*len(wrapSeparator))
	for start := 0; start < len(runes); start += threshold {
		if start > 0 {
			b.WriteString(wrapSeparator)
		}
		end := min(start+threshold, len(runes))
		b.WriteString(string(runes[start:end]))
	}
	return b.String()
}

// Unwrap removes the line breaks and indentation inserted by Wrap.
func Unwrap(text string) string {
	return strings.ReplaceAll(text, wrapSeparator, "")
}
