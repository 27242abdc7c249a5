// Package format turns raw assistant text into display-ready markup.
// User-authored text is never run through it.
package format

import (
	"regexp"
	"strings"
)

const (
	strongOpen  = `<strong class="font-semibold text-yellow-200">`
	strongClose = `</strong>`
	bulletSpan  = `<span class="inline-block w-2 h-2 bg-yellow-300 rounded-full mr-2 mt-2"></span>`
	emojiOpen   = `<span class="text-lg">`
	emojiClose  = `</span>`
)

var (
	boldRe = regexp.MustCompile(`\*\*(.*?)\*\*`)
	// "â€¢" is the UTF-8 bullet re-read as Windows-1252; replies containing
	// it must format the same as a clean bullet.
	bulletRe = regexp.MustCompile(`(?:•|â€¢)\s`)
	emojiRe  = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}\x{2600}-\x{26FF}\x{2700}-\x{27BF}]`)
	starRe   = regexp.MustCompile(`\*+`)
	spaceRe  = regexp.MustCompile(`\s+`)
)

// AssistantMessage applies the display transformations in a fixed order;
// later steps operate on the output of earlier ones. Apply exactly once per
// raw response: the stray-asterisk cleanup makes a second pass unsafe, so
// the output must be treated as final display text.
func AssistantMessage(raw string) string {
	out := boldRe.ReplaceAllString(raw, strongOpen+"$1"+strongClose)
	out = bulletRe.ReplaceAllString(out, bulletSpan)
	out = strings.ReplaceAll(out, "\n", "<br>")
	out = emojiRe.ReplaceAllString(out, emojiOpen+"$0"+emojiClose)
	out = starRe.ReplaceAllString(out, "")
	out = spaceRe.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}
