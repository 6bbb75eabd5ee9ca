package sanitize

import (
	"bytes"
	stdhtml "html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdParser = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	ugcPolicy    = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

func init() {
	ugcPolicy.AllowImages()
	ugcPolicy.AddTargetBlankToFullyQualifiedLinks(true)
	ugcPolicy.RequireNoReferrerOnLinks(true)
}

// maxCommentPasses bounds how many layers of entity encoding Comment unwraps.
const maxCommentPasses = 8

// Comment strips every tag from user comments. Comments are plain text, so
// the entities bluemonday emits are decoded again. Decoding can expose new
// markup (&lt;script&gt;), so the pass repeats until the text is stable.
func Comment(text string) string {
	out := text
	for i := 0; i < maxCommentPasses; i++ {
		next := stdhtml.UnescapeString(strictPolicy.Sanitize(out))
		if next == out {
			return strings.TrimSpace(out)
		}
		out = next
	}

	// still unwrapping: leave it escaped
	return strings.TrimSpace(strictPolicy.Sanitize(out))
}

// Markdown renders a post body to safe HTML.
func Markdown(source string) string {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(source), &buf); err != nil {
		return ugcPolicy.Sanitize(source)
	}

	return ugcPolicy.Sanitize(buf.String())
}
