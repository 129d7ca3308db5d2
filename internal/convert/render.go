package convert

import (
	"strings"

	"github.com/alexisbeaulieu97/jsxify/internal/component"
)

// voidElements never have children in HTML and self-close in JSX.
var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
	"input": {}, "link": {}, "meta": {}, "param": {}, "source": {}, "track": {}, "wbr": {},
}

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"{", "{'{'}",
		"}", "{'}'}",
	)
	attrEscaper    = strings.NewReplacer("&", "&amp;", `"`, "&quot;")
	commentEscaper = strings.NewReplacer("*/", "* /")
)

func isVoidElement(tag string) bool {
	_, ok := voidElements[tag]
	return ok
}

func escapeText(text string) string {
	return textEscaper.Replace(text)
}

func escapeComment(text string) string {
	return commentEscaper.Replace(text)
}

// formatAttributes renders attrs as ` name="value"` pairs, with a leading
// space when there is at least one.
func formatAttributes(attrs []component.Attribute) string {
	if len(attrs) == 0 {
		return ""
	}

	var b strings.Builder
	for _, attr := range attrs {
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		b.WriteString(`="`)
		b.WriteString(attrEscaper.Replace(attr.Value))
		b.WriteByte('"')
	}
	return b.String()
}
