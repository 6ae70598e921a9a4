// Package render converts the constrained markdown subset used by recipe
// content (headers, bold, bullet and numbered lists, paragraphs) into display
// markup. It exists alongside the goldmark-backed pipeline because recipe
// cards accept "•" bullets and decide list ordering from the source line,
// which is outside CommonMark semantics.
package render

import (
	"regexp"
	"strings"
)

type listState int

const (
	outsideList listState = iota
	inUnorderedList
	inOrderedList
)

var (
	boldPattern      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	orderedPattern   = regexp.MustCompile(`^\d+\.\s+`)
	unorderedPattern = regexp.MustCompile(`^[-•]\s+`)
)

// RenderMarkdown renders text in a single line-oriented pass. Output is
// deterministic for identical input. Running the renderer over its own output
// is undefined; it is meant to run exactly once per display.
func RenderMarkdown(text string) string {
	var (
		out   []string
		state = outsideList
		para  []string
	)

	flushParagraph := func() {
		if len(para) == 0 {
			return
		}
		out = append(out, "<p>"+strings.Join(para, " ")+"</p>")
		para = nil
	}

	closeList := func() {
		switch state {
		case inUnorderedList:
			out = append(out, "</ul>")
		case inOrderedList:
			out = append(out, "</ol>")
		}
		state = outsideList
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			flushParagraph()
			closeList()
			continue
		}

		if level, heading, ok := matchHeader(trimmed); ok {
			flushParagraph()
			closeList()
			tag := headerTags[level]
			out = append(out, "<"+tag+">"+renderInline(heading)+"</"+tag+">")
			continue
		}

		if ordered, item, ok := matchListItem(trimmed); ok {
			flushParagraph()
			// List type follows the original source line: ordered when the
			// line starts with "<digits>. ", unordered otherwise.
			want := inUnorderedList
			open := "<ul>"
			if ordered {
				want = inOrderedList
				open = "<ol>"
			}
			if state != want {
				closeList()
				out = append(out, open)
				state = want
			}
			out = append(out, "<li>"+renderInline(item)+"</li>")
			continue
		}

		// Plain text: a non-list line ends any open list and joins the
		// current paragraph run.
		closeList()
		para = append(para, renderInline(trimmed))
	}

	flushParagraph()
	closeList()

	return strings.Join(out, "\n")
}

var headerTags = map[int]string{1: "h1", 2: "h2", 3: "h3"}

func matchHeader(line string) (level int, text string, ok bool) {
	for level = 3; level >= 1; level-- {
		prefix := strings.Repeat("#", level) + " "
		if strings.HasPrefix(line, prefix) {
			return level, strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return 0, "", false
}

func matchListItem(line string) (ordered bool, text string, ok bool) {
	if loc := orderedPattern.FindString(line); loc != "" {
		return true, strings.TrimSpace(strings.TrimPrefix(line, loc)), true
	}
	if loc := unorderedPattern.FindString(line); loc != "" {
		return false, strings.TrimSpace(strings.TrimPrefix(line, loc)), true
	}
	return false, "", false
}

func renderInline(text string) string {
	return boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
}
