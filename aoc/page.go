package aoc

import (
	"io"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/teranos/aocget/errors"
	"github.com/teranos/aocget/internal/util"
	"github.com/teranos/aocget/puzzle"
)

var titlePattern = regexp.MustCompile(`^---\s*Day\s+\d+:\s*(.*?)\s*---$`)

// Page is what the example extractor reads from a puzzle page
type Page struct {
	Title string
	Parts []Part
}

// Part is one <article class="day-desc"> of the puzzle description
type Part struct {
	Example *string // text of the first <pre><code> block
	Answer  *string // last emphasized code outside <pre>
}

// Complete reports whether both parts are visible (part one solved)
func (p *Page) Complete() bool {
	return len(p.Parts) >= 2
}

// Examples turns the page into example records. Part one's block and answer
// form the first example. Part two's answer joins it unless part two shows a
// different block of its own, which then becomes a second example.
func (p *Page) Examples() []puzzle.Example {
	if len(p.Parts) == 0 || p.Parts[0].Example == nil {
		return nil
	}

	first := p.Parts[0]
	examples := []puzzle.Example{{InputData: first.Example, AnswerA: first.Answer}}

	if len(p.Parts) > 1 {
		second := p.Parts[1]
		if second.Example != nil && *second.Example != *first.Example {
			examples = append(examples, puzzle.Example{InputData: second.Example, AnswerB: second.Answer})
		} else {
			examples[0].AnswerB = second.Answer
		}
	}

	return examples
}

// ParsePage extracts title and per-part example data from puzzle HTML.
// A page without any day-desc article is an error.
func ParsePage(r io.Reader) (*Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "invalid HTML")
	}

	articles := findAll(doc, func(n *html.Node) bool {
		return isElement(n, "article") && hasClass(n, "day-desc")
	})
	if len(articles) == 0 {
		return nil, errors.New("no puzzle description found in page")
	}

	page := &Page{}
	if h2 := findFirst(articles[0], func(n *html.Node) bool { return isElement(n, "h2") }); h2 != nil {
		page.Title = parseTitle(textContent(h2))
	}

	for _, article := range articles {
		page.Parts = append(page.Parts, parsePart(article))
	}

	return page, nil
}

func parsePart(article *html.Node) Part {
	var part Part

	if pre := findFirst(article, func(n *html.Node) bool { return isElement(n, "pre") }); pre != nil {
		block := pre
		if code := findFirst(pre, func(n *html.Node) bool { return isElement(n, "code") }); code != nil {
			block = code
		}
		part.Example = util.NonZero(textContent(block))
	}

	// <code><em>7</em></code> or <em><code>7</code></em>, outside example blocks
	answers := findAll(article, func(n *html.Node) bool {
		if n.Parent == nil || insidePre(n) {
			return false
		}
		return (isElement(n, "em") && isElement(n.Parent, "code")) ||
			(isElement(n, "code") && isElement(n.Parent, "em"))
	})
	if len(answers) > 0 {
		part.Answer = util.NonZero(strings.TrimSpace(textContent(answers[len(answers)-1])))
	}

	return part
}

// parseTitle strips the "--- Day N: " and " ---" decoration
func parseTitle(heading string) string {
	heading = strings.TrimSpace(heading)
	if m := titlePattern.FindStringSubmatch(heading); m != nil {
		return m[1]
	}
	return heading
}

func isElement(n *html.Node, tag string) bool {
	return n != nil && n.Type == html.ElementNode && n.Data == tag
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key == "class" && slices.Contains(strings.Fields(attr.Val), class) {
			return true
		}
	}
	return false
}

func insidePre(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if isElement(p, "pre") {
			return true
		}
	}
	return false
}

// findAll returns matching descendants of root in document order
func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

func findFirst(root *html.Node, match func(*html.Node) bool) *html.Node {
	if match(root) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := findFirst(c, match); n != nil {
			return n
		}
	}
	return nil
}

// textContent concatenates all text below n with entities decoded
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
