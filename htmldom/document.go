// Package htmldom implements the deboiler.Parser/Document/Node contract
// using goquery for parsing and traversal and golang.org/x/net/html for
// the underlying tree.
package htmldom

import (
	"bytes"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/globality-corp/deboiler"
)

// inlineElements do not get a line break inserted before or after their
// extracted text, keeping inline runs (links, emphasis) on one line.
var inlineElements = map[string]bool{
	"a": true, "span": true, "em": true, "strong": true, "u": true,
	"i": true, "font": true, "mark": true, "label": true, "s": true,
	"sub": true, "sup": true, "tt": true, "bdo": true, "button": true,
	"cite": true, "del": true, "b": true,
}

// blacklistTags contribute no extracted text at all, including their
// descendants.
var blacklistTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "button": true, "form": true,
}

const listIndicator = "* "

// breadcrumbSubstrings are tried in order, most restrictive first, when
// hunting for a breadcrumb trail by attribute-value substring match.
var breadcrumbSubstrings = []string{"breadcrumbs", "breadcrumb", "crumb"}

const maxBreadcrumbsLen = 200

// Parser implements deboiler.Parser.
type Parser struct{}

// New returns a Parser.
func New() *Parser { return &Parser{} }

var _ deboiler.Parser = (*Parser)(nil)

// Parse builds a Document from raw HTML bytes. goquery.NewDocumentFromReader
// tolerates malformed markup the same way a browser does; it never errors
// on content that merely looks wrong, only on genuine read failures.
func (p *Parser) Parse(rawHTML []byte) (deboiler.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(rawHTML))
	if err != nil {
		return nil, deboiler.Errorf(deboiler.EINTERNAL, "parse html: %v", err)
	}
	if len(doc.Nodes) == 0 {
		return nil, deboiler.Errorf(deboiler.EINTERNAL, "parse html: empty document")
	}
	return &Document{doc: doc}, nil
}

// Document implements deboiler.Document over a goquery-parsed tree.
type Document struct {
	doc *goquery.Document
}

var _ deboiler.Document = (*Document)(nil)

func (d *Document) Root() deboiler.Node {
	return &Node{n: d.doc.Nodes[0]}
}

// CandidateSubtrees walks the tree depth-first in document order, collecting
// every element whose tag name is in tags.
func (d *Document) CandidateSubtrees(tags map[string]struct{}) []deboiler.Node {
	var out []deboiler.Node
	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.ElementNode {
			if _, ok := tags[n.Data]; ok {
				out = append(out, &Node{n: n})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.doc.Nodes[0])
	return out
}

func (d *Document) Serialize() string {
	var buf bytes.Buffer
	_ = xhtml.Render(&buf, d.doc.Nodes[0])
	return buf.String()
}

// Clone renders the tree and re-parses it, producing a Document backed by
// an entirely separate *xhtml.Node tree. Render always emits well-formed
// markup for a tree built by this package's own Parse, so re-parsing it
// cannot fail or lose content.
func (d *Document) Clone() deboiler.Document {
	var buf bytes.Buffer
	_ = xhtml.Render(&buf, d.doc.Nodes[0])
	cloned, _ := goquery.NewDocumentFromReader(&buf)
	return &Document{doc: cloned}
}

func (d *Document) Text() string {
	body := findFirst(d.doc.Nodes[0], "body")
	if body == nil {
		return ""
	}
	var sb strings.Builder
	writeExtractedText(&sb, body)
	return normalizeString(sb.String())
}

func (d *Document) Title() string {
	t := findFirst(d.doc.Nodes[0], "title")
	if t == nil {
		return ""
	}
	return normalizeString(directText(t))
}

func (d *Document) Headings() string {
	var lines []string
	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.ElementNode && isHeadingTag(n.Data) {
			if t := strings.TrimSpace(directText(n)); t != "" {
				lines = append(lines, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.doc.Nodes[0])
	return normalizeString(strings.Join(lines, "\n"))
}

func (d *Document) Lists() string {
	var parts []string
	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.ElementNode && (n.Data == "ul" || n.Data == "ol") {
			var sb strings.Builder
			writeExtractedText(&sb, n)
			if t := strings.TrimSpace(sb.String()); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.doc.Nodes[0])
	return normalizeString(strings.Join(parts, "\n\n"))
}

// Breadcrumbs hunts for a breadcrumb trail by checking, for each element
// skipping <body> itself, whether any attribute value contains one of
// breadcrumbSubstrings, tried most-restrictive first. Among matches for
// the first substring that matches anything, the longest candidate under
// maxBreadcrumbsLen wins.
func (d *Document) Breadcrumbs() string {
	for _, needle := range breadcrumbSubstrings {
		var matches []string
		var walk func(n *xhtml.Node)
		walk = func(n *xhtml.Node) {
			if n.Type == xhtml.ElementNode && n.Data != "body" && hasAttrContaining(n, needle) {
				var sb strings.Builder
				writeExtractedText(&sb, n)
				if t := strings.TrimSpace(sb.String()); t != "" {
					matches = append(matches, t)
				}
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
		walk(d.doc.Nodes[0])

		var underCap []string
		for _, m := range matches {
			if len(m) <= maxBreadcrumbsLen {
				underCap = append(underCap, m)
			}
		}
		if len(underCap) == 0 {
			continue
		}
		sort.Slice(underCap, func(i, j int) bool { return len(underCap[i]) < len(underCap[j]) })
		return normalizeString(underCap[len(underCap)-1])
	}
	return ""
}

func hasAttrContaining(n *xhtml.Node, needle string) bool {
	for _, a := range n.Attr {
		if strings.Contains(a.Val, needle) {
			return true
		}
	}
	return false
}

func isHeadingTag(tag string) bool {
	if len(tag) != 2 || tag[0] != 'h' {
		return false
	}
	return tag[1] >= '1' && tag[1] <= '6'
}

func findFirst(n *xhtml.Node, tag string) *xhtml.Node {
	if n.Type == xhtml.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// directText returns the node's own leading text, before any element
// child — the lxml sense of Node.text.
func directText(n *xhtml.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xhtml.TextNode {
			break
		}
		sb.WriteString(c.Data)
	}
	return sb.String()
}

// writeExtractedText walks n's descendants emitting visible text, inserting
// line breaks around block-level elements and a list marker before <li>
// content, and skipping blacklisted tags entirely.
func writeExtractedText(sb *strings.Builder, n *xhtml.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xhtml.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				sb.WriteString(c.Data)
			}
		case xhtml.ElementNode:
			if blacklistTags[c.Data] {
				continue
			}
			isBlock := !inlineElements[c.Data]
			if isBlock {
				sb.WriteString("\n")
			}
			if c.Data == "li" {
				sb.WriteString(listIndicator)
			}
			if c.Data == "br" {
				sb.WriteString("\n")
			} else {
				writeExtractedText(sb, c)
			}
			if isBlock {
				sb.WriteString("\n")
			}
		}
	}
}

// normalizeString collapses entity references, applies NFKC normalization,
// squeezes spaces down to single spaces, and drops blank lines, so
// paragraphs end up separated by a single newline.
func normalizeString(text string) string {
	if text == "" {
		return ""
	}
	text = html.UnescapeString(text)
	text = norm.NFKC.String(text)
	text = strings.ReplaceAll(text, "\t", " ")

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = collapseSpaces(strings.TrimSpace(line))
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func collapseSpaces(s string) string {
	var sb strings.Builder
	prevSpace := false
	for _, r := range s {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Node implements deboiler.Node over a single *xhtml.Node.
type Node struct {
	n *xhtml.Node
}

var _ deboiler.Node = (*Node)(nil)

func (n *Node) TagName() string { return n.n.Data }

// CanonicalString produces a deterministic, attribute-insensitive
// serialization of the subtree: a recursive pre-order walk that keeps tag
// boundaries and text but discards attributes, collapsing whitespace runs
// in text to a single space. Case is preserved, since altering visible
// text (including case) must change the signature. An element with
// neither text nor element children collapses to "<tag></tag>".
func (n *Node) CanonicalString() string {
	return canonicalKey(canonicalRaw(n.n))
}

func canonicalRaw(n *xhtml.Node) string {
	tag := n.Data
	var sb strings.Builder
	hasContent := false
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xhtml.TextNode:
			t := strings.TrimSpace(c.Data)
			if t != "" {
				sb.WriteString(t)
				hasContent = true
			}
		case xhtml.ElementNode:
			sb.WriteString(canonicalRaw(c))
			hasContent = true
		}
	}
	if !hasContent {
		return fmt.Sprintf("<%s></%s>", tag, tag)
	}
	return fmt.Sprintf("<%s>%s</%s>", tag, sb.String(), tag)
}

// canonicalKey collapses every run of whitespace to a single space,
// matching the final normalization applied to every comparison key. It
// deliberately leaves case alone: two subtrees differing only in letter
// case are a text difference, not a structural one, and must still
// produce different signatures.
func canonicalKey(s string) string {
	var sb strings.Builder
	prevSpace := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			if !prevSpace {
				sb.WriteRune(' ')
				prevSpace = true
			}
		default:
			sb.WriteRune(r)
			prevSpace = false
		}
	}
	return sb.String()
}

// Remove detaches the node from its parent, reattaching any nonblank
// trailing text to the previous sibling (or the parent, if there is no
// previous sibling) so removing a node never swallows text that
// immediately followed it.
func (n *Node) Remove() {
	parent := n.n.Parent
	if parent == nil {
		return
	}

	tail := n.n.NextSibling
	if tail != nil && tail.Type == xhtml.TextNode && strings.TrimSpace(tail.Data) != "" {
		prev := n.n.PrevSibling
		parent.RemoveChild(tail)
		if prev != nil && prev.Type == xhtml.TextNode {
			prev.Data += tail.Data
		} else {
			parent.InsertBefore(tail, n.n)
		}
	}
	parent.RemoveChild(n.n)
}
