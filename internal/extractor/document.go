package extractor

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/user/listing-harvester/internal/repository"
)

// Document is a normalised view of a detail page, built once and shared by
// every field locator.
type Document struct {
	doc   *goquery.Document
	title string
	texts []string
	metas []metaTag
	table map[string]string
}

type metaTag struct {
	name       string
	content    string
	hasContent bool
}

// ParseDocument parses r and indexes its text nodes, label/value cells and meta tags.
func ParseDocument(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrParseFailed, err)
	}
	return NewDocument(doc), nil
}

// NewDocument indexes an already parsed goquery document.
func NewDocument(doc *goquery.Document) *Document {
	d := &Document{
		doc:   doc,
		title: cleanText(doc.Find("title").First().Text()),
		table: make(map[string]string),
	}

	for _, n := range doc.Selection.Nodes {
		d.collectTexts(n)
	}

	doc.Find("meta").Each(func(i int, s *goquery.Selection) {
		name, _ := s.Attr("name")
		content, ok := s.Attr("content")
		d.metas = append(d.metas, metaTag{name: name, content: norm.NFC.String(content), hasContent: ok})
	})

	// A label cell is followed by its value cell. Later rows win, as the
	// site repeats some labels in a summary table further down the page.
	doc.Find("td, th").Each(func(i int, cell *goquery.Selection) {
		next := cell.Next()
		if next.Length() == 0 || !next.Is("td, th") {
			return
		}
		label := cleanText(cell.Text())
		if label == "" {
			return
		}
		d.table[label] = cleanText(next.Text())
	})

	return d
}

func (d *Document) collectTexts(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if t := cleanText(n.Data); t != "" {
			d.texts = append(d.texts, t)
		}
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "template":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.collectTexts(c)
	}
}

// Title returns the document title with newlines removed.
func (d *Document) Title() (string, bool) {
	return d.title, d.title != ""
}

// FirstTextContaining returns the first text node that contains marker.
func (d *Document) FirstTextContaining(marker string) (string, bool) {
	marker = norm.NFC.String(marker)
	for _, t := range d.texts {
		if strings.Contains(t, marker) {
			return t, true
		}
	}
	return "", false
}

// Label returns the value cell paired with the given label cell.
func (d *Document) Label(label string) (string, bool) {
	v, ok := d.table[norm.NFC.String(label)]
	return v, ok
}

// Labels returns a copy of the label/value table.
func (d *Document) Labels() map[string]string {
	out := make(map[string]string, len(d.table))
	for k, v := range d.table {
		out[k] = v
	}
	return out
}

// MetaContent returns the content of the meta tag at index. The description
// meta tag is used when that position is missing or has no content.
func (d *Document) MetaContent(index int) (string, bool) {
	if index >= 0 && index < len(d.metas) && d.metas[index].hasContent {
		return d.metas[index].content, true
	}
	for _, m := range d.metas {
		if strings.EqualFold(m.name, "description") && m.hasContent {
			return m.content, true
		}
	}
	return "", false
}

// SelectText returns the trimmed text of the first element matching selector.
func (d *Document) SelectText(selector string) (string, bool) {
	s := d.doc.Find(selector).First()
	if s.Length() == 0 {
		return "", false
	}
	return cleanText(s.Text()), true
}

// MarkupOf returns the outer HTML of every element matching selector, joined
// by a single space.
func (d *Document) MarkupOf(selector string) (string, bool) {
	var parts []string
	d.doc.Find(selector).Each(func(i int, s *goquery.Selection) {
		if h, err := goquery.OuterHtml(s); err == nil {
			parts = append(parts, h)
		}
	})
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

// cleanText NFC-normalises s, drops line breaks and trims surrounding space.
func cleanText(s string) string {
	s = strings.NewReplacer("\r\n", "", "\n", "", "\r", "").Replace(s)
	return strings.TrimSpace(norm.NFC.String(s))
}
