package parser

import (
	"bufio"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// blockSelector lists the tags whose text becomes summarisable prose.
const blockSelector = "h1,h2,h3,h4,h5,h6,p,li,blockquote,pre"

// Article is the plain text recovered from an HTML page.
type Article struct {
	URL    string   `yaml:"url,omitempty"`
	Title  string   `yaml:"title,omitempty"`
	Blocks []string `yaml:"blocks"`
	// Readability is false when the raw document was walked instead of the
	// readability-distilled content.
	Readability bool `yaml:"readability"`
}

// Text joins the blocks into one string with each block closed as a sentence.
func (a *Article) Text() string {
	parts := make([]string, 0, len(a.Blocks))
	for _, b := range a.Blocks {
		parts = append(parts, terminate(b))
	}
	return strings.Join(parts, " ")
}

type Parser struct{}

// Parse uses go-readability to locate the main article content and collects
// the text of its block elements in document order. When readability fails or
// finds nothing, the whole document body is walked instead.
func (p *Parser) Parse(rawURL, html string) (*Article, error) {
	if strings.TrimSpace(html) == "" {
		return &Article{URL: rawURL}, nil
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", rawURL, err)
	}

	rp := readability.NewParser()
	article, err := rp.Parse(strings.NewReader(html), parsedURL)
	if err == nil && strings.TrimSpace(article.Content) != "" {
		blocks, berr := blocksFromHTML(article.Content)
		if berr == nil && len(blocks) > 0 {
			return &Article{
				URL:         rawURL,
				Title:       normalizeText(article.Title),
				Blocks:      blocks,
				Readability: true,
			}, nil
		}
	}

	return fallback(rawURL, html)
}

// ExtractText is Parse followed by Article.Text.
func ExtractText(rawURL, html string) (string, error) {
	var p Parser
	a, err := p.Parse(rawURL, html)
	if err != nil {
		return "", err
	}
	return a.Text(), nil
}

func fallback(rawURL, html string) (*Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	doc.Find("script,style,noscript,nav,header,footer").Remove()

	a := &Article{
		URL:   rawURL,
		Title: normalizeText(doc.Find("title").First().Text()),
	}
	a.Blocks = collectBlocks(doc.Selection)

	// Pages without block markup still have body text.
	if len(a.Blocks) == 0 {
		if text := normalizeText(doc.Find("body").Text()); text != "" {
			a.Blocks = []string{text}
		}
	}
	return a, nil
}

func blocksFromHTML(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return collectBlocks(doc.Selection), nil
}

// collectBlocks keeps only the outermost matching elements so that a
// paragraph inside a list item is not counted twice.
func collectBlocks(root *goquery.Selection) []string {
	var blocks []string
	root.Find(blockSelector).Each(func(i int, s *goquery.Selection) {
		if s.ParentsFiltered(blockSelector).Length() > 0 {
			return
		}
		if text := normalizeText(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})
	return blocks
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.Join(strings.Fields(scanner.Text()), " ")
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}

// terminate appends a full stop to blocks such as headings and list items
// that do not already end a sentence.
func terminate(block string) string {
	if block == "" {
		return block
	}
	switch block[len(block)-1] {
	case '.', '!', '?', ':', ';':
		return block
	}
	return block + "."
}
