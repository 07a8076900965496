// Package ingestion prepares raw posting-page HTML for metadata extraction.
package ingestion

import (
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are elements that carry no posting metadata but dominate the
// byte count of a listing page.
var noiseSelectors = []string{
	"script",
	"style",
	"noscript",
	"svg",
	"iframe",
	"link",
	"meta",
	"head",
}

// StripHTMLNoise removes script, style, and other non-content elements from
// the HTML while preserving the markup itself, since anchor hrefs and img
// attributes feed the metadata extraction. On unparseable input the original
// string is returned unchanged.
func StripHTMLNoise(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Printf("[ingestion] failed to parse HTML, passing through: %v", err)
		return html
	}

	for _, selector := range noiseSelectors {
		doc.Find(selector).Remove()
	}

	cleaned, err := doc.Find("body").Html()
	if err != nil || strings.TrimSpace(cleaned) == "" {
		return html
	}
	return strings.TrimSpace(cleaned)
}
