package fetch

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// contentSelectors is the prioritized list of main-content containers, most
// specific first, ending at the full body.
var contentSelectors = []string{"main", "article", ".content", ".documentation", "body"}

// extractContent pulls the page title and the text of the most specific
// non-empty content container out of rendered HTML. Script, style, and
// noscript content is stripped first.
func extractContent(html string) (title, text string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", ""
	}

	doc.Find("script, style, noscript").Remove()

	title = strings.TrimSpace(doc.Find("title").First().Text())

	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if t := strings.TrimSpace(sel.Text()); t != "" {
			return title, t
		}
	}
	return title, ""
}
