package mymuesli

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/RikuXan/mymuesli-analyzer/internal/domain"
)

// parseIngredientPage extracts the ingredient fields from a detail page.
// The page must carry a #content section with an h3 name; everything else
// is optional.
func parseIngredientPage(doc *goquery.Document) (*domain.IngredientPage, error) {
	content := doc.Find("#content").First()
	if content.Length() == 0 {
		return nil, fmt.Errorf("%w: page has no #content section", domain.ErrParse)
	}

	name := strings.TrimSpace(content.Find("h3").First().Text())
	if name == "" {
		return nil, fmt.Errorf("%w: page has no ingredient name", domain.ErrParse)
	}

	page := &domain.IngredientPage{
		Name:        name,
		Subtitle:    strings.TrimSpace(content.Find(".subtitle").First().Text()),
		Description: strings.TrimSpace(content.Find(".description").First().Text()),
	}

	content.Find(".ingredient-hints span").Each(func(_ int, s *goquery.Selection) {
		if hint := strings.TrimSpace(s.Text()); hint != "" {
			page.Hints = append(page.Hints, hint)
		}
	})

	if sub := content.Find(".subingredients").First(); sub.Length() > 0 {
		page.SubIngredients = parseSubIngredients(sub.Text())
	}

	return page, nil
}

// parseSubIngredients splits the sub-ingredient line into its entries. The
// line starts with a label ("Zutaten: ...") that is cut at the first colon.
func parseSubIngredients(text string) []string {
	if idx := strings.Index(text, ":"); idx >= 0 {
		text = text[idx+1:]
	}

	var subs []string
	for _, part := range strings.Split(text, ", ") {
		if part = strings.Trim(part, "* \t\n"); part != "" {
			subs = append(subs, part)
		}
	}
	return subs
}

// parseIngredientIndex walks the index page's #content section in document
// order. Each li > div > h3 ingredient name is mapped to the nearest h2
// heading above it, which names its category.
func parseIngredientIndex(doc *goquery.Document) (map[string]string, error) {
	content := doc.Find("#content").First()
	if content.Length() == 0 {
		return nil, fmt.Errorf("%w: index page has no #content section", domain.ErrParse)
	}

	index := make(map[string]string)
	category := ""
	content.Find("h2, li > div > h3").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if s.Is("h2") {
			category = text
			return
		}
		if text != "" && category != "" {
			index[text] = category
		}
	})

	if len(index) == 0 {
		return nil, fmt.Errorf("%w: index page lists no ingredients", domain.ErrParse)
	}
	return index, nil
}
