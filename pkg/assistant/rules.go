package assistant

import (
	"strings"

	"github.com/shopmate/shopmate/pkg/catalog"
)

// Entity map keys.
const (
	EntityProductQuery = "product_query"
	EntityProductName  = "product_name"
	EntityDestination  = "destination"
	EntitySection      = "section"
)

// entityRule is a single extraction heuristic. Rules for an intent run in
// order; the first match wins and later rules never see the text.
type entityRule interface {
	match(text string) (key, value string, ok bool)
}

// patternSplitRule extracts everything after the first occurrence of the
// first matching pattern. Substring matching means a pattern embedded in
// another word still splits there; that is an accepted heuristic.
type patternSplitRule struct {
	key      string
	patterns []string
}

func (r patternSplitRule) match(text string) (string, string, bool) {
	for _, pattern := range r.patterns {
		if idx := strings.Index(text, pattern); idx >= 0 {
			value := strings.TrimSpace(text[idx+len(pattern):])
			return r.key, value, true
		}
	}
	return "", "", false
}

// categoryRule extracts a known product category mentioned anywhere in the
// text.
type categoryRule struct {
	key string
}

func (r categoryRule) match(text string) (string, string, bool) {
	for _, category := range catalog.Categories {
		if strings.Contains(text, category) {
			return r.key, category, true
		}
	}
	return "", "", false
}

// aliasEntry maps a phrase to its canonical value.
type aliasEntry struct {
	phrase    string
	canonical string
}

// aliasTableRule checks a fixed ordered phrase table by substring
// containment; first table entry found in the text wins.
type aliasTableRule struct {
	key   string
	table []aliasEntry
}

func (r aliasTableRule) match(text string) (string, string, bool) {
	for _, entry := range r.table {
		if strings.Contains(text, entry.phrase) {
			return r.key, entry.canonical, true
		}
	}
	return "", "", false
}

// sectionScanRule finds the first site section whose name or alias appears
// in the text.
type sectionScanRule struct {
	key string
}

func (r sectionScanRule) match(text string) (string, string, bool) {
	for _, section := range catalog.Sections {
		if strings.Contains(text, section.Name) {
			return r.key, section.Name, true
		}
		for _, alias := range section.Aliases {
			if strings.Contains(text, alias) {
				return r.key, section.Name, true
			}
		}
	}
	return "", "", false
}

// directDestinations shortcuts common navigation phrases to their section.
var directDestinations = []aliasEntry{
	{"cart", "cart"},
	{"shopping cart", "cart"},
	{"my cart", "cart"},
	{"home", "home"},
	{"homepage", "home"},
	{"main page", "home"},
	{"categories", "categories"},
	{"category page", "categories"},
	{"orders", "orders"},
	{"my orders", "orders"},
	{"order history", "orders"},
	{"wishlist", "wishlist"},
	{"my wishlist", "wishlist"},
	{"saved items", "wishlist"},
}

// sectionKeywords is the secondary section lookup used when no section name
// or alias matched directly.
var sectionKeywords = []aliasEntry{
	{"order", "orders"},
	{"purchase history", "orders"},
	{"wishlist", "wishlist"},
	{"saved items", "wishlist"},
	{"favorites", "wishlist"},
	{"cart", "cart"},
	{"shopping cart", "cart"},
	{"categories", "categories"},
	{"product categories", "categories"},
	{"account", "account"},
	{"profile", "account"},
	{"settings", "account"},
}

// extractionRules maps each entity-bearing intent to its ordered rule list.
var extractionRules = map[string][]entityRule{
	catalog.IntentFindProduct: {
		patternSplitRule{key: EntityProductQuery, patterns: catalog.PatternsFor(catalog.IntentFindProduct)},
		categoryRule{key: EntityProductQuery},
	},
	catalog.IntentAddToCart: {
		patternSplitRule{key: EntityProductName, patterns: catalog.PatternsFor(catalog.IntentAddToCart)},
		// Bare "add" commands that used none of the catalog patterns.
		patternSplitRule{key: EntityProductName, patterns: []string{"add"}},
	},
	catalog.IntentNavigation: {
		patternSplitRule{key: EntityDestination, patterns: catalog.PatternsFor(catalog.IntentNavigation)},
		aliasTableRule{key: EntityDestination, table: directDestinations},
	},
	catalog.IntentProductInfo: {
		patternSplitRule{key: EntityProductName, patterns: catalog.PatternsFor(catalog.IntentProductInfo)},
	},
	catalog.IntentSectionInquiry: {
		sectionScanRule{key: EntitySection},
		aliasTableRule{key: EntitySection, table: sectionKeywords},
	},
}
