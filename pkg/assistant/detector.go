// Package assistant implements the rule-based query pipeline: intent
// detection, entity extraction, and response generation.
package assistant

import (
	"sort"
	"strings"

	"github.com/shopmate/shopmate/pkg/catalog"
)

// IntentUnknown is returned when no detection rule fires. It is not a
// catalog intent.
const IntentUnknown = "unknown"

// inquiryPhrases is the secondary rule for section inquiries phrased as
// questions.
var inquiryPhrases = []string{"do you have", "is there", "where is", "how do i find", "can i find"}

type patternMatch struct {
	intent   string
	position int
}

// DetectIntent returns exactly one intent name for the raw text, falling
// back to IntentUnknown. The earliest pattern occurrence in the text wins;
// ties at the same position resolve by catalog order.
func DetectIntent(text string) string {
	lower := strings.ToLower(text)

	var matches []patternMatch
	for _, intent := range catalog.Intents {
		for _, pattern := range intent.Patterns {
			if position := strings.Index(lower, pattern); position >= 0 {
				matches = append(matches, patternMatch{intent: intent.Name, position: position})
			}
		}
	}
	if len(matches) > 0 {
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].position < matches[j].position
		})
		return matches[0].intent
	}

	// A question about a known section that used none of the catalog
	// patterns.
	for _, phrase := range inquiryPhrases {
		if !strings.Contains(lower, phrase) {
			continue
		}
		for _, section := range catalog.Sections {
			if strings.Contains(lower, section.Name) || containsAny(lower, section.Aliases) {
				return catalog.IntentSectionInquiry
			}
		}
	}

	// A bare product category mention reads as a search.
	for _, category := range catalog.Categories {
		if strings.Contains(lower, category) {
			return catalog.IntentFindProduct
		}
	}

	return IntentUnknown
}

func containsAny(text string, substrings []string) bool {
	for _, s := range substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
