package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopmate/shopmate/pkg/catalog"
)

func TestDetectIntent(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "simple greeting",
			text:     "Hello there",
			expected: catalog.IntentGreeting,
		},
		{
			name:     "earliest pattern wins over later one",
			text:     "hi, do you have shoes",
			expected: catalog.IntentGreeting,
		},
		{
			name:     "product search",
			text:     "Can you find me a desk lamp?",
			expected: catalog.IntentFindProduct,
		},
		{
			name:     "tie at same position resolves by catalog order",
			text:     "show me the homepage",
			expected: catalog.IntentFindProduct,
		},
		{
			name:     "tie between find_product and add_to_cart",
			text:     "I want to buy a chef knife",
			expected: catalog.IntentFindProduct,
		},
		{
			name:     "section inquiry",
			text:     "where is the wishlist",
			expected: catalog.IntentSectionInquiry,
		},
		{
			name:     "navigation",
			text:     "take me to my cart",
			expected: catalog.IntentNavigation,
		},
		{
			name:     "cart status",
			text:     "What's in my cart?",
			expected: catalog.IntentCartStatus,
		},
		{
			name:     "order status",
			text:     "track my order please",
			expected: catalog.IntentOrderStatus,
		},
		{
			name:     "bare category falls back to product search",
			text:     "electronics",
			expected: catalog.IntentFindProduct,
		},
		{
			name:     "gibberish",
			text:     "qwerty asdf zxcv",
			expected: IntentUnknown,
		},
		{
			name:     "empty input",
			text:     "",
			expected: IntentUnknown,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DetectIntent(tc.text))
		})
	}
}

func TestDetectIntentNeverEmpty(t *testing.T) {
	inputs := []string{"", " ", "hello", "???", "find buy open deal refund"}
	valid := map[string]bool{IntentUnknown: true}
	for _, intent := range catalog.Intents {
		valid[intent.Name] = true
	}

	for _, input := range inputs {
		intent := DetectIntent(input)
		assert.True(t, valid[intent], "input %q produced intent %q outside the catalog", input, intent)
	}
}
