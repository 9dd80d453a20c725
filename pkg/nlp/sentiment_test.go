package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentimentScorer(t *testing.T) {
	scorer := NewSentimentScorer()

	testCases := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "positive text",
			text:     "I love this store, it's wonderful!",
			expected: SentimentPositive,
		},
		{
			name:     "negative text",
			text:     "This is terrible, I hate it.",
			expected: SentimentNegative,
		},
		{
			name:     "neutral text",
			text:     "The package arrived on Tuesday.",
			expected: SentimentNeutral,
		},
		{
			name:     "intent label scores neutral",
			text:     "find_product",
			expected: SentimentNeutral,
		},
		{
			name:     "thanks label scores positive",
			text:     "thanks",
			expected: SentimentPositive,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, scorer.Score(tc.text))
		})
	}
}
