package nlp

import "github.com/jonreiter/govader"

// Sentiment polarity labels.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// compoundThreshold is the VADER compound score cutoff for a non-neutral
// classification.
const compoundThreshold = 0.05

// SentimentScorer classifies short text on a positive/neutral/negative
// scale using VADER.
type SentimentScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewSentimentScorer() *SentimentScorer {
	return &SentimentScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns one of the Sentiment* labels for text.
func (s *SentimentScorer) Score(text string) string {
	scores := s.analyzer.PolarityScores(text)
	switch {
	case scores.Compound >= compoundThreshold:
		return SentimentPositive
	case scores.Compound <= -compoundThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
