package assistant

import "strings"

// trailingPunctuation is stripped from the end of the text before entity
// extraction.
const trailingPunctuation = ".,!?;:"

// ExtractEntities returns the entity map for the detected intent, possibly
// empty. Intents without extraction rules always yield an empty map.
func ExtractEntities(text, intent string) map[string]string {
	cleaned := strings.TrimRight(strings.ToLower(text), trailingPunctuation)

	entities := map[string]string{}
	for _, rule := range extractionRules[intent] {
		if key, value, ok := rule.match(cleaned); ok {
			entities[key] = value
			break
		}
	}
	return entities
}
