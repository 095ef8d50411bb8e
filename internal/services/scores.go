package services

import (
	"encoding/json"
	"strings"

	"alfredoptarigan/cv-reviewer/internal/models"
)

// ParseScores recovers the score record from a free-text completion. It takes
// everything from the first '{' to the last '}' and decodes it as an object of
// numbers. Any failure, including a null value, yields models.DefaultScores().
// A successfully decoded object is returned as-is: missing keys and
// out-of-range values are kept.
func ParseScores(raw string) models.ScoreRecord {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end < start {
		return models.DefaultScores()
	}

	var decoded map[string]*float64
	if err := json.Unmarshal([]byte(raw[start:end+1]), &decoded); err != nil {
		return models.DefaultScores()
	}

	scores := make(models.ScoreRecord, len(decoded))
	for key, value := range decoded {
		if value == nil {
			return models.DefaultScores()
		}
		scores[key] = *value
	}

	return scores
}
