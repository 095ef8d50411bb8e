package models

const (
	ScoreTechnical  = "technical"
	ScoreSoftSkills = "soft_skills"
	ScoreImpact     = "impact"
	ScoreATSRank    = "ats_rank"
	ScoreClarity    = "clarity"
)

// ScoreKeys lists the score fields the model is asked to return.
var ScoreKeys = []string{ScoreTechnical, ScoreSoftSkills, ScoreImpact, ScoreATSRank, ScoreClarity}

const DefaultScoreValue = 80

// ScoreRecord holds the model's quality scores keyed by dimension.
// Values are nominally 1-100 but are not range checked.
type ScoreRecord map[string]float64

// DefaultScores returns the record used when the model's scores cannot be parsed.
func DefaultScores() ScoreRecord {
	scores := make(ScoreRecord, len(ScoreKeys))
	for _, key := range ScoreKeys {
		scores[key] = DefaultScoreValue
	}
	return scores
}

type AnalysisResult struct {
	CandidateName string
	Summary       string
	Skills        string
	Feedback      string
	Scores        ScoreRecord
}
