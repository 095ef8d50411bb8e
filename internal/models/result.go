package models

type WelcomeResponse struct {
	Message string `json:"message"`
}

type AnalyzeResponse struct {
	Filename      string       `json:"filename"`
	CandidateName string       `json:"candidate_name"`
	Analysis      AnalysisData `json:"analysis"`
}

type AnalysisData struct {
	Summary  string      `json:"summary"`
	Skills   string      `json:"skills"`
	Feedback string      `json:"feedback"`
	Scores   ScoreRecord `json:"scores"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func NewAnalyzeResponse(filename string, result *AnalysisResult) AnalyzeResponse {
	return AnalyzeResponse{
		Filename:      filename,
		CandidateName: result.CandidateName,
		Analysis: AnalysisData{
			Summary:  result.Summary,
			Skills:   result.Skills,
			Feedback: result.Feedback,
			Scores:   result.Scores,
		},
	}
}
