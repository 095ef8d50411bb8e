package services

import (
	"fmt"
)

// Task identifies one of the five completions run for a CV.
type Task string

const (
	TaskName     Task = "name"
	TaskSummary  Task = "summary"
	TaskSkills   Task = "skills"
	TaskFeedback Task = "feedback"
	TaskScores   Task = "scores"
)

// Tasks returns every analysis task in result order.
func Tasks() []Task {
	return []Task{TaskName, TaskSummary, TaskSkills, TaskFeedback, TaskScores}
}

// PromptBuilder renders the fixed instruction templates. The CV text always
// goes last so long documents do not bury the instructions.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

func (pb *PromptBuilder) Build(task Task, cvText string) string {
	switch task {
	case TaskName:
		return pb.BuildNamePrompt(cvText)
	case TaskSummary:
		return pb.BuildSummaryPrompt(cvText)
	case TaskSkills:
		return pb.BuildSkillsPrompt(cvText)
	case TaskFeedback:
		return pb.BuildFeedbackPrompt(cvText)
	case TaskScores:
		return pb.BuildScoresPrompt(cvText)
	default:
		return cvText
	}
}

func (pb *PromptBuilder) BuildNamePrompt(cvText string) string {
	return fmt.Sprintf(`Extract ONLY the full name of the person this CV belongs to. Return only the name, nothing else.

%s`, cvText)
}

func (pb *PromptBuilder) BuildSummaryPrompt(cvText string) string {
	return fmt.Sprintf(`Summarize the following CV into a concise professional summary:

%s`, cvText)
}

func (pb *PromptBuilder) BuildSkillsPrompt(cvText string) string {
	return fmt.Sprintf(`Extract all skills, programming languages, and tools from this CV:

%s`, cvText)
}

func (pb *PromptBuilder) BuildFeedbackPrompt(cvText string) string {
	return fmt.Sprintf(`Provide constructive feedback to improve this CV. Focus on formatting, clarity, and highlighting key experiences:

%s`, cvText)
}

// BuildScoresPrompt asks for a bare JSON object so ParseScores can read it.
func (pb *PromptBuilder) BuildScoresPrompt(cvText string) string {
	return fmt.Sprintf(`Analyze the CV and provide a score from 1 to 100 for each of the following categories:
1. Technical Skills
2. Soft Skills
3. Impact (how well results are described)
4. ATS Rank (how well it would pass automated filters)
5. Clarity (formatting and readability)

Return ONLY a JSON object with these keys: "technical", "soft_skills", "impact", "ats_rank", "clarity". No other text.
Example: {"technical": 85, "soft_skills": 70, "impact": 90, "ats_rank": 75, "clarity": 95}

CV Content:
%s`, cvText)
}
