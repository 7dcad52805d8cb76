// Package types provides type definitions for structured data exchanged by the resume studio.
package types

// Placeholders substituted for feedback fields that extraction left empty.
const (
	NoStrengthsPlaceholder    = "No specific strengths identified"
	NoImprovementsPlaceholder = "No specific improvements identified"
	NoOverallPlaceholder      = "No overall assessment identified"
)

// QuestionList is an ordered, non-empty list of interview questions or section suggestions.
type QuestionList []string

// Feedback is the structured evaluation of an interview answer.
type Feedback struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Overall      string   `json:"overall"`
}

// FreeText is generated prose accepted without structural validation.
type FreeText string

// WithPlaceholders returns a copy of f where every empty field holds its placeholder.
func (f Feedback) WithPlaceholders() Feedback {
	out := Feedback{
		Strengths:    append([]string(nil), f.Strengths...),
		Improvements: append([]string(nil), f.Improvements...),
		Overall:      f.Overall,
	}
	if len(out.Strengths) == 0 {
		out.Strengths = []string{NoStrengthsPlaceholder}
	}
	if len(out.Improvements) == 0 {
		out.Improvements = []string{NoImprovementsPlaceholder}
	}
	if out.Overall == "" {
		out.Overall = NoOverallPlaceholder
	}
	return out
}
