package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// QuestionsRequest asks for interview questions about a resume.
type QuestionsRequest struct {
	ResumeContent string `json:"resumeContent" validate:"required"`
}

// QuestionsResponse carries generated interview questions.
type QuestionsResponse struct {
	Questions QuestionList `json:"questions"`
}

// EvaluateRequest asks for feedback on an answer to an interview question.
type EvaluateRequest struct {
	Question      string `json:"question" validate:"required"`
	Answer        string `json:"answer" validate:"required"`
	ResumeContent string `json:"resumeContent" validate:"required"`
}

// SuggestionsRequest asks for alternatives to a draft resume section.
type SuggestionsRequest struct {
	Section string `json:"section" validate:"required,oneof=introduction experience skills closing"`
	Content string `json:"content" validate:"required"`
}

// SuggestionsResponse carries suggested section text.
type SuggestionsResponse struct {
	Suggestions QuestionList `json:"suggestions"`
}

// ComposeResumeRequest asks for a resume written from scratch.
type ComposeResumeRequest struct {
	JobTitle   string `json:"jobTitle" validate:"required"`
	Experience string `json:"experience" validate:"required"`
	Skills     string `json:"skills" validate:"required"`
}

// OptimizeResumeRequest asks for a resume tailored to a job description.
type OptimizeResumeRequest struct {
	JobDescription string `json:"jobDescription" validate:"required"`
}

// ResumeTextResponse carries generated resume prose.
type ResumeTextResponse struct {
	Content FreeText `json:"content"`
}

// CreateResumeRequest creates a stored resume for the current user.
type CreateResumeRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content"`
}

// UpdateResumeRequest replaces the content of a stored resume.
type UpdateResumeRequest struct {
	Content string `json:"content"`
}

// Resume represents a stored resume for API responses (avoids import cycle with db package).
type Resume struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CurrentUser describes the authenticated caller.
type CurrentUser struct {
	ID uuid.UUID `json:"id"`
}

// Validate validates the CreateResumeRequest using the validator.
func (r *CreateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
