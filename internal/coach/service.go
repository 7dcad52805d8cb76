// Package coach implements the interview coach and resume assistant tasks.
//
// Each task validates its request, builds a prompt, asks the completer for text
// and normalizes the result. Tasks share no state and never retry.
package coach

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/jonathan/resume-studio/internal/parsing"
	"github.com/jonathan/resume-studio/internal/prompts"
	"github.com/jonathan/resume-studio/internal/types"
)

// Completer returns the raw completion for a prompt. *llm.Gateway implements it.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service runs the coach tasks.
type Service struct {
	structured Completer
	prose      Completer
	validate   *validator.Validate
	logger     logrus.FieldLogger
}

// NewService creates a Service. structured answers the question, feedback and
// suggestion tasks; prose writes resume text. Passing nil for prose reuses structured.
func NewService(structured, prose Completer, logger logrus.FieldLogger) *Service {
	if prose == nil {
		prose = structured
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	return &Service{
		structured: structured,
		prose:      prose,
		validate:   validate,
		logger:     logger,
	}
}

// GenerateQuestions returns interview questions about the resume.
func (s *Service) GenerateQuestions(ctx context.Context, req types.QuestionsRequest) (types.QuestionList, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	raw, err := s.complete(ctx, s.structured, "questions", prompts.Questions(req.ResumeContent))
	if err != nil {
		return nil, err
	}

	questions, err := parsing.ParseQuestionList(raw)
	if err != nil {
		s.logger.WithError(err).WithField("task", "questions").Warn("completion could not be normalized")
		return nil, &StageError{Stage: StageNormalization, Err: err}
	}
	return questions, nil
}

// EvaluateAnswer returns feedback on an answer to an interview question.
func (s *Service) EvaluateAnswer(ctx context.Context, req types.EvaluateRequest) (types.Feedback, error) {
	if err := s.check(req); err != nil {
		return types.Feedback{}, err
	}

	raw, err := s.complete(ctx, s.structured, "evaluate", prompts.Evaluate(req.Question, req.Answer, req.ResumeContent))
	if err != nil {
		return types.Feedback{}, err
	}
	return parsing.ParseFeedback(raw), nil
}

// GenerateSuggestions returns alternatives for a draft resume section.
func (s *Service) GenerateSuggestions(ctx context.Context, req types.SuggestionsRequest) (types.QuestionList, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	prompt, err := prompts.Suggestions(prompts.SectionKind(req.Section), req.Content)
	if err != nil {
		return nil, &ValidationError{Field: "section", Message: err.Error()}
	}

	raw, err := s.complete(ctx, s.structured, "suggestions", prompt)
	if err != nil {
		return nil, err
	}

	suggestions, err := parsing.ParseQuestionList(raw)
	if err != nil {
		s.logger.WithError(err).WithField("task", "suggestions").Warn("completion could not be normalized")
		return nil, &StageError{Stage: StageNormalization, Err: err}
	}
	return suggestions, nil
}

// GenerateResume writes a resume for a job title from experience and skills.
func (s *Service) GenerateResume(ctx context.Context, req types.ComposeResumeRequest) (types.FreeText, error) {
	if err := s.check(req); err != nil {
		return "", err
	}

	raw, err := s.complete(ctx, s.prose, "compose", prompts.ComposeResume(req.JobTitle, req.Experience, req.Skills))
	if err != nil {
		return "", err
	}
	return types.FreeText(raw), nil
}

// OptimizeResume writes a resume tailored to a job description.
func (s *Service) OptimizeResume(ctx context.Context, req types.OptimizeResumeRequest) (types.FreeText, error) {
	if err := s.check(req); err != nil {
		return "", err
	}

	raw, err := s.complete(ctx, s.prose, "optimize", prompts.OptimizeResume(req.JobDescription))
	if err != nil {
		return "", err
	}
	return types.FreeText(raw), nil
}

func (s *Service) complete(ctx context.Context, completer Completer, task, prompt string) (string, error) {
	raw, err := completer.Complete(ctx, prompt)
	if err != nil {
		return "", &StageError{Stage: StageCompletion, Err: err}
	}
	s.logger.WithFields(logrus.Fields{"task": task, "chars": len(raw)}).Debug("completion received")
	return raw, nil
}

// check converts the first validator failure into a *ValidationError.
func (s *Service) check(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: fe.Field(), Message: "missing required field"}
	case "oneof":
		return &ValidationError{Field: fe.Field(), Message: "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")}
	default:
		return &ValidationError{Field: fe.Field(), Message: "failed " + fe.Tag() + " check"}
	}
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}
