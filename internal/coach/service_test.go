package coach

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/parsing"
	"github.com/jonathan/resume-studio/internal/types"
)

// fakeCompleter returns a canned completion and records prompts.
type fakeCompleter struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func newTestService(structured, prose Completer) *Service {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewService(structured, prose, logger)
}

func TestGenerateQuestions(t *testing.T) {
	fake := &fakeCompleter{text: `["Tell me about a challenge.","Describe your leadership style."]`}
	svc := newTestService(fake, nil)

	questions, err := svc.GenerateQuestions(context.Background(), types.QuestionsRequest{ResumeContent: "Go developer, 6 years"})
	require.NoError(t, err)
	assert.Equal(t, types.QuestionList{"Tell me about a challenge.", "Describe your leadership style."}, questions)

	require.Len(t, fake.prompts, 1)
	assert.Contains(t, fake.prompts[0], "Go developer, 6 years")
	assert.Contains(t, fake.prompts[0], "JSON array")
}

func TestGenerateQuestions_MissingResume(t *testing.T) {
	fake := &fakeCompleter{text: `["unused"]`}
	svc := newTestService(fake, nil)

	_, err := svc.GenerateQuestions(context.Background(), types.QuestionsRequest{})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "resumeContent", validationErr.Field)
	assert.Equal(t, "missing required field", validationErr.Message)
	assert.Empty(t, fake.prompts, "no prompt is sent for an invalid request")
}

func TestGenerateQuestions_NormalizationFailure(t *testing.T) {
	svc := newTestService(&fakeCompleter{text: "I cannot help with that."}, nil)

	_, err := svc.GenerateQuestions(context.Background(), types.QuestionsRequest{ResumeContent: "r"})

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageNormalization, stageErr.Stage)

	var normErr *parsing.NormalizationError
	assert.ErrorAs(t, err, &normErr)
	assert.Contains(t, err.Error(), "normalization failed")
}

func TestGenerateQuestions_CompletionFailure(t *testing.T) {
	providerErr := &llm.QuotaError{Provider: llm.ProviderGemini, Message: "quota exceeded"}
	svc := newTestService(&fakeCompleter{err: providerErr}, nil)

	_, err := svc.GenerateQuestions(context.Background(), types.QuestionsRequest{ResumeContent: "r"})

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageCompletion, stageErr.Stage)

	var quotaErr *llm.QuotaError
	assert.ErrorAs(t, err, &quotaErr)
	assert.Contains(t, err.Error(), "completion failed")
}

func TestEvaluateAnswer(t *testing.T) {
	fake := &fakeCompleter{text: "Strengths\n- Clear examples\nImprovements\n- Add metrics\nOverall\nSolid answer overall."}
	svc := newTestService(fake, nil)

	feedback, err := svc.EvaluateAnswer(context.Background(), types.EvaluateRequest{
		Question:      "Why Go?",
		Answer:        "Simplicity.",
		ResumeContent: "Backend engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, types.Feedback{
		Strengths:    []string{"Clear examples"},
		Improvements: []string{"Add metrics"},
		Overall:      "Solid answer overall.",
	}, feedback)

	require.Len(t, fake.prompts, 1)
	assert.Contains(t, fake.prompts[0], "Why Go?")
	assert.Contains(t, fake.prompts[0], "Simplicity.")
}

func TestEvaluateAnswer_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   types.EvaluateRequest
		field string
	}{
		{name: "question", req: types.EvaluateRequest{Answer: "a", ResumeContent: "r"}, field: "question"},
		{name: "answer", req: types.EvaluateRequest{Question: "q", ResumeContent: "r"}, field: "answer"},
		{name: "resume", req: types.EvaluateRequest{Question: "q", Answer: "a"}, field: "resumeContent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&fakeCompleter{}, nil)
			_, err := svc.EvaluateAnswer(context.Background(), tt.req)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestEvaluateAnswer_UnstructuredTextStillSucceeds(t *testing.T) {
	svc := newTestService(&fakeCompleter{text: "Nice."}, nil)

	feedback, err := svc.EvaluateAnswer(context.Background(), types.EvaluateRequest{Question: "q", Answer: "a", ResumeContent: "r"})
	require.NoError(t, err)
	assert.Equal(t, []string{types.NoStrengthsPlaceholder}, feedback.Strengths)
	assert.Equal(t, []string{types.NoImprovementsPlaceholder}, feedback.Improvements)
	assert.Equal(t, types.NoOverallPlaceholder, feedback.Overall)
}

func TestGenerateSuggestions(t *testing.T) {
	fake := &fakeCompleter{text: "1. Led a team of five\n2. Cut latency by 40%"}
	svc := newTestService(fake, nil)

	suggestions, err := svc.GenerateSuggestions(context.Background(), types.SuggestionsRequest{
		Section: "experience",
		Content: "Worked on backend services",
	})
	require.NoError(t, err)
	assert.Equal(t, types.QuestionList{"Led a team of five", "Cut latency by 40%"}, suggestions)
	require.Len(t, fake.prompts, 1)
	assert.Contains(t, fake.prompts[0], "Worked on backend services")
}

func TestGenerateSuggestions_UnknownSection(t *testing.T) {
	fake := &fakeCompleter{}
	svc := newTestService(fake, nil)

	_, err := svc.GenerateSuggestions(context.Background(), types.SuggestionsRequest{Section: "hobbies", Content: "x"})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "section", validationErr.Field)
	assert.Contains(t, validationErr.Message, "introduction, experience, skills, closing")
	assert.Empty(t, fake.prompts)
}

func TestGenerateSuggestions_SectionIsCaseSensitive(t *testing.T) {
	fake := &fakeCompleter{text: `["x"]`}
	svc := newTestService(fake, nil)

	for _, section := range []string{"Skills", " skills", "CLOSING"} {
		_, err := svc.GenerateSuggestions(context.Background(), types.SuggestionsRequest{Section: section, Content: "x"})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr, "section %q", section)
		assert.Equal(t, "section", validationErr.Field)
	}
	assert.Empty(t, fake.prompts)
}

func TestGenerateResume_UsesProseCompleter(t *testing.T) {
	structured := &fakeCompleter{text: "unused"}
	prose := &fakeCompleter{text: "Summary\nSeasoned engineer."}
	svc := newTestService(structured, prose)

	text, err := svc.GenerateResume(context.Background(), types.ComposeResumeRequest{
		JobTitle:   "Staff Engineer",
		Experience: "10 years",
		Skills:     "Go, Postgres",
	})
	require.NoError(t, err)
	assert.Equal(t, types.FreeText("Summary\nSeasoned engineer."), text)
	assert.Empty(t, structured.prompts)
	require.Len(t, prose.prompts, 1)
	assert.Contains(t, prose.prompts[0], "Staff Engineer")
}

func TestGenerateResume_MissingSkills(t *testing.T) {
	svc := newTestService(&fakeCompleter{}, nil)

	_, err := svc.GenerateResume(context.Background(), types.ComposeResumeRequest{JobTitle: "x", Experience: "y"})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "skills", validationErr.Field)
}

func TestOptimizeResume(t *testing.T) {
	fake := &fakeCompleter{text: "Tailored resume"}
	svc := newTestService(fake, nil)

	text, err := svc.OptimizeResume(context.Background(), types.OptimizeResumeRequest{JobDescription: "Platform team, Kubernetes"})
	require.NoError(t, err)
	assert.Equal(t, types.FreeText("Tailored resume"), text)
	assert.Contains(t, fake.prompts[0], "Platform team, Kubernetes")
}

func TestOptimizeResume_CompletionFailure(t *testing.T) {
	svc := newTestService(&fakeCompleter{err: errors.New("boom")}, nil)

	_, err := svc.OptimizeResume(context.Background(), types.OptimizeResumeRequest{JobDescription: "jd"})

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, "completion failed: boom", err.Error())
}

func TestValidationError_Message(t *testing.T) {
	assert.Equal(t, "validation error in answer: missing required field",
		(&ValidationError{Field: "answer", Message: "missing required field"}).Error())
	assert.Equal(t, "validation error: bad", (&ValidationError{Message: "bad"}).Error())
}
