//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedback_WithPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		in   Feedback
		want Feedback
	}{
		{
			name: "empty",
			in:   Feedback{},
			want: Feedback{
				Strengths:    []string{NoStrengthsPlaceholder},
				Improvements: []string{NoImprovementsPlaceholder},
				Overall:      NoOverallPlaceholder,
			},
		},
		{
			name: "complete",
			in:   Feedback{Strengths: []string{"a"}, Improvements: []string{"b"}, Overall: "c"},
			want: Feedback{Strengths: []string{"a"}, Improvements: []string{"b"}, Overall: "c"},
		},
		{
			name: "only overall missing",
			in:   Feedback{Strengths: []string{"a"}, Improvements: []string{"b"}},
			want: Feedback{Strengths: []string{"a"}, Improvements: []string{"b"}, Overall: NoOverallPlaceholder},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.WithPlaceholders())
		})
	}
}

func TestFeedback_WithPlaceholdersDoesNotAlias(t *testing.T) {
	in := Feedback{Strengths: []string{"a"}, Improvements: []string{"b"}, Overall: "c"}
	out := in.WithPlaceholders()
	out.Strengths[0] = "changed"
	assert.Equal(t, "a", in.Strengths[0])
}

func TestFeedback_JSONKeys(t *testing.T) {
	data, err := json.Marshal(Feedback{Strengths: []string{"a"}, Improvements: []string{"b"}, Overall: "c"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"strengths":["a"],"improvements":["b"],"overall":"c"}`, string(data))
}

func TestRequests_Validation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		request any
		wantErr bool
	}{
		{name: "questions ok", request: QuestionsRequest{ResumeContent: "resume"}},
		{name: "questions missing resume", request: QuestionsRequest{}, wantErr: true},
		{name: "evaluate ok", request: EvaluateRequest{Question: "q", Answer: "a", ResumeContent: "r"}},
		{name: "evaluate missing answer", request: EvaluateRequest{Question: "q", ResumeContent: "r"}, wantErr: true},
		{name: "suggestions ok", request: SuggestionsRequest{Section: "skills", Content: "Go"}},
		{name: "suggestions unknown section", request: SuggestionsRequest{Section: "hobbies", Content: "x"}, wantErr: true},
		{name: "suggestions missing content", request: SuggestionsRequest{Section: "closing"}, wantErr: true},
		{name: "compose ok", request: ComposeResumeRequest{JobTitle: "SRE", Experience: "5y", Skills: "Go"}},
		{name: "compose missing skills", request: ComposeResumeRequest{JobTitle: "SRE", Experience: "5y"}, wantErr: true},
		{name: "optimize ok", request: OptimizeResumeRequest{JobDescription: "jd"}},
		{name: "optimize missing description", request: OptimizeResumeRequest{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.request)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateResumeRequest_Validate(t *testing.T) {
	assert.NoError(t, (&CreateResumeRequest{Title: "Backend"}).Validate())
	assert.Error(t, (&CreateResumeRequest{}).Validate())
	assert.Error(t, (&CreateResumeRequest{Title: strings.Repeat("x", 201)}).Validate())
}
