package parsing

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func TestParseFeedback_StrictJSON(t *testing.T) {
	raw := `{"strengths": ["Specific example"], "improvements": ["Quantify impact"], "overall": "Good answer."}`

	got := ParseFeedback(raw)
	assert.Equal(t, types.Feedback{
		Strengths:    []string{"Specific example"},
		Improvements: []string{"Quantify impact"},
		Overall:      "Good answer.",
	}, got)
}

func TestParseFeedback_StrictJSONFillsEmptyFields(t *testing.T) {
	raw := "```json\n{\"strengths\": [], \"improvements\": [\"  \"], \"overall\": \" \", \"score\": 4}\n```"

	got := ParseFeedback(raw)
	assert.Equal(t, types.Feedback{
		Strengths:    []string{types.NoStrengthsPlaceholder},
		Improvements: []string{types.NoImprovementsPlaceholder},
		Overall:      types.NoOverallPlaceholder,
	}, got)
}

func TestParseFeedback_HeadingScenario(t *testing.T) {
	raw := "Strengths\n- Clear examples\nImprovements\n- Add metrics\nOverall\nSolid answer overall."

	got := ParseFeedback(raw)
	assert.Equal(t, types.Feedback{
		Strengths:    []string{"Clear examples"},
		Improvements: []string{"Add metrics"},
		Overall:      "Solid answer overall.",
	}, got)
}

func TestParseFeedback_MissingKeyFallsThrough(t *testing.T) {
	raw := `{"strengths": ["a"], "improvements": ["b"]}`

	got := ParseFeedback(raw)
	// The heuristic sees "strength" and "improvement" on the single line and keeps nothing.
	assert.Equal(t, types.Feedback{
		Strengths:    []string{types.NoStrengthsPlaceholder},
		Improvements: []string{types.NoImprovementsPlaceholder},
		Overall:      types.NoOverallPlaceholder,
	}, got)
}

func TestParseFeedback_InlineObjectStaysInProse(t *testing.T) {
	raw := "Strengths\n- Used {\"strengths\": [\"x\"], \"improvements\": [], \"overall\": \"y\"} notation\n" +
		"Improvements\n- more metrics\nOverall\nGood."

	_, err := StrictFeedback(raw)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)

	// The bullet mentions "strengths", so it is read as a heading and dropped.
	want := types.Feedback{
		Strengths:    []string{types.NoStrengthsPlaceholder},
		Improvements: []string{"more metrics"},
		Overall:      "Good.",
	}
	if diff := cmp.Diff(want, ParseFeedback(raw)); diff != "" {
		t.Errorf("ParseFeedback() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFeedback_ObjectOnOwnLines(t *testing.T) {
	raw := "Here is my evaluation:\n{\"strengths\": [\"Clear\"], \"improvements\": [\"Depth\"], \"overall\": \"Fine.\"}\nHope it helps."

	want := types.Feedback{Strengths: []string{"Clear"}, Improvements: []string{"Depth"}, Overall: "Fine."}
	if diff := cmp.Diff(want, ParseFeedback(raw)); diff != "" {
		t.Errorf("ParseFeedback() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractFeedback(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want types.Feedback
	}{
		{
			name: "markdown headings and bullets",
			raw: "## Strengths:\n• Uses STAR format\n- Concise\n\n## Areas for Improvement\n- Mention results\n\n" +
				"## Overall Assessment\nA strong answer.\nWith room to grow.",
			want: types.Feedback{
				Strengths:    []string{"Uses STAR format", "Concise"},
				Improvements: []string{"Mention results"},
				Overall:      "A strong answer. With room to grow.",
			},
		},
		{
			name: "heading keyword beats bullet on the same line",
			raw:  "Strengths\n- Good strength of argument\n- Clear\nImprovements\n- Needs improvement in pacing\n- Slow down",
			want: types.Feedback{
				Strengths:    []string{"Clear"},
				Improvements: []string{"Slow down"},
				Overall:      types.NoOverallPlaceholder,
			},
		},
		{
			name: "non-bullet lines under lists are ignored",
			raw:  "Strengths\nYou did well.\n- Structure\nImprovements\nConsider:\n- Depth",
			want: types.Feedback{
				Strengths:    []string{"Structure"},
				Improvements: []string{"Depth"},
				Overall:      types.NoOverallPlaceholder,
			},
		},
		{
			name: "content before any heading is ignored",
			raw:  "- stray bullet\nthanks for answering",
			want: types.Feedback{
				Strengths:    []string{types.NoStrengthsPlaceholder},
				Improvements: []string{types.NoImprovementsPlaceholder},
				Overall:      types.NoOverallPlaceholder,
			},
		},
		{
			name: "bare overall heading restarts the section",
			raw:  "Overall\nFirst part.\n**Overall:**\nSecond part, overall fine.",
			want: types.Feedback{
				Strengths:    []string{types.NoStrengthsPlaceholder},
				Improvements: []string{types.NoImprovementsPlaceholder},
				Overall:      "First part. Second part, overall fine.",
			},
		},
		{
			name: "overall heading with inline text is still a heading",
			raw:  "Overall: decent but vague",
			want: types.Feedback{
				Strengths:    []string{types.NoStrengthsPlaceholder},
				Improvements: []string{types.NoImprovementsPlaceholder},
				Overall:      types.NoOverallPlaceholder,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractFeedback(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExtractFeedback() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFeedback_AlwaysNonEmpty(t *testing.T) {
	inputs := []string{
		"",
		"no structure at all",
		"null",
		`{"strengths": null, "improvements": [], "overall": "x"}`,
		"Strengths\nImprovements\nOverall",
		"[1,2,3]",
		"• only a bullet",
	}

	for _, raw := range inputs {
		t.Run(raw, func(t *testing.T) {
			got := ParseFeedback(raw)
			assert.NotEmpty(t, got.Strengths)
			assert.NotEmpty(t, got.Improvements)
			assert.NotEmpty(t, got.Overall)
		})
	}
}

func TestParseFeedback_RoundTrip(t *testing.T) {
	raws := []string{
		"Strengths\n- Clear examples\nImprovements\n- Add metrics\nOverall\nSolid answer overall.",
		`{"strengths": ["a"], "improvements": [], "overall": "c"}`,
		"nothing useful",
	}

	for _, raw := range raws {
		t.Run(raw, func(t *testing.T) {
			first := ParseFeedback(raw)

			data, err := json.Marshal(first)
			require.NoError(t, err)

			second, err := StrictFeedback(string(data))
			require.NoError(t, err)
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("round trip mismatch (-first +second):\n%s", diff)
			}
		})
	}
}

func TestNormalizationError_Message(t *testing.T) {
	err := &NormalizationError{Shape: "questions", Message: "nothing found"}
	assert.Equal(t, "questions: nothing found", err.Error())
}
