package parsing

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

type feedbackSection int

const (
	sectionNone feedbackSection = iota
	sectionStrengths
	sectionImprovements
	sectionOverall
)

// ParseFeedback normalizes a completion into feedback. It never fails: fields
// that could not be filled hold their placeholder text.
func ParseFeedback(raw string) types.Feedback {
	if feedback, err := StrictFeedback(raw); err == nil {
		return feedback
	}
	return ExtractFeedback(raw)
}

// StrictFeedback parses the completion as a JSON object with strengths,
// improvements and overall keys.
func StrictFeedback(raw string) (types.Feedback, error) {
	data, err := decodeStrict(raw, shapeFeedback, schemas.Feedback, '{', '}')
	if err != nil {
		return types.Feedback{}, err
	}

	var feedback types.Feedback
	if err := json.Unmarshal(data, &feedback); err != nil {
		return types.Feedback{}, &ParseError{Shape: shapeFeedback, Message: "invalid JSON", Cause: err}
	}

	feedback.Strengths = nonBlank(feedback.Strengths)
	feedback.Improvements = nonBlank(feedback.Improvements)
	if strings.TrimSpace(feedback.Overall) == "" {
		feedback.Overall = ""
	}
	return feedback.WithPlaceholders(), nil
}

// ExtractFeedback scans the completion line by line. A line mentioning
// "strength", "improvement" or "overall" moves the cursor to that section and
// is not kept as content, even when it also carries a bullet.
func ExtractFeedback(raw string) types.Feedback {
	var (
		feedback types.Feedback
		overall  []string
		cursor   = sectionNone
	)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if next, ok := headingSection(line, cursor); ok {
			cursor = next
			continue
		}

		switch cursor {
		case sectionStrengths, sectionImprovements:
			item, ok := bulletText(line)
			if !ok {
				continue
			}
			if cursor == sectionStrengths {
				feedback.Strengths = append(feedback.Strengths, item)
			} else {
				feedback.Improvements = append(feedback.Improvements, item)
			}
		case sectionOverall:
			overall = append(overall, line)
		}
	}

	feedback.Overall = strings.Join(overall, " ")
	return feedback.WithPlaceholders()
}

// headingSection reports whether line switches the cursor and to which section.
// Inside the overall section only a bare "Overall" heading counts, so prose
// such as "Solid answer overall." stays part of the assessment.
func headingSection(line string, cursor feedbackSection) (feedbackSection, bool) {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "strength"):
		return sectionStrengths, true
	case strings.Contains(lower, "improvement"):
		return sectionImprovements, true
	case strings.Contains(lower, "overall"):
		if cursor == sectionOverall && !isBareHeading(lower, "overall") {
			return cursor, false
		}
		return sectionOverall, true
	}
	return cursor, false
}

// isBareHeading matches lines like "Overall", "## Overall Assessment:" or "**Overall**".
func isBareHeading(lower, word string) bool {
	stripped := strings.Trim(lower, "#*_: \t")
	if !strings.HasPrefix(stripped, word) {
		return false
	}
	return len(strings.Fields(stripped)) <= 2
}

// bulletText strips a leading "-" or "•" marker.
func bulletText(line string) (string, bool) {
	var rest string
	switch {
	case strings.HasPrefix(line, "-"):
		rest = strings.TrimPrefix(line, "-")
	case strings.HasPrefix(line, "•"):
		rest = strings.TrimPrefix(line, "•")
	default:
		return "", false
	}
	rest = strings.TrimSpace(rest)
	return rest, rest != ""
}
