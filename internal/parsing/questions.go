package parsing

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

var numberedLine = regexp.MustCompile(`^[1-5]\.`)

// quoteMarkers open a quoted question line; trailingCutset is stripped from its end.
const (
	quoteMarkers   = `"'“”`
	trailingCutset = `"'“”, ` + "\t"
)

func hasQuotePrefix(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	return r != utf8.RuneError && strings.ContainsRune(quoteMarkers, r)
}

// ParseQuestionList normalizes a completion into a non-empty list of questions.
// Strict JSON wins when it parses and validates; otherwise question-like lines
// are extracted. A *NormalizationError is returned when nothing usable remains.
func ParseQuestionList(raw string) (types.QuestionList, error) {
	if list, err := StrictQuestionList(raw); err == nil {
		return list, nil
	}

	list := ExtractQuestionList(raw)
	if len(list) == 0 {
		return nil, &NormalizationError{
			Shape:   shapeQuestions,
			Message: "no questions could be extracted from the completion",
		}
	}
	return list, nil
}

// StrictQuestionList parses the completion as a JSON array of strings.
func StrictQuestionList(raw string) (types.QuestionList, error) {
	data, err := decodeStrict(raw, shapeQuestions, schemas.Questions, '[', ']')
	if err != nil {
		return nil, err
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &ParseError{Shape: shapeQuestions, Message: "invalid JSON", Cause: err}
	}

	items = nonBlank(items)
	if len(items) == 0 {
		return nil, &ParseError{Shape: shapeQuestions, Message: "array holds only blank strings"}
	}
	return types.QuestionList(items), nil
}

// ExtractQuestionList keeps lines that start with a straight or curly quote, a
// dash, a bullet, or 1. through 5. numbering, stripped of that marker and
// trailing quotes and commas.
func ExtractQuestionList(raw string) types.QuestionList {
	var list types.QuestionList
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		var rest string
		switch {
		case hasQuotePrefix(line):
			_, size := utf8.DecodeRuneInString(line)
			rest = line[size:]
		case strings.HasPrefix(line, "-"):
			rest = strings.TrimPrefix(line, "-")
		case strings.HasPrefix(line, "•"):
			rest = strings.TrimPrefix(line, "•")
		case numberedLine.MatchString(line):
			rest = line[2:]
		default:
			continue
		}

		rest = strings.TrimSpace(rest)
		rest = strings.TrimRight(rest, trailingCutset)
		if rest == "" {
			continue
		}
		list = append(list, rest)
	}
	return list
}
