package prompts

import (
	"fmt"
)

const coachFile = "coach.json"

// Task identifies one of the prompt templates.
type Task string

// Tasks served by the coach.
const (
	TaskQuestions      Task = "questions"
	TaskEvaluate       Task = "evaluate"
	TaskSuggestions    Task = "suggestions"
	TaskComposeResume  Task = "compose-resume"
	TaskOptimizeResume Task = "optimize-resume"
)

// Input names accepted by Build.
const (
	InputResume         = "Resume"
	InputQuestion       = "Question"
	InputAnswer         = "Answer"
	InputSection        = "Section"
	InputContent        = "Content"
	InputJobTitle       = "JobTitle"
	InputExperience     = "Experience"
	InputSkills         = "Skills"
	InputJobDescription = "JobDescription"
)

var requiredInputs = map[Task][]string{
	TaskQuestions:      {InputResume},
	TaskEvaluate:       {InputQuestion, InputAnswer, InputResume},
	TaskSuggestions:    {InputSection, InputContent},
	TaskComposeResume:  {InputJobTitle, InputExperience, InputSkills},
	TaskOptimizeResume: {InputJobDescription},
}

// SectionKind is a resume section that suggestions can be generated for.
type SectionKind string

// Supported resume sections.
const (
	SectionIntroduction SectionKind = "introduction"
	SectionExperience   SectionKind = "experience"
	SectionSkills       SectionKind = "skills"
	SectionClosing      SectionKind = "closing"
)

// SectionKinds lists the supported sections in display order.
func SectionKinds() []SectionKind {
	return []SectionKind{SectionIntroduction, SectionExperience, SectionSkills, SectionClosing}
}

// ParseSectionKind accepts one of the lowercase section names exactly.
func ParseSectionKind(s string) (SectionKind, error) {
	kind := SectionKind(s)
	for _, known := range SectionKinds() {
		if kind == known {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown section %q (expected introduction, experience, skills or closing)", s)
}

// Build produces the prompt for task from named inputs. Every input the task needs
// must be present in the map; the values are embedded verbatim.
func Build(task Task, inputs map[string]string) (string, error) {
	required, ok := requiredInputs[task]
	if !ok {
		return "", fmt.Errorf("unknown prompt task %q", task)
	}
	for _, name := range required {
		if _, present := inputs[name]; !present {
			return "", fmt.Errorf("prompt task %s requires input %s", task, name)
		}
	}

	switch task {
	case TaskQuestions:
		return Questions(inputs[InputResume]), nil
	case TaskEvaluate:
		return Evaluate(inputs[InputQuestion], inputs[InputAnswer], inputs[InputResume]), nil
	case TaskSuggestions:
		kind, err := ParseSectionKind(inputs[InputSection])
		if err != nil {
			return "", err
		}
		return Suggestions(kind, inputs[InputContent])
	case TaskComposeResume:
		return ComposeResume(inputs[InputJobTitle], inputs[InputExperience], inputs[InputSkills]), nil
	default:
		return OptimizeResume(inputs[InputJobDescription]), nil
	}
}

// Questions asks for a JSON array of exactly 5 interview questions about the resume.
func Questions(resumeText string) string {
	return Format(MustGet(coachFile, "interview-questions"), map[string]string{
		InputResume: resumeText,
	})
}

// Evaluate asks for a JSON object with strengths, improvements and overall keys.
func Evaluate(question, answer, resumeText string) string {
	return Format(MustGet(coachFile, "evaluate-answer"), map[string]string{
		InputQuestion: question,
		InputAnswer:   answer,
		InputResume:   resumeText,
	})
}

// Suggestions asks for a JSON array of 5 suggestions for one resume section.
func Suggestions(kind SectionKind, currentDraft string) (string, error) {
	instructions, err := Get(coachFile, "suggestions-"+string(kind))
	if err != nil {
		return "", fmt.Errorf("no suggestion template for section %q: %w", kind, err)
	}
	return Format(MustGet(coachFile, "suggestions-frame"), map[string]string{
		"Instructions": instructions,
		InputContent:   currentDraft,
	}), nil
}

// ComposeResume asks for a prose resume with Summary, Skills, Experience and Education sections.
func ComposeResume(jobTitle, experienceSummary, skills string) string {
	return Format(MustGet(coachFile, "compose-resume"), map[string]string{
		InputJobTitle:   jobTitle,
		InputExperience: experienceSummary,
		InputSkills:     skills,
	})
}

// OptimizeResume asks for a prose resume tailored to a job description.
func OptimizeResume(jobDescription string) string {
	return Format(MustGet(coachFile, "optimize-resume"), map[string]string{
		InputJobDescription: jobDescription,
	})
}
