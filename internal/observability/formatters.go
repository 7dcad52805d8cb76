// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-studio/internal/ingestion"
	"github.com/jonathan/resume-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// innerWidth is the text width inside a box
	innerWidth = boxWidth - 4
)

// Printer handles formatted output for terminal mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Long lines are wrapped.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	p.printLine(title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, wrapped := range wrap(line, innerWidth) {
			p.printLine(wrapped)
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

//nolint:errcheck
func (p *Printer) printLine(line string) {
	pad := innerWidth - utf8.RuneCountInString(line)
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(p.out, "│ %s%s │\n", line, strings.Repeat(" ", pad))
}

// wrap splits line on word boundaries so no piece exceeds width runes.
// Continuation lines keep the indentation of the first line plus two spaces.
func wrap(line string, width int) []string {
	if utf8.RuneCountInString(line) <= width {
		return []string{line}
	}

	indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
	hanging := indent + "  "

	var (
		lines   []string
		current = indent
	)
	for _, word := range strings.Fields(line) {
		for utf8.RuneCountInString(word) > width-len(hanging) {
			// A single word longer than the box is split hard.
			if strings.TrimSpace(current) != "" {
				lines = append(lines, current)
				current = hanging
			}
			cut := width - utf8.RuneCountInString(current)
			runes := []rune(word)
			if cut >= len(runes) {
				break
			}
			lines = append(lines, current+string(runes[:cut]))
			current = hanging
			word = string(runes[cut:])
		}

		switch {
		case strings.TrimSpace(current) == "":
			current += word
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = hanging + word
		}
	}
	if strings.TrimSpace(current) != "" {
		lines = append(lines, current)
	}
	return lines
}

// PrintQuestions outputs a numbered list of interview questions or suggestions.
func (p *Printer) PrintQuestions(title string, questions types.QuestionList) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	for i, q := range questions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, q))
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFeedback outputs strengths, improvements and the overall assessment.
func (p *Printer) PrintFeedback(feedback types.Feedback) {
	var sb strings.Builder

	sb.WriteString("Strengths:\n")
	for _, s := range feedback.Strengths {
		sb.WriteString(fmt.Sprintf("  • %s\n", s))
	}
	sb.WriteString("\nImprovements:\n")
	for _, s := range feedback.Improvements {
		sb.WriteString(fmt.Sprintf("  • %s\n", s))
	}
	sb.WriteString("\nOverall:\n")
	sb.WriteString("  " + feedback.Overall)

	p.printBox("ANSWER FEEDBACK", sb.String())
}

// PrintMetadata outputs a summary of an ingested resume file.
func (p *Printer) PrintMetadata(meta *ingestion.Metadata) {
	if meta == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:     %s\n", meta.Filename))
	sb.WriteString(fmt.Sprintf("Type:     %s\n", meta.ContentType))
	sb.WriteString(fmt.Sprintf("Words:    %d\n", meta.Words))
	sb.WriteString(fmt.Sprintf("SHA-256:  %s", shortHash(meta.Hash)))

	p.printBox("RESUME", sb.String())
}

func shortHash(hash string) string {
	if len(hash) > 16 {
		return hash[:16] + "..."
	}
	return hash
}
