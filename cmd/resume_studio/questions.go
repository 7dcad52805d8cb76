package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/ingestion"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/types"
)

var (
	questionsFile   string
	questionsResume string
	questionsJSON   bool
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate interview questions for a resume",
	Long:  `Generate interview questions from a resume given inline (--resume) or as a PDF, DOCX, Markdown or text file (--file).`,
	RunE:  runQuestions,
}

func init() {
	questionsCmd.Flags().StringVarP(&questionsFile, "file", "f", "", "Path to the resume file")
	questionsCmd.Flags().StringVar(&questionsResume, "resume", "", "Resume text")
	questionsCmd.Flags().BoolVar(&questionsJSON, "json", false, "Print the questions as a JSON array")
	questionsCmd.MarkFlagsMutuallyExclusive("file", "resume")
	questionsCmd.MarkFlagsOneRequired("file", "resume")
	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	resume, err := resumeText(cmd.ErrOrStderr(), questionsFile, questionsResume)
	if err != nil {
		return err
	}

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	coachService, gateway, err := newCoach(cmd.Context(), cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create llm gateway: %w", err)
	}
	defer func() { _ = gateway.Close() }()

	questions, err := coachService.GenerateQuestions(cmd.Context(), types.QuestionsRequest{ResumeContent: resume})
	if err != nil {
		return err
	}
	return printQuestions(cmd.OutOrStdout(), "INTERVIEW QUESTIONS", questions, questionsJSON)
}

// resumeText returns inline text or the extracted text of path. A file's
// metadata summary is written to info.
func resumeText(info io.Writer, path, inline string) (string, error) {
	if path == "" {
		return inline, nil
	}
	text, metadata, err := ingestion.IngestFromFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume: %w", err)
	}
	observability.NewPrinter(info).PrintMetadata(metadata)
	return text, nil
}

func printQuestions(w io.Writer, title string, questions types.QuestionList, asJSON bool) error {
	if asJSON {
		return printJSON(w, questions)
	}
	observability.NewPrinter(w).PrintQuestions(title, questions)
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
