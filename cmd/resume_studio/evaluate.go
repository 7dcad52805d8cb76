package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/types"
)

var (
	evaluateQuestion string
	evaluateAnswer   string
	evaluateFile     string
	evaluateResume   string
	evaluateJSON     bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Grade an interview answer against a resume",
	RunE:  runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateQuestion, "question", "q", "", "Interview question")
	evaluateCmd.Flags().StringVarP(&evaluateAnswer, "answer", "a", "", "Candidate answer")
	evaluateCmd.Flags().StringVarP(&evaluateFile, "file", "f", "", "Path to the resume file")
	evaluateCmd.Flags().StringVar(&evaluateResume, "resume", "", "Resume text")
	evaluateCmd.Flags().BoolVar(&evaluateJSON, "json", false, "Print the feedback as JSON")
	_ = evaluateCmd.MarkFlagRequired("question")
	_ = evaluateCmd.MarkFlagRequired("answer")
	evaluateCmd.MarkFlagsMutuallyExclusive("file", "resume")
	evaluateCmd.MarkFlagsOneRequired("file", "resume")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	resume, err := resumeText(cmd.ErrOrStderr(), evaluateFile, evaluateResume)
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

	feedback, err := coachService.EvaluateAnswer(cmd.Context(), types.EvaluateRequest{
		Question:      evaluateQuestion,
		Answer:        evaluateAnswer,
		ResumeContent: resume,
	})
	if err != nil {
		return err
	}
	return printFeedback(cmd.OutOrStdout(), feedback, evaluateJSON)
}

func printFeedback(w io.Writer, feedback types.Feedback, asJSON bool) error {
	if asJSON {
		return printJSON(w, feedback)
	}
	observability.NewPrinter(w).PrintFeedback(feedback)
	return nil
}
