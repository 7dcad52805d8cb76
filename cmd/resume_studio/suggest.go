package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/types"
)

var (
	suggestContent string
	suggestJSON    bool
)

var suggestCmd = &cobra.Command{
	Use:       "suggest <introduction|experience|skills|closing>",
	Short:     "Suggest phrasing for a resume section",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"introduction", "experience", "skills", "closing"},
	RunE:      runSuggest,
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestContent, "content", "c", "", "Current section content")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "Print the suggestions as a JSON array")
	_ = suggestCmd.MarkFlagRequired("content")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	coachService, gateway, err := newCoach(cmd.Context(), cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create llm gateway: %w", err)
	}
	defer func() { _ = gateway.Close() }()

	section := args[0]
	suggestions, err := coachService.GenerateSuggestions(cmd.Context(), types.SuggestionsRequest{
		Section: section,
		Content: suggestContent,
	})
	if err != nil {
		return err
	}
	return printQuestions(cmd.OutOrStdout(), strings.ToUpper(section)+" SUGGESTIONS", suggestions, suggestJSON)
}
