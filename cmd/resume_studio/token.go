package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/server"
)

var tokenUser string

var tokenCmd = &cobra.Command{
	Use:   "dev-token",
	Short: "Mint a bearer token for local development",
	Long:  `Sign a token with JWT_SECRET for the given user ID (a new one when omitted). Use it against the /me and /resumes endpoints.`,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "", "User ID (UUID)")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return err
	}

	userID := uuid.New()
	if tokenUser != "" {
		userID, err = uuid.Parse(tokenUser)
		if err != nil {
			return fmt.Errorf("invalid --user: %w", err)
		}
	}

	token, err := server.NewJWTService(jwtConfig).GenerateToken(userID)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "user: %s\n", userID)
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
