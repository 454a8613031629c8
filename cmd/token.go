package cmd

import (
	"errors"
	"fmt"

	"github.com/spendbin/backend/internal/auth"
	"github.com/spf13/cobra"
)

var (
	flagTokenUser  uint64
	flagTokenAdmin bool
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a bearer token for a user",
	Long:  "Prints a token signed with the configured secret. This is meant for development and testing.",
	Args:  cobra.NoArgs,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().Uint64Var(&flagTokenUser, "user", 0, "ID of the user")
	tokenCmd.Flags().BoolVar(&flagTokenAdmin, "admin", false, "Allow reconciliation of all budgets")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	if flagTokenUser == 0 {
		return errors.New("--user must be set to a user id larger than 0")
	}

	tokens, err := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}

	token, err := tokens.GenerateToken(flagTokenUser, flagTokenAdmin)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
