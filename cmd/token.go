package cmd

import (
	"CSChat/be/internal/auth"
	"CSChat/be/internal/config"
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"time"
)

var tokenSubject string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the API (requires jwt.secret_key)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig(configPath, envPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if !cfg.JWT.Enabled() {
			return errors.New("API auth is disabled; set jwt.secret_key or " + config.EnvJWTSecret)
		}

		issued, err := auth.NewServiceImpl(cfg.JWT).IssueToken(tokenSubject)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), issued.Token)
		fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", time.Unix(issued.ExpiresAt, 0).UTC().Format(time.RFC3339))
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "chat-ui", "Subject claim of the token")
}
