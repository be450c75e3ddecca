package cmd

import (
	"context"
	"github.com/spf13/cobra"
)

var (
	configPath string
	envPath    string
)

var rootCmd = &cobra.Command{
	Use:   "cschat",
	Short: "Completion gateway for the CS Chat UI",
	Long: `cschat serves a single chat completion endpoint that forwards a conversation
to OpenAI or Gemini depending on the requested model.

Examples:
  cschat serve --config config/config.yaml
  cschat models
  cschat token --subject chat-ui`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML configuration file (optional)")
	rootCmd.PersistentFlags().StringVar(&envPath, "env", ".env", "Path to .env file; ignored when missing")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(tokenCmd)
}

// Execute is the entry point called from main.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
