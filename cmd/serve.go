package cmd

import (
	"CSChat/be/internal/auth"
	"CSChat/be/internal/chatbot"
	"CSChat/be/internal/config"
	"CSChat/be/internal/llm"
	"CSChat/be/internal/server"
	"fmt"
	"github.com/google/generative-ai-go/genai"
	"github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"
	"google.golang.org/api/option"
	"log"
	"strconv"
)

var overridePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&overridePort, "port", 0, "Override server port from configuration")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// Load configuration
	cfg, err := config.LoadConfig(configPath, envPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if overridePort != 0 {
		if overridePort < 0 || overridePort > 65535 {
			return fmt.Errorf("port override %d must be a valid TCP port", overridePort)
		}
		cfg.Server.Port = strconv.Itoa(overridePort)
	}

	// Provider clients are built once and shared read-only by all requests.
	var openAIClient llm.ChatCompletionClient
	if cfg.OpenAI.APIKey != "" {
		openAIClient = openai.NewClient(cfg.OpenAI.APIKey)
	} else {
		log.Printf("%s is not set; OpenAI models will report a configuration error", config.EnvOpenAIAPIKey)
	}
	openAIProvider := llm.NewOpenAIProvider(openAIClient)

	var geminiClient *genai.Client
	if cfg.GeminiAI.APIKey != "" {
		geminiClient, err = genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAI.APIKey))
		if err != nil {
			return fmt.Errorf("create gemini client: %w", err)
		}
		defer func() {
			if err := geminiClient.Close(); err != nil {
				log.Printf("Failed to close gemini client: %v", err)
			}
		}()
	} else {
		log.Printf("%s is not set; Gemini models are disabled", config.EnvGeminiAPIKey)
	}
	geminiProvider := llm.NewGeminiAIProvider(llm.NewGenaiClient(geminiClient))

	// Initialize services
	chatService := chatbot.NewChatService(openAIProvider, geminiProvider)
	chatController := chatbot.NewChatController(chatService)

	var authService auth.Service
	if cfg.JWT.Enabled() {
		authService = auth.NewServiceImpl(cfg.JWT)
	}

	return server.New(cfg, chatController, authService).Run(ctx)
}
