package chatbot

import (
	"CSChat/be/internal/llm"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/invopop/jsonschema"
	"log"
	"net/http"
	"strings"
)

const maxBodyBytes = 1 << 20 // 1 MiB

type ChatController struct {
	chatService *ChatService
	schema      *jsonschema.Schema
}

func NewChatController(chatService *ChatService) *ChatController {
	reflector := &jsonschema.Reflector{DoNotReference: true}
	return &ChatController{
		chatService: chatService,
		schema:      reflector.Reflect(&ChatRequest{}),
	}
}

func (cc *ChatController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/chat", cc.Chat)
	router.GET("/chat/schema", cc.Schema)
	router.GET("/models", cc.Models)
}

// Chat handles one conversation turn and always answers with either
// {message} or {error[, details]}.
func (cc *ChatController) Chat(ctx *gin.Context) {
	requestedModel := DefaultModel

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBodyBytes)
	body, err := ctx.GetRawData()
	if err != nil {
		cc.abortWithError(ctx, &llm.InvalidRequestError{Message: errMessagesRequired}, requestedModel)
		return
	}

	req, err := ParseChatRequest(body)
	if err != nil {
		cc.abortWithError(ctx, err, requestedModel)
		return
	}
	requestedModel = req.Model

	reply, err := cc.chatService.Complete(ctx.Request.Context(), req)
	if err != nil {
		cc.abortWithError(ctx, err, requestedModel)
		return
	}

	ctx.JSON(http.StatusOK, ChatResponse{Message: reply})
}

func (cc *ChatController) Schema(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, cc.schema)
}

func (cc *ChatController) Models(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, ModelsResponse{Default: DefaultModel, Models: Models()})
}

func (cc *ChatController) abortWithError(ctx *gin.Context, err error, requestedModel string) {
	status, body := normalizeError(err, requestedModel)
	if status >= http.StatusInternalServerError {
		log.Printf("Chat completion failed (model=%s): %v", requestedModel, err)
	}
	ctx.AbortWithStatusJSON(status, body)
}

// normalizeError maps the error taxonomy onto a status code and response body.
// The provider named in the generic fallback is derived from the requested
// model string, not from the adapter that ran.
func normalizeError(err error, requestedModel string) (int, gin.H) {
	var invalidErr *llm.InvalidRequestError
	if errors.As(err, &invalidErr) {
		return http.StatusBadRequest, gin.H{"error": invalidErr.Message}
	}

	var unconfiguredErr *llm.UnconfiguredError
	if errors.As(err, &unconfiguredErr) {
		return http.StatusInternalServerError, gin.H{"error": unconfiguredErr.Message}
	}

	var noResponseErr *llm.NoResponseError
	if errors.As(err, &noResponseErr) {
		return http.StatusInternalServerError, gin.H{"error": noResponseErr.Error()}
	}

	message := err.Error()
	if message == "" {
		provider := llm.ProviderOpenAI
		if strings.Contains(requestedModel, "gemini") {
			provider = llm.ProviderGemini
		}
		message = "Failed to get response from " + provider.DisplayName()
	}
	return http.StatusInternalServerError, gin.H{
		"error":   message,
		"details": llm.UpstreamDetails(err),
	}
}
