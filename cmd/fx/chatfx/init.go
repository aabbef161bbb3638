package chatfx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"annapurna/internal/api/controllers"
	"annapurna/internal/services"
	"annapurna/pkg/utils"
)

var Module = fx.Provide(
	provideCompletionClient, provideChatService, provideChatController)

type chatConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// provideCompletionClient builds the configured AI provider. A missing
// key is not fatal; the chat service then serves canned responses only.
func provideCompletionClient() utils.CompletionClient {
	cfg := getChatConfig()
	if cfg.APIKey == "" {
		log.Printf("No API key for chat provider %q, serving fallback responses only", cfg.Provider)
		return nil
	}

	client, err := utils.NewCompletionClient(cfg.Provider, cfg.APIKey, cfg.Model)
	if err != nil {
		log.Printf("Chat provider init failed: %v, serving fallback responses only", err)
		return nil
	}

	log.Printf("Initialized %s chat client with model: %s", cfg.Provider, cfg.Model)
	return client
}

func provideChatService(client utils.CompletionClient) services.ChatServiceInterface {
	return services.NewChatService(client)
}

func provideChatController(chatService services.ChatServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(chatService)
}

func getChatConfig() chatConfig {
	provider := getEnvWithDefault("CHAT_PROVIDER", "openai")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	default:
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	}

	return chatConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
