package services

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"time"

	"annapurna/internal/models/response_models"
	"annapurna/pkg/utils"
)

const chatSystemPrompt = `You are AnnapurnaAI, an expert Ayurvedic wellness advisor and nutritionist.
Your role is to provide guidance based on ancient Ayurvedic wisdom combined with modern understanding.

Key principles to follow:
- Focus on Ayurvedic food recommendations, herbs, and natural remedies
- Explain concepts like doshas (Vata, Pitta, Kapha), agni (digestive fire), and prakriti (constitution)
- Recommend traditional Indian foods and herbs like turmeric, ashwagandha, triphala, tulsi, ginger, etc.
- Provide holistic wellness advice including diet, lifestyle, and natural remedies
- Be warm, compassionate, and use terms like "Namaste" when appropriate
- Keep responses concise (2-3 paragraphs) and actionable
- Always prioritize natural, food-based solutions
- If asked about serious medical conditions, advise consulting a healthcare professional`

// primaryTimeout bounds the provider call; a hung provider degrades to
// the canned responder instead of stalling the request.
const primaryTimeout = 20 * time.Second

const fallbackSource = "fallback"

var greetingResponses = []string{
	"Namaste! I'm your Ayurvedic wellness guide. How may I assist you today?",
	"Welcome to AnnapurnaAI! I'm here to help with ancient wisdom for modern health.",
}

// keywordGroups are matched in order; the first group with a hit wins.
var keywordGroups = []struct {
	keywords []string
	response string
}{
	{
		keywords: []string{"hello", "hi", "namaste"},
	},
	{
		keywords: []string{"diet", "food", "eat"},
		response: "In Ayurveda, diet should align with your dosha (body constitution). Vata types benefit from warm, moist foods. Pitta types need cooling foods. Kapha types thrive with light, warm, and spicy foods.",
	},
	{
		keywords: []string{"digest", "stomach", "acidity"},
		response: "Agni (digestive fire) is central in Ayurveda. To improve digestion: eat warm foods, avoid cold drinks during meals, include ginger and cumin, and maintain regular meal times.",
	},
	{
		keywords: []string{"stress", "anxiety", "worry"},
		response: "For stress, Ayurveda recommends: Ashwagandha herb, Brahmi for mental clarity, daily meditation, abhyanga (oil massage), and pranayama (breathing exercises).",
	},
	{
		keywords: []string{"immun", "sick", "cold"},
		response: "Boost immunity with: Chyawanprash daily, turmeric milk, amla (Indian gooseberry), tulsi tea, and adequate sleep. Avoid cold foods and maintain routine.",
	},
	{
		keywords: []string{"sleep", "insomnia", "tired"},
		response: "Ayurvedic tips for better sleep: warm milk with nutmeg, abhyanga before bed, avoid screens 1 hour before sleep, sleep by 10 PM, and practice meditation.",
	},
}

const fallbackDefault = "I can help you with Ayurvedic food recommendations, dosha balance, herbs, and wellness practices. Please ask about digestion, immunity, stress, diet, or specific health concerns."

type ChatServiceInterface interface {
	// Respond never fails; a primary-path error degrades to a canned
	// reply tagged with the fallback source.
	Respond(ctx context.Context, message string) response_models.ChatResponse
}

type ChatService struct {
	client utils.CompletionClient
}

func NewChatService(client utils.CompletionClient) ChatServiceInterface {
	return &ChatService{client: client}
}

func (s *ChatService) Respond(ctx context.Context, message string) response_models.ChatResponse {
	if s.client != nil {
		ctx, cancel := context.WithTimeout(ctx, primaryTimeout)
		defer cancel()

		reply, err := s.client.Complete(ctx, chatSystemPrompt, message)
		if err == nil {
			return response_models.ChatResponse{
				Message:   reply,
				Source:    s.client.Provider(),
				Timestamp: time.Now(),
			}
		}
		log.Printf("Chat provider error: %v", err)
	}

	return response_models.ChatResponse{
		Message:   FallbackReply(message),
		Source:    fallbackSource,
		Timestamp: time.Now(),
	}
}

// FallbackReply classifies the message by case-insensitive substring
// match and returns the canned response for the first matching group.
func FallbackReply(message string) string {
	lower := strings.ToLower(message)
	for i, group := range keywordGroups {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				if i == 0 {
					return greetingResponses[rand.Intn(len(greetingResponses))]
				}
				return group.response
			}
		}
	}
	return fallbackDefault
}
