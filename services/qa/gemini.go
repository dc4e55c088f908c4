package qa

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tropicab/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const systemPreamble = "You are the concierge of Tropicab, a private airport transfer company in the " +
	"Dominican Republic (airports PUJ, SDQ, STI, POP). Answer the traveler's question briefly and warmly, " +
	"in their language. Do not quote transfer prices; the booking assistant handles those."

// GeminiService answers general questions through the Gemini API with a hard
// per-call timeout.
type GeminiService struct {
	model   *genai.GenerativeModel
	timeout time.Duration
}

// NewGeminiService builds the client once at startup.
func NewGeminiService(apiKey string, timeout time.Duration) (*GeminiService, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("qa: failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel("models/gemini-1.5-flash")
	return &GeminiService{model: model, timeout: timeout}, nil
}

func (s *GeminiService) Ask(ctx context.Context, question string, history []models.ChatMessage, inBookingFlow bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var sb strings.Builder
	sb.WriteString(systemPreamble)
	if inBookingFlow {
		sb.WriteString(" The traveler is in the middle of booking a transfer; keep the answer short so they can get back to it.")
	}
	sb.WriteString("\n\n")
	for _, msg := range history {
		fmt.Fprintf(&sb, "%s: %s\n", msg.Role, msg.Text)
	}
	fmt.Fprintf(&sb, "user: %s\n", question)

	resp, err := s.model.GenerateContent(ctx, genai.Text(sb.String()))
	if err != nil {
		return "", fmt.Errorf("qa: gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("qa: empty gemini response")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			out.WriteString(string(textPart))
		}
	}
	answer := strings.TrimSpace(out.String())
	if answer == "" {
		return "", fmt.Errorf("qa: gemini returned no text")
	}
	return answer, nil
}
