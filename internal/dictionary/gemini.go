package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiPrompt = `You are an English dictionary. Define the word %q.
Respond with a single JSON object and nothing else, using exactly these keys:
{"phonetic": "IPA transcription or empty string", "partOfSpeech": "...", "definition": "one concise definition", "example": "one example sentence or empty string"}
If this is not a real English word, respond with {"definition": ""}.`

// Gemini is a fallback definition provider backed by Google Gemini, used
// for words the dictionary service has no entry for.
type Gemini struct {
	model string
}

// NewGemini returns a new Gemini provider. An empty model falls back to
// GEMINI_MODEL, then to a default.
func NewGemini(model string) *Gemini {
	if model == "" {
		model = os.Getenv("GEMINI_MODEL")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &Gemini{model: model}
}

// Define asks Gemini for a compact JSON definition of word.
func (g *Gemini) Define(ctx context.Context, word string) (*Definition, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create new gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	model.SetTemperature(0.1)

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(geminiPrompt, word)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates returned from Gemini")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return nil, fmt.Errorf("empty content returned from Gemini")
	}

	txt, ok := candidate.Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("unexpected response format from Gemini")
	}

	return parseGeminiAnswer(word, string(txt))
}

// parseGeminiAnswer decodes the model's JSON answer. An empty definition
// means the model does not recognize the word.
func parseGeminiAnswer(word, answer string) (*Definition, error) {
	answer = strings.TrimSpace(answer)
	answer = strings.TrimPrefix(answer, "```json")
	answer = strings.TrimPrefix(answer, "```")
	answer = strings.TrimSuffix(answer, "```")
	answer = strings.TrimSpace(answer)

	var payload struct {
		Phonetic     string `json:"phonetic"`
		PartOfSpeech string `json:"partOfSpeech"`
		Definition   string `json:"definition"`
		Example      string `json:"example"`
	}
	if err := json.Unmarshal([]byte(answer), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode Gemini answer: %w", err)
	}
	if strings.TrimSpace(payload.Definition) == "" {
		return nil, ErrNotFound
	}

	return &Definition{
		Word:       word,
		Phonetic:   payload.Phonetic,
		POS:        payload.PartOfSpeech,
		Definition: strings.TrimSpace(payload.Definition),
		Example:    strings.TrimSpace(payload.Example),
	}, nil
}
