package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/minhanle/skillcheck/config"
	"github.com/minhanle/skillcheck/internal/apperr"
	"github.com/minhanle/skillcheck/internal/dto"
	"github.com/minhanle/skillcheck/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// ErrGeneratorUnavailable is returned when no Gemini API key is configured.
var ErrGeneratorUnavailable = errors.New("question generator is not configured")

const maxDraftCount = 10

// GeminiQuestionService drafts multiple-choice questions with Gemini. Drafts
// are returned for author review and never persisted directly.
type GeminiQuestionService interface {
	GenerateQuestions(ctx context.Context, req dto.GenerateQuestionsRequest) ([]dto.QuestionDraft, error)
}

type geminiQuestionService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewGeminiQuestionService(cfg *config.Config) (GeminiQuestionService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiQuestionService will be non-functional.")
		return &geminiQuestionService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &geminiQuestionService{client: model, cfg: cfg}, nil
}

func buildDraftPrompt(category, difficulty string, count int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Write %d multiple-choice questions for a candidate screening assessment.\n", count))
	sb.WriteString(fmt.Sprintf("Topic: %s. Difficulty: %s.\n", category, difficulty))
	sb.WriteString("Each question must have exactly 4 answer options with exactly one correct option.\n")
	sb.WriteString("Respond with a JSON array only, no prose, in this shape:\n")
	sb.WriteString(`[{"question": "...", "options": ["...", "...", "...", "..."], "correctAnswer": 0}]`)
	return sb.String()
}

// stripCodeFence removes a surrounding markdown code fence if the model added
// one despite the instructions.
func stripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	}
	return strings.TrimSpace(raw)
}

func (s *geminiQuestionService) GenerateQuestions(ctx context.Context, req dto.GenerateQuestionsRequest) ([]dto.QuestionDraft, error) {
	if s.client == nil {
		return nil, ErrGeneratorUnavailable
	}

	category := req.Category
	if category == "" {
		category = "General"
	}
	difficulty := req.Difficulty
	switch difficulty {
	case "":
		difficulty = model.DifficultyMedium
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
	default:
		return nil, apperr.Invalid("difficulty", "must be one of easy, medium, hard")
	}
	count := req.Count
	if count == 0 {
		count = 3
	}
	if count < 1 || count > maxDraftCount {
		return nil, apperr.Invalid("count", fmt.Sprintf("must be between 1 and %d", maxDraftCount))
	}

	resp, err := s.client.GenerateContent(ctx, genai.Text(buildDraftPrompt(category, difficulty, count)))
	if err != nil {
		log.Error().Err(err).Msg("Gemini draft generation failed")
		return nil, fmt.Errorf("gemini generation failed: %w", err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}

	var drafts []dto.QuestionDraft
	if err := json.Unmarshal([]byte(stripCodeFence(sb.String())), &drafts); err != nil {
		log.Error().Err(err).Str("raw", sb.String()).Msg("Gemini returned unparseable draft payload")
		return nil, fmt.Errorf("could not parse generated questions: %w", err)
	}

	// Discard drafts that would fail question validation instead of failing
	// the whole batch.
	valid := make([]dto.QuestionDraft, 0, len(drafts))
	for _, d := range drafts {
		if len(d.Options) < 2 || len(d.Options) > 6 {
			continue
		}
		if d.CorrectAnswer < 0 || d.CorrectAnswer >= len(d.Options) {
			continue
		}
		d.Category = category
		d.Difficulty = difficulty
		valid = append(valid, d)
	}
	if len(valid) == 0 {
		return nil, errors.New("gemini produced no usable question drafts")
	}
	return valid, nil
}
