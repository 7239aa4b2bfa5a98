package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/lora-bbs/internal/domain"
	"github.com/bnema/lora-bbs/internal/ports"
)

const (
	triviaQuestionPrompt = "Genera una pregunta trivia simple sobre tecnología/LoRa, con 4 opciones (A,B,C,D) y la respuesta correcta al final (ej. 'Respuesta: B'). Mantén corto."
	triviaJudgePrompt    = "Pregunta: %s\nRespuesta usuario: %s\n¿Es correcta? Responde solo 'Sí' o 'No'."
)

// TriviaService asks the language model for questions and for verdicts on
// the user's answers. Scoring is a substring match on the verdict.
type TriviaService struct {
	llm ports.LanguageModel
}

func NewTriviaService(llm ports.LanguageModel) *TriviaService {
	return &TriviaService{llm: llm}
}

// PickModel returns the first model the endpoint lists.
func (s *TriviaService) PickModel(ctx context.Context) (string, error) {
	models, err := s.llm.ListModels(ctx)
	if err != nil {
		return "", fmt.Errorf("list models: %w", err)
	}
	if len(models) == 0 {
		return "", domain.ErrNoModels
	}

	return models[0], nil
}

func (s *TriviaService) Question(ctx context.Context, model string) (string, error) {
	question, err := s.llm.Complete(ctx, model, triviaQuestionPrompt)
	if err != nil {
		return "", fmt.Errorf("generate question: %w", err)
	}

	return question, nil
}

// Judge reports whether the model accepted answer for question.
func (s *TriviaService) Judge(ctx context.Context, model, question, answer string) (bool, error) {
	verdict, err := s.llm.Complete(ctx, model, fmt.Sprintf(triviaJudgePrompt, question, answer))
	if err != nil {
		return false, fmt.Errorf("judge answer: %w", err)
	}

	return IsAffirmative(verdict), nil
}

// IsAffirmative matches "sí" or "si" anywhere in the lower-cased verdict.
func IsAffirmative(verdict string) bool {
	verdict = strings.ToLower(strings.TrimSpace(verdict))
	return strings.Contains(verdict, "sí") || strings.Contains(verdict, "si")
}
