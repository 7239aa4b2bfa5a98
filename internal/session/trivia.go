package session

import (
	"strings"

	"github.com/bnema/lora-bbs/internal/domain"
	"go.uber.org/zap"
)

func (s *session) trivia() outcome {
	s.term.Send("=== Trivia Tech ===\nResponde preguntas generadas por LLM. ¡Acumula puntos!\n'salir' para parar.\n")

	ctx, cancel := s.collaboratorContext(s.Timeouts.Lookup)
	model, err := s.Trivia.PickModel(ctx)
	cancel()
	if err != nil {
		s.Log.Warn("pick trivia model", zap.Error(err))
		s.term.Send("Error en LLM. Juego cancelado.\n")
		return outcomeMenu
	}

	var score domain.Score
	result := s.playTrivia(model, &score)
	if result != outcomeClosed {
		s.term.Sendf("¡Fin del juego! Puntuación final: %d\n", score)
	}
	return result
}

// playTrivia runs rounds until the user stops or the model fails.
func (s *session) playTrivia(model string, score *domain.Score) outcome {
	for {
		question, err := s.askQuestion(model)
		if err != nil {
			s.Log.Warn("generate trivia question", zap.Error(err))
			s.term.Sendf("Error LLM/chat: %v\n", err)
			return outcomeMenu
		}

		s.term.Sendf("Pregunta:\n%s\nTu respuesta (A/B/C/D): ", question)
		answer, ok := s.readAnswer()
		if !ok {
			return outcomeClosed
		}
		if strings.EqualFold(answer, "salir") {
			return outcomeMenu
		}
		if domain.IsDisconnect(answer) {
			return outcomeDisconnect
		}

		correct, err := s.judge(model, question, strings.ToUpper(answer))
		if err != nil {
			s.Log.Warn("judge trivia answer", zap.Error(err))
			s.term.Sendf("Error LLM/chat: %v\n", err)
			return outcomeMenu
		}

		if correct {
			score.Award()
			s.term.Send("¡Correcto! +1 punto.\n")
		} else {
			s.term.Send("Incorrecto. Sigue intentándolo.\n")
		}
		s.term.Sendf("Puntuación: %d\n", *score)
	}
}

// readAnswer re-prompts on every expired wait so only an answer or a keyword
// moves the game on.
func (s *session) readAnswer() (string, bool) {
	for {
		answer, ok := s.read(s.Timeouts.Prompt)
		if !ok || answer != "" {
			return answer, ok
		}
		s.term.Send("Tiempo agotado. Intenta de nuevo.\nTu respuesta (A/B/C/D): ")
	}
}

func (s *session) askQuestion(model string) (string, error) {
	ctx, cancel := s.collaboratorContext(s.Timeouts.Completion)
	defer cancel()
	return s.Trivia.Question(ctx, model)
}

func (s *session) judge(model, question, answer string) (bool, error) {
	ctx, cancel := s.collaboratorContext(s.Timeouts.Completion)
	defer cancel()
	return s.Trivia.Judge(ctx, model, question, answer)
}
