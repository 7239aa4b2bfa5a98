package session

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// listModels prints the numbered model list. ok is false when the endpoint
// failed or returned nothing; the user has already been told.
func (s *session) listModels() ([]string, bool) {
	ctx, cancel := s.collaboratorContext(s.Timeouts.Lookup)
	defer cancel()

	models, err := s.LLM.ListModels(ctx)
	if err != nil {
		s.Log.Warn("list models", zap.Error(err))
		s.term.Sendf("Error LLM/models: %v\n", err)
		return nil, false
	}
	if len(models) == 0 {
		s.term.Send("No hay modelos disponibles.\n")
		return nil, false
	}

	var b strings.Builder
	b.WriteString("Modelos disponibles:\n")
	for i, model := range models {
		b.WriteString(strconv.Itoa(i+1) + ") " + model + "\n")
	}
	s.term.Send(b.String())
	return models, true
}

// chooseModel resolves a 1-based index or takes the input as a literal id.
func chooseModel(models []string, choice string) string {
	choice = strings.TrimSpace(choice)
	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(models) {
		return models[n-1]
	}
	return choice
}

func (s *session) llmChat() outcome {
	models, ok := s.listModels()
	if !ok {
		return outcomeMenu
	}

	s.term.Send("Selecciona modelo (número o nombre):\n> ")
	choice, ok := s.read(s.Timeouts.ModelSelect)
	if !ok {
		return outcomeClosed
	}
	if choice == "" {
		s.term.Send("Sin selección.\n")
		return outcomeMenu
	}

	s.model = chooseModel(models, choice)
	s.term.Sendf("\nUsando modelo: %s\n", s.model)
	s.term.Send("Comandos: 'modelos' para cambiar, 'salir'/'quit' para volver al menú\n")

	for {
		s.term.Send("Prompt:\n> ")
		prompt, ok := s.read(s.Timeouts.Prompt)
		if !ok {
			return outcomeClosed
		}
		if prompt == "" {
			s.term.Send("Tiempo agotado. Intenta de nuevo.\n")
			continue
		}

		switch strings.ToLower(prompt) {
		case "salir", "quit":
			s.term.Send("Saliendo del modo LLM...\n")
			return outcomeMenu
		case "modelos", "modelo", "cambiar":
			if !s.switchModel() {
				return outcomeClosed
			}
			continue
		}

		s.term.Send(s.complete(prompt))
		s.term.Send("(Escribe otro prompt, 'modelos' para cambiar o 'salir'/'quit' para volver)\n")
	}
}

// switchModel re-lists the models and swaps the active one. It returns false
// only when the link is gone.
func (s *session) switchModel() bool {
	models, ok := s.listModels()
	if !ok {
		return true
	}

	s.term.Send("Selecciona nuevo modelo:\n> ")
	choice, ok := s.read(s.Timeouts.ModelSelect)
	if !ok {
		return false
	}
	if choice != "" {
		s.model = chooseModel(models, choice)
		s.term.Sendf("Modelo cambiado a: %s\n", s.model)
	}
	return true
}

func (s *session) complete(prompt string) string {
	ctx, cancel := s.collaboratorContext(s.Timeouts.Completion)
	defer cancel()

	answer, err := s.LLM.Complete(ctx, s.model, prompt)
	if err != nil {
		return "Error LLM/chat: " + err.Error() + "\n"
	}
	return answer + "\n"
}
