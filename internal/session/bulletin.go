package session

import (
	"errors"
	"strings"

	"github.com/bnema/lora-bbs/internal/application"
	"github.com/bnema/lora-bbs/internal/domain"
)

func (s *session) bulletin() outcome {
	s.term.Sendf("=== Tablón de Anuncios ===\nCategorías: %s\n", strings.Join(s.Store.Categories(), ", "))
	s.term.Send("Comandos: list (categorías), read <cat>, post <cat> <msg>, salir\n> ")

	for {
		line, ok := s.read(0)
		if !ok {
			return outcomeClosed
		}
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "salir") {
			break
		}
		if domain.IsDisconnect(line) {
			return outcomeDisconnect
		}

		s.bulletinCommand(line)
	}

	s.term.Send("Saliendo del tablón.\n")
	return outcomeMenu
}

// cutKeyword matches a leading keyword case-insensitively and returns the
// trimmed remainder. A bare keyword matches with an empty remainder.
func cutKeyword(line, keyword string) (string, bool) {
	head, rest, _ := cutField(line)
	if !strings.EqualFold(head, keyword) {
		return "", false
	}
	return rest, true
}

func (s *session) bulletinCommand(line string) {
	if strings.EqualFold(line, "list") {
		s.term.Sendf("Categorías disponibles: %s\n", strings.Join(s.Store.Categories(), ", "))
		return
	}
	if category, ok := cutKeyword(line, "read"); ok && category != "" {
		s.readBoard(category)
		return
	}
	if rest, ok := cutKeyword(line, "post"); ok {
		s.postBoard(rest)
		return
	}
	s.term.Send("Comando desconocido.\n")
}

func (s *session) readBoard(category string) {
	canonical, posts, err := s.Store.ReadBoard(category)
	if err != nil {
		s.term.Send("Categoría no existe.\n")
		return
	}

	var b strings.Builder
	b.WriteString("Tablón '" + canonical + "' (últimos 5):\n---\n")
	for _, post := range posts {
		b.WriteString("[" + post.Timestamp + "] " + post.User + ": " + post.Msg + "\n")
	}
	b.WriteString("---\n")
	s.term.Send(b.String())
}

func (s *session) postBoard(rest string) {
	category, body, found := cutField(rest)
	if !found || category == "" {
		s.term.Send("Uso: post <cat> <msg>\n")
		return
	}

	err := s.Store.PostBoard(s.ctx, application.PostBoardCommand{
		User:     s.user.Name,
		Category: category,
		Body:     body,
	})
	if errors.Is(err, domain.ErrUnknownCategory) || errors.Is(err, domain.ErrEmptyMessage) {
		s.term.Send("Categoría inválida o mensaje vacío.\n")
		return
	}
	s.term.Send("Post enviado.\n")
}
