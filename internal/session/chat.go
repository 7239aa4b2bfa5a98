package session

import (
	"errors"
	"strings"
	"unicode"

	"github.com/bnema/lora-bbs/internal/application"
	"github.com/bnema/lora-bbs/internal/domain"
)

const chatHelp = "=== Modo Chat/Foro ===\n" +
	"Comandos:\n" +
	"- public <mensaje>: Postear en sala pública\n" +
	"- to <usuario> <mensaje>: Enviar privado (se guarda si no está presente)\n" +
	"- getusers: Listar usuarios presentes\n" +
	"- viewpublic: Ver últimos 10 mensajes públicos\n" +
	"- viewprivate: Ver privados pendientes\n" +
	"- salir: Volver al menú\n" +
	"> "

// cutField splits line at its first whitespace run. rest is trimmed; found is
// false when line holds a single field.
func cutField(line string) (head, rest string, found bool) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, "", false
	}
	return line[:i], strings.TrimSpace(line[i:]), true
}

func (s *session) chat() outcome {
	s.term.Send(chatHelp)

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

		s.chatCommand(line)
	}

	s.term.Send("Saliendo del modo Chat/Foro.\n")
	return outcomeMenu
}

func (s *session) chatCommand(line string) {
	switch line {
	case "getusers":
		s.showUsers()
		return
	case "viewpublic":
		s.showPublic()
		return
	case "viewprivate":
		s.showPrivate()
		return
	}

	if body, ok := strings.CutPrefix(line, "public "); ok {
		s.postPublic(body)
		return
	}
	if rest, ok := strings.CutPrefix(line, "to "); ok {
		s.sendPrivate(strings.TrimSpace(rest))
		return
	}
	s.term.Send("Comando desconocido. Revisa la ayuda implícita con los comandos.\n")
}

func (s *session) showUsers() {
	users := s.Presence.List()
	if len(users) == 0 {
		s.term.Send("No hay usuarios presentes.\n")
		return
	}
	s.term.Sendf("Usuarios presentes: %s\n", strings.Join(users, ", "))
}

func (s *session) showPublic() {
	recent := s.Store.RecentPublic()
	if len(recent) == 0 {
		s.term.Send("Sala pública vacía.\n")
		return
	}

	var b strings.Builder
	b.WriteString("Sala pública (últimos 10):\n---\n")
	for _, entry := range recent {
		b.WriteString(entry + "\n")
	}
	b.WriteString("---\n")
	s.term.Send(b.String())
}

func (s *session) showPrivate() {
	pending := s.Store.PendingPrivate(s.user.Name)
	if len(pending) == 0 {
		s.term.Send("No hay mensajes privados pendientes.\n")
		return
	}

	var b strings.Builder
	b.WriteString("Mensajes privados pendientes:\n---\n")
	for _, entry := range pending {
		b.WriteString(entry.Sender + ": " + entry.Entry + "\n")
	}
	b.WriteString("---\n")
	s.term.Send(b.String())
}

func (s *session) postPublic(body string) {
	if _, err := s.Store.PostPublic(s.ctx, s.user.Name, body); err != nil {
		s.term.Send("Mensaje vacío, ignoro.\n")
		return
	}
	s.term.Send("Mensaje enviado a la sala pública.\n")
}

func (s *session) sendPrivate(rest string) {
	target, body, found := cutField(rest)
	if !found {
		s.term.Send("Uso: to <usuario> <mensaje>\n")
		return
	}

	err := s.Store.SendPrivate(s.ctx, application.SendPrivateCommand{
		Sender:    s.user.Name,
		Recipient: target,
		Body:      body,
	})
	switch {
	case errors.Is(err, domain.ErrEmptyMessage):
		s.term.Send("Mensaje vacío, ignoro.\n")
		return
	case err != nil:
		s.term.Send("Uso: to <usuario> <mensaje>\n")
		return
	}

	if s.Presence.Contains(target) {
		s.term.Sendf("Mensaje privado enviado a %s.\n", target)
		return
	}
	s.term.Sendf("%s no está presente. Mensaje guardado para cuando se conecte.\n", target)
}
