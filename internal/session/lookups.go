package session

import (
	"errors"
	"strings"

	"github.com/bnema/lora-bbs/internal/domain"
)

// askTerm prompts for one lookup term. ok is false when the link is gone;
// an empty term has already been answered with "Sin entrada.".
func (s *session) askTerm(prompt string) (string, bool, outcome) {
	s.term.Send(prompt)
	term, ok := s.read(s.Timeouts.Lookup)
	if !ok {
		return "", false, outcomeClosed
	}
	if term == "" {
		s.term.Send("Sin entrada.\n")
		return "", false, outcomeMenu
	}
	return term, true, outcomeMenu
}

func (s *session) search() outcome {
	query, ok, result := s.askTerm("Término para buscar (DuckDuckGo):\n> ")
	if !ok {
		return result
	}

	ctx, cancel := s.collaboratorContext(s.Timeouts.Lookup)
	defer cancel()

	hit, found, err := s.Lookups.Search(ctx, query)
	switch {
	case err != nil:
		s.term.Sendf("Error DuckDuckGo: %v\n", err)
	case !found:
		s.term.Send("No se encontraron resultados.\n")
	default:
		s.term.Sendf("%s\n%s\n", hit.Title, hit.URL)
	}
	return outcomeMenu
}

func (s *session) encyclopedia() outcome {
	term, ok, result := s.askTerm("Término para Wikipedia:\n> ")
	if !ok {
		return result
	}

	ctx, cancel := s.collaboratorContext(s.Timeouts.Lookup)
	defer cancel()

	summary, err := s.Lookups.Summary(ctx, term)
	switch {
	case errors.Is(err, domain.ErrArticleNotFound):
		s.term.Sendf("No se encontró página para '%s' (404)\n", term)
	case err != nil:
		s.term.Sendf("Error Wikipedia: %v\n", err)
	case summary == "":
		s.term.Send("Sin resumen disponible.\n")
	default:
		s.term.Sendf("%s\n", summary)
	}
	return outcomeMenu
}

func (s *session) weather() outcome {
	city, ok, result := s.askTerm("Ciudad para el clima:\n> ")
	if !ok {
		return result
	}

	ctx, cancel := s.collaboratorContext(s.Timeouts.Lookup)
	defer cancel()

	report, err := s.Lookups.Weather(ctx, city)
	if err != nil {
		s.term.Sendf("Error clima: %v\n", err)
		return outcomeMenu
	}
	s.term.Sendf("%s\n", report)
	return outcomeMenu
}

func (s *session) news() outcome {
	country, ok, result := s.askTerm("País para ver noticias:\n>")
	if !ok {
		return result
	}

	ctx, cancel := s.collaboratorContext(s.Timeouts.Lookup)
	defer cancel()

	report, err := s.Lookups.News(ctx, country)
	switch {
	case errors.Is(err, domain.ErrUnknownCountry):
		s.term.Sendf("País no reconocido: '%s'. Usa ej. 'México', 'España', 'USA'.\n", country)
	case err != nil:
		s.term.Sendf("Error noticias: %v\n", err)
	case len(report.Headlines) == 0:
		s.term.Send("No hay noticias disponibles para este país.\n")
	default:
		var b strings.Builder
		b.WriteString("Últimas noticias de " + report.Country + ":\n")
		for _, headline := range report.Headlines {
			b.WriteString("- " + headline + "\n")
		}
		s.term.Send(b.String())
	}
	return outcomeMenu
}

func (s *session) credits() outcome {
	s.term.Send(s.Credits)
	return outcomeMenu
}
