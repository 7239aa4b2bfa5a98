package session

import (
	"errors"
	"strconv"
	"strings"

	"github.com/bnema/lora-bbs/internal/domain"
)

func (s *session) calendar() outcome {
	s.term.Send("=== 📅 Calendario ===\n")

	now := s.Clock.Now()
	grid, err := domain.MonthGrid(now.Year(), int(now.Month()))
	if err == nil {
		s.term.Send(grid)
	}
	s.term.Sendf("\nMes actual: %s %d\n", domain.MonthName(now.Month()), now.Year())
	s.term.Send("Ingresa año y mes (ej: 2025 12) para ver otro, o 'salir':\n> ")

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

		if reply := calendarReply(line); reply != "" {
			s.term.Send(reply)
		}
		s.term.Send("Ingresa año y mes o 'salir':\n> ")
	}

	s.term.Send("Saliendo del calendario.\n")
	return outcomeMenu
}

const calendarFormatHint = "Formato inválido. Usa: año mes (ej: 2025 12)\n"

// calendarReply renders the grid for a "<year> <month>" request or the
// matching correction. Anything other than two fields gets no reply.
func calendarReply(line string) string {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return ""
	}

	year, err := strconv.Atoi(fields[0])
	if err != nil || year < 1 || year > 9999 {
		return calendarFormatHint
	}
	month, err := strconv.Atoi(fields[1])
	if err != nil {
		return calendarFormatHint
	}

	grid, err := domain.MonthGrid(year, month)
	if errors.Is(err, domain.ErrInvalidMonth) {
		return "Mes inválido (1-12).\n"
	}
	if err != nil {
		return calendarFormatHint
	}
	return grid
}
