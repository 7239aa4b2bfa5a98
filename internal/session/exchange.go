package session

import (
	"errors"
	"strings"

	"github.com/bnema/lora-bbs/internal/application"
	"github.com/bnema/lora-bbs/internal/domain"
)

const rateDecimals = 4

func (s *session) exchange() outcome {
	s.term.Send("=== 💱 Tasas de Cambio ===\n")
	s.term.Send("Ingresa el país (ej: México, España, USA, Japón):\n> ")

	country, ok := s.read(s.Timeouts.Lookup)
	if !ok {
		return outcomeClosed
	}
	if country == "" {
		s.term.Send("País no ingresado.\n")
		return outcomeMenu
	}
	if domain.IsDisconnect(country) {
		return outcomeDisconnect
	}

	base, known := domain.CurrencyFor(country)
	if !known {
		s.term.Sendf("País '%s' no reconocido. Moneda base no disponible.\n", country)
		s.term.Send("Países disponibles: México, USA, España, UK, Japón, etc.\n")
		return outcomeMenu
	}

	s.term.Sendf("Moneda base para %s: %s\n", domain.DisplayCountry(country), base)
	s.term.Send("Obteniendo tasas... (usando API gratuita)\n")

	ctx, cancel := s.collaboratorContext(s.Timeouts.Lookup)
	defer cancel()

	report, err := s.Lookups.Rates(ctx, country)
	switch {
	case errors.Is(err, domain.ErrNoRates):
		s.term.Send("Error al obtener tasas fiat.\n")
		return outcomeMenu
	case err != nil:
		s.term.Sendf("Error en tasas fiat: %v\n", err)
		return outcomeMenu
	}

	s.term.Send(formatRates(report))
	s.term.Send("\nSaliendo de Tasas de Cambio.\n")
	return outcomeMenu
}

func formatRates(report application.RateReport) string {
	var b strings.Builder
	b.WriteString("Tasas de cambio (1 " + report.Base + " ≈):\n")
	for _, line := range report.Lines {
		value := "No disponible"
		if line.Available {
			value = line.Rate.StringFixed(rateDecimals)
		}
		b.WriteString(line.Target.Name + " (" + line.Target.Code + "): " + value + "\n")
	}
	return b.String()
}
