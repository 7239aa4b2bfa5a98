package domain

import (
	"fmt"
	"strings"
	"time"
)

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

const weekHeader = "Do Lu Ma Mi Ju Vi Sa"

func MonthName(month time.Month) string {
	if month < time.January || month > time.December {
		return fmt.Sprintf("Mes %d", month)
	}
	return monthNames[month-1]
}

// MonthGrid renders a Sunday-first month calendar with Spanish headers.
func MonthGrid(year int, month int) (string, error) {
	if month < 1 || month > 12 {
		return "", ErrInvalidMonth
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()
	width := len(weekHeader)

	var b strings.Builder
	b.WriteString(center(fmt.Sprintf("%s %d", MonthName(time.Month(month)), year), width))
	b.WriteString("\n")
	b.WriteString(weekHeader)
	b.WriteString("\n")

	cells := make([]string, 0, 7)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, "  ")
	}
	for day := 1; day <= days; day++ {
		cells = append(cells, fmt.Sprintf("%2d", day))
		if len(cells) == 7 {
			b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
			b.WriteString("\n")
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		b.WriteString("\n")
	}

	return b.String(), nil
}

func center(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s
}
