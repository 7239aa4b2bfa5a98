package web

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/lora-bbs/internal/ports"
)

const wttrURL = "https://wttr.in"

// Wttr returns wttr.in's one-line format.
type Wttr struct {
	Client Client
}

var _ ports.WeatherProvider = Wttr{}

func (w Wttr) Current(ctx context.Context, city string) (string, error) {
	values := url.Values{}
	values.Set("format", "3")

	body, err := w.Client.get(ctx, wttrURL, "/"+url.PathEscape(strings.TrimSpace(city)), values, nil)
	if err != nil {
		return "", fmt.Errorf("wttr: %w", err)
	}

	return strings.ToValidUTF8(string(body), "�"), nil
}
