package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/lora-bbs/internal/domain"
	"github.com/bnema/lora-bbs/internal/ports"
)

const wikipediaURLFormat = "https://%s.wikipedia.org"

// Wikipedia reads the REST page summary. Client.BaseURL, when set, replaces
// the per-language host.
type Wikipedia struct {
	Client Client
}

var _ ports.Encyclopedia = Wikipedia{}

type wikipediaSummary struct {
	Extract string `json:"extract"`
}

func (w Wikipedia) Lookup(ctx context.Context, term string, lang string) (string, error) {
	if lang == "" {
		lang = "es"
	}

	title := url.PathEscape(strings.ReplaceAll(strings.TrimSpace(term), " ", "_"))
	body, err := w.Client.get(ctx, fmt.Sprintf(wikipediaURLFormat, lang), "/api/rest_v1/page/summary/"+title, nil, nil)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return "", fmt.Errorf("wikipedia %q: %w", term, domain.ErrArticleNotFound)
		}
		return "", fmt.Errorf("wikipedia: %w", err)
	}

	var summary wikipediaSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return "", fmt.Errorf("decode wikipedia summary: %w", err)
	}

	return summary.Extract, nil
}
