package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/bnema/lora-bbs/internal/ports"
	"github.com/shopspring/decimal"
)

const exchangeRateURL = "https://api.exchangerate-api.com"

// ExchangeRateAPI reads the keyless v4 "latest" endpoint.
type ExchangeRateAPI struct {
	Client Client
}

var _ ports.ExchangeRateProvider = ExchangeRateAPI{}

type latestRates struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

func (e ExchangeRateAPI) Rates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	body, err := e.Client.get(ctx, exchangeRateURL, "/v4/latest/"+url.PathEscape(base), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("exchange rates: %w", err)
	}

	var payload latestRates
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode exchange rates: %w", err)
	}

	return payload.Rates, nil
}
