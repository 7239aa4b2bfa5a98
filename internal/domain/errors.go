package domain

import "errors"

var (
	ErrEmptyMessage     = errors.New("message is empty")
	ErrMissingRecipient = errors.New("recipient is required")
	ErrUnknownCategory  = errors.New("category not found")
	ErrUnknownCountry   = errors.New("country not recognized")
	ErrInvalidMonth     = errors.New("month must be between 1 and 12")
	ErrArticleNotFound  = errors.New("article not found")
	ErrNoModels         = errors.New("no language models available")
	ErrNoRates          = errors.New("no exchange rates returned")
)
