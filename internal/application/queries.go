package application

import (
	"github.com/bnema/lora-bbs/internal/domain"
	"github.com/shopspring/decimal"
)

type MailboxCount struct {
	Recipient string
	Messages  int
}

type BoardSummary struct {
	Category string
	Posts    []domain.Post
}

// Snapshot is a read-only copy of every stored document.
type Snapshot struct {
	Public    []string
	Mailboxes []MailboxCount
	Boards    []BoardSummary
}

type NewsReport struct {
	Country   string
	Region    string
	Headlines []string
}

type RateLine struct {
	Target    domain.FiatTarget
	Rate      decimal.Decimal
	Available bool
}

type RateReport struct {
	Country string
	Base    string
	Lines   []RateLine
}
