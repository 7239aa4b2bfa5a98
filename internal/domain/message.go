package domain

import (
	"fmt"
	"time"
)

// TimestampLayout is the layout shared by the public log, mailboxes and boards.
const TimestampLayout = "2006-01-02 15:04:05"

func FormatTimestamp(at time.Time) string {
	return at.Format(TimestampLayout)
}

// FormatPublic renders a public chat entry as it is stored and displayed.
func FormatPublic(at time.Time, sender, body string) string {
	return fmt.Sprintf("[%s] %s: %s", FormatTimestamp(at), sender, body)
}

// FormatPrivate renders a private entry; the sender is kept as the mailbox key.
func FormatPrivate(at time.Time, body string) string {
	return fmt.Sprintf("[%s] %s", FormatTimestamp(at), body)
}

// PublicLog is the append-only public room. Insertion order is display order.
type PublicLog struct {
	Entries []string
}

func (l *PublicLog) Append(entry string) {
	l.Entries = append(l.Entries, entry)
}

// Recent returns a copy of the last n entries, oldest first.
func (l PublicLog) Recent(n int) []string {
	if n <= 0 {
		return nil
	}
	start := len(l.Entries) - n
	if start < 0 {
		start = 0
	}
	return append([]string(nil), l.Entries[start:]...)
}
