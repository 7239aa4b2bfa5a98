package domain

import "sort"

// Mailbox maps recipient -> sender -> ordered entries.
type Mailbox map[string]map[string][]string

// PrivateEntry is one queued message ready to be shown to its recipient.
type PrivateEntry struct {
	Sender string
	Entry  string
}

func NewMailbox() Mailbox {
	return Mailbox{}
}

func (m Mailbox) Queue(recipient, sender, entry string) {
	senders, ok := m[recipient]
	if !ok {
		senders = map[string][]string{}
		m[recipient] = senders
	}
	senders[sender] = append(senders[sender], entry)
}

// Pending lists the recipient's entries grouped by sender (senders sorted,
// entries in arrival order) without removing them.
func (m Mailbox) Pending(recipient string) []PrivateEntry {
	senders := m[recipient]
	if len(senders) == 0 {
		return nil
	}

	names := make([]string, 0, len(senders))
	for name := range senders {
		names = append(names, name)
	}
	sort.Strings(names)

	var entries []PrivateEntry
	for _, name := range names {
		for _, entry := range senders[name] {
			entries = append(entries, PrivateEntry{Sender: name, Entry: entry})
		}
	}
	return entries
}

// Drain removes and returns everything queued for recipient. There is no
// partial read: the whole sub-mapping goes at once.
func (m Mailbox) Drain(recipient string) []PrivateEntry {
	entries := m.Pending(recipient)
	delete(m, recipient)
	return entries
}

func (m Mailbox) Count(recipient string) int {
	total := 0
	for _, entries := range m[recipient] {
		total += len(entries)
	}
	return total
}
