// Package document holds the on-disk shape of the three BBS documents,
// shared by every repository backend.
package document

import (
	"fmt"

	"github.com/bnema/lora-bbs/internal/domain"
)

const CurrentVersion = 1

// Document names double as file stems, table keys and badger keys.
const (
	PublicLogName = "chat_public"
	MailboxName   = "private_chat"
	BoardsName    = "boards"
)

type PublicLog struct {
	Version int      `toml:"version" json:"version"`
	Entries []string `toml:"entries" json:"entries"`
}

type Mailbox struct {
	Version    int                            `toml:"version" json:"version"`
	Recipients map[string]map[string][]string `toml:"recipients" json:"recipients"`
}

type Boards struct {
	Version    int               `toml:"version" json:"version"`
	Categories map[string][]Post `toml:"categories" json:"categories"`
}

type Post struct {
	User      string `toml:"user" json:"user"`
	Msg       string `toml:"msg" json:"msg"`
	Timestamp string `toml:"timestamp" json:"timestamp"`
}

func ValidateVersion(name string, version int) error {
	if version > CurrentVersion {
		return fmt.Errorf("unsupported %s schema version %d (current %d)", name, version, CurrentVersion)
	}

	return nil
}

func FromPublicLog(log domain.PublicLog) PublicLog {
	entries := log.Entries
	if entries == nil {
		entries = []string{}
	}
	return PublicLog{Version: CurrentVersion, Entries: entries}
}

func (d PublicLog) Domain() domain.PublicLog {
	return domain.PublicLog{Entries: d.Entries}
}

func FromMailbox(mailbox domain.Mailbox) Mailbox {
	recipients := make(map[string]map[string][]string, len(mailbox))
	for recipient, senders := range mailbox {
		if len(senders) == 0 {
			continue
		}
		recipients[recipient] = senders
	}
	return Mailbox{Version: CurrentVersion, Recipients: recipients}
}

func (d Mailbox) Domain() domain.Mailbox {
	mailbox := domain.NewMailbox()
	for recipient, senders := range d.Recipients {
		for sender, entries := range senders {
			for _, entry := range entries {
				mailbox.Queue(recipient, sender, entry)
			}
		}
	}
	return mailbox
}

func FromBoards(boards domain.Boards) Boards {
	categories := make(map[string][]Post, len(boards))
	for name, posts := range boards {
		encoded := make([]Post, 0, len(posts))
		for _, post := range posts {
			encoded = append(encoded, Post{User: post.User, Msg: post.Msg, Timestamp: post.Timestamp})
		}
		categories[name] = encoded
	}
	return Boards{Version: CurrentVersion, Categories: categories}
}

// Domain decodes the boards. A document without categories decodes to nil
// so callers can seed the defaults.
func (d Boards) Domain() domain.Boards {
	if len(d.Categories) == 0 {
		return nil
	}

	boards := make(domain.Boards, len(d.Categories))
	for name, posts := range d.Categories {
		decoded := make([]domain.Post, 0, len(posts))
		for _, post := range posts {
			decoded = append(decoded, domain.Post{User: post.User, Msg: post.Msg, Timestamp: post.Timestamp})
		}
		boards[name] = decoded
	}
	return boards
}
