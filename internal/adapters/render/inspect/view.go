package inspect

import (
	"fmt"
	"strings"

	"github.com/bnema/lora-bbs/internal/application"
	"github.com/bnema/lora-bbs/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

const (
	defaultPublicLimit = 10
	defaultPostLimit   = 5
	barWidth           = 20
)

// RenderOptions caps how many public entries and posts per board are shown.
// Zero values fall back to the session windows.
type RenderOptions struct {
	PublicLimit int
	PostLimit   int
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.PublicLimit <= 0 {
		o.PublicLimit = defaultPublicLimit
	}
	if o.PostLimit <= 0 {
		o.PostLimit = defaultPostLimit
	}
	return o
}

func renderSnapshot(snapshot application.Snapshot, opts RenderOptions, s styles) string {
	pending := lo.SumBy(snapshot.Mailboxes, func(box application.MailboxCount) int { return box.Messages })

	return lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render("LoRa BBS storage"),
		s.header.Render(fmt.Sprintf("public: %d · mailboxes: %d (%d pending) · boards: %d",
			len(snapshot.Public), len(snapshot.Mailboxes), pending, len(snapshot.Boards))),
		s.section.Render(renderPublic(snapshot.Public, opts.PublicLimit, s)),
		s.section.Render(renderMailboxes(snapshot.Mailboxes, s)),
		s.section.Render(renderBoards(snapshot.Boards, opts.PostLimit, s)),
	)
}

func renderPublic(entries []string, limit int, s styles) string {
	lines := []string{s.heading.Render("Public room")}
	if len(entries) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("No public messages."))...)
	}

	for _, entry := range tail(entries, limit) {
		lines = append(lines, s.entry.Render(entry))
	}
	if hidden := len(entries) - limit; hidden > 0 {
		lines = append(lines, s.empty.Render(fmt.Sprintf("(%d older)", hidden)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderMailboxes(boxes []application.MailboxCount, s styles) string {
	lines := []string{s.heading.Render("Mailboxes")}
	if len(boxes) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("No pending private messages."))...)
	}

	most := lo.MaxBy(boxes, func(a, b application.MailboxCount) bool { return a.Messages > b.Messages }).Messages
	width := lo.Max(lo.Map(boxes, func(box application.MailboxCount, _ int) int { return len([]rune(box.Recipient)) }))
	for _, box := range boxes {
		name := box.Recipient + strings.Repeat(" ", width-len([]rune(box.Recipient)))
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			s.author.Render(name), " ",
			renderBar(box.Messages, most, s), " ",
			s.count.Render(fmt.Sprintf("%d pending", box.Messages)),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderBoards(boards []application.BoardSummary, limit int, s styles) string {
	lines := []string{s.heading.Render("Boards")}
	if len(boards) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("No boards."))...)
	}

	for _, board := range boards {
		lines = append(lines, s.count.Render(fmt.Sprintf("[%s] %d posts", board.Category, len(board.Posts))))
		for _, post := range tail(board.Posts, limit) {
			lines = append(lines, "  "+renderPost(post, s))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPost(post domain.Post, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.stamp.Render("["+post.Timestamp+"]"), " ",
		s.author.Render(post.User+":"), " ",
		s.entry.Render(post.Msg),
	)
}

// renderBar scales n against most into a fixed-width bar.
func renderBar(n, most int, s styles) string {
	filled := 0
	if most > 0 {
		filled = n * barWidth / most
	}
	if n > 0 && filled == 0 {
		filled = 1
	}
	return "[" + s.barFill.Render(strings.Repeat("#", filled)) + s.barEmpty.Render(strings.Repeat(".", barWidth-filled)) + "]"
}

func tail[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}
