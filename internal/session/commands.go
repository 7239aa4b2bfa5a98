package session

import (
	"strings"

	"github.com/bnema/lora-bbs/internal/domain"
)

// Command is a main-menu entry.
type Command int

const (
	CommandUnknown Command = iota
	CommandSearch
	CommandEncyclopedia
	CommandWeather
	CommandNews
	CommandLLM
	CommandChat
	CommandBulletin
	CommandTrivia
	CommandCalendar
	CommandExchange
	CommandCredits
	CommandDisconnect
)

var commandKeys = map[string]Command{
	"1":  CommandSearch,
	"2":  CommandEncyclopedia,
	"3":  CommandWeather,
	"4":  CommandNews,
	"5":  CommandLLM,
	"6":  CommandChat,
	"7":  CommandBulletin,
	"8":  CommandTrivia,
	"9":  CommandCalendar,
	"10": CommandExchange,
	"0":  CommandCredits,
}

func ParseCommand(input string) Command {
	input = strings.TrimSpace(input)
	if domain.IsDisconnect(input) {
		return CommandDisconnect
	}
	if cmd, ok := commandKeys[input]; ok {
		return cmd
	}
	return CommandUnknown
}

// SubMode reports whether the command owns the link until its own exit keyword.
func (c Command) SubMode() bool {
	switch c {
	case CommandLLM, CommandChat, CommandBulletin, CommandTrivia, CommandCalendar, CommandExchange:
		return true
	default:
		return false
	}
}

func (c Command) String() string {
	switch c {
	case CommandSearch:
		return "search"
	case CommandEncyclopedia:
		return "encyclopedia"
	case CommandWeather:
		return "weather"
	case CommandNews:
		return "news"
	case CommandLLM:
		return "llm"
	case CommandChat:
		return "chat"
	case CommandBulletin:
		return "bulletin"
	case CommandTrivia:
		return "trivia"
	case CommandCalendar:
		return "calendar"
	case CommandExchange:
		return "exchange"
	case CommandCredits:
		return "credits"
	case CommandDisconnect:
		return "disconnect"
	default:
		return "unknown"
	}
}

// outcome tells the menu loop what to do once a handler returns.
type outcome int

const (
	outcomeMenu outcome = iota
	outcomeDisconnect
	outcomeClosed
)

type handler func(s *session) outcome

// handlers maps every dispatchable command to its handler.
var handlers = map[Command]handler{
	CommandSearch:       (*session).search,
	CommandEncyclopedia: (*session).encyclopedia,
	CommandWeather:      (*session).weather,
	CommandNews:         (*session).news,
	CommandLLM:          (*session).llmChat,
	CommandChat:         (*session).chat,
	CommandBulletin:     (*session).bulletin,
	CommandTrivia:       (*session).trivia,
	CommandCalendar:     (*session).calendar,
	CommandExchange:     (*session).exchange,
	CommandCredits:      (*session).credits,
}
