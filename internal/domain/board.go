package domain

import (
	"sort"
	"strings"
)

// DefaultCategories seeds an empty or missing board document.
var DefaultCategories = []string{"General", "LoRa", "Off-Topic"}

type Post struct {
	User      string
	Msg       string
	Timestamp string
}

// Boards maps category name -> ordered posts.
type Boards map[string][]Post

func SeedBoards() Boards {
	boards := Boards{}
	boards.EnsureDefaults()
	return boards
}

// EnsureDefaults adds any missing default category without touching
// categories that are already present.
func (b Boards) EnsureDefaults() {
	for _, name := range DefaultCategories {
		if _, ok := b.Canonical(name); !ok {
			b[name] = []Post{}
		}
	}
}

// Canonical resolves a user-typed category to its stored name, ignoring case.
func (b Boards) Canonical(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if _, ok := b[name]; ok {
		return name, true
	}
	for stored := range b {
		if strings.EqualFold(stored, name) {
			return stored, true
		}
	}
	return "", false
}

func (b Boards) Categories() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Recent returns a copy of the last n posts of a canonical category, oldest first.
func (b Boards) Recent(category string, n int) []Post {
	posts := b[category]
	if n <= 0 {
		return nil
	}
	start := len(posts) - n
	if start < 0 {
		start = 0
	}
	return append([]Post(nil), posts[start:]...)
}

func (b Boards) Append(category string, post Post) {
	b[category] = append(b[category], post)
}
