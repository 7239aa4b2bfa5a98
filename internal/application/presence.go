package application

import (
	"sort"
	"sync"

	"github.com/samber/lo"
)

// Presence is the set of usernames currently attached to the link.
type Presence struct {
	mu    sync.Mutex
	names map[string]struct{}
}

func NewPresence() *Presence {
	return &Presence{names: map[string]struct{}{}}
}

func (p *Presence) Add(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.names[name] = struct{}{}
}

func (p *Presence) Remove(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.names, name)
}

func (p *Presence) Contains(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.names[name]
	return ok
}

func (p *Presence) List() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	names := lo.Keys(p.names)
	sort.Strings(names)
	return names
}
