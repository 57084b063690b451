package session

type Scope string

const (
	ScopeUser      Scope = "user"
	ScopeCart      Scope = "cart"
	ScopeSaved     Scope = "saved"
	ScopeTickets   Scope = "tickets"
	ScopeFilters   Scope = "filters"
	ScopeDiscovery Scope = "discovery"
)

const subscriberBuffer = 16

// Change describes one committed write and carries the state right after it.
type Change struct {
	Scopes   []Scope
	Snapshot Snapshot
}

func (c Change) Has(scope Scope) bool {
	for _, s := range c.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// OnChange registers fn to run after every commit, in commit order.
// Hooks run while the state lock is held: they must not call back into State
// and should hand slow work to another goroutine.
func (s *State) OnChange(fn func(Change)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, fn)
}

// Subscribe returns a channel of changes. Slow readers miss changes rather
// than block writers. cancel closes the channel.
func (s *State) Subscribe() (<-chan Change, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan Change, subscriberBuffer)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

func (s *State) commitLocked(scopes ...Scope) {
	if len(s.hooks) == 0 && len(s.subs) == 0 {
		return
	}
	change := Change{Scopes: scopes, Snapshot: s.snapshotLocked()}
	for _, fn := range s.hooks {
		fn(change)
	}
	for _, ch := range s.subs {
		select {
		case ch <- change:
		default:
		}
	}
}
