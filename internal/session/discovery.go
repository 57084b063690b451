package session

import "time"

// DiscoveryCooldown is how long a non-permanent dismissal hides the prompt.
const DiscoveryCooldown = 24 * time.Hour

type Discovery struct {
	DismissedAt *time.Time `json:"dismissedAt,omitempty"`
	Permanent   bool       `json:"permanent"`
}

func (d Discovery) ShouldShow(now time.Time) bool {
	if d.Permanent {
		return false
	}
	if d.DismissedAt == nil {
		return true
	}
	return now.Sub(*d.DismissedAt) > DiscoveryCooldown
}

func (d Discovery) clone() Discovery {
	if d.DismissedAt != nil {
		t := *d.DismissedAt
		d.DismissedAt = &t
	}
	return d
}

func (s *State) ShouldShowDiscovery(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discovery.ShouldShow(now)
}

// DismissDiscovery hides the prompt; a permanent dismissal is never undone.
func (s *State) DismissDiscovery(permanent bool, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at := now
	s.discovery.DismissedAt = &at
	if permanent {
		s.discovery.Permanent = true
	}
	s.commitLocked(ScopeDiscovery)
}
