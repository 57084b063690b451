// Package session holds the mutable storefront state for the demo profile:
// cart, saved events, purchased tickets, filter preferences and the discovery
// prompt. The event catalog is shared and never written after construction.
package session

import (
	"slices"
	"sync"
	"time"

	"github.com/joshua-takyi/live/internal/models"
)

// Snapshot is a deep copy of everything that gets persisted.
type Snapshot struct {
	User             models.User              `json:"user"`
	Cart             []models.CartItem        `json:"cart"`
	SavedEvents      []string                 `json:"savedEvents"`
	PurchasedTickets []models.PurchasedTicket `json:"purchasedTickets"`
	Filters          models.FilterState       `json:"filters"`
	Discovery        Discovery                `json:"discovery"`
}

// DefaultSnapshot is what a fresh profile starts with.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		User:             models.DemoUser(),
		Cart:             []models.CartItem{},
		SavedEvents:      []string{},
		PurchasedTickets: []models.PurchasedTicket{},
		Filters:          models.DefaultFilters(),
	}
}

type State struct {
	mu     sync.Mutex
	events []models.Event

	user      models.User
	cart      []models.CartItem
	saved     []string
	tickets   []models.PurchasedTicket
	filters   models.FilterState
	discovery Discovery

	hooks   []func(Change)
	subs    map[int]chan Change
	nextSub int
}

func New(events []models.Event, snap Snapshot) *State {
	s := &State{
		events: events,
		subs:   make(map[int]chan Change),
	}
	s.restore(snap.clone())
	return s
}

func (s *State) restore(snap Snapshot) {
	s.user = snap.User
	s.cart = nonNil(snap.Cart)
	s.saved = nonNil(snap.SavedEvents)
	s.tickets = nonNil(snap.PurchasedTickets)
	s.filters = snap.Filters
	s.discovery = snap.Discovery
}

// Events returns the catalog. Callers must not modify it.
func (s *State) Events() []models.Event {
	return s.events
}

func (s *State) Event(id string) (models.Event, bool) {
	ev := models.FindEvent(s.events, id)
	if ev == nil {
		return models.Event{}, false
	}
	return *ev, true
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *State) snapshotLocked() Snapshot {
	return Snapshot{
		User:             s.user,
		Cart:             s.cart,
		SavedEvents:      s.saved,
		PurchasedTickets: s.tickets,
		Filters:          s.filters,
		Discovery:        s.discovery,
	}.clone()
}

func (s *State) User() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneUser(s.user)
}

func (s *State) SetUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = cloneUser(u)
	s.commitLocked(ScopeUser)
}

func (s *State) Filters() models.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneFilters(s.filters)
}

// SetFilters merges patch into the current filters and returns the result.
func (s *State) SetFilters(patch models.FilterPatch) models.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = patch.Apply(s.filters)
	s.commitLocked(ScopeFilters)
	return cloneFilters(s.filters)
}

func (s *State) SavedEvents() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.saved)
}

func (s *State) IsSaved(eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.saved, eventID)
}

// ToggleSaveEvent adds the id if absent, removes it otherwise, and reports
// whether the event is saved afterwards.
func (s *State) ToggleSaveEvent(eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := true
	if i := slices.Index(s.saved, eventID); i >= 0 {
		s.saved = slices.Delete(s.saved, i, i+1)
		saved = false
	} else {
		s.saved = append(s.saved, eventID)
	}
	s.commitLocked(ScopeSaved)
	return saved
}

// SavedWithEvents resolves saved ids against the catalog, dropping ids that
// no longer exist.
func (s *State) SavedWithEvents() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Event, 0, len(s.saved))
	for _, id := range s.saved {
		if ev := models.FindEvent(s.events, id); ev != nil {
			out = append(out, *ev)
		}
	}
	return out
}

func (s *State) PurchasedTickets() []models.PurchasedTicket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTickets(s.tickets)
}

// AddPurchasedTicket appends to both the ticket list and the user's copy.
// Duplicates are not filtered.
func (s *State) AddPurchasedTicket(t models.PurchasedTicket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.Seats = slices.Clone(t.Seats)
	s.tickets = append(s.tickets, t)
	s.user.PurchasedTickets = append(s.user.PurchasedTickets, t)
	s.commitLocked(ScopeTickets, ScopeUser)
}

// TicketsWithEvents joins tickets with their events and computes status at now.
// An empty status returns every ticket. Tickets whose event is gone are dropped.
func (s *State) TicketsWithEvents(status models.TicketStatus, now time.Time) []models.TicketView {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.TicketView, 0, len(s.tickets))
	for _, t := range s.tickets {
		ev := models.FindEvent(s.events, t.EventID)
		if ev == nil {
			continue
		}
		st := models.StatusAt(ev.Date, now)
		if status != "" && st != status {
			continue
		}
		t.Seats = slices.Clone(t.Seats)
		out = append(out, models.TicketView{PurchasedTicket: t, Status: st, Event: *ev})
	}
	return out
}

// TicketByQR finds the ticket carrying the given QR payload.
func (s *State) TicketByQR(qr string) (models.PurchasedTicket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tickets {
		if t.QRCode == qr {
			t.Seats = slices.Clone(t.Seats)
			return t, true
		}
	}
	return models.PurchasedTicket{}, false
}

func (snap Snapshot) clone() Snapshot {
	out := Snapshot{
		User:             cloneUser(snap.User),
		Cart:             cloneCart(snap.Cart),
		SavedEvents:      slices.Clone(snap.SavedEvents),
		PurchasedTickets: cloneTickets(snap.PurchasedTickets),
		Filters:          cloneFilters(snap.Filters),
		Discovery:        snap.Discovery.clone(),
	}
	return out
}

func cloneUser(u models.User) models.User {
	u.TopArtists = slices.Clone(u.TopArtists)
	friends := make([]models.FriendsGoing, len(u.FriendsGoing))
	for i, f := range u.FriendsGoing {
		friends[i] = models.FriendsGoing{EventID: f.EventID, FriendNames: slices.Clone(f.FriendNames)}
	}
	u.FriendsGoing = friends
	u.PurchasedTickets = cloneTickets(u.PurchasedTickets)
	return u
}

func cloneCart(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	for i, it := range items {
		it.SelectedSeats = slices.Clone(it.SelectedSeats)
		out[i] = it
	}
	return out
}

func cloneTickets(tickets []models.PurchasedTicket) []models.PurchasedTicket {
	out := make([]models.PurchasedTicket, len(tickets))
	for i, t := range tickets {
		t.Seats = slices.Clone(t.Seats)
		out[i] = t
	}
	return out
}

func cloneFilters(f models.FilterState) models.FilterState {
	f.Genres = slices.Clone(f.Genres)
	if f.Genres == nil {
		f.Genres = []string{}
	}
	return f
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
