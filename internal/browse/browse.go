// Package browse narrows and orders an event collection for the listing views.
package browse

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/joshua-takyi/live/internal/models"
)

const (
	weekendDays  = 7
	next30Days   = 30
	featuredDays = 60
	hoursPerDay  = 24
)

// Criteria are conjunctive; zero values disable a filter.
type Criteria struct {
	ArtistID    string
	Genres      []string // any match, case-insensitive
	NearbyOnly  bool
	PriceRange  string
	Category    string
	SortBy      string
	IncludePast bool
	TopArtists  []string
}

func FromFilterState(f models.FilterState, topArtists []string) Criteria {
	return Criteria{
		Genres:     f.Genres,
		NearbyOnly: f.NearYou,
		PriceRange: f.PriceRange,
		Category:   f.Category,
		SortBy:     f.SortBy,
		TopArtists: topArtists,
	}
}

type predicate func(ev *models.Event) bool

// View filters then sorts. It never mutates events and never returns nil.
func View(events []models.Event, c Criteria, now time.Time) []models.Event {
	preds := c.predicates(now)

	out := make([]models.Event, 0, len(events))
	for i := range events {
		if matchesAll(&events[i], preds) {
			out = append(out, events[i])
		}
	}

	Sort(out, c.SortBy, c.TopArtists)
	return out
}

func (c Criteria) predicates(now time.Time) []predicate {
	var preds []predicate

	if !c.IncludePast {
		preds = append(preds, func(ev *models.Event) bool { return ev.Date.After(now) })
	}
	if c.ArtistID != "" {
		preds = append(preds, func(ev *models.Event) bool { return ev.ArtistID == c.ArtistID })
	}
	if genres := activeGenres(c.Genres); len(genres) > 0 {
		preds = append(preds, func(ev *models.Event) bool { return hasAnyGenre(ev, genres) })
	}
	if c.NearbyOnly {
		preds = append(preds, func(ev *models.Event) bool { return ev.IsNearby })
	}
	if p := pricePredicate(c.PriceRange); p != nil {
		preds = append(preds, p)
	}
	if p := c.categoryPredicate(now); p != nil {
		preds = append(preds, p)
	}
	return preds
}

func matchesAll(ev *models.Event, preds []predicate) bool {
	for _, p := range preds {
		if !p(ev) {
			return false
		}
	}
	return true
}

func activeGenres(genres []string) []string {
	var out []string
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" || strings.EqualFold(g, "all") {
			continue
		}
		out = append(out, g)
	}
	return out
}

func hasAnyGenre(ev *models.Event, genres []string) bool {
	for _, want := range genres {
		for _, g := range ev.Genres {
			if strings.EqualFold(g, want) {
				return true
			}
		}
	}
	return false
}

func pricePredicate(bracket string) predicate {
	switch bracket {
	case models.PriceUnder50:
		return func(ev *models.Event) bool { return ev.BasePrice < 50 }
	case models.Price50To100:
		return func(ev *models.Event) bool { return ev.BasePrice >= 50 && ev.BasePrice <= 100 }
	case models.PriceOver100, models.Price100Plus:
		return func(ev *models.Event) bool { return ev.BasePrice > 100 }
	}
	return nil
}

// categoryPredicate treats unknown categories as a genre tag.
func (c Criteria) categoryPredicate(now time.Time) predicate {
	switch strings.ToLower(strings.TrimSpace(c.Category)) {
	case "", models.CategoryAll:
		return nil
	case models.CategoryThisWeekend:
		return func(ev *models.Event) bool { return withinDays(ev, now, weekendDays) }
	case models.CategoryNext30Days:
		return func(ev *models.Event) bool { return withinDays(ev, now, next30Days) }
	case models.CategoryTopArtists:
		return func(ev *models.Event) bool { return slices.Contains(c.TopArtists, ev.ArtistID) }
	case models.CategoryTrending:
		return func(ev *models.Event) bool { return ev.IsTrending }
	default:
		tag := []string{c.Category}
		return func(ev *models.Event) bool { return hasAnyGenre(ev, tag) }
	}
}

func withinDays(ev *models.Event, now time.Time, days int) bool {
	d := ev.DaysUntil(now)
	return d >= 0 && d <= days
}

// Sort orders events in place with a stable sort.
func Sort(events []models.Event, sortBy string, topArtists []string) {
	switch sortBy {
	case models.SortDate:
		slices.SortStableFunc(events, func(a, b models.Event) int {
			return a.Date.Compare(b.Date)
		})
	case models.SortPriceLow:
		slices.SortStableFunc(events, func(a, b models.Event) int {
			return cmp.Compare(a.BasePrice, b.BasePrice)
		})
	case models.SortPriceHigh:
		slices.SortStableFunc(events, func(a, b models.Event) int {
			return cmp.Compare(b.BasePrice, a.BasePrice)
		})
	default:
		SortRecommended(events, topArtists)
	}
}

// SortRecommended puts top-artist events first, then orders by fan score descending.
func SortRecommended(events []models.Event, topArtists []string) {
	slices.SortStableFunc(events, func(a, b models.Event) int {
		aTop := slices.Contains(topArtists, a.ArtistID)
		bTop := slices.Contains(topArtists, b.ArtistID)
		if aTop != bTop {
			if aTop {
				return -1
			}
			return 1
		}
		return cmp.Compare(b.FanScore, a.FanScore)
	})
}
