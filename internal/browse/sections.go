package browse

import (
	"slices"
	"time"

	"github.com/joshua-takyi/live/internal/models"
)

// Sections are the home page rails. Each is a filter over an already filtered view.
type Sections struct {
	TopArtists  []models.Event `json:"topArtists"`
	ThisWeekend []models.Event `json:"thisWeekend"`
	Nearby      []models.Event `json:"nearby"`
}

func BuildSections(view []models.Event, topArtists []string, now time.Time) Sections {
	return Sections{
		TopArtists:  TopArtistEvents(view, topArtists),
		ThisWeekend: ThisWeekend(view, now),
		Nearby:      Nearby(view),
	}
}

func TopArtistEvents(view []models.Event, topArtists []string) []models.Event {
	return filter(view, func(ev *models.Event) bool { return slices.Contains(topArtists, ev.ArtistID) })
}

func ThisWeekend(view []models.Event, now time.Time) []models.Event {
	return filter(view, func(ev *models.Event) bool { return withinDays(ev, now, weekendDays) })
}

func Nearby(view []models.Event) []models.Event {
	return filter(view, func(ev *models.Event) bool { return ev.IsNearby })
}

// Featured picks the event to promote: a nearby top-artist show in the next
// 60 days that still has tickets.
func Featured(events []models.Event, topArtists []string, now time.Time) (models.Event, bool) {
	for i := range events {
		ev := &events[i]
		days := ev.Date.Sub(now).Hours() / hoursPerDay
		if slices.Contains(topArtists, ev.ArtistID) &&
			ev.IsNearby &&
			days > 0 && days < featuredDays &&
			!ev.SoldOut() {
			return *ev, true
		}
	}
	return models.Event{}, false
}

func filter(events []models.Event, keep predicate) []models.Event {
	out := make([]models.Event, 0, len(events))
	for i := range events {
		if keep(&events[i]) {
			out = append(out, events[i])
		}
	}
	return out
}
