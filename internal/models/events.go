package models

import (
	"math"
	"time"
)

type Artist struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Genres []string `json:"genre"`
	Image  string   `json:"image"`
}

type SalesPhase string

const (
	PhaseEarlyBird SalesPhase = "early-bird"
	PhaseOne       SalesPhase = "phase-1"
	PhaseTwo       SalesPhase = "phase-2"
)

// Event is one generated performance. Events are never mutated after generation.
type Event struct {
	ID          string `json:"id"`
	ArtistID    string `json:"artistId"`
	ArtistName  string `json:"artistName"`
	ArtistImage string `json:"artistImage"`

	VenueName     string  `json:"venueName"`
	VenueCapacity int     `json:"venueCapacity"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	DistanceMiles float64 `json:"distanceMiles"`

	Date   time.Time `json:"date"`
	Time   string    `json:"time"`  // e.g. "7:30 PM"
	Genres []string  `json:"genre"`

	BasePrice        int        `json:"basePrice"`
	Phase            SalesPhase `json:"currentPhase"`
	TicketsAvailable int        `json:"ticketsAvailable"`
	TicketsSold      int        `json:"ticketsSold"`
	FillRate         float64    `json:"fillRate"`     // percent, 0-100
	FanScore         int        `json:"userFanScore"` // 0-100, drives the fan discount

	IsTrending bool `json:"isTrending"`
	IsNearby   bool `json:"isNearby"`

	FriendsGoing       []string `json:"friendsGoing"`
	SetlistPreview     []string `json:"setlistPreview"`
	VideoPreviewURL    string   `json:"videoPreviewUrl"`
	PreviousShowImages []string `json:"previousShowImages"`
	About              string   `json:"about,omitempty"`
	ExpectedDuration   string   `json:"expectedDuration,omitempty"`
	AgeRestriction     string   `json:"ageRestriction,omitempty"`
}

// DaysUntil rounds up, so an event later today counts as 1 day away.
func (e *Event) DaysUntil(now time.Time) int {
	return int(math.Ceil(e.Date.Sub(now).Hours() / 24))
}

func (e *Event) IsPast(now time.Time) bool {
	return !e.Date.After(now)
}

func (e *Event) SoldOut() bool {
	return e.TicketsAvailable <= 0
}

// FindEvent returns the event with the given id, or nil.
func FindEvent(events []Event, id string) *Event {
	for i := range events {
		if events[i].ID == id {
			return &events[i]
		}
	}
	return nil
}
