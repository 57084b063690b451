package models

import "slices"

type Location struct {
	City string `json:"city"`
	Coordinates
}

type FriendsGoing struct {
	EventID     string   `json:"eventId"`
	FriendNames []string `json:"friendNames"`
}

type User struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	IsPremium        bool              `json:"isPremium"`
	TopArtists       []string          `json:"topArtists"` // artist ids
	Location         Location          `json:"location"`
	FriendsGoing     []FriendsGoing    `json:"friendsGoing"`
	PurchasedTickets []PurchasedTicket `json:"purchasedTickets"`
}

func (u *User) IsTopArtist(artistID string) bool {
	return slices.Contains(u.TopArtists, artistID)
}

// DemoUser is the fixed profile every session starts from.
func DemoUser() User {
	return User{
		ID:         "user-001",
		Name:       "Alex Johnson",
		Email:      "alex@spotify.com",
		IsPremium:  true,
		TopArtists: []string{"the-1975", "billie-eilish", "phoebe-bridgers", "taylor-swift", "the-weeknd"},
		Location: Location{
			City:        "Brooklyn, NY",
			Coordinates: Coordinates{Latitude: 40.6782, Longitude: -73.9442},
		},
		FriendsGoing: []FriendsGoing{
			{EventID: "event-001", FriendNames: []string{"Sarah", "Mike"}},
			{EventID: "event-015", FriendNames: []string{"Emma"}},
			{EventID: "event-032", FriendNames: []string{"Jake", "Olivia", "Chris"}},
		},
		PurchasedTickets: []PurchasedTicket{},
	}
}
