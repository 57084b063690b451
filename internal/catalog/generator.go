// Package catalog synthesizes the session's concert listings from the fixed
// artist and venue tables.
//
// Generation is a pure function of its inputs: the caller supplies the random
// source and the reference time, so a seeded source reproduces the same
// catalog exactly.
package catalog

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/joshua-takyi/live/internal/models"
)

const (
	minEventsPerArtist = 2
	maxExtraEvents     = 1

	minDayOffset  = -30
	dayOffsetSpan = 90 // [-30, 60)

	minSoldFraction  = 0.40
	soldFractionSpan = 0.55 // up to 0.95

	minBasePrice  = 45
	basePriceSpan = 205 // [45, 250)

	topArtistMinScore  = 75
	topArtistScoreSpan = 25 // [75, 100)
	otherScoreSpan     = 50 // [0, 50)

	friendsProbability = 0.3
	maxFriends         = 3

	trendingFillRate = 75.0
	trendingMaxDays  = 30

	previousShowImages = 8
	largeVenueCapacity = 5000
)

const videoPreviewURL = "https://player.vimeo.com/video/76979871"

// NewSource returns a seeded generator; the same seed yields the same catalog.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate builds 2-3 events per artist and returns them sorted by date.
func Generate(userLocation models.Coordinates, topArtistIDs []string, rng *rand.Rand, now time.Time) []models.Event {
	events := make([]models.Event, 0, len(artists)*(minEventsPerArtist+maxExtraEvents))
	stamp := now.UnixMilli()

	for artistIndex, artist := range artists {
		count := minEventsPerArtist + rng.IntN(maxExtraEvents+1)
		isTop := slices.Contains(topArtistIDs, artist.ID)

		for i := 0; i < count; i++ {
			venue := venues[rng.IntN(len(venues))]
			dayOffset := minDayOffset + rng.IntN(dayOffsetSpan)

			soldFraction := minSoldFraction + rng.Float64()*soldFractionSpan
			sold := int(math.Floor(float64(venue.Capacity) * soldFraction))
			fillRate := float64(sold) / float64(venue.Capacity) * 100

			basePrice := minBasePrice + rng.IntN(basePriceSpan)
			distance := Haversine(userLocation, venue.Coordinates)

			var fanScore int
			if isTop {
				fanScore = topArtistMinScore + rng.IntN(topArtistScoreSpan)
			} else {
				fanScore = rng.IntN(otherScoreSpan)
			}

			events = append(events, models.Event{
				ID:                 fmt.Sprintf("event-%d-%d-%d", artistIndex, i, stamp),
				ArtistID:           artist.ID,
				ArtistName:         artist.Name,
				ArtistImage:        artist.Image,
				VenueName:          venue.Name,
				VenueCapacity:      venue.Capacity,
				City:               venue.City,
				State:              venue.State,
				DistanceMiles:      distance,
				Date:               now.AddDate(0, 0, dayOffset),
				Time:               showTimes[rng.IntN(len(showTimes))],
				Genres:             slices.Clone(artist.Genres),
				BasePrice:          basePrice,
				Phase:              phases[rng.IntN(len(phases))],
				TicketsAvailable:   venue.Capacity - sold,
				TicketsSold:        sold,
				FillRate:           fillRate,
				FanScore:           fanScore,
				IsTrending:         fillRate > trendingFillRate && dayOffset > 0 && dayOffset < trendingMaxDays,
				IsNearby:           distance < NearbyMiles,
				FriendsGoing:       pickFriends(rng),
				SetlistPreview:     Setlist(artist.Name),
				VideoPreviewURL:    videoPreviewURL,
				PreviousShowImages: showImages(artist.ID),
				About:              aboutText(artist.Name, venue.City),
				ExpectedDuration:   "2-2.5 hours",
				AgeRestriction:     ageRestriction(venue.Capacity),
			})
		}
	}

	slices.SortStableFunc(events, func(a, b models.Event) int {
		return a.Date.Compare(b.Date)
	})
	return events
}

// pickFriends draws with replacement, so a name can appear twice.
func pickFriends(rng *rand.Rand) []string {
	friends := []string{}
	if rng.Float64() >= friendsProbability {
		return friends
	}
	n := 1 + rng.IntN(maxFriends)
	for j := 0; j < n; j++ {
		friends = append(friends, friendPool[rng.IntN(len(friendPool))])
	}
	return friends
}

func showImages(artistID string) []string {
	images := make([]string, previousShowImages)
	for i := range images {
		images[i] = fmt.Sprintf("https://picsum.photos/seed/%s-%d/600/400", artistID, i)
	}
	return images
}

func aboutText(artistName, city string) string {
	return fmt.Sprintf("%s is bringing their incredible live performance to %s. "+
		"Experience an unforgettable night of music featuring hits from their latest album and classic fan favorites.",
		artistName, city)
}

func ageRestriction(capacity int) string {
	if capacity > largeVenueCapacity {
		return "All ages"
	}
	return "18+"
}
