package catalog

import (
	"math"
	"testing"
	"time"

	"github.com/joshua-takyi/live/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	brooklyn   = models.Coordinates{Latitude: 40.6782, Longitude: -73.9442}
	topArtists = []string{"the-1975", "billie-eilish", "phoebe-bridgers", "taylor-swift", "the-weeknd"}
	fixedNow   = time.Date(2025, time.March, 14, 18, 0, 0, 0, time.UTC)
)

func TestHaversine_NearbyScenario(t *testing.T) {
	msg := models.Coordinates{Latitude: 40.7505, Longitude: -73.9934}
	redRocks := models.Coordinates{Latitude: 39.6654, Longitude: -105.2056}

	near := Haversine(brooklyn, msg)
	assert.InDelta(t, 5.6, near, 1.0)
	assert.True(t, IsNearby(brooklyn, msg))

	far := Haversine(brooklyn, redRocks)
	assert.InDelta(t, 1643, far, 5)
	assert.False(t, IsNearby(brooklyn, redRocks))

	assert.Zero(t, Haversine(brooklyn, brooklyn))
}

func TestGenerate_Invariants(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		events := Generate(brooklyn, topArtists, NewSource(seed), fixedNow)

		perArtist := map[string]int{}
		ids := map[string]bool{}
		for i, ev := range events {
			perArtist[ev.ArtistID]++

			require.False(t, ids[ev.ID], "duplicate id %s", ev.ID)
			ids[ev.ID] = true

			assert.Equal(t, ev.VenueCapacity, ev.TicketsAvailable+ev.TicketsSold)
			assert.GreaterOrEqual(t, ev.TicketsAvailable, 0)
			assert.InDelta(t, float64(ev.TicketsSold)/float64(ev.VenueCapacity)*100, ev.FillRate, 1e-9)
			assert.GreaterOrEqual(t, ev.FillRate, 39.9)
			assert.LessOrEqual(t, ev.FillRate, 95.0)

			assert.GreaterOrEqual(t, ev.BasePrice, 45)
			assert.Less(t, ev.BasePrice, 250)

			offset := ev.Date.Sub(fixedNow).Hours() / 24
			assert.GreaterOrEqual(t, offset, -30.0)
			assert.Less(t, offset, 60.0)

			isTop := false
			for _, id := range topArtists {
				if id == ev.ArtistID {
					isTop = true
				}
			}
			if isTop {
				assert.GreaterOrEqual(t, ev.FanScore, 75)
				assert.Less(t, ev.FanScore, 100)
			} else {
				assert.GreaterOrEqual(t, ev.FanScore, 0)
				assert.Less(t, ev.FanScore, 50)
			}

			venue := venueByName(t, ev.VenueName)
			assert.Equal(t, Haversine(brooklyn, venue.Coordinates) < 50, ev.IsNearby)

			days := int(math.Round(offset))
			assert.Equal(t, ev.FillRate > 75 && days > 0 && days < 30, ev.IsTrending, "event %s", ev.ID)

			assert.LessOrEqual(t, len(ev.FriendsGoing), 3)
			assert.GreaterOrEqual(t, len(ev.SetlistPreview), 5)
			assert.LessOrEqual(t, len(ev.SetlistPreview), 8)
			assert.Len(t, ev.PreviousShowImages, 8)

			if i > 0 {
				assert.False(t, ev.Date.Before(events[i-1].Date), "events must be sorted by date")
			}
		}

		require.Len(t, perArtist, len(artists))
		for id, n := range perArtist {
			assert.True(t, n == 2 || n == 3, "artist %s has %d events", id, n)
		}
	}
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	a := Generate(brooklyn, topArtists, NewSource(42), fixedNow)
	b := Generate(brooklyn, topArtists, NewSource(42), fixedNow)
	assert.Equal(t, a, b)

	c := Generate(brooklyn, topArtists, NewSource(43), fixedNow)
	assert.NotEqual(t, a, c)
}

func TestGenerate_AgeRestrictionAndSetlist(t *testing.T) {
	events := Generate(brooklyn, nil, NewSource(7), fixedNow)
	for _, ev := range events {
		if ev.VenueCapacity > 5000 {
			assert.Equal(t, "All ages", ev.AgeRestriction)
		} else {
			assert.Equal(t, "18+", ev.AgeRestriction)
		}
		if ev.ArtistName == "Radiohead" {
			assert.Equal(t, genericSetlist, ev.SetlistPreview)
		}
		if ev.ArtistName == "The 1975" {
			assert.Len(t, ev.SetlistPreview, 8)
		}
		assert.Less(t, ev.FanScore, 50, "no top artists means no high scores")
	}
}

func TestSetlist_ReturnsCopy(t *testing.T) {
	s := Setlist("Taylor Swift")
	s[0] = "changed"
	assert.Equal(t, "Shake It Off", Setlist("Taylor Swift")[0])
}

func TestArtistByID(t *testing.T) {
	a, ok := ArtistByID("sza")
	require.True(t, ok)
	assert.Equal(t, "SZA", a.Name)

	_, ok = ArtistByID("nobody")
	assert.False(t, ok)
}

func venueByName(t *testing.T, name string) models.Venue {
	t.Helper()
	for _, v := range Venues() {
		if v.Name == name {
			return v
		}
	}
	t.Fatalf("unknown venue %q", name)
	return models.Venue{}
}
