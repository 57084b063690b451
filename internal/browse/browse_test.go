package browse

import (
	"testing"
	"time"

	"github.com/joshua-takyi/live/internal/catalog"
	"github.com/joshua-takyi/live/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	top = []string{"the-1975", "taylor-swift"}
)

func event(id, artist string, days int, price, fan int, genres ...string) models.Event {
	return models.Event{
		ID:               id,
		ArtistID:         artist,
		Date:             now.AddDate(0, 0, days),
		BasePrice:        price,
		FanScore:         fan,
		Genres:           genres,
		TicketsAvailable: 100,
	}
}

func fixture() []models.Event {
	nearby := event("e4", "drake", 3, 120, 30, "Hip-Hop", "R&B")
	nearby.IsNearby = true
	trending := event("e6", "sza", 12, 75, 20, "R&B")
	trending.IsTrending = true
	return []models.Event{
		event("e1", "the-1975", 10, 45, 80, "Pop", "Rock", "Indie"),
		event("e2", "taylor-swift", -5, 200, 99, "Pop", "Country"),
		event("e3", "radiohead", 40, 60, 10, "Rock", "Alternative"),
		nearby,
		event("e5", "taylor-swift", 20, 100, 90, "Pop", "Country"),
		trending,
	}
}

func ids(events []models.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func TestView_ExcludesPastByDefault(t *testing.T) {
	got := View(fixture(), Criteria{TopArtists: top}, now)
	assert.NotContains(t, ids(got), "e2")
	assert.Len(t, got, 5)

	withPast := View(fixture(), Criteria{TopArtists: top, IncludePast: true}, now)
	assert.Contains(t, ids(withPast), "e2")
}

func TestView_RecommendedOrder(t *testing.T) {
	got := View(fixture(), Criteria{TopArtists: top}, now)
	assert.Equal(t, []string{"e5", "e1", "e4", "e6", "e3"}, ids(got))
}

func TestView_Filters(t *testing.T) {
	events := fixture()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"artist", Criteria{ArtistID: "taylor-swift"}, []string{"e5"}},
		{"genre case-insensitive", Criteria{Genres: []string{"rock"}}, []string{"e1", "e3"}},
		{"genre all is no-op", Criteria{Genres: []string{"all"}}, []string{"e4", "e1", "e6", "e5", "e3"}},
		{"nearby", Criteria{NearbyOnly: true}, []string{"e4"}},
		{"under-50", Criteria{PriceRange: models.PriceUnder50}, []string{"e1"}},
		{"50-100 inclusive", Criteria{PriceRange: models.Price50To100}, []string{"e6", "e5", "e3"}},
		{"over-100", Criteria{PriceRange: models.PriceOver100}, []string{"e4"}},
		{"100-plus alias", Criteria{PriceRange: models.Price100Plus}, []string{"e4"}},
		{"this weekend", Criteria{Category: models.CategoryThisWeekend}, []string{"e4"}},
		{"next 30 days", Criteria{Category: models.CategoryNext30Days}, []string{"e4", "e1", "e6", "e5"}},
		{"top artists", Criteria{Category: models.CategoryTopArtists, TopArtists: top}, []string{"e1", "e5"}},
		{"trending", Criteria{Category: models.CategoryTrending}, []string{"e6"}},
		{"category as genre tag", Criteria{Category: "Country"}, []string{"e5"}},
		{"conjunctive", Criteria{Genres: []string{"pop"}, PriceRange: models.Price50To100}, []string{"e5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.criteria.SortBy = models.SortDate
			got := View(events, tt.criteria, now)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestView_NoMatchesIsEmptyNotNil(t *testing.T) {
	got := View(fixture(), Criteria{ArtistID: "nobody"}, now)
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = View(nil, Criteria{}, now)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestView_DoesNotMutateInput(t *testing.T) {
	events := fixture()
	before := ids(events)
	View(events, Criteria{TopArtists: top, SortBy: models.SortPriceHigh}, now)
	assert.Equal(t, before, ids(events))
}

func TestView_FilterCompositionCommutes(t *testing.T) {
	events := catalog.Generate(models.Coordinates{Latitude: 40.6782, Longitude: -73.9442}, top, catalog.NewSource(11), now)

	for _, genre := range []string{"pop", "rock", "hip-hop", "r&b"} {
		for _, bracket := range []string{models.PriceUnder50, models.Price50To100, models.PriceOver100} {
			genreFirst := View(View(events, Criteria{Genres: []string{genre}, SortBy: models.SortDate}, now),
				Criteria{PriceRange: bracket, SortBy: models.SortDate}, now)
			priceFirst := View(View(events, Criteria{PriceRange: bracket, SortBy: models.SortDate}, now),
				Criteria{Genres: []string{genre}, SortBy: models.SortDate}, now)
			assert.ElementsMatch(t, ids(genreFirst), ids(priceFirst), "%s/%s", genre, bracket)
		}
	}
}

func TestSortRecommended_Stable(t *testing.T) {
	events := []models.Event{
		event("a", "drake", 1, 50, 40),
		event("b", "the-1975", 1, 50, 80),
		event("c", "sza", 1, 50, 40),
		event("d", "the-1975", 1, 50, 80),
		event("e", "drake", 1, 50, 40),
	}
	SortRecommended(events, top)
	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, ids(events))
}

func TestSort_Variants(t *testing.T) {
	events := fixture()
	Sort(events, models.SortPriceLow, top)
	assert.Equal(t, "e1", events[0].ID)
	assert.Equal(t, "e2", events[len(events)-1].ID)

	Sort(events, models.SortPriceHigh, top)
	assert.Equal(t, "e2", events[0].ID)

	Sort(events, models.SortDate, top)
	assert.Equal(t, "e2", events[0].ID)
	assert.Equal(t, "e3", events[len(events)-1].ID)
}

func TestFromFilterState(t *testing.T) {
	f := models.DefaultFilters()
	f.NearYou = true
	f.PriceRange = models.PriceUnder50
	c := FromFilterState(f, top)

	assert.True(t, c.NearbyOnly)
	assert.Equal(t, models.PriceUnder50, c.PriceRange)
	assert.Equal(t, models.SortRecommended, c.SortBy)
	assert.Equal(t, top, c.TopArtists)
}
