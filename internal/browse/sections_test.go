package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSections(t *testing.T) {
	view := View(fixture(), Criteria{TopArtists: top}, now)
	s := BuildSections(view, top, now)

	assert.Equal(t, []string{"e5", "e1"}, ids(s.TopArtists))
	assert.Equal(t, []string{"e4"}, ids(s.ThisWeekend))
	assert.Equal(t, []string{"e4"}, ids(s.Nearby))
}

func TestBuildSections_SubsetOfView(t *testing.T) {
	view := View(fixture(), Criteria{TopArtists: top, PriceRange: "under-50"}, now)
	s := BuildSections(view, top, now)

	assert.Equal(t, []string{"e1"}, ids(s.TopArtists))
	assert.Empty(t, s.ThisWeekend)
	assert.Empty(t, s.Nearby)
}

func TestFeatured(t *testing.T) {
	events := fixture()
	_, ok := Featured(events, top, now)
	assert.False(t, ok, "no nearby top-artist show in fixture")

	events[4].IsNearby = true
	ev, ok := Featured(events, top, now)
	assert.True(t, ok)
	assert.Equal(t, "e5", ev.ID)

	events[4].TicketsAvailable = 0
	_, ok = Featured(events, top, now)
	assert.False(t, ok, "sold out shows are not promoted")

	events[1].IsNearby = true
	_, ok = Featured(events, top, now)
	assert.False(t, ok, "past shows are not promoted")
}
