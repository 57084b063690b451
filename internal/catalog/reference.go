package catalog

import "github.com/joshua-takyi/live/internal/models"

var artists = []models.Artist{
	{ID: "the-1975", Name: "The 1975", Genres: []string{"Pop", "Rock", "Indie"}, Image: "https://picsum.photos/seed/the1975/800/800"},
	{ID: "billie-eilish", Name: "Billie Eilish", Genres: []string{"Pop", "Alternative"}, Image: "https://picsum.photos/seed/billieeilish/800/800"},
	{ID: "bad-bunny", Name: "Bad Bunny", Genres: []string{"Hip-Hop", "Latin"}, Image: "https://picsum.photos/seed/badbunny/800/800"},
	{ID: "taylor-swift", Name: "Taylor Swift", Genres: []string{"Pop", "Country"}, Image: "https://picsum.photos/seed/taylorswift/800/800"},
	{ID: "ed-sheeran", Name: "Ed Sheeran", Genres: []string{"Pop", "Folk"}, Image: "https://picsum.photos/seed/edsheeran/800/800"},
	{ID: "the-weeknd", Name: "The Weeknd", Genres: []string{"R&B", "Pop"}, Image: "https://picsum.photos/seed/theweeknd/800/800"},
	{ID: "phoebe-bridgers", Name: "Phoebe Bridgers", Genres: []string{"Indie", "Folk"}, Image: "https://picsum.photos/seed/phoebebridgers/800/800"},
	{ID: "drake", Name: "Drake", Genres: []string{"Hip-Hop", "R&B"}, Image: "https://picsum.photos/seed/drake/800/800"},
	{ID: "olivia-rodrigo", Name: "Olivia Rodrigo", Genres: []string{"Pop", "Rock"}, Image: "https://picsum.photos/seed/oliviarodrigo/800/800"},
	{ID: "arctic-monkeys", Name: "Arctic Monkeys", Genres: []string{"Rock", "Indie"}, Image: "https://picsum.photos/seed/arcticmonkeys/800/800"},
	{ID: "harry-styles", Name: "Harry Styles", Genres: []string{"Pop", "Rock"}, Image: "https://picsum.photos/seed/harrystyles/800/800"},
	{ID: "sza", Name: "SZA", Genres: []string{"R&B", "Hip-Hop"}, Image: "https://picsum.photos/seed/sza/800/800"},
	{ID: "dua-lipa", Name: "Dua Lipa", Genres: []string{"Pop", "Dance"}, Image: "https://picsum.photos/seed/dualipa/800/800"},
	{ID: "post-malone", Name: "Post Malone", Genres: []string{"Hip-Hop", "Pop"}, Image: "https://picsum.photos/seed/postmalone/800/800"},
	{ID: "lana-del-rey", Name: "Lana Del Rey", Genres: []string{"Pop", "Alternative"}, Image: "https://picsum.photos/seed/lanadelrey/800/800"},
	{ID: "kendrick-lamar", Name: "Kendrick Lamar", Genres: []string{"Hip-Hop", "Rap"}, Image: "https://picsum.photos/seed/kendricklamar/800/800"},
	{ID: "frank-ocean", Name: "Frank Ocean", Genres: []string{"R&B", "Alternative"}, Image: "https://picsum.photos/seed/frankocean/800/800"},
	{ID: "fleetwood-mac", Name: "Fleetwood Mac", Genres: []string{"Rock", "Classic"}, Image: "https://picsum.photos/seed/fleetwoodmac/800/800"},
	{ID: "tame-impala", Name: "Tame Impala", Genres: []string{"Electronic", "Rock"}, Image: "https://picsum.photos/seed/tameimpala/800/800"},
	{ID: "radiohead", Name: "Radiohead", Genres: []string{"Rock", "Alternative"}, Image: "https://picsum.photos/seed/radiohead/800/800"},
}

var venues = []models.Venue{
	{Name: "Brooklyn Steel", City: "Brooklyn", State: "NY", Capacity: 1800, Coordinates: models.Coordinates{Latitude: 40.7128, Longitude: -73.9352}},
	{Name: "Madison Square Garden", City: "New York", State: "NY", Capacity: 20000, Coordinates: models.Coordinates{Latitude: 40.7505, Longitude: -73.9934}},
	{Name: "Red Rocks Amphitheatre", City: "Morrison", State: "CO", Capacity: 9525, Coordinates: models.Coordinates{Latitude: 39.6654, Longitude: -105.2056}},
	{Name: "The Wiltern", City: "Los Angeles", State: "CA", Capacity: 1850, Coordinates: models.Coordinates{Latitude: 34.0622, Longitude: -118.3087}},
	{Name: "The Fillmore", City: "San Francisco", State: "CA", Capacity: 1315, Coordinates: models.Coordinates{Latitude: 37.7841, Longitude: -122.4331}},
	{Name: "House of Blues", City: "Boston", State: "MA", Capacity: 2425, Coordinates: models.Coordinates{Latitude: 42.3478, Longitude: -71.0466}},
	{Name: "The Ryman", City: "Nashville", State: "TN", Capacity: 2362, Coordinates: models.Coordinates{Latitude: 36.1612, Longitude: -86.7775}},
	{Name: "Terminal 5", City: "New York", State: "NY", Capacity: 3000, Coordinates: models.Coordinates{Latitude: 40.7682, Longitude: -73.9899}},
	{Name: "The Anthem", City: "Washington", State: "DC", Capacity: 6000, Coordinates: models.Coordinates{Latitude: 38.8826, Longitude: -77.0128}},
	{Name: "Hollywood Bowl", City: "Los Angeles", State: "CA", Capacity: 17500, Coordinates: models.Coordinates{Latitude: 34.1128, Longitude: -118.3391}},
}

var setlists = map[string][]string{
	"The 1975":      {"Love It If We Made It", "Somebody Else", "Chocolate", "The Sound", "Sex", "Robbers", "Girls", "It's Not Living"},
	"Billie Eilish": {"bad guy", "when the party's over", "bury a friend", "ocean eyes", "lovely", "everything i wanted", "Happier Than Ever"},
	"Taylor Swift":  {"Shake It Off", "Blank Space", "Love Story", "You Belong with Me", "Anti-Hero", "Cruel Summer", "Wildest Dreams"},
	"The Weeknd":    {"Blinding Lights", "Starboy", "The Hills", "Can't Feel My Face", "Save Your Tears", "Earned It", "I Feel It Coming"},
}

var genericSetlist = []string{"Opening", "Hit Single", "Fan Favorite", "Ballad", "New Song", "Classic Hit", "Encore"}

var friendPool = []string{"Sarah", "Mike", "Emma", "Jake", "Olivia", "Chris", "Maya", "Alex"}

var showTimes = []string{"7:00 PM", "7:30 PM", "8:00 PM", "8:30 PM"}

var phases = []models.SalesPhase{models.PhaseEarlyBird, models.PhaseOne, models.PhaseTwo}

// Artists returns a copy of the artist reference table.
func Artists() []models.Artist {
	out := make([]models.Artist, len(artists))
	copy(out, artists)
	return out
}

func Venues() []models.Venue {
	out := make([]models.Venue, len(venues))
	copy(out, venues)
	return out
}

func ArtistByID(id string) (models.Artist, bool) {
	for _, a := range artists {
		if a.ID == id {
			return a, true
		}
	}
	return models.Artist{}, false
}

// Setlist falls back to a generic running order for artists without a curated one.
func Setlist(artistName string) []string {
	if s, ok := setlists[artistName]; ok {
		return append([]string(nil), s...)
	}
	return append([]string(nil), genericSetlist...)
}
