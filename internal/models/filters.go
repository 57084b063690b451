package models

const (
	CategoryAll         = "all"
	CategoryThisWeekend = "this-weekend"
	CategoryNext30Days  = "next-30-days"
	CategoryTopArtists  = "top-artists"
	CategoryTrending    = "trending"
)

const (
	PriceAll     = "all"
	PriceUnder50 = "under-50"
	Price50To100 = "50-100"
	PriceOver100 = "over-100"
	Price100Plus = "100-plus" // older clients
)

const (
	SortRecommended = "recommended"
	SortDate        = "date"
	SortPriceLow    = "price-low"
	SortPriceHigh   = "price-high"
)

// FilterState is the persisted browse preference.
type FilterState struct {
	Category   string   `json:"category"`
	Genres     []string `json:"genres"`
	PriceRange string   `json:"priceRange" validate:"omitempty,oneof=all under-50 50-100 over-100 100-plus"`
	NearYou    bool     `json:"nearYou"`
	SortBy     string   `json:"sortBy" validate:"omitempty,oneof=recommended date price-low price-high"`
}

func DefaultFilters() FilterState {
	return FilterState{
		Category:   CategoryAll,
		Genres:     []string{},
		PriceRange: PriceAll,
		NearYou:    false,
		SortBy:     SortRecommended,
	}
}

type FilterPatch struct {
	Category   *string  `json:"category,omitempty"`
	Genres     []string `json:"genres,omitempty"`
	PriceRange *string  `json:"priceRange,omitempty" validate:"omitempty,oneof=all under-50 50-100 over-100 100-plus"`
	NearYou    *bool    `json:"nearYou,omitempty"`
	SortBy     *string  `json:"sortBy,omitempty" validate:"omitempty,oneof=recommended date price-low price-high"`
}

func (p FilterPatch) Apply(f FilterState) FilterState {
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.Genres != nil {
		f.Genres = append([]string{}, p.Genres...)
	}
	if p.PriceRange != nil {
		f.PriceRange = *p.PriceRange
	}
	if p.NearYou != nil {
		f.NearYou = *p.NearYou
	}
	if p.SortBy != nil {
		f.SortBy = *p.SortBy
	}
	return f
}
