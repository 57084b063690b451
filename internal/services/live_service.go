package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joshua-takyi/live/internal/browse"
	"github.com/joshua-takyi/live/internal/helpers"
	"github.com/joshua-takyi/live/internal/metrics"
	"github.com/joshua-takyi/live/internal/models"
	"github.com/joshua-takyi/live/internal/pricing"
	"github.com/joshua-takyi/live/internal/session"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type LiveOptions struct {
	ServiceFee decimal.Decimal
	PremiumFee decimal.Decimal
	Now        func() time.Time
}

type LiveService struct {
	state     *session.State
	issuer    *helpers.TicketIssuer
	persister *Persister
	opts      LiveOptions
	logger    *slog.Logger
}

func NewLiveService(state *session.State, issuer *helpers.TicketIssuer, persister *Persister, opts LiveOptions, logger *slog.Logger) *LiveService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &LiveService{
		state:     state,
		issuer:    issuer,
		persister: persister,
		opts:      opts,
		logger:    logger,
	}
}

// EventCard is an event as the listing views present it.
type EventCard struct {
	models.Event
	Pricing pricing.Quote `json:"pricing"`
	Saved   bool          `json:"saved"`
}

type EventQuery struct {
	ArtistID    string `form:"artist"`
	Genre       string `form:"genre"`
	Near        *bool  `form:"near"`
	PriceRange  string `form:"price" validate:"omitempty,oneof=all under-50 50-100 over-100 100-plus"`
	Category    string `form:"category"`
	SortBy      string `form:"sort" validate:"omitempty,oneof=recommended date price-low price-high"`
	IncludePast bool   `form:"past"`
}

type SectionsView struct {
	TopArtists  []EventCard `json:"topArtists"`
	ThisWeekend []EventCard `json:"thisWeekend"`
	Nearby      []EventCard `json:"nearby"`
}

type AddToCartRequest struct {
	EventID       string   `json:"eventId" validate:"required"`
	Quantity      int      `json:"quantity" validate:"required,min=1,max=10"`
	Section       string   `json:"section"`
	SelectedSeats []string `json:"selectedSeats" validate:"omitempty,dive,required"`
}

type CartView struct {
	Lines     []models.CartLine `json:"lines"`
	Breakdown pricing.Breakdown `json:"breakdown"`
}

type QuoteRequest struct {
	PromoCode  string `json:"promoCode"`
	AddPremium bool   `json:"addPremium"`
}

// CheckoutForm is the contact form collected before settlement.
type CheckoutForm struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Phone     string `json:"phone" validate:"required,min=7,max=20"`
	QuoteRequest
}

type CheckoutResult struct {
	Tickets   []models.PurchasedTicket `json:"tickets"`
	Breakdown pricing.Breakdown        `json:"breakdown"`
}

type DiscoveryView struct {
	Show     bool       `json:"show"`
	Featured *EventCard `json:"featured,omitempty"`
}

func (ls *LiveService) Health(ctx context.Context) error {
	return ls.persister.Ping(ctx)
}

func (ls *LiveService) Profile() models.User {
	return ls.state.User()
}

// Criteria starts from the persisted filters and lets the query override them.
func (ls *LiveService) Criteria(q EventQuery) (browse.Criteria, error) {
	if err := models.Validate.Struct(q); err != nil {
		return browse.Criteria{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	c := browse.FromFilterState(ls.state.Filters(), ls.state.User().TopArtists)
	c.ArtistID = helpers.StringTrim(q.ArtistID)
	c.IncludePast = q.IncludePast
	if q.Genre != "" {
		c.Genres = strings.Split(q.Genre, ",")
	}
	if q.Near != nil {
		c.NearbyOnly = *q.Near
	}
	if q.PriceRange != "" {
		c.PriceRange = q.PriceRange
	}
	if q.Category != "" {
		c.Category = q.Category
	}
	if q.SortBy != "" {
		c.SortBy = q.SortBy
	}
	return c, nil
}

func (ls *LiveService) Events(q EventQuery) ([]EventCard, error) {
	c, err := ls.Criteria(q)
	if err != nil {
		return nil, err
	}
	return ls.cards(browse.View(ls.state.Events(), c, ls.opts.Now())), nil
}

func (ls *LiveService) Sections(q EventQuery) (*SectionsView, error) {
	c, err := ls.Criteria(q)
	if err != nil {
		return nil, err
	}
	now := ls.opts.Now()
	s := browse.BuildSections(browse.View(ls.state.Events(), c, now), c.TopArtists, now)
	return &SectionsView{
		TopArtists:  ls.cards(s.TopArtists),
		ThisWeekend: ls.cards(s.ThisWeekend),
		Nearby:      ls.cards(s.Nearby),
	}, nil
}

func (ls *LiveService) Featured() (*EventCard, error) {
	ev, ok := browse.Featured(ls.state.Events(), ls.state.User().TopArtists, ls.opts.Now())
	if !ok {
		return nil, fmt.Errorf("featured event: %w", ErrNotFound)
	}
	card := ls.card(ev)
	return &card, nil
}

func (ls *LiveService) Event(id string) (*EventCard, error) {
	ev, ok := ls.state.Event(helpers.StringTrim(id))
	if !ok {
		return nil, fmt.Errorf("event %q: %w", id, ErrNotFound)
	}
	card := ls.card(ev)
	return &card, nil
}

func (ls *LiveService) Filters() models.FilterState {
	return ls.state.Filters()
}

func (ls *LiveService) UpdateFilters(patch models.FilterPatch) (models.FilterState, error) {
	if err := models.Validate.Struct(patch); err != nil {
		return models.FilterState{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return ls.state.SetFilters(patch), nil
}

func (ls *LiveService) Cart(q QuoteRequest) CartView {
	lines := ls.state.CartWithEvents()
	return CartView{Lines: lines, Breakdown: ls.totals(lines, q)}
}

// AddToCart prices the line server-side from the fan discount.
func (ls *LiveService) AddToCart(req AddToCartRequest) (*models.CartItem, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	ev, ok := ls.state.Event(helpers.StringTrim(req.EventID))
	if !ok {
		return nil, fmt.Errorf("event %q: %w", req.EventID, ErrNotFound)
	}
	if ev.IsPast(ls.opts.Now()) {
		return nil, fmt.Errorf("%w: event %s has already happened", ErrInvalidInput, ev.ID)
	}
	if req.Quantity > ev.TicketsAvailable {
		return nil, fmt.Errorf("%w: only %d tickets left for %s", ErrInvalidInput, ev.TicketsAvailable, ev.ID)
	}

	section := req.Section
	if section == "" {
		section = "General Admission"
	}
	item := models.CartItem{
		EventID:        ev.ID,
		Quantity:       req.Quantity,
		Section:        section,
		SelectedSeats:  req.SelectedSeats,
		PricePerTicket: pricing.ForEvent(&ev).EffectivePrice,
	}
	ls.state.AddToCart(item)
	metrics.TrackCartOperation("add")
	return &item, nil
}

// UpdateCartItem ignores client-supplied prices.
func (ls *LiveService) UpdateCartItem(eventID string, patch models.CartItemPatch) (*models.CartItem, error) {
	if err := models.Validate.Struct(patch); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	patch.PricePerTicket = nil

	id := helpers.StringTrim(eventID)
	if ev, ok := ls.state.Event(id); ok && patch.Quantity != nil && *patch.Quantity > ev.TicketsAvailable {
		return nil, fmt.Errorf("%w: only %d tickets left for %s", ErrInvalidInput, ev.TicketsAvailable, ev.ID)
	}

	item, ok := ls.state.UpdateCartItem(id, patch)
	if !ok {
		return nil, fmt.Errorf("cart item %q: %w", eventID, ErrNotFound)
	}
	metrics.TrackCartOperation("update")
	return &item, nil
}

func (ls *LiveService) RemoveFromCart(eventID string) {
	if ls.state.RemoveFromCart(helpers.StringTrim(eventID)) {
		metrics.TrackCartOperation("remove")
	}
}

func (ls *LiveService) ClearCart() {
	ls.state.ClearCart()
	metrics.TrackCartOperation("clear")
}

func (ls *LiveService) Saved() []EventCard {
	return ls.cards(ls.state.SavedWithEvents())
}

func (ls *LiveService) ToggleSaved(eventID string) (bool, error) {
	id := helpers.StringTrim(eventID)
	if id == "" {
		return false, fmt.Errorf("%w: event id cannot be empty", ErrInvalidInput)
	}
	return ls.state.ToggleSaveEvent(id), nil
}

func (ls *LiveService) Quote(q QuoteRequest) pricing.Breakdown {
	return ls.totals(ls.state.CartWithEvents(), q)
}

// Checkout validates the contact form, settles the cart and, when asked,
// upgrades the profile to premium.
func (ls *LiveService) Checkout(form CheckoutForm) (*CheckoutResult, error) {
	if err := models.Validate.Struct(form); err != nil {
		metrics.TrackCheckout("invalid", 0, 0)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	settled, err := ls.state.Settle(ls.opts.Now(), ls.issuer)
	switch {
	case errors.Is(err, session.ErrEmptyCart):
		metrics.TrackCheckout("empty_cart", 0, 0)
		return nil, err
	case errors.Is(err, session.ErrMissingEvent):
		metrics.TrackCheckout("missing_event", 0, 0)
		return nil, err
	case err != nil:
		metrics.TrackCheckout("error", 0, 0)
		return nil, fmt.Errorf("settle cart: %w", err)
	}

	tickets := settled.Tickets
	breakdown := ls.breakdown(settled.Lines, form.QuoteRequest)

	if form.AddPremium {
		u := ls.state.User()
		if !u.IsPremium {
			u.IsPremium = true
			ls.state.SetUser(u)
		}
	}

	total, _ := breakdown.Total.Float64()
	metrics.TrackCheckout("success", len(tickets), total)
	ls.logger.Info("checkout settled", "tickets", len(tickets), "total", breakdown.Total.StringFixed(2))

	return &CheckoutResult{Tickets: tickets, Breakdown: breakdown}, nil
}

func (ls *LiveService) Tickets(status string) ([]models.TicketView, error) {
	st := models.TicketStatus(strings.ToLower(strings.TrimSpace(status)))
	switch st {
	case "", models.TicketUpcoming, models.TicketPast:
	default:
		return nil, fmt.Errorf("%w: status must be upcoming or past", ErrInvalidInput)
	}
	return ls.state.TicketsWithEvents(st, ls.opts.Now()), nil
}

// VerifyTicket resolves a scanned QR payload to its ticket.
func (ls *LiveService) VerifyTicket(qr string) (*models.TicketView, error) {
	qr = strings.TrimSpace(qr)
	if qr == "" {
		return nil, fmt.Errorf("%w: qr is required", ErrInvalidInput)
	}
	t, ok := ls.state.TicketByQR(qr)
	if !ok {
		return nil, fmt.Errorf("ticket: %w", ErrNotFound)
	}
	if err := ls.issuer.Verify(t.ID, t.EventID, qr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	ev, ok := ls.state.Event(t.EventID)
	if !ok {
		return nil, fmt.Errorf("event %q: %w", t.EventID, ErrNotFound)
	}
	return &models.TicketView{
		PurchasedTicket: t,
		Status:          models.StatusAt(ev.Date, ls.opts.Now()),
		Event:           ev,
	}, nil
}

func (ls *LiveService) Discovery() DiscoveryView {
	if !ls.state.ShouldShowDiscovery(ls.opts.Now()) {
		return DiscoveryView{}
	}
	featured, err := ls.Featured()
	if err != nil {
		return DiscoveryView{}
	}
	return DiscoveryView{Show: true, Featured: featured}
}

func (ls *LiveService) DismissDiscovery(permanent bool) {
	ls.state.DismissDiscovery(permanent, ls.opts.Now())
}

func (ls *LiveService) totals(lines []models.CartLine, q QuoteRequest) pricing.Breakdown {
	items := make([]models.CartItem, len(lines))
	for i, l := range lines {
		items[i] = l.CartItem
	}
	return ls.breakdown(items, q)
}

func (ls *LiveService) breakdown(items []models.CartItem, q QuoteRequest) pricing.Breakdown {
	return pricing.Totals(items, pricing.TotalsOptions{
		ServiceFee: ls.opts.ServiceFee,
		PremiumFee: ls.opts.PremiumFee,
		AddPremium: q.AddPremium,
		PromoCode:  q.PromoCode,
	})
}

func (ls *LiveService) card(ev models.Event) EventCard {
	return EventCard{
		Event:   ev,
		Pricing: pricing.ForEvent(&ev),
		Saved:   ls.state.IsSaved(ev.ID),
	}
}

func (ls *LiveService) cards(events []models.Event) []EventCard {
	out := make([]EventCard, 0, len(events))
	for _, ev := range events {
		out = append(out, ls.card(ev))
	}
	return out
}
