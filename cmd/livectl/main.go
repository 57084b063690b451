// livectl inspects the storefront from a terminal: the generated catalog,
// the persisted cart priced at checkout, and purchased tickets.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/joho/godotenv"
	"github.com/joshua-takyi/live/internal/browse"
	"github.com/joshua-takyi/live/internal/catalog"
	"github.com/joshua-takyi/live/internal/config"
	"github.com/joshua-takyi/live/internal/connect"
	"github.com/joshua-takyi/live/internal/container"
	"github.com/joshua-takyi/live/internal/models"
	"github.com/joshua-takyi/live/internal/pricing"
	"github.com/joshua-takyi/live/internal/services"
	"github.com/joshua-takyi/live/internal/session"
)

type EventsCmd struct {
	Seed     uint64   `arg:"--seed" help:"catalog seed; 0 uses CATALOG_SEED or the clock"`
	Artist   string   `arg:"-a,--artist" help:"artist id"`
	Genres   []string `arg:"-g,--genre,separate" help:"genre tag, repeatable"`
	Price    string   `arg:"-p,--price" help:"under-50, 50-100 or over-100"`
	Category string   `arg:"-c,--category" help:"this-weekend, next-30-days, top-artists, trending or a genre"`
	Sort     string   `arg:"-s,--sort" default:"recommended" help:"recommended, date, price-low or price-high"`
	Near     bool     `arg:"--near" help:"only shows within 50 miles"`
	Past     bool     `arg:"--past" help:"include shows that already happened"`
	Limit    int      `arg:"-n,--limit" default:"20"`
}

type QuoteCmd struct {
	Promo   string `arg:"--promo" help:"promo code"`
	Premium bool   `arg:"--premium" help:"add the premium subscription"`
}

type TicketsCmd struct {
	Status string `arg:"--status" help:"upcoming or past"`
}

type Args struct {
	Events  *EventsCmd  `arg:"subcommand:events" help:"list generated events"`
	Quote   *QuoteCmd   `arg:"subcommand:quote" help:"price the persisted cart"`
	Tickets *TicketsCmd `arg:"subcommand:tickets" help:"list purchased tickets"`
}

func (Args) Description() string {
	return "livectl - Spotify Live storefront tool\n"
}

func main() {
	_ = godotenv.Load(".env.local")

	var args Args
	p := arg.MustParse(&args)
	if p.Subcommand() == nil {
		p.Fail("missing subcommand")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if err := run(&args, cfg, logger, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args *Args, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	now := time.Now()

	repo, err := container.OpenStore(cfg, logger)
	if err != nil {
		return err
	}
	defer connect.Disconnect(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	snap := services.NewPersister(repo, logger).Load(ctx)

	switch {
	case args.Events != nil:
		return listEvents(out, args.Events, cfg, snap, now)
	case args.Quote != nil:
		return printQuote(out, args.Quote, cfg, snap)
	case args.Tickets != nil:
		return listTickets(out, args.Tickets, cfg, snap, now)
	}
	return nil
}

func generate(cfg *config.Config, seed uint64, snap session.Snapshot, now time.Time) []models.Event {
	if seed == 0 {
		seed = cfg.CatalogSeed
	}
	if seed == 0 {
		seed = uint64(now.UnixNano())
	}
	location := snap.User.Location.Coordinates
	if cfg.UserLocation != nil {
		location = *cfg.UserLocation
	}
	return catalog.Generate(location, snap.User.TopArtists, catalog.NewSource(seed), now)
}

func listEvents(out io.Writer, cmd *EventsCmd, cfg *config.Config, snap session.Snapshot, now time.Time) error {
	events := generate(cfg, cmd.Seed, snap, now)
	view := browse.View(events, browse.Criteria{
		ArtistID:    cmd.Artist,
		Genres:      cmd.Genres,
		NearbyOnly:  cmd.Near,
		PriceRange:  cmd.Price,
		Category:    cmd.Category,
		SortBy:      cmd.Sort,
		IncludePast: cmd.Past,
		TopArtists:  snap.User.TopArtists,
	}, now)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ARTIST\tVENUE\tWHEN\tPRICE\tFAN\tDISTANCE\tSOLD\tFLAGS")
	for i, ev := range view {
		if cmd.Limit > 0 && i >= cmd.Limit {
			break
		}
		q := pricing.ForEvent(&ev)
		price := "$" + q.EffectivePrice.StringFixed(2)
		if q.HasDiscount() {
			price += fmt.Sprintf(" (-%d%%)", q.DiscountPercent)
		}
		fmt.Fprintf(w, "%s\t%s, %s\t%s\t%s\t%d\t%s mi\t%s/%s\t%s\n",
			ev.ArtistName,
			ev.VenueName, ev.City,
			humanize.RelTime(ev.Date, now, "ago", "from now"),
			price,
			ev.FanScore,
			humanize.CommafWithDigits(ev.DistanceMiles, 0),
			humanize.Comma(int64(ev.TicketsSold)),
			humanize.Comma(int64(ev.VenueCapacity)),
			flags(&ev),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	shown := len(view)
	if cmd.Limit > 0 {
		shown = min(shown, cmd.Limit)
	}
	fmt.Fprintf(out, "\n%d of %d matching events (%d generated)\n", shown, len(view), len(events))
	return nil
}

func flags(ev *models.Event) string {
	var f []string
	if ev.IsTrending {
		f = append(f, "trending")
	}
	if ev.IsNearby {
		f = append(f, "nearby")
	}
	if len(ev.FriendsGoing) > 0 {
		f = append(f, fmt.Sprintf("%d friends", len(ev.FriendsGoing)))
	}
	return strings.Join(f, ",")
}

func printQuote(out io.Writer, cmd *QuoteCmd, cfg *config.Config, snap session.Snapshot) error {
	if len(snap.Cart) == 0 {
		fmt.Fprintln(out, "cart is empty")
		return nil
	}

	b := pricing.Totals(snap.Cart, pricing.TotalsOptions{
		ServiceFee: cfg.ServiceFee,
		PremiumFee: cfg.PremiumFee,
		AddPremium: cmd.Premium,
		PromoCode:  cmd.Promo,
	})

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, it := range snap.Cart {
		fmt.Fprintf(w, "%s\t%d x $%s\t$%s\t\n", it.EventID, it.Quantity, it.PricePerTicket.StringFixed(2), it.LineTotal().StringFixed(2))
	}
	fmt.Fprintf(w, "subtotal\t\t$%s\t\n", b.Subtotal.StringFixed(2))
	switch {
	case b.PromoRejected:
		fmt.Fprintf(w, "promo %s\t\trejected\t\n", b.PromoCode)
	case b.PromoPercent > 0:
		fmt.Fprintf(w, "promo %s (%d%%)\t\t-$%s\t\n", b.PromoCode, b.PromoPercent, b.Discount.StringFixed(2))
	}
	fmt.Fprintf(w, "service fee\t\t$%s\t\n", b.ServiceFee.StringFixed(2))
	if cmd.Premium {
		fmt.Fprintf(w, "premium\t\t$%s\t\n", b.PremiumFee.StringFixed(2))
	}
	fmt.Fprintf(w, "total\t\t$%s\t\n", b.Total.StringFixed(2))
	return w.Flush()
}

// listTickets resolves tickets against a freshly generated catalog. Event ids
// carry their generation time, so tickets bought in an earlier run show as
// unresolved.
func listTickets(out io.Writer, cmd *TicketsCmd, cfg *config.Config, snap session.Snapshot, now time.Time) error {
	want := models.TicketStatus(strings.ToLower(cmd.Status))
	if want != "" && want != models.TicketUpcoming && want != models.TicketPast {
		return fmt.Errorf("status must be upcoming or past")
	}

	events := generate(cfg, 0, snap, now)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TICKET\tEVENT\tQTY\tPAID\tBOUGHT\tSTATUS")
	shown := 0
	for _, t := range snap.PurchasedTickets {
		status := "unresolved"
		if ev := models.FindEvent(events, t.EventID); ev != nil {
			st := models.StatusAt(ev.Date, now)
			if want != "" && st != want {
				continue
			}
			status = string(st)
		} else if want != "" {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t$%s\t%s\t%s\n",
			t.ID, t.EventID, t.Quantity, t.TotalPrice.StringFixed(2), humanize.Time(t.PurchaseDate), status)
		shown++
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s\n", english.Plural(shown, "ticket", "tickets"))
	return nil
}
