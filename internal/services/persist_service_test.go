package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/joshua-takyi/live/internal/models"
	"github.com/joshua-takyi/live/internal/session"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type failingRepo struct {
	models.BlobRepo
}

func (failingRepo) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (failingRepo) Put(ctx context.Context, key string, data []byte) error {
	return errors.New("connection refused")
}

func TestPersister_LoadEmptyStoreGivesDefaults(t *testing.T) {
	p := NewPersister(models.MemoryNewRepo(), discardLogger())
	snap := p.Load(context.Background())

	assert.Equal(t, session.DefaultSnapshot(), snap)
}

func TestPersister_RoundTrip(t *testing.T) {
	repo := models.MemoryNewRepo()
	p := NewPersister(repo, discardLogger())

	state := session.New(nil, session.DefaultSnapshot())
	state.OnChange(p.Save)

	state.AddToCart(models.CartItem{EventID: "E1", Quantity: 2, Section: "GA", PricePerTicket: decimal.NewFromInt(40)})
	state.ToggleSaveEvent("E3")
	state.AddPurchasedTicket(models.PurchasedTicket{ID: "t1", EventID: "E1", Quantity: 1, TotalPrice: decimal.RequireFromString("40.5")})
	sortBy := models.SortDate
	state.SetFilters(models.FilterPatch{SortBy: &sortBy})
	dismissed := time.UnixMilli(time.Now().UnixMilli())
	state.DismissDiscovery(false, dismissed)

	loaded := p.Load(context.Background())

	require.Len(t, loaded.Cart, 1)
	assert.Equal(t, "E1", loaded.Cart[0].EventID)
	assert.True(t, decimal.NewFromInt(40).Equal(loaded.Cart[0].PricePerTicket))
	assert.Equal(t, []string{"E3"}, loaded.SavedEvents)
	require.Len(t, loaded.PurchasedTickets, 1)
	assert.True(t, decimal.RequireFromString("40.5").Equal(loaded.PurchasedTickets[0].TotalPrice))
	assert.Len(t, loaded.User.PurchasedTickets, 1)
	assert.Equal(t, models.SortDate, loaded.Filters.SortBy)
	require.NotNil(t, loaded.Discovery.DismissedAt)
	assert.True(t, dismissed.Equal(*loaded.Discovery.DismissedAt))
	assert.False(t, loaded.Discovery.Permanent)
}

func TestPersister_SavesOnlyChangedScopes(t *testing.T) {
	repo := models.MemoryNewRepo()
	p := NewPersister(repo, discardLogger())
	state := session.New(nil, session.DefaultSnapshot())
	state.OnChange(p.Save)

	state.ToggleSaveEvent("E1")

	ctx := context.Background()
	_, err := repo.Get(ctx, models.KeySavedEvents)
	assert.NoError(t, err)
	_, err = repo.Get(ctx, models.KeyCart)
	assert.ErrorIs(t, err, models.ErrBlobNotFound)
	_, err = repo.Get(ctx, models.KeyUser)
	assert.ErrorIs(t, err, models.ErrBlobNotFound)
}

func TestPersister_CorruptBlobsFallBack(t *testing.T) {
	repo := models.MemoryNewRepo()
	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, models.KeyCart, []byte("{not json")))
	require.NoError(t, repo.Put(ctx, models.KeyFilters, []byte(`{"sortBy":"loudest"}`)))
	require.NoError(t, repo.Put(ctx, models.KeySavedEvents, []byte(`["E9"]`)))
	require.NoError(t, repo.Put(ctx, models.KeyModalDismissedPermanent, []byte(`"yes"`)))

	snap := NewPersister(repo, discardLogger()).Load(ctx)

	assert.Empty(t, snap.Cart)
	assert.NotNil(t, snap.Cart)
	assert.Equal(t, models.DefaultFilters(), snap.Filters)
	assert.Equal(t, []string{"E9"}, snap.SavedEvents, "other keys still load")
	assert.False(t, snap.Discovery.Permanent)
}

func TestPersister_PermanentDismissal(t *testing.T) {
	repo := models.MemoryNewRepo()
	p := NewPersister(repo, discardLogger())
	state := session.New(nil, session.DefaultSnapshot())
	state.OnChange(p.Save)

	state.DismissDiscovery(true, time.Now())
	snap := p.Load(context.Background())
	assert.True(t, snap.Discovery.Permanent)

	restored := session.New(nil, snap)
	assert.False(t, restored.ShouldShowDiscovery(time.Now().AddDate(0, 1, 0)))
}

func TestPersister_StoreFailuresAreNotFatal(t *testing.T) {
	p := NewPersister(failingRepo{}, discardLogger())
	snap := p.Load(context.Background())
	assert.Equal(t, session.DefaultSnapshot(), snap)

	state := session.New(nil, snap)
	state.OnChange(p.Save)
	assert.NotPanics(t, func() { state.ToggleSaveEvent("E1") })
	assert.True(t, state.IsSaved("E1"))

	err := p.SaveSnapshot(context.Background(), snap, session.ScopeCart)
	assert.Error(t, err)
}
