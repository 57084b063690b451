package services

import (
	"context"
	"testing"
	"time"

	"github.com/joshua-takyi/live/internal/models"
	"github.com/joshua-takyi/live/internal/session"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stalledRepo holds every Put until release is closed.
type stalledRepo struct {
	*models.MemoryRepo
	started chan struct{}
	release chan struct{}
}

func (r *stalledRepo) Put(ctx context.Context, key string, data []byte) error {
	select {
	case r.started <- struct{}{}:
	default:
	}
	<-r.release
	return r.MemoryRepo.Put(ctx, key, data)
}

func TestSaveQueue_WritesOutsideStateLock(t *testing.T) {
	repo := &stalledRepo{
		MemoryRepo: models.MemoryNewRepo(),
		started:    make(chan struct{}, 1),
		release:    make(chan struct{}),
	}
	p := NewPersister(repo, discardLogger())
	q := NewSaveQueue(p)

	state := session.New(nil, session.DefaultSnapshot())
	state.OnChange(q.Enqueue)

	state.AddToCart(models.CartItem{EventID: "E1", Quantity: 1, PricePerTicket: decimal.NewFromInt(40)})

	select {
	case <-repo.started:
	case <-time.After(time.Second):
		t.Fatal("writer never reached the store")
	}

	// The store is stalled; reads and writes on the state still go through.
	state.AddToCart(models.CartItem{EventID: "E2", Quantity: 2, PricePerTicket: decimal.NewFromInt(10)})
	state.ToggleSaveEvent("E2")
	assert.Len(t, state.Cart(), 2)

	close(repo.release)
	q.Close()

	loaded := p.Load(context.Background())
	require.Len(t, loaded.Cart, 2)
	assert.Equal(t, "E2", loaded.Cart[1].EventID)
	assert.Equal(t, []string{"E2"}, loaded.SavedEvents)
}

func TestSaveQueue_CoalescesScopes(t *testing.T) {
	repo := &stalledRepo{
		MemoryRepo: models.MemoryNewRepo(),
		started:    make(chan struct{}, 1),
		release:    make(chan struct{}),
	}
	p := NewPersister(repo, discardLogger())
	q := NewSaveQueue(p)

	q.Enqueue(session.Change{Scopes: []session.Scope{session.ScopeSaved}, Snapshot: session.DefaultSnapshot()})
	<-repo.started

	first := session.DefaultSnapshot()
	first.Filters.NearYou = true
	q.Enqueue(session.Change{Scopes: []session.Scope{session.ScopeFilters}, Snapshot: first})

	second := first
	second.Cart = []models.CartItem{{EventID: "E1", Quantity: 1, PricePerTicket: decimal.NewFromInt(40)}}
	q.Enqueue(session.Change{Scopes: []session.Scope{session.ScopeCart}, Snapshot: second})

	close(repo.release)
	q.Close()

	loaded := p.Load(context.Background())
	assert.True(t, loaded.Filters.NearYou)
	require.Len(t, loaded.Cart, 1)
	assert.Equal(t, "E1", loaded.Cart[0].EventID)
}

func TestSaveQueue_DropsAfterClose(t *testing.T) {
	repo := models.MemoryNewRepo()
	q := NewSaveQueue(NewPersister(repo, discardLogger()))
	q.Close()
	q.Close()

	snap := session.DefaultSnapshot()
	snap.SavedEvents = []string{"E1"}
	q.Enqueue(session.Change{Scopes: []session.Scope{session.ScopeSaved}, Snapshot: snap})

	_, err := repo.Get(context.Background(), models.KeySavedEvents)
	assert.ErrorIs(t, err, models.ErrBlobNotFound)
}
