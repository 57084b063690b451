package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/joshua-takyi/live/internal/metrics"
	"github.com/joshua-takyi/live/internal/models"
	"github.com/joshua-takyi/live/internal/session"
)

const defaultSaveTimeout = 5 * time.Second

// Persister mirrors session state into a BlobRepo, one blob per storage key.
// The catalog itself is never stored; it is regenerated on every start.
type Persister struct {
	repo        models.BlobRepo
	logger      *slog.Logger
	saveTimeout time.Duration
}

func NewPersister(repo models.BlobRepo, logger *slog.Logger) *Persister {
	return &Persister{
		repo:        repo,
		logger:      logger,
		saveTimeout: defaultSaveTimeout,
	}
}

func (p *Persister) Ping(ctx context.Context) error {
	return p.repo.Ping(ctx)
}

// Load reads every blob independently. Absent, unreadable or malformed blobs
// fall back to their defaults and never fail the load.
func (p *Persister) Load(ctx context.Context) session.Snapshot {
	snap := session.DefaultSnapshot()

	loadBlob(ctx, p, models.KeyUser, &snap.User)
	loadBlob(ctx, p, models.KeyCart, &snap.Cart)
	loadBlob(ctx, p, models.KeySavedEvents, &snap.SavedEvents)
	loadBlob(ctx, p, models.KeyPurchasedTickets, &snap.PurchasedTickets)

	var filters models.FilterState
	if loadBlob(ctx, p, models.KeyFilters, &filters) {
		if err := models.Validate.Struct(filters); err != nil {
			p.logger.Warn("discarding invalid persisted filters", "error", err)
		} else {
			snap.Filters = filters
		}
	}

	var dismissedAt int64
	if loadBlob(ctx, p, models.KeyModalDismissed, &dismissedAt) && dismissedAt > 0 {
		at := time.UnixMilli(dismissedAt)
		snap.Discovery.DismissedAt = &at
	}
	loadBlob(ctx, p, models.KeyModalDismissedPermanent, &snap.Discovery.Permanent)

	return snap
}

// loadBlob decodes key into dst and reports whether it did. dst is untouched
// unless the whole blob decodes.
func loadBlob[T any](ctx context.Context, p *Persister, key string, dst *T) bool {
	data, err := p.repo.Get(ctx, key)
	if errors.Is(err, models.ErrBlobNotFound) {
		return false
	}
	if err != nil {
		metrics.TrackStoreError("load")
		p.logger.Warn("failed to read persisted state, using default", "key", key, "error", err)
		return false
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		p.logger.Warn("malformed persisted state, using default", "key", key, "error", err)
		return false
	}
	*dst = v
	return true
}

// Save is registered as the session change hook.
func (p *Persister) Save(change session.Change) {
	ctx, cancel := context.WithTimeout(context.Background(), p.saveTimeout)
	defer cancel()

	if err := p.SaveSnapshot(ctx, change.Snapshot, change.Scopes...); err != nil {
		metrics.TrackStoreError("save")
		p.logger.Error("failed to persist state", "scopes", change.Scopes, "error", err)
	}
}

// SaveSnapshot writes the blobs backing the given scopes; no scopes writes all of them.
func (p *Persister) SaveSnapshot(ctx context.Context, snap session.Snapshot, scopes ...session.Scope) error {
	if len(scopes) == 0 {
		scopes = []session.Scope{
			session.ScopeUser, session.ScopeCart, session.ScopeSaved,
			session.ScopeTickets, session.ScopeFilters, session.ScopeDiscovery,
		}
	}

	var errs []error
	for _, scope := range scopes {
		if err := p.saveScope(ctx, snap, scope); err != nil {
			errs = append(errs, fmt.Errorf("save %s: %w", scope, err))
		}
	}
	return errors.Join(errs...)
}

func (p *Persister) saveScope(ctx context.Context, snap session.Snapshot, scope session.Scope) error {
	switch scope {
	case session.ScopeUser:
		return p.put(ctx, models.KeyUser, snap.User)
	case session.ScopeCart:
		return p.put(ctx, models.KeyCart, snap.Cart)
	case session.ScopeSaved:
		return p.put(ctx, models.KeySavedEvents, snap.SavedEvents)
	case session.ScopeTickets:
		return p.put(ctx, models.KeyPurchasedTickets, snap.PurchasedTickets)
	case session.ScopeFilters:
		return p.put(ctx, models.KeyFilters, snap.Filters)
	case session.ScopeDiscovery:
		return p.saveDiscovery(ctx, snap.Discovery)
	}
	return fmt.Errorf("unknown scope %q", scope)
}

func (p *Persister) saveDiscovery(ctx context.Context, d session.Discovery) error {
	if d.DismissedAt == nil {
		if err := p.repo.Delete(ctx, models.KeyModalDismissed); err != nil {
			return err
		}
	} else if err := p.put(ctx, models.KeyModalDismissed, d.DismissedAt.UnixMilli()); err != nil {
		return err
	}

	if !d.Permanent {
		return p.repo.Delete(ctx, models.KeyModalDismissedPermanent)
	}
	return p.put(ctx, models.KeyModalDismissedPermanent, true)
}

func (p *Persister) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return p.repo.Put(ctx, key, data)
}
