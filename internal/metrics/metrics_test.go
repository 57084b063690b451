package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTrackCheckout(t *testing.T) {
	tickets := testutil.ToFloat64(ticketsIssued)
	rev := testutil.ToFloat64(revenue)

	TrackCheckout("success", 2, 85)
	TrackCheckout("empty_cart", 0, 0)

	assert.Equal(t, tickets+2, testutil.ToFloat64(ticketsIssued))
	assert.Equal(t, rev+85, testutil.ToFloat64(revenue))
	assert.GreaterOrEqual(t, testutil.ToFloat64(checkouts.WithLabelValues("empty_cart")), 1.0)
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(cartOperations.WithLabelValues("add"))
	TrackCartOperation("add")
	assert.Equal(t, before+1, testutil.ToFloat64(cartOperations.WithLabelValues("add")))

	SetCatalogSize(47)
	assert.Equal(t, 47.0, testutil.ToFloat64(catalogSize))

	ObserveHTTP("/api/v1/events", "GET", 200, 3*time.Millisecond)
	assert.GreaterOrEqual(t, testutil.ToFloat64(httpRequests.WithLabelValues("/api/v1/events", "GET", "200")), 1.0)

	TrackStoreError("save")
	assert.GreaterOrEqual(t, testutil.ToFloat64(storeErrors.WithLabelValues("save")), 1.0)
}
