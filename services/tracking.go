package services

import (
	"math/rand"
	"sync"
	"time"
)

const trackingPrefix = "ORD-"

var trackingStatuses = []string{
	"Preparing your meal 🍳",
	"Out for delivery 🚗",
	"Delivered ✅",
}

var deliveryEstimates = []string{
	"25–35 minutes",
	"30–45 minutes",
	"40–55 minutes",
}

// Tracker issues order codes and simulates delivery progress. All draws go
// through one injected rand source so tests can seed it.
type Tracker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewTracker() *Tracker {
	return NewTrackerWithSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func NewTrackerWithSource(rng *rand.Rand) *Tracker {
	return &Tracker{rng: rng}
}

// NewCode returns a fresh tracking code: the ORD- prefix plus six random
// decimal digits. One code is issued per confirmed order, so single-session
// uniqueness is all that is needed.
func (t *Tracker) NewCode() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	code := []byte(trackingPrefix)
	for i := 0; i < 6; i++ {
		code = append(code, byte('0'+t.rng.Intn(10)))
	}
	return string(code)
}

// Estimate draws a delivery estimate from the fixed set.
func (t *Tracker) Estimate() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return deliveryEstimates[t.rng.Intn(len(deliveryEstimates))]
}

// Status draws a delivery status from the fixed set. The draw is repeated
// on every query: re-querying the same code may report a different status.
// That is intentional simulation behavior, not a bug.
func (t *Tracker) Status() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return trackingStatuses[t.rng.Intn(len(trackingStatuses))]
}
