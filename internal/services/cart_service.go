package services

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tacocloud/taco-api/internal/models"
)

// CartService holds each session's in-progress order while the customer
// composes tacos across round-trips. Accumulators are keyed by session id and
// fully isolated from each other; an accumulator lives until the order is
// completed or the session goes idle past the TTL.
type CartService interface {
	// GetOrCreate returns the session's in-progress order, creating an empty
	// one on first use
	GetOrCreate(sessionID string) *models.TacoOrder
	// AppendTaco adds a composed taco to the session's order, preserving
	// submission order, and returns the updated order
	AppendTaco(sessionID string, taco models.Taco) *models.TacoOrder
	// Complete evicts the session's accumulator so the next interaction
	// starts fresh
	Complete(sessionID string)
	// EvictExpired drops accumulators idle longer than the TTL and returns
	// how many were dropped
	EvictExpired() int
}

type cartEntry struct {
	order   *models.TacoOrder
	touched time.Time
}

// cartService is the in-memory implementation of the CartService interface.
// A session is assumed to submit sequentially; the mutex only guards the map
// against requests from different sessions.
type cartService struct {
	mu    sync.Mutex
	carts map[string]*cartEntry
	ttl   time.Duration
}

// NewCartService creates a new instance of CartService with the given idle TTL
func NewCartService(ttl time.Duration) CartService {
	return &cartService{
		carts: make(map[string]*cartEntry),
		ttl:   ttl,
	}
}

func (s *cartService) GetOrCreate(sessionID string) *models.TacoOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entry(sessionID).order
}

func (s *cartService) AppendTaco(sessionID string, taco models.Taco) *models.TacoOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.entry(sessionID)
	entry.order.AddTaco(taco)
	log.WithFields(log.Fields{
		"session_id": sessionID,
		"taco_name":  taco.Name,
		"cart_size":  len(entry.order.Tacos),
	}).Debug("Taco added to in-progress order")
	return entry.order
}

func (s *cartService) Complete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	log.WithField("session_id", sessionID).Debug("In-progress order completed and evicted")
}

func (s *cartService) EvictExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline := time.Now().Add(-s.ttl)
	evicted := 0
	for sessionID, entry := range s.carts {
		if entry.touched.Before(deadline) {
			delete(s.carts, sessionID)
			evicted++
		}
	}
	if evicted > 0 {
		log.WithField("evicted", evicted).Info("Evicted expired in-progress orders")
	}
	return evicted
}

// entry returns the session's accumulator, creating it if needed and marking
// it as touched. Callers must hold the mutex.
func (s *cartService) entry(sessionID string) *cartEntry {
	entry, ok := s.carts[sessionID]
	if !ok {
		entry = &cartEntry{order: &models.TacoOrder{}}
		s.carts[sessionID] = entry
		log.WithField("session_id", sessionID).Debug("Created new in-progress order")
	}
	entry.touched = time.Now()
	return entry
}

// SweepExpiredCarts periodically evicts idle accumulators until stop is
// closed. Run it in its own goroutine.
func SweepExpiredCarts(carts CartService, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			carts.EvictExpired()
		case <-stop:
			return
		}
	}
}
