package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tacocloud/taco-api/internal/models"
)

func TestCartGetOrCreate(t *testing.T) {
	carts := NewCartService(time.Minute)

	order := carts.GetOrCreate("session-a")
	assert.NotNil(t, order)
	assert.Empty(t, order.Tacos)

	// Same session gets the same accumulator back
	assert.Same(t, order, carts.GetOrCreate("session-a"))
}

func TestCartAppendPreservesSubmissionOrder(t *testing.T) {
	carts := NewCartService(time.Minute)

	carts.AppendTaco("session-a", models.Taco{Name: "First"})
	order := carts.AppendTaco("session-a", models.Taco{Name: "Second"})

	assert.Len(t, order.Tacos, 2)
	assert.Equal(t, "First", order.Tacos[0].Name)
	assert.Equal(t, "Second", order.Tacos[1].Name)
}

func TestCartSessionsAreIsolated(t *testing.T) {
	carts := NewCartService(time.Minute)

	carts.AppendTaco("session-a", models.Taco{Name: "Mine"})
	other := carts.GetOrCreate("session-b")

	assert.Empty(t, other.Tacos)
	assert.Len(t, carts.GetOrCreate("session-a").Tacos, 1)
}

func TestCartComplete(t *testing.T) {
	carts := NewCartService(time.Minute)

	first := carts.AppendTaco("session-a", models.Taco{Name: "Done"})
	carts.Complete("session-a")

	// The next interaction starts fresh
	fresh := carts.GetOrCreate("session-a")
	assert.NotSame(t, first, fresh)
	assert.Empty(t, fresh.Tacos)
}

func TestCartEvictExpired(t *testing.T) {
	carts := NewCartService(50 * time.Millisecond)

	carts.AppendTaco("stale", models.Taco{Name: "Old"})
	time.Sleep(100 * time.Millisecond)
	carts.AppendTaco("fresh", models.Taco{Name: "New"})

	assert.Equal(t, 1, carts.EvictExpired())
	assert.Len(t, carts.GetOrCreate("fresh").Tacos, 1)
	assert.Empty(t, carts.GetOrCreate("stale").Tacos)
}
