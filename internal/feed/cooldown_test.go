package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// newTestCooldown создает фильтр с фиксированными часами
func newTestCooldown(window time.Duration) (*Cooldown, *time.Time) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewCooldown(window)
	c.now = func() time.Time { return current }
	return c, &current
}

func TestCooldown_InactiveUntilArmed(t *testing.T) {
	c, _ := newTestCooldown(5 * time.Second)

	assert.False(t, c.Active("ESP32"))
}

func TestCooldown_SuppressesWithinWindow(t *testing.T) {
	c, clock := newTestCooldown(5 * time.Second)

	c.Arm("ESP32")
	assert.True(t, c.Active("ESP32"))

	// Событие через секунду всё ещё подавляется
	*clock = clock.Add(1 * time.Second)
	assert.True(t, c.Active("ESP32"))

	*clock = clock.Add(3999 * time.Millisecond)
	assert.True(t, c.Active("ESP32"))
}

func TestCooldown_ExpiresAtWindowBoundary(t *testing.T) {
	c, clock := newTestCooldown(5 * time.Second)

	c.Arm("ESP32")
	*clock = clock.Add(5 * time.Second)

	assert.False(t, c.Active("ESP32"))
}

func TestCooldown_SourcesAreIndependent(t *testing.T) {
	c, _ := newTestCooldown(5 * time.Second)

	c.Arm("ESP32")

	assert.True(t, c.Active("ESP32"))
	assert.False(t, c.Active("AI Detection"))
}

func TestCooldown_RearmExtendsWindow(t *testing.T) {
	c, clock := newTestCooldown(5 * time.Second)

	c.Arm("ESP32")
	*clock = clock.Add(4 * time.Second)
	c.Arm("ESP32")

	// Прежнее окно уже истекло бы, но повторный Arm сдвинул границу
	*clock = clock.Add(4 * time.Second)
	assert.True(t, c.Active("ESP32"))

	*clock = clock.Add(1 * time.Second)
	assert.False(t, c.Active("ESP32"))
}
