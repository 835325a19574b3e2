package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlotGetWithinTTL(t *testing.T) {
	slot := NewSlot[[]string]()
	slot.Set([]string{"a", "b"}, time.Minute)

	got, ok := slot.Get()
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestSlotExpires(t *testing.T) {
	slot := NewSlot[int]()
	slot.Set(42, 10*time.Millisecond)

	_, ok := slot.Get()
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	_, ok = slot.Get()
	assert.False(t, ok, "expired entry must read as absent")
}

func TestSlotEmpty(t *testing.T) {
	slot := NewSlot[int]()

	got, ok := slot.Get()
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestSlotClear(t *testing.T) {
	slot := NewSlot[int]()
	slot.Set(1, time.Minute)
	slot.Clear()

	_, ok := slot.Get()
	assert.False(t, ok)
}

func TestSlotOverwrite(t *testing.T) {
	slot := NewSlot[int]()
	slot.Set(1, 10*time.Millisecond)
	slot.Set(2, time.Minute)

	time.Sleep(20 * time.Millisecond)

	// The second Set replaced both value and expiry.
	got, ok := slot.Get()
	assert.True(t, ok)
	assert.Equal(t, 2, got)
}
