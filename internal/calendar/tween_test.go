package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHeightTween(t *testing.T) {
	start := time.Date(2024, time.April, 17, 12, 0, 0, 0, time.Local)
	tw := NewHeightTween(5, 1, start, 300*time.Millisecond)

	assert.Equal(t, 1.0, tw.Target())
	assert.False(t, tw.Done(start))
	assert.Equal(t, 5.0, tw.Value(start))

	mid := tw.Value(start.Add(150 * time.Millisecond))
	assert.Less(t, mid, 5.0)
	assert.Greater(t, mid, 1.0)
	// Ease-out covers more than half the distance by the halfway point.
	assert.Less(t, mid, 3.0)

	end := start.Add(300 * time.Millisecond)
	assert.True(t, tw.Done(end))
	assert.Equal(t, 1.0, tw.Value(end))
	assert.Equal(t, 1.0, tw.Value(end.Add(time.Second)))
}

func TestHeightTween_BeforeStart(t *testing.T) {
	start := time.Date(2024, time.April, 17, 12, 0, 0, 0, time.Local)
	tw := NewHeightTween(1, 6, start, 300*time.Millisecond)

	assert.Equal(t, 1.0, tw.Value(start.Add(-time.Second)))
}

func TestHeightTween_ZeroValue(t *testing.T) {
	var tw HeightTween
	now := time.Now()

	assert.True(t, tw.Done(now))
	assert.Equal(t, 0.0, tw.Value(now))
}
