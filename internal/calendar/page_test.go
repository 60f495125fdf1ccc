package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecidePage(t *testing.T) {
	assert.Equal(t, 1, DecidePage(-60, 50))
	assert.Equal(t, -1, DecidePage(60, 50))
	assert.Equal(t, 0, DecidePage(-50, 50))
	assert.Equal(t, 0, DecidePage(10, 50))
	assert.Equal(t, 1, DecidePage(-51, 0), "non-positive threshold uses the default")
}

func TestState_Page(t *testing.T) {
	s := NewState(fixedClock(date(2024, time.November, 5)))

	s.Page(2)
	assert.Equal(t, Month{Year: 2025, Month: time.January}, s.ReferenceMonth())

	s.Page(-3)
	assert.Equal(t, Month{Year: 2024, Month: time.October}, s.ReferenceMonth())

	s.Page(0)
	assert.Equal(t, Month{Year: 2024, Month: time.October}, s.ReferenceMonth())
}
