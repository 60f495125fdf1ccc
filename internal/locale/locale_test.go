package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatter_MonthYear(t *testing.T) {
	april := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local)

	f := New("en_US", "")
	assert.Equal(t, "April 2024", f.MonthYear(april))
	assert.Equal(t, "en_US", f.Locale())

	de := New("de_DE", "January 2006")
	assert.Equal(t, "April 2024", de.MonthYear(april))
	assert.Equal(t, "März 2024", de.MonthYear(april.AddDate(0, -1, 0)))
}

func TestFormatter_UnknownLocaleFallsBack(t *testing.T) {
	f := New("xx_XX", "January 2006")
	assert.Equal(t, "en_US", f.Locale())
	assert.Equal(t, "May 2024", f.MonthYear(time.Date(2024, time.May, 3, 0, 0, 0, 0, time.Local)))
}
