// Package locale formats month/year labels in the user's locale.
package locale

import (
	"time"

	"github.com/goodsign/monday"
)

// Formatter renders month headers for a locale.
type Formatter struct {
	locale monday.Locale
	layout string
}

// New returns a Formatter for the named locale (e.g. "en_US") and Go
// layout. Unknown locales fall back to en_US.
func New(name, layout string) *Formatter {
	if layout == "" {
		layout = "January 2006"
	}
	return &Formatter{locale: Resolve(name), layout: layout}
}

// Resolve maps a locale name to a supported monday locale, defaulting to
// en_US.
func Resolve(name string) monday.Locale {
	for _, l := range monday.ListLocales() {
		if string(l) == name {
			return l
		}
	}
	return monday.LocaleEnUS
}

// Locale returns the resolved locale name.
func (f *Formatter) Locale() string {
	return string(f.locale)
}

// MonthYear formats t with the month layout, e.g. "April 2024".
func (f *Formatter) MonthYear(t time.Time) string {
	return monday.Format(t, f.layout, f.locale)
}

// Date formats t with an arbitrary layout in the formatter's locale.
func (f *Formatter) Date(t time.Time, layout string) string {
	return monday.Format(t, layout, f.locale)
}
