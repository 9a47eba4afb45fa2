// Package reflection defines the persisted reflection record and its
// constructors.
package reflection

import (
	"strings"
	"time"
)

const dateLayout = "Monday, January 2, 2006"

// Reflection is a user-authored note captured at the end of a session. Once
// stored it is never edited or deleted.
type Reflection struct {
	ID              string `json:"id"`
	StuckPointTitle string `json:"stuckPointTitle"`
	Text            string `json:"text"`
	Date            string `json:"date"`
}

// New builds a reflection stamped at the given instant. The id derives from
// the creation time; the date is the human-readable form shown in lists.
func New(stuckPointTitle, text string, now time.Time) *Reflection {
	return &Reflection{
		ID:              now.Format(time.RFC3339Nano),
		StuckPointTitle: stuckPointTitle,
		Text:            text,
		Date:            now.Format(dateLayout),
	}
}

// Valid reports whether a stored record holds enough shape to display.
// Records failing this check are dropped at the storage boundary.
func (r *Reflection) Valid() bool {
	return r != nil &&
		strings.TrimSpace(r.ID) != "" &&
		strings.TrimSpace(r.Text) != ""
}

// Row returns the uitable row for CLI listings.
func (r *Reflection) Row() (string, string, string) {
	return r.Date, r.StuckPointTitle, r.Text
}
