package seed

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	tagSep   = "/"
	indexSep = "#"
)

// Salt derives the sub-seed for a single concern of base.
func Salt(base, tag string) string {
	return base + tagSep + tag
}

// Sub derives the sub-seed for the i-th item of a concern of base.
func Sub(base, tag string, i int) string {
	return base + tagSep + tag + indexSep + strconv.Itoa(i)
}

// ForDate returns the daily seed for t, formatted as YYYY-MM-DD in t's location.
func ForDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// Random returns a fresh, unpredictable seed token.
func Random() string {
	return uuid.NewString()
}
