package songs

import (
	"regexp"
	"time"
)

var (
	dayPattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	yearPattern = regexp.MustCompile(`^\d{4}$`)
)

// ParseReleaseDate parses an album release date, either YYYY-MM-DD or a bare
// YYYY (which becomes January 1st of that year). The second return value is
// false when the date matches neither format.
func ParseReleaseDate(ds string) (time.Time, bool) {
	switch {
	case dayPattern.MatchString(ds):
		date, err := time.Parse("2006-01-02", ds)
		if err != nil {
			return time.Time{}, false
		}
		return date, true

	case yearPattern.MatchString(ds):
		date, err := time.Parse("2006", ds)
		if err != nil {
			return time.Time{}, false
		}
		return date, true
	}

	return time.Time{}, false
}
