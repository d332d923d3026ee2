package convert

import (
	"time"

	"github.com/araddon/dateparse"
)

// ToTime parses s in any of the common date/time layouts, reading
// zone-less timestamps in the local location.
func ToTime(s string) (time.Time, error) {
	val, err := dateparse.ParseLocal(s)
	if err != nil {
		return time.Time{}, syntaxError(s)
	}

	return val, nil
}
