package delivery

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"workshop/internal/pkg/errs"
)

// numberPrefix is the fixed lead-in of every delivery note number.
const numberPrefix = "DN-"

// NumberPrefixFor returns the year-scoped prefix for delivery note numbers,
// e.g. "DN-25-" during 2025. The running sequence restarts under each
// year's prefix.
func NumberPrefixFor(at time.Time) string {
	return fmt.Sprintf("%s%02d-", numberPrefix, at.Year()%100)
}

// NextNumber computes the next delivery note number under the given prefix.
// maxExisting is the highest number already issued under that prefix, or
// empty when none exists, in which case the sequence starts at 1. The
// running sequence is zero-padded to four digits: DN-25-0007.
func NextNumber(prefix, maxExisting string) (string, error) {
	next := 1
	if maxExisting != "" {
		if !strings.HasPrefix(maxExisting, prefix) {
			return "", errs.NewValueIsInvalidErrorWithCause(
				"delivery note number",
				fmt.Errorf("%q does not carry prefix %q", maxExisting, prefix),
			)
		}
		seq, err := strconv.Atoi(maxExisting[len(prefix):])
		if err != nil {
			return "", errs.NewValueIsInvalidErrorWithCause("delivery note number", err)
		}
		next = seq + 1
	}
	return fmt.Sprintf("%s%04d", prefix, next), nil
}
