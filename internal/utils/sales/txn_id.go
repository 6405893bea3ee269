package sales

import (
	"fmt"
	"time"
)

// DefaultIDPrefix is the receipt number prefix used when none is configured.
const DefaultIDPrefix = "AS-"

// GenerateTransactionID derives the human-readable sequential identifier for a
// sale from its date and the number of transactions already recorded in that
// calendar month. The format is PREFIX-YYMMNNN: 2-digit year, 2-digit month
// and the 1-based sequence number left-padded to 3 digits.
//
// GenerateTransactionID("AS-", 2024-03-15, 0) == "AS-2403001".
//
// The sequence field widens past 999 (count 999 produces "1000") rather than
// truncating, so the identifier stays unique within the month.
// Deterministic: the same (date, count) always yields the same identifier.
func GenerateTransactionID(prefix string, date time.Time, count int) string {
	return fmt.Sprintf("%s%02d%02d%03d", prefix, date.Year()%100, int(date.Month()), count+1)
}
