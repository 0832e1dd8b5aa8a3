package report

import (
	"fmt"
	"strconv"
)

// FormatNumber abbreviates large counts for display: 1200 becomes "1.2K",
// 1200000 "1.2M", 1200000000 "1.2B". Values under a thousand are returned
// verbatim.
func FormatNumber(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}
