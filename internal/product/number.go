package product

import "fmt"

// FormatNumber renders a shop-scoped sequential product number with the
// shop's prefix. Pure; the sequence itself comes from the counter service.
func FormatNumber(prefix string, n int64) string {
	return fmt.Sprintf("%s%06d", prefix, n)
}
