package utils

import (
	"fmt"
	"time"
)

// Order id prefixes per transaction kind.
const (
	OrderPrefixProduct = "ORD"
	OrderPrefixCashout = "CSH"
)

// GenerateOrderID mints an order id from a kind prefix and a time-derived
// suffix (epoch millis mod 1e8). Not collision-proof on its own: callers
// create the order inside a transaction and retry on a unique violation.
func GenerateOrderID(prefix string) string {
	return fmt.Sprintf("%s%08d", prefix, time.Now().UnixMilli()%100000000)
}
