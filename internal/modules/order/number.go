package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateOrderNumber creates a human-readable order number: ORD-YYYYMMDD-XXXX
func GenerateOrderNumber(now time.Time) string {
	return generateNumber("ORD", now)
}

// GenerateReceiptNumber creates a receipt number: RCT-YYYYMMDD-XXXX
func GenerateReceiptNumber(now time.Time) string {
	return generateNumber("RCT", now)
}

func generateNumber(prefix string, now time.Time) string {
	date := now.UTC().Format("20060102")
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("%s-%s-%s", prefix, date, suffix)
}
