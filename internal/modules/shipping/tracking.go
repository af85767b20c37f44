package shipping

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateTrackingNumber creates a carrier-neutral tracking number: TRK-XXXXXXXX
func GenerateTrackingNumber() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "TRK-" + strings.ToUpper(id[:8])
}
