package maxoptra

import "github.com/BearBump/TrackLink/internal/payload"

// Keys are matched exactly; the widget payload has no fixed schema.
var trackingNumberKeys = payload.ExactKeys(
	"trackingNumber",
	"tracking_number",
	"trackingCode",
	"tracking_code",
	"tracking",
	"consignmentNumber",
	"consignment_number",
	"trackingId",
	"tracking_id",
)

// ExtractTrackingNumber returns the first non-empty tracking number found
// anywhere in v, trimmed.
func ExtractTrackingNumber(v payload.Value) (string, bool) {
	return payload.FindFirst(v, trackingNumberKeys)
}
