package messages

import "time"

// LookupCompleted is published once per attempted submission.
type LookupCompleted struct {
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`

	Mode           string `json:"mode"`
	TrackingNumber string `json:"tracking_number,omitempty"`
	OrderReference string `json:"order_reference,omitempty"`
	TrackingURL    string `json:"tracking_url,omitempty"`

	Resolved        bool `json:"resolved"`
	ProofOfDelivery bool `json:"proof_of_delivery"`

	Error                string `json:"error,omitempty"`
	ReferenceError       string `json:"reference_error,omitempty"`
	ProofOfDeliveryError string `json:"proof_of_delivery_error,omitempty"`
}
