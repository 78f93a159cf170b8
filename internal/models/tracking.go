package models

import "github.com/BearBump/TrackLink/internal/payload"

// LookupMode says which path a submission took.
const (
	LookupModeNone           = "none"
	LookupModeTrackingNumber = "tracking_number"
	LookupModeOrderReference = "order_reference"
)

// TrackingSubmission is the raw form input of a single request.
type TrackingSubmission struct {
	TrackingNumber      string
	OrderReference      string
	SubmissionAttempted bool
}

// Detail is one labelled row of the proof-of-delivery table.
type Detail struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProofOfDelivery is what could be pulled out of a provider POD payload.
// Labels in Details are unique.
type ProofOfDelivery struct {
	SignatureURL   string        `json:"signature_url,omitempty"`
	SignatureImage string        `json:"signature_image,omitempty"`
	SignedBy       string        `json:"signed_by,omitempty"`
	SignedAt       string        `json:"signed_at,omitempty"`
	Status         string        `json:"status,omitempty"`
	Details        []Detail      `json:"details"`
	Raw            payload.Value `json:"raw,omitempty"`
}

// ViewModel is handed to the presentation layer. Empty strings mean "absent".
type ViewModel struct {
	TrackingNumber         string           `json:"tracking_number"`
	OrderReference         string           `json:"order_reference"`
	TrackingURL            string           `json:"tracking_url,omitempty"`
	ErrorMessage           string           `json:"error_message,omitempty"`
	ReferenceErrorMessage  string           `json:"reference_error_message,omitempty"`
	ResolvedTrackingNumber string           `json:"resolved_tracking_number,omitempty"`
	ProofOfDelivery        *ProofOfDelivery `json:"proof_of_delivery,omitempty"`
	ProofOfDeliveryError   string           `json:"proof_of_delivery_error,omitempty"`

	Mode string `json:"-"`
}
