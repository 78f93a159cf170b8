// Package pod extracts a displayable proof-of-delivery summary from an
// arbitrarily shaped provider payload.
package pod

import (
	"strings"

	"github.com/BearBump/TrackLink/internal/models"
	"github.com/BearBump/TrackLink/internal/payload"
)

var (
	signatureRefKeys = payload.NormalizedKeys(
		"signatureUrl", "signatureImageUrl", "signatureLink", "signatureDownloadUrl",
	)
	signatureImageKeys = payload.NormalizedKeys(
		"signatureImage", "signature", "signatureData", "signaturePayload", "proofImage",
	)
	signedByKeys = payload.NormalizedKeys(
		"signedBy", "signatory", "recipient", "recipientName", "receiver", "receiverName",
	)
	signedAtKeys = payload.NormalizedKeys(
		"signedAt", "completedAt", "completedTime", "timestamp", "deliveredAt", "deliveredOn", "dateTime",
	)
	statusKeys = payload.NormalizedKeys(
		"status", "podStatus", "deliveryStatus",
	)

	// Top-level keys that carry the signature itself and never show up as details.
	signatureDetailKeys = payload.NormalizedKeys(
		"signatureUrl", "signatureImage", "signature", "signatureData",
		"signaturePayload", "proofImage", "signatureLink",
	)
)

// Build extracts a proof-of-delivery view from raw. When raw has a nested
// object under "pod" that object is searched instead. It returns false when raw
// is not an object or nothing displayable was found.
func Build(raw payload.Value) (*models.ProofOfDelivery, bool) {
	root, ok := raw.(payload.Mapping)
	if !ok {
		return nil, false
	}
	body := root
	if nested, ok := root.Get("pod"); ok {
		if m, ok := nested.(payload.Mapping); ok {
			body = m
		}
	}

	out := &models.ProofOfDelivery{Raw: raw}

	signatureRef, found := payload.FindFirst(body, signatureRefKeys)
	if found && isHTTPURL(signatureRef) {
		out.SignatureURL = signatureRef
	} else {
		if found {
			if img, ok := CoerceDataURI(signatureRef); ok {
				out.SignatureImage = img
			}
		}
		if out.SignatureImage == "" {
			if candidate, ok := payload.FindFirst(body, signatureImageKeys); ok {
				if img, ok := CoerceDataURI(candidate); ok {
					out.SignatureImage = img
				} else {
					out.SignatureImage = candidate
				}
			}
		}
	}

	out.SignedBy, _ = payload.FindFirst(body, signedByKeys)
	out.SignedAt, _ = payload.FindFirst(body, signedAtKeys)
	out.Status, _ = payload.FindFirst(body, statusKeys)

	details := newDetailList()
	for _, fixed := range []models.Detail{
		{Label: "Signed by", Value: out.SignedBy},
		{Label: "Signed at", Value: out.SignedAt},
		{Label: "Status", Value: out.Status},
	} {
		if fixed.Value != "" {
			details.add(fixed.Label, fixed.Value)
		}
	}

	for _, e := range body {
		if signatureDetailKeys(e.Key) {
			continue
		}
		text, ok := scalarText(e.Value)
		if !ok {
			continue
		}
		details.add(FormatLabel(e.Key), text)
	}
	out.Details = details.items

	if out.SignatureURL == "" && out.SignatureImage == "" && len(out.Details) == 0 {
		return nil, false
	}
	return out, true
}

func isHTTPURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// scalarText stringifies strings and numbers; booleans, nulls and containers
// are not shown as details.
func scalarText(v payload.Value) (string, bool) {
	switch s := v.(type) {
	case payload.String:
		return string(s), true
	case payload.Number:
		return string(s), true
	default:
		return "", false
	}
}

type detailList struct {
	items []models.Detail
	seen  map[string]struct{}
}

func newDetailList() *detailList {
	return &detailList{items: []models.Detail{}, seen: map[string]struct{}{}}
}

// add appends a row unless the label is already taken.
func (d *detailList) add(label, value string) {
	if _, dup := d.seen[label]; dup {
		return
	}
	d.seen[label] = struct{}{}
	d.items = append(d.items, models.Detail{Label: label, Value: value})
}
