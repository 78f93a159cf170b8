package fake

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/BearBump/TrackLink/internal/integrations/carrier"
	"github.com/BearBump/TrackLink/internal/models"
	"github.com/BearBump/TrackLink/internal/payload"
	"github.com/BearBump/TrackLink/internal/pod"
)

// FakeClient is an offline gateway for demos and local runs. Results are
// deterministic per reference: every fifth reference is reported as unknown
// and every third one has no proof of delivery yet.
type FakeClient struct{}

var _ carrier.Gateway = (*FakeClient)(nil)

func New() *FakeClient { return &FakeClient{} }

func (f *FakeClient) ResolveReference(ctx context.Context, orderReference string) (string, error) {
	v := hash(orderReference)
	if v%5 == 0 {
		return "", &carrier.LookupError{
			Kind:    carrier.ErrKindNotFound,
			Message: "No delivery was found for that reference.",
		}
	}
	return fmt.Sprintf("TL%08X", v), nil
}

func (f *FakeClient) FetchProofOfDelivery(ctx context.Context, orderReference string) (*models.ProofOfDelivery, error) {
	v := hash(orderReference)
	if v%3 == 0 {
		return nil, &carrier.LookupError{
			Kind:    carrier.ErrKindNotFound,
			Message: "No proof of delivery was found for this order yet.",
		}
	}

	delivered := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(v%720) * time.Hour)
	raw := payload.Mapping{
		{Key: "pod", Value: payload.Mapping{
			{Key: "orderReference", Value: payload.String(orderReference)},
			{Key: "status", Value: payload.String("DELIVERED")},
			{Key: "receiver_name", Value: payload.String("Fake Recipient")},
			{Key: "completedAt", Value: payload.String(delivered.Format(time.RFC3339))},
			{Key: "parcel_count", Value: payload.Number(fmt.Sprintf("%d", v%4+1))},
			{Key: "signatureUrl", Value: payload.String("https://example.com/signatures/" + fmt.Sprintf("%08x", v) + ".png")},
		}},
	}
	view, ok := pod.Build(raw)
	if !ok {
		return nil, &carrier.LookupError{
			Kind:    carrier.ErrKindNoData,
			Message: "Proof-of-delivery information is not currently available for this order.",
		}
	}
	return view, nil
}

func hash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
