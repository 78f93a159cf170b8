package carrier

import (
	"context"

	"github.com/BearBump/TrackLink/internal/models"
)

// Gateway looks orders up at the logistics provider. Both calls make a single
// attempt; failures come back as *LookupError carrying a user-facing message.
type Gateway interface {
	ResolveReference(ctx context.Context, orderReference string) (string, error)
	FetchProofOfDelivery(ctx context.Context, orderReference string) (*models.ProofOfDelivery, error)
}
