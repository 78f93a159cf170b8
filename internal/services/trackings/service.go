package trackings

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/BearBump/TrackLink/internal/broker/messages"
	"github.com/BearBump/TrackLink/internal/integrations/carrier"
	"github.com/BearBump/TrackLink/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// TrackingBaseURL is the public tracker; the tracking number is appended as is.
const TrackingBaseURL = "https://orderstrack.com/"

const (
	msgInvalidFormat    = "Tracking numbers may only contain letters and numbers. Please try again."
	msgEmptySubmission  = "Please enter a tracking number or order reference."
	msgInvalidRetrieved = "The retrieved tracking number appears to be invalid. Please contact support."

	msgReferenceFallback = "Unable to look up that reference right now. Please try again later."
	msgPODFallback       = "Unable to retrieve proof of delivery at this time."

	publishTimeout = 2 * time.Second
)

var validate = validator.New()

// ValidTrackingNumber reports whether s is non-empty ASCII letters and digits.
func ValidTrackingNumber(s string) bool {
	return validate.Var(s, "required,alphanum") == nil
}

type Producer interface {
	Publish(ctx context.Context, topic string, key, value []byte) error
}

type Service struct {
	gateway  carrier.Gateway
	producer Producer
	topic    string
}

// New wires the orchestrator. producer may be nil, in which case no
// lookup.completed events are published.
func New(gateway carrier.Gateway, producer Producer, topic string) *Service {
	return &Service{gateway: gateway, producer: producer, topic: topic}
}

// Lookup turns one form submission into a view-model. An explicit tracking
// number wins over resolving the order reference; whenever a reference is
// present its proof of delivery is fetched as well. Gateway calls are made
// one after the other.
func (s *Service) Lookup(ctx context.Context, sub models.TrackingSubmission) models.ViewModel {
	vm := models.ViewModel{
		TrackingNumber: strings.TrimSpace(sub.TrackingNumber),
		OrderReference: strings.TrimSpace(sub.OrderReference),
		Mode:           models.LookupModeNone,
	}
	if !sub.SubmissionAttempted {
		return vm
	}

	switch {
	case vm.TrackingNumber != "":
		vm.Mode = models.LookupModeTrackingNumber
		if ValidTrackingNumber(vm.TrackingNumber) {
			vm.TrackingURL = TrackingBaseURL + vm.TrackingNumber
		} else {
			vm.ErrorMessage = msgInvalidFormat
		}
		if vm.OrderReference != "" {
			s.attachProofOfDelivery(ctx, &vm)
		}

	case vm.OrderReference != "":
		vm.Mode = models.LookupModeOrderReference
		resolved, err := s.gateway.ResolveReference(ctx, vm.OrderReference)
		switch {
		case err != nil:
			vm.ReferenceErrorMessage = carrier.UserMessage(err, msgReferenceFallback)
		case ValidTrackingNumber(resolved):
			vm.ResolvedTrackingNumber = resolved
			vm.TrackingNumber = resolved
			vm.TrackingURL = TrackingBaseURL + resolved
		case resolved != "":
			slog.Warn("provider returned malformed tracking number",
				"reference", vm.OrderReference, "tracking_number", resolved)
			vm.ReferenceErrorMessage = msgInvalidRetrieved
		}
		s.attachProofOfDelivery(ctx, &vm)

	default:
		vm.ErrorMessage = msgEmptySubmission
	}

	s.publish(ctx, vm)
	return vm
}

func (s *Service) attachProofOfDelivery(ctx context.Context, vm *models.ViewModel) {
	view, err := s.gateway.FetchProofOfDelivery(ctx, vm.OrderReference)
	if err != nil {
		vm.ProofOfDeliveryError = carrier.UserMessage(err, msgPODFallback)
		return
	}
	vm.ProofOfDelivery = view
}

func (s *Service) publish(ctx context.Context, vm models.ViewModel) {
	if s.producer == nil {
		return
	}
	msg := messages.LookupCompleted{
		EventID:              uuid.NewString(),
		OccurredAt:           time.Now().UTC(),
		Mode:                 vm.Mode,
		TrackingNumber:       vm.TrackingNumber,
		OrderReference:       vm.OrderReference,
		TrackingURL:          vm.TrackingURL,
		Resolved:             vm.ResolvedTrackingNumber != "",
		ProofOfDelivery:      vm.ProofOfDelivery != nil,
		Error:                vm.ErrorMessage,
		ReferenceError:       vm.ReferenceErrorMessage,
		ProofOfDeliveryError: vm.ProofOfDeliveryError,
	}
	b, err := json.Marshal(msg)
	if err != nil {
		slog.Warn("marshal lookup event", "error", errors.Wrap(err, "marshal").Error())
		return
	}

	key := vm.OrderReference
	if key == "" {
		key = vm.TrackingNumber
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.producer.Publish(pubCtx, s.topic, []byte(key), b); err != nil {
		slog.Warn("publish lookup event", "topic", s.topic, "error", err.Error())
	}
}
