package maxoptra

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BearBump/TrackLink/internal/integrations/carrier"
	"github.com/BearBump/TrackLink/internal/models"
	"github.com/BearBump/TrackLink/internal/payload"
	"github.com/BearBump/TrackLink/internal/pod"
	"github.com/pkg/errors"
)

const (
	DefaultBaseURL = "https://silverlake.maxoptra.com"

	requestTimeout = 10 * time.Second
	bodyPreviewLen = 200
	maxBodyBytes   = 4 << 20
)

type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	log     *slog.Logger
	maxBody int64
}

var _ carrier.Gateway = (*Client)(nil)

// New builds a client for a Maxoptra tenant, e.g. https://account.maxoptra.com.
// Empty baseURL or apiKey is reported per call as a configuration error.
func New(baseURL, apiKey string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  apiKey,
		httpc: &http.Client{
			Timeout: requestTimeout,
		},
		log:     log,
		maxBody: maxBodyBytes,
	}
}

func (c *Client) ResolveReference(ctx context.Context, orderReference string) (string, error) {
	v, err := c.get(ctx, widgetEndpoint, orderReference)
	if err != nil {
		return "", err
	}
	tn, ok := ExtractTrackingNumber(v)
	if !ok {
		return "", &carrier.LookupError{Kind: carrier.ErrKindNoData, Message: widgetEndpoint.noData}
	}
	return tn, nil
}

func (c *Client) FetchProofOfDelivery(ctx context.Context, orderReference string) (*models.ProofOfDelivery, error) {
	v, err := c.get(ctx, podEndpoint, orderReference)
	if err != nil {
		return nil, err
	}
	view, ok := pod.Build(v)
	if !ok {
		return nil, &carrier.LookupError{Kind: carrier.ErrKindNoData, Message: podEndpoint.noData}
	}
	return view, nil
}

func (c *Client) get(ctx context.Context, ep endpoint, orderReference string) (payload.Value, error) {
	if c.apiKey == "" {
		return nil, &carrier.LookupError{Kind: carrier.ErrKindNotConfigured, Message: ep.missingKey}
	}
	if c.baseURL == "" {
		return nil, &carrier.LookupError{Kind: carrier.ErrKindNotConfigured, Message: ep.missingBase}
	}

	u := fmt.Sprintf("%s/api/v6/orders/%s/%s", c.baseURL, escapeSegment(orderReference), ep.path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, c.transportError(ep, orderReference, errors.Wrap(err, "new request"))
	}
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, c.transportError(ep, orderReference, errors.Wrap(err, "do request"))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, c.transportError(ep, orderReference, errors.Wrap(err, "read body"))
	}
	if int64(len(body)) > c.maxBody {
		c.log.Warn("maxoptra response body too large",
			"endpoint", ep.path,
			"reference", orderReference,
			"status", resp.StatusCode,
			"limit_bytes", c.maxBody,
		)
		return nil, &carrier.LookupError{
			Kind:       carrier.ErrKindInvalidPayload,
			StatusCode: resp.StatusCode,
			Message:    ep.invalid,
			Err:        errors.Errorf("response body exceeds %d bytes", c.maxBody),
		}
	}

	if resp.StatusCode/100 != 2 {
		c.log.Warn("maxoptra returned non-success status",
			"endpoint", ep.path,
			"reference", orderReference,
			"status", resp.StatusCode,
			"body", bodyPreview(body),
		)
		return nil, statusError(ep, resp.StatusCode)
	}

	v, err := payload.Parse(body)
	if err != nil {
		return nil, &carrier.LookupError{
			Kind:       carrier.ErrKindInvalidPayload,
			StatusCode: resp.StatusCode,
			Message:    ep.invalid,
			Err:        err,
		}
	}
	return v, nil
}

func (c *Client) transportError(ep endpoint, orderReference string, err error) error {
	cause := errors.Cause(err)
	c.log.Warn("maxoptra request failed",
		"endpoint", ep.path,
		"reference", orderReference,
		"error", cause.Error(),
	)
	return &carrier.LookupError{
		Kind:    carrier.ErrKindTransport,
		Message: fmt.Sprintf(ep.transport, cause.Error()),
		Err:     err,
	}
}

func statusError(ep endpoint, status int) error {
	le := &carrier.LookupError{StatusCode: status}
	switch {
	case status == http.StatusNotFound:
		le.Kind, le.Message = carrier.ErrKindNotFound, ep.notFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		le.Kind, le.Message = carrier.ErrKindRejected, ep.rejected(status)
	case status >= 500:
		le.Kind, le.Message = carrier.ErrKindUnavailable, ep.unavailable
	default:
		le.Kind, le.Message = carrier.ErrKindUnexpectedStatus, ep.unexpected
	}
	return le
}

// escapeSegment percent-encodes everything but unreserved characters
// (A-Z a-z 0-9 - _ . ~), so ":", "@", "+" and friends never reach the path raw.
func escapeSegment(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func bodyPreview(body []byte) string {
	s := string(body)
	if utf8.RuneCountInString(s) <= bodyPreviewLen {
		return s
	}
	return string([]rune(s)[:bodyPreviewLen])
}
