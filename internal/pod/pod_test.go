package pod

import (
	"strings"
	"testing"

	"github.com/BearBump/TrackLink/internal/models"
	"github.com/BearBump/TrackLink/internal/payload"
	"github.com/stretchr/testify/require"
)

var longBase64 = strings.Repeat("iVBORw0K", 18) + "Gg==" // 148 chars

func parse(t *testing.T, s string) payload.Value {
	t.Helper()
	v, err := payload.Parse([]byte(s))
	require.NoError(t, err)
	return v
}

func TestCoerceDataURI(t *testing.T) {
	got, ok := CoerceDataURI("data:image/png;base64,AAAA")
	require.True(t, ok)
	require.Equal(t, "data:image/png;base64,AAAA", got)

	_, ok = CoerceDataURI("short")
	require.False(t, ok)

	_, ok = CoerceDataURI("   \n\t ")
	require.False(t, ok)

	s150 := strings.Repeat("A", 149) + "="
	got, ok = CoerceDataURI(s150)
	require.True(t, ok)
	require.Equal(t, "data:image/png;base64,"+s150, got)
}

func TestCoerceDataURI_StripsWhitespace(t *testing.T) {
	wrapped := longBase64[:60] + "\n  " + longBase64[60:] + "\r\n"
	got, ok := CoerceDataURI(wrapped)
	require.True(t, ok)
	require.Equal(t, "data:image/png;base64,"+longBase64, got)
}

func TestCoerceDataURI_Threshold(t *testing.T) {
	_, ok := CoerceDataURI(strings.Repeat("A", 100))
	require.False(t, ok)
	_, ok = CoerceDataURI(strings.Repeat("A", 101))
	require.True(t, ok)
	_, ok = CoerceDataURI(strings.Repeat("A", 150) + "!")
	require.False(t, ok)
	_, ok = CoerceDataURI(strings.Repeat("ab-", 60))
	require.False(t, ok)
}

func TestFormatLabel(t *testing.T) {
	require.Equal(t, "Delivery notes", FormatLabel("delivery_notes"))
	require.Equal(t, "Driver name", FormatLabel("driver--name"))
	require.Equal(t, "Mixed  separators", FormatLabel("mixed__-_ separators"))
	require.Equal(t, "OrderRef", FormatLabel("orderRef"))
	require.Equal(t, "Trailing", FormatLabel("_trailing_"))
	require.Equal(t, "Élan", FormatLabel("élan"))
	require.Equal(t, "__", FormatLabel("__"))
}

func TestBuild_NotAMapping(t *testing.T) {
	for _, in := range []string{`[]`, `"x"`, `null`, `[{"status":"ok"}]`} {
		_, ok := Build(parse(t, in))
		require.False(t, ok, in)
	}
}

func TestBuild_Empty(t *testing.T) {
	_, ok := Build(parse(t, `{}`))
	require.False(t, ok)
	_, ok = Build(parse(t, `{"signature": null, "flag": true, "nested": {"a": 1}}`))
	require.False(t, ok)
}

func TestBuild_SignatureURL(t *testing.T) {
	raw := parse(t, `{
		"pod": {
			"signatureUrl": "HTTPS://cdn.example.com/sig.png",
			"signature": "`+longBase64+`",
			"recipientName": "Jane Doe",
			"completedAt": "2025-01-02T10:00:00Z",
			"status": "Delivered"
		},
		"ignored": "outside pod"
	}`)
	got, ok := Build(raw)
	require.True(t, ok)
	require.Equal(t, "HTTPS://cdn.example.com/sig.png", got.SignatureURL)
	require.Empty(t, got.SignatureImage)
	require.Equal(t, "Jane Doe", got.SignedBy)
	require.Equal(t, "2025-01-02T10:00:00Z", got.SignedAt)
	require.Equal(t, "Delivered", got.Status)
	require.Equal(t, []models.Detail{
		{Label: "Signed by", Value: "Jane Doe"},
		{Label: "Signed at", Value: "2025-01-02T10:00:00Z"},
		{Label: "Status", Value: "Delivered"},
		{Label: "RecipientName", Value: "Jane Doe"},
		{Label: "CompletedAt", Value: "2025-01-02T10:00:00Z"},
	}, got.Details)
	require.Equal(t, raw, got.Raw)
}

func TestBuild_SignatureRefIsInlineImage(t *testing.T) {
	got, ok := Build(parse(t, `{"signature_link": "`+longBase64+`"}`))
	require.True(t, ok)
	require.Empty(t, got.SignatureURL)
	require.Equal(t, "data:image/png;base64,"+longBase64, got.SignatureImage)
	require.Empty(t, got.Details)
}

func TestBuild_SignatureRefNotURLFallsBackToImageKeys(t *testing.T) {
	got, ok := Build(parse(t, `{"signatureUrl": "/relative/sig.png", "signatureData": "plain-text-signature"}`))
	require.True(t, ok)
	require.Empty(t, got.SignatureURL)
	require.Equal(t, "plain-text-signature", got.SignatureImage)
	require.Empty(t, got.Details)
}

func TestBuild_ImageFromNestedKey(t *testing.T) {
	got, ok := Build(parse(t, `{"files": [{"proof_image": "data:image/jpeg;base64,/9j/"}], "orderId": 42}`))
	require.True(t, ok)
	require.Equal(t, "data:image/jpeg;base64,/9j/", got.SignatureImage)
	require.Equal(t, []models.Detail{{Label: "OrderId", Value: "42"}}, got.Details)
}

func TestBuild_DetailsOrderingAndDedup(t *testing.T) {
	got, ok := Build(parse(t, `{
		"status": "COMPLETED",
		"driver_name": "Bob",
		"driver-name": "Robert",
		"weight_kg": 12.5,
		"stops": 3,
		"notes": "",
		"paid": true,
		"extra": null,
		"items": [1, 2],
		"signature_image": "abc",
		"Signature-Link": "x"
	}`))
	require.True(t, ok)
	require.Equal(t, "abc", got.SignatureImage)
	require.Equal(t, []models.Detail{
		{Label: "Status", Value: "COMPLETED"},
		{Label: "Driver name", Value: "Bob"},
		{Label: "Weight kg", Value: "12.5"},
		{Label: "Stops", Value: "3"},
		{Label: "Notes", Value: ""},
	}, got.Details)
}

func TestBuild_PodKeyNotAMappingUsesRoot(t *testing.T) {
	got, ok := Build(parse(t, `{"pod": "n/a", "receiver": "Front desk"}`))
	require.True(t, ok)
	require.Equal(t, "Front desk", got.SignedBy)
	require.Equal(t, []models.Detail{
		{Label: "Signed by", Value: "Front desk"},
		{Label: "Pod", Value: "n/a"},
		{Label: "Receiver", Value: "Front desk"},
	}, got.Details)
}

func TestBuild_DetailLabelsUnique(t *testing.T) {
	got, ok := Build(parse(t, `{"Status": "A", "status": "B", "signed_by": "C", "Signed by": "D"}`))
	require.True(t, ok)
	seen := map[string]bool{}
	for _, d := range got.Details {
		require.False(t, seen[d.Label], d.Label)
		seen[d.Label] = true
	}
	require.Equal(t, "A", got.Status)
	require.Equal(t, "C", got.SignedBy)
}
