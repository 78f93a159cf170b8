package trackings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidTrackingNumber(t *testing.T) {
	for _, s := range []string{"A", "abc", "ABC123", "0000", "zZ9"} {
		require.True(t, ValidTrackingNumber(s), s)
	}
	for _, s := range []string{"", " ", "AB-123", "AB 123", "bad!number", "ÄBC", "abc\n", "１２３"} {
		require.False(t, ValidTrackingNumber(s), s)
	}
}
