package numberutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cents, err := ParseAmount("0.54")
	require.NoError(t, err)
	require.Equal(t, int64(54), cents)

	cents, err = ParseAmount("12")
	require.NoError(t, err)
	require.Equal(t, int64(1200), cents)

	cents, err = ParseAmount("0")
	require.NoError(t, err)
	require.Equal(t, int64(0), cents)

	_, err = ParseAmount("-0.10")
	require.Error(t, err)

	_, err = ParseAmount("0.005")
	require.Error(t, err)

	_, err = ParseAmount("abc")
	require.Error(t, err)
}

func TestFormatCents(t *testing.T) {
	require.Equal(t, "0.54", FormatCents(54))
	require.Equal(t, "0.00", FormatCents(0))
	require.Equal(t, "1.46", FormatCents(146))
	require.Equal(t, "12.00", FormatCents(1200))
}
