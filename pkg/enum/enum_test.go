package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("create a enum of string", func(t *testing.T) {
		type EnumString string

		bar := New(EnumString("bar"))
		require.Equal(t, bar, EnumString("bar"))

		v, err := ToEnum[EnumString]("bar")
		require.NoError(t, err)
		require.Equal(t, v, bar)

		_, err = ToEnum[EnumString]("foo")
		require.Error(t, err)

		require.Equal(t, ToString(bar), "bar")
		require.Equal(t, ToString(EnumString("foo")), "")
	})

	t.Run("create a enum of int", func(t *testing.T) {
		type EnumInt int

		bar := New(EnumInt(100))
		require.Equal(t, bar, EnumInt(100))

		v, err := ToEnum[EnumInt]("100")
		require.NoError(t, err)
		require.Equal(t, v, bar)

		_, err = ToEnum[EnumInt]("200")
		require.Error(t, err)

		require.Equal(t, ToString(bar), "100")
		require.Equal(t, ToString(EnumInt(200)), "")
	})
}
