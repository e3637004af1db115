package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarkerString(t *testing.T) {
	require.Equal(t, "nil", Nil.String())
	require.Equal(t, "true", True.String())
	require.Equal(t, "false", False.String())
	require.Equal(t, "float64", Float64.String())
	require.Equal(t, "fixstr", Marker(0xa5).String())
	require.Equal(t, "positive fixint", Marker(0x10).String())
	require.Equal(t, "negative fixint", Marker(0xff).String())
	require.Equal(t, "unknown", Marker(0xc1).String())
}

func TestFixRangeHelpers(t *testing.T) {
	require.True(t, IsPositiveFixInt(0x00))
	require.True(t, IsPositiveFixInt(0x7f))
	require.False(t, IsPositiveFixInt(0x80))

	require.True(t, IsNegativeFixInt(0xe0))
	require.True(t, IsNegativeFixInt(0xff))
	require.False(t, IsNegativeFixInt(0xdf))

	require.True(t, IsFixMap(0x80))
	require.True(t, IsFixMap(0x8f))
	require.False(t, IsFixMap(0x90))

	require.True(t, IsFixArray(0x90))
	require.True(t, IsFixArray(0x9f))

	require.True(t, IsFixStr(0xa0))
	require.True(t, IsFixStr(0xbf))
	require.False(t, IsFixStr(0xc0))
}
