package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksumIsDeterministic(t *testing.T) {
	data := []byte("a framed payload")
	require.Equal(t, Checksum(data), Checksum(append([]byte(nil), data...)))
}

func TestChecksumDiffersOnCorruption(t *testing.T) {
	data := []byte("a framed payload")
	corrupted := append([]byte(nil), data...)
	corrupted[0] ^= 0xff

	require.NotEqual(t, Checksum(data), Checksum(corrupted))
}

func TestChecksumEmpty(t *testing.T) {
	require.Equal(t, Checksum(nil), Checksum([]byte{}))
}
