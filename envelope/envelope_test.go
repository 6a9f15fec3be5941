package envelope

import (
	"testing"

	"github.com/kordwire/msgpack/codec"
	"github.com/kordwire/msgpack/errs"
	"github.com/kordwire/msgpack/format"
	"github.com/stretchr/testify/require"
)

func encodeGreeting(t *testing.T) []byte {
	t.Helper()
	e := codec.NewEncoder()
	require.NoError(t, e.StartMap())
	require.NoError(t, e.PackString("hello"))
	require.NoError(t, e.PackString("world"))
	require.NoError(t, e.EndMap())

	return append([]byte(nil), e.Bytes()...)
}

func TestWrapUnwrapRoundTrip(t *testing.T) {
	payload := encodeGreeting(t)

	framed, err := Wrap(payload)
	require.NoError(t, err)
	require.Len(t, framed, HeaderSize+len(payload))

	got, err := Unwrap(framed)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestWrapUnwrapWithCompression(t *testing.T) {
	for _, c := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		payload := encodeGreeting(t)

		framed, err := Wrap(payload, WithCompression(c))
		require.NoError(t, err)

		h, err := ParseHeader(framed)
		require.NoError(t, err)
		require.Equal(t, c, h.Compression)

		got, err := Unwrap(framed)
		require.NoError(t, err)
		require.Equal(t, payload, got)
	}
}

func TestParseHeaderRecordsEndianness(t *testing.T) {
	payload := encodeGreeting(t)

	framed, err := Wrap(payload)
	require.NoError(t, err)
	h, err := ParseHeader(framed)
	require.NoError(t, err)
	require.True(t, h.IsBigEndian())

	framed, err = Wrap(payload, WithLocalEndianPayload())
	require.NoError(t, err)
	h, err = ParseHeader(framed)
	require.NoError(t, err)
	require.False(t, h.IsBigEndian())
}

func TestUnwrapBadMagic(t *testing.T) {
	framed, err := Wrap(encodeGreeting(t))
	require.NoError(t, err)
	framed[0] ^= 0xff

	_, err = Unwrap(framed)
	require.ErrorIs(t, err, errs.ErrBadMagic)
}

func TestUnwrapTruncatedHeader(t *testing.T) {
	_, err := Unwrap([]byte{0x01, 0x02})
	require.ErrorIs(t, err, errs.ErrTruncatedHeader)
}

func TestUnwrapTruncatedPayload(t *testing.T) {
	framed, err := Wrap(encodeGreeting(t))
	require.NoError(t, err)

	_, err = Unwrap(framed[:len(framed)-1])
	require.ErrorIs(t, err, errs.ErrTruncatedPayload)
}

func TestUnwrapChecksumMismatch(t *testing.T) {
	framed, err := Wrap(encodeGreeting(t))
	require.NoError(t, err)
	framed[len(framed)-1] ^= 0xff

	_, err = Unwrap(framed)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestHeaderBytesRoundTrip(t *testing.T) {
	h := Header{
		Flags:       bigEndianFlag,
		Compression: format.CompressionLZ4,
		PayloadLen:  42,
		Checksum:    0xdeadbeefcafef00d,
	}

	parsed, err := ParseHeader(h.Bytes())
	require.NoError(t, err)
	require.Equal(t, h, parsed)
}
