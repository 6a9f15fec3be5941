package format

import "testing"

func TestCompressionTypeString(t *testing.T) {
	cases := []struct {
		c    CompressionType
		want string
	}{
		{CompressionNone, "None"},
		{CompressionZstd, "Zstd"},
		{CompressionS2, "S2"},
		{CompressionLZ4, "LZ4"},
		{CompressionType(0xff), "Unknown"},
	}

	for _, c := range cases {
		if got := c.c.String(); got != c.want {
			t.Errorf("CompressionType(%d).String() = %q, want %q", c.c, got, c.want)
		}
	}
}
