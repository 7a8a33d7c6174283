package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write(data)
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func brCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	br := brotli.NewWriter(&buf)
	_, err := br.Write(data)
	require.NoError(t, err)
	require.NoError(t, br.Close())
	return buf.Bytes()
}

func zstdCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func zlibCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func rawDeflateCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	dw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	require.NoError(t, err)
	_, err = dw.Write(data)
	require.NoError(t, err)
	require.NoError(t, dw.Close())
	return buf.Bytes()
}

func TestDecodeChain(t *testing.T) {
	plain := []byte(`{"value":[{"DisplayName":"Shared"}]}`)

	tests := []struct {
		name     string
		encoding string
		body     []byte
		changed  bool
	}{
		{name: "no encoding", encoding: "", body: plain, changed: false},
		{name: "identity and compress", encoding: "identity, compress", body: plain, changed: false},
		{name: "gzip", encoding: "gzip", body: gzipCompress(t, plain), changed: true},
		{name: "x-gzip alias", encoding: "x-gzip", body: gzipCompress(t, plain), changed: true},
		{name: "brotli", encoding: "br", body: brCompress(t, plain), changed: true},
		{name: "zstd", encoding: "zstd", body: zstdCompress(t, plain), changed: true},
		{name: "deflate zlib wrapped", encoding: "deflate", body: zlibCompress(t, plain), changed: true},
		{name: "deflate raw", encoding: "deflate", body: rawDeflateCompress(t, plain), changed: true},
		{name: "case and whitespace", encoding: "  GZip  ", body: gzipCompress(t, plain), changed: true},
		{name: "chained gzip then br", encoding: "gzip, br", body: brCompress(t, gzipCompress(t, plain)), changed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, changed, err := DecodeChain(tt.encoding, tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, plain, decoded)
		})
	}
}

func TestDecodeChain_UnsupportedEncoding(t *testing.T) {
	_, _, err := DecodeChain("foo", []byte("abc"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content-encoding")
}

func TestDecodeChain_CorruptBody(t *testing.T) {
	_, _, err := DecodeChain("gzip", []byte("not gzip at all"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode gzip body")
}
