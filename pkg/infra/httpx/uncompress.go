package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

type decodeFunc func(body []byte) ([]byte, error)

var decoders = map[string]decodeFunc{
	"br":      decodeBrotli,
	"gzip":    decodeGzip,
	"x-gzip":  decodeGzip,
	"zstd":    decodeZstd,
	"deflate": decodeDeflate,
}

// DecodeChain undoes the encodings listed in a Content-Encoding value, last
// applied first, so "gzip, br" is decoded as brotli then gzip. It reports
// whether the body was changed.
func DecodeChain(contentEncoding string, body []byte) ([]byte, bool, error) {
	if strings.TrimSpace(contentEncoding) == "" {
		return body, false, nil
	}
	encodings := strings.Split(contentEncoding, ",")
	changed := false
	for i := len(encodings) - 1; i >= 0; i-- {
		enc := strings.TrimSpace(strings.ToLower(encodings[i]))
		switch enc {
		case "", "identity", "compress":
			continue
		}
		decode, ok := decoders[enc]
		if !ok {
			return nil, false, fmt.Errorf("unsupported content-encoding: %q", encodings[i])
		}
		out, err := decode(body)
		if err != nil {
			return nil, false, fmt.Errorf("decode %s body: %w", enc, err)
		}
		body = out
		changed = true
	}
	return body, changed, nil
}

func decodeBrotli(body []byte) ([]byte, error) {
	return io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
}

func decodeGzip(body []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return readAndClose(gr)
}

func decodeZstd(body []byte) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return io.ReadAll(dec)
}

// decodeDeflate accepts both the zlib-wrapped form and raw DEFLATE.
func decodeDeflate(body []byte) ([]byte, error) {
	if zr, err := zlib.NewReader(bytes.NewReader(body)); err == nil {
		return readAndClose(zr)
	}
	return readAndClose(flate.NewReader(bytes.NewReader(body)))
}

func readAndClose(rc io.ReadCloser) ([]byte, error) {
	out, err := io.ReadAll(rc)
	cerr := rc.Close()
	if err != nil {
		return nil, err
	}
	if cerr != nil {
		return nil, cerr
	}
	return out, nil
}
