package forwarding

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBadStatusError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   string
	}{
		{"client error", 404, "404 Client Error: Not Found for url: https://example.test/x"},
		{"server error", 503, "503 Server Error: Service Unavailable for url: https://example.test/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewBadStatusError(tt.status, "https://example.test/x")
			assert.Equal(t, BadStatus, err.Kind)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("forward: %w", NewError(Timeout, errors.New("deadline")))
	assert.Equal(t, Timeout, KindOf(wrapped))
	assert.Equal(t, Unknown, KindOf(errors.New("plain")))
	assert.Equal(t, Unknown, KindOf(nil))
}

func TestAsError(t *testing.T) {
	assert.Nil(t, AsError(nil))

	plain := errors.New("boom")
	converted := AsError(plain)
	assert.Equal(t, Unknown, converted.Kind)
	assert.Empty(t, converted.Detail)
	assert.ErrorIs(t, converted, plain)

	original := NewError(ConnectionFailed, errors.New("refused"))
	assert.Same(t, original, AsError(original))
	assert.Equal(t, "refused", original.Error())
}

func TestKind_Outbound(t *testing.T) {
	for _, k := range []Kind{BadStatus, ConnectionFailed, Timeout, Transport} {
		assert.True(t, k.Outbound(), k.String())
	}
	for _, k := range []Kind{Unknown, MalformedInput, MissingField} {
		assert.False(t, k.Outbound(), k.String())
	}
}
