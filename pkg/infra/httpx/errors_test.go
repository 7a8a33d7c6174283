package httpx

import (
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/kuokgroup/automation-bridge/pkg/domain/forwarding"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want forwarding.Kind
	}{
		{"fasthttp timeout", fasthttp.ErrTimeout, forwarding.Timeout},
		{"dial timeout", fasthttp.ErrDialTimeout, forwarding.Timeout},
		{"wrapped timeout", fmt.Errorf("outbound: %w", fasthttp.ErrTimeout), forwarding.Timeout},
		{"connection closed", fasthttp.ErrConnectionClosed, forwarding.ConnectionFailed},
		{"refused", &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}, forwarding.ConnectionFailed},
		{"dns", &net.DNSError{Err: "no such host", Name: "cloud.invalid"}, forwarding.ConnectionFailed},
		{"other", errors.New("unsupported protocol scheme"), forwarding.Transport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyError(tt.err)
			assert.Equal(t, tt.want, got.Kind)
			assert.Equal(t, tt.err.Error(), got.Detail)
		})
	}
}

func TestClassifyError_KeepsExistingClassification(t *testing.T) {
	bad := forwarding.NewBadStatusError(500, "http://upstream")
	assert.Same(t, bad, ClassifyError(bad))
	assert.Nil(t, ClassifyError(nil))
}
