package httpx

import (
	"errors"
	"net"
	"os"
	"syscall"

	"github.com/kuokgroup/automation-bridge/pkg/domain/forwarding"
	"github.com/valyala/fasthttp"
)

// ClassifyError maps an error returned by Client.Do onto the forwarding
// taxonomy. Errors that are neither timeouts nor connection failures are
// reported as generic transport errors.
func ClassifyError(err error) *forwarding.Error {
	if err == nil {
		return nil
	}
	var fwdErr *forwarding.Error
	if errors.As(err, &fwdErr) {
		return fwdErr
	}
	if isTimeout(err) {
		return forwarding.NewError(forwarding.Timeout, err)
	}
	if isConnectionFailure(err) {
		return forwarding.NewError(forwarding.ConnectionFailed, err)
	}
	return forwarding.NewError(forwarding.Transport, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, fasthttp.ErrTimeout) ||
		errors.Is(err, fasthttp.ErrDialTimeout) ||
		errors.Is(err, fasthttp.ErrTLSHandshakeTimeout) ||
		errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnectionFailure(err error) bool {
	if errors.Is(err, fasthttp.ErrConnectionClosed) ||
		errors.Is(err, fasthttp.ErrNoFreeConns) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
