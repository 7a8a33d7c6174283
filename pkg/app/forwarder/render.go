package forwarder

import (
	"net/http"

	"github.com/kuokgroup/automation-bridge/pkg/domain/forwarding"
)

const (
	MsgInvalidJSON     = "Invalid JSON in request body"
	MsgMissingMessage  = "Please pass a message in the request body"
	MsgUnexpectedError = "An unexpected error occurred."
	msgCollapsedPrefix = "Error occurred during external API request: "
)

var granularPrefixes = map[forwarding.Kind]string{
	forwarding.BadStatus:        "HTTP Error: ",
	forwarding.ConnectionFailed: "Error Connecting: ",
	forwarding.Timeout:          "Timeout Error: ",
	forwarding.Transport:        "Request Error: ",
}

// Render maps a Forward error to the status code and plain-text body the
// caller receives. Unknown failures never expose their detail.
func (f *Forwarder) Render(err error) (int, string) {
	return Render(f.profile.ErrorMode, err)
}

func Render(mode ErrorMode, err error) (int, string) {
	fwdErr := forwarding.AsError(err)
	if fwdErr == nil {
		return http.StatusInternalServerError, MsgUnexpectedError
	}

	switch fwdErr.Kind {
	case forwarding.MissingField:
		return http.StatusBadRequest, MsgMissingMessage
	case forwarding.MalformedInput:
		if mode == GranularErrors {
			return http.StatusBadRequest, MsgInvalidJSON
		}
		return http.StatusInternalServerError, MsgUnexpectedError
	}

	if !fwdErr.Kind.Outbound() {
		return http.StatusInternalServerError, MsgUnexpectedError
	}
	if mode == CollapsedErrors {
		return http.StatusInternalServerError, msgCollapsedPrefix + fwdErr.Error()
	}
	return http.StatusInternalServerError, granularPrefixes[fwdErr.Kind] + fwdErr.Error()
}
