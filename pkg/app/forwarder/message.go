package forwarder

import (
	"fmt"

	"github.com/kuokgroup/automation-bridge/pkg/domain/forwarding"
	"github.com/valyala/fastjson"
)

const messageField = "Message"

// ParseMessage extracts the required Message string from an inbound JSON
// body. Bodies that are not JSON yield MalformedInput, JSON that is not an
// object yields Unknown, and an absent, empty or non-string Message yields
// MissingField.
func ParseMessage(body []byte) (string, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(body)
	if err != nil {
		return "", forwarding.NewError(forwarding.MalformedInput, fmt.Errorf("%w: %v", forwarding.ErrMalformedInput, err))
	}

	obj, err := v.Object()
	if err != nil {
		return "", forwarding.NewError(forwarding.Unknown, fmt.Errorf("request body is not a JSON object: %w", err))
	}

	field := obj.Get(messageField)
	if field == nil || field.Type() != fastjson.TypeString {
		return "", forwarding.NewError(forwarding.MissingField, forwarding.ErrMissingMessage)
	}
	message := string(field.GetStringBytes())
	if message == "" {
		return "", forwarding.NewError(forwarding.MissingField, forwarding.ErrMissingMessage)
	}
	return message, nil
}
