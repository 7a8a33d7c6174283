package forwarder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kuokgroup/automation-bridge/pkg/domain/forwarding"
	"github.com/kuokgroup/automation-bridge/pkg/infra/httpx"
	"github.com/kuokgroup/automation-bridge/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"
)

const (
	summaryPrefix   = "Hello. External API response: "
	jsonContentType = "application/json"
	textContentType = "text/plain; charset=utf-8"
)

// Response is what the caller receives when the outbound call succeeded.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Forwarder turns one inbound request into exactly one outbound request.
type Forwarder struct {
	profile Profile
	client  httpx.Client
	logger  *logrus.Logger
}

func New(profile Profile, client httpx.Client, logger *logrus.Logger) *Forwarder {
	return &Forwarder{
		profile: profile,
		client:  client,
		logger:  logger,
	}
}

func (f *Forwarder) Profile() Profile {
	return f.profile
}

// Forward validates body, performs the outbound call and builds the caller
// response. Every returned error is a *forwarding.Error.
func (f *Forwarder) Forward(ctx context.Context, body []byte) (*Response, error) {
	var message string
	if f.profile.RequireMessage {
		m, err := ParseMessage(body)
		if err != nil {
			return nil, err
		}
		message = m
	}

	req, err := f.buildRequest(ctx, message)
	if err != nil {
		return nil, forwarding.AsError(err)
	}

	raw, err := f.do(req)
	if err != nil {
		return nil, err
	}

	return f.envelope(raw)
}

func (f *Forwarder) buildRequest(ctx context.Context, message string) (*http.Request, error) {
	var payload io.Reader
	if f.profile.Body != nil {
		data, err := f.profile.Body(message)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s payload: %w", f.profile.Name, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, f.profile.Method, f.profile.URL, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", f.profile.Name, err)
	}
	req.Header = f.profile.Header.Clone()
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	return req, nil
}

func (f *Forwarder) do(req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := f.client.Do(req)
	prometheus.OutboundLatency.WithLabelValues(f.profile.Target).Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		return nil, f.record(httpx.ClassifyError(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, f.record(httpx.ClassifyError(fmt.Errorf("failed to read response body: %w", err)))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		f.logger.WithFields(logrus.Fields{
			"endpoint": f.profile.Name,
			"status":   resp.StatusCode,
		}).Debug("outbound call returned a failure status")
		return nil, f.record(forwarding.NewBadStatusError(resp.StatusCode, f.profile.URL))
	}

	f.record(nil)
	return raw, nil
}

func (f *Forwarder) record(err *forwarding.Error) error {
	outcome := "ok"
	if err != nil {
		outcome = err.Kind.String()
	}
	prometheus.OutboundRequestTotal.WithLabelValues(f.profile.Target, outcome).Inc()
	if err == nil {
		return nil
	}
	return err
}

func (f *Forwarder) envelope(raw []byte) (*Response, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(raw)
	if err != nil {
		// an unreadable outbound body is an outbound failure, never a
		// caller input error, so it maps to 5xx on every endpoint
		return nil, forwarding.NewError(forwarding.Transport, fmt.Errorf("invalid JSON in response body: %w", err))
	}

	switch f.profile.Envelope {
	case TextSummary:
		summary := append([]byte(summaryPrefix), v.MarshalTo(nil)...)
		return &Response{StatusCode: http.StatusOK, ContentType: textContentType, Body: summary}, nil
	default:
		return &Response{StatusCode: http.StatusOK, ContentType: jsonContentType, Body: raw}, nil
	}
}
