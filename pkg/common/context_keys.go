package common

type contextKey string

const (
	RequestIDContextKey contextKey = "request_id"
	EndpointContextKey  contextKey = "endpoint"
)
