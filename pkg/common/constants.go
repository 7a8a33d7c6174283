package common

const (
	RequestIDHeader = "X-Request-Id"

	// FunctionsPrefix is the route prefix the functions host mounts
	// endpoints under; every endpoint is served with and without it.
	FunctionsPrefix = "/api"
)
