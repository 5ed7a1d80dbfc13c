// Package api is the HTTP client for the storefront REST backend.
//
// Every request carries the bearer token (when configured), an X-Request-ID
// generated per call, and the X-Trace-ID of the calling context so server
// logs can be correlated with client logs. Non-2xx responses are returned
// as *APIError; 401 and 404 additionally match ErrUnauthorized and
// ErrNotFound via errors.Is.
//
// The backend is not uniform about response shapes: product listings use
// the {message, data, total} envelope, while cart, roles, checkout and
// wishlist responses wrap their payload under resource-specific keys. Each
// resource file decodes the shape its endpoints return.
package api
