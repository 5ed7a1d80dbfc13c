// Package store holds client-side request state for server resources.
//
// Each container mirrors one server resource: it records whether a request
// is idle, loading, succeeded or failed, keeps the last error message, and
// applies successful responses to its items (replace, append, update in
// place, remove). Containers are safe for concurrent use; when requests
// overlap, only the response to the most recently issued request is
// applied and older responses are dropped.
package store
