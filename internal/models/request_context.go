package models

// Principal identifies an authenticated user attached to a request.
// Only identifier and display name are carried, never credentials.
type Principal struct {
	ID          string
	DisplayName string
}

// RequestContext carries the request metadata attached to an error event.
// Headers, body and query secrets are intentionally never captured.
type RequestContext struct {
	Method string
	URL    string
	User   *Principal
}
