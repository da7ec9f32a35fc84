package models

// ErrorKind classifies a failed request for API clients.
type ErrorKind string

const (
	KindBadRequest    ErrorKind = "bad_request"
	KindUnauthorized  ErrorKind = "unauthorized"
	KindNotFound      ErrorKind = "not_found"
	KindConflict      ErrorKind = "conflict"
	KindInternalError ErrorKind = "internal_error"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: User not signed in
	Error string `json:"error"`

	// Error kind
	// example: unauthorized
	Kind ErrorKind `json:"kind"`
}

// MessageResponse is the body of a successful state-changing request
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// example: Bookmark added successfully!
	Message string `json:"message"`
}
