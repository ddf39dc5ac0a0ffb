package errors

import "net/http"

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
)

// Kind separates failures the caller can act on from failures of the service
// itself.
type Kind int

const (
	// KindNone is the kind of CodeOK
	KindNone Kind = iota
	// KindUser covers bad input, not-found-for-this-caller, permission and quota failures
	KindUser
	// KindServer covers infrastructure, catalog and internal invariant failures
	KindServer
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindServer:
		return "server"
	default:
		return "none"
	}
}

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Kind returns whether the code is a user or a server failure
func (c Code) Kind() Kind {
	switch c {
	case CodeOK:
		return KindNone
	case CodeCanceled,
		CodeInvalidArgument,
		CodeNotFound,
		CodeAlreadyExists,
		CodePermissionDenied,
		CodeResourceExhausted,
		CodeFailedPrecondition,
		CodeAborted,
		CodeOutOfRange,
		CodeUnauthenticated:
		return KindUser
	default:
		return KindServer
	}
}

// HTTPStatus returns the corresponding HTTP status code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeCanceled:
		return http.StatusRequestTimeout
	case CodeInvalidArgument, CodeOutOfRange:
		return http.StatusBadRequest
	case CodeDeadlineExceeded:
		return http.StatusGatewayTimeout
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists, CodeAborted:
		return http.StatusConflict
	case CodePermissionDenied:
		return http.StatusForbidden
	case CodeResourceExhausted:
		return http.StatusTooManyRequests
	case CodeFailedPrecondition:
		return http.StatusPreconditionFailed
	case CodeUnimplemented:
		return http.StatusNotImplemented
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
