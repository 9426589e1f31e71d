package errors

// ErrorCode is a machine-readable code attached to every AppError.
type ErrorCode int

const (
	ErrorCode_HTTP_OK          ErrorCode = 200
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1002
	ErrorCode_NOT_FOUND        ErrorCode = 1003
	ErrorCode_INTERNAL         ErrorCode = 1500
)

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "OK"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_INVALID_PAYLOAD:
		return "INVALID_PAYLOAD"
	case ErrorCode_NOT_FOUND:
		return "NOT_FOUND"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}
