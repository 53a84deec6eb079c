package error

// GenericError lets the recovery middleware map domain errors to HTTP
// responses without importing every error type.
type GenericError interface {
	Error() string
	ErrCode() string
	StatusCode() int
}
