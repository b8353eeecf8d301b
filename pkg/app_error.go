package pkg

// AppError is the error envelope returned by HTTP handlers. Code is a stable
// machine-readable identifier; Message is safe to show to API clients. Err
// keeps the underlying cause for logs and is never serialized.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Fields     []HTTPFieldError
}

type HTTPError struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Fields  []HTTPFieldError `json:"fields,omitempty"`
}

// HTTPFieldError surfaces a single-field input violation.
type HTTPFieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewValidationError(code, message string, fields []HTTPFieldError, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Fields: fields, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Fields: e.Fields}
}
