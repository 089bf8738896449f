package event

// Error carrying a numeric code, the location it was raised at, its stack and an optional cause
type Exception struct {
	message string
	code    int
	file    string
	line    int
	trace   []StackFrame
	cause   error
}

// Creates an exception located at the caller
func NewException(message string, code int) (exc *Exception) {
	exc = newException(message, code, nil)
	return
}

// Creates an exception located at the caller that wraps cause
func WrapException(cause error, message string, code int) (exc *Exception) {
	exc = newException(message, code, cause)
	return
}

func newException(message string, code int, cause error) (exc *Exception) {
	exc = &Exception{
		message: message,
		code:    code,
		trace:   CaptureBacktrace(),
		cause:   cause,
	}
	if len(exc.trace) > 0 {
		exc.file = exc.trace[0].File
		exc.line = exc.trace[0].Line
	}
	return
}

func (exc *Exception) Error() string {
	if exc.cause == nil {
		return exc.message
	}
	return exc.message + ": " + exc.cause.Error()
}

func (exc *Exception) Unwrap() error {
	return exc.cause
}

func (exc *Exception) Code() int {
	return exc.code
}

func (exc *Exception) Location() (file string, line int) {
	return exc.file, exc.line
}

func (exc *Exception) StackTrace() []StackFrame {
	return exc.trace
}
