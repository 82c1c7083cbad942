package codecerr

import (
	uuid "github.com/satori/go.uuid"
	"golang.org/x/xerrors"
	"runtime/debug"
	"strconv"
)

/*
Used to define a type of error the byte transcoding layer can return. Think of
DecodeErrorType as defining a TYPE of error that CAN be raised while a binary
field's wire representation is being validated and decoded.

Each DecodeErrorType has a unique Name and Code.

Codes 2000-2999 are reserved for bytejson's default error definitions.

Since types are declared as pointers, to protect against accidental mutation of
the error type by other packages, the underlying fields of this struct are
private and accessed through functions. Define new error types using
NewDecodeErrorType()
*/
type DecodeErrorType struct {
	// Unique human-readable name of the error type.
	name string

	// Unique number to identify the error type.
	code int
}

// Returns a new decode error to be returned by a codec or panicked from inside
// an encoding extension.
func (errorType *DecodeErrorType) New(
	message string,
	errorData map[string]interface{},
	source error,
) *DecodeError {
	decodeError := DecodeError{
		DecodeErrorType: errorType,
		Message:         message,
		ID:              uuid.NewV4(),
		ErrorData:       errorData,
		sourceErr:       source,
		sourceStack:     debug.Stack(),
		frame:           xerrors.Caller(0),
	}
	return &decodeError
}

/*
Creates a new error that is immediately passed to a panic. Expected to be
recovered by the json codec machinery, which converts it into a positioned
decode error. Allows errors to be raised from anywhere inside an encoding
extension without need to explicitly pass them up a chain of nested function
returns.
*/
func (errorType *DecodeErrorType) Panic(
	message string,
	errorData map[string]interface{},
	source error,
) {
	decodeError := errorType.New(message, errorData, source)
	panic(decodeError)
}

// Unique human-readable name of the error type.
func (errorType *DecodeErrorType) Name() string {
	return errorType.name
}

// Unique number to identify the error type.
func (errorType *DecodeErrorType) Code() int {
	return errorType.code
}

// Allows the error type definition itself to also be a valid error for things
// like testing error equality.
func (errorType *DecodeErrorType) Error() string {
	return errorType.name +
		" (" + strconv.Itoa(errorType.code) + ")"
}

// Used to return a specific error instance.
type DecodeError struct {
	// The type of error we are returning.
	*DecodeErrorType

	// A message detailing what caused the error.
	Message string

	// An id for the error being returned.
	ID uuid.UUID

	// A string / any mapping of data related to the error, such as the
	// offending wire value.
	ErrorData map[string]interface{}

	// If this error was returned because of another error, the original error
	// is stored here.
	sourceErr error

	// The debug.Stack() from where this error was instantiated.
	sourceStack []byte

	// The xerrors.Frame from where this error was instantiated.
	frame xerrors.Frame
}

// Returns true if the underlying type of this error is the same as errorType.
func (decodeError *DecodeError) IsType(errorType *DecodeErrorType) bool {
	return decodeError.DecodeErrorType.Error() == errorType.Error()
}

// Error string to conform to builtin error interface.
func (decodeError *DecodeError) Error() string {
	return decodeError.DecodeErrorType.Error() + " - " + decodeError.Message
}

// Implements xerrors.Wrapper interface.
func (decodeError *DecodeError) Unwrap() error {
	return decodeError.sourceErr
}

// More verbose error message that includes a debug.Stack() and source error
// information. This is not part of the Error(), Message, or ErrorData by
// default since it may contain information that is not desirable to return to
// a client.
func (decodeError *DecodeError) LogMessage() string {
	loggerMessage := "\nMESSAGE: " +
		decodeError.Error() +
		"\nORIGINAL: "
	if decodeError.sourceErr != nil {
		loggerMessage += decodeError.sourceErr.Error()
	} else {
		loggerMessage += "<nil>"
	}
	loggerMessage += "\nSTACK:\n" + string(decodeError.sourceStack)

	return loggerMessage
}
