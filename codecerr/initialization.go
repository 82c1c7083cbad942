package codecerr

// Returns a decode error type definition. Each definition should only need to
// be declared once in a shared library for any given ecosystem, ensuring
// consistent error codes and names for the error type across all services /
// libraries of a given language.
func NewDecodeErrorType(
	name string,
	code int,
) *DecodeErrorType {
	decodeError := &DecodeErrorType{
		name: name,
		code: code,
	}
	return decodeError
}
