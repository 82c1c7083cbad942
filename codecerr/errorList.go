package codecerr

// Hex string has an odd number of digits after any prefix is stripped.
var OddLengthError = NewDecodeErrorType(
	"OddLengthError",
	2000,
)

// Hex string contains a character outside [0-9a-fA-F].
var InvalidHexDigitError = NewDecodeErrorType(
	"InvalidHexDigitError",
	2001,
)

// Base64 string is malformed (bad padding or invalid alphabet).
var InvalidBase64Error = NewDecodeErrorType(
	"InvalidBase64Error",
	2002,
)

// Array element falls outside the 0-255 byte range.
var ValueOutOfRangeError = NewDecodeErrorType(
	"ValueOutOfRangeError",
	2003,
)

// Array element is not a whole number.
var NotAnIntegerError = NewDecodeErrorType(
	"NotAnIntegerError",
	2004,
)

// Wire value is not the shape the configured byte mode implies (string for
// hex / base64, array for array mode).
var WrongShapeError = NewDecodeErrorType(
	"WrongShapeError",
	2005,
)

// Byte blob could not be encoded to its wire representation.
var EncodeFailedError = NewDecodeErrorType(
	"EncodeFailedError",
	2006,
)
