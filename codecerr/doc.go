/*
Error model definition and default error types for byte transcoding.

This package defines two main objects for handling errors:

• DecodeErrorType defines an error type.

• DecodeError is an instance of an error which contains a DecodeErrorType.

Default DecodeErrorType Variables

Several pointers to DecodeErrorType definitions are included in this package,
one for each way a binary field's wire representation can fail validation.
*/
package codecerr
