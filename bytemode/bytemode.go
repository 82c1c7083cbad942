// Enumeration-like type for binary field wire encodings.
package bytemode

import (
	"strings"
)

/*
Mode is used to enumerate the wire representations available for binary blob
fields. Non-default Modes can be used by wrapping a custom string:

	Mode("my-encoding")
*/
type Mode string

const (
	ARRAY  = Mode("array")
	HEX    = Mode("hex")
	BASE64 = Mode("base64")
	// UNKNOWN is used when the incoming string is blank
	UNKNOWN = Mode("")
)

// List of default modes that decode to / from byte blobs.
var byteModes = []Mode{ARRAY, HEX, BASE64}

// Interface for object used to fetch headers such as http.Request.Header or
// http.Response.Header
type headerFetcher interface {
	Get(string) string
}

// Extract the requested byte encoding from a message / request header.
func FromHeader(headers headerFetcher) Mode {
	return FromString(headers.Get("Bytes-Encoding"))
}

/*
Convert Mode from a string. Ignores case. If the Mode is a default mode,
multiple formats are respected. For instance, all of the following will yield
"bytemode.HEX":

• "hex"

• "HEX"

• "x-hex"

• "application/hex"
*/
func FromString(incoming string) Mode {
	incoming = strings.ToLower(incoming)

	if incoming == "" {
		return UNKNOWN
	}

	for _, mode := range byteModes {
		modeLower := strings.ToLower(string(mode))
		if strings.HasSuffix(incoming, modeLower) {
			return mode
		}
	}

	return Mode(incoming)
}
