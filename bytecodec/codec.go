package bytecodec

import (
	"encoding/base64"
	"encoding/hex"
	"math"
	"strings"

	"github.com/illuscio-dev/bytejson-go/bytemode"
	"github.com/illuscio-dev/bytejson-go/codecerr"
)

/*
Encode converts a byte blob to the wire representation for the given mode:

• bytemode.ARRAY: a []int holding each byte as a 0-255 number. This is also
the fallback for unknown modes.

• bytemode.HEX: a string of lowercase hex digit pairs. When hexPrefix is true
the string is prefixed with "0x".

• bytemode.BASE64: a standard base64 string with padding. hexPrefix has no
effect under this mode.

The returned value is handed directly to the json handle, which writes it out
as a json array or string.
*/
func Encode(
	data []byte, mode bytemode.Mode, hexPrefix bool,
) (interface{}, error) {
	switch mode {
	case bytemode.HEX:
		return encodeHex(data, hexPrefix)
	case bytemode.BASE64:
		return base64.StdEncoding.EncodeToString(data), nil
	default:
		return encodeArray(data), nil
	}
}

/*
Decode converts a wire value back into a byte blob, validating it against the
given mode. Hex decoding strips an optional "0x" / "0X" prefix whether or not
the encoding side was configured to emit one, so payloads produced under a
different prefix setting still load.

All failures are returned as *codecerr.DecodeError values.
*/
func Decode(wire interface{}, mode bytemode.Mode) ([]byte, error) {
	switch mode {
	case bytemode.HEX:
		return decodeHex(wire)
	case bytemode.BASE64:
		return decodeBase64(wire)
	default:
		return decodeArray(wire)
	}
}

func encodeHex(data []byte, hexPrefix bool) (interface{}, error) {
	encoded := make([]byte, hex.EncodedLen(len(data)))
	written := hex.Encode(encoded, data)
	if written != len(encoded) {
		return nil, codecerr.EncodeFailedError.New(
			"error encoding bin data to hex", nil, nil,
		)
	}

	if hexPrefix {
		return "0x" + string(encoded), nil
	}
	return string(encoded), nil
}

func encodeArray(data []byte) []int {
	// []byte would be re-encoded as a base64 string by the json handle, so the
	// blob is widened to a number slice to force a json array of 0-255 values.
	numbers := make([]int, len(data))
	for i, b := range data {
		numbers[i] = int(b)
	}
	return numbers
}

func decodeHex(wire interface{}) ([]byte, error) {
	hexString, ok := wire.(string)
	if !ok {
		return nil, codecerr.WrongShapeError.New(
			"hex mode expects a string value",
			map[string]interface{}{"value": wire},
			nil,
		)
	}

	if strings.HasPrefix(hexString, "0x") || strings.HasPrefix(hexString, "0X") {
		hexString = hexString[2:]
	}

	if len(hexString)%2 != 0 {
		return nil, codecerr.OddLengthError.New(
			"hex string has an odd number of digits",
			map[string]interface{}{"digits": len(hexString)},
			nil,
		)
	}

	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return nil, codecerr.InvalidHexDigitError.New(
			"could not decode hex: "+err.Error(),
			map[string]interface{}{"value": hexString},
			err,
		)
	}

	return decoded, nil
}

func decodeBase64(wire interface{}) ([]byte, error) {
	base64String, ok := wire.(string)
	if !ok {
		return nil, codecerr.WrongShapeError.New(
			"base64 mode expects a string value",
			map[string]interface{}{"value": wire},
			nil,
		)
	}

	decoded, err := base64.StdEncoding.DecodeString(base64String)
	if err != nil {
		return nil, codecerr.InvalidBase64Error.New(
			"could not decode base64: "+err.Error(),
			map[string]interface{}{"value": base64String},
			err,
		)
	}

	return decoded, nil
}

// Pulls a whole 0-255 number out of a decoded json array element. The json
// handle may surface numbers as signed, unsigned or floating point depending
// on the wire text, so all three are normalized here.
func decodeArrayElement(element interface{}) (byte, *codecerr.DecodeError) {
	var number int64

	switch value := element.(type) {
	case int64:
		number = value
	case uint64:
		if value > math.MaxInt64 {
			return 0, codecerr.ValueOutOfRangeError.New(
				"array element does not fit in a byte",
				map[string]interface{}{"value": value},
				nil,
			)
		}
		number = int64(value)
	case int:
		number = int64(value)
	case float64:
		if value != math.Trunc(value) {
			return 0, codecerr.NotAnIntegerError.New(
				"array element is not a whole number",
				map[string]interface{}{"value": value},
				nil,
			)
		}
		number = int64(value)
	default:
		return 0, codecerr.NotAnIntegerError.New(
			"array element is not a number",
			map[string]interface{}{"value": element},
			nil,
		)
	}

	if number < 0 || number > 255 {
		return 0, codecerr.ValueOutOfRangeError.New(
			"array element does not fit in a byte",
			map[string]interface{}{"value": number},
			nil,
		)
	}

	return byte(number), nil
}

func decodeArray(wire interface{}) ([]byte, error) {
	elements, ok := wire.([]interface{})
	if !ok {
		return nil, codecerr.WrongShapeError.New(
			"array mode expects an array value",
			map[string]interface{}{"value": wire},
			nil,
		)
	}

	decoded := make([]byte, len(elements))
	for i, element := range elements {
		value, err := decodeArrayElement(element)
		if err != nil {
			return nil, err
		}
		decoded[i] = value
	}

	return decoded, nil
}
