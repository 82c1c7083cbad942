package encoding

import (
	"golang.org/x/xerrors"
	"io"
	"reflect"
)
import "github.com/ugorji/go/codec"

/*
Engine drives json encoding and decoding with a configurable wire
representation for binary blob fields. The goal of the engine is to let a
single Config value change how one field type -- BinData byte blobs -- is
written to and read from the wire, while every other type is handled exactly
as the underlying json library would handle it.

Instantiation

Use NewEngine(config) to create a new Engine. Entry points such as FromString
and ToString build a fresh engine per call, which is the expected pattern for
concurrent use: a read-only Config shared across goroutines, engines created
fresh per call.

Byte Modes

• bytemode.ARRAY: BinData is written as a json array of 0-255 numbers.

• bytemode.HEX: BinData is written as a lowercase hex string, with an
optional "0x" prefix controlled by Config.HexPrefixEnabled(). Decoding strips
the prefix whether or not it is enabled.

• bytemode.BASE64: BinData is written as a standard base64 string with
padding.

Default JSON Extensions

Engine uses the codec library to encode/decode json
(https://godoc.org/github.com/ugorji/go/codec), which allows the definition of
per-type extensions. The extension mechanism is what makes the interception
recursive: the handle consults it at every matching leaf of a traversal, so
BinData fields nested inside objects, array elements, or pointers are all
caught without any per-call bookkeeping. Engine ships with the following
types handled:

• Binary blob data represented as the BinData type in the "bintypes" package
of this module. The wire representation follows the engine Config.

• UUIDs from "github.com/satori/go.uuid", written as canonical strings.

• BSON primitive.Binary data will be encoded as a uuid string for 0x3 subtype
(UUID) and the configured byte representation for 0x0 subtype (arbitrary
binary data). Other subtypes are not currently supported and will panic.
Decoding into primitive.Binary is not supported; decode into a uuid or
BinData field instead.

Additional json extensions can be registered through AddJSONExtensions() by
passing a slice of JSONExtensionOpts objects.

Errors

Extensions raise failures by panicking; the codec library recovers them and
returns them as positioned decode / encode errors. Engine additionally
recovers any panic that escapes the codec machinery and returns it as an
error, so no call into the engine panics.
*/
type Engine struct {
	// Formatting configuration carried by the engine's json extensions.
	config Config
	// JSON handle for the json encoder / decoder.
	jsonHandle *codec.JsonHandle
}

// The configuration this engine was built with.
func (engine *Engine) Config() Config {
	return engine.config
}

func (engine *Engine) JSONHandle() *codec.JsonHandle {
	return engine.jsonHandle
}

// Adds JSON extensions to the engine's handle.
func (engine *Engine) AddJSONExtensions(extensions []*JSONExtensionOpts) error {
	for _, extOpts := range extensions {
		err := engine.jsonHandle.SetInterfaceExt(
			extOpts.ValueType, 1, extOpts.ExtInterface,
		)
		if err != nil {
			return xerrors.Errorf(
				"error adding json extension to engine: %w", err,
			)
		}
	}
	return nil
}

// Runs the json encoder while catching panics to return as errors.
func (engine *Engine) safeEncode(
	writer io.Writer, content interface{},
) (err error) {
	defer func() {
		recovered := recover()
		if recovered != nil {
			err = xerrors.Errorf("panic during encode: %w", recovered)
		}
	}()

	jsonEncoder := codec.NewEncoder(writer, engine.jsonHandle)
	err = jsonEncoder.Encode(content)
	return err
}

// Runs the json decoder while catching panics to return as errors.
func (engine *Engine) safeDecode(
	reader io.Reader, contentReceiver interface{},
) (err error) {
	defer func() {
		recovered := recover()
		if recovered != nil {
			err = xerrors.Errorf("panic during decode: %w", recovered)
		}
	}()

	jsonDecoder := codec.NewDecoder(reader, engine.jsonHandle)
	err = jsonDecoder.Decode(contentReceiver)
	return err
}

// Decode reads json content from reader into contentReceiver, transcoding
// BinData fields per the engine config. The first error encountered aborts
// the whole decode; no partial results are kept.
func (engine *Engine) Decode(
	contentReceiver interface{}, reader io.Reader,
) error {
	// Close the reader if it's a closer.
	if readCloser, ok := reader.(io.ReadCloser); ok {
		defer func() {
			_ = readCloser.Close()
		}()
	}

	err := engine.safeDecode(reader, contentReceiver)
	if err != nil {
		return xerrors.Errorf("decode err: %w", err)
	}

	return nil
}

// Encode writes content to writer as json, transcoding BinData fields per
// the engine config.
func (engine *Engine) Encode(content interface{}, writer io.Writer) error {
	err := engine.safeEncode(writer, content)
	if err != nil {
		return xerrors.Errorf(
			"encode err: %w", err,
		)
	}
	return nil
}

func NewEngine(config Config) (*Engine, error) {
	// Create the json handle. Generic json objects decode into
	// map[string]interface{} rather than the handle's default map type.
	jsonHandle := &codec.JsonHandle{}
	jsonHandle.MapType = reflect.TypeOf(map[string]interface{}(nil))

	engine := &Engine{
		config:     config,
		jsonHandle: jsonHandle,
	}

	// Add the default json extensions to the engine.
	if err := engine.AddJSONExtensions(defaultJSONExtensions(config)); err != nil {
		err = xerrors.Errorf("error adding default json extensions: %w", err)
		return nil, err
	}

	return engine, nil
}
