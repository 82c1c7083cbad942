package encoding

import (
	uuid "github.com/satori/go.uuid"
	"github.com/ugorji/go/codec"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/xerrors"
	"reflect"

	"github.com/illuscio-dev/bytejson-go/bintypes"
	"github.com/illuscio-dev/bytejson-go/bytecodec"
)

// JSONExtensionOpts holds options for a json handle extension to add to the
// handle on engine setup.
type JSONExtensionOpts struct {
	ValueType    reflect.Type
	ExtInterface codec.InterfaceExt
}

// defaultJSONExtensions builds the JSONExtensionOpts to add to the json
// handle on engine setup. The extensions carry the engine config, so the set
// is built fresh for each engine rather than held in a package var.
func defaultJSONExtensions(config Config) []*JSONExtensionOpts {
	return []*JSONExtensionOpts{
		{
			ValueType:    reflect.TypeOf(bintypes.BinData{}),
			ExtInterface: &jsonExtBinData{config: config},
		},
		{
			ValueType:    reflect.TypeOf(uuid.UUID{}),
			ExtInterface: &jsonExtUUID{},
		},
		{
			ValueType:    reflect.TypeOf(primitive.Binary{}),
			ExtInterface: &jsonExtBsonBinary{config: config},
		},
	}
}

// Transcodes BinData fields between byte blobs and the wire representation
// chosen by the engine config. Registered per-type on the json handle, the
// extension is consulted at every BinData leaf the handle reaches, no matter
// how deeply the field is nested; every other value passes through the handle
// untouched.
type jsonExtBinData struct {
	config Config
}

func (ext *jsonExtBinData) ConvertExt(value interface{}) interface{} {
	var data bintypes.BinData
	switch valueBin := value.(type) {
	case bintypes.BinData:
		data = valueBin
	case *bintypes.BinData:
		data = *valueBin
	default:
		panic(xerrors.New("BinData extension received unexpected type"))
	}

	wire, err := bytecodec.Encode(
		data.Bytes(), ext.config.ByteMode(), ext.config.HexPrefixEnabled(),
	)
	if err != nil {
		panic(err)
	}
	return wire
}

func (ext *jsonExtBinData) UpdateExt(dest interface{}, value interface{}) {
	decoded, err := bytecodec.Decode(value, ext.config.ByteMode())
	if err != nil {
		panic(err)
	}

	receiver := dest.(*bintypes.BinData)
	*receiver = bintypes.New(decoded)
}

// Converts UUID fields to / from their canonical string form.
type jsonExtUUID struct{}

func (ext *jsonExtUUID) ConvertExt(value interface{}) interface{} {
	switch valueUUID := value.(type) {
	case uuid.UUID:
		return valueUUID.String()
	case *uuid.UUID:
		return valueUUID.String()
	}
	panic(xerrors.New("UUID extension received unexpected type"))
}

func (ext *jsonExtUUID) UpdateExt(dest interface{}, value interface{}) {
	valueString, ok := value.(string)
	if !ok {
		panic(xerrors.New("uuid field must be a string"))
	}

	parsed, err := uuid.FromString(valueString)
	if err != nil {
		panic(xerrors.Errorf("error converting uuid: %w", err))
	}

	receiver := dest.(*uuid.UUID)
	*receiver = parsed
}

// Converts BSON binary fields to json. Currently supports Binary blobs and
// UUIDs. Blob subtypes are routed through the configured byte codec, so
// documents pulled from mongo render their binary fields the same way BinData
// fields do.
type jsonExtBsonBinary struct {
	config Config
}

func (ext *jsonExtBsonBinary) ConvertExt(value interface{}) interface{} {
	valueBin := value.(*primitive.Binary)
	if valueBin.Subtype == 0x3 {
		valueUUID, err := uuid.FromBytes(valueBin.Data)
		if err != nil {
			panic(xerrors.Errorf("error converting bson uuid: %w", err))
		}
		return valueUUID
	}

	if valueBin.Subtype == 0x0 {
		// Re-dispatches through the BinData extension above.
		return bintypes.New(valueBin.Data)
	}

	panic(xerrors.New("unsupported Binary BSON format"))
}

func (ext *jsonExtBsonBinary) UpdateExt(dest interface{}, value interface{}) {
	panic(
		xerrors.New(
			"decoding to bson binary field not supported -- " +
				"use uuid or BinData type as intermediary",
		),
	)
}
