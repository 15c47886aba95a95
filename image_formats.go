package palette

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Images travel through the non-YAML document formats as the same PNG
// payload the node codec stores: a base64 string in JSON, a bin value in
// MessagePack and a generic binary value in BSON.

// MarshalJSON implements json.Marshaler.
func (p Pixmap) MarshalJSON() ([]byte, error) {
	data, err := pixmapCodec.compress(p, "palette.Pixmap")
	if err != nil {
		return nil, err
	}
	return json.Marshal(data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Pixmap) UnmarshalJSON(b []byte) error {
	var data []byte
	if err := json.Unmarshal(b, &data); err != nil {
		return newDecodeError(ErrShapeMismatch, "palette.Pixmap", "", err)
	}
	v, err := decompress(data, "palette.Pixmap")
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (p Pixmap) EncodeMsgpack(enc *msgpack.Encoder) error {
	data, err := pixmapCodec.compress(p, "palette.Pixmap")
	if err != nil {
		return err
	}
	return enc.EncodeBytes(data)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (p *Pixmap) DecodeMsgpack(dec *msgpack.Decoder) error {
	data, err := dec.DecodeBytes()
	if err != nil {
		return newDecodeError(ErrShapeMismatch, "palette.Pixmap", "", err)
	}
	v, err := decompress(data, "palette.Pixmap")
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (p Pixmap) MarshalBSONValue() (bsontype.Type, []byte, error) {
	data, err := pixmapCodec.compress(p, "palette.Pixmap")
	if err != nil {
		return 0, nil, err
	}
	return bson.MarshalValue(data)
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (p *Pixmap) UnmarshalBSONValue(t bsontype.Type, raw []byte) error {
	var data []byte
	if err := (bson.RawValue{Type: t, Value: raw}).Unmarshal(&data); err != nil {
		return newDecodeError(ErrShapeMismatch, "palette.Pixmap", "", err)
	}
	v, err := decompress(data, "palette.Pixmap")
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (img Image) MarshalJSON() ([]byte, error) {
	return img.Pixmap().MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (img *Image) UnmarshalJSON(b []byte) error {
	var p Pixmap
	if err := p.UnmarshalJSON(b); err != nil {
		return err
	}
	*img = ImageFrom(p)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (img Image) EncodeMsgpack(enc *msgpack.Encoder) error {
	return img.Pixmap().EncodeMsgpack(enc)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (img *Image) DecodeMsgpack(dec *msgpack.Decoder) error {
	var p Pixmap
	if err := p.DecodeMsgpack(dec); err != nil {
		return err
	}
	*img = ImageFrom(p)
	return nil
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (img Image) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return img.Pixmap().MarshalBSONValue()
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (img *Image) UnmarshalBSONValue(t bsontype.Type, raw []byte) error {
	var p Pixmap
	if err := p.UnmarshalBSONValue(t, raw); err != nil {
		return err
	}
	*img = ImageFrom(p)
	return nil
}
