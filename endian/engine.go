// Package endian provides byte order utilities for decoding message bundles.
//
// A bundle declares its byte order once, through a 16-bit marker in the message
// header. The marker itself is always stored big-endian; every later multi-byte
// field (header and sections alike) uses the order the marker selects.
//
// # Basic Usage
//
//	order, ok := endian.FromMarker(marker)
//	if !ok {
//	    return errs.ErrUnsupportedByteOrder
//	}
//	engine := order.Engine()
//	count := engine.Uint32(buf)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// ByteOrder is the byte order declared by a message header.
type ByteOrder uint8

const (
	BigEndian ByteOrder = iota
	LittleEndian
)

// Byte order markers as they appear when the marker field is read big-endian.
const (
	MarkerLittleEndian uint16 = 0xFFFE
	MarkerBigEndian    uint16 = 0xFEFF
)

// FromMarker maps a byte order marker to its ByteOrder.
// It reports false for any value other than the two known markers.
func FromMarker(marker uint16) (ByteOrder, bool) {
	switch marker {
	case MarkerLittleEndian:
		return LittleEndian, true
	case MarkerBigEndian:
		return BigEndian, true
	default:
		return 0, false
	}
}

// Marker returns the 16-bit marker value that selects this byte order.
func (o ByteOrder) Marker() uint16 {
	if o == LittleEndian {
		return MarkerLittleEndian
	}

	return MarkerBigEndian
}

// Engine returns the engine decoding fields in this byte order.
func (o ByteOrder) Engine() EndianEngine {
	if o == LittleEndian {
		return GetLittleEndianEngine()
	}

	return GetBigEndianEngine()
}

func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	default:
		return "unknown"
	}
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
