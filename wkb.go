package geom

import (
	"encoding/binary"
	"math"
)

// WKB byte-order markers.
const (
	wkbXDR byte = 0 // big endian
	wkbNDR byte = 1 // little endian
)

// wkbHeaderSize is the minimum WKB geometry size: byte order marker plus a
// 32-bit type code.
const wkbHeaderSize = 5

// wkbByteOrder maps a byte-order marker to its decoder.
func wkbByteOrder(marker byte) (binary.ByteOrder, bool) {
	switch marker {
	case wkbXDR:
		return binary.BigEndian, true
	case wkbNDR:
		return binary.LittleEndian, true
	}
	return nil, false
}

// wkbHeader reads the byte-order marker and full 32-bit type code that start
// every WKB geometry. It returns the decoder for the remaining payload and
// the offset of the first payload byte.
func wkbHeader(data []byte) (binary.ByteOrder, Type, int, error) {
	if len(data) < wkbHeaderSize {
		return nil, TypeUnknown, 0, ErrNotEnoughData
	}
	order, ok := wkbByteOrder(data[0])
	if !ok {
		return nil, TypeUnknown, 0, ErrCorruptData
	}
	return order, Type(order.Uint32(data[1:wkbHeaderSize])), wkbHeaderSize, nil
}

// wkbU32 reads a 32-bit count at off, returning the next offset.
func wkbU32(data []byte, off int, order binary.ByteOrder) (uint32, int, error) {
	if off+4 > len(data) {
		return 0, 0, ErrNotEnoughData
	}
	return order.Uint32(data[off : off+4]), off + 4, nil
}

// wkbF64 reads a float64 ordinate at off, returning the next offset.
func wkbF64(data []byte, off int, order binary.ByteOrder) (float64, int, error) {
	if off+8 > len(data) {
		return 0, 0, ErrNotEnoughData
	}
	return math.Float64frombits(order.Uint64(data[off : off+8])), off + 8, nil
}

// wkbCoord reads an X,Y pair and discards any trailing Z/M ordinates the
// type code declares. The model is 2D; higher dimensions are accepted on
// input and dropped.
func wkbCoord(data []byte, off int, order binary.ByteOrder, extra int) (x, y float64, next int, err error) {
	x, off, err = wkbF64(data, off, order)
	if err != nil {
		return 0, 0, 0, err
	}
	y, off, err = wkbF64(data, off, order)
	if err != nil {
		return 0, 0, 0, err
	}
	for i := 0; i < extra; i++ {
		if _, off, err = wkbF64(data, off, order); err != nil {
			return 0, 0, 0, err
		}
	}
	return x, y, off, nil
}

// appendWKBHeader writes an NDR header with the given base type code.
func appendWKBHeader(dst []byte, t Type) []byte {
	dst = append(dst, wkbNDR)
	return binary.LittleEndian.AppendUint32(dst, uint32(t))
}

func appendWKBU32(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

func appendWKBF64(dst []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint64(dst, math.Float64bits(v))
}

// EncodeWKB encodes a geometry to its little-endian (NDR) well known binary
// representation.
func EncodeWKB(g Geometry) ([]byte, error) {
	if g == nil {
		return nil, ErrNilGeometry
	}
	return g.appendWKB(make([]byte, 0, g.WKBSize())), nil
}
