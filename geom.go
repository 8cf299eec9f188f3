// Package geom provides an in-memory vector geometry model with decoding
// from Well Known Binary (WKB) and Well Known Text (WKT), encoding back to
// both formats, best-effort shape coercion between container types, and
// conversion to orb geometries, GeoJSON and FlatGeobuf.
package geom

import (
	"errors"
)

// Common errors returned by this package.
var (
	ErrNotEnoughData   = errors.New("geom: not enough data")
	ErrCorruptData     = errors.New("geom: corrupt data")
	ErrUnsupportedType = errors.New("geom: unsupported geometry type")
	ErrNilGeometry     = errors.New("geom: nil geometry")
)

// Type identifies a geometry kind as encoded in WKB. Values above the base
// range carry dimensionality modifiers: the pre-ISO 2.5D high bit, or the
// ISO blocks (+1000 Z, +2000 M, +3000 ZM).
type Type uint32

// Base geometry type codes.
const (
	TypeUnknown            Type = 0
	TypePoint              Type = 1
	TypeLineString         Type = 2
	TypePolygon            Type = 3
	TypeMultiPoint         Type = 4
	TypeMultiLineString    Type = 5
	TypeMultiPolygon       Type = 6
	TypeGeometryCollection Type = 7
)

// wkb25DBit marks 2.5D (Z) geometries in pre-ISO WKB.
const wkb25DBit Type = 0x80000000

// Flatten strips any dimensionality modifier, projecting t onto the base
// 2D type code. A 3D Polygon flattens to TypePolygon.
func (t Type) Flatten() Type {
	return (t &^ wkb25DBit) % 1000
}

// extraDims reports how many ordinates beyond X and Y each coordinate of a
// geometry with this type code carries.
func (t Type) extraDims() int {
	switch (t &^ wkb25DBit) / 1000 {
	case 1, 2: // Z or M
		return 1
	case 3: // ZM
		return 2
	}
	if t&wkb25DBit != 0 {
		return 1
	}
	return 0
}

// String returns the WKT keyword for the flattened type, or "Unknown".
func (t Type) String() string {
	switch t.Flatten() {
	case TypePoint:
		return "Point"
	case TypeLineString:
		return "LineString"
	case TypePolygon:
		return "Polygon"
	case TypeMultiPoint:
		return "MultiPoint"
	case TypeMultiLineString:
		return "MultiLineString"
	case TypeMultiPolygon:
		return "MultiPolygon"
	case TypeGeometryCollection:
		return "GeometryCollection"
	}
	return "Unknown"
}

// Geometry is the interface shared by all geometry variants. The codec
// methods are unexported, so the set of variants is closed to this package.
type Geometry interface {
	// Type returns the geometry's type code.
	Type() Type

	// SpatialReference returns the attached spatial reference, or nil.
	SpatialReference() *SpatialReference

	// SetSpatialReference attaches a spatial reference. The reference is
	// shared, never copied; nil detaches.
	SetSpatialReference(*SpatialReference)

	// WKBSize returns the number of bytes the geometry occupies in WKB.
	WKBSize() int

	// Empty reports whether the geometry has no coordinates.
	Empty() bool

	decodeWKB(data []byte) (int, error)
	decodeWKT(c *wktCursor) error
	appendWKB(dst []byte) []byte
	appendWKT(dst []byte) []byte
	release()
}

// srsRef carries the spatial reference attachment shared by all variants.
type srsRef struct {
	srs *SpatialReference
}

func (r *srsRef) SpatialReference() *SpatialReference     { return r.srs }
func (r *srsRef) SetSpatialReference(s *SpatialReference) { r.srs = s }

// geomSlice carries the ordered children owned by container variants.
type geomSlice struct {
	geoms []Geometry
}

// NumGeometries returns the number of child geometries.
func (s *geomSlice) NumGeometries() int { return len(s.geoms) }

// GeometryAt returns the i-th child geometry, or nil if out of range.
func (s *geomSlice) GeometryAt(i int) Geometry {
	if i < 0 || i >= len(s.geoms) {
		return nil
	}
	return s.geoms[i]
}

func (s *geomSlice) add(g Geometry) { s.geoms = append(s.geoms, g) }

func (s *geomSlice) releaseAll() {
	for _, g := range s.geoms {
		g.release()
	}
	s.geoms = nil
}

func (s *geomSlice) empty() bool { return len(s.geoms) == 0 }

// container is satisfied by every variant that owns child geometries.
type container interface {
	Geometry
	NumGeometries() int
	GeometryAt(i int) Geometry
}
