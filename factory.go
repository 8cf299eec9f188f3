package geom

import (
	"fmt"
	"log/slog"
	"strings"
)

// New returns a newly allocated empty geometry of the given type, or nil if
// the flattened type is not one of the seven supported kinds. Absence of a
// result is the only failure signal.
func New(t Type) Geometry {
	switch t.Flatten() {
	case TypePoint:
		return &Point{}

	case TypeLineString:
		return &LineString{}

	case TypePolygon:
		return &Polygon{}

	case TypeGeometryCollection:
		return &GeometryCollection{}

	case TypeMultiPolygon:
		return &MultiPolygon{}

	case TypeMultiPoint:
		return &MultiPoint{}

	case TypeMultiLineString:
		return &MultiLineString{}
	}

	return nil
}

// DecodeWKB creates a geometry from its well known binary representation.
// srs may be nil; when present it is attached to the result. On any error
// the returned geometry is nil and nothing needs cleaning up.
func DecodeWKB(data []byte, srs *SpatialReference) (Geometry, error) {
	if len(data) < wkbHeaderSize {
		return nil, ErrNotEnoughData
	}

	// Byte order marker first.
	marker := data[0]
	if marker != wkbXDR && marker != wkbNDR {
		slog.Debug("geom: DecodeWKB got corrupt data",
			"header", fmt.Sprintf("% x", data[:min(len(data), 9)]))
		return nil, ErrCorruptData
	}

	// The geometry type is a 4-byte field, but only the low byte names the
	// kind at this layer; the per-type importer interprets the full field
	// including dimensionality flags.
	var tag byte
	if marker == wkbNDR {
		tag = data[1]
	} else {
		tag = data[4]
	}

	g := New(Type(tag))
	if g == nil {
		return nil, ErrUnsupportedType
	}

	if _, err := g.decodeWKB(data); err != nil {
		g.release()
		return nil, err
	}

	g.SetSpatialReference(srs)
	return g, nil
}

// newFromWKTKeyword maps a WKT keyword to an empty geometry of that kind.
// It is a separate mapping from the numeric registry in New, covering the
// same seven kinds; nil means the keyword is unrecognized.
func newFromWKTKeyword(token string) Geometry {
	switch {
	case strings.EqualFold(token, "POINT"):
		return &Point{}

	case strings.EqualFold(token, "LINESTRING"):
		return &LineString{}

	case strings.EqualFold(token, "POLYGON"):
		return &Polygon{}

	case strings.EqualFold(token, "GEOMETRYCOLLECTION"):
		return &GeometryCollection{}

	case strings.EqualFold(token, "MULTIPOLYGON"):
		return &MultiPolygon{}

	case strings.EqualFold(token, "MULTIPOINT"):
		return &MultiPoint{}

	case strings.EqualFold(token, "MULTILINESTRING"):
		return &MultiLineString{}
	}

	return nil
}

// decodeWKTGeometry dispatches on the next keyword and runs the matching
// importer, which consumes its own keyword and body. GeometryCollection
// parsing recurses through it.
func decodeWKTGeometry(c *wktCursor) (Geometry, error) {
	token := c.peekToken()
	if token == "" {
		return nil, ErrCorruptData
	}

	g := newFromWKTKeyword(token)
	if g == nil {
		return nil, ErrUnsupportedType
	}

	if err := g.decodeWKT(c); err != nil {
		g.release()
		return nil, err
	}
	return g, nil
}

// DecodeWKT creates a geometry from its well known text representation.
// It returns the unconsumed remainder of input, which on success starts at
// the first character past the geometry text so a caller can keep parsing a
// larger document. srs may be nil. On any error the returned geometry is
// nil and the remainder is the full input.
func DecodeWKT(input string, srs *SpatialReference) (Geometry, string, error) {
	c := &wktCursor{s: input}

	g, err := decodeWKTGeometry(c)
	if err != nil {
		return nil, input, err
	}

	g.SetSpatialReference(srs)
	return g, c.rest(), nil
}

// Destroy releases a geometry's owned storage, recursively through its
// children and rings. No-op on nil. Every geometry created by this package
// may be released here regardless of which decoder produced it.
func Destroy(g Geometry) {
	if g == nil {
		return
	}
	g.release()
}

// ForceToPolygon tries to force the provided geometry to be a polygon by
// aggregating the polygon rings found in a container. The input is consumed
// and a geometry returned, potentially the same one.
//
// The guard below reproduces the long-standing upstream condition verbatim:
// a flattened type always differs from at least one of the two constants, so
// the OR is true for every input and the aggregation branch is unreachable.
// Callers therefore always get their geometry back unchanged. The behavior
// is pinned by a regression test.
func ForceToPolygon(g Geometry) Geometry {
	if g == nil {
		return nil
	}

	if g.Type().Flatten() != TypeGeometryCollection ||
		g.Type().Flatten() != TypeMultiPolygon {
		return g
	}

	// Build an aggregated polygon from all the polygon rings in the container.
	poly := &Polygon{}
	gc, ok := g.(container)
	if !ok {
		return g
	}

	for i := 0; i < gc.NumGeometries(); i++ {
		child, ok := gc.GeometryAt(i).(*Polygon)
		if !ok {
			continue
		}

		if ring := child.ExteriorRing(); ring != nil {
			poly.AddRing(ring)
		}
		for r := 0; r < child.NumInteriorRings(); r++ {
			poly.AddRing(child.InteriorRing(r))
		}
		child.rings = nil
	}

	Destroy(gc)
	return poly
}

// ForceToMultiPolygon tries to force the provided geometry to be a
// multipolygon. Only polygons are changed; they become the sole child of a
// new multipolygon, which takes ownership. Splitting a polygon with disjoint
// island rings into several children is deliberately not attempted.
func ForceToMultiPolygon(g Geometry) Geometry {
	if g == nil {
		return nil
	}

	if g.Type().Flatten() != TypePolygon {
		return g
	}

	mp := &MultiPolygon{}
	_ = mp.Append(g)

	return mp
}
