package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ToOrb converts a geometry to its orb equivalent. Nil and unsupported
// inputs convert to nil. orb has no empty-point representation, so an
// empty Point converts to the origin.
func ToOrb(g Geometry) orb.Geometry {
	switch v := g.(type) {
	case *Point:
		return orb.Point{v.X(), v.Y()}

	case *LineString:
		return lineStringToOrb(v)

	case *Polygon:
		return polygonToOrb(v)

	case *MultiPoint:
		mp := make(orb.MultiPoint, 0, v.NumGeometries())
		for i := 0; i < v.NumGeometries(); i++ {
			p := v.GeometryAt(i).(*Point)
			mp = append(mp, orb.Point{p.X(), p.Y()})
		}
		return mp

	case *MultiLineString:
		mls := make(orb.MultiLineString, 0, v.NumGeometries())
		for i := 0; i < v.NumGeometries(); i++ {
			mls = append(mls, lineStringToOrb(v.GeometryAt(i).(*LineString)))
		}
		return mls

	case *MultiPolygon:
		mp := make(orb.MultiPolygon, 0, v.NumGeometries())
		for i := 0; i < v.NumGeometries(); i++ {
			mp = append(mp, polygonToOrb(v.GeometryAt(i).(*Polygon)))
		}
		return mp

	case *GeometryCollection:
		coll := make(orb.Collection, 0, v.NumGeometries())
		for i := 0; i < v.NumGeometries(); i++ {
			if child := ToOrb(v.GeometryAt(i)); child != nil {
				coll = append(coll, child)
			}
		}
		return coll

	default:
		return nil
	}
}

// FromOrb converts an orb geometry into this package's model. An orb.Ring
// becomes a single-ring polygon and an orb.Bound a rectangle polygon; nil
// and unsupported inputs convert to nil.
func FromOrb(o orb.Geometry) Geometry {
	switch v := o.(type) {
	case orb.Point:
		return NewPoint(v[0], v[1])

	case orb.LineString:
		return lineStringFromOrb(v)

	case orb.Ring:
		p := &Polygon{}
		p.AddRing(lineStringFromOrb(orb.LineString(v)))
		return p

	case orb.Polygon:
		return polygonFromOrb(v)

	case orb.MultiPoint:
		mp := &MultiPoint{}
		for _, pt := range v {
			mp.add(NewPoint(pt[0], pt[1]))
		}
		return mp

	case orb.MultiLineString:
		mls := &MultiLineString{}
		for _, ls := range v {
			mls.add(lineStringFromOrb(ls))
		}
		return mls

	case orb.MultiPolygon:
		mp := &MultiPolygon{}
		for _, poly := range v {
			mp.add(polygonFromOrb(poly))
		}
		return mp

	case orb.Collection:
		gc := &GeometryCollection{}
		for _, child := range v {
			if converted := FromOrb(child); converted != nil {
				gc.add(converted)
			}
		}
		return gc

	case orb.Bound:
		return polygonFromOrb(orb.Polygon{
			orb.Ring{
				{v.Min[0], v.Min[1]},
				{v.Max[0], v.Min[1]},
				{v.Max[0], v.Max[1]},
				{v.Min[0], v.Max[1]},
				{v.Min[0], v.Min[1]},
			},
		})

	default:
		return nil
	}
}

func lineStringToOrb(l *LineString) orb.LineString {
	ls := make(orb.LineString, 0, l.NumPoints())
	for i := 0; i < l.NumPoints(); i++ {
		x, y := l.PointAt(i)
		ls = append(ls, orb.Point{x, y})
	}
	return ls
}

func lineStringFromOrb(ls orb.LineString) *LineString {
	l := &LineString{}
	for _, pt := range ls {
		l.AddPoint(pt[0], pt[1])
	}
	return l
}

func polygonToOrb(p *Polygon) orb.Polygon {
	poly := make(orb.Polygon, 0, 1+p.NumInteriorRings())
	appendRing := func(r *LineString) {
		ring := make(orb.Ring, 0, r.NumPoints())
		for i := 0; i < r.NumPoints(); i++ {
			x, y := r.PointAt(i)
			ring = append(ring, orb.Point{x, y})
		}
		poly = append(poly, ring)
	}
	if r := p.ExteriorRing(); r != nil {
		appendRing(r)
	}
	for i := 0; i < p.NumInteriorRings(); i++ {
		appendRing(p.InteriorRing(i))
	}
	return poly
}

func polygonFromOrb(poly orb.Polygon) *Polygon {
	p := &Polygon{}
	for _, ring := range poly {
		p.AddRing(lineStringFromOrb(orb.LineString(ring)))
	}
	return p
}

// ToGeoJSON encodes a geometry as a GeoJSON geometry object.
func ToGeoJSON(g Geometry) ([]byte, error) {
	if g == nil {
		return nil, ErrNilGeometry
	}
	o := ToOrb(g)
	if o == nil {
		return nil, ErrUnsupportedType
	}
	return geojson.NewGeometry(o).MarshalJSON()
}

// FromGeoJSON decodes a GeoJSON geometry object.
func FromGeoJSON(data []byte) (Geometry, error) {
	gj, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, err
	}
	g := FromOrb(gj.Geometry())
	if g == nil {
		return nil, ErrUnsupportedType
	}
	return g, nil
}
