package geom

import (
	"io"

	flatgeobuf "github.com/flatgeobuf/flatgeobuf/src/go"
	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/flatgeobuf/flatgeobuf/src/go/writer"
	flatbuffers "github.com/google/flatbuffers/go"
)

// FGBOptions configures FlatGeobuf writing.
type FGBOptions struct {
	Name         string            // Layer name
	Description  string            // Layer description
	IncludeIndex bool              // Include spatial index (default: true)
	SRS          *SpatialReference // Spatial reference recorded in the header (optional)
}

// DefaultFGBOptions returns default options for writing FlatGeobuf files.
func DefaultFGBOptions() *FGBOptions {
	return &FGBOptions{IncludeIndex: true}
}

// WriteFGB writes a geometry set to FlatGeobuf format. Feature properties
// are out of scope; the output carries geometries only.
func WriteFGB(w io.Writer, geoms []Geometry, opts *FGBOptions) error {
	if opts == nil {
		opts = DefaultFGBOptions()
	}
	if len(geoms) == 0 {
		return ErrNilGeometry
	}

	// A homogeneous set is declared with its type, otherwise Unknown.
	geomType := fgbTypeOf(geoms[0])
	for _, g := range geoms[1:] {
		if fgbTypeOf(g) != geomType {
			geomType = flattypes.GeometryTypeUnknown
			break
		}
	}

	builder := flatbuffers.NewBuilder(4096)
	header := writer.NewHeader(builder)
	header.SetGeometryType(geomType)

	if opts.Name != "" {
		header.SetName(opts.Name)
	}
	if opts.Description != "" {
		header.SetDescription(opts.Description)
	}
	if opts.SRS != nil {
		crs := writer.NewCrs(builder)
		crs.SetOrg("EPSG")
		if opts.SRS.Code > 0 {
			crs.SetCode(int32(opts.SRS.Code))
		}
		if opts.SRS.Name != "" {
			crs.SetName(opts.SRS.Name)
		}
		if opts.SRS.Description != "" {
			crs.SetDescription(opts.SRS.Description)
		} else if opts.SRS.WKT != "" {
			crs.SetDescription(opts.SRS.WKT)
		}
		header.SetCrs(crs)
	}

	gen := &fgbGenerator{geoms: geoms}
	fgbWriter := writer.NewWriter(header, opts.IncludeIndex, gen, nil)

	_, err := fgbWriter.Write(w)
	return err
}

// ReadFGB reads all geometries from FlatGeobuf data. The header's CRS
// record, when present, is attached to every geometry as its spatial
// reference. Files without a spatial index cannot be iterated and yield an
// empty set.
func ReadFGB(data []byte) ([]Geometry, error) {
	fgb, err := flatgeobuf.NewWithData(data)
	if err != nil {
		return nil, err
	}

	h := fgb.Header()
	if h == nil {
		return nil, ErrCorruptData
	}

	srs := fgbSpatialReference(h)

	geoms := []Geometry{}
	if h.FeaturesCount() == 0 {
		return geoms, nil
	}

	// Iteration goes through the index with the full header envelope; the
	// upstream Go implementation offers no sequential feature walk.
	if h.IndexNodeSize() == 0 || h.EnvelopeLength() < 4 {
		return geoms, nil
	}

	features, err := fgb.Search(h.Envelope(0), h.Envelope(1), h.Envelope(2), h.Envelope(3))
	if err != nil {
		return nil, err
	}

	for _, f := range features {
		var raw flattypes.Geometry
		if f.Geometry(&raw) == nil {
			continue
		}
		g := fgbToGeometry(&raw)
		if g == nil {
			continue
		}
		g.SetSpatialReference(srs)
		geoms = append(geoms, g)
	}

	return geoms, nil
}

// fgbSpatialReference converts the header CRS record, or nil when absent.
func fgbSpatialReference(h *flattypes.Header) *SpatialReference {
	var crs flattypes.Crs
	if h.Crs(&crs) == nil {
		return nil
	}
	return &SpatialReference{
		Code:        int(crs.Code()),
		Name:        string(crs.Name()),
		Description: string(crs.Description()),
	}
}

// fgbGenerator feeds geometries to the FlatGeobuf writer one at a time.
type fgbGenerator struct {
	geoms []Geometry
	index int
}

func (g *fgbGenerator) Generate() *writer.Feature {
	if g.index >= len(g.geoms) {
		return nil
	}

	next := g.geoms[g.index]
	g.index++

	if next == nil {
		return g.Generate() // Skip nil geometries
	}

	builder := flatbuffers.NewBuilder(1024)
	raw := fgbGeometry(next, builder)
	if raw == nil {
		return g.Generate() // Skip unsupported geometries
	}

	feature := writer.NewFeature(builder)
	feature.SetGeometry(raw)

	return feature
}

// fgbTypeOf maps a geometry to its FlatGeobuf type tag.
func fgbTypeOf(g Geometry) flattypes.GeometryType {
	if g == nil {
		return flattypes.GeometryTypeUnknown
	}
	switch g.Type().Flatten() {
	case TypePoint:
		return flattypes.GeometryTypePoint
	case TypeLineString:
		return flattypes.GeometryTypeLineString
	case TypePolygon:
		return flattypes.GeometryTypePolygon
	case TypeMultiPoint:
		return flattypes.GeometryTypeMultiPoint
	case TypeMultiLineString:
		return flattypes.GeometryTypeMultiLineString
	case TypeMultiPolygon:
		return flattypes.GeometryTypeMultiPolygon
	case TypeGeometryCollection:
		return flattypes.GeometryTypeGeometryCollection
	default:
		return flattypes.GeometryTypeUnknown
	}
}

// fgbGeometry converts a geometry to a FlatGeobuf writer geometry.
func fgbGeometry(g Geometry, builder *flatbuffers.Builder) *writer.Geometry {
	if g == nil {
		return nil
	}

	out := writer.NewGeometry(builder)

	switch v := g.(type) {
	case *Point:
		out.SetType(flattypes.GeometryTypePoint)
		out.SetXY([]float64{v.X(), v.Y()})

	case *MultiPoint:
		out.SetType(flattypes.GeometryTypeMultiPoint)
		xy := make([]float64, 0, v.NumGeometries()*2)
		for i := 0; i < v.NumGeometries(); i++ {
			p := v.GeometryAt(i).(*Point)
			xy = append(xy, p.X(), p.Y())
		}
		out.SetXY(xy)

	case *LineString:
		out.SetType(flattypes.GeometryTypeLineString)
		out.SetXY(lineStringXY(v))

	case *MultiLineString:
		out.SetType(flattypes.GeometryTypeMultiLineString)
		xy := make([]float64, 0)
		ends := make([]uint32, 0, v.NumGeometries())
		cumulative := uint32(0)
		for i := 0; i < v.NumGeometries(); i++ {
			ls := v.GeometryAt(i).(*LineString)
			xy = append(xy, lineStringXY(ls)...)
			cumulative += uint32(ls.NumPoints())
			ends = append(ends, cumulative)
		}
		out.SetXY(xy)
		out.SetEnds(ends)

	case *Polygon:
		out.SetType(flattypes.GeometryTypePolygon)
		xy, ends := polygonXYEnds(v)
		out.SetXY(xy)
		out.SetEnds(ends)

	case *MultiPolygon:
		out.SetType(flattypes.GeometryTypeMultiPolygon)
		parts := make([]writer.Geometry, 0, v.NumGeometries())
		for i := 0; i < v.NumGeometries(); i++ {
			poly := v.GeometryAt(i).(*Polygon)
			pg := writer.NewGeometry(builder)
			pg.SetType(flattypes.GeometryTypePolygon)
			xy, ends := polygonXYEnds(poly)
			pg.SetXY(xy)
			pg.SetEnds(ends)
			parts = append(parts, *pg)
		}
		out.SetParts(parts)

	case *GeometryCollection:
		out.SetType(flattypes.GeometryTypeGeometryCollection)
		parts := make([]writer.Geometry, 0, v.NumGeometries())
		for i := 0; i < v.NumGeometries(); i++ {
			child := fgbGeometry(v.GeometryAt(i), builder)
			if child != nil {
				parts = append(parts, *child)
			}
		}
		out.SetParts(parts)

	default:
		return nil
	}

	return out
}

// fgbToGeometry converts a FlatGeobuf geometry record into this package's
// model, or nil for unsupported types.
func fgbToGeometry(raw *flattypes.Geometry) Geometry {
	if raw == nil {
		return nil
	}

	switch raw.Type() {
	case flattypes.GeometryTypePoint:
		if raw.XyLength() < 2 {
			return &Point{}
		}
		return NewPoint(raw.Xy(0), raw.Xy(1))

	case flattypes.GeometryTypeMultiPoint:
		mp := &MultiPoint{}
		for i := 0; i+1 < raw.XyLength(); i += 2 {
			mp.add(NewPoint(raw.Xy(i), raw.Xy(i+1)))
		}
		return mp

	case flattypes.GeometryTypeLineString:
		return fgbLineString(raw, 0, uint32(raw.XyLength()/2))

	case flattypes.GeometryTypeMultiLineString:
		mls := &MultiLineString{}
		if raw.EndsLength() == 0 {
			// No ends: treat as a single linestring.
			mls.add(fgbLineString(raw, 0, uint32(raw.XyLength()/2)))
			return mls
		}
		start := uint32(0)
		for i := 0; i < raw.EndsLength(); i++ {
			end := raw.Ends(i)
			mls.add(fgbLineString(raw, start, end))
			start = end
		}
		return mls

	case flattypes.GeometryTypePolygon:
		return fgbPolygon(raw)

	case flattypes.GeometryTypeMultiPolygon:
		mp := &MultiPolygon{}
		if raw.PartsLength() == 0 {
			// Fallback: treat as a single polygon.
			mp.add(fgbPolygon(raw))
			return mp
		}
		for i := 0; i < raw.PartsLength(); i++ {
			var part flattypes.Geometry
			if raw.Parts(&part, i) {
				mp.add(fgbPolygon(&part))
			}
		}
		return mp

	case flattypes.GeometryTypeGeometryCollection:
		gc := &GeometryCollection{}
		for i := 0; i < raw.PartsLength(); i++ {
			var part flattypes.Geometry
			if raw.Parts(&part, i) {
				if child := fgbToGeometry(&part); child != nil {
					gc.add(child)
				}
			}
		}
		return gc

	default:
		return nil
	}
}

// fgbLineString builds a linestring from the vertex range [start, end) of a
// record's flat coordinate array.
func fgbLineString(raw *flattypes.Geometry, start, end uint32) *LineString {
	ls := &LineString{}
	for i := start; i < end; i++ {
		idx := int(i) * 2
		if idx+1 < raw.XyLength() {
			ls.AddPoint(raw.Xy(idx), raw.Xy(idx+1))
		}
	}
	return ls
}

// fgbPolygon builds a polygon from a record's coordinate array, using the
// ends array as ring boundaries; without ends all vertices form one ring.
func fgbPolygon(raw *flattypes.Geometry) *Polygon {
	p := &Polygon{}
	if raw.EndsLength() == 0 {
		if raw.XyLength() >= 2 {
			p.AddRing(fgbLineString(raw, 0, uint32(raw.XyLength()/2)))
		}
		return p
	}
	start := uint32(0)
	for i := 0; i < raw.EndsLength(); i++ {
		end := raw.Ends(i)
		p.AddRing(fgbLineString(raw, start, end))
		start = end
	}
	return p
}

func lineStringXY(l *LineString) []float64 {
	xy := make([]float64, 0, l.NumPoints()*2)
	for i := 0; i < l.NumPoints(); i++ {
		x, y := l.PointAt(i)
		xy = append(xy, x, y)
	}
	return xy
}

func polygonXYEnds(p *Polygon) ([]float64, []uint32) {
	total := 0
	rings := make([]*LineString, 0, 1+p.NumInteriorRings())
	if r := p.ExteriorRing(); r != nil {
		rings = append(rings, r)
	}
	for i := 0; i < p.NumInteriorRings(); i++ {
		rings = append(rings, p.InteriorRing(i))
	}
	for _, r := range rings {
		total += r.NumPoints()
	}

	xy := make([]float64, 0, total*2)
	ends := make([]uint32, 0, len(rings))
	cumulative := uint32(0)
	for _, r := range rings {
		xy = append(xy, lineStringXY(r)...)
		cumulative += uint32(r.NumPoints())
		ends = append(ends, cumulative)
	}
	return xy, ends
}
