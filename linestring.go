package geom

import "encoding/binary"

// LineString is an ordered sequence of 2D positions. Polygon rings are
// linestring-shaped and reuse this type.
type LineString struct {
	srsRef
	pts [][2]float64
}

// Type implements Geometry.
func (l *LineString) Type() Type { return TypeLineString }

// NumPoints returns the number of vertices.
func (l *LineString) NumPoints() int { return len(l.pts) }

// PointAt returns the i-th vertex.
func (l *LineString) PointAt(i int) (x, y float64) {
	return l.pts[i][0], l.pts[i][1]
}

// AddPoint appends a vertex.
func (l *LineString) AddPoint(x, y float64) {
	l.pts = append(l.pts, [2]float64{x, y})
}

// Empty implements Geometry.
func (l *LineString) Empty() bool { return len(l.pts) == 0 }

// WKBSize implements Geometry.
func (l *LineString) WKBSize() int { return wkbHeaderSize + 4 + 16*len(l.pts) }

func (l *LineString) decodeWKB(data []byte) (int, error) {
	order, typ, off, err := wkbHeader(data)
	if err != nil {
		return 0, err
	}
	if typ.Flatten() != TypeLineString {
		return 0, ErrCorruptData
	}
	return l.decodeWKBBody(data, off, order, typ.extraDims())
}

// decodeWKBBody reads a headerless point sequence (count plus coordinates).
// Polygon ring decoding shares it.
func (l *LineString) decodeWKBBody(data []byte, off int, order binary.ByteOrder, extra int) (int, error) {
	count, off, err := wkbU32(data, off, order)
	if err != nil {
		return 0, err
	}
	if off+int(count)*(16+8*extra) > len(data) {
		return 0, ErrNotEnoughData
	}
	l.pts = make([][2]float64, 0, count)
	for i := uint32(0); i < count; i++ {
		var x, y float64
		x, y, off, err = wkbCoord(data, off, order, extra)
		if err != nil {
			return 0, err
		}
		l.pts = append(l.pts, [2]float64{x, y})
	}
	return off, nil
}

func (l *LineString) decodeWKT(c *wktCursor) error {
	if err := c.keyword("LINESTRING"); err != nil {
		return err
	}
	empty, err := c.emptyOrOpen()
	if err != nil {
		return err
	}
	if empty {
		l.pts = nil
		return nil
	}
	return l.decodeWKTBody(c)
}

// decodeWKTBody reads the point list after its opening parenthesis has been
// consumed. Ring and multi-linestring parsing share it.
func (l *LineString) decodeWKTBody(c *wktCursor) error {
	l.pts = nil
	for {
		x, y, err := c.coord()
		if err != nil {
			return err
		}
		l.pts = append(l.pts, [2]float64{x, y})
		switch c.token() {
		case ",":
		case ")":
			return nil
		default:
			return ErrCorruptData
		}
	}
}

func (l *LineString) appendWKB(dst []byte) []byte {
	dst = appendWKBHeader(dst, TypeLineString)
	return l.appendWKBBody(dst)
}

func (l *LineString) appendWKBBody(dst []byte) []byte {
	dst = appendWKBU32(dst, uint32(len(l.pts)))
	for _, pt := range l.pts {
		dst = appendWKBF64(dst, pt[0])
		dst = appendWKBF64(dst, pt[1])
	}
	return dst
}

func (l *LineString) appendWKT(dst []byte) []byte {
	if l.Empty() {
		return append(dst, "LINESTRING EMPTY"...)
	}
	dst = append(dst, "LINESTRING "...)
	return l.appendWKTBody(dst)
}

func (l *LineString) appendWKTBody(dst []byte) []byte {
	dst = append(dst, '(')
	for i, pt := range l.pts {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendWKTCoord(dst, pt[0], pt[1])
	}
	return append(dst, ')')
}

func (l *LineString) release() {
	l.pts = nil
	l.srs = nil
}
