package geom

// MultiPoint is an ordered sequence of points.
type MultiPoint struct {
	srsRef
	geomSlice
}

// Type implements Geometry.
func (m *MultiPoint) Type() Type { return TypeMultiPoint }

// Append adds a child geometry, which must be a point.
func (m *MultiPoint) Append(child Geometry) error {
	if child == nil {
		return ErrNilGeometry
	}
	if child.Type().Flatten() != TypePoint {
		return ErrUnsupportedType
	}
	m.add(child)
	return nil
}

// Empty implements Geometry.
func (m *MultiPoint) Empty() bool { return m.empty() }

// WKBSize implements Geometry.
func (m *MultiPoint) WKBSize() int { return collectionWKBSize(&m.geomSlice) }

func (m *MultiPoint) decodeWKB(data []byte) (int, error) {
	geoms, off, err := decodeWKBCollection(data, TypeMultiPoint, TypePoint)
	if err != nil {
		return 0, err
	}
	m.geoms = geoms
	return off, nil
}

func (m *MultiPoint) decodeWKT(c *wktCursor) error {
	if err := c.keyword("MULTIPOINT"); err != nil {
		return err
	}
	empty, err := c.emptyOrOpen()
	if err != nil {
		return err
	}
	m.geoms = nil
	if empty {
		return nil
	}
	// Both MULTIPOINT (1 2,3 4) and MULTIPOINT ((1 2),(3 4)) appear in the
	// wild; accept either.
	wrapped := c.peekToken() == "("
	for {
		if wrapped {
			if err := c.expect("("); err != nil {
				return err
			}
		}
		x, y, err := c.coord()
		if err != nil {
			return err
		}
		if wrapped {
			if err := c.expect(")"); err != nil {
				return err
			}
		}
		m.add(NewPoint(x, y))
		switch c.token() {
		case ",":
		case ")":
			return nil
		default:
			return ErrCorruptData
		}
	}
}

func (m *MultiPoint) appendWKB(dst []byte) []byte {
	return appendWKBCollection(dst, TypeMultiPoint, &m.geomSlice)
}

func (m *MultiPoint) appendWKT(dst []byte) []byte {
	if m.Empty() {
		return append(dst, "MULTIPOINT EMPTY"...)
	}
	dst = append(dst, "MULTIPOINT ("...)
	for i, child := range m.geoms {
		if i > 0 {
			dst = append(dst, ',')
		}
		p := child.(*Point)
		dst = appendWKTCoord(dst, p.X(), p.Y())
	}
	return append(dst, ')')
}

func (m *MultiPoint) release() {
	m.releaseAll()
	m.srs = nil
}

// MultiLineString is an ordered sequence of linestrings.
type MultiLineString struct {
	srsRef
	geomSlice
}

// Type implements Geometry.
func (m *MultiLineString) Type() Type { return TypeMultiLineString }

// Append adds a child geometry, which must be a linestring.
func (m *MultiLineString) Append(child Geometry) error {
	if child == nil {
		return ErrNilGeometry
	}
	if child.Type().Flatten() != TypeLineString {
		return ErrUnsupportedType
	}
	m.add(child)
	return nil
}

// Empty implements Geometry.
func (m *MultiLineString) Empty() bool { return m.empty() }

// WKBSize implements Geometry.
func (m *MultiLineString) WKBSize() int { return collectionWKBSize(&m.geomSlice) }

func (m *MultiLineString) decodeWKB(data []byte) (int, error) {
	geoms, off, err := decodeWKBCollection(data, TypeMultiLineString, TypeLineString)
	if err != nil {
		return 0, err
	}
	m.geoms = geoms
	return off, nil
}

func (m *MultiLineString) decodeWKT(c *wktCursor) error {
	if err := c.keyword("MULTILINESTRING"); err != nil {
		return err
	}
	empty, err := c.emptyOrOpen()
	if err != nil {
		return err
	}
	m.geoms = nil
	if empty {
		return nil
	}
	for {
		if err := c.expect("("); err != nil {
			return err
		}
		ls := &LineString{}
		if err := ls.decodeWKTBody(c); err != nil {
			return err
		}
		m.add(ls)
		switch c.token() {
		case ",":
		case ")":
			return nil
		default:
			return ErrCorruptData
		}
	}
}

func (m *MultiLineString) appendWKB(dst []byte) []byte {
	return appendWKBCollection(dst, TypeMultiLineString, &m.geomSlice)
}

func (m *MultiLineString) appendWKT(dst []byte) []byte {
	if m.Empty() {
		return append(dst, "MULTILINESTRING EMPTY"...)
	}
	dst = append(dst, "MULTILINESTRING ("...)
	for i, child := range m.geoms {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = child.(*LineString).appendWKTBody(dst)
	}
	return append(dst, ')')
}

func (m *MultiLineString) release() {
	m.releaseAll()
	m.srs = nil
}

// MultiPolygon is an ordered sequence of polygons.
type MultiPolygon struct {
	srsRef
	geomSlice
}

// Type implements Geometry.
func (m *MultiPolygon) Type() Type { return TypeMultiPolygon }

// Append adds a child geometry, which must be a polygon.
func (m *MultiPolygon) Append(child Geometry) error {
	if child == nil {
		return ErrNilGeometry
	}
	if child.Type().Flatten() != TypePolygon {
		return ErrUnsupportedType
	}
	m.add(child)
	return nil
}

// Empty implements Geometry.
func (m *MultiPolygon) Empty() bool { return m.empty() }

// WKBSize implements Geometry.
func (m *MultiPolygon) WKBSize() int { return collectionWKBSize(&m.geomSlice) }

func (m *MultiPolygon) decodeWKB(data []byte) (int, error) {
	geoms, off, err := decodeWKBCollection(data, TypeMultiPolygon, TypePolygon)
	if err != nil {
		return 0, err
	}
	m.geoms = geoms
	return off, nil
}

func (m *MultiPolygon) decodeWKT(c *wktCursor) error {
	if err := c.keyword("MULTIPOLYGON"); err != nil {
		return err
	}
	empty, err := c.emptyOrOpen()
	if err != nil {
		return err
	}
	m.geoms = nil
	if empty {
		return nil
	}
	for {
		if err := c.expect("("); err != nil {
			return err
		}
		poly := &Polygon{}
		if err := poly.decodeWKTBody(c); err != nil {
			return err
		}
		m.add(poly)
		switch c.token() {
		case ",":
		case ")":
			return nil
		default:
			return ErrCorruptData
		}
	}
}

func (m *MultiPolygon) appendWKB(dst []byte) []byte {
	return appendWKBCollection(dst, TypeMultiPolygon, &m.geomSlice)
}

func (m *MultiPolygon) appendWKT(dst []byte) []byte {
	if m.Empty() {
		return append(dst, "MULTIPOLYGON EMPTY"...)
	}
	dst = append(dst, "MULTIPOLYGON ("...)
	for i, child := range m.geoms {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = child.(*Polygon).appendWKTBody(dst)
	}
	return append(dst, ')')
}

func (m *MultiPolygon) release() {
	m.releaseAll()
	m.srs = nil
}
