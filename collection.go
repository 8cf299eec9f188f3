package geom

// GeometryCollection is an ordered, heterogeneous sequence of geometries.
type GeometryCollection struct {
	srsRef
	geomSlice
}

// Type implements Geometry.
func (g *GeometryCollection) Type() Type { return TypeGeometryCollection }

// Append adds a child geometry. The collection takes ownership.
func (g *GeometryCollection) Append(child Geometry) error {
	if child == nil {
		return ErrNilGeometry
	}
	g.add(child)
	return nil
}

// Empty implements Geometry.
func (g *GeometryCollection) Empty() bool { return g.empty() }

// WKBSize implements Geometry.
func (g *GeometryCollection) WKBSize() int { return collectionWKBSize(&g.geomSlice) }

func (g *GeometryCollection) decodeWKB(data []byte) (int, error) {
	geoms, off, err := decodeWKBCollection(data, TypeGeometryCollection, TypeUnknown)
	if err != nil {
		return 0, err
	}
	g.geoms = geoms
	return off, nil
}

func (g *GeometryCollection) decodeWKT(c *wktCursor) error {
	if err := c.keyword("GEOMETRYCOLLECTION"); err != nil {
		return err
	}
	empty, err := c.emptyOrOpen()
	if err != nil {
		return err
	}
	g.geoms = nil
	if empty {
		return nil
	}
	for {
		child, err := decodeWKTGeometry(c)
		if err != nil {
			return err
		}
		g.add(child)
		switch c.token() {
		case ",":
		case ")":
			return nil
		default:
			return ErrCorruptData
		}
	}
}

func (g *GeometryCollection) appendWKB(dst []byte) []byte {
	return appendWKBCollection(dst, TypeGeometryCollection, &g.geomSlice)
}

func (g *GeometryCollection) appendWKT(dst []byte) []byte {
	if g.Empty() {
		return append(dst, "GEOMETRYCOLLECTION EMPTY"...)
	}
	dst = append(dst, "GEOMETRYCOLLECTION ("...)
	for i, child := range g.geoms {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = child.appendWKT(dst)
	}
	return append(dst, ')')
}

func (g *GeometryCollection) release() {
	g.releaseAll()
	g.srs = nil
}

// collectionWKBSize sums the header, child count and child sizes.
func collectionWKBSize(s *geomSlice) int {
	n := wkbHeaderSize + 4
	for _, child := range s.geoms {
		n += child.WKBSize()
	}
	return n
}

// decodeWKBCollection reads a container geometry: its own header, a child
// count, and count complete child geometries each with their own header.
// want constrains the flattened child type; TypeUnknown accepts any child.
func decodeWKBCollection(data []byte, self, want Type) ([]Geometry, int, error) {
	order, typ, off, err := wkbHeader(data)
	if err != nil {
		return nil, 0, err
	}
	if typ.Flatten() != self {
		return nil, 0, ErrCorruptData
	}
	count, off, err := wkbU32(data, off, order)
	if err != nil {
		return nil, 0, err
	}
	// Each child carries at least its own header.
	if off+int(count)*wkbHeaderSize > len(data) {
		return nil, 0, ErrNotEnoughData
	}
	geoms := make([]Geometry, 0, count)
	for i := uint32(0); i < count; i++ {
		_, childType, _, err := wkbHeader(data[off:])
		if err != nil {
			return nil, 0, err
		}
		if want != TypeUnknown && childType.Flatten() != want {
			return nil, 0, ErrCorruptData
		}
		child := New(childType)
		if child == nil {
			return nil, 0, ErrUnsupportedType
		}
		consumed, err := child.decodeWKB(data[off:])
		if err != nil {
			return nil, 0, err
		}
		off += consumed
		geoms = append(geoms, child)
	}
	return geoms, off, nil
}

// appendWKBCollection writes a container header, child count and children.
func appendWKBCollection(dst []byte, self Type, s *geomSlice) []byte {
	dst = appendWKBHeader(dst, self)
	dst = appendWKBU32(dst, uint32(len(s.geoms)))
	for _, child := range s.geoms {
		dst = child.appendWKB(dst)
	}
	return dst
}
