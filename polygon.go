package geom

// Polygon is one exterior ring plus zero or more interior rings. Rings are
// linestring-shaped; the first ring added becomes the exterior.
type Polygon struct {
	srsRef
	rings []*LineString
}

// Type implements Geometry.
func (p *Polygon) Type() Type { return TypePolygon }

// ExteriorRing returns the exterior ring, or nil for an empty polygon.
func (p *Polygon) ExteriorRing() *LineString {
	if len(p.rings) == 0 {
		return nil
	}
	return p.rings[0]
}

// NumInteriorRings returns the number of interior rings.
func (p *Polygon) NumInteriorRings() int {
	if len(p.rings) == 0 {
		return 0
	}
	return len(p.rings) - 1
}

// InteriorRing returns the i-th interior ring.
func (p *Polygon) InteriorRing(i int) *LineString {
	return p.rings[i+1]
}

// AddRing appends a ring. The first ring added is the exterior; later rings
// are interior. The polygon takes ownership of the ring, it is not copied.
func (p *Polygon) AddRing(ring *LineString) {
	if ring == nil {
		return
	}
	p.rings = append(p.rings, ring)
}

// Empty implements Geometry.
func (p *Polygon) Empty() bool { return len(p.rings) == 0 }

// WKBSize implements Geometry.
func (p *Polygon) WKBSize() int {
	n := wkbHeaderSize + 4
	for _, r := range p.rings {
		n += 4 + 16*r.NumPoints()
	}
	return n
}

func (p *Polygon) decodeWKB(data []byte) (int, error) {
	order, typ, off, err := wkbHeader(data)
	if err != nil {
		return 0, err
	}
	if typ.Flatten() != TypePolygon {
		return 0, ErrCorruptData
	}
	count, off, err := wkbU32(data, off, order)
	if err != nil {
		return 0, err
	}
	extra := typ.extraDims()
	p.rings = nil
	for i := uint32(0); i < count; i++ {
		ring := &LineString{}
		off, err = ring.decodeWKBBody(data, off, order, extra)
		if err != nil {
			return 0, err
		}
		p.AddRing(ring)
	}
	return off, nil
}

func (p *Polygon) decodeWKT(c *wktCursor) error {
	if err := c.keyword("POLYGON"); err != nil {
		return err
	}
	empty, err := c.emptyOrOpen()
	if err != nil {
		return err
	}
	if empty {
		p.rings = nil
		return nil
	}
	return p.decodeWKTBody(c)
}

// decodeWKTBody reads the ring list after its opening parenthesis has been
// consumed. Multi-polygon parsing shares it.
func (p *Polygon) decodeWKTBody(c *wktCursor) error {
	p.rings = nil
	for {
		if err := c.expect("("); err != nil {
			return err
		}
		ring := &LineString{}
		if err := ring.decodeWKTBody(c); err != nil {
			return err
		}
		p.AddRing(ring)
		switch c.token() {
		case ",":
		case ")":
			return nil
		default:
			return ErrCorruptData
		}
	}
}

func (p *Polygon) appendWKB(dst []byte) []byte {
	dst = appendWKBHeader(dst, TypePolygon)
	return p.appendWKBBody(dst)
}

func (p *Polygon) appendWKBBody(dst []byte) []byte {
	dst = appendWKBU32(dst, uint32(len(p.rings)))
	for _, r := range p.rings {
		dst = r.appendWKBBody(dst)
	}
	return dst
}

func (p *Polygon) appendWKT(dst []byte) []byte {
	if p.Empty() {
		return append(dst, "POLYGON EMPTY"...)
	}
	dst = append(dst, "POLYGON "...)
	return p.appendWKTBody(dst)
}

func (p *Polygon) appendWKTBody(dst []byte) []byte {
	dst = append(dst, '(')
	for i, r := range p.rings {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = r.appendWKTBody(dst)
	}
	return append(dst, ')')
}

func (p *Polygon) release() {
	for _, r := range p.rings {
		r.release()
	}
	p.rings = nil
	p.srs = nil
}
