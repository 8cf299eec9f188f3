package geom

// Point is a single 2D position.
type Point struct {
	srsRef
	x, y float64
	set  bool
}

// NewPoint creates a point at x, y.
func NewPoint(x, y float64) *Point {
	p := &Point{}
	p.SetXY(x, y)
	return p
}

// Type implements Geometry.
func (p *Point) Type() Type { return TypePoint }

// X returns the point's X ordinate.
func (p *Point) X() float64 { return p.x }

// Y returns the point's Y ordinate.
func (p *Point) Y() float64 { return p.y }

// SetXY assigns the point's position, making it non-empty.
func (p *Point) SetXY(x, y float64) {
	p.x, p.y = x, y
	p.set = true
}

// Empty implements Geometry.
func (p *Point) Empty() bool { return !p.set }

// WKBSize implements Geometry.
func (p *Point) WKBSize() int { return wkbHeaderSize + 16 }

func (p *Point) decodeWKB(data []byte) (int, error) {
	order, typ, off, err := wkbHeader(data)
	if err != nil {
		return 0, err
	}
	if typ.Flatten() != TypePoint {
		return 0, ErrCorruptData
	}
	x, y, off, err := wkbCoord(data, off, order, typ.extraDims())
	if err != nil {
		return 0, err
	}
	p.SetXY(x, y)
	return off, nil
}

func (p *Point) decodeWKT(c *wktCursor) error {
	if err := c.keyword("POINT"); err != nil {
		return err
	}
	empty, err := c.emptyOrOpen()
	if err != nil {
		return err
	}
	if empty {
		p.x, p.y, p.set = 0, 0, false
		return nil
	}
	x, y, err := c.coord()
	if err != nil {
		return err
	}
	if err := c.expect(")"); err != nil {
		return err
	}
	p.SetXY(x, y)
	return nil
}

func (p *Point) appendWKB(dst []byte) []byte {
	dst = appendWKBHeader(dst, TypePoint)
	dst = appendWKBF64(dst, p.x)
	return appendWKBF64(dst, p.y)
}

func (p *Point) appendWKT(dst []byte) []byte {
	if p.Empty() {
		return append(dst, "POINT EMPTY"...)
	}
	dst = append(dst, "POINT ("...)
	dst = appendWKTCoord(dst, p.x, p.y)
	return append(dst, ')')
}

func (p *Point) release() {
	*p = Point{}
}
