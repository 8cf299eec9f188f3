package geom

import (
	"strconv"
	"strings"
)

// wktCursor tracks a position in WKT input text. Only the token reader and
// the per-type importers advance it; a decoder that fails may leave it
// mid-geometry, which is why DecodeWKT reports the tail only on success.
type wktCursor struct {
	s   string
	pos int
}

// rest returns the unconsumed remainder of the input.
func (c *wktCursor) rest() string { return c.s[c.pos:] }

func isWKTSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isWKTDelim(ch byte) bool {
	return ch == '(' || ch == ')' || ch == ','
}

// token reads the next token and advances past it. Delimiters are single
// character tokens; anything else runs to the next space or delimiter.
// Exhausted input yields "".
func (c *wktCursor) token() string {
	for c.pos < len(c.s) && isWKTSpace(c.s[c.pos]) {
		c.pos++
	}
	if c.pos >= len(c.s) {
		return ""
	}
	if isWKTDelim(c.s[c.pos]) {
		c.pos++
		return c.s[c.pos-1 : c.pos]
	}
	start := c.pos
	for c.pos < len(c.s) && !isWKTSpace(c.s[c.pos]) && !isWKTDelim(c.s[c.pos]) {
		c.pos++
	}
	return c.s[start:c.pos]
}

// peekToken reads the next token without consuming it.
func (c *wktCursor) peekToken() string {
	saved := c.pos
	tok := c.token()
	c.pos = saved
	return tok
}

// number reads the next token as a float64.
func (c *wktCursor) number() (float64, error) {
	tok := c.token()
	if tok == "" || isWKTDelim(tok[0]) {
		return 0, ErrCorruptData
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, ErrCorruptData
	}
	return v, nil
}

// expect consumes the next token and checks it is exactly want.
func (c *wktCursor) expect(want string) error {
	if c.token() != want {
		return ErrCorruptData
	}
	return nil
}

// keyword consumes the next token and checks it case-insensitively against
// the variant's WKT keyword.
func (c *wktCursor) keyword(want string) error {
	if !strings.EqualFold(c.token(), want) {
		return ErrCorruptData
	}
	return nil
}

// emptyOrOpen handles the token after a keyword: EMPTY yields (true, nil),
// "(" yields (false, nil), anything else is corrupt.
func (c *wktCursor) emptyOrOpen() (bool, error) {
	tok := c.token()
	if strings.EqualFold(tok, "EMPTY") {
		return true, nil
	}
	if tok == "(" {
		return false, nil
	}
	return false, ErrCorruptData
}

// coord reads an "x y" pair, discarding a trailing Z ordinate when present.
func (c *wktCursor) coord() (x, y float64, err error) {
	x, err = c.number()
	if err != nil {
		return 0, 0, err
	}
	y, err = c.number()
	if err != nil {
		return 0, 0, err
	}
	if tok := c.peekToken(); tok != "" && !isWKTDelim(tok[0]) {
		if _, err := c.number(); err != nil {
			return 0, 0, err
		}
	}
	return x, y, nil
}

func appendWKTFloat(dst []byte, v float64) []byte {
	return strconv.AppendFloat(dst, v, 'g', -1, 64)
}

func appendWKTCoord(dst []byte, x, y float64) []byte {
	dst = appendWKTFloat(dst, x)
	dst = append(dst, ' ')
	return appendWKTFloat(dst, y)
}

// EncodeWKT encodes a geometry to its well known text representation.
// A nil geometry encodes to the empty string.
func EncodeWKT(g Geometry) string {
	if g == nil {
		return ""
	}
	return string(g.appendWKT(nil))
}
