package geom

import (
	"bytes"
	"testing"
)

func decodeAll(t *testing.T, wkts ...string) []Geometry {
	t.Helper()
	geoms := make([]Geometry, 0, len(wkts))
	for _, wkt := range wkts {
		g, _, err := DecodeWKT(wkt, nil)
		if err != nil {
			t.Fatalf("%q: DecodeWKT failed: %v", wkt, err)
		}
		geoms = append(geoms, g)
	}
	return geoms
}

func TestWriteFGB_Points(t *testing.T) {
	geoms := decodeAll(t, "POINT (1 2)", "POINT (3 4)", "POINT (5 6)")

	var buf bytes.Buffer
	if err := WriteFGB(&buf, geoms, nil); err != nil {
		t.Fatalf("WriteFGB failed: %v", err)
	}

	// Check magic bytes
	data := buf.Bytes()
	if len(data) < 8 {
		t.Fatal("output too short")
	}
	expectedMagic := []byte{0x66, 0x67, 0x62, 0x03, 0x66, 0x67, 0x62, 0x00}
	for i, b := range expectedMagic {
		if data[i] != b {
			t.Errorf("magic byte %d: expected 0x%02x, got 0x%02x", i, b, data[i])
		}
	}
}

func TestWriteFGB_Mixed(t *testing.T) {
	geoms := decodeAll(t, "POINT (1 2)", "LINESTRING (0 0,1 1)")

	var buf bytes.Buffer
	if err := WriteFGB(&buf, geoms, nil); err != nil {
		t.Fatalf("WriteFGB failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty output")
	}
}

func TestWriteFGB_Empty(t *testing.T) {
	if err := WriteFGB(&bytes.Buffer{}, nil, nil); err != ErrNilGeometry {
		t.Errorf("expected ErrNilGeometry, got %v", err)
	}
}

func TestReadFGB_Invalid(t *testing.T) {
	if _, err := ReadFGB([]byte("not a flatgeobuf")); err == nil {
		t.Error("expected error for invalid data")
	}
	if _, err := ReadFGB(nil); err == nil {
		t.Error("expected error for empty data")
	}
}

func TestFGB_RoundTrip(t *testing.T) {
	wkts := []string{
		"POLYGON ((0 0,10 0,10 10,0 10,0 0))",
		"POLYGON ((20 20,30 20,30 30,20 30,20 20),(22 22,28 22,28 28,22 28,22 22))",
		"POLYGON ((-10 -10,-5 -10,-5 -5,-10 -5,-10 -10))",
	}
	geoms := decodeAll(t, wkts...)

	opts := &FGBOptions{
		Name:         "test_polygons",
		IncludeIndex: true,
		SRS:          WGS84(),
	}

	var buf bytes.Buffer
	if err := WriteFGB(&buf, geoms, opts); err != nil {
		t.Fatalf("WriteFGB failed: %v", err)
	}

	back, err := ReadFGB(buf.Bytes())
	if err != nil {
		t.Fatalf("ReadFGB failed: %v", err)
	}
	if len(back) != len(geoms) {
		t.Fatalf("expected %d geometries, got %d", len(geoms), len(back))
	}

	// The index may reorder features; compare as a set of WKT strings.
	seen := make(map[string]bool, len(back))
	for _, g := range back {
		if g.Type() != TypePolygon {
			t.Errorf("expected polygon, got %v", g.Type())
		}
		if g.SpatialReference() == nil || g.SpatialReference().Code != 4326 {
			t.Error("expected EPSG:4326 spatial reference from the header CRS")
		}
		seen[EncodeWKT(g)] = true
	}
	for _, wkt := range wkts {
		if !seen[wkt] {
			t.Errorf("geometry missing from round trip: %s", wkt)
		}
	}
}

func TestFGB_RoundTripPoints(t *testing.T) {
	geoms := make([]Geometry, 0, 10)
	for i := 0; i < 10; i++ {
		geoms = append(geoms, NewPoint(float64(i), float64(i*2)))
	}

	var buf bytes.Buffer
	opts := &FGBOptions{Name: "test_points", IncludeIndex: true}
	if err := WriteFGB(&buf, geoms, opts); err != nil {
		t.Fatalf("WriteFGB failed: %v", err)
	}

	back, err := ReadFGB(buf.Bytes())
	if err != nil {
		t.Fatalf("ReadFGB failed: %v", err)
	}
	if len(back) != len(geoms) {
		t.Fatalf("expected %d geometries, got %d", len(geoms), len(back))
	}
	for _, g := range back {
		if _, ok := g.(*Point); !ok {
			t.Errorf("expected *Point, got %T", g)
		}
	}
}
