package geom

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestToOrb(t *testing.T) {
	tests := []struct {
		name string
		wkt  string
		want orb.Geometry
	}{
		{"Point", "POINT (1 2)", orb.Point{1, 2}},
		{"LineString", "LINESTRING (0 0,1 1)", orb.LineString{{0, 0}, {1, 1}}},
		{
			"Polygon",
			"POLYGON ((0 0,10 0,10 10,0 0),(2 2,4 2,4 4,2 2))",
			orb.Polygon{
				{{0, 0}, {10, 0}, {10, 10}, {0, 0}},
				{{2, 2}, {4, 2}, {4, 4}, {2, 2}},
			},
		},
		{"MultiPoint", "MULTIPOINT (1 2,3 4)", orb.MultiPoint{{1, 2}, {3, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, err := DecodeWKT(tt.wkt, nil)
			if err != nil {
				t.Fatalf("DecodeWKT failed: %v", err)
			}
			got := ToOrb(g)
			if !orb.Equal(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestToOrb_Nil(t *testing.T) {
	if got := ToOrb(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestToOrb_EmptyPoint(t *testing.T) {
	// orb cannot represent an empty point; it maps to the origin.
	got := ToOrb(&Point{})
	if got != (orb.Point{0, 0}) {
		t.Errorf("expected origin point, got %v", got)
	}
}

func TestFromOrb_RoundTrip(t *testing.T) {
	inputs := []orb.Geometry{
		orb.Point{1, 2},
		orb.LineString{{0, 0}, {1, 1}, {2, 2}},
		orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 0}}},
		orb.MultiPoint{{1, 2}, {3, 4}},
		orb.MultiLineString{{{0, 0}, {1, 1}}, {{5, 5}, {6, 6}}},
		orb.MultiPolygon{{{{0, 0}, {5, 0}, {5, 5}, {0, 0}}}},
		orb.Collection{orb.Point{1, 2}, orb.LineString{{0, 0}, {1, 1}}},
	}

	for _, o := range inputs {
		g := FromOrb(o)
		if g == nil {
			t.Fatalf("%v: FromOrb returned nil", o)
		}
		back := ToOrb(g)
		if !orb.Equal(back, o) {
			t.Errorf("round trip mismatch:\n  in:  %v\n  out: %v", o, back)
		}
	}
}

func TestFromOrb_Ring(t *testing.T) {
	ring := orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 0}}

	g := FromOrb(ring)
	poly, ok := g.(*Polygon)
	if !ok {
		t.Fatalf("expected *Polygon, got %T", g)
	}
	if poly.ExteriorRing() == nil || poly.ExteriorRing().NumPoints() != 4 {
		t.Error("expected a 4-point exterior ring")
	}
}

func TestFromOrb_Bound(t *testing.T) {
	bound := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}}

	g := FromOrb(bound)
	poly, ok := g.(*Polygon)
	if !ok {
		t.Fatalf("expected *Polygon, got %T", g)
	}
	if poly.ExteriorRing().NumPoints() != 5 {
		t.Errorf("expected 5-point rectangle ring, got %d", poly.ExteriorRing().NumPoints())
	}
}

func TestGeoJSON_RoundTrip(t *testing.T) {
	g, _, err := DecodeWKT("POLYGON ((0 0,10 0,10 10,0 10,0 0))", nil)
	if err != nil {
		t.Fatalf("DecodeWKT failed: %v", err)
	}

	data, err := ToGeoJSON(g)
	if err != nil {
		t.Fatalf("ToGeoJSON failed: %v", err)
	}

	back, err := FromGeoJSON(data)
	if err != nil {
		t.Fatalf("FromGeoJSON failed: %v", err)
	}
	if !orb.Equal(ToOrb(back), ToOrb(g)) {
		t.Error("round trip mismatch")
	}
}

func TestFromGeoJSON_Invalid(t *testing.T) {
	if _, err := FromGeoJSON([]byte("not geojson")); err == nil {
		t.Error("expected error for invalid input")
	}
}
