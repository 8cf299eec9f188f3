package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"github.com/paulmach/orb/geojson"
	geom "github.com/tingold/geom"
)

// A small dataset expressed as WKT, the way geometries usually arrive from
// spatial databases and CSV exports.
var features = []struct {
	Name string
	WKT  string
}{
	{"Tokyo", "POINT (139.6917 35.6895)"},
	{"New York", "POINT (-73.9857 40.7484)"},
	{"London", "POINT (-0.1276 51.5074)"},
	{"Paris", "POINT (2.3522 48.8566)"},
	{"Berlin", "POINT (13.4050 52.5200)"},
	{"Sydney", "POINT (151.2093 -33.8688)"},
	{"Cairo", "POINT (31.2357 30.0444)"},
	{"Equator segment", "LINESTRING (-10 0,10 0)"},
	{"Null Island block", "POLYGON ((-1 -1,1 -1,1 1,-1 1,-1 -1))"},
}

func main() {
	srs := geom.WGS84()

	geometries := make([]geom.Geometry, 0, len(features))
	names := make([]string, 0, len(features))
	for _, f := range features {
		g, _, err := geom.DecodeWKT(f.WKT, srs)
		if err != nil {
			log.Fatalf("Failed to decode %q: %v", f.Name, err)
		}
		geometries = append(geometries, g)
		names = append(names, f.Name)
	}

	// Pre-build the FlatGeobuf payload.
	var buf bytes.Buffer
	opts := &geom.FGBOptions{
		Name:         "demo_features",
		Description:  "WKT-decoded demo features",
		IncludeIndex: true,
		SRS:          srs,
	}
	if err := geom.WriteFGB(&buf, geometries, opts); err != nil {
		log.Fatalf("Failed to create FlatGeobuf: %v", err)
	}
	fgbData := buf.Bytes()

	// Pre-build the GeoJSON payload.
	fc := geojson.NewFeatureCollection()
	for i, g := range geometries {
		f := geojson.NewFeature(geom.ToOrb(g))
		f.Properties = geojson.Properties{"name": names[i]}
		fc.Append(f)
	}
	geojsonData, err := json.Marshal(fc)
	if err != nil {
		log.Fatalf("Failed to marshal GeoJSON: %v", err)
	}

	http.HandleFunc("/data.fgb", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Write(fgbData)
	})
	http.HandleFunc("/data.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/geo+json")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Write(geojsonData)
	})

	log.Println("Server starting on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", nil))
}
