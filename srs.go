package geom

// SpatialReference identifies the coordinate reference system of a geometry.
// It is externally owned and possibly shared between geometries; this package
// only attaches references to it, never copies or mutates it.
type SpatialReference struct {
	Code        int    // EPSG code (e.g., 4326 for WGS84)
	Name        string // CRS name
	Description string // CRS description
	WKT         string // Well-Known Text representation
}

// WGS84 returns the standard WGS84 spatial reference (EPSG:4326).
func WGS84() *SpatialReference {
	return &SpatialReference{
		Code: 4326,
		Name: "WGS 84",
	}
}
