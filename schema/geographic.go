package schema

const (
	HelperProfileCollection = "helperProfile"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoJSON - mongo location format
type GeoJSON struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

func NewGeoJSON(loc Location) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{loc.Longitude, loc.Latitude},
	}
}

// HelperProfile - a helper's last known position, refreshed on every
// dashboard load. Kept in mongo so nearest-helper queries can use the
// 2dsphere index.
type HelperProfile struct {
	HelperID  string   `bson:"helper_id"`
	Phone     string   `bson:"phone"`
	Location  *GeoJSON `bson:"location,omitempty"`
	Timestamp int64    `bson:"ts"`
}
