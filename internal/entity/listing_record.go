package entity

import (
	"strconv"
	"time"
)

// RecordColumns names the serialised columns of a ListingRecord, in order.
var RecordColumns = []string{
	"listing_id", "price", "area", "full_rooms", "half_rooms", "district", "city_area",
	"condition", "floor", "building_storeys", "lift", "heating", "view", "orientation",
	"parking", "balcony", "air_conditioning", "ceiling_height", "utility_class",
	"bath_toilet", "attic", "latitude", "longitude",
}

// ListingRecord is one extracted detail page. Numeric fields that come from
// free text are kept as their normalised string form so that an unmatched
// field serialises as an empty column.
type ListingRecord struct {
	URL       string
	Title     string
	RoomsText string

	ListingID string
	Price     string
	Area      string
	FullRooms int
	HalfRooms int
	District  string
	CityArea  string

	Condition       string
	Floor           string
	BuildingStoreys string
	Lift            string
	Heating         string
	View            string
	Orientation     string
	Parking         string
	Balcony         string
	AirConditioning string
	CeilingHeight   string
	UtilityClass    string
	BathToilet      string
	Attic           string

	Latitude  string
	Longitude string

	ExtractedAt time.Time
}

// Values returns the record as a fixed-width row matching RecordColumns.
func (r *ListingRecord) Values() []string {
	return []string{
		r.ListingID,
		r.Price,
		r.Area,
		strconv.Itoa(r.FullRooms),
		strconv.Itoa(r.HalfRooms),
		r.District,
		r.CityArea,
		r.Condition,
		r.Floor,
		r.BuildingStoreys,
		r.Lift,
		r.Heating,
		r.View,
		r.Orientation,
		r.Parking,
		r.Balcony,
		r.AirConditioning,
		r.CeilingHeight,
		r.UtilityClass,
		r.BathToilet,
		r.Attic,
		r.Latitude,
		r.Longitude,
	}
}
