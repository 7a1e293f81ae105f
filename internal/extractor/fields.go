package extractor

import (
	"strconv"

	"github.com/user/listing-harvester/internal/entity"
)

// metaDescriptionIndex is the position of the description meta tag on detail pages.
const metaDescriptionIndex = 4

const (
	priceMarker = "Ft"
	areaMarker  = "m²"
	roomsMarker = "szoba"

	listingIDSelector = "b.listing-id"
	mapImageSelector  = `[src*="center"]`
)

// Locator finds the raw source string of a field in a document.
type Locator func(d *Document) (string, bool)

// Field describes how one output field is located, parsed and defaulted.
// Fatal fields are the ones a record cannot be trusted without; in strict
// mode a miss on any of them rejects the record.
type Field struct {
	Name    string
	Locate  Locator
	Parse   Parser // nil keeps the located string as is
	Default string
	Fatal   bool
	Assign  func(r *entity.ListingRecord, value string)
}

func textContaining(marker string) Locator {
	return func(d *Document) (string, bool) { return d.FirstTextContaining(marker) }
}

func label(l string) Locator {
	return func(d *Document) (string, bool) { return d.Label(l) }
}

func metaContent(index int) Locator {
	return func(d *Document) (string, bool) { return d.MetaContent(index) }
}

func selectText(selector string) Locator {
	return func(d *Document) (string, bool) { return d.SelectText(selector) }
}

func markupOf(selector string) Locator {
	return func(d *Document) (string, bool) { return d.MarkupOf(selector) }
}

func title(d *Document) (string, bool) { return d.Title() }

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// attribute builds a non-fatal field read from the label/value table.
func attribute(name, hungarianLabel string, assign func(*entity.ListingRecord, string)) Field {
	return Field{Name: name, Locate: label(hungarianLabel), Assign: assign}
}

// DefaultFields returns the field table for ingatlan.com detail pages.
func DefaultFields() []Field {
	return []Field{
		{
			Name:   "district",
			Locate: metaContent(metaDescriptionIndex),
			Parse:  parseDistrict,
			Assign: func(r *entity.ListingRecord, v string) { r.District = v },
		},
		{
			Name:   "city_area",
			Locate: metaContent(metaDescriptionIndex),
			Parse:  parseCityArea,
			Assign: func(r *entity.ListingRecord, v string) { r.CityArea = v },
		},
		{
			Name:   "title",
			Locate: title,
			Assign: func(r *entity.ListingRecord, v string) { r.Title = v },
		},
		{
			Name:   "price",
			Locate: textContaining(priceMarker),
			Parse:  parsePrice,
			Fatal:  true,
			Assign: func(r *entity.ListingRecord, v string) { r.Price = v },
		},
		{
			Name:   "area",
			Locate: textContaining(areaMarker),
			Parse:  parseArea,
			Fatal:  true,
			Assign: func(r *entity.ListingRecord, v string) { r.Area = v },
		},
		{
			Name:   "rooms_text",
			Locate: textContaining(roomsMarker),
			Assign: func(r *entity.ListingRecord, v string) { r.RoomsText = v },
		},
		{
			Name:    "full_rooms",
			Locate:  textContaining(roomsMarker),
			Parse:   parseFullRooms,
			Default: "0",
			Fatal:   true,
			Assign:  func(r *entity.ListingRecord, v string) { r.FullRooms = atoi(v) },
		},
		{
			Name:    "half_rooms",
			Locate:  textContaining(roomsMarker),
			Parse:   parseHalfRooms,
			Default: "0",
			Fatal:   true,
			Assign:  func(r *entity.ListingRecord, v string) { r.HalfRooms = atoi(v) },
		},
		{
			Name:   "latitude",
			Locate: markupOf(mapImageSelector),
			Parse:  parseLatitude,
			Fatal:  true,
			Assign: func(r *entity.ListingRecord, v string) { r.Latitude = v },
		},
		{
			Name:   "longitude",
			Locate: markupOf(mapImageSelector),
			Parse:  parseLongitude,
			Fatal:  true,
			Assign: func(r *entity.ListingRecord, v string) { r.Longitude = v },
		},
		{
			Name:   "listing_id",
			Locate: selectText(listingIDSelector),
			Fatal:  true,
			Assign: func(r *entity.ListingRecord, v string) { r.ListingID = v },
		},
		attribute("condition", "Ingatlan állapota", func(r *entity.ListingRecord, v string) { r.Condition = v }),
		attribute("floor", "Emelet", func(r *entity.ListingRecord, v string) { r.Floor = v }),
		attribute("building_storeys", "Épület szintjei", func(r *entity.ListingRecord, v string) { r.BuildingStoreys = v }),
		attribute("lift", "Lift", func(r *entity.ListingRecord, v string) { r.Lift = v }),
		attribute("ceiling_height", "Belmagasság", func(r *entity.ListingRecord, v string) { r.CeilingHeight = v }),
		attribute("heating", "Fűtés", func(r *entity.ListingRecord, v string) { r.Heating = v }),
		attribute("air_conditioning", "Légkondicionáló", func(r *entity.ListingRecord, v string) { r.AirConditioning = v }),
		attribute("bath_toilet", "Fürdő és WC", func(r *entity.ListingRecord, v string) { r.BathToilet = v }),
		attribute("orientation", "Tájolás", func(r *entity.ListingRecord, v string) { r.Orientation = v }),
		attribute("view", "Kilátás", func(r *entity.ListingRecord, v string) { r.View = v }),
		{
			Name:   "balcony",
			Locate: label("Erkély"),
			Parse:  parseBalcony,
			Assign: func(r *entity.ListingRecord, v string) { r.Balcony = v },
		},
		attribute("parking", "Parkolás", func(r *entity.ListingRecord, v string) { r.Parking = v }),
		attribute("attic", "Tetőtér", func(r *entity.ListingRecord, v string) { r.Attic = v }),
		attribute("utility_class", "Komfort", func(r *entity.ListingRecord, v string) { r.UtilityClass = v }),
	}
}
