package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/listing-harvester/internal/entity"
	"github.com/user/listing-harvester/internal/repository"
)

// ListingRecordRepoImpl upserts extracted records into PostgreSQL.
type ListingRecordRepoImpl struct {
	db *pgxpool.Pool
}

// NewListingRecordRepo creates a new instance of ListingRecordRepoImpl.
func NewListingRecordRepo(db *pgxpool.Pool) *ListingRecordRepoImpl {
	return &ListingRecordRepoImpl{db: db}
}

const upsertListingRecord = `
	INSERT INTO listing_records (
		url, listing_id, title, rooms_text, price, area, full_rooms, half_rooms,
		district, city_area, condition, floor, building_storeys, lift, heating, view,
		orientation, parking, balcony, air_conditioning, ceiling_height, utility_class,
		bath_toilet, attic, latitude, longitude, extracted_at
	)
	VALUES (
		$1, $2, $3, $4, NULLIF($5, '')::numeric, NULLIF($6, '')::numeric, $7, $8,
		$9, $10, $11, $12, $13, $14, $15, $16,
		$17, $18, $19, $20, $21, $22,
		$23, $24, NULLIF($25, '')::double precision, NULLIF($26, '')::double precision, $27
	)
	ON CONFLICT (url) DO UPDATE SET
		listing_id = EXCLUDED.listing_id,
		title = EXCLUDED.title,
		rooms_text = EXCLUDED.rooms_text,
		price = EXCLUDED.price,
		area = EXCLUDED.area,
		full_rooms = EXCLUDED.full_rooms,
		half_rooms = EXCLUDED.half_rooms,
		district = EXCLUDED.district,
		city_area = EXCLUDED.city_area,
		condition = EXCLUDED.condition,
		floor = EXCLUDED.floor,
		building_storeys = EXCLUDED.building_storeys,
		lift = EXCLUDED.lift,
		heating = EXCLUDED.heating,
		view = EXCLUDED.view,
		orientation = EXCLUDED.orientation,
		parking = EXCLUDED.parking,
		balcony = EXCLUDED.balcony,
		air_conditioning = EXCLUDED.air_conditioning,
		ceiling_height = EXCLUDED.ceiling_height,
		utility_class = EXCLUDED.utility_class,
		bath_toilet = EXCLUDED.bath_toilet,
		attic = EXCLUDED.attic,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		extracted_at = EXCLUDED.extracted_at;
`

// Write stores or updates the record for its URL.
func (r *ListingRecordRepoImpl) Write(ctx context.Context, rec *entity.ListingRecord) error {
	_, err := r.db.Exec(ctx, upsertListingRecord,
		rec.URL,
		rec.ListingID,
		rec.Title,
		rec.RoomsText,
		rec.Price,
		rec.Area,
		rec.FullRooms,
		rec.HalfRooms,
		rec.District,
		rec.CityArea,
		rec.Condition,
		rec.Floor,
		rec.BuildingStoreys,
		rec.Lift,
		rec.Heating,
		rec.View,
		rec.Orientation,
		rec.Parking,
		rec.Balcony,
		rec.AirConditioning,
		rec.CeilingHeight,
		rec.UtilityClass,
		rec.BathToilet,
		rec.Attic,
		rec.Latitude,
		rec.Longitude,
		rec.ExtractedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: upsert %s: %w", repository.ErrSinkFailed, rec.URL, err)
	}
	return nil
}
