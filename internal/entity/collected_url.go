package entity

// CollectedURL is an absolute detail-page URL found on a results page.
type CollectedURL struct {
	Page      int
	ListingID string
	URL       string
}
