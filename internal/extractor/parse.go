package extractor

import (
	"regexp"
	"strings"
)

var (
	districtRegexp   = regexp.MustCompile(`(\d+\.[\s\x{00a0}]*ker).let`)
	cityAreaRegexp   = regexp.MustCompile(`\(([A-Z].+)\)`)
	priceRegexp      = regexp.MustCompile(`(\d+,?\d+)`)
	digitGroupRegexp = regexp.MustCompile(`(\d)[\s\x{00a0}\x{2009}\x{202f}]+(\d)`)
	areaRegexp       = regexp.MustCompile(`(\d+)`)
	fullRoomsRegexp  = regexp.MustCompile(`^(\d+)`)
	halfRoomsRegexp  = regexp.MustCompile(`\+(\s?)(\d?).+fél`)
	latitudeRegexp   = regexp.MustCompile(`(47\.\d+),`)
	longitudeRegexp  = regexp.MustCompile(`(19\.\d+)`)
	balconyRegexp    = regexp.MustCompile(`(\d+\.?\d+)`)
)

// Parser turns a located raw string into the field value. ok is false when
// the field pattern does not match.
type Parser func(raw string) (value string, ok bool)

func submatch(re *regexp.Regexp) Parser {
	return func(raw string) (string, bool) {
		m := re.FindStringSubmatch(raw)
		if m == nil {
			return "", false
		}
		return m[1], true
	}
}

func parseDistrict(raw string) (string, bool) {
	return submatch(districtRegexp)(stripNewlines(raw))
}

func parseCityArea(raw string) (string, bool) {
	return submatch(cityAreaRegexp)(stripNewlines(raw))
}

// parsePrice reads the first number of a price fragment. Thousands are
// grouped with spaces on the site ("31 900 000 Ft") and a comma marks the
// decimal part of abbreviated prices ("31,9 millió Ft").
func parsePrice(raw string) (string, bool) {
	s := collapseDigitGroups(raw)
	m := priceRegexp.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return strings.ReplaceAll(m[1], ",", "."), true
}

func parseArea(raw string) (string, bool) {
	return submatch(areaRegexp)(raw)
}

// parseFullRooms never misses: a description without a leading count has zero full rooms.
func parseFullRooms(raw string) (string, bool) {
	if m := fullRoomsRegexp.FindStringSubmatch(raw); m != nil {
		return m[1], true
	}
	return "0", true
}

// parseHalfRooms reads "N + M fél". "+ fél" without a count means one half room.
// The count group decides, not the optional space before it, so "3+2 fél" is 2.
func parseHalfRooms(raw string) (string, bool) {
	m := halfRoomsRegexp.FindStringSubmatch(raw)
	switch {
	case m == nil:
		return "0", true
	case m[2] == "":
		return "1", true
	default:
		return m[2], true
	}
}

func parseLatitude(raw string) (string, bool) {
	return submatch(latitudeRegexp)(raw)
}

func parseLongitude(raw string) (string, bool) {
	return submatch(longitudeRegexp)(raw)
}

// parseBalcony keeps the balcony size; a value without one ("nincs") becomes "0".
func parseBalcony(raw string) (string, bool) {
	if m := balconyRegexp.FindStringSubmatch(raw); m != nil {
		return m[1], true
	}
	return "0", true
}

func collapseDigitGroups(s string) string {
	for {
		next := digitGroupRegexp.ReplaceAllString(s, "$1$2")
		if next == s {
			return s
		}
		s = next
	}
}

func stripNewlines(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}
