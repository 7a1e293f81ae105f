package extractor

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"31 900 000 Ft", "31900000", true},
		{"31\u00a0900\u00a0000 Ft", "31900000", true},
		{"31,9 millió Ft", "31.9", true},
		{"1,234,567 Ft", "1.234", true},
		{"Ár: 120 millió Ft", "120", true},
		{"Ft", "", false},
	}

	for _, tt := range tests {
		got, ok := parsePrice(tt.raw)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parsePrice(%q) = %q, %v; want %q, %v", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseArea(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"55 m²", "55", true},
		{"112 m² alapterület", "112", true},
		{"m²", "", false},
	}

	for _, tt := range tests {
		got, ok := parseArea(tt.raw)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parseArea(%q) = %q, %v; want %q, %v", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseHalfRoomsWithoutSpace(t *testing.T) {
	if got, _ := parseHalfRooms("3+2 fél szoba"); got != "2" {
		t.Errorf("parseHalfRooms(%q) = %q, want %q", "3+2 fél szoba", got, "2")
	}
}

func TestParseRooms(t *testing.T) {
	tests := []struct {
		raw      string
		wantFull string
		wantHalf string
	}{
		{"3 + 1 fél szoba", "3", "1"},
		{"2 szoba", "2", "0"},
		{"4 + fél szoba", "4", "1"},
		{"1 + 2 fél szoba", "1", "2"},
		{"fél szoba", "0", "0"},
	}

	for _, tt := range tests {
		full, _ := parseFullRooms(tt.raw)
		half, _ := parseHalfRooms(tt.raw)
		if full != tt.wantFull || half != tt.wantHalf {
			t.Errorf("rooms(%q) = %s/%s; want %s/%s", tt.raw, full, half, tt.wantFull, tt.wantHalf)
		}
	}
}

func TestParseBalcony(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"5.5 m²", "5.5"},
		{"12 m²", "12"},
		{"nincs", "0"},
		{"van", "0"},
	}

	for _, tt := range tests {
		got, ok := parseBalcony(tt.raw)
		if !ok || got != tt.want {
			t.Errorf("parseBalcony(%q) = %q, %v; want %q", tt.raw, got, ok, tt.want)
		}
	}
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name         string
		meta         string
		wantDistrict string
		wantCityArea string
	}{
		{
			name:         "description",
			meta:         "Eladó 65 m²-es tégla lakás, Budapest VI. kerület\n 6. kerület (Terézváros), 39,9 millió Ft",
			wantDistrict: "6. ker",
			wantCityArea: "Terézváros",
		},
		{
			name:         "no-break space",
			meta:         "Budapest 6.\u00a0kerület (Terézváros)",
			wantDistrict: "6.\u00a0ker",
			wantCityArea: "Terézváros",
		},
		{
			name:         "no space",
			meta:         "Budapest 13.kerület (Angyalföld)",
			wantDistrict: "13.ker",
			wantCityArea: "Angyalföld",
		},
		{
			name: "no district",
			meta: "Eladó lakás Budapesten (budai oldal)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			district, ok := parseDistrict(tt.meta)
			if district != tt.wantDistrict || ok != (tt.wantDistrict != "") {
				t.Errorf("parseDistrict = %q, %v; want %q", district, ok, tt.wantDistrict)
			}
			cityArea, ok := parseCityArea(tt.meta)
			if cityArea != tt.wantCityArea || ok != (tt.wantCityArea != "") {
				t.Errorf("parseCityArea = %q, %v; want %q", cityArea, ok, tt.wantCityArea)
			}
		})
	}
}

func TestParseCoordinates(t *testing.T) {
	markup := `<img src="https://maps.googleapis.com/maps/api/staticmap?center=47.5024853,19.0621734&amp;zoom=15"/>`

	lat, ok := parseLatitude(markup)
	if !ok || lat != "47.5024853" {
		t.Errorf("parseLatitude = %q, %v", lat, ok)
	}
	lon, ok := parseLongitude(markup)
	if !ok || lon != "19.0621734" {
		t.Errorf("parseLongitude = %q, %v", lon, ok)
	}

	if _, ok := parseLatitude(`<img src="staticmap?center=48.1,20.2"/>`); ok {
		t.Error("parseLatitude matched outside the 47.x band")
	}
}
