package domain

// cityNames maps IATA airport codes to display city names for the routes the
// two carriers serve. Presentation only: unknown codes pass through as their
// raw code, never as an error.
var cityNames = map[string]string{
	// Korean airports
	"ICN": "Incheon",
	"PUS": "Busan",
	"TAE": "Daegu",
	// Vietnamese airports
	"HAN": "Hà Nội",
	"SGN": "Hồ Chí Minh",
	"DAD": "Đà Nẵng",
	"HPH": "Hải Phòng",
	"VCA": "Cần Thơ",
	"CXR": "Nha Trang",
	"DLI": "Đà Lạt",
	"VDH": "Đồng Hới",
	"BMV": "Buôn Ma Thuột",
	"VII": "Vinh",
	"UIH": "Quy Nhơn",
	"THD": "Thanh Hóa",
	"PQC": "Phú Quốc",
	"PXU": "Pleiku",
	"HUI": "Huế",
	"VCL": "Tam Kỳ",
	"CAH": "Cà Mau",
	"DIN": "Điện Biên",
	"VKG": "Rạch Giá",
	"TBB": "Tuy Hòa",
	"VDO": "Vân Đồn",
}

// CityName resolves an airport code to its display city name. Codes outside
// the reference pass through unchanged.
func CityName(code string) string {
	if city, ok := cityNames[code]; ok {
		return city
	}
	return code
}

// KnownAirport reports whether the code is in the static reference.
func KnownAirport(code string) bool {
	_, ok := cityNames[code]
	return ok
}
