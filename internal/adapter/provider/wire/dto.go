// Package wire holds the upstream quote-API schema shared by both airline
// adapters, the normalizer that converts it to domain flights, and the HTTP
// client used to fetch it. Field names follow the upstream JSON verbatim.
package wire

// Envelope is the top-level quote-API response. Every numeric field except
// status_code arrives as a string.
type Envelope struct {
	StatusCode int    `json:"status_code"`
	Page       string `json:"trang"`
	TotalPages string `json:"tổng_trang"`
	SessionKey string `json:"session_key"`
	Body       []Fare `json:"body"`
}

// OK reports whether the envelope carries a usable fare list. Anything else
// is an empty result, not an error: the upstream signals "no availability"
// this way.
func (e *Envelope) OK() bool {
	return e.StatusCode == 200 && len(e.Body) > 0
}

// Fare is one priced itinerary: an outbound leg, an optional return leg, and
// the shared fare breakdown.
type Fare struct {
	Outbound Leg      `json:"chiều_đi"`
	Inbound  *Leg     `json:"chiều_về,omitempty"`
	Info     FareInfo `json:"thông_tin_chung"`
}

// Leg is one flight leg. BookingKey is only ever populated on VietJet legs.
type Leg struct {
	Carrier     string `json:"hãng"`
	ID          string `json:"id"`
	From        string `json:"nơi_đi"`
	To          string `json:"nơi_đến"`
	DepartTime  string `json:"giờ_cất_cánh"`
	DepartDate  string `json:"ngày_cất_cánh"`
	DurationMin string `json:"thời_gian_bay"`
	WaitTime    string `json:"thời_gian_chờ"`
	ArriveTime  string `json:"giờ_hạ_cánh"`
	ArriveDate  string `json:"ngày_hạ_cánh"`
	Stops       string `json:"số_điểm_dừng"`
	Stop1       string `json:"điểm_dừng_1"`
	Stop2       string `json:"điểm_dừng_2"`
	TicketClass string `json:"loại_vé"`
	BookingKey  string `json:"BookingKey,omitempty"`
}

// FareInfo is the fare breakdown attached to each itinerary. The baggage
// field doubles as the fare-basis tag ("VFR" marks the 2pc allowance on
// Vietnam Airlines).
type FareInfo struct {
	Price         string `json:"giá_vé"`
	BasePrice     string `json:"giá_vé_gốc"`
	FuelSurcharge string `json:"phí_nhiên_liệu"`
	Taxes         string `json:"thuế_phí_công_cộng"`
	SeatsLeft     string `json:"số_ghế_còn"`
	Baggage       string `json:"hành_lý_vna"`
}
