package types

// OpeningHours describes one day of a vendor's schedule.
type OpeningHours struct {
	Day      string `json:"day"`
	Open     string `json:"open"`
	Close    string `json:"close"`
	IsClosed bool   `json:"is_closed"`
}
