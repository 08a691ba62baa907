package domain

// RentalLocation is a filter dimension and a rental field. Names are
// case sensitive but trimmed at mapping time so that " Praia Norte" and
// "Praia Norte" do not produce duplicate filter buckets.
type RentalLocation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
