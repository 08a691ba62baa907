package domain

// SingletonID is the fixed primary key of the singleton configuration
// records (company profile and price table).
const SingletonID = "1"

type CompanyProfile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	LogoURL  string `json:"logoUrl"`
}

// PriceTable holds the default pricing tier for each rental type.
type PriceTable struct {
	ID       string  `json:"id"`
	HalfHour float64 `json:"halfHour"`
	OneHour  float64 `json:"oneHour"`
	TwoHours float64 `json:"twoHours"`
	Daily    float64 `json:"daily"`
}

// PriceFor returns the default price for a rental type, zero when the
// type is unknown.
func (p PriceTable) PriceFor(t RentalType) float64 {
	switch t {
	case RentalTypeHalfHour:
		return p.HalfHour
	case RentalTypeOneHour:
		return p.OneHour
	case RentalTypeTwoHours:
		return p.TwoHours
	case RentalTypeDaily:
		return p.Daily
	default:
		return 0
	}
}
