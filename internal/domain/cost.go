package domain

// Cost is an expense or investment record. PaidValue may legitimately be
// lower than Value while IsPaid is false (partial payment); once IsPaid is
// true the remaining balance is treated as settled regardless of the
// numeric paid value.
type Cost struct {
	ID           string  `json:"id"`
	Category     string  `json:"category"`
	Value        float64 `json:"value"`
	PaidValue    float64 `json:"paidValue"`
	Responsible  string  `json:"responsible"`
	PurchaseDate string  `json:"purchaseDate"` // ISO date, yyyy-mm-dd
	IsPaid       bool    `json:"isPaid"`
	Observations string  `json:"observations"`
}
