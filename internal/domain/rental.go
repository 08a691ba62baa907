package domain

type RentalStatus string

const (
	RentalStatusScheduled  RentalStatus = "Agendado"
	RentalStatusInProgress RentalStatus = "Em Andamento"
	RentalStatusCompleted  RentalStatus = "Concluido"
	RentalStatusCancelled  RentalStatus = "Cancelado"
)

// Status transitions are unconstrained: any status may be set directly
// by an editor, there is no enforced forward-only progression.

type RentalType string

const (
	RentalTypeHalfHour RentalType = "30min"
	RentalTypeOneHour  RentalType = "1h"
	RentalTypeTwoHours RentalType = "2h"
	RentalTypeDaily    RentalType = "Diaria"
)

type PaymentMethod string

const (
	PaymentMethodPix    PaymentMethod = "Pix"
	PaymentMethodCash   PaymentMethod = "Dinheiro"
	PaymentMethodCard   PaymentMethod = "Cartao"
	PaymentMethodUnpaid PaymentMethod = ""
)

type Rental struct {
	ID             string        `json:"id"`
	ClientName     string        `json:"clientName"`
	ClientDocument string        `json:"clientDocument"`
	ClientPhone    string        `json:"clientPhone"`
	// Two-letter initials shown on the booking table; derived from the
	// client name when the stored record does not carry them.
	ClientInitials string        `json:"clientInitials"`
	Date           string        `json:"date"` // ISO date, yyyy-mm-dd
	Type           RentalType    `json:"type"`
	StartTime      string        `json:"startTime"`
	EndTime        string        `json:"endTime"`
	Status         RentalStatus  `json:"status"`
	LocationName   string        `json:"locationName"`
	Observations   string        `json:"observations"`
	PaymentMethod  PaymentMethod `json:"paymentMethod"`
	Value          float64       `json:"value"`
}
