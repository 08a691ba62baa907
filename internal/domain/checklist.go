package domain

type CheckInStatus string

const (
	CheckInStatusPending   CheckInStatus = "Pendente"
	CheckInStatusCompleted CheckInStatus = "Concluido"
)

type CheckOutStatus string

const (
	CheckOutStatusNotStarted CheckOutStatus = "Nao Iniciado"
	CheckOutStatusInProgress CheckOutStatus = "Em Andamento"
	CheckOutStatusCompleted  CheckOutStatus = "Concluido"
)

// RequiredCheckInItems are the conferment items that must all be checked
// before check-in auto-advances to Completed.
var RequiredCheckInItems = []string{
	"coletes",
	"chave",
	"casco",
	"motor",
	"combustivel",
	"bateria",
	"horimetro",
}

// RequiredCheckOutItems are the conferment items for the return flow.
var RequiredCheckOutItems = []string{
	"coletes",
	"chave",
	"casco",
	"motor",
	"combustivel",
	"avarias",
}

// Checklist tracks the check-in and check-out conferment of a single
// rental. The two sub-statuses advance independently.
type Checklist struct {
	ID             string          `json:"id"`
	RentalID       string          `json:"rentalId"`
	CheckInStatus  CheckInStatus   `json:"checkInStatus"`
	CheckOutStatus CheckOutStatus  `json:"checkOutStatus"`
	CheckInItems   map[string]bool `json:"checkInItems"`
	CheckOutItems  map[string]bool `json:"checkOutItems"`
	Observations   string          `json:"observations"`
}
