package screen

import (
	"fmt"
	"strings"

	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/views"
)

// FieldError is a local validation failure rendered next to one field.
// It never reaches the persistence layer.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every failing field of one save attempt.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// OrNil returns nil when no field failed, so callers can use the usual
// err != nil check.
func (e ValidationErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func ValidateRental(r domain.Rental) error {
	var errs ValidationErrors
	if strings.TrimSpace(r.ClientName) == "" {
		errs = append(errs, FieldError{Field: "clientName", Message: "informe o nome do cliente"})
	}
	if strings.TrimSpace(r.Date) == "" {
		errs = append(errs, FieldError{Field: "date", Message: "informe a data"})
	} else if _, ok := views.ParseDateUTC(r.Date); !ok {
		errs = append(errs, FieldError{Field: "date", Message: "data invalida"})
	}
	if r.Value < 0 {
		errs = append(errs, FieldError{Field: "value", Message: "o valor nao pode ser negativo"})
	}
	return errs.OrNil()
}

func ValidateCost(c domain.Cost) error {
	var errs ValidationErrors
	if strings.TrimSpace(c.Category) == "" {
		errs = append(errs, FieldError{Field: "category", Message: "informe a categoria"})
	}
	if c.Value < 0 {
		errs = append(errs, FieldError{Field: "value", Message: "o valor nao pode ser negativo"})
	}
	if c.PaidValue < 0 {
		errs = append(errs, FieldError{Field: "paidValue", Message: "o valor pago nao pode ser negativo"})
	}
	if strings.TrimSpace(c.PurchaseDate) != "" {
		if _, ok := views.ParseDateUTC(c.PurchaseDate); !ok {
			errs = append(errs, FieldError{Field: "purchaseDate", Message: "data invalida"})
		}
	}
	return errs.OrNil()
}

func ValidateLocation(l domain.RentalLocation) error {
	var errs ValidationErrors
	if strings.TrimSpace(l.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "informe o nome do local"})
	}
	return errs.OrNil()
}

func ValidateFleetItem(f domain.FleetItem) error {
	var errs ValidationErrors
	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "informe o nome"})
	}
	if f.Status == "" {
		errs = append(errs, FieldError{Field: "status", Message: "informe o status"})
	}
	return errs.OrNil()
}

// ValidateUserForm covers signup, the admin-added-user form and the
// profile edit. The admin path requires at least one role tag: an empty
// role selection is a validation error, never defaulted. Create paths
// require a password; on edits an empty password means "keep the current
// one" and skips the password rules.
func ValidateUserForm(u domain.User, password, confirmation string, requireRoles, requirePassword bool) error {
	var errs ValidationErrors
	if strings.TrimSpace(u.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "informe o nome"})
	}
	if strings.TrimSpace(u.Email) == "" {
		errs = append(errs, FieldError{Field: "email", Message: "informe o email"})
	} else if !strings.Contains(u.Email, "@") {
		errs = append(errs, FieldError{Field: "email", Message: "email invalido"})
	}
	if requireRoles && u.Roles.IsEmpty() {
		errs = append(errs, FieldError{Field: "roles", Message: "selecione ao menos um perfil"})
	}
	switch {
	case password == "" && confirmation == "":
		if requirePassword {
			errs = append(errs, FieldError{Field: "password", Message: "informe a senha"})
		}
	case password != confirmation:
		errs = append(errs, FieldError{Field: "confirmation", Message: "as senhas nao conferem"})
	case len(password) < 6:
		errs = append(errs, FieldError{Field: "password", Message: "a senha deve ter ao menos 6 caracteres"})
	}
	return errs.OrNil()
}
