package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/persistence"
)

func TestMapRecordToRental(t *testing.T) {
	rec := persistence.Record{
		"id":              "r-1",
		"client_name":     "Joao da Silva",
		"client_document": "123.456.789-00",
		"client_phone":    "11999990000",
		"rental_date":     "2026-01-15",
		"rental_type":     "1h",
		"start_time":      "10:00",
		"end_time":        "11:00",
		"status":          "Agendado",
		"location":        " Praia Norte ",
		"payment_method":  "Pix",
		"value":           "250.50",
	}

	r := MapRecordToRental(rec)

	assert.Equal(t, "r-1", r.ID)
	assert.Equal(t, "Joao da Silva", r.ClientName)
	assert.Equal(t, domain.RentalStatusScheduled, r.Status)
	assert.Equal(t, "Praia Norte", r.LocationName, "location is trimmed")
	assert.Equal(t, 250.50, r.Value, "numeric strings are parsed")
	assert.Equal(t, "JS", r.ClientInitials, "initials derived when absent")
}

func TestMapRecordToRental_EmptyRecord(t *testing.T) {
	r := MapRecordToRental(persistence.Record{})

	assert.Empty(t, r.ID)
	assert.Empty(t, r.ClientName)
	assert.Empty(t, r.ClientInitials)
	assert.Zero(t, r.Value)
}

func TestMapRecordToRental_KeepsStoredInitials(t *testing.T) {
	rec := persistence.Record{
		"client_name":     "Joao da Silva",
		"client_initials": "XX",
	}
	r := MapRecordToRental(rec)
	assert.Equal(t, "XX", r.ClientInitials)
}

func TestMapRentalToRecord(t *testing.T) {
	r := domain.Rental{
		ClientName: "Maria",
		Status:     domain.RentalStatusInProgress,
		Value:      100,
	}

	rec := MapRentalToRecord(r)

	_, hasID := rec["id"]
	assert.False(t, hasID, "empty id is omitted so the backend can assign one")
	assert.Equal(t, "Em Andamento", rec["status"])
	assert.Nil(t, rec["rental_date"], "empty date becomes null")

	r.ID = "r-2"
	r.Date = "2026-02-01"
	rec = MapRentalToRecord(r)
	assert.Equal(t, "r-2", rec["id"])
	assert.Equal(t, "2026-02-01", rec["rental_date"])
}

func TestMapRecordToUser_Roles(t *testing.T) {
	rec := persistence.Record{
		"id":        "u-1",
		"email":     " admin@jetfleet.com ",
		"full_name": "Ana Admin",
		"roles":     "Administrador, Gerente",
	}

	u := MapRecordToUser(rec)

	assert.Equal(t, "admin@jetfleet.com", u.Email)
	assert.True(t, u.Roles.Has(domain.RoleAdministrador))
	assert.True(t, u.Roles.Has(domain.RoleGerente))
	assert.False(t, u.Roles.Has(domain.RoleFuncionario))
	assert.True(t, u.Active, "missing is_active defaults to true")
}

func TestMapRecordToUser_RoleMatchingIsExact(t *testing.T) {
	u := MapRecordToUser(persistence.Record{"roles": "Gerente2"})
	assert.False(t, u.Roles.Has(domain.RoleGerente))
	assert.True(t, u.Roles.Has(domain.Role("Gerente2")))
}

func TestMapUserToRecord_PasswordOmittedWhenEmpty(t *testing.T) {
	u := domain.User{
		ID:    "u-1",
		Email: "ana@jetfleet.com",
		Name:  "Ana",
		Roles: domain.RoleSet{domain.RoleGerente},
	}

	rec := MapUserToRecord(u)
	_, present := rec["password"]
	assert.False(t, present, "an empty hash must not overwrite the stored credential")

	u.PasswordHash = "$2a$10$hash"
	rec = MapUserToRecord(u)
	assert.Equal(t, "$2a$10$hash", rec["password"])
}

func TestMapRecordToUser_ActiveFlag(t *testing.T) {
	assert.True(t, MapRecordToUser(persistence.Record{}).Active)
	assert.True(t, MapRecordToUser(persistence.Record{"is_active": nil}).Active)
	assert.True(t, MapRecordToUser(persistence.Record{"is_active": true}).Active)
	assert.False(t, MapRecordToUser(persistence.Record{"is_active": false}).Active)
	assert.False(t, MapRecordToUser(persistence.Record{"is_active": "false"}).Active)
}

func TestMapRecordToCost(t *testing.T) {
	rec := persistence.Record{
		"id":            "c-1",
		"category":      "Combustivel",
		"value":         150.0,
		"paid_value":    "60.25",
		"purchase_date": "2026-03-10",
		"is_paid":       "true",
	}

	c := MapRecordToCost(rec)

	assert.Equal(t, 150.0, c.Value)
	assert.Equal(t, 60.25, c.PaidValue)
	assert.True(t, c.IsPaid)
}

func TestMapRecordToCost_MalformedNumbers(t *testing.T) {
	c := MapRecordToCost(persistence.Record{"value": "abc", "paid_value": nil})
	assert.Zero(t, c.Value)
	assert.Zero(t, c.PaidValue)
}

func TestMapRecordToFleetItem_ActiveDefaultsTrue(t *testing.T) {
	f := MapRecordToFleetItem(persistence.Record{
		"id":       "f-1",
		"name":     "Jet 01",
		"status":   "Disponivel",
		"category": "Jet Ski",
	})

	assert.True(t, f.Active)
	assert.Equal(t, domain.FleetStatusAvailable, f.Status)
	assert.Equal(t, domain.FleetCategoryJetSki, f.Category)
}

func TestMapRecordToChecklist_Items(t *testing.T) {
	t.Run("map payload", func(t *testing.T) {
		c := MapRecordToChecklist(persistence.Record{
			"rental_id":      "r-1",
			"check_in_items": map[string]any{"coletes": true, "chave": false},
		})
		assert.True(t, c.CheckInItems["coletes"])
		assert.False(t, c.CheckInItems["chave"])
	})

	t.Run("jsonb string payload", func(t *testing.T) {
		c := MapRecordToChecklist(persistence.Record{
			"check_in_items": `{"motor":true}`,
		})
		assert.True(t, c.CheckInItems["motor"])
	})

	t.Run("malformed payload", func(t *testing.T) {
		c := MapRecordToChecklist(persistence.Record{
			"check_in_items": `not-json`,
		})
		assert.NotNil(t, c.CheckInItems)
		assert.Empty(t, c.CheckInItems)
	})
}

func TestInitialsFromName(t *testing.T) {
	assert.Equal(t, "JS", initialsFromName("Joao da Silva"))
	assert.Equal(t, "AN", initialsFromName("ana"))
	assert.Equal(t, "A", initialsFromName("a"))
	assert.Equal(t, "", initialsFromName("   "))
}
