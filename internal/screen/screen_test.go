package screen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jetfleet-backoffice/internal/domain"
)

func TestController_Transitions(t *testing.T) {
	c := NewController[domain.Rental]()
	assert.Equal(t, ModeList, c.Mode())

	c.New()
	assert.Equal(t, ModeAdd, c.Mode())
	_, editing := c.Editing()
	assert.False(t, editing)

	c.Cancel()
	assert.Equal(t, ModeList, c.Mode())

	c.Edit(domain.Rental{ID: "r-1", ClientName: "Joao"})
	assert.Equal(t, ModeEdit, c.Mode())
	r, editing := c.Editing()
	require.True(t, editing)
	assert.Equal(t, "r-1", r.ID)

	c.Saved()
	assert.Equal(t, ModeList, c.Mode())
	_, editing = c.Editing()
	assert.False(t, editing)
}

func TestController_ValidationFailureKeepsMode(t *testing.T) {
	c := NewController[domain.Rental]()
	c.New()

	err := c.Validate(domain.Rental{}, ValidateRental)
	assert.Error(t, err)
	assert.Equal(t, ModeAdd, c.Mode(), "a failed validation never leaves the form")
}

func TestValidateRental(t *testing.T) {
	valid := domain.Rental{ClientName: "Joao", Date: "2026-01-10", Value: 100}
	assert.NoError(t, ValidateRental(valid))

	err := ValidateRental(domain.Rental{Date: "nope", Value: -1})
	require.Error(t, err)
	var errs ValidationErrors
	require.True(t, errors.As(err, &errs))
	fields := fieldNames(errs)
	assert.Contains(t, fields, "clientName")
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "value")
}

func TestValidateCost(t *testing.T) {
	assert.NoError(t, ValidateCost(domain.Cost{Category: "Combustivel", Value: 50}))
	assert.NoError(t, ValidateCost(domain.Cost{Category: "Manutencao", PurchaseDate: ""}), "date is optional")

	err := ValidateCost(domain.Cost{Value: -5, PaidValue: -1, PurchaseDate: "xx"})
	require.Error(t, err)
	var errs ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Len(t, errs, 4)
}

func TestValidateUserForm(t *testing.T) {
	base := domain.User{
		Name:  "Ana",
		Email: "ana@jetfleet.com",
		Roles: domain.RoleSet{domain.RoleFuncionario},
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateUserForm(base, "secret1", "secret1", true, true))
	})

	t.Run("admin path requires roles", func(t *testing.T) {
		noRoles := base
		noRoles.Roles = nil
		err := ValidateUserForm(noRoles, "secret1", "secret1", true, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "perfil")

		// Self-signup path does not.
		assert.NoError(t, ValidateUserForm(noRoles, "secret1", "secret1", false, true))
	})

	t.Run("password rules", func(t *testing.T) {
		err := ValidateUserForm(base, "secret1", "other", true, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "conferem")

		err = ValidateUserForm(base, "abc", "abc", true, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "6 caracteres")
	})

	t.Run("create paths reject an empty password", func(t *testing.T) {
		err := ValidateUserForm(base, "", "", true, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "informe a senha")

		err = ValidateUserForm(base, "", "", false, true)
		require.Error(t, err, "signup needs a password too")
	})

	t.Run("edits keep the current password when none is given", func(t *testing.T) {
		assert.NoError(t, ValidateUserForm(base, "", "", true, false))
	})

	t.Run("email shape", func(t *testing.T) {
		bad := base
		bad.Email = "not-an-email"
		err := ValidateUserForm(bad, "", "", true, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email invalido")
	})
}

func fieldNames(errs ValidationErrors) []string {
	var out []string
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}
