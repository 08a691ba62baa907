package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jetfleet-backoffice/internal/domain"
)

func TestChecklistMachine_Defaults(t *testing.T) {
	m := NewChecklistMachine(domain.Checklist{})
	c := m.Checklist()

	assert.Equal(t, domain.CheckInStatusPending, c.CheckInStatus)
	assert.Equal(t, domain.CheckOutStatusNotStarted, c.CheckOutStatus)
	assert.NotNil(t, c.CheckInItems)
	assert.NotNil(t, c.CheckOutItems)
}

func TestChecklistMachine_CheckInAutoCompletes(t *testing.T) {
	m := NewChecklistMachine(domain.Checklist{})

	for i, item := range domain.RequiredCheckInItems {
		m.ToggleCheckInItem(item, true)
		if i < len(domain.RequiredCheckInItems)-1 {
			assert.Equal(t, domain.CheckInStatusPending, m.Checklist().CheckInStatus,
				"still pending with %q outstanding", domain.RequiredCheckInItems[i+1])
		}
	}
	assert.Equal(t, domain.CheckInStatusCompleted, m.Checklist().CheckInStatus)

	// Unchecking any required item drops it back to pending.
	m.ToggleCheckInItem("motor", false)
	assert.Equal(t, domain.CheckInStatusPending, m.Checklist().CheckInStatus)
}

func TestChecklistMachine_NonRequiredItemDoesNotRegress(t *testing.T) {
	m := NewChecklistMachine(domain.Checklist{})
	for _, item := range domain.RequiredCheckInItems {
		m.ToggleCheckInItem(item, true)
	}

	m.ToggleCheckInItem("extra", false)
	assert.Equal(t, domain.CheckInStatusCompleted, m.Checklist().CheckInStatus)
}

func TestChecklistMachine_CheckOutProgression(t *testing.T) {
	m := NewChecklistMachine(domain.Checklist{})
	assert.Equal(t, domain.CheckOutStatusNotStarted, m.Checklist().CheckOutStatus)

	m.ToggleCheckOutItem("coletes", true)
	assert.Equal(t, domain.CheckOutStatusInProgress, m.Checklist().CheckOutStatus)

	for _, item := range domain.RequiredCheckOutItems {
		m.ToggleCheckOutItem(item, true)
	}
	assert.Equal(t, domain.CheckOutStatusCompleted, m.Checklist().CheckOutStatus)

	// Unchecking everything returns to not started.
	for _, item := range domain.RequiredCheckOutItems {
		m.ToggleCheckOutItem(item, false)
	}
	assert.Equal(t, domain.CheckOutStatusNotStarted, m.Checklist().CheckOutStatus)
}

func TestChecklistMachine_ManualOverrideLostOnNextToggle(t *testing.T) {
	m := NewChecklistMachine(domain.Checklist{})
	for _, item := range domain.RequiredCheckInItems {
		m.ToggleCheckInItem(item, true)
	}

	// Operator downgrades manually with every item still checked.
	m.SetCheckInStatus(domain.CheckInStatusPending)
	assert.Equal(t, domain.CheckInStatusPending, m.Checklist().CheckInStatus)

	// Any toggle re-runs the derivation and silently re-advances.
	m.ToggleCheckInItem("extra", true)
	assert.Equal(t, domain.CheckInStatusCompleted, m.Checklist().CheckInStatus)
}

func TestChecklistMachine_MissingItems(t *testing.T) {
	m := NewChecklistMachine(domain.Checklist{})
	m.ToggleCheckInItem("coletes", true)
	m.ToggleCheckInItem("chave", true)

	missing := m.MissingCheckInItems()
	assert.Len(t, missing, len(domain.RequiredCheckInItems)-2)
	assert.NotContains(t, missing, "coletes")
	assert.Contains(t, missing, "horimetro")

	for _, item := range domain.RequiredCheckInItems {
		m.ToggleCheckInItem(item, true)
	}
	assert.Empty(t, m.MissingCheckInItems())
}

func TestChecklistMachine_ChecklistReturnsCopy(t *testing.T) {
	m := NewChecklistMachine(domain.Checklist{})
	c := m.Checklist()
	c.CheckInItems["coletes"] = true

	assert.False(t, m.Checklist().CheckInItems["coletes"])
}
