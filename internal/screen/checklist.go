package screen

import (
	"sync"

	"jetfleet-backoffice/internal/domain"
)

// ChecklistMachine governs the check-in/check-out conferment of one
// rental. Completion is auto-derived from the required items, but an
// operator can also set a status directly. The auto-derivation watcher
// still fires on every item toggle, so a manual downgrade followed by
// any toggle is silently re-advanced — legacy behavior kept on purpose.
type ChecklistMachine struct {
	mu        sync.Mutex
	checklist domain.Checklist
}

func NewChecklistMachine(c domain.Checklist) *ChecklistMachine {
	if c.CheckInItems == nil {
		c.CheckInItems = map[string]bool{}
	}
	if c.CheckOutItems == nil {
		c.CheckOutItems = map[string]bool{}
	}
	if c.CheckInStatus == "" {
		c.CheckInStatus = domain.CheckInStatusPending
	}
	if c.CheckOutStatus == "" {
		c.CheckOutStatus = domain.CheckOutStatusNotStarted
	}
	return &ChecklistMachine{checklist: c}
}

// Checklist returns a copy of the current state.
func (m *ChecklistMachine) Checklist() domain.Checklist {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.copyLocked()
}

func (m *ChecklistMachine) copyLocked() domain.Checklist {
	c := m.checklist
	c.CheckInItems = copyItems(m.checklist.CheckInItems)
	c.CheckOutItems = copyItems(m.checklist.CheckOutItems)
	return c
}

func copyItems(items map[string]bool) map[string]bool {
	out := make(map[string]bool, len(items))
	for k, v := range items {
		out[k] = v
	}
	return out
}

// ToggleCheckInItem sets one conferment item and re-derives the
// check-in status.
func (m *ChecklistMachine) ToggleCheckInItem(key string, checked bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checklist.CheckInItems[key] = checked
	m.deriveCheckInLocked()
}

// ToggleCheckOutItem sets one conferment item and re-derives the
// check-out status.
func (m *ChecklistMachine) ToggleCheckOutItem(key string, checked bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checklist.CheckOutItems[key] = checked
	m.deriveCheckOutLocked()
}

// SetCheckInStatus is the operator's direct status selector. The next
// item toggle re-runs the derivation and may override it.
func (m *ChecklistMachine) SetCheckInStatus(status domain.CheckInStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checklist.CheckInStatus = status
}

// SetCheckOutStatus is the operator's direct status selector for the
// return flow.
func (m *ChecklistMachine) SetCheckOutStatus(status domain.CheckOutStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checklist.CheckOutStatus = status
}

func (m *ChecklistMachine) deriveCheckInLocked() {
	if allChecked(m.checklist.CheckInItems, domain.RequiredCheckInItems) {
		m.checklist.CheckInStatus = domain.CheckInStatusCompleted
	} else {
		m.checklist.CheckInStatus = domain.CheckInStatusPending
	}
}

func (m *ChecklistMachine) deriveCheckOutLocked() {
	switch {
	case allChecked(m.checklist.CheckOutItems, domain.RequiredCheckOutItems):
		m.checklist.CheckOutStatus = domain.CheckOutStatusCompleted
	case anyChecked(m.checklist.CheckOutItems):
		m.checklist.CheckOutStatus = domain.CheckOutStatusInProgress
	default:
		m.checklist.CheckOutStatus = domain.CheckOutStatusNotStarted
	}
}

func allChecked(items map[string]bool, required []string) bool {
	for _, key := range required {
		if !items[key] {
			return false
		}
	}
	return true
}

func anyChecked(items map[string]bool) bool {
	for _, v := range items {
		if v {
			return true
		}
	}
	return false
}

// MissingCheckInItems lists the required check-in items still unchecked.
// A save attempt with missing items triggers a blocking confirmation
// listing them; the operator may go back or save anyway.
func (m *ChecklistMachine) MissingCheckInItems() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return missing(m.checklist.CheckInItems, domain.RequiredCheckInItems)
}

// MissingCheckOutItems lists the required check-out items still
// unchecked.
func (m *ChecklistMachine) MissingCheckOutItems() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return missing(m.checklist.CheckOutItems, domain.RequiredCheckOutItems)
}

func missing(items map[string]bool, required []string) []string {
	var out []string
	for _, key := range required {
		if !items[key] {
			out = append(out, key)
		}
	}
	return out
}
