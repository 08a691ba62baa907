// Package screen implements the per-screen view-state machines: the
// generic list/add/edit mode controller every CRUD screen shares, the
// local form validations, and the checklist conferment machine.
package screen

import "sync"

type Mode string

const (
	ModeList Mode = "list"
	ModeAdd  Mode = "add"
	ModeEdit Mode = "edit"
)

// Controller is the list/add/edit mode machine of one CRUD screen.
// Transitions: list --new--> add, list --edit--> edit, add|edit
// --cancel--> list, add|edit --saved--> list. The screen stays in
// add/edit until the sync operation resolves; a failed local validation
// never leaves the form either.
type Controller[T any] struct {
	mu      sync.Mutex
	mode    Mode
	editing *T
}

func NewController[T any]() *Controller[T] {
	return &Controller[T]{mode: ModeList}
}

func (c *Controller[T]) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// New opens a blank form.
func (c *Controller[T]) New() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeAdd
	c.editing = nil
}

// Edit opens the form pre-populated from the selected entity.
func (c *Controller[T]) Edit(entity T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeEdit
	c.editing = &entity
}

// Editing returns the entity being edited, if any.
func (c *Controller[T]) Editing() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editing == nil {
		var zero T
		return zero, false
	}
	return *c.editing, true
}

// Cancel abandons the form and returns to the list.
func (c *Controller[T]) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeList
	c.editing = nil
}

// Validate runs the local validation ahead of a save attempt. On error
// the screen stays in its current mode and the sync operation must not
// be invoked; the error is rendered next to the form.
func (c *Controller[T]) Validate(entity T, validate func(T) error) error {
	if validate == nil {
		return nil
	}
	return validate(entity)
}

// Saved is called once the sync operation resolved; the screen returns
// to the list.
func (c *Controller[T]) Saved() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeList
	c.editing = nil
}
