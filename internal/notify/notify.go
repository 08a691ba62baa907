// Package notify carries the transient success/failure banners surfaced
// after every sync operation.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindFailure Kind = "error"
)

type Notification struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Center holds at most one active banner. A new banner replaces the
// previous one; banners auto-dismiss after the configured TTL and can be
// dismissed manually at any time.
type Center struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Notification
	timer   *time.Timer
}

func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = 4 * time.Second
	}
	return &Center{ttl: ttl}
}

func (c *Center) Success(message string) {
	c.publish(KindSuccess, message)
}

func (c *Center) Failure(message string) {
	c.publish(KindFailure, message)
}

func (c *Center) publish(kind Kind, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := &Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
	}
	c.current = n

	if c.timer != nil {
		c.timer.Stop()
	}
	id := n.ID
	c.timer = time.AfterFunc(c.ttl, func() {
		c.dismissIf(id)
	})
}

// Dismiss clears the active banner immediately.
func (c *Center) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// dismissIf clears the banner only when it is still the one the timer
// was armed for, so a newer banner is not cut short.
func (c *Center) dismissIf(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil && c.current.ID == id {
		c.current = nil
	}
}

// Current returns a copy of the active banner, or nil.
func (c *Center) Current() *Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	n := *c.current
	return &n
}
