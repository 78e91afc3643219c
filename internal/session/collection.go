// Package session keeps the runs accumulated during one interactive session
// so they can be overlaid and compared. A Collection is owned by whoever
// drives the session and is handed to renderers explicitly.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/ballistic/internal/flight"
)

type Run struct {
	ID         string
	Label      string
	Trajectory *flight.Trajectory
	Created    time.Time
}

type Collection struct {
	mu   sync.RWMutex
	runs []Run
	now  func() time.Time
}

func NewCollection() *Collection {
	return &Collection{now: time.Now}
}

// Add appends a trajectory labelled with the parameters that produced it and
// returns the new run.
func (c *Collection) Add(tr *flight.Trajectory) Run {
	return c.AddLabeled(tr.Params.Label(), tr)
}

func (c *Collection) AddLabeled(label string, tr *flight.Trajectory) Run {
	run := Run{
		ID:         uuid.NewString(),
		Label:      label,
		Trajectory: tr,
		Created:    c.now(),
	}

	c.mu.Lock()
	c.runs = append(c.runs, run)
	c.mu.Unlock()

	return run
}

// Runs returns a snapshot in insertion order.
func (c *Collection) Runs() []Run {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Run, len(c.runs))
	copy(out, c.runs)
	return out
}

func (c *Collection) Get(id string) (Run, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, r := range c.runs {
		if r.ID == id {
			return r, true
		}
	}
	return Run{}, false
}

// Latest returns the most recently added run.
func (c *Collection) Latest() (Run, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.runs) == 0 {
		return Run{}, false
	}
	return c.runs[len(c.runs)-1], true
}

func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.runs)
}

func (c *Collection) Clear() {
	c.mu.Lock()
	c.runs = nil
	c.mu.Unlock()
}
