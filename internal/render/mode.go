// Package render holds the two-state render-mode machine and the document
// page regions that the PDF pipeline captures.
package render

import "sync"

// Mode selects how a region renders its editable values.
type Mode int

const (
	// ModeEdit draws interactive-looking fields bound to the live values.
	ModeEdit Mode = iota
	// ModeExport draws the same values as static text, without field
	// chrome, for a print-faithful capture.
	ModeExport
)

func (m Mode) String() string {
	if m == ModeExport {
		return "export"
	}

	return "edit"
}

// Controller guards the edit/export toggle. Export is only ever entered
// through BeginExport, whose restore func must run on every exit path so
// the state can never be left stuck in export.
type Controller struct {
	mu   sync.Mutex
	mode Mode
}

func NewController() *Controller {
	return &Controller{mode: ModeEdit}
}

func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.mode
}

// BeginExport switches to export mode and returns the restore func. The
// restore is idempotent; callers defer it immediately.
func (c *Controller) BeginExport() (restore func()) {
	c.mu.Lock()
	c.mode = ModeExport
	c.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			c.mu.Lock()
			c.mode = ModeEdit
			c.mu.Unlock()
		})
	}
}
