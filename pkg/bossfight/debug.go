package bossfight

import (
	"github.com/davecgh/go-spew/spew"
)

// DumpState renders the public snapshot for logs and debugging.
func (t *Table) DumpState() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return spew.Sdump(t.publicSnapshotLocked())
}
