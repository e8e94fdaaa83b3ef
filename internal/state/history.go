package state

// History is the ordered list of committed items plus the redo buffer.
// Committed order is paint order. History is not safe for concurrent use;
// it belongs to the goroutine that handles input.
type History struct {
	committed []Item
	undone    []Item

	// OnChange is called after every mutation that changed the history.
	OnChange func()
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Append commits item and drops the redo buffer.
func (h *History) Append(item Item) {
	h.committed = append(h.committed, item)
	h.undone = nil
	Logger().Debug("history append", "id", item.ID(), "kind", item.Kind(), "len", len(h.committed))
	h.changed()
}

// Undo moves the newest committed item onto the redo buffer.
// It returns false, without notifying, when there is nothing to undo.
func (h *History) Undo() bool {
	n := len(h.committed)
	if n == 0 {
		return false
	}
	item := h.committed[n-1]
	h.committed[n-1] = nil
	h.committed = h.committed[:n-1]
	h.undone = append(h.undone, item)
	Logger().Debug("history undo", "id", item.ID(), "len", len(h.committed))
	h.changed()
	return true
}

// Redo restores the most recently undone item.
// It returns false, without notifying, when the redo buffer is empty.
func (h *History) Redo() bool {
	n := len(h.undone)
	if n == 0 {
		return false
	}
	item := h.undone[n-1]
	h.undone[n-1] = nil
	h.undone = h.undone[:n-1]
	h.committed = append(h.committed, item)
	Logger().Debug("history redo", "id", item.ID(), "len", len(h.committed))
	h.changed()
	return true
}

// Clear empties both the history and the redo buffer.
func (h *History) Clear() {
	h.committed = nil
	h.undone = nil
	Logger().Debug("history clear")
	h.changed()
}

// Items returns a copy of the committed items in paint order.
func (h *History) Items() []Item {
	items := make([]Item, len(h.committed))
	copy(items, h.committed)
	return items
}

func (h *History) Len() int      { return len(h.committed) }
func (h *History) CanUndo() bool { return len(h.committed) > 0 }
func (h *History) CanRedo() bool { return len(h.undone) > 0 }

func (h *History) changed() {
	if h.OnChange != nil {
		h.OnChange()
	}
}
