package state

import (
	"slices"
	"testing"
)

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID()
	}
	return out
}

func newItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = NewSticker(float64(i), float64(i), "x")
	}
	return items
}

func TestHistoryUndoRedoRoundTrip(t *testing.T) {
	for n := 1; n <= 5; n++ {
		h := NewHistory()
		items := newItems(n)
		for _, it := range items {
			h.Append(it)
		}
		want := ids(items)

		if !h.Undo() {
			t.Fatalf("n=%d: Undo() = false", n)
		}
		if got := ids(h.Items()); !slices.Equal(got, want[:n-1]) {
			t.Errorf("n=%d: after undo %v, want %v", n, got, want[:n-1])
		}
		if !h.Redo() {
			t.Fatalf("n=%d: Redo() = false", n)
		}
		if got := ids(h.Items()); !slices.Equal(got, want) {
			t.Errorf("n=%d: after redo %v, want %v", n, got, want)
		}
	}
}

func TestHistoryAppendDropsRedo(t *testing.T) {
	h := NewHistory()
	items := newItems(3)
	x, popped, y := items[0], items[1], items[2]

	h.Append(x)
	h.Append(popped)
	h.Undo()
	h.Append(y)
	if h.Redo() {
		t.Error("Redo() after Append = true")
	}
	want := []string{x.ID(), y.ID()}
	if got := ids(h.Items()); !slices.Equal(got, want) {
		t.Errorf("Items() = %v, want %v", got, want)
	}
}

func TestHistoryClearThenUndo(t *testing.T) {
	h := NewHistory()
	for _, it := range newItems(2) {
		h.Append(it)
	}
	h.Undo()
	h.Clear()
	if h.Undo() || h.Redo() {
		t.Error("undo/redo after Clear did something")
	}
	if h.Len() != 0 || h.CanUndo() || h.CanRedo() {
		t.Errorf("history not empty: len=%d", h.Len())
	}
}

func TestHistoryNotifications(t *testing.T) {
	h := NewHistory()
	var n int
	h.OnChange = func() { n++ }

	h.Undo()
	h.Redo()
	if n != 0 {
		t.Fatalf("no-op undo/redo notified %d times", n)
	}

	h.Append(NewSticker(0, 0, "a"))
	h.Undo()
	h.Redo()
	h.Clear()
	if n != 4 {
		t.Errorf("notifications = %d, want 4", n)
	}
}

func TestHistoryItemsIsSnapshot(t *testing.T) {
	h := NewHistory()
	h.Append(NewSticker(0, 0, "a"))
	items := h.Items()
	items[0] = nil
	if h.Items()[0] == nil {
		t.Error("Items() shares backing array with history")
	}
}

func TestHistoryNotifiesAfterMutation(t *testing.T) {
	h := NewHistory()
	var seen int
	h.OnChange = func() { seen = h.Len() }
	h.Append(NewSticker(0, 0, "a"))
	if seen != 1 {
		t.Errorf("listener saw len %d, want 1", seen)
	}
}
