package undofsm

// history keeps the undo log and the redo buffer as two independent slices.
// Both are ordered oldest first.
type history struct {
	undo  []Entry
	redo  []Entry
	limit int // 0 means unbounded

	// floor is the state undo lands on once undo is empty
	floor   StateID
	initial StateID
}

func newHistory(initial StateID, limit int) *history {
	if limit < 0 {
		limit = 0
	}
	return &history{
		limit:   limit,
		floor:   initial,
		initial: initial,
	}
}

// push records a forward move and invalidates pending redo
func (h *history) push(e Entry) {
	h.undo = append(h.undo, e)
	h.redo = nil

	if h.limit > 0 && len(h.undo) > h.limit {
		drop := len(h.undo) - h.limit
		h.floor = h.undo[drop-1].State
		h.undo = append([]Entry(nil), h.undo[drop:]...)
	}
}

// dropRedo discards pending redo entries without recording anything
func (h *history) dropRedo() {
	h.redo = nil
}

// stepBack moves the newest undo entry to the front of redo and returns
// the state the machine should be in afterwards.
func (h *history) stepBack() (StateID, bool) {
	n := len(h.undo)
	if n == 0 {
		return "", false
	}

	e := h.undo[n-1]
	h.undo = h.undo[:n-1]
	h.redo = append([]Entry{e}, h.redo...)

	return h.head(), true
}

// replay moves every redo entry back onto undo in chronological order
func (h *history) replay() (StateID, bool) {
	if len(h.redo) == 0 {
		return "", false
	}

	h.undo = append(h.undo, h.redo...)
	h.redo = nil

	return h.head(), true
}

// head returns the state reached by the newest undo entry, or the floor
func (h *history) head() StateID {
	if n := len(h.undo); n > 0 {
		return h.undo[n-1].State
	}
	return h.floor
}

func (h *history) clear() {
	h.undo = nil
	h.redo = nil
	h.floor = h.initial
}

func (h *history) entries() []Entry {
	return append([]Entry{}, h.undo...)
}

func (h *history) pending() []Entry {
	return append([]Entry{}, h.redo...)
}
