package command

// historyCapacity is the fixed size of the command history ring.
const historyCapacity = 10

// History is a ring buffer of the last entered commands, with
// shell-style prev/next cursor navigation over it. Navigation state
// resets whenever a new command is added.
type History struct {
	entries  [historyCapacity]string
	count    int
	head     int
	navIndex int
}

// NewHistory returns an empty command history.
func NewHistory() *History {
	return &History{navIndex: -1}
}

// Add records cmd as the most recent entry, recycling the oldest slot
// once the ring is full. Empty commands are ignored.
func (h *History) Add(cmd string) {
	h.navIndex = -1
	if cmd == "" {
		return
	}
	if h.count < historyCapacity {
		h.entries[(h.head+h.count)%historyCapacity] = cmd
		h.count++
		return
	}
	h.entries[h.head] = cmd
	h.head = (h.head + 1) % historyCapacity
}

// entryAt returns the entry navIndex steps back from the newest (0 =
// newest, count-1 = oldest).
func (h *History) entryAt(navIndex int) string {
	return h.entries[(h.head+h.count-1-navIndex+historyCapacity)%historyCapacity]
}

// Prev steps one entry further into the past, stopping at the oldest
// entry. ok is false if history is empty.
func (h *History) Prev() (string, bool) {
	if h.count == 0 {
		return "", false
	}
	if h.navIndex < h.count-1 {
		h.navIndex++
	}
	return h.entryAt(h.navIndex), true
}

// Next steps one entry back toward the present. Once it steps past
// the newest entry, navigation resets and ok is false.
func (h *History) Next() (string, bool) {
	if h.navIndex <= 0 {
		h.navIndex = -1
		return "", false
	}
	h.navIndex--
	return h.entryAt(h.navIndex), true
}

// ResetNav clears navigation state without touching stored entries,
// e.g. when the user starts typing a fresh command.
func (h *History) ResetNav() {
	h.navIndex = -1
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return h.count
}
