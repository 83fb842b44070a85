package debugui

import (
	"time"

	"github.com/plus3/anim/anim"
)

// Entry is one logged milestone with the playback clock it was crossed at.
type Entry struct {
	At        time.Duration
	Milestone anim.Milestone
}

// MilestoneLog is a fixed-capacity rolling log of crossed milestones. Old
// entries are evicted as new ones arrive.
type MilestoneLog struct {
	entries []Entry
	start   int
	count   int
	total   int
}

// NewMilestoneLog creates a log holding up to capacity entries.
func NewMilestoneLog(capacity int) *MilestoneLog {
	if capacity < 1 {
		capacity = 1
	}
	return &MilestoneLog{entries: make([]Entry, capacity)}
}

// Add appends milestones crossed at the given playback clock.
func (l *MilestoneLog) Add(at time.Duration, ms ...anim.Milestone) {
	for _, m := range ms {
		idx := (l.start + l.count) % len(l.entries)
		l.entries[idx] = Entry{At: at, Milestone: m}
		if l.count < len(l.entries) {
			l.count++
		} else {
			l.start = (l.start + 1) % len(l.entries)
		}
		l.total++
	}
}

// Entries returns the retained entries, oldest first.
func (l *MilestoneLog) Entries() []Entry {
	out := make([]Entry, l.count)
	for i := 0; i < l.count; i++ {
		out[i] = l.entries[(l.start+i)%len(l.entries)]
	}
	return out
}

// Total counts every milestone ever added, including evicted ones.
func (l *MilestoneLog) Total() int { return l.total }

// Clear drops all entries and resets the total.
func (l *MilestoneLog) Clear() {
	l.start = 0
	l.count = 0
	l.total = 0
}
