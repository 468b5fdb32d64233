// Package logring provides a process-wide bounded debug log used by
// overlay widgets: a fixed-capacity ring buffer behind a mutex with an
// explicit init/reset lifecycle.
package logring

import (
	"fmt"
	"sync"
	"time"
)

// Entry is one captured log line
type Entry struct {
	Time time.Time
	Msg  string
}

var (
	mu       sync.Mutex
	entries  []Entry
	start    int
	count    int
	capacity int
)

// Init sets the ring capacity and clears any previous content.
// A capacity of zero disables capture.
func Init(n int) {
	mu.Lock()
	defer mu.Unlock()
	if n < 0 {
		n = 0
	}
	capacity = n
	entries = make([]Entry, n)
	start = 0
	count = 0
}

// Reset drops all captured entries, keeping the capacity
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	start = 0
	count = 0
}

// Push appends a formatted line, evicting the oldest when full
func Push(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if capacity == 0 {
		return
	}
	e := Entry{Time: time.Now(), Msg: fmt.Sprintf(format, args...)}
	if count < capacity {
		entries[(start+count)%capacity] = e
		count++
		return
	}
	entries[start] = e
	start = (start + 1) % capacity
}

// Drain returns all captured entries in order and clears the ring
func Drain() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, entries[(start+i)%capacity])
	}
	start = 0
	count = 0
	return out
}

// Len returns the number of captured entries
func Len() int {
	mu.Lock()
	defer mu.Unlock()
	return count
}
