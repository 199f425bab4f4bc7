// Package stats tracks how many key comparisons each search algorithm performs.
package stats

// Counter is a monotonically increasing comparison count that can be reset.
type Counter struct {
	n int64
}

// Increment adds one comparison.
func (c *Counter) Increment() {
	c.n++
}

// Read returns the current count.
func (c *Counter) Read() int64 {
	return c.n
}

func (c *Counter) reset() {
	c.n = 0
}

// Counters groups the comparison counters of one session.
// Each session constructs its own instance; there is no shared global state.
type Counters struct {
	ArraySequential Counter // linear search over the array store
	ArrayBinary     Counter // binary search over the array store
	ListSequential  Counter // linear scans of the linked store
}

// New returns a zeroed set of counters.
func New() *Counters {
	return &Counters{}
}

// ResetAll zeroes every counter.
func (c *Counters) ResetAll() {
	c.ArraySequential.reset()
	c.ArrayBinary.reset()
	c.ListSequential.reset()
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	ArraySequential int64 `yaml:"array_sequential"`
	ArrayBinary     int64 `yaml:"array_binary"`
	ListSequential  int64 `yaml:"list_sequential"`
}

// Snapshot returns the current counter values.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		ArraySequential: c.ArraySequential.Read(),
		ArrayBinary:     c.ArrayBinary.Read(),
		ListSequential:  c.ListSequential.Read(),
	}
}
