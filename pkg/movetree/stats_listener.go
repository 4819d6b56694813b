package movetree

// BuildStats is a snapshot of the tree construction progress
type BuildStats struct {
	// Number of nodes in the tree, including the root
	Nodes int

	// Number of frontier nodes expanded so far
	Expansions int

	// Number of branches cut short by the win rule
	Pruned int

	// Depth of the deepest node created so far
	MaxDepth int

	// Milliseconds since the build started
	TimeMs int64
}

// Listener function callback, receives the current build statistics
type ListenerFunc func(BuildStats)

// StatsListener reports progress of a tree build. All callbacks run
// synchronously on the building goroutine.
type StatsListener struct {
	// called when the frontier reaches a new depth
	onDepth ListenerFunc

	// called every N expansions
	onExpand ListenerFunc
	nExpands int

	// called once, when the build finishes
	onDone ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{nExpands: 1}
}

// Attach a callback for frontier depth increases
func (listener *StatsListener) OnDepth(onDepth ListenerFunc) *StatsListener {
	listener.onDepth = onDepth
	return listener
}

// Attach a callback invoked every N expansions (SetExpandInterval to set N),
// a small N on a deep build will slow it down noticeably
func (listener *StatsListener) OnExpand(onExpand ListenerFunc) *StatsListener {
	listener.onExpand = onExpand
	return listener
}

func (listener *StatsListener) SetExpandInterval(n int) *StatsListener {
	if n < 1 {
		n = 1
	}
	listener.nExpands = n
	return listener
}

// Attach a callback called once after the last node is visited
func (listener *StatsListener) OnDone(onDone ListenerFunc) *StatsListener {
	listener.onDone = onDone
	return listener
}

func (listener *StatsListener) invokeExpand(stats BuildStats) {
	if listener.onExpand != nil && stats.Expansions%listener.nExpands == 0 {
		listener.onExpand(stats)
	}
}

func (listener *StatsListener) invokeDepth(stats BuildStats) {
	if listener.onDepth != nil {
		listener.onDepth(stats)
	}
}

func (listener *StatsListener) invokeDone(stats BuildStats) {
	if listener.onDone != nil {
		listener.onDone(stats)
	}
}
