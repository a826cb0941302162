package engine

// System is one stage of the per-tick update
// Systems hold their World from construction and read the tick delta from it
type System interface {
	Name() string
	// Priority orders systems within a tick, lower first
	Priority() int
	Update()
}
