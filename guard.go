package xtd

// Finally creates a Guard that runs f once when its Run method is invoked,
// typically via defer:
//
//	g := xtd.Finally(cleanup)
//	defer g.Run()
//
// Call Dismiss to cancel the hook, for example once ownership of the guarded
// resource has been handed off successfully.
func Finally(f func()) *Guard {
	return &Guard{f: f}
}

// Guard runs a hook at scope exit unless dismissed. It exists for the cases
// where a one-off cleanup does not justify a dedicated wrapper type with its
// own Close method.
type Guard struct {
	f    func()
	done bool
}

// Run executes the hook if the Guard is still armed. Subsequent calls are
// no-ops, so a Guard can be run early and still be safely deferred.
func (g *Guard) Run() {
	if g.done || g.f == nil {
		return
	}
	g.done = true
	g.f()
}

// Dismiss disarms the Guard without running the hook.
func (g *Guard) Dismiss() {
	g.done = true
}
