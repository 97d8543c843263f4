package ecs

// System is a behavior that runs once per frame in its scheduler phase.
// Systems are structs; Query and Resource fields are initialized by the
// scheduler at registration, and any other fields persist between frames.
type System interface {
	Update(tick *Tick)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(tick *Tick)

// Update implements System.
func (f SystemFunc) Update(tick *Tick) {
	f(tick)
}
