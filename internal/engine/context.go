package engine

// Context is the per-tick query handle passed to every update hook. It
// replaces a stored back-pointer from sprites to the Manager: hooks get
// read access to input, timing and siblings, plus the few mutations the
// loop allows (spawning, killing by name, requesting exit). A Context is
// only valid for the duration of the tick it was handed out for.
type Context struct {
	m *Manager

	// Input is the snapshot polled at the start of this tick.
	Input State

	// Tick counts completed loop iterations since Run started.
	Tick uint64
}

// ScreenSize returns the dimensions of the frame buffer being composited.
func (c *Context) ScreenSize() (width, height int) {
	return c.m.frame.width, c.m.frame.height
}

// ActualFPS returns the frame rate measured over the previous tick.
func (c *Context) ActualFPS() float64 {
	return c.m.actualFPS
}

// Sprites returns the entities currently registered, in insertion order.
// The slice is a copy; the entities are not.
func (c *Context) Sprites() []Entity {
	return c.m.Sprites()
}

// Named returns all live entities whose sprite carries the given name.
func (c *Context) Named(name string) []Entity {
	var out []Entity
	for _, e := range c.m.sprites {
		s := e.Sprite()
		if s.alive && s.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// Spawn registers a new entity from inside an update hook. The entity is
// rendered from this tick on and updated starting next tick.
func (c *Context) Spawn(e Entity) error {
	return c.m.Add(e)
}

// KillNamed marks every entity with the given name dead. Removal happens
// at the end of the tick like any other death.
func (c *Context) KillNamed(name string) {
	for _, e := range c.m.sprites {
		s := e.Sprite()
		if s.Name == name {
			s.Kill()
		}
	}
}

// SetCameraTarget makes compositing follow the given entity from this
// tick on. A nil target restores the static camera.
func (c *Context) SetCameraTarget(e Entity) {
	c.m.SetCameraTarget(e)
}

// Exit asks the Manager to stop. The current tick still composites and
// presents; the loop never starts another one.
func (c *Context) Exit() {
	c.m.Exit()
}
