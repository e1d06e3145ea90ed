package engine

import "fmt"

// Side identifies which edge of a sprite a collision happened on.
type Side int

const (
	SideUp Side = iota + 1
	SideLeft
	SideDown
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideUp:
		return "Up"
	case SideLeft:
		return "Left"
	case SideDown:
		return "Down"
	case SideRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Entity is what the Manager schedules: sprite state plus a per-tick
// update hook. Application types embed *Sprite and override Update;
// *Sprite itself satisfies Entity with a no-op hook, so passive sprites
// (scenery, pickups with timers) need no wrapper type.
type Entity interface {
	// Sprite exposes the engine-owned state of the entity.
	Sprite() *Sprite

	// Update runs once per tick after velocity integration and animation
	// advance. It receives a Context for input, siblings and timing.
	// A returned error terminates the loop.
	Update(ctx *Context) error
}

// Sprite is a positioned, animated, layered entity. Rendering state
// (position, bounds, velocity, layer, colourkey) is plain fields;
// animation bookkeeping is engine-owned and driven through
// SetupAnimation and the per-tick advance.
type Sprite struct {
	// Name allows lookup of siblings through Context.Named. Optional.
	Name string

	// Position of the top-left corner, in pixels. May leave the screen;
	// compositing clips.
	X, Y int

	// Bounding box used for collision and clamping.
	W, H int

	// Velocity in pixels per tick, added to the position by the engine
	// once per tick before Update runs.
	VX, VY int

	// Layer is the render priority: higher layers draw later, on top.
	Layer int

	// ColourKey is the pixel value treated as transparent while
	// compositing, or NoColourKey for an opaque sprite.
	ColourKey int

	// Overlay sprites draw after all non-overlay sprites regardless of
	// layer and are by convention excluded from gameplay collision
	// (HUD text, frame counters).
	Overlay bool

	images        []*Bitmap
	frameIndex    int
	frameStart    int
	frameCount    int
	ticksPerFrame int
	tickCounter   int
	loop          bool

	alive     bool
	killAfter int // ticks until self-kill, -1 when disabled
}

// NewSprite creates a sprite with the given bounds and animation frames.
// The animation defaults to cycling all frames, one tick per frame,
// looping; SetupAnimation narrows it. A single frame means a static
// sprite.
func NewSprite(w, h int, images ...*Bitmap) (*Sprite, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("engine: sprite bounds %dx%d: %w", w, h, ErrConfig)
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("engine: sprite needs at least one frame: %w", ErrConfig)
	}
	return &Sprite{
		W:             w,
		H:             h,
		ColourKey:     NoColourKey,
		images:        images,
		frameCount:    len(images),
		ticksPerFrame: 1,
		loop:          true,
		alive:         true,
		killAfter:     -1,
	}, nil
}

// MustSprite is NewSprite that panics on error, for statically-known
// sprite definitions.
func MustSprite(w, h int, images ...*Bitmap) *Sprite {
	s, err := NewSprite(w, h, images...)
	if err != nil {
		panic(err)
	}
	return s
}

// Sprite implements Entity.
func (s *Sprite) Sprite() *Sprite {
	return s
}

// Update is the default no-op hook. Application types embedding Sprite
// shadow it with their own logic.
func (s *Sprite) Update(ctx *Context) error {
	return nil
}

// SetupAnimation restricts the animation to the sub-range
// [start, start+count) of the frame list, advancing every ticksPerFrame
// ticks. When loop is false the animation clamps at the last frame of
// the range. The current frame resets to start.
func (s *Sprite) SetupAnimation(start, count, ticksPerFrame int, loop bool) error {
	if ticksPerFrame <= 0 {
		return fmt.Errorf("engine: ticks per frame %d: %w", ticksPerFrame, ErrConfig)
	}
	if count <= 0 || start < 0 || start+count > len(s.images) {
		return fmt.Errorf("engine: animation range [%d,%d) outside %d frames: %w",
			start, start+count, len(s.images), ErrConfig)
	}
	s.frameStart = start
	s.frameCount = count
	s.ticksPerFrame = ticksPerFrame
	s.loop = loop
	s.frameIndex = start
	s.tickCounter = 0
	return nil
}

// advanceAnimation steps the animation clock by one tick. Called by the
// Manager every tick for every live sprite.
func (s *Sprite) advanceAnimation() {
	if s.frameCount <= 1 {
		return
	}
	s.tickCounter++
	if s.tickCounter < s.ticksPerFrame {
		return
	}
	s.tickCounter = 0

	last := s.frameStart + s.frameCount - 1
	switch {
	case s.frameIndex < last:
		s.frameIndex++
	case s.loop:
		s.frameIndex = s.frameStart
	}
}

// FrameIndex returns the index of the current animation frame.
func (s *Sprite) FrameIndex() int {
	return s.frameIndex
}

// CurrentFrame returns the bitmap to composite this tick, or nil for a
// sprite with no renderable image.
func (s *Sprite) CurrentFrame() *Bitmap {
	if len(s.images) == 0 {
		return nil
	}
	return s.images[s.frameIndex]
}

// SetFrames replaces the sprite's frame list and resets the animation to
// cycle all new frames, one tick per frame, looping. Meant for sprites
// that exclusively own a redrawn image, such as HUD text overlays;
// shared bitmaps themselves stay immutable.
func (s *Sprite) SetFrames(frames ...*Bitmap) error {
	if len(frames) == 0 {
		return fmt.Errorf("engine: sprite needs at least one frame: %w", ErrConfig)
	}
	s.images = frames
	s.frameIndex = 0
	s.frameStart = 0
	s.frameCount = len(frames)
	s.ticksPerFrame = 1
	s.tickCounter = 0
	s.loop = true
	return nil
}

// ClampPosition clips the sprite position so the whole bounding box
// stays inside [minX, maxX) x [minY, maxY). Utility for update hooks;
// the engine never clamps automatically.
func (s *Sprite) ClampPosition(minX, minY, maxX, maxY int) {
	if s.X > maxX-s.W {
		s.X = maxX - s.W
	}
	if s.X < minX {
		s.X = minX
	}
	if s.Y > maxY-s.H {
		s.Y = maxY - s.H
	}
	if s.Y < minY {
		s.Y = minY
	}
}

// ClampVelocity clips both velocity components into the given ranges.
func (s *Sprite) ClampVelocity(minVX, maxVX, minVY, maxVY int) {
	if s.VX < minVX {
		s.VX = minVX
	}
	if s.VX > maxVX {
		s.VX = maxVX
	}
	if s.VY < minVY {
		s.VY = minVY
	}
	if s.VY > maxVY {
		s.VY = maxVY
	}
}

// CollidesWith reports whether the bounding boxes of the two sprites
// overlap with positive area. Touching edges do not collide. Callers
// conventionally skip overlay sprites; the engine does not enforce it.
func (s *Sprite) CollidesWith(other *Sprite) bool {
	if other == nil || other == s {
		return false
	}
	if s.X >= other.X+other.W || other.X >= s.X+s.W {
		return false
	}
	if s.Y >= other.Y+other.H || other.Y >= s.Y+s.H {
		return false
	}
	return true
}

// CollisionSide reports which edge of s the other sprite penetrated and
// by how many pixels. ok is false when the sprites do not overlap.
func (s *Sprite) CollisionSide(other *Sprite) (side Side, depth int, ok bool) {
	if !s.CollidesWith(other) {
		return 0, 0, false
	}

	// Centre offsets, doubled to stay in integers.
	diffX := 2*s.X + s.W - (2*other.X + other.W)
	diffY := 2*s.Y + s.H - (2*other.Y + other.H)

	// Penetration depth along each axis.
	penX := min(s.X+s.W, other.X+other.W) - max(s.X, other.X)
	penY := min(s.Y+s.H, other.Y+other.H) - max(s.Y, other.Y)

	if penY <= penX {
		if diffY >= 0 {
			return SideUp, penY, true
		}
		return SideDown, penY, true
	}
	if diffX >= 0 {
		return SideLeft, penX, true
	}
	return SideRight, penX, true
}

// Kill marks the sprite dead. It immediately stops appearing in
// Context.Named lookups; the Manager removes it at the end-of-tick sweep
// and it is never composited again.
func (s *Sprite) Kill() {
	s.alive = false
}

// KillAfter schedules the sprite to die n ticks from now. The countdown
// runs in the engine's per-tick routine, before the update hook.
func (s *Sprite) KillAfter(n int) {
	s.killAfter = n
}

// Alive reports whether the sprite is still live.
func (s *Sprite) Alive() bool {
	return s.alive
}

// tickRoutine is the engine-owned per-tick step: velocity integration,
// deferred kill countdown, animation advance. Runs before Update.
func (s *Sprite) tickRoutine() {
	s.X += s.VX
	s.Y += s.VY
	if s.killAfter >= 0 {
		s.killAfter--
		if s.killAfter <= 0 {
			s.alive = false
		}
	}
	s.advanceAnimation()
}
