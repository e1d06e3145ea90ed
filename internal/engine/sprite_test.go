package engine

import (
	"errors"
	"testing"
)

// animSprite builds a sprite with n distinct 1x1 frames.
func animSprite(t *testing.T, n int) *Sprite {
	t.Helper()
	frames := make([]*Bitmap, n)
	for i := range frames {
		frames[i] = MustBitmap(1, 1, []uint8{uint8(i)})
	}
	s, err := NewSprite(1, 1, frames...)
	if err != nil {
		t.Fatalf("NewSprite() failed: %v", err)
	}
	return s
}

func TestNewSpriteValidation(t *testing.T) {
	img := MustBitmap(1, 1, []uint8{1})

	if _, err := NewSprite(0, 4, img); !errors.Is(err, ErrConfig) {
		t.Errorf("zero width should fail with ErrConfig, got %v", err)
	}
	if _, err := NewSprite(4, 0, img); !errors.Is(err, ErrConfig) {
		t.Errorf("zero height should fail with ErrConfig, got %v", err)
	}
	if _, err := NewSprite(4, 4); !errors.Is(err, ErrConfig) {
		t.Errorf("no frames should fail with ErrConfig, got %v", err)
	}
}

func TestSetupAnimationValidation(t *testing.T) {
	s := animSprite(t, 4)

	tests := []struct {
		name                string
		start, count, ticks int
		wantOK              bool
	}{
		{"full range", 0, 4, 1, true},
		{"sub range", 1, 2, 3, true},
		{"zero ticks per frame", 0, 4, 0, false},
		{"negative ticks per frame", 0, 4, -1, false},
		{"zero count", 0, 0, 1, false},
		{"negative start", -1, 2, 1, false},
		{"range past end", 2, 3, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := s.SetupAnimation(tc.start, tc.count, tc.ticks, true)
			if tc.wantOK && err != nil {
				t.Fatalf("SetupAnimation(%d, %d, %d) failed: %v", tc.start, tc.count, tc.ticks, err)
			}
			if !tc.wantOK && !errors.Is(err, ErrConfig) {
				t.Fatalf("SetupAnimation(%d, %d, %d) = %v, expected ErrConfig", tc.start, tc.count, tc.ticks, err)
			}
		})
	}
}

func TestSingleFrameNeverAdvances(t *testing.T) {
	s := animSprite(t, 1)
	for i := 0; i < 100; i++ {
		s.advanceAnimation()
		if s.FrameIndex() != 0 {
			t.Fatalf("single-frame sprite moved to frame %d after %d ticks", s.FrameIndex(), i+1)
		}
	}
}

func TestLoopingAnimationPeriodicity(t *testing.T) {
	tests := []struct {
		name          string
		frames, ticks int
	}{
		{"3 frames every 2 ticks", 3, 2},
		{"4 frames every tick", 4, 1},
		{"2 frames every 5 ticks", 2, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := animSprite(t, tc.frames)
			if err := s.SetupAnimation(0, tc.frames, tc.ticks, true); err != nil {
				t.Fatalf("SetupAnimation() failed: %v", err)
			}

			period := tc.frames * tc.ticks
			for i := 0; i < period; i++ {
				s.advanceAnimation()
				idx := s.FrameIndex()
				if idx < 0 || idx >= tc.frames {
					t.Fatalf("frame index %d escaped range [0, %d)", idx, tc.frames)
				}
			}
			if s.FrameIndex() != 0 {
				t.Errorf("after %d ticks frame index = %d, expected return to 0", period, s.FrameIndex())
			}
		})
	}
}

func TestNonLoopingAnimationClamps(t *testing.T) {
	s := animSprite(t, 3)
	if err := s.SetupAnimation(0, 3, 2, false); err != nil {
		t.Fatalf("SetupAnimation() failed: %v", err)
	}

	prev := s.FrameIndex()
	for i := 0; i < 20; i++ {
		s.advanceAnimation()
		if s.FrameIndex() < prev {
			t.Fatalf("non-looping frame index decreased: %d -> %d", prev, s.FrameIndex())
		}
		prev = s.FrameIndex()
	}
	if s.FrameIndex() != 2 {
		t.Errorf("non-looping animation ended at frame %d, expected 2", s.FrameIndex())
	}
}

func TestAnimationSubRange(t *testing.T) {
	s := animSprite(t, 5)
	if err := s.SetupAnimation(1, 3, 1, true); err != nil {
		t.Fatalf("SetupAnimation() failed: %v", err)
	}
	if s.FrameIndex() != 1 {
		t.Fatalf("SetupAnimation should reset frame index to start, got %d", s.FrameIndex())
	}

	seen := map[int]bool{}
	for i := 0; i < 9; i++ {
		seen[s.FrameIndex()] = true
		s.advanceAnimation()
	}
	for idx := range seen {
		if idx < 1 || idx > 3 {
			t.Errorf("frame index %d escaped sub-range [1, 4)", idx)
		}
	}
}

func TestCollidesWith(t *testing.T) {
	mk := func(x, y, w, h int) *Sprite {
		s := animSprite(t, 1)
		s.X, s.Y, s.W, s.H = x, y, w, h
		return s
	}

	tests := []struct {
		name string
		a, b *Sprite
		want bool
	}{
		{"overlapping", mk(0, 0, 10, 10), mk(5, 5, 10, 10), true},
		{"contained", mk(0, 0, 20, 20), mk(5, 5, 4, 4), true},
		{"single pixel overlap", mk(0, 0, 10, 10), mk(9, 9, 10, 10), true},
		{"separated", mk(0, 0, 4, 4), mk(20, 20, 4, 4), false},
		{"touching right edge", mk(0, 0, 10, 10), mk(10, 0, 10, 10), false},
		{"touching bottom edge", mk(0, 0, 10, 10), mk(0, 10, 10, 10), false},
		{"touching corner", mk(0, 0, 10, 10), mk(10, 10, 10, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.CollidesWith(tc.b); got != tc.want {
				t.Errorf("CollidesWith() = %v, expected %v", got, tc.want)
			}
			// Symmetry
			if got := tc.b.CollidesWith(tc.a); got != tc.want {
				t.Errorf("CollidesWith() (reversed) = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestCollidesWithSelfAndNil(t *testing.T) {
	s := animSprite(t, 1)
	s.W, s.H = 10, 10
	if s.CollidesWith(s) {
		t.Error("sprite should not collide with itself")
	}
	if s.CollidesWith(nil) {
		t.Error("sprite should not collide with nil")
	}
}

func TestCollisionSide(t *testing.T) {
	mk := func(x, y int) *Sprite {
		s := animSprite(t, 1)
		s.X, s.Y, s.W, s.H = x, y, 10, 10
		return s
	}

	tests := []struct {
		name     string
		self     *Sprite
		other    *Sprite
		wantSide Side
	}{
		{"hit from above", mk(0, 8), mk(0, 0), SideUp},
		{"hit from below", mk(0, 0), mk(0, 8), SideDown},
		{"hit from the left", mk(8, 0), mk(0, 0), SideLeft},
		{"hit from the right", mk(0, 0), mk(8, 0), SideRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			side, depth, ok := tc.self.CollisionSide(tc.other)
			if !ok {
				t.Fatal("CollisionSide() reported no overlap")
			}
			if side != tc.wantSide {
				t.Errorf("CollisionSide() = %v, expected %v", side, tc.wantSide)
			}
			if depth != 2 {
				t.Errorf("penetration depth = %d, expected 2", depth)
			}
		})
	}

	// Non-overlapping sprites report no side.
	if _, _, ok := mk(0, 0).CollisionSide(mk(50, 50)); ok {
		t.Error("CollisionSide() reported overlap for separated sprites")
	}
}

func TestClampPosition(t *testing.T) {
	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{"inside stays put", 5, 5, 5, 5},
		{"past right", 30, 5, 12, 5},
		{"past left", -3, 5, 0, 5},
		{"past bottom", 5, 30, 5, 12},
		{"past top", 5, -3, 5, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := animSprite(t, 1)
			s.W, s.H = 4, 4
			s.X, s.Y = tc.x, tc.y
			s.ClampPosition(0, 0, 16, 16)
			if s.X != tc.wantX || s.Y != tc.wantY {
				t.Errorf("ClampPosition moved to (%d, %d), expected (%d, %d)", s.X, s.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestClampVelocity(t *testing.T) {
	s := animSprite(t, 1)
	s.VX, s.VY = 10, -10
	s.ClampVelocity(-3, 3, -3, 3)
	if s.VX != 3 || s.VY != -3 {
		t.Errorf("ClampVelocity gave (%d, %d), expected (3, -3)", s.VX, s.VY)
	}
}

func TestKillAfter(t *testing.T) {
	s := animSprite(t, 1)
	s.KillAfter(3)

	for i := 0; i < 2; i++ {
		s.tickRoutine()
		if !s.Alive() {
			t.Fatalf("sprite died after %d ticks, expected to survive 2", i+1)
		}
	}
	s.tickRoutine()
	if s.Alive() {
		t.Error("sprite still alive after its 3-tick countdown")
	}
}

func TestTickRoutineAppliesVelocity(t *testing.T) {
	s := animSprite(t, 1)
	s.X, s.Y = 10, 10
	s.VX, s.VY = 2, -1
	s.tickRoutine()
	if s.X != 12 || s.Y != 9 {
		t.Errorf("position after velocity = (%d, %d), expected (12, 9)", s.X, s.Y)
	}
}

func TestSetFramesResetsAnimation(t *testing.T) {
	s := animSprite(t, 4)
	if err := s.SetupAnimation(1, 3, 2, false); err != nil {
		t.Fatalf("SetupAnimation() failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		s.advanceAnimation()
	}

	replacement := MustBitmap(1, 1, []uint8{9})
	if err := s.SetFrames(replacement); err != nil {
		t.Fatalf("SetFrames() failed: %v", err)
	}

	if s.FrameIndex() != 0 {
		t.Errorf("FrameIndex() = %d after SetFrames, expected 0", s.FrameIndex())
	}
	if s.CurrentFrame() != replacement {
		t.Error("CurrentFrame() is not the replacement bitmap")
	}

	// A single replacement frame stays put.
	for i := 0; i < 5; i++ {
		s.advanceAnimation()
	}
	if s.FrameIndex() != 0 {
		t.Errorf("single frame advanced to index %d", s.FrameIndex())
	}

	if err := s.SetFrames(); !errors.Is(err, ErrConfig) {
		t.Errorf("empty SetFrames should fail with ErrConfig, got %v", err)
	}
}
