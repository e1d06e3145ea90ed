// Package config provides YAML-based configuration loading for the
// simulator platform and the demo apps.
package config

// EngineConfig contains platform-level settings: the simulated display
// and the loop cadence.
type EngineConfig struct {
	Screen   ScreenConfig `yaml:"screen"`
	TickRate int          `yaml:"tick_rate"`
}

// ScreenConfig defines the simulated display dimensions in pixels and
// the pixel value the frame clears to.
type ScreenConfig struct {
	Width      int   `yaml:"width"`
	Height     int   `yaml:"height"`
	Background uint8 `yaml:"background"`
}

// BeansConfig contains all configuration for the Beans demo app.
type BeansConfig struct {
	Player BeansPlayer `yaml:"player"`
	Beans  BeansSpawn  `yaml:"beans"`
}

// BeansPlayer defines movement parameters for the player sprite.
type BeansPlayer struct {
	Speed          int `yaml:"speed"`
	AnimationTicks int `yaml:"animation_ticks"`
}

// BeansSpawn defines how bean pickups appear and expire.
type BeansSpawn struct {
	SpawnEveryTicks int `yaml:"spawn_every_ticks"`
	LifetimeTicks   int `yaml:"lifetime_ticks"`
	MaxOnScreen     int `yaml:"max_on_screen"`
}

// BounceConfig contains all configuration for the Bounce demo app.
type BounceConfig struct {
	Block  BounceBlock  `yaml:"block"`
	Sparks BounceSparks `yaml:"sparks"`
}

// BounceBlock defines the bouncing block's motion.
type BounceBlock struct {
	SpeedX         int `yaml:"speed_x"`
	SpeedY         int `yaml:"speed_y"`
	AnimationTicks int `yaml:"animation_ticks"`
}

// BounceSparks defines the one-shot wall-hit effect.
type BounceSparks struct {
	TicksPerFrame int `yaml:"ticks_per_frame"`
	LifetimeTicks int `yaml:"lifetime_ticks"`
}
