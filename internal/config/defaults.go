package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

//go:embed defaults/beans.yaml
var defaultBeansYAML []byte

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

// DefaultEngineConfig returns the default platform configuration:
// the classic 128x64 monochrome module at 20 ticks per second.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Screen: ScreenConfig{
			Width:      128,
			Height:     64,
			Background: 0,
		},
		TickRate: 20,
	}
}

// DefaultBeansConfig returns the default Beans app configuration.
func DefaultBeansConfig() BeansConfig {
	return BeansConfig{
		Player: BeansPlayer{
			Speed:          3,
			AnimationTicks: 5,
		},
		Beans: BeansSpawn{
			SpawnEveryTicks: 20,
			LifetimeTicks:   100,
			MaxOnScreen:     5,
		},
	}
}

// DefaultBounceConfig returns the default Bounce app configuration.
func DefaultBounceConfig() BounceConfig {
	return BounceConfig{
		Block: BounceBlock{
			SpeedX:         2,
			SpeedY:         1,
			AnimationTicks: 4,
		},
		Sparks: BounceSparks{
			TicksPerFrame: 2,
			LifetimeTicks: 8,
		},
	}
}
