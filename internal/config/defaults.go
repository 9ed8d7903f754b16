package config

import (
	_ "embed"
)

//go:embed defaults/skyover.yaml
var defaultYAML []byte

// Default returns the built-in configuration, matching the embedded
// defaults file.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:  1107,
			Height: 694,
		},
		Drones: DroneConfig{
			Speed:          70,
			FallSpeed:      150,
			FallDrift:      0.5,
			Size:           200,
			HitRadiusRatio: 0.3,
			GroundY:        394,
			NearGroundY:    494,
			GroundOffset:   200,
			LeftBoundary:   100,
			OffscreenLeft:  -150,
			ExplosionSecs:  0.3,
		},
		Waves: WaveConfig{
			MinCount:    2,
			MaxCount:    4,
			SpawnX:      1200,
			SpawnPitch:  150,
			SpawnYMin:   80,
			SpawnYBand:  250,
			RespawnSecs: 1.0,
		},
		Projectiles: ProjectileConfig{
			Speed:        3000,
			MaxLifetime:  2.0,
			BoundsMargin: 100,
			Spread:       10,
		},
		Turret: TurretConfig{
			X:             120,
			Size:          300,
			GroundMargin:  40,
			FireFrameSecs: 0.05,
		},
		Scoring: ScoringConfig{
			StartAmmo:    10,
			MaxAmmo:      20,
			ShotCost:     2,
			HitReward:    3,
			CorrectScore: 10,
			WrongPenalty: -5,
		},
		Options: OptionsConfig{
			AllowNegative: false,
			ShowBreakdown: false,
			DefaultLevel:  0,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for writing a starter
// config file.
func DefaultYAML() []byte {
	return defaultYAML
}
