// Package config provides YAML-based configuration loading for the
// simulation. All gameplay tuning lives here; code holds no magic
// numbers for things a config file can say.
package config

// Config contains every tunable of a match. Distances are field units,
// speeds are field units per second, durations are seconds.
type Config struct {
	Field       FieldConfig      `yaml:"field"`
	Drones      DroneConfig      `yaml:"drones"`
	Waves       WaveConfig       `yaml:"waves"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Turret      TurretConfig     `yaml:"turret"`
	Scoring     ScoringConfig    `yaml:"scoring"`
	Options     OptionsConfig    `yaml:"options"`
}

// FieldConfig defines the fixed logical playfield. Rendering projects
// it onto whatever cell grid the terminal provides.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DroneConfig defines drone movement and lifecycle parameters.
type DroneConfig struct {
	Speed          float64 `yaml:"speed"`
	FallSpeed      float64 `yaml:"fall_speed"`
	FallDrift      float64 `yaml:"fall_drift"` // fraction of Speed kept while falling
	Size           float64 `yaml:"size"`
	HitRadiusRatio float64 `yaml:"hit_radius_ratio"` // of Size
	GroundY        float64 `yaml:"ground_y"`
	NearGroundY    float64 `yaml:"near_ground_y"`
	GroundOffset   float64 `yaml:"ground_offset"` // visual drop on ground impact
	LeftBoundary   float64 `yaml:"left_boundary"` // target dives past this x
	OffscreenLeft  float64 `yaml:"offscreen_left"`
	ExplosionSecs  float64 `yaml:"explosion_secs"`
}

// WaveConfig defines wave sizing, spawn placement, and the respawn delay.
type WaveConfig struct {
	MinCount    int     `yaml:"min_count"`
	MaxCount    int     `yaml:"max_count"`
	SpawnX      float64 `yaml:"spawn_x"`
	SpawnPitch  float64 `yaml:"spawn_pitch"` // horizontal stagger between drones
	SpawnYMin   float64 `yaml:"spawn_y_min"`
	SpawnYBand  float64 `yaml:"spawn_y_band"`
	RespawnSecs float64 `yaml:"respawn_secs"`
}

// ProjectileConfig defines shell ballistics.
type ProjectileConfig struct {
	Speed        float64 `yaml:"speed"`
	MaxLifetime  float64 `yaml:"max_lifetime"`
	BoundsMargin float64 `yaml:"bounds_margin"` // expiry margin past the field edge
	Spread       float64 `yaml:"spread"`        // aim offset of the volley's outer shots
}

// TurretConfig defines the gun's placement and fire animation rate.
type TurretConfig struct {
	X             float64 `yaml:"x"`
	Size          float64 `yaml:"size"`
	GroundMargin  float64 `yaml:"ground_margin"`
	FireFrameSecs float64 `yaml:"fire_frame_secs"`
}

// ScoringConfig defines the ammo economy and score rewards.
type ScoringConfig struct {
	StartAmmo    int `yaml:"start_ammo"`
	MaxAmmo      int `yaml:"max_ammo"`
	ShotCost     int `yaml:"shot_cost"`
	HitReward    int `yaml:"hit_reward"`
	CorrectScore int `yaml:"correct_score"`
	WrongPenalty int `yaml:"wrong_penalty"` // negative
}

// OptionsConfig defines the player-facing gameplay toggles.
type OptionsConfig struct {
	AllowNegative bool `yaml:"allow_negative"`
	ShowBreakdown bool `yaml:"show_breakdown"`
	DefaultLevel  int  `yaml:"default_level"` // 0 asks, 1-3 starts immediately
}
