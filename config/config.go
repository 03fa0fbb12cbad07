package config

import (
	"image/color"
	"time"
)

// BossConfig contains boss encounter configuration values
type BossConfig struct {
	MaxHP int

	// Enrage latches once boss HP drops to this fraction of MaxHP
	EnrageThreshold float64
	EnrageSpawnCut  float64 // Fraction removed from the spawn interval on enrage

	// Cosmetic motion (presentation only)
	SwayAmplitude        float64 // pixels
	SwayFrequency        float64 // Hz
	EnragedSwayAmplitude float64
	EnragedSwayFrequency float64
}

// PlayerConfig contains player HP pool configuration values
type PlayerConfig struct {
	MaxHP     int
	MaxShield int
}

// SpawnerConfig contains fragment spawner and difficulty configuration
type SpawnerConfig struct {
	InitialInterval       time.Duration
	MinInterval           time.Duration
	SpeedIncreaseInterval time.Duration
	IntervalStep          time.Duration // Interval removed per difficulty step
	SpeedStep             float64       // Fall speed multiplier added per difficulty step

	MissedFragmentDamage int

	// Fragment geometry
	FragmentSize    float64 // Hit region edge length at scale 1.0
	MinScale        float64
	MaxScale        float64
	SpeedJitter     float64 // +/- fraction applied to type fall speed
	MaxDrift        float64 // Max horizontal speed in pixels per tick
	MaxSpin         float64 // Max rotation speed in radians per tick
	MotionStep      time.Duration
	MaxFrameDelta   time.Duration // Largest dt a single update may advance
	CollisionCell   int
	FragmentsPerCap int // Upper bound of live fragments
}

// ComboConfig contains combo/timing configuration values
type ComboConfig struct {
	Window         time.Duration
	ExtendedWindow time.Duration // Window while comboExtender is active
	Threshold      int           // Every Threshold-th combo is a power click
	DamageBonus    float64       // Damage multiplier added per combo count
}

// SkillConfig contains skill progression configuration values
type SkillConfig struct {
	MaxLevel       int
	ClickGain      int
	PowerClickGain int
	LevelUpStep    int // leveledUp fires when a click crosses a multiple of this

	Milestones []SkillMilestone

	// Tile grid layout
	GridColumns int
	TileWidth   float64
	TileHeight  float64
	TileGap     float64
	GridOriginX float64
	GridOriginY float64
}

// SkillMilestone names a level threshold recorded on the skill
type SkillMilestone struct {
	Level int
	Name  string
}

// PowerUpConfig contains power-up configuration values
type PowerUpConfig struct {
	SpawnChance         float64 // Per scoring action
	FieldLifetime       time.Duration
	EffectDuration      time.Duration
	MultiLevelJump      int
	CriticalPowerChance float64 // Power click roll while criticalHit is active
	CritChanceFactor    float64 // Fragment crit chance multiplier while criticalHit is active
	DoubleExpFactor     int
	Size                float64
}

// AchievementConfig contains achievement tracker configuration values
type AchievementConfig struct {
	ToastDuration time.Duration
}

// EffectsConfig contains presentation bridge configuration values
type EffectsConfig struct {
	SparkDuration     time.Duration
	NumberDuration    time.Duration
	NumberRise        float64
	FlashDuration     time.Duration
	BurstDuration     time.Duration
	CelebrateDuration time.Duration
	BannerDuration    time.Duration
	ToastSlide        time.Duration
	ShakeIntensity    float64
	ShakeDuration     time.Duration
}

// AudioConfig contains generated sound cue configuration values
type AudioConfig struct {
	SampleRate int
	SFXVolume  float64 // 0 mutes
}

// FragmentTypeConfig contains configuration for one fragment damage type
type FragmentTypeConfig struct {
	Name           string
	BaseDamage     int
	CritChance     float64
	CritMultiplier float64
	FallSpeed      float64 // pixels per motion tick
	ShieldGain     int
	Color          color.RGBA
}

// Config holds general play-area configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Boss BossConfig
var Player PlayerConfig
var Spawner SpawnerConfig
var Combo ComboConfig
var Skill SkillConfig
var PowerUp PowerUpConfig
var Achievement AchievementConfig
var Effects EffectsConfig
var Audio AudioConfig

// FragmentTypes is ordered so random selection is reproducible for a seed
var FragmentTypes []FragmentTypeConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 220, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Boss = BossConfig{
		MaxHP:                1000,
		EnrageThreshold:      0.30,
		EnrageSpawnCut:       0.30,
		SwayAmplitude:        20,
		SwayFrequency:        0.5,
		EnragedSwayAmplitude: 45,
		EnragedSwayFrequency: 1.25,
	}

	Player = PlayerConfig{
		MaxHP:     200,
		MaxShield: 50,
	}

	Spawner = SpawnerConfig{
		InitialInterval:       1500 * time.Millisecond,
		MinInterval:           400 * time.Millisecond,
		SpeedIncreaseInterval: 12000 * time.Millisecond,
		IntervalStep:          100 * time.Millisecond,
		SpeedStep:             0.1,

		MissedFragmentDamage: 5,

		FragmentSize:    40,
		MinScale:        0.8,
		MaxScale:        1.2,
		SpeedJitter:     0.2,
		MaxDrift:        1.0,
		MaxSpin:         0.05,
		MotionStep:      time.Second / 60,
		MaxFrameDelta:   250 * time.Millisecond,
		CollisionCell:   16,
		FragmentsPerCap: 64,
	}

	Combo = ComboConfig{
		Window:         1000 * time.Millisecond,
		ExtendedWindow: 2000 * time.Millisecond,
		Threshold:      5,
		DamageBonus:    0.1,
	}

	Skill = SkillConfig{
		MaxLevel:       100,
		ClickGain:      1,
		PowerClickGain: 5,
		LevelUpStep:    10,
		Milestones: []SkillMilestone{
			{Level: 25, Name: "Apprentice"},
			{Level: 50, Name: "Adept"},
			{Level: 75, Name: "Expert"},
			{Level: 100, Name: "Master"},
		},
		GridColumns: 4,
		TileWidth:   140,
		TileHeight:  64,
		TileGap:     12,
		GridOriginX: 20,
		GridOriginY: 120,
	}

	PowerUp = PowerUpConfig{
		SpawnChance:         0.08,
		FieldLifetime:       5 * time.Second,
		EffectDuration:      10 * time.Second,
		MultiLevelJump:      10,
		CriticalPowerChance: 0.25,
		CritChanceFactor:    2.0,
		DoubleExpFactor:     2,
		Size:                32,
	}

	Achievement = AchievementConfig{
		ToastDuration: 3 * time.Second,
	}

	Effects = EffectsConfig{
		SparkDuration:     250 * time.Millisecond,
		NumberDuration:    800 * time.Millisecond,
		NumberRise:        30,
		FlashDuration:     200 * time.Millisecond,
		BurstDuration:     500 * time.Millisecond,
		CelebrateDuration: 1500 * time.Millisecond,
		BannerDuration:    2 * time.Second,
		ToastSlide:        300 * time.Millisecond,
		ShakeIntensity:    6,
		ShakeDuration:     300 * time.Millisecond,
	}

	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.5,
	}

	FragmentTypes = []FragmentTypeConfig{
		{Name: "JavaScript", BaseDamage: 20, CritChance: 0.10, CritMultiplier: 2.0, FallSpeed: 2.0, Color: Yellow},
		{Name: "TypeScript", BaseDamage: 25, CritChance: 0.12, CritMultiplier: 2.0, FallSpeed: 2.2, Color: LightBlue},
		{Name: "Python", BaseDamage: 22, CritChance: 0.15, CritMultiplier: 1.8, FallSpeed: 1.8, Color: BrightYellow},
		{Name: "React", BaseDamage: 30, CritChance: 0.08, CritMultiplier: 2.5, FallSpeed: 2.6, Color: Cyan},
		{Name: "Go", BaseDamage: 28, CritChance: 0.20, CritMultiplier: 2.0, FallSpeed: 2.4, Color: Blue},
		{Name: "SQL", BaseDamage: 18, CritChance: 0.05, CritMultiplier: 3.0, FallSpeed: 1.6, Color: Orange},
		{Name: "Docker", BaseDamage: 15, CritChance: 0.10, CritMultiplier: 2.0, FallSpeed: 1.5, ShieldGain: 10, Color: DarkBlue},
	}
}

// FragmentType returns the configuration for a damage type name
func FragmentType(name string) (FragmentTypeConfig, bool) {
	for _, ft := range FragmentTypes {
		if ft.Name == name {
			return ft, true
		}
	}
	return FragmentTypeConfig{}, false
}
