package config

// ModeID identifies the mode chosen on the mode-select screen.
type ModeID int

const (
	ModeNormal    ModeID = iota // Skill arcade, boss battle once every skill is mastered
	ModeChallenge               // Straight into the boss battle
)

func (m ModeID) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeChallenge:
		return "challenge"
	}
	return "unknown"
}

// ParseMode maps a mode name to its ID.
func ParseMode(name string) (ModeID, bool) {
	switch name {
	case "normal":
		return ModeNormal, true
	case "challenge":
		return ModeChallenge, true
	}
	return ModeNormal, false
}

// BattleStateID represents the boss battle state machine.
type BattleStateID int

const (
	BattleIdle    BattleStateID = iota // No encounter yet
	BattleActive                       // Spawner and motion running
	BattleVictory                      // Boss HP reached 0
	BattleDefeat                       // Player HP reached 0
)

func (s BattleStateID) String() string {
	switch s {
	case BattleIdle:
		return "idle"
	case BattleActive:
		return "active"
	case BattleVictory:
		return "victory"
	case BattleDefeat:
		return "defeat"
	}
	return "unknown"
}

// Terminal reports whether no further combat mutation may occur.
func (s BattleStateID) Terminal() bool {
	return s == BattleVictory || s == BattleDefeat
}

// PhaseID is the arcade-level phase surfaced to the rendering surface.
type PhaseID int

const (
	PhaseIdle PhaseID = iota
	PhaseSkills
	PhaseBattle
	PhaseVictory
	PhaseDefeat
)

func (p PhaseID) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSkills:
		return "skills"
	case PhaseBattle:
		return "battle"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	}
	return "unknown"
}

// PowerUpType identifies a power-up effect.
type PowerUpType int

const (
	PowerUpDoubleExp PowerUpType = iota
	PowerUpComboExtender
	PowerUpMultiLevel
	PowerUpCriticalHit

	PowerUpTypeCount // must stay last
)

func (p PowerUpType) String() string {
	switch p {
	case PowerUpDoubleExp:
		return "doubleExp"
	case PowerUpComboExtender:
		return "comboExtender"
	case PowerUpMultiLevel:
		return "multiLevel"
	case PowerUpCriticalHit:
		return "criticalHit"
	}
	return "unknown"
}
