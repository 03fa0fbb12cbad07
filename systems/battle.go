package systems

import (
	"math"
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/clock"
	"github.com/ahmadalghawi/retro-game-portfolio/components"
	"github.com/ahmadalghawi/retro-game-portfolio/config"
	"github.com/ahmadalghawi/retro-game-portfolio/events"
	"github.com/ahmadalghawi/retro-game-portfolio/systems/factory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// HitResult describes a fragment destroyed by a click
type HitResult struct {
	FragmentID uint64
	DamageType string
	Damage     int
	Crit       bool
	Combo      int
}

// StartBattle moves the encounter from Idle to Active and acquires the
// battle timers. Returns false when the battle already started.
func StartBattle(w donburi.World) bool {
	combat := GetCombat(w)
	if combat.State != config.BattleIdle {
		return false
	}
	sched := scheduler(w)

	combat.State = config.BattleActive
	combat.StartedAt = sched.Now()
	combat.Timers = clock.NewGroup(sched)
	combat.Timers.Every("motion", config.Spawner.MotionStep, func(time.Duration) {
		UpdateMotion(w)
	})
	combat.SpawnTimer = combat.Timers.Every("spawn", combat.SpawnInterval, func(time.Duration) {
		SpawnFragment(w)
	})
	combat.Timers.Every("difficulty", config.Spawner.SpeedIncreaseInterval, func(time.Duration) {
		IncreaseDifficulty(w)
	})

	// The skill arcade's multiLevel has no target once the battle begins
	if entry, ok := ActivePowerUp(w); ok && components.PowerUp.Get(entry).Type == config.PowerUpMultiLevel {
		ClearPowerUp(w)
	}

	events.Publish(w, events.Event{Type: events.BattleStarted, At: combat.StartedAt})
	return true
}

// SpawnFragment creates one fragment of a random damage type just above the
// play area
func SpawnFragment(w donburi.World) *donburi.Entry {
	combat := GetCombat(w)
	if combat.State != config.BattleActive {
		return nil
	}
	if len(Fragments(w)) >= config.Spawner.FragmentsPerCap {
		return nil
	}
	r := rng(w)

	ft := config.FragmentTypes[r.IntN(len(config.FragmentTypes))]
	scale := config.Spawner.MinScale + r.Float64()*(config.Spawner.MaxScale-config.Spawner.MinScale)
	size := config.Spawner.FragmentSize * scale
	x := r.Float64() * (float64(config.C.Width) - size)
	jitter := 1 + (r.Float64()*2-1)*config.Spawner.SpeedJitter
	speed := ft.FallSpeed * combat.SpeedMultiplier * jitter
	drift := (r.Float64()*2 - 1) * config.Spawner.MaxDrift
	spin := (r.Float64()*2 - 1) * config.Spawner.MaxSpin

	combat.NextFragmentID++
	spec := factory.FragmentSpec{
		ID:       combat.NextFragmentID,
		Type:     ft,
		X:        x,
		Y:        -size,
		Scale:    scale,
		Velocity: dmath.NewVec2(drift, speed),
		Spin:     spin,
	}
	entry := factory.CreateFragment(w, spec)

	events.Publish(w, events.Event{
		Type:       events.FragmentSpawned,
		At:         now(w),
		FragmentID: spec.ID,
		DamageType: ft.Name,
		X:          spec.X,
		Y:          spec.Y,
	})
	return entry
}

// UpdateMotion advances every fragment by one motion tick. Fragments past
// the lower boundary are misses, applied as one batch.
func UpdateMotion(w donburi.World) {
	if GetCombat(w).State != config.BattleActive {
		return
	}
	width := float64(config.C.Width)
	height := float64(config.C.Height)

	var missed []*donburi.Entry
	for _, e := range Fragments(w) {
		frag := components.Fragment.Get(e)
		obj := components.Object.Get(e)

		obj.Y += frag.Velocity.Y
		obj.X += frag.Velocity.X
		// Edge bounce
		if obj.X < 0 {
			obj.X = 0
			frag.Velocity.X = -frag.Velocity.X
		} else if obj.X > width-obj.W {
			obj.X = width - obj.W
			frag.Velocity.X = -frag.Velocity.X
		}
		frag.Rotation += frag.Spin
		obj.Update()

		if obj.Y >= height {
			missed = append(missed, e)
		}
	}
	if len(missed) == 0 {
		return
	}
	ApplyMisses(w, missed)
}

// ApplyMisses removes the missed fragments and charges the player miss
// damage for each of them
func ApplyMisses(w donburi.World, missed []*donburi.Entry) {
	combat := GetCombat(w)
	if combat.State != config.BattleActive {
		return
	}
	at := now(w)
	n := 0
	for _, e := range missed {
		if !e.Valid() {
			continue
		}
		frag := components.Fragment.Get(e)
		obj := components.Object.Get(e)
		events.Publish(w, events.Event{
			Type:       events.FragmentMissed,
			At:         at,
			FragmentID: frag.ID,
			DamageType: frag.Type.Name,
			X:          obj.X,
			Y:          obj.Y,
		})
		factory.Destroy(w, e)
		n++
	}
	if n == 0 {
		return
	}
	GetStats(w).Misses += n
	DamagePlayer(w, n*config.Spawner.MissedFragmentDamage)
	BreakCombo(w)
	CheckTerminal(w)
}

// DamagePlayer applies damage to the shield first, then to player HP
func DamagePlayer(w donburi.World, amount int) {
	combat := GetCombat(w)
	if combat.State != config.BattleActive || amount <= 0 {
		return
	}
	if combat.Shield > 0 {
		absorbed := min(combat.Shield, amount)
		combat.Shield -= absorbed
		amount -= absorbed
		events.Publish(w, events.Event{Type: events.ShieldAbsorbed, At: now(w), Amount: absorbed})
	}
	if amount == 0 {
		return
	}
	lost := min(combat.PlayerHP, amount)
	combat.PlayerHP -= lost
	combat.DamageTaken += lost
}

// ComputeDamage returns base x (1 + combo x bonus), multiplied by the type's
// crit multiplier on a crit and doubled under doubleExp, rounded to an int
func ComputeDamage(ft config.FragmentTypeConfig, combo int, crit, doubleExp bool) int {
	d := float64(ft.BaseDamage) * (1 + float64(combo)*config.Combo.DamageBonus)
	if crit {
		d *= ft.CritMultiplier
	}
	if doubleExp {
		d *= float64(config.PowerUp.DoubleExpFactor)
	}
	return int(math.Round(d))
}

// HitFragment destroys the fragment at entry and damages the boss
func HitFragment(w donburi.World, entry *donburi.Entry, at time.Duration) (HitResult, bool) {
	combat := GetCombat(w)
	if combat.State != config.BattleActive || !entry.Valid() {
		return HitResult{}, false
	}
	frag := *components.Fragment.Get(entry)
	x, y := components.Object.Get(entry).Center()
	factory.Destroy(w, entry)

	combo := RegisterAction(w, at)

	chance := frag.Type.CritChance
	if BuffActive(w, config.PowerUpCriticalHit) {
		chance *= config.PowerUp.CritChanceFactor
	}
	crit := rng(w).Float64() < chance
	damage := ComputeDamage(frag.Type, combo, crit, BuffActive(w, config.PowerUpDoubleExp))

	dealt := DamageBoss(w, damage)

	if frag.Type.ShieldGain > 0 {
		combat.Shield = min(combat.Shield+frag.Type.ShieldGain, combat.MaxShield)
	}

	stats := GetStats(w)
	stats.TotalClicks++
	stats.Hits++
	stats.TotalDamage += dealt
	if crit {
		stats.Crits++
	}

	result := HitResult{
		FragmentID: frag.ID,
		DamageType: frag.Type.Name,
		Damage:     dealt,
		Crit:       crit,
		Combo:      combo,
	}
	events.Publish(w, events.Event{
		Type:       events.FragmentHit,
		At:         at,
		FragmentID: frag.ID,
		DamageType: frag.Type.Name,
		X:          x,
		Y:          y,
		Amount:     dealt,
		Crit:       crit,
		Combo:      combo,
	})

	CheckEnrage(w)
	if !CheckTerminal(w) {
		MaybeSpawnPowerUp(w)
	}
	return result, true
}

// DamageBoss subtracts damage from boss HP, floored at 0, and returns the
// amount actually removed
func DamageBoss(w donburi.World, damage int) int {
	combat := GetCombat(w)
	if combat.State != config.BattleActive || damage <= 0 {
		return 0
	}
	dealt := min(combat.BossHP, damage)
	combat.BossHP -= dealt
	return dealt
}

// CheckEnrage latches the enraged flag once boss HP is at or below the
// threshold and cuts the spawn interval immediately
func CheckEnrage(w donburi.World) bool {
	combat := GetCombat(w)
	if combat.Enraged {
		return true
	}
	if combat.State != config.BattleActive {
		return false
	}
	threshold := int(math.Round(config.Boss.EnrageThreshold * float64(combat.BossMaxHP)))
	if combat.BossHP > threshold {
		return false
	}

	combat.Enraged = true
	cut := time.Duration(math.Round(float64(combat.SpawnInterval) * (1 - config.Boss.EnrageSpawnCut)))
	setSpawnInterval(w, cut)

	events.Publish(w, events.Event{Type: events.Enraged, At: now(w), Interval: combat.SpawnInterval})
	return true
}

// IncreaseDifficulty shortens the spawn interval by one step, never below
// the minimum, and speeds up newly spawned fragments
func IncreaseDifficulty(w donburi.World) {
	combat := GetCombat(w)
	if combat.State != config.BattleActive {
		return
	}
	setSpawnInterval(w, combat.SpawnInterval-config.Spawner.IntervalStep)
	combat.SpeedMultiplier += config.Spawner.SpeedStep
	combat.DifficultyLevel++

	events.Publish(w, events.Event{
		Type:     events.DifficultyIncreased,
		At:       now(w),
		Level:    combat.DifficultyLevel,
		Interval: combat.SpawnInterval,
	})
}

func setSpawnInterval(w donburi.World, d time.Duration) {
	combat := GetCombat(w)
	combat.SpawnInterval = max(d, config.Spawner.MinInterval)
	if combat.SpawnTimer != nil && combat.SpawnTimer.Active() {
		combat.SpawnTimer.SetInterval(combat.SpawnInterval, now(w))
	}
}

// CheckTerminal moves an Active battle to Victory when boss HP is 0, else to
// Defeat when player HP is 0. Victory is checked first. Returns whether the
// battle is terminal.
func CheckTerminal(w donburi.World) bool {
	combat := GetCombat(w)
	if combat.State.Terminal() {
		return true
	}
	if combat.State != config.BattleActive {
		return false
	}
	switch {
	case combat.BossHP <= 0:
		endBattle(w, config.BattleVictory)
	case combat.PlayerHP <= 0:
		endBattle(w, config.BattleDefeat)
	default:
		return false
	}
	return true
}

func endBattle(w donburi.World, outcome config.BattleStateID) {
	combat := GetCombat(w)
	at := now(w)
	combat.State = outcome
	combat.EndedAt = at
	if combat.Timers != nil {
		combat.Timers.Release()
	}
	combat.SpawnTimer = nil

	// Undrawn and in-flight fragments are discarded
	for _, e := range Fragments(w) {
		factory.Destroy(w, e)
	}
	ClearPowerUp(w)
	ClearBuffs(w)

	summary := BattleSummary(w)
	t := events.Victory
	if outcome == config.BattleDefeat {
		t = events.Defeat
	}
	events.Publish(w, events.Event{Type: t, At: at, Summary: &summary})
}

// BattleSummary returns the end-of-encounter statistics
func BattleSummary(w donburi.World) events.Summary {
	combat := GetCombat(w)
	stats := GetStats(w)
	return events.Summary{
		Outcome:     combat.State,
		Elapsed:     combat.Elapsed(now(w)),
		MaxCombo:    GetCombo(w).MaxCount,
		TotalClicks: stats.TotalClicks,
		TotalDamage: stats.TotalDamage,
	}
}
