package systems

import (
	"time"

	"github.com/ahmadalghawi/retro-game-portfolio/components"
	"github.com/ahmadalghawi/retro-game-portfolio/tags"
	"github.com/yohamta/donburi"
)

// ClickKind is what a pointer click resolved to
type ClickKind int

const (
	ClickNothing ClickKind = iota
	ClickPowerUp
	ClickFragment
	ClickSkill
)

// ClickOutcome is the result of resolving a pointer click
type ClickOutcome struct {
	Kind  ClickKind
	Hit   HitResult
	Skill SkillClickResult
}

// MoveCursor places the pointer probe at (x, y)
func MoveCursor(w donburi.World, x, y float64) {
	entry, ok := tags.Cursor.First(w)
	if !ok {
		return
	}
	obj := components.Object.Get(entry)
	obj.X = x
	obj.Y = y
	obj.Update()
}

// CursorPosition returns the last pointer position
func CursorPosition(w donburi.World) (float64, float64) {
	entry, ok := tags.Cursor.First(w)
	if !ok {
		return 0, 0
	}
	obj := components.Object.Get(entry)
	return obj.X, obj.Y
}

// HoveredSkill returns the id of the skill tile under the pointer
func HoveredSkill(w donburi.World) string {
	x, y := CursorPosition(w)
	if e := regionAt(w, x, y, tags.ResolvSkill); e != nil {
		return components.Skill.Get(e).ID
	}
	return ""
}

// ResolveClick routes a click at (x, y) to the power-up, the lowest fragment
// under the point, or a skill tile, in that order
func ResolveClick(w donburi.World, x, y float64, at time.Duration) ClickOutcome {
	if GetCombat(w).State.Terminal() {
		return ClickOutcome{}
	}
	MoveCursor(w, x, y)

	if e := regionAt(w, x, y, tags.ResolvPowerUp); e != nil {
		CollectPowerUp(w, e, at)
		return ClickOutcome{Kind: ClickPowerUp}
	}
	if e := regionAt(w, x, y, tags.ResolvFragment); e != nil {
		if hit, ok := HitFragment(w, e, at); ok {
			return ClickOutcome{Kind: ClickFragment, Hit: hit}
		}
	}
	if e := regionAt(w, x, y, tags.ResolvSkill); e != nil {
		res := ApplySkillClick(w, components.Skill.Get(e).ID, at)
		if res.Applied {
			return ClickOutcome{Kind: ClickSkill, Skill: res}
		}
	}
	return ClickOutcome{}
}

// regionAt returns the entity with resolvTag whose region contains the
// point. Overlapping fragments resolve to the one furthest down, then the
// older one.
func regionAt(w donburi.World, x, y float64, resolvTag string) *donburi.Entry {
	entry, ok := tags.Cursor.First(w)
	if !ok {
		return nil
	}
	cursor := components.Object.Get(entry)
	if cursor.X != x || cursor.Y != y {
		MoveCursor(w, x, y)
	}

	// The spatial hash narrows candidates to shared cells
	check := cursor.Check(0, 0, resolvTag)
	if check == nil {
		return nil
	}

	var best *donburi.Entry
	var bestY float64
	var bestID uint64
	for _, obj := range check.Objects {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !e.Valid() {
			continue
		}
		region := components.ObjectData{Object: obj}
		if !region.Contains(x, y) {
			continue
		}
		var id uint64
		if e.HasComponent(components.Fragment) {
			id = components.Fragment.Get(e).ID
		}
		if best == nil || obj.Y > bestY || (obj.Y == bestY && id < bestID) {
			best, bestY, bestID = e, obj.Y, id
		}
	}
	return best
}
