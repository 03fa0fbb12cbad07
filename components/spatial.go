package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the hit region of a clickable entity
type ObjectData struct {
	*resolv.Object
}

// Contains reports whether the point lies inside the region
func (o ObjectData) Contains(x, y float64) bool {
	return x >= o.X && x < o.X+o.W && y >= o.Y && y < o.Y+o.H
}

// Center returns the midpoint of the region
func (o ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the spatial hash every hit region is registered in
var Space = donburi.NewComponentType[resolv.Space]()
