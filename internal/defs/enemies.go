// internal/defs/enemies.go
package defs

import "image/color"

// PursuerKind identifies one zombie archetype.
type PursuerKind string

const (
	KindBloater PursuerKind = "BLOATER"
	KindChaser  PursuerKind = "CHASER"
	KindCrawler PursuerKind = "CRAWLER"
)

// PursuerDefinition holds the static data for one kind of zombie.
type PursuerDefinition struct {
	Kind   PursuerKind `json:"kind"`
	Speed  float64     `json:"speed"`  // pixels per second before the per-spawn jitter
	Radius float64     `json:"radius"` // hit radius in pixels
	Color  color.RGBA  `json:"color"`
}

// PursuerDefs is the library of zombie kinds, keyed by kind.
var PursuerDefs = map[PursuerKind]PursuerDefinition{
	KindBloater: {Kind: KindBloater, Speed: 40, Radius: 30, Color: color.RGBA{120, 160, 60, 255}},
	KindChaser:  {Kind: KindChaser, Speed: 80, Radius: 20, Color: color.RGBA{200, 60, 60, 255}},
	KindCrawler: {Kind: KindCrawler, Speed: 20, Radius: 22, Color: color.RGBA{150, 110, 180, 255}},
}

// SpeedJitterMin is the lowest fraction of the base speed a spawned zombie may
// get; each spawn draws uniformly from [SpeedJitterMin, 1].
const SpeedJitterMin = 0.7
