package bench

import (
	"github.com/pyihe/mapbench/config"
	gomap "github.com/pyihe/mapbench/map"
)

const (
	LabelOrderedMap = "tree_map"
	LabelHashMap    = "unordered_map"
	LabelFlatMap    = "flat_map"
)

// Strategy is one container shape under test.
type Strategy struct {
	Label string
	New   func() gomap.Container[uint64, string]
}

// Strategies returns the ordered tree map, hash map and sorted flat map, in
// that order, configured by cfg.
func Strategies(cfg config.Config) []Strategy {
	hash := func() gomap.Container[uint64, string] { return gomap.NewMap[uint64, string]() }
	if cfg.Hash == config.HashSwiss {
		hash = func() gomap.Container[uint64, string] { return gomap.NewSwissMap[uint64, string]() }
	}
	degree := cfg.BTreeDegree

	return []Strategy{
		{
			Label: LabelOrderedMap,
			New: func() gomap.Container[uint64, string] {
				return gomap.NewOrderedMap[uint64, string](degree)
			},
		},
		{Label: LabelHashMap, New: hash},
		{
			Label: LabelFlatMap,
			New: func() gomap.Container[uint64, string] {
				return gomap.NewFlatMap[uint64, string]()
			},
		},
	}
}
