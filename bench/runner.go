// Package bench replays a dataset into associative containers and times
// insertion and traversal.
package bench

import (
	"github.com/pyihe/mapbench/dataset"
	gomap "github.com/pyihe/mapbench/map"
	"github.com/pyihe/mapbench/math"
	gotime "github.com/pyihe/mapbench/time"
)

type Result struct {
	TotalInsertMicros uint64
	AvgInsertMicros   float64 // 0 when the container ends up empty
	IterationMicros   uint64

	Elements int    // elements visited by the timed traversal
	LastKey  uint64 // last key visited by the timed traversal
}

// Run inserts every record of ds into c in ascending key order, timing each
// insert separately and summing the whole microseconds of every sample, then
// times one full traversal of c. ds is only read.
func Run(ds *dataset.Dataset, c gomap.Container[uint64, string]) Result {
	var res Result

	ds.Range(func(key uint64, value string) bool {
		sw := gotime.StartStopwatch()
		c.Insert(key, value)
		res.TotalInsertMicros += sw.ElapsedMicros()
		return true
	})
	res.AvgInsertMicros = math.Ratio(res.TotalInsertMicros, c.Len())

	sw := gotime.StartStopwatch()
	c.Range(func(key uint64, _ string) bool {
		res.Elements++
		res.LastKey = key
		return true
	})
	res.IterationMicros = sw.ElapsedMicros()

	return res
}
