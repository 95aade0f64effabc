// Package cli dispatches the mapbench command line.
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/pyihe/mapbench/bench"
	"github.com/pyihe/mapbench/config"
	"github.com/pyihe/mapbench/dataset"
	"github.com/pyihe/mapbench/internal"
	gomap "github.com/pyihe/mapbench/map"
)

const usage = `Usage: <command> [args...]
Available commands:
	help - print this message
	generate <path> <selectionSize> <stringSize> - generate new data set
	benchmark <path> - benchmark all containers
`

type App struct {
	Config config.Config
	Logger *zap.Logger
	Stdout io.Writer
}

// Run executes the command in args (without the program name) and returns
// the process exit code. Bad arguments print usage; I/O failures are logged
// and otherwise behave like an empty data set. Both exit with 0.
func (a *App) Run(args []string) int {
	if len(args) == 0 {
		a.help()
		return 0
	}

	switch args[0] {
	case "help":
		a.help()
	case "generate":
		if len(args) < 4 {
			a.help()
			return 0
		}
		selectionSize, err1 := strconv.Atoi(args[2])
		stringSize, err2 := strconv.Atoi(args[3])
		if err1 != nil || err2 != nil {
			a.Logger.Warn("invalid size", zap.String("selectionSize", args[2]), zap.String("stringSize", args[3]))
			a.help()
			return 0
		}
		a.generate(args[1], selectionSize, stringSize)
	case "benchmark":
		if len(args) < 2 {
			a.help()
			return 0
		}
		a.benchmark(args[1])
	default:
		a.help()
	}
	return 0
}

func (a *App) help() {
	fmt.Fprint(a.Stdout, usage)
}

func (a *App) generate(path string, selectionSize, stringSize int) {
	if err := dataset.Generate(path, selectionSize, stringSize); err != nil {
		a.Logger.Warn("generate failed", zap.String("path", path), zap.String("error", err.Error()))
		return
	}
	a.Logger.Info("data set generated", zap.String("path", path), zap.Int("records", selectionSize))
}

func (a *App) load(path string) *dataset.Dataset {
	ds, err := dataset.Load(path)
	switch {
	case err == nil:
	case errors.Is(err, dataset.ErrMalformed):
		a.Logger.Debug("data file truncated at malformed record",
			zap.Int("records", ds.Len()), zap.String("error", err.Error()))
	case ds.Len() == 0:
		a.Logger.Warn("load failed, benchmarking empty data set", zap.String("error", err.Error()))
	default:
		a.Logger.Warn("load failed, benchmarking partial data set",
			zap.Int("records", ds.Len()), zap.String("error", err.Error()))
	}
	a.Logger.Debug("data set loaded", zap.String("path", path), zap.Int("records", ds.Len()))
	return ds
}

func (a *App) benchmark(path string) {
	ds := a.load(path)

	reporter := bench.NewReporter(a.Config.Report, a.Stdout)
	for _, s := range bench.Strategies(a.Config) {
		s := s
		c := s.New()
		err := internal.ExecWithRecover(a.Logger, func() {
			res := bench.Run(ds, c)
			reporter.Report(s.Label, res)
			a.Logger.Debug("container traversed",
				zap.String("container", s.Label),
				zap.Int("elements", res.Elements),
				zap.Uint64("lastKey", res.LastKey))
		})
		if err != nil {
			a.Logger.Warn("benchmark aborted", zap.String("container", s.Label), zap.String("error", err.Error()))
		} else if a.Config.Verify {
			a.verify(s.Label, ds, c)
		}
		c.Clear()
	}
	reporter.Flush()
}

func (a *App) verify(label string, ds *dataset.Dataset, c gomap.Container[uint64, string]) {
	if err := bench.Verify(ds, c); err != nil {
		a.Logger.Warn("container content differs from data set",
			zap.String("container", label), zap.String("error", err.Error()))
		return
	}
	a.Logger.Info("container content verified", zap.String("container", label))
}
