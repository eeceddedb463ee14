// Package ontbc resolves basecalling cells to execution plans.
//
// A run starts by loading the cell table once with LoadCellTable. Each cell is
// then turned into a CellEntry by Resolve, which applies row overrides first and
// falls back to the defaults of the global configuration, one field at a time.
package ontbc

import (
	"io"
	"runtime"

	"github.com/charmbracelet/log"
)

// Options configures table loading and batch resolution.
type Options struct {
	// Sheet is the XLSX sheet holding the cell table. Empty selects the first sheet.
	Sheet string
	// Range restricts XLSX reading to a cell range (e.g. "A1:D40").
	Range string
	// Concurrency bounds ResolveAll. Zero or less uses GOMAXPROCS.
	Concurrency int
	// Logger receives debug output. If nil, nothing is logged.
	Logger *log.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

func (o Options) concurrency() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}
