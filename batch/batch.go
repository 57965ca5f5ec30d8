// Package batch applies a function across every item of a collection, either
// sequentially or through a bounded worker pool, with per-item argument
// broadcasting and order-preserving result assembly.
package batch

import (
	"reflect"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"go.uber.org/zap"

	"github.com/arborlab/morpho"
)

// Args is the named argument set passed to a batch invocation. A value whose
// length equals the item count is distributed element-wise (item i receives
// element i); anything else is passed unchanged to every item.
//
// Inherited ambiguity: a sequence argument meant to be shared, whose length
// happens to equal the item count, will be distributed. Wrap it in Singleton
// to force sharing.
type Args map[string]any

// Singleton shields a value from per-item distribution.
type Singleton struct{ Value any }

// Func is applied to one item with its resolved arguments.
type Func[T any] func(item T, args Args) (any, error)

// Combiner re-wraps per-item results into a single collection of the same
// kind as the input collection. ok=false means not every result was
// combinable and the raw result list should be returned instead.
type Combiner interface {
	Combine(results []any) (combined any, ok bool)
}

// Options configures a Processor.
type Options struct {
	// Parallel dispatches work items to Pool instead of iterating in order.
	Parallel bool

	// Pool executes parallel work. Required when Parallel is set; there is
	// no silent fallback to sequential execution.
	Pool Pool

	// ChunkSize groups this many consecutive items per pool task. Values
	// below 1 mean 1.
	ChunkSize int

	// Progress shows a progress bar. Cosmetic only; suppressed for
	// sequential runs over a single item.
	Progress bool

	// Desc labels the progress bar.
	Desc string

	// WarnInplace warns once when a parallel run is invoked with an
	// inplace=true argument, which cannot work across workers.
	WarnInplace bool

	// Log receives diagnostics. Defaults to a no-op logger.
	Log *zap.Logger

	// Quiet, when set, raises the logging threshold for the duration of the
	// run and restores it on every exit path.
	Quiet Silencer

	// Combine, when set, re-wraps results via Combiner semantics.
	Combine Combiner
}

// DefaultOptions returns the options used by a plain sequential run.
func DefaultOptions() Options {
	return Options{ChunkSize: 1, Progress: true, WarnInplace: true}
}

// Processor applies one function (or one function per item) across a fixed
// collection of items.
type Processor[T any] struct {
	items []T
	funcs []Func[T]
	opts  Options
}

// New builds a Processor applying fn to every item.
func New[T any](items []T, fn Func[T], opts Options) (*Processor[T], error) {
	if fn == nil {
		return nil, errors.Wrap(morpho.ErrValidation, "function must not be nil")
	}
	funcs := make([]Func[T], len(items))
	for i := range funcs {
		funcs[i] = fn
	}
	return &Processor[T]{items: items, funcs: funcs, opts: opts}, nil
}

// NewEach builds a Processor with one function per item. The number of
// functions must match the number of items.
func NewEach[T any](items []T, fns []Func[T], opts Options) (*Processor[T], error) {
	if len(fns) != len(items) {
		return nil, errors.Wrapf(morpho.ErrValidation,
			"number of functions (%d) must match items (%d)", len(fns), len(items))
	}
	for i, fn := range fns {
		if fn == nil {
			return nil, errors.Wrapf(morpho.ErrValidation, "function %d is nil", i)
		}
	}
	return &Processor[T]{items: items, funcs: fns, opts: opts}, nil
}

// Run applies the functions over all items and assembles the results in item
// order. All-nil results collapse to nil; a configured Combiner may re-wrap
// the results into one collection; otherwise the ordered []any is returned.
// The first per-item error aborts the run with no partial results.
func (p *Processor[T]) Run(args Args) (any, error) {
	n := len(p.items)

	log := p.opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	if p.opts.Quiet != nil {
		restore := p.opts.Quiet.Quiet()
		defer restore()
	}

	resolved := make([]Args, n)
	for i := range resolved {
		resolved[i] = resolveArgs(args, n, i)
	}

	results := make([]any, n)
	var err error
	if p.opts.Parallel {
		err = p.runParallel(resolved, results, log)
	} else {
		err = p.runSequential(resolved, results)
	}
	if err != nil {
		return nil, err
	}
	return p.assemble(results), nil
}

func (p *Processor[T]) runSequential(resolved []Args, results []any) error {
	n := len(p.items)

	var bar *pterm.ProgressbarPrinter
	if p.opts.Progress && n > 1 {
		bar, _ = pterm.DefaultProgressbar.WithTotal(n).WithTitle(p.desc()).Start()
		defer func() { _, _ = bar.Stop() }()
	}

	for i := range p.items {
		r, err := p.funcs[i](p.items[i], resolved[i])
		if err != nil {
			return errors.Wrapf(err, "item %d", i)
		}
		results[i] = r
		if bar != nil {
			bar.Increment()
		}
	}
	return nil
}

func (p *Processor[T]) runParallel(resolved []Args, results []any, log *zap.Logger) error {
	if p.opts.Pool == nil {
		return errors.Wrap(morpho.ErrDependency,
			"parallel execution requires a worker pool; set Options.Pool, e.g. batch.WorkerPool(0)")
	}

	if p.opts.WarnInplace && inplaceRequested(resolved) {
		log.Warn("inplace=true has no effect across worker processes")
	}

	n := len(p.items)
	chunk := p.opts.ChunkSize
	if chunk < 1 {
		chunk = 1
	}

	var bar *pterm.ProgressbarPrinter
	var barMu sync.Mutex
	if p.opts.Progress && n > 0 {
		bar, _ = pterm.DefaultProgressbar.WithTotal(n).WithTitle(p.desc()).Start()
		defer func() { _, _ = bar.Stop() }()
	}

	// Work items are index-tagged: every task writes its own slots of the
	// result slice, so completion order never affects result order.
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		start, end := start, end
		p.opts.Pool.Go(func() error {
			for i := start; i < end; i++ {
				r, err := p.funcs[i](p.items[i], resolved[i])
				if err != nil {
					return errors.Wrapf(err, "item %d", i)
				}
				results[i] = r
				if bar != nil {
					barMu.Lock()
					bar.Increment()
					barMu.Unlock()
				}
			}
			return nil
		})
	}
	return p.opts.Pool.Wait()
}

func (p *Processor[T]) assemble(results []any) any {
	if p.opts.Combine != nil {
		if combined, ok := p.opts.Combine.Combine(results); ok {
			return combined
		}
	}
	allNil := true
	for _, r := range results {
		if r != nil {
			allNil = false
			break
		}
	}
	if allNil {
		return nil
	}
	return results
}

func (p *Processor[T]) desc() string {
	if p.opts.Desc != "" {
		return p.opts.Desc
	}
	return "Processing"
}

// resolveArgs applies the broadcasting rule for item i of n.
func resolveArgs(args Args, n, i int) Args {
	if len(args) == 0 {
		return nil
	}
	out := make(Args, len(args))
	for k, v := range args {
		out[k] = broadcast(v, n, i)
	}
	return out
}

func broadcast(v any, n, i int) any {
	if s, ok := v.(Singleton); ok {
		return s.Value
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() == n {
			return rv.Index(i).Interface()
		}
	}
	return v
}

// inplaceRequested reports whether any item's resolved arguments enable the
// inplace flag.
func inplaceRequested(resolved []Args) bool {
	for _, args := range resolved {
		if v, ok := args["inplace"]; ok {
			if b, ok := v.(bool); ok && b {
				return true
			}
		}
	}
	return false
}
