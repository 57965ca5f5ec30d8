package neuron

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/arborlab/morpho"
)

// Resampler re-samples a skeleton to the given linear resolution, expressed
// in the skeleton's native coordinate units. The algorithm is supplied by the
// caller; morpho only dispatches to it.
type Resampler func(s *Skeleton, resolution float64) (*Skeleton, error)

var (
	resampleMu   sync.RWMutex
	resampleFunc Resampler
)

// SetResampler registers the skeleton resampling implementation. Passing nil
// removes it.
func SetResampler(r Resampler) {
	resampleMu.Lock()
	resampleFunc = r
	resampleMu.Unlock()
}

// Resample returns a re-sampled copy of the skeleton using the registered
// Resampler. Without one it fails with a dependency error; no resampling is
// ever attempted implicitly.
func (s *Skeleton) Resample(resolution float64) (*Skeleton, error) {
	resampleMu.RLock()
	r := resampleFunc
	resampleMu.RUnlock()
	if r == nil {
		return nil, errors.Wrap(morpho.ErrDependency,
			"no skeleton resampler registered; call neuron.SetResampler first")
	}
	return r(s, resolution)
}
