package morphodb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborlab/morpho/neuron"
	"github.com/arborlab/morpho/units"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "morpho.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_SaveLoadRoundtrip(t *testing.T) {
	s := openTestStore(t)

	meta := neuron.Meta{ID: "n1", Name: "left-lobe", Units: units.MustParse("8 nanometer")}
	points := [][3]float64{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}
	vect := [][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	alpha := []float64{1, 0.5, 0}
	dp, err := neuron.NewDotprops(meta, 3, points, vect, alpha)
	require.NoError(t, err)

	require.NoError(t, s.Save(dp))

	got, err := s.Load("n1")
	require.NoError(t, err)
	require.Equal(t, "left-lobe", got.Name())
	require.Equal(t, 3, got.K)
	require.Equal(t, points, got.Points)
	require.Equal(t, vect, got.Vect)
	require.Equal(t, alpha, got.Alpha)
	require.Equal(t, "8 nanometer", got.Units().String())
}

func TestStore_EdgeDotpropsRoundtrip(t *testing.T) {
	s := openTestStore(t)

	points := [][3]float64{{0.5, 0, 0}}
	vect := [][3]float64{{-1, 0, 0}}
	length := []float64{1}
	dp, err := neuron.NewEdgeDotprops(neuron.Meta{ID: "e1"}, points, vect, length)
	require.NoError(t, err)

	require.NoError(t, s.Save(dp))

	got, err := s.Load("e1")
	require.NoError(t, err)
	require.Equal(t, 0, got.K)
	require.Nil(t, got.Alpha)
	require.Equal(t, length, got.Length)
}

func TestStore_SaveReplaces(t *testing.T) {
	s := openTestStore(t)

	dp, err := neuron.NewDotprops(neuron.Meta{ID: "n1", Name: "v1"}, 1,
		[][3]float64{{0, 0, 0}}, [][3]float64{{1, 0, 0}}, []float64{0})
	require.NoError(t, err)
	require.NoError(t, s.Save(dp))

	dp2, err := neuron.NewDotprops(neuron.Meta{ID: "n1", Name: "v2"}, 1,
		[][3]float64{{0, 0, 0}}, [][3]float64{{1, 0, 0}}, []float64{0})
	require.NoError(t, err)
	require.NoError(t, s.Save(dp2))

	recs, err := s.List()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, "v2", recs[0].Name)
}

func TestStore_List(t *testing.T) {
	s := openTestStore(t)

	for _, id := range []string{"a", "b"} {
		dp, err := neuron.NewDotprops(neuron.Meta{ID: id}, 1,
			[][3]float64{{0, 0, 0}}, [][3]float64{{1, 0, 0}}, []float64{0})
		require.NoError(t, err)
		require.NoError(t, s.Save(dp))
	}

	recs, err := s.List()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	for _, r := range recs {
		require.Equal(t, 1, r.NPoints)
	}
}
