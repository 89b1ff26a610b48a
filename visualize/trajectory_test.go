package visualize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linfit/pkg/errors"
)

func TestTrajectoryPlot(t *testing.T) {
	trajectory := mat.NewDense(2, 4, []float64{
		0, 0.5, 0.8, 0.9,
		1, 1.5, 1.8, 1.9,
	})

	p, err := TrajectoryPlot(trajectory, "descent")
	require.NoError(t, err)
	assert.Equal(t, "descent", p.Title.Text)
	assert.Equal(t, "Iteration", p.X.Label.Text)
	assert.InDelta(t, 0.0, p.X.Min, 1e-12)
	assert.InDelta(t, 3.0, p.X.Max, 1e-12)
	assert.InDelta(t, 0.0, p.Y.Min, 1e-12)
	assert.InDelta(t, 1.9, p.Y.Max, 1e-12)
}

func TestTrajectoryPlotEmpty(t *testing.T) {
	testData := map[string]mat.Matrix{
		"nil":        nil,
		"zero dense": &mat.Dense{},
	}

	for name, m := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := TrajectoryPlot(m, "empty")
			assert.True(t, errors.Is(err, errors.ErrEmptyData))
		})
	}
}

func TestSaveTrajectoryPlot(t *testing.T) {
	trajectory := mat.NewDense(1, 3, []float64{3, 2, 1})
	path := filepath.Join(t.TempDir(), "trajectory.png")

	require.NoError(t, SaveTrajectoryPlot(trajectory, "descent", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
