// Package visualize renders gradient descent trajectories with gonum/plot.
package visualize

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/linfit/pkg/errors"
	"github.com/YuminosukeSato/linfit/pkg/log"
)

// Size of the image written by SaveTrajectoryPlot.
const (
	DefaultWidth  = 15 * vg.Centimeter
	DefaultHeight = 10 * vg.Centimeter
)

// TrajectoryPlot draws one line per row of trajectory, the value of that
// parameter against the iteration index. It is meant for the p×iterations
// matrix returned by GradientDescent.Optimize.
func TrajectoryPlot(trajectory mat.Matrix, title string) (*plot.Plot, error) {
	const op = "TrajectoryPlot"
	if trajectory == nil {
		return nil, errors.NewEmptyArrayError(op, "trajectory")
	}
	if m, ok := trajectory.(*mat.Dense); ok && (m == nil || m.IsEmpty()) {
		return nil, errors.NewEmptyArrayError(op, "trajectory")
	}
	rows, cols := trajectory.Dims()
	if rows == 0 || cols == 0 {
		return nil, errors.NewEmptyArrayError(op, "trajectory")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Parameter value"

	lines := make([]interface{}, 0, 2*rows)
	for i := 0; i < rows; i++ {
		lines = append(lines, fmt.Sprintf("θ%d", i), rowXYs(trajectory, i))
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return nil, errors.Wrap(err, "could not draw trajectory")
	}

	log.GetLoggerWithName("visualize").Debug("Trajectory plotted",
		log.OperationKey, log.OperationPlot,
		log.PhaseKey, log.PhaseDiagnostics,
		log.ParametersKey, rows,
		log.IterationKey, cols,
	)
	return p, nil
}

// SaveTrajectoryPlot renders the trajectory to path. The image format is taken
// from the file extension (png, svg, pdf, ...).
func SaveTrajectoryPlot(trajectory mat.Matrix, title, path string) error {
	p, err := TrajectoryPlot(trajectory, title)
	if err != nil {
		return err
	}
	if err := p.Save(DefaultWidth, DefaultHeight, path); err != nil {
		return errors.Wrapf(err, "could not save plot to %s", path)
	}
	return nil
}

// rowXYs pairs row i of m with its column indices.
func rowXYs(m mat.Matrix, i int) plotter.XYs {
	_, cols := m.Dims()
	xy := make(plotter.XYs, cols)
	for k := range xy {
		xy[k].X = float64(k)
		xy[k].Y = m.At(i, k)
	}
	return xy
}
