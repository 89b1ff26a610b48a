// Package metrics provides regression metrics used to score fitted estimators
// and to report the loss of gradient descent.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/linfit/pkg/errors"
)

// values は入力ベクトルの長さを検証し、スライスとして取り出す
func values(op string, yTrue, yPred *mat.VecDense) (t, p []float64, err error) {
	n := yTrue.Len()
	if n == 0 {
		return nil, nil, errors.NewValueError(op, "empty vector")
	}
	if yPred.Len() != n {
		return nil, nil, errors.NewDimensionError(op, n, yPred.Len(), 0)
	}
	return mat.Col(nil, 0, yTrue), mat.Col(nil, 0, yPred), nil
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	t, p, err := values("MSE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	// MSE = (1/n) * ||yTrue - yPred||²
	d := floats.Distance(t, p, 2)
	return d * d / float64(len(t)), nil
}

// MSEMatrix は列ベクトル（n×1 行列）形式の入力に対してMSEを計算する
func MSEMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 || cTrue == 0 {
		return 0, errors.NewValueError("MSEMatrix", "empty matrix")
	}
	if rTrue != rPred || cTrue != cPred {
		return 0, errors.NewDimensionError("MSEMatrix", rTrue, rPred, 0)
	}
	if cTrue != 1 {
		return 0, errors.NewValueError("MSEMatrix", "must be a column vector (n×1 matrix)")
	}

	return MSE(
		mat.NewVecDense(rTrue, mat.Col(nil, 0, yTrue)),
		mat.NewVecDense(rPred, mat.Col(nil, 0, yPred)),
	)
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	t, p, err := values("MAE", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return floats.Distance(t, p, 1) / float64(len(t)), nil
}

// R2Score は決定係数（R²）を計算する
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	t, p, err := values("R2Score", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	// 全変動が0の場合（すべてのyTrueが同じ値）
	if floats.Max(t) == floats.Min(t) {
		return 0, errors.Newf("R2Score: total sum of squares is zero (no variance in yTrue)")
	}

	return stat.RSquaredFrom(p, t, nil), nil
}
