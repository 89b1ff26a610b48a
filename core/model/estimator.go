// Package model defines the estimator interfaces shared by linfit models,
// their fitted-state bookkeeping and the JSON weights document.
package model

import "gonum.org/v1/gonum/mat"

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる
	Fit(X, y mat.Matrix) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データに対する予測を行う
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer computes the coefficient of determination R² of the prediction.
type Scorer interface {
	Score(X, y mat.Matrix) (float64, error)
}

// Regressor combines the interfaces every regression model implements.
type Regressor interface {
	Fitter
	Predictor
	Scorer
}

// Transformer はデータ変換のインターフェース
type Transformer interface {
	Fit(X mat.Matrix) error
	Transform(X mat.Matrix) (mat.Matrix, error)
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}
