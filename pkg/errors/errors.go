// Package errors はリポジトリ全体の構造化エラーハンドリングを提供します。
// 各エラー型はzerologのイベントにマーシャリング可能で、cockroachdb/errorsの
// スタックトレースを保持します。
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	データ分割のエラー型
//
// ===========================================================================

// InvalidFractionError は分割比率が不正な場合のエラーです。
// 比率の合計が1.0でない、または個々の比率が[0,1]の範囲外の場合に発生します。
type InvalidFractionError struct {
	Fractions []float64
	Sum       float64
	Reason    string
}

func (e *InvalidFractionError) Error() string {
	return fmt.Sprintf("irissvm: invalid split fractions %v (sum=%g): %s", e.Fractions, e.Sum, e.Reason)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidFractionError) MarshalZerologObject(event *zerolog.Event) {
	event.Floats64("fractions", e.Fractions).
		Float64("sum", e.Sum).
		Str("reason", e.Reason).
		Str("type", "InvalidFractionError")
}

// NewInvalidFractionError は新しいInvalidFractionErrorを作成し、スタックトレースを付与します。
func NewInvalidFractionError(fractions []float64, sum float64, reason string) error {
	err := &InvalidFractionError{Fractions: fractions, Sum: sum, Reason: reason}
	return errors.WithStack(err)
}

// EmptyDatasetError は空のデータセットに対して分割を要求した場合のエラーです。
type EmptyDatasetError struct {
	Op string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("irissvm: %s: dataset is empty", e.Op)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *EmptyDatasetError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("type", "EmptyDatasetError")
}

// NewEmptyDatasetError は新しいEmptyDatasetErrorを作成し、スタックトレースを付与します。
func NewEmptyDatasetError(op string) error {
	err := &EmptyDatasetError{Op: op}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	グリッドサーチのエラー型
//
// ===========================================================================

// TrainingFailureError はグリッド上のある設定で学習コラボレータが失敗した場合のエラーです。
// 失敗した設定と探索順の位置を保持し、探索全体を即座に中断させます。
type TrainingFailureError struct {
	Position int     // 探索順（行優先）の位置
	C        float64 // 失敗した正則化パラメータ
	Gamma    float64 // 失敗したカーネル係数
	Err      error
}

func (e *TrainingFailureError) Error() string {
	return fmt.Sprintf("irissvm: training failed at grid position %d (C=%g, gamma=%g): %v",
		e.Position, e.C, e.Gamma, e.Err)
}

func (e *TrainingFailureError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *TrainingFailureError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("grid_position", e.Position).
		Float64("c", e.C).
		Float64("gamma", e.Gamma).
		AnErr("cause", e.Err).
		Str("type", "TrainingFailureError")
}

// NewTrainingFailureError は新しいTrainingFailureErrorを作成し、スタックトレースを付与します。
func NewTrainingFailureError(position int, c, gamma float64, cause error) error {
	err := &TrainingFailureError{Position: position, C: c, Gamma: gamma, Err: cause}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	評価レポートのエラー型
//
// ===========================================================================

// LengthMismatchError は予測ラベル列と正解ラベル列の長さが一致しない場合のエラーです。
type LengthMismatchError struct {
	Op       string
	Expected int
	Got      int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("irissvm: %s: sequence length mismatch. Expected %d, got %d", e.Op, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *LengthMismatchError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "LengthMismatchError")
}

// NewLengthMismatchError は新しいLengthMismatchErrorを作成し、スタックトレースを付与します。
func NewLengthMismatchError(op string, expected, got int) error {
	err := &LengthMismatchError{Op: op, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// UnknownLabelError はラベル整数がクラス名の対応表に存在しない場合のエラーです。
type UnknownLabelError struct {
	Op    string
	Label int
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("irissvm: %s: label %d has no class name mapping", e.Op, e.Label)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *UnknownLabelError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("label", e.Label).
		Str("type", "UnknownLabelError")
}

// NewUnknownLabelError は新しいUnknownLabelErrorを作成し、スタックトレースを付与します。
func NewUnknownLabelError(op string, label int) error {
	err := &UnknownLabelError{Op: op, Label: label}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	推定器共通のエラー型
//
// ===========================================================================

// NotFittedError はモデルが未学習の状態で `Predict` や `Transform` を呼び出した場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("irissvm: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError は入力データの次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("irissvm: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("irissvm: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("irissvm: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")
)
