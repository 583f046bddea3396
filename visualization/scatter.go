// Package visualization renders the predicted-vs-actual comparison of a
// scored test subset as a scatter plot. It is a presentation-layer consumer
// of the evaluation results; nothing here feeds back into the pipeline.
package visualization

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/macaler/iris-svm-classification/dataset"
	"github.com/macaler/iris-svm-classification/pkg/errors"
)

// PredictionScatter plots the test subset on two feature axes, one colored
// glyph series per actual class, and overlays mispredicted records with
// crosses. The plot is saved to path; the format follows the extension
// (.png, .svg, .pdf).
func PredictionScatter(test *dataset.Dataset, predicted []int, xFeature, yFeature int, path string) error {
	if test == nil || test.Len() == 0 {
		return errors.NewEmptyDatasetError("visualization.PredictionScatter")
	}
	if len(predicted) != test.Len() {
		return errors.NewLengthMismatchError("visualization.PredictionScatter", test.Len(), len(predicted))
	}
	if xFeature < 0 || xFeature >= test.NumFeatures() || yFeature < 0 || yFeature >= test.NumFeatures() {
		return errors.NewValueError("visualization.PredictionScatter", "feature index out of range")
	}

	names := test.ClassNames()
	featureNames := dataset.IrisFeatureNames()

	p := plot.New()
	p.Title.Text = "Predicted vs. actual classes"
	if xFeature < len(featureNames) {
		p.X.Label.Text = featureNames[xFeature]
	}
	if yFeature < len(featureNames) {
		p.Y.Label.Text = featureNames[yFeature]
	}
	p.Add(plotter.NewGrid())

	correct := make([]plotter.XYs, len(names))
	var wrong plotter.XYs
	for i := 0; i < test.Len(); i++ {
		rec := test.Record(i)
		xy := plotter.XY{X: rec.Features[xFeature], Y: rec.Features[yFeature]}
		if predicted[i] == rec.Label {
			correct[rec.Label] = append(correct[rec.Label], xy)
		} else {
			wrong = append(wrong, xy)
		}
	}

	for label, xys := range correct {
		if len(xys) == 0 {
			continue
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return errors.Wrap(err, "visualization.PredictionScatter: class series")
		}
		s.GlyphStyle.Color = plotutil.Color(label)
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add(names[label], s)
	}

	if len(wrong) > 0 {
		s, err := plotter.NewScatter(wrong)
		if err != nil {
			return errors.Wrap(err, "visualization.PredictionScatter: misprediction series")
		}
		s.GlyphStyle.Shape = draw.CrossGlyph{}
		s.GlyphStyle.Color = plotutil.Color(len(names))
		s.GlyphStyle.Radius = vg.Points(4)
		p.Add(s)
		p.Legend.Add("mispredicted", s)
	}

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrap(err, "visualization.PredictionScatter: saving plot")
	}
	return nil
}
