// Command irisgrid runs the full evaluation workflow on the embedded Iris
// corpus: scale features, partition into train/validation/test, grid-search
// the SVC's C and gamma, retrain the best configuration on the combined
// train+validation data, and report test accuracy, the confusion table,
// and an optional scatter plot of predicted vs. actual classes.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/macaler/iris-svm-classification/dataset"
	"github.com/macaler/iris-svm-classification/metrics"
	"github.com/macaler/iris-svm-classification/modelselection"
	"github.com/macaler/iris-svm-classification/pkg/log"
	"github.com/macaler/iris-svm-classification/preprocessing"
	"github.com/macaler/iris-svm-classification/svm"
	"github.com/macaler/iris-svm-classification/visualization"
)

func main() {
	var (
		seed        = flag.Uint64("seed", 42, "seed for the partition shuffle")
		randomState = flag.Uint64("random-state", 1, "seed for the SMO solver, reused for the final retrain")
		trainFrac   = flag.Float64("train", 0.6, "training fraction")
		valFrac     = flag.Float64("validation", 0.2, "validation fraction")
		testFrac    = flag.Float64("test", 0.2, "test fraction")
		cList       = flag.String("c", "0.1,1,10,100", "comma-separated C candidates")
		gammaList   = flag.String("gamma", "0.001,0.01,0.1,1", "comma-separated gamma candidates")
		parallelRun = flag.Bool("parallel", false, "evaluate grid points concurrently")
		plotPath    = flag.String("plot", "", "path for the predicted-vs-actual scatter plot (empty: skip)")
		plotX       = flag.Int("plot-x", 2, "feature index for the plot x axis")
		plotY       = flag.Int("plot-y", 3, "feature index for the plot y axis")
		logLevel    = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	log.SetLevel(parseLevel(*logLevel))
	logger := log.GetLoggerWithName("irisgrid")

	cs, err := parseFloats(*cList)
	if err != nil {
		fail(logger, "parsing -c", err)
	}
	gammas, err := parseFloats(*gammaList)
	if err != nil {
		fail(logger, "parsing -gamma", err)
	}

	iris, err := dataset.LoadIris()
	if err != nil {
		fail(logger, "loading iris corpus", err)
	}
	logger.Info("Loaded dataset",
		log.SamplesKey, iris.Len(),
		log.FeaturesKey, iris.NumFeatures(),
		log.ClassesKey, iris.NumClasses(),
	)

	// Scale before splitting, matching the reference workflow.
	scaler := preprocessing.NewStandardScaler()
	scaled, err := scaler.FitTransform(iris.Matrix())
	if err != nil {
		fail(logger, "scaling features", err)
	}
	ds, err := iris.WithFeatures(scaled)
	if err != nil {
		fail(logger, "rebuilding scaled dataset", err)
	}

	partition, err := dataset.Split(ds, [3]float64{*trainFrac, *valFrac, *testFrac}, *seed)
	if err != nil {
		fail(logger, "partitioning dataset", err)
	}

	trainer := svm.NewTrainer()
	trainer.RandomState = *randomState

	search := modelselection.NewGridSearch(trainer, modelselection.WithParallel(*parallelRun))
	result, err := search.Run(partition.Train, partition.Validation, modelselection.Grid{Cs: cs, Gammas: gammas})
	if err != nil {
		fail(logger, "grid search", err)
	}
	fmt.Printf("best configuration: %s (validation accuracy %.4f)\n",
		result.BestPoint(), result.BestScore())

	// Retrain at the selected point on train+validation; the solver seed
	// is the same one the search used.
	combined, err := partition.Train.Concat(partition.Validation)
	if err != nil {
		fail(logger, "combining train and validation subsets", err)
	}
	clf, err := trainer.Train(combined, result.BestPoint())
	if err != nil {
		fail(logger, "retraining best configuration", err)
	}

	predicted := make([]int, partition.Test.Len())
	for i := range predicted {
		predicted[i], err = clf.Predict(partition.Test.Record(i).Features)
		if err != nil {
			fail(logger, "predicting test subset", err)
		}
	}

	accuracy, err := metrics.Accuracy(partition.Test.Labels(), predicted)
	if err != nil {
		fail(logger, "computing test accuracy", err)
	}
	table, err := metrics.NewConfusionTable(partition.Test.Labels(), predicted, ds.ClassNames())
	if err != nil {
		fail(logger, "building confusion table", err)
	}

	fmt.Printf("test accuracy: %.4f (%d samples)\n\n", accuracy, table.Total())
	fmt.Print(table.String())

	if *plotPath != "" {
		if err := visualization.PredictionScatter(partition.Test, predicted, *plotX, *plotY, *plotPath); err != nil {
			fail(logger, "rendering scatter plot", err)
		}
		logger.Info("Saved scatter plot", "path", *plotPath)
	}
}

func parseFloats(list string) ([]float64, error) {
	parts := strings.Split(list, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}

func fail(logger log.Logger, stage string, err error) {
	logger.Error("Run failed at "+stage, err)
	os.Exit(1)
}
