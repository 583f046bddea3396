// Package irissvm evaluates an RBF-kernel support-vector classifier on the
// classic Iris measurements by brute-force hyperparameter search.
//
// The workflow is the reference one for small fixed corpora: standardize
// the features, partition the records into train/validation/test subsets
// with a seeded shuffle, sweep a two-dimensional (C, gamma) grid scoring
// each configuration on the validation subset, retrain the first
// best-scoring configuration on the combined train+validation data, and
// report test performance as a predicted-vs-actual confusion table and an
// optional scatter plot.
//
// Packages:
//
//   - dataset: labeled records, the embedded Iris corpus, and the
//     deterministic three-way partitioner
//   - preprocessing: the standard (zero mean, unit variance) scaler
//   - modelselection: row-major grid enumeration, validation scoring, and
//     first-match best-point selection over an injectable trainer
//   - svm: the SVC training collaborator (simplified SMO, one-vs-one)
//   - metrics: accuracy and the confusion table
//   - visualization: scatter rendering of the scored test subset
//
// The grid search depends only on the modelselection.Trainer interface, so
// it is testable with a deterministic fake classifier; the svm package is
// the production collaborator wired in by cmd/irisgrid.
package irissvm
