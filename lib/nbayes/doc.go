// Package nbayes provides a binary (spam/ham) naive bayes classifier with additive (Laplace) smoothing
// over a bag-of-tokens representation. Only the presence of a token in a message matters, not how many
// times it appears.
//
// The package has two types representing two phases of the classifier life:
//
//   - Classifier is the mutable build phase. It is created with New(alpha) and trained with Train. Train
//     accumulates, calling it twice with the same messages doubles their influence. Classifier is not
//     thread-safe, concurrent Train calls or Predict racing with Train need external synchronization.
//
//   - Model is the frozen serve phase, made by Classifier.Freeze. It is an immutable snapshot with per-token
//     log probabilities computed once, and it can be used by any number of goroutines concurrently.
//     Training the Classifier after Freeze doesn't affect models made before.
//
// Prediction iterates the whole vocabulary, not only the tokens of the message, because the absence of a
// known token is evidence as well. Tokens never seen in training are ignored. The result is the probability
// of the message being spam, in [0, 1]. Untrained classifier returns exactly 0.5.
//
// With alpha = 0 and no training messages for one of the classes the smoothed probabilities divide by zero
// and Predict returns NaN. New rejects negative and non-finite alpha, and Classifier.Ready (Model.Ready)
// reports ErrDegenerate for this case so the caller can refuse to serve such a model.
//
// Tokenize is exported and can be used standalone, e.g. for diagnostics. It lowercases the text and extracts
// the set of maximal runs of [a-z0-9'].
package nbayes
