// Package sentiment implements the word-list review scorer.
//
// Text is lowercased, split into runs of ASCII word characters, and each token is looked up
// in two fixed lexicons. The larger count wins; ties (including no matches) are neutral.
// There is no stemming, negation or weighting: "loved" does not match "love".
package sentiment
