// Package phoneme tokenizes phonetic input and rewrites it into a sequence of
// phonemes with durations and stress, ready for frame synthesis.
//
// Ids index fixed attribute tables shared by all passes. A Buffer keeps the
// fixed capacity of the original synthesizer so that passes can insert in
// place while scanning by absolute index.
package phoneme
