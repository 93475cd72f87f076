// Package score computes the multi-factor match score between a job and a
// shortlisted candidate.
//
// Seven components feed the final score: semantic similarity (carried over
// from the shortlist stage), keyword containment, location proximity, and
// four hierarchy comparisons (seniority, education, English, Spanish). The
// weights are fixed and sum to 1.0, so every final score lands in [0,1].
//
// The package also provides an Evaluator that replays recorded hiring
// outcomes against stored rankings to measure top-N hit rate.
package score
