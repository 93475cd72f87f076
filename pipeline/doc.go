// Package pipeline orchestrates the four-stage matching run: ingest raw
// records into storage, extract normalized features, embed canonical texts,
// and match candidates to jobs.
//
// Each stage is divided into numbered units of work and checkpointed per
// unit, so an interrupted run resumes at the first incomplete unit. The
// embed stage additionally skips records whose canonical text hash matches
// the stored vector, making re-runs cheap when the corpus is unchanged.
package pipeline
