// Package extract derives structured features from job postings and
// candidate profiles.
//
// The Extractor type produces a FeatureSet per record:
//   - Skills matched against a fixed technology vocabulary
//   - Education, seniority and language proficiency levels
//   - A Brazilian location (city, state, country)
//   - The normalized canonical text that feeds the embedding stage
//
// Declared structured fields always take precedence over free-text
// inference. Extraction is pure and deterministic so repeated runs over
// unchanged records produce identical features and content hashes.
package extract
