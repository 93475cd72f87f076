// Package ingest parses the raw corpus files into domain records.
//
// The corpus arrives as three JSON documents keyed by record id: job
// postings, applicant profiles and per-job prospect lists. The Loader
// flattens the nested sections into core.JobPosting and
// core.CandidateProfile values and derives core.HiringRecord entries from
// prospect statuses. Malformed entries are skipped with a warning so a
// single bad record cannot abort a load.
package ingest
