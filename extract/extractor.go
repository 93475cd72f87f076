// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package extract

import (
	"log/slog"
	"strings"

	"github.com/poiesic/matchpoint/core"
)

// Extractor derives a FeatureSet from job postings and candidate profiles.
// Extraction is deterministic: the same record always produces the same
// features, which keeps content hashes stable across runs.
type Extractor struct {
	logger *slog.Logger
}

type ExtractorOption func(*Extractor)

func WithLogger(logger *slog.Logger) ExtractorOption {
	return func(e *Extractor) {
		e.logger = logger
	}
}

func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// JobFeatures extracts features from a job posting. Declared structured
// fields always win; free-text inference only fills fields the posting
// left blank.
func (e *Extractor) JobFeatures(job *core.JobPosting) core.FeatureSet {
	requirements := strings.Join([]string{job.Competencies, job.Activities}, " ")

	features := core.FeatureSet{
		Skills:    ExtractSkills(requirements),
		Education: declaredOrInferred(job.EducationText, requirements, ParseEducation, InferEducation),
		Seniority: declaredOrInferred(job.SeniorityText, job.Title+" "+requirements, ParseSeniority, InferSeniority),
		English:   declaredLanguage(job.EnglishText, requirements, InferEnglish),
		Spanish:   declaredLanguage(job.SpanishText, requirements, InferSpanish),
		Location:  ParseLocation(job.City, job.State, job.Country),
	}
	features.CanonicalText = jobCanonicalText(job, features)

	if len(features.Skills) == 0 {
		e.logger.Debug("job posting yielded no keywords", "job_id", job.Id)
	}
	return features
}

// CandidateFeatures extracts features from a candidate profile. Skills and
// location always come from the resume text; levels prefer the declared
// fields and fall back to resume inference.
func (e *Extractor) CandidateFeatures(candidate *core.CandidateProfile) core.FeatureSet {
	resume := candidate.Resume

	features := core.FeatureSet{
		Skills:    ExtractSkills(resume),
		Education: declaredOrInferred(candidate.EducationText, resume, ParseEducation, InferEducation),
		Seniority: declaredOrInferred(candidate.SeniorityText, candidate.Title+" "+resume, ParseSeniority, InferSeniority),
		English:   declaredLanguage(candidate.EnglishText, resume, InferEnglish),
		Spanish:   declaredLanguage(candidate.SpanishText, resume, InferSpanish),
		Location:  InferLocation(resume),
	}
	features.CanonicalText = candidateCanonicalText(candidate, features)

	if len(features.Skills) == 0 {
		e.logger.Debug("candidate profile yielded no skills", "candidate_id", candidate.Id)
	}
	return features
}

// declaredOrInferred applies parse to a declared field when it is non-empty,
// falling back to free-text inference. A declared field that fails to parse
// still suppresses inference only when parsing succeeded, so a junk declared
// value does not blind the extractor.
func declaredOrInferred[T comparable](declared, text string, parse, infer func(string) T) T {
	var zero T
	if declared != "" {
		if level := parse(declared); level != zero {
			return level
		}
	}
	return infer(text)
}

func declaredLanguage(declared, text string, infer func(string) core.LanguageLevel) core.LanguageLevel {
	if declared != "" {
		if level := ParseLanguageLevel(declared); level != core.LanguageUnknown {
			return level
		}
	}
	return infer(text)
}

// jobCanonicalText builds the normalized text that feeds the embedding
// stage. Field order is fixed so the content hash is reproducible.
func jobCanonicalText(job *core.JobPosting, features core.FeatureSet) string {
	parts := []string{
		job.Title,
		job.Company,
		job.Client,
		job.ContractType,
		levelText(job.SeniorityText, features.Seniority),
		levelText(job.EducationText, features.Education),
		job.Areas,
		job.Activities,
		job.Competencies,
	}
	return NormalizeText(strings.Join(parts, " "))
}

func candidateCanonicalText(candidate *core.CandidateProfile, features core.FeatureSet) string {
	parts := []string{
		candidate.Title,
		candidate.Area,
		levelText(candidate.SeniorityText, features.Seniority),
		levelText(candidate.EducationText, features.Education),
		strings.Join(candidate.Skills, " "),
		candidate.Resume,
	}
	return NormalizeText(strings.Join(parts, " "))
}

// levelText prefers the declared wording and falls back to the inferred
// level's name, so the canonical text carries the level even when the
// record never spelled it out. Unranked levels contribute nothing.
func levelText[T interface {
	String() string
	Rank() (int, bool)
}](declared string, level T) string {
	if declared != "" {
		return declared
	}
	if _, ok := level.Rank(); ok {
		return level.String()
	}
	return ""
}
