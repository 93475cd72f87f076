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

package score

import (
	"slices"
	"strings"

	"github.com/poiesic/matchpoint/core"
)

// Component weights of the final score. They sum to exactly 1.0, which
// keeps the final score in [0,1] for component scores in [0,1].
const (
	WeightSemantic     = 0.40
	WeightKeywords     = 0.30
	WeightLocation     = 0.05
	WeightProfessional = 0.10
	WeightAcademic     = 0.10
	WeightEnglish      = 0.025
	WeightSpanish      = 0.025
)

// neutralScore is used for hierarchy comparisons where either side carries
// no usable signal. It is an explicit "insufficient signal" default, not a
// penalty.
const neutralScore = 0.5

// hierarchyFloor bounds how far an under-qualified candidate can be marked
// down on any single hierarchy component.
const hierarchyFloor = 0.2

// Scorer computes per-candidate match details for a job. Scoring is pure
// and deterministic; a Scorer is safe for concurrent use.
type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

// Score computes the MatchDetail for one job/candidate pair. The semantic
// component is the coarse similarity from the shortlist stage, passed
// through unchanged.
func (s *Scorer) Score(job *core.JobPosting, candidate *core.CandidateProfile, semantic float64) core.MatchDetail {
	detail := core.MatchDetail{
		JobId:             job.Id,
		CandidateId:       candidate.Id,
		Semantic:          clamp01(semantic),
		Keywords:          keywordScore(job.Features.Skills, candidate.Features.Skills),
		Location:          locationScore(job.Features.Location, candidate.Features.Location),
		ProfessionalLevel: hierarchyScore(rank(candidate.Features.Seniority), rank(job.Features.Seniority)),
		AcademicLevel:     hierarchyScore(rank(candidate.Features.Education), rank(job.Features.Education)),
		EnglishLevel:      hierarchyScore(rank(candidate.Features.English), rank(job.Features.English)),
		SpanishLevel:      hierarchyScore(rank(candidate.Features.Spanish), rank(job.Features.Spanish)),
	}

	detail.FinalScore = WeightSemantic*detail.Semantic +
		WeightKeywords*detail.Keywords +
		WeightLocation*detail.Location +
		WeightProfessional*detail.ProfessionalLevel +
		WeightAcademic*detail.AcademicLevel +
		WeightEnglish*detail.EnglishLevel +
		WeightSpanish*detail.SpanishLevel

	return detail
}

// RankCandidates orders match details by descending final score, breaking
// ties by ascending candidate id for reproducibility.
func RankCandidates(details []core.MatchDetail) {
	slices.SortFunc(details, func(a, b core.MatchDetail) int {
		if a.FinalScore > b.FinalScore {
			return -1
		}
		if a.FinalScore < b.FinalScore {
			return 1
		}
		if a.CandidateId < b.CandidateId {
			return -1
		}
		if a.CandidateId > b.CandidateId {
			return 1
		}
		return 0
	})
}

// keywordScore is the containment ratio of the job's keyword set inside the
// candidate's: |job ∩ candidate| / |job|, 0 when either set is empty.
//
// The ratio is deliberately asymmetric: it measures how much of what the
// job asks for the candidate has, so dividing by the candidate's (often
// much larger) keyword count would be wrong.
func keywordScore(jobKeywords, candidateKeywords []string) float64 {
	if len(jobKeywords) == 0 || len(candidateKeywords) == 0 {
		return 0
	}

	have := make(map[string]struct{}, len(candidateKeywords))
	for _, kw := range candidateKeywords {
		have[strings.ToLower(kw)] = struct{}{}
	}

	jobSet := make(map[string]struct{}, len(jobKeywords))
	for _, kw := range jobKeywords {
		jobSet[strings.ToLower(kw)] = struct{}{}
	}

	matched := 0
	for kw := range jobSet {
		if _, ok := have[kw]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(jobSet))
}

// locationScore compares two locations at descending granularity. The
// output is always one of {1.0, 0.7, 0.3, 0.0}; empty fields never match.
func locationScore(job, candidate core.Location) float64 {
	switch {
	case fieldMatches(job.City, candidate.City):
		return 1.0
	case fieldMatches(job.State, candidate.State):
		return 0.7
	case fieldMatches(job.Country, candidate.Country):
		return 0.3
	default:
		return 0.0
	}
}

func fieldMatches(a, b string) bool {
	return a != "" && b != "" && strings.EqualFold(a, b)
}

// hierarchyScore compares candidate and job ranks on a shared ordered
// hierarchy. A candidate at or above the required rank scores 1.0; below
// it, the ratio of ranks floored at hierarchyFloor. When either side fails
// to map onto the hierarchy the comparison is neutral.
func hierarchyScore(candidateRank, jobRank int) float64 {
	if candidateRank == 0 || jobRank == 0 {
		return neutralScore
	}
	if candidateRank >= jobRank {
		return 1.0
	}
	ratio := float64(candidateRank) / float64(jobRank)
	if ratio < hierarchyFloor {
		return hierarchyFloor
	}
	return ratio
}

// rank flattens a level's (rank, ok) pair to 0 for unmapped levels.
func rank[T interface{ Rank() (int, bool) }](level T) int {
	r, ok := level.Rank()
	if !ok {
		return 0
	}
	return r
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
