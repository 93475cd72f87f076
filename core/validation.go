// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import "fmt"

// ValidateJobPosting validates a JobPosting according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - at least one of Title, Activities, Competencies must be non-empty
//
// NOT validated (populated by the extraction stage):
//   - Features (zero value until extracted)
func ValidateJobPosting(job *JobPosting) error {
	if job == nil {
		return fmt.Errorf("%w: job is nil", ErrInvalidJobPosting)
	}

	if job.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidJobPosting, ErrEmptyRecordID)
	}

	if job.Title == "" && job.Activities == "" && job.Competencies == "" {
		return fmt.Errorf("%w: %w", ErrInvalidJobPosting, ErrEmptyPayload)
	}

	return nil
}

// ValidateCandidateProfile validates a CandidateProfile according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - at least one of Resume, Skills, Title must be non-empty
//
// NOT validated (populated by the extraction stage):
//   - Features (zero value until extracted)
func ValidateCandidateProfile(candidate *CandidateProfile) error {
	if candidate == nil {
		return fmt.Errorf("%w: candidate is nil", ErrInvalidCandidateProfile)
	}

	if candidate.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCandidateProfile, ErrEmptyRecordID)
	}

	if candidate.Resume == "" && len(candidate.Skills) == 0 && candidate.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCandidateProfile, ErrEmptyPayload)
	}

	return nil
}

// ValidateMatchDetail validates that every component score and the final
// score sit inside [0,1].
func ValidateMatchDetail(detail *MatchDetail) error {
	if detail == nil {
		return fmt.Errorf("%w: detail is nil", ErrInvalidMatchDetail)
	}

	if detail.JobId == "" || detail.CandidateId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMatchDetail, ErrEmptyRecordID)
	}

	components := []float64{
		detail.Semantic,
		detail.Keywords,
		detail.Location,
		detail.ProfessionalLevel,
		detail.AcademicLevel,
		detail.EnglishLevel,
		detail.SpanishLevel,
		detail.FinalScore,
	}
	for _, score := range components {
		if score < 0 || score > 1 {
			return fmt.Errorf("%w: %w: %f", ErrInvalidMatchDetail, ErrScoreOutOfRange, score)
		}
	}

	return nil
}

// ValidateEntityKind validates that an EntityKind has a valid value.
func ValidateEntityKind(kind EntityKind) error {
	if kind != EntityJob && kind != EntityCandidate {
		return fmt.Errorf("%w: value %d", ErrInvalidEntityKind, kind)
	}
	return nil
}
