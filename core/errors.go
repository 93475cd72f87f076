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

import "errors"

// Domain validation errors
var (
	// ErrInvalidJobPosting indicates a JobPosting failed validation.
	ErrInvalidJobPosting = errors.New("invalid job posting")

	// ErrInvalidCandidateProfile indicates a CandidateProfile failed validation.
	ErrInvalidCandidateProfile = errors.New("invalid candidate profile")

	// ErrInvalidMatchDetail indicates a MatchDetail failed validation.
	ErrInvalidMatchDetail = errors.New("invalid match detail")

	// ErrEmptyRecordID indicates a record id is empty.
	ErrEmptyRecordID = errors.New("record id cannot be empty")

	// ErrEmptyPayload indicates a record carries no usable content at all.
	ErrEmptyPayload = errors.New("record has no usable content")

	// ErrInvalidEntityKind indicates an invalid EntityKind value.
	ErrInvalidEntityKind = errors.New("invalid entity kind")

	// ErrScoreOutOfRange indicates a component or final score is outside [0,1].
	ErrScoreOutOfRange = errors.New("score outside [0,1]")
)
