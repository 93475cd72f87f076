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

package storage

import (
	"github.com/poiesic/matchpoint/core"
)

// MarshalJobPosting serializes a JobPosting to bytes.
func MarshalJobPosting(job *core.JobPosting) []byte {
	buf := make([]byte, core.JobPostingMUS.Size(*job))
	core.JobPostingMUS.Marshal(*job, buf)
	return buf
}

// UnmarshalJobPosting deserializes a JobPosting from bytes.
func UnmarshalJobPosting(data []byte) (*core.JobPosting, error) {
	job, _, err := core.JobPostingMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// MarshalCandidateProfile serializes a CandidateProfile to bytes.
func MarshalCandidateProfile(candidate *core.CandidateProfile) []byte {
	buf := make([]byte, core.CandidateProfileMUS.Size(*candidate))
	core.CandidateProfileMUS.Marshal(*candidate, buf)
	return buf
}

// UnmarshalCandidateProfile deserializes a CandidateProfile from bytes.
func UnmarshalCandidateProfile(data []byte) (*core.CandidateProfile, error) {
	candidate, _, err := core.CandidateProfileMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

// MarshalVectorRecord serializes a VectorRecord to bytes.
func MarshalVectorRecord(vector *core.VectorRecord) []byte {
	buf := make([]byte, core.VectorRecordMUS.Size(*vector))
	core.VectorRecordMUS.Marshal(*vector, buf)
	return buf
}

// UnmarshalVectorRecord deserializes a VectorRecord from bytes.
func UnmarshalVectorRecord(data []byte) (*core.VectorRecord, error) {
	vector, _, err := core.VectorRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &vector, nil
}

// MarshalJobRanking serializes a JobRanking to bytes.
func MarshalJobRanking(ranking *core.JobRanking) []byte {
	buf := make([]byte, core.JobRankingMUS.Size(*ranking))
	core.JobRankingMUS.Marshal(*ranking, buf)
	return buf
}

// UnmarshalJobRanking deserializes a JobRanking from bytes.
func UnmarshalJobRanking(data []byte) (*core.JobRanking, error) {
	ranking, _, err := core.JobRankingMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &ranking, nil
}

// MarshalHiringRecord serializes a HiringRecord to bytes.
func MarshalHiringRecord(record *core.HiringRecord) []byte {
	buf := make([]byte, core.HiringRecordMUS.Size(*record))
	core.HiringRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalHiringRecord deserializes a HiringRecord from bytes.
func UnmarshalHiringRecord(data []byte) (*core.HiringRecord, error) {
	record, _, err := core.HiringRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarshalCheckpoint serializes a Checkpoint to bytes.
func MarshalCheckpoint(checkpoint *core.Checkpoint) []byte {
	buf := make([]byte, core.CheckpointMUS.Size(*checkpoint))
	core.CheckpointMUS.Marshal(*checkpoint, buf)
	return buf
}

// UnmarshalCheckpoint deserializes a Checkpoint from bytes.
func UnmarshalCheckpoint(data []byte) (*core.Checkpoint, error) {
	checkpoint, _, err := core.CheckpointMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &checkpoint, nil
}

// MarshalUnitMarker serializes a UnitMarker to bytes.
func MarshalUnitMarker(marker *core.UnitMarker) []byte {
	buf := make([]byte, core.UnitMarkerMUS.Size(*marker))
	core.UnitMarkerMUS.Marshal(*marker, buf)
	return buf
}

// UnmarshalUnitMarker deserializes a UnitMarker from bytes.
func UnmarshalUnitMarker(data []byte) (*core.UnitMarker, error) {
	marker, _, err := core.UnitMarkerMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &marker, nil
}
