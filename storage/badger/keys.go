package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/matchpoint/core"
)

// Key prefixes for different data types
const (
	jobRecordPrefix       = "jobrec"
	candidateRecordPrefix = "canrec"
	hiringRecordPrefix    = "hirrec"
	vectorRecordPrefix    = "vecrec"
	vectorDimensionKey    = "vecdim"
	rankingRecordPrefix   = "rnkrec"
	checkpointPrefix      = "chkpt"
	unitMarkerPrefix      = "chkptu"
)

// makeJobKey generates a key for a job posting by id.
func makeJobKey(id core.RecordID) []byte {
	return []byte(fmt.Sprintf("%s:%s", jobRecordPrefix, id))
}

// makeCandidateKey generates a key for a candidate profile by id.
func makeCandidateKey(id core.RecordID) []byte {
	return []byte(fmt.Sprintf("%s:%s", candidateRecordPrefix, id))
}

// makeHiringKey generates a key for a hiring record by job id.
func makeHiringKey(jobID core.RecordID) []byte {
	return []byte(fmt.Sprintf("%s:%s", hiringRecordPrefix, jobID))
}

// makeVectorKey generates a composite key for a vector by (kind, id).
// Keys within one kind sort by record id, so prefix iteration yields
// ascending id order.
func makeVectorKey(kind core.EntityKind, id core.RecordID) []byte {
	return []byte(fmt.Sprintf("%s:%d:%s", vectorRecordPrefix, kind, id))
}

// makeVectorKindPrefix generates the iteration prefix for one entity kind.
func makeVectorKindPrefix(kind core.EntityKind) []byte {
	return []byte(fmt.Sprintf("%s:%d:", vectorRecordPrefix, kind))
}

// makeRankingKey generates a key for a job ranking by job id.
func makeRankingKey(jobID core.RecordID) []byte {
	return []byte(fmt.Sprintf("%s:%s", rankingRecordPrefix, jobID))
}

// makeCheckpointKey generates a key for a stage checkpoint.
func makeCheckpointKey(stage string) []byte {
	return []byte(fmt.Sprintf("%s:%s", checkpointPrefix, stage))
}

// makeUnitMarkerKey generates a composite key for a unit completion marker.
// The unit is written in BigEndian order so markers sort numerically under
// the stage prefix.
func makeUnitMarkerKey(stage string, unit uint64) []byte {
	prefix := makeUnitMarkerPrefix(stage)
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], unit)
	return buf
}

// makeUnitMarkerPrefix generates the iteration prefix for a stage's unit
// markers.
func makeUnitMarkerPrefix(stage string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", unitMarkerPrefix, stage))
}
