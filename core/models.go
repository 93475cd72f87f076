package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// RecordID is the external identifier of a job posting or candidate profile.
// IDs come from the source collections and are treated as opaque strings;
// ordering comparisons (tie-breaks) use plain lexicographic order.
type RecordID string

// TextHash is a 64-bit digest of a canonical text blob. Vectors carry the
// hash of the text they were generated from, so the embedding stage can tell
// whether a stored vector is still current.
type TextHash uint64

// HashText computes a deterministic TextHash using BLAKE2b.
// Identical text always produces an identical hash.
func HashText(text string) TextHash {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return TextHash(binary.LittleEndian.Uint64(sum))
}

// EntityKind distinguishes the two record types that flow through the
// pipeline.
type EntityKind int

const (
	// EntityJob is a job posting.
	EntityJob EntityKind = iota + 1
	// EntityCandidate is a candidate profile.
	EntityCandidate
)

// Location is a city/state/country tuple. Empty fields mean the level was not
// determined, not that it is absent from the world.
type Location struct {
	City    string
	State   string
	Country string
}

// FeatureSet is the normalized output of feature extraction for either entity
// kind. Every categorical field is either a recognized canonical value or its
// explicit Unknown sentinel; an empty string never carries meaning here.
type FeatureSet struct {
	Skills        []string
	Education     EducationLevel
	Seniority     SeniorityLevel
	English       LanguageLevel
	Spanish       LanguageLevel
	Location      Location
	CanonicalText string
}

// JobPosting is an ingested job requisition. The ...Text fields hold the
// requisition's declared level descriptions verbatim; extraction normalizes
// them into Features. Immutable once ingested; re-ingestion replaces the
// record wholesale.
type JobPosting struct {
	Id            RecordID
	Title         string
	Company       string
	Client        string
	ContractType  string
	City          string
	State         string
	Country       string
	SeniorityText string
	EducationText string
	EnglishText   string
	SpanishText   string
	Areas         string // free-text areas of expertise
	Activities    string // free-text main activities
	Competencies  string // free-text technical and behavioral competencies
	Features      FeatureSet
	InsertedAt    time.Time
}

// CandidateProfile is an ingested candidate. Declared structured fields take
// precedence over values extracted from the resume; extraction only fills
// blanks. Immutable once ingested.
type CandidateProfile struct {
	Id            RecordID
	Name          string
	Email         string
	Phone         string
	Title         string // declared professional title
	Area          string // declared area of expertise
	Skills        []string // declared technical knowledge, split on separators
	SeniorityText string
	EducationText string
	EnglishText   string
	SpanishText   string
	Resume        string // resume text, Portuguese variant preferred
	Features      FeatureSet
	InsertedAt    time.Time
}

// VectorRecord is an embedding vector for one entity, keyed by (kind, id).
// Dim is constant across the whole corpus; Hash is the TextHash of the
// canonical text the vector was generated from.
type VectorRecord struct {
	Kind      EntityKind
	Id        RecordID
	Vector    []float32
	Hash      TextHash
	UpdatedAt time.Time
}

// MatchDetail holds the seven component scores and the final weighted score
// for one (job, candidate) pair. All values are in [0,1]. Created by the
// scorer and never mutated afterward except by full recomputation.
type MatchDetail struct {
	JobId             RecordID
	CandidateId       RecordID
	Semantic          float64
	Keywords          float64
	Location          float64
	ProfessionalLevel float64
	AcademicLevel     float64
	EnglishLevel      float64
	SpanishLevel      float64
	FinalScore        float64
}

// JobRanking is the ordered match result for one job: descending final
// score, ties broken by candidate id ascending. One ranking is written
// atomically per job, which makes a single job the checkpoint unit of the
// match stage.
type JobRanking struct {
	JobId     RecordID
	Matches   []MatchDetail
	UpdatedAt time.Time
}

// HiringRecord maps a job to the candidates actually hired for it. Read-only
// to the engine; used for offline hit-rate evaluation and for flagging hired
// candidates in served rankings.
type HiringRecord struct {
	JobId      RecordID
	Candidates []RecordID
}

// StageStatus is the lifecycle state of one pipeline stage.
type StageStatus int

const (
	// StageNotStarted means no unit of the stage has completed.
	StageNotStarted StageStatus = iota
	// StageInProgress means at least one unit completed but not all.
	StageInProgress
	// StageComplete means every unit of the stage completed.
	StageComplete
)

// Checkpoint records the status of one pipeline stage. BatchSize pins the
// unit partitioning the stage was started with; resuming with a different
// batch size invalidates the stage.
type Checkpoint struct {
	Stage     string
	Status    StageStatus
	BatchSize int
	UpdatedAt time.Time
}

// UnitMarker records completion of a single unit within a stage.
type UnitMarker struct {
	Stage       string
	Unit        uint64
	CompletedAt time.Time
}

// ShortlistEntry is one coarse-similarity hit from the retriever.
type ShortlistEntry struct {
	CandidateId RecordID
	Score       float64
}

// RankedCandidate is one row of the served output for a job: the match
// breakdown plus the display fields the presentation layer needs.
type RankedCandidate struct {
	CandidateId RecordID
	Name        string
	Email       string
	Phone       string
	Resume      string
	Detail      MatchDetail
	Hired       bool
}
