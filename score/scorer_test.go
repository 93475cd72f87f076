package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poiesic/matchpoint/core"
)

func jobWithFeatures(features core.FeatureSet) *core.JobPosting {
	return &core.JobPosting{Id: "job-1", Title: "t", Features: features}
}

func candidateWithFeatures(id string, features core.FeatureSet) *core.CandidateProfile {
	return &core.CandidateProfile{Id: core.RecordID(id), Resume: "r", Features: features}
}

func TestWeightsSumToOne(t *testing.T) {
	sum := WeightSemantic + WeightKeywords + WeightLocation +
		WeightProfessional + WeightAcademic + WeightEnglish + WeightSpanish
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestKeywordScore(t *testing.T) {
	tests := []struct {
		name      string
		job       []string
		candidate []string
		want      float64
	}{
		{"half overlap", []string{"python", "sql"}, []string{"python", "java"}, 0.5},
		{"full overlap", []string{"python"}, []string{"python", "java", "sql"}, 1.0},
		{"case insensitive", []string{"Python"}, []string{"PYTHON"}, 1.0},
		{"empty job set", nil, []string{"python"}, 0.0},
		{"empty candidate set", []string{"python"}, nil, 0.0},
		{"no overlap", []string{"go"}, []string{"php"}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, keywordScore(tt.job, tt.candidate), 1e-9)
		})
	}
}

func TestLocationScore(t *testing.T) {
	sp := core.Location{City: "São Paulo", State: "São Paulo", Country: "Brasil"}
	campinas := core.Location{City: "Campinas", State: "São Paulo", Country: "Brasil"}
	recife := core.Location{City: "Recife", State: "Pernambuco", Country: "Brasil"}
	lisbon := core.Location{City: "Lisboa", State: "Lisboa", Country: "Portugal"}

	assert.Equal(t, 1.0, locationScore(sp, sp))
	assert.Equal(t, 1.0, locationScore(sp, core.Location{City: "são paulo"}))
	assert.Equal(t, 0.7, locationScore(sp, campinas))
	assert.Equal(t, 0.3, locationScore(sp, recife))
	assert.Equal(t, 0.0, locationScore(sp, lisbon))
	assert.Equal(t, 0.0, locationScore(core.Location{}, core.Location{}))
}

// Any pair of location tuples must map to one of exactly four outputs.
func TestLocationScore_Total(t *testing.T) {
	values := []core.Location{
		{},
		{City: "X"},
		{State: "Y"},
		{Country: "Z"},
		{City: "X", State: "Y", Country: "Z"},
	}
	allowed := map[float64]bool{1.0: true, 0.7: true, 0.3: true, 0.0: true}

	for _, a := range values {
		for _, b := range values {
			assert.True(t, allowed[locationScore(a, b)])
		}
	}
}

func TestHierarchyScore(t *testing.T) {
	// Candidate at complete higher (5) against a master's requirement (7).
	assert.InDelta(t, 5.0/7.0, hierarchyScore(5, 7), 1e-9)

	// At or above the requirement.
	assert.Equal(t, 1.0, hierarchyScore(7, 7))
	assert.Equal(t, 1.0, hierarchyScore(8, 5))

	// Floor.
	assert.Equal(t, 0.2, hierarchyScore(1, 8))

	// Neutral when either side is unmapped.
	assert.Equal(t, 0.5, hierarchyScore(0, 7))
	assert.Equal(t, 0.5, hierarchyScore(5, 0))
	assert.Equal(t, 0.5, hierarchyScore(0, 0))
}

func TestScore_AcademicExample(t *testing.T) {
	s := NewScorer()
	job := jobWithFeatures(core.FeatureSet{Education: core.EducationMaster})
	candidate := candidateWithFeatures("c1", core.FeatureSet{Education: core.EducationCompleteHigher})

	detail := s.Score(job, candidate, 0)
	assert.InDelta(t, 5.0/7.0, detail.AcademicLevel, 1e-9)
}

func TestScore_FinalScoreBounds(t *testing.T) {
	s := NewScorer()
	best := core.FeatureSet{
		Skills:    []string{"python", "sql"},
		Education: core.EducationDoctorate,
		Seniority: core.SenioritySenior,
		English:   core.LanguageFluent,
		Spanish:   core.LanguageFluent,
		Location:  core.Location{City: "São Paulo", State: "São Paulo", Country: "Brasil"},
	}
	job := jobWithFeatures(best)
	perfect := candidateWithFeatures("c1", best)

	detail := s.Score(job, perfect, 1.0)
	assert.InDelta(t, 1.0, detail.FinalScore, 1e-9)

	empty := candidateWithFeatures("c2", core.FeatureSet{})
	detail = s.Score(job, empty, -1.0)
	assert.GreaterOrEqual(t, detail.FinalScore, 0.0)
	assert.LessOrEqual(t, detail.FinalScore, 1.0)
	assert.Equal(t, 0.0, detail.Semantic)
}

func TestScore_SemanticPassedThrough(t *testing.T) {
	s := NewScorer()
	detail := s.Score(jobWithFeatures(core.FeatureSet{}), candidateWithFeatures("c1", core.FeatureSet{}), 0.8)
	assert.InDelta(t, 0.8, detail.Semantic, 1e-9)
}

// A candidate gaining keywords can never lower their final score.
func TestScore_KeywordMonotonicity(t *testing.T) {
	s := NewScorer()
	job := jobWithFeatures(core.FeatureSet{Skills: []string{"python", "sql", "docker"}})

	fewer := candidateWithFeatures("c1", core.FeatureSet{Skills: []string{"python"}})
	more := candidateWithFeatures("c1", core.FeatureSet{Skills: []string{"python", "sql"}})

	scoreFewer := s.Score(job, fewer, 0.5).FinalScore
	scoreMore := s.Score(job, more, 0.5).FinalScore
	assert.Greater(t, scoreMore, scoreFewer)
}

func TestRankCandidates_TieBreak(t *testing.T) {
	details := []core.MatchDetail{
		{JobId: "j", CandidateId: "5", FinalScore: 0.9},
		{JobId: "j", CandidateId: "3", FinalScore: 0.9},
		{JobId: "j", CandidateId: "2", FinalScore: 0.7},
	}
	RankCandidates(details)

	assert.Equal(t, core.RecordID("3"), details[0].CandidateId)
	assert.Equal(t, core.RecordID("5"), details[1].CandidateId)
	assert.Equal(t, core.RecordID("2"), details[2].CandidateId)
}
