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

package ingest

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tidwall/gjson"

	"github.com/poiesic/matchpoint/core"
)

// hiredStatus is the applicant status string that marks a successful hire.
const hiredStatus = "Contratado pela Decision"

// Loader parses the three corpus files (jobs, applicants, prospects) into
// domain records. Records that fail validation are skipped and logged, not
// fatal: one malformed entry must not abort a corpus load.
type Loader struct {
	logger *slog.Logger
	now    func() time.Time
}

type LoaderOption func(*Loader)

func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithClock overrides the timestamp source. Tests use it to pin InsertedAt.
func WithClock(now func() time.Time) LoaderOption {
	return func(l *Loader) {
		l.now = now
	}
}

func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Corpus bundles the three parsed source collections.
type Corpus struct {
	Jobs       []core.JobPosting
	Candidates []core.CandidateProfile
	Hirings    []core.HiringRecord
}

// LoadCorpus reads and parses all three collections. hiringsPath may be
// empty when no prospects file is available.
func (l *Loader) LoadCorpus(jobsPath, candidatesPath, hiringsPath string) (*Corpus, error) {
	jobs, err := l.LoadJobs(jobsPath)
	if err != nil {
		return nil, err
	}
	candidates, err := l.LoadCandidates(candidatesPath)
	if err != nil {
		return nil, err
	}

	var hirings []core.HiringRecord
	if hiringsPath != "" {
		hirings, err = l.LoadHirings(hiringsPath)
		if err != nil {
			return nil, err
		}
	}

	return &Corpus{
		Jobs:       jobs,
		Candidates: candidates,
		Hirings:    hirings,
	}, nil
}

// LoadJobs reads and parses a job postings file.
func (l *Loader) LoadJobs(path string) ([]core.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading jobs file: %w", err)
	}
	return l.ParseJobs(data)
}

// ParseJobs parses the job postings document: a JSON object keyed by job id,
// each value holding informacoes_basicas and perfil_vaga sections.
func (l *Loader) ParseJobs(data []byte) ([]core.JobPosting, error) {
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: jobs document is not a JSON object", core.ErrInvalidJobPosting)
	}

	now := l.now()
	var jobs []core.JobPosting
	var skipped int

	root.ForEach(func(key, value gjson.Result) bool {
		basic := value.Get("informacoes_basicas")
		profile := value.Get("perfil_vaga")

		job := core.JobPosting{
			Id:            core.RecordID(key.String()),
			Title:         basic.Get("titulo_vaga").String(),
			Company:       basic.Get("empresa_divisao").String(),
			Client:        basic.Get("cliente").String(),
			ContractType:  basic.Get("tipo_contratacao").String(),
			City:          profile.Get("cidade").String(),
			State:         profile.Get("estado").String(),
			Country:       profile.Get("pais").String(),
			SeniorityText: profile.Get("nivel profissional").String(),
			EducationText: profile.Get("nivel_academico").String(),
			EnglishText:   profile.Get("nivel_ingles").String(),
			SpanishText:   profile.Get("nivel_espanhol").String(),
			Areas:         profile.Get("areas_atuacao").String(),
			Activities:    profile.Get("principais_atividades").String(),
			Competencies:  profile.Get("competencia_tecnicas_e_comportamentais").String(),
			InsertedAt:    now,
		}

		if err := core.ValidateJobPosting(&job); err != nil {
			skipped++
			l.logger.Warn("skipping malformed job posting", "job_id", key.String(), "error", err)
			return true
		}
		jobs = append(jobs, job)
		return true
	})

	if skipped > 0 {
		l.logger.Info("job postings loaded with skips", "loaded", len(jobs), "skipped", skipped)
	}
	return jobs, nil
}

// LoadCandidates reads and parses an applicants file.
func (l *Loader) LoadCandidates(path string) ([]core.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading applicants file: %w", err)
	}
	return l.ParseCandidates(data)
}

// ParseCandidates parses the applicants document: a JSON object keyed by
// candidate id. The resume prefers the Portuguese text and falls back to
// English when cv_pt is empty.
func (l *Loader) ParseCandidates(data []byte) ([]core.CandidateProfile, error) {
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: applicants document is not a JSON object", core.ErrInvalidCandidateProfile)
	}

	now := l.now()
	var candidates []core.CandidateProfile
	var skipped int

	root.ForEach(func(key, value gjson.Result) bool {
		basic := value.Get("infos_basicas")
		professional := value.Get("informacoes_profissionais")
		education := value.Get("formacao_e_idiomas")

		resume := value.Get("cv_pt").String()
		if resume == "" {
			resume = value.Get("cv_en").String()
		}

		candidate := core.CandidateProfile{
			Id:            core.RecordID(key.String()),
			Name:          basic.Get("nome").String(),
			Email:         basic.Get("email").String(),
			Phone:         basic.Get("telefone").String(),
			Title:         professional.Get("titulo_profissional").String(),
			Area:          professional.Get("area_atuacao").String(),
			Skills:        splitKnowledge(professional.Get("conhecimentos_tecnicos").String()),
			SeniorityText: professional.Get("nivel_profissional").String(),
			EducationText: education.Get("nivel_academico").String(),
			EnglishText:   education.Get("nivel_ingles").String(),
			SpanishText:   education.Get("nivel_espanhol").String(),
			Resume:        resume,
			InsertedAt:    now,
		}

		if err := core.ValidateCandidateProfile(&candidate); err != nil {
			skipped++
			l.logger.Warn("skipping malformed candidate profile", "candidate_id", key.String(), "error", err)
			return true
		}
		candidates = append(candidates, candidate)
		return true
	})

	if skipped > 0 {
		l.logger.Info("candidate profiles loaded with skips", "loaded", len(candidates), "skipped", skipped)
	}
	return candidates, nil
}

// LoadHirings reads and parses a prospects file.
func (l *Loader) LoadHirings(path string) ([]core.HiringRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading prospects file: %w", err)
	}
	return l.ParseHirings(data)
}

// ParseHirings parses the prospects document and keeps, per job, the codes
// of applicants whose status marks them as hired. Jobs without hires are
// omitted.
func (l *Loader) ParseHirings(data []byte) ([]core.HiringRecord, error) {
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("prospects document is not a JSON object")
	}

	var records []core.HiringRecord
	root.ForEach(func(key, value gjson.Result) bool {
		var hired []core.RecordID
		value.Get("prospects").ForEach(func(_, prospect gjson.Result) bool {
			if prospect.Get("situacao_candidado").String() == hiredStatus {
				if code := prospect.Get("codigo").String(); code != "" {
					hired = append(hired, core.RecordID(code))
				}
			}
			return true
		})
		if len(hired) > 0 {
			records = append(records, core.HiringRecord{
				JobId:      core.RecordID(key.String()),
				Candidates: hired,
			})
		}
		return true
	})
	return records, nil
}
