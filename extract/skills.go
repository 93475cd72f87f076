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

package extract

import (
	"sort"
	"strings"
)

// maxSkills bounds how many skills one record can contribute, keeping the
// keyword sets comparable across records of very different text lengths.
const maxSkills = 20

// skillVocabulary is the curated set of technical terms recognized in job
// descriptions and resumes. Multi-token terms are matched as token windows.
var skillVocabulary = []string{
	"python", "java", "javascript", "js", "c#", "c++", "php", "ruby", "go", "golang", "swift",
	"html", "css", "react", "angular", "vue", "node", "django", "flask", "laravel", "spring",
	"aws", "azure", "gcp", "cloud", "docker", "kubernetes", "k8s", "terraform", "ansible",
	"sql", "mysql", "postgresql", "mongodb", "oracle", "sql server", "nosql", "redis",
	"git", "jenkins", "cicd", "ci/cd", "devops", "agile", "scrum", "kanban",
	"machine learning", "ml", "ai", "data science", "big data", "hadoop", "spark",
	"excel", "power bi", "tableau", "data visualization", "análise de dados",
	"totvs", "sap", "erp", "crm", "navision", "dynamics", "salesforce",
	"linux", "windows", "unix", "bash", "shell", "powershell",
	"api", "rest", "soap", "microservices", "microsserviços", "web services",
	"ux", "ui", "user experience", "user interface", "figma", "sketch", "adobe xd",
	"jira", "confluence", "gestão de projetos", "project management",
}

// vocabularyEntry is a pre-split vocabulary term.
type vocabularyEntry struct {
	term   string
	tokens []string
}

var vocabularyEntries = buildVocabulary()

func buildVocabulary() []vocabularyEntry {
	entries := make([]vocabularyEntry, 0, len(skillVocabulary))
	for _, term := range skillVocabulary {
		entries = append(entries, vocabularyEntry{
			term:   term,
			tokens: strings.Fields(term),
		})
	}
	return entries
}

// skillHit tracks occurrences of one vocabulary term within a document.
type skillHit struct {
	display string // casing of the first occurrence
	count   int
	first   int // token index of the first occurrence
}

// ExtractSkills finds vocabulary terms in free text and returns up to
// maxSkills of them, most frequent first. Matching is case-insensitive and
// de-duplicated; the returned strings keep the casing of each term's first
// occurrence. Frequency ties are broken by order of first appearance so the
// result is deterministic.
func ExtractSkills(text string) []string {
	if text == "" {
		return nil
	}

	tokens := tokenize(text)
	hits := make(map[string]*skillHit)

	for i := range tokens {
		for _, entry := range vocabularyEntries {
			width := len(entry.tokens)
			if i+width > len(tokens) {
				continue
			}
			if !windowMatches(tokens[i:i+width], entry.tokens) {
				continue
			}
			if hit, ok := hits[entry.term]; ok {
				hit.count++
				continue
			}
			display := tokens[i].original
			if width > 1 {
				parts := make([]string, width)
				for j := 0; j < width; j++ {
					parts[j] = tokens[i+j].original
				}
				display = strings.Join(parts, " ")
			}
			hits[entry.term] = &skillHit{display: display, count: 1, first: i}
		}
	}

	if len(hits) == 0 {
		return nil
	}

	ordered := make([]*skillHit, 0, len(hits))
	for _, hit := range hits {
		ordered = append(ordered, hit)
	}
	sort.Slice(ordered, func(a, b int) bool {
		if ordered[a].count != ordered[b].count {
			return ordered[a].count > ordered[b].count
		}
		return ordered[a].first < ordered[b].first
	})

	if len(ordered) > maxSkills {
		ordered = ordered[:maxSkills]
	}

	skills := make([]string, len(ordered))
	for i, hit := range ordered {
		skills[i] = hit.display
	}
	return skills
}

func windowMatches(window []token, terms []string) bool {
	for i, term := range terms {
		if window[i].lowered != term {
			return false
		}
	}
	return true
}
