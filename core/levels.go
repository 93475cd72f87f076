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

// The three categorical hierarchies used by extraction and scoring. Each
// level maps onto an ordered rank; the zero value of every enum is an
// explicit Unknown sentinel, never a meaningful level.

// EducationLevel is an ordered academic level.
type EducationLevel int

const (
	EducationUnknown EducationLevel = iota
	EducationFundamental
	EducationSecondary
	EducationTechnical
	EducationIncompleteHigher
	EducationCompleteHigher
	EducationSpecialization
	EducationMaster
	EducationDoctorate
)

var educationNames = map[EducationLevel]string{
	EducationUnknown:          "unknown",
	EducationFundamental:      "fundamental",
	EducationSecondary:        "secondary",
	EducationTechnical:        "technical",
	EducationIncompleteHigher: "incomplete higher",
	EducationCompleteHigher:   "complete higher",
	EducationSpecialization:   "specialization",
	EducationMaster:           "master",
	EducationDoctorate:        "doctorate",
}

func (l EducationLevel) String() string {
	if name, ok := educationNames[l]; ok {
		return name
	}
	return "unknown"
}

// Rank returns the position of the level in the hierarchy and whether the
// level maps onto it. Unknown does not map.
func (l EducationLevel) Rank() (int, bool) {
	if l <= EducationUnknown || l > EducationDoctorate {
		return 0, false
	}
	return int(l), true
}

// SeniorityLevel is an ordered professional level.
type SeniorityLevel int

const (
	SeniorityUnknown SeniorityLevel = iota
	SeniorityIntern
	SeniorityJunior
	SeniorityMid
	SenioritySenior
)

var seniorityNames = map[SeniorityLevel]string{
	SeniorityUnknown: "unknown",
	SeniorityIntern:  "intern",
	SeniorityJunior:  "junior",
	SeniorityMid:     "mid",
	SenioritySenior:  "senior",
}

func (l SeniorityLevel) String() string {
	if name, ok := seniorityNames[l]; ok {
		return name
	}
	return "unknown"
}

// Rank returns the position of the level in the hierarchy and whether the
// level maps onto it.
func (l SeniorityLevel) Rank() (int, bool) {
	if l <= SeniorityUnknown || l > SenioritySenior {
		return 0, false
	}
	return int(l), true
}

// LanguageLevel is an ordered language proficiency level. LanguageMentioned
// means the language appears in the text but no level could be determined; it
// is distinct from LanguageUnknown (language not mentioned at all) and, like
// it, does not map onto the ordered hierarchy.
type LanguageLevel int

const (
	LanguageUnknown LanguageLevel = iota
	LanguageMentioned
	LanguageBasic
	LanguageIntermediate
	LanguageAdvanced
	LanguageFluent
)

var languageNames = map[LanguageLevel]string{
	LanguageUnknown:      "unknown",
	LanguageMentioned:    "mentioned",
	LanguageBasic:        "basic",
	LanguageIntermediate: "intermediate",
	LanguageAdvanced:     "advanced",
	LanguageFluent:       "fluent",
}

func (l LanguageLevel) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return "unknown"
}

// Rank returns the position of the level in the hierarchy and whether the
// level maps onto it. Mentioned carries no rank.
func (l LanguageLevel) Rank() (int, bool) {
	if l < LanguageBasic || l > LanguageFluent {
		return 0, false
	}
	return int(l) - int(LanguageMentioned), true
}
