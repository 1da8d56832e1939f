package models

import "time"

// Character is the companion figure a child picks on first run.
type Character string

const (
	CharacterDino   Character = "dino"
	CharacterRocket Character = "rocket"
	CharacterLion   Character = "lion"
)

// Characters lists the valid companion choices.
var Characters = []Character{CharacterDino, CharacterRocket, CharacterLion}

// ValidCharacter reports whether c is one of the known companions.
func ValidCharacter(c Character) bool {
	for _, known := range Characters {
		if c == known {
			return true
		}
	}
	return false
}

// Stage1Progress tracks the letters-and-first-syllables stage.
type Stage1Progress struct {
	LettersLearned              []string `json:"lettersLearned"`
	SyllablesRead               []string `json:"syllablesRead"`
	WordsRead                   []string `json:"wordsRead"`
	ConsecutiveCorrectSyllables int      `json:"consecutiveCorrectSyllables"`
	Stage1Passed                bool     `json:"stage1Passed"`
}

// Stage2Progress tracks the syllables-to-words stage.
type Stage2Progress struct {
	LettersLearned []string `json:"lettersLearned"`
	WordsRead      []string `json:"wordsRead"`
	Stage2Passed   bool     `json:"stage2Passed"`
}

// Stage3Progress tracks the sentence stage. Stage3Passed round-trips
// but is never set here; its completion criteria were never defined
// upstream.
type Stage3Progress struct {
	SentencesRead []string `json:"sentencesRead"`
	Stage3Passed  bool     `json:"stage3Passed"`
}

// Progress is the single cumulative state record for one learner. It
// serializes to the same JSON shape the web client stored under its
// localStorage key, so old snapshots load unchanged.
type Progress struct {
	ChildName      string         `json:"childName"`
	Character      Character      `json:"character"`
	CurrentDay     int            `json:"currentDay"`
	CompletedDays  []int          `json:"completedDays"`
	KnownLetters   []string       `json:"knownLetters"`
	UnknownLetters []string       `json:"unknownLetters"`
	Stage1         Stage1Progress `json:"stage1Progress"`
	Stage2         Stage2Progress `json:"stage2Progress"`
	Stage3         Stage3Progress `json:"stage3Progress"`
	Achievements   []string       `json:"achievements"`
	LastActivity   *time.Time     `json:"lastActivity"`
}

// DefaultProgress returns the state a brand-new learner starts with.
// Slices are non-nil so serialized snapshots always carry empty arrays
// rather than nulls.
func DefaultProgress() Progress {
	return Progress{
		ChildName:      "",
		Character:      CharacterDino,
		CurrentDay:     0,
		CompletedDays:  []int{},
		KnownLetters:   []string{},
		UnknownLetters: []string{},
		Stage1: Stage1Progress{
			LettersLearned: []string{},
			SyllablesRead:  []string{},
			WordsRead:      []string{},
		},
		Stage2: Stage2Progress{
			LettersLearned: []string{},
			WordsRead:      []string{},
		},
		Stage3: Stage3Progress{
			SentencesRead: []string{},
		},
		Achievements: []string{},
	}
}

// HasCompleted reports whether a day is in the completed set.
func (p *Progress) HasCompleted(day int) bool {
	return containsInt(p.CompletedDays, day)
}

// KnowsLetter reports whether a letter is in the known set.
func (p *Progress) KnowsLetter(letter string) bool {
	return containsString(p.KnownLetters, letter)
}

// AppendUnique adds v to the slice unless already present.
func AppendUnique(slice []string, v string) []string {
	if containsString(slice, v) {
		return slice
	}
	return append(slice, v)
}

// AppendUniqueInt adds v to the slice unless already present.
func AppendUniqueInt(slice []int, v int) []int {
	if containsInt(slice, v) {
		return slice
	}
	return append(slice, v)
}

// RemoveString returns the slice with every occurrence of v removed.
func RemoveString(slice []string, v string) []string {
	out := slice[:0]
	for _, s := range slice {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}

func containsString(slice []string, v string) bool {
	for _, s := range slice {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(slice []int, v int) bool {
	for _, n := range slice {
		if n == v {
			return true
		}
	}
	return false
}
