package models

import (
	"encoding/json"
	"testing"
)

func TestDefaultProgressHasNonNilSlices(t *testing.T) {
	p := DefaultProgress()

	if p.CompletedDays == nil || p.KnownLetters == nil || p.UnknownLetters == nil {
		t.Error("Default progress should not contain nil slices")
	}
	if p.Stage1.LettersLearned == nil || p.Stage1.SyllablesRead == nil || p.Stage1.WordsRead == nil {
		t.Error("Default stage 1 progress should not contain nil slices")
	}
	if p.Stage2.WordsRead == nil || p.Stage3.SentencesRead == nil {
		t.Error("Default stage 2/3 progress should not contain nil slices")
	}
	if p.Achievements == nil {
		t.Error("Default achievements should not be nil")
	}
	// Day 0 (the diagnostic) is the first thing a fresh learner does.
	if p.CurrentDay != 0 {
		t.Errorf("Default CurrentDay = %d, want 0", p.CurrentDay)
	}
}

func TestProgressRoundTrip(t *testing.T) {
	p := DefaultProgress()
	p.ChildName = "Мила"
	p.Character = CharacterDino
	p.CompletedDays = []int{0, 1, 2}
	p.CurrentDay = 3
	p.KnownLetters = []string{"А", "М"}
	p.Stage1.ConsecutiveCorrectSyllables = 7
	p.Stage1.Stage1Passed = true

	doc, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	restored := DefaultProgress()
	if err := json.Unmarshal(doc, &restored); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if restored.ChildName != p.ChildName || restored.Character != p.Character {
		t.Error("Identity fields did not survive the round trip")
	}
	if restored.CurrentDay != 3 || len(restored.CompletedDays) != 3 {
		t.Error("Day fields did not survive the round trip")
	}
	if restored.Stage1.ConsecutiveCorrectSyllables != 7 || !restored.Stage1.Stage1Passed {
		t.Error("Stage 1 fields did not survive the round trip")
	}
}

// Documents written before a field existed must load with that field at
// its default, not zeroed in a way that breaks the rest of the state.
func TestOldSnapshotMergesOverDefaults(t *testing.T) {
	old := []byte(`{"childName":"Ваня","currentDay":5,"completedDays":[0,1,2,3,4]}`)

	p := DefaultProgress()
	if err := json.Unmarshal(old, &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if p.ChildName != "Ваня" || p.CurrentDay != 5 {
		t.Error("Snapshot fields not applied")
	}
	if len(p.CompletedDays) != 5 {
		t.Errorf("CompletedDays = %v", p.CompletedDays)
	}
	// Fields absent from the snapshot keep their defaults.
	if p.Achievements == nil {
		t.Error("Achievements should keep the default empty slice")
	}
	if p.Stage1.SyllablesRead == nil {
		t.Error("Stage 1 slices should keep their defaults")
	}
}

func TestValidCharacter(t *testing.T) {
	tests := []struct {
		character Character
		want      bool
	}{
		{CharacterDino, true},
		{CharacterRocket, true},
		{CharacterLion, true},
		{Character("dragon"), false},
		{Character(""), false},
	}

	for _, tt := range tests {
		if got := ValidCharacter(tt.character); got != tt.want {
			t.Errorf("ValidCharacter(%q) = %v, want %v", tt.character, got, tt.want)
		}
	}
}

func TestHasCompletedAndKnowsLetter(t *testing.T) {
	p := DefaultProgress()
	p.CompletedDays = []int{0, 3}
	p.KnownLetters = []string{"А", "М"}

	if !p.HasCompleted(0) || !p.HasCompleted(3) || p.HasCompleted(1) {
		t.Error("HasCompleted gave wrong answers")
	}
	if !p.KnowsLetter("А") || p.KnowsLetter("У") {
		t.Error("KnowsLetter gave wrong answers")
	}
}

func TestAppendUnique(t *testing.T) {
	s := []string{"А"}
	s = AppendUnique(s, "М")
	s = AppendUnique(s, "А")
	if len(s) != 2 {
		t.Errorf("AppendUnique produced %v", s)
	}

	n := []int{1}
	n = AppendUniqueInt(n, 1)
	n = AppendUniqueInt(n, 2)
	if len(n) != 2 {
		t.Errorf("AppendUniqueInt produced %v", n)
	}
}

func TestRemoveString(t *testing.T) {
	s := RemoveString([]string{"А", "М", "О"}, "М")
	if len(s) != 2 || s[0] != "А" || s[1] != "О" {
		t.Errorf("RemoveString produced %v", s)
	}
	if got := RemoveString(s, "Я"); len(got) != 2 {
		t.Errorf("Removing an absent element produced %v", got)
	}
}

func TestDiagnosticResultDayResult(t *testing.T) {
	r := DiagnosticResult{
		KnownLetters:   []string{"А", "М"},
		UnknownLetters: []string{"У"},
	}
	dr := r.DayResult()
	if dr.CorrectAnswers != 2 {
		t.Errorf("CorrectAnswers = %d, want 2", dr.CorrectAnswers)
	}
	if len(dr.KnownLetters) != 2 || len(dr.UnknownLetters) != 1 {
		t.Error("Letter lists not carried over")
	}
}
