package curriculum

import (
	"testing"
)

func TestDaysAreContiguous(t *testing.T) {
	days := AllDays()
	if len(days) != 30 {
		t.Fatalf("Expected 30 days, got %d", len(days))
	}
	for i, day := range days {
		if day.Day != i+1 {
			t.Errorf("Day at position %d has number %d, want %d", i, day.Day, i+1)
		}
	}
}

func TestGetDayData(t *testing.T) {
	tests := []struct {
		name    string
		day     int
		wantNil bool
	}{
		{"diagnostic day", 0, false},
		{"first day", 1, false},
		{"last day", 30, false},
		{"negative", -1, true},
		{"past the end", 31, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetDayData(tt.day)
			if (got == nil) != tt.wantNil {
				t.Errorf("GetDayData(%d) nil=%v, want nil=%v", tt.day, got == nil, tt.wantNil)
			}
			if got != nil && got.Day != tt.day {
				t.Errorf("GetDayData(%d).Day = %d", tt.day, got.Day)
			}
		})
	}
}

func TestGetDayDataReturnsCopy(t *testing.T) {
	first := GetDayData(1)
	first.Title = "mutated"
	if GetDayData(1).Title == "mutated" {
		t.Error("GetDayData returned a pointer into the catalog")
	}
}

func TestDiagnosticDay(t *testing.T) {
	day := GetDayData(0)
	if day.Game != "diagnostic" {
		t.Errorf("Day 0 game = %q, want diagnostic", day.Game)
	}
	if len(day.Letters) != 10 {
		t.Errorf("Day 0 has %d letters, want 10", len(day.Letters))
	}
	for i, letter := range DiagnosticLetters {
		if day.Letters[i] != letter {
			t.Errorf("Day 0 letter %d = %q, want %q", i, day.Letters[i], letter)
		}
	}
}

func TestCheckpoints(t *testing.T) {
	want := []int{7, 14, 21, 28, 30}
	got := GetCheckpoints()
	if len(got) != len(want) {
		t.Fatalf("GetCheckpoints() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Checkpoint %d = %d, want %d", i, got[i], want[i])
		}
	}

	// Flags and the computed list must agree.
	for _, day := range AllDays() {
		inList := false
		for _, c := range got {
			if c == day.Day {
				inList = true
			}
		}
		if day.IsCheckpoint != inList {
			t.Errorf("Day %d: IsCheckpoint=%v but checkpoint list says %v", day.Day, day.IsCheckpoint, inList)
		}
	}
}

func TestExactlyOneFinalDay(t *testing.T) {
	finals := 0
	for _, day := range AllDays() {
		if day.IsFinal {
			finals++
			if day.Day != GetTotalDays() {
				t.Errorf("Final flag on day %d, want %d", day.Day, GetTotalDays())
			}
			if !day.IsStageComplete || !day.IsCheckpoint {
				t.Error("Final day should also be a stage-complete checkpoint")
			}
		}
	}
	if finals != 1 {
		t.Errorf("Expected exactly one final day, got %d", finals)
	}
}

func TestEveryDayHasKnownGame(t *testing.T) {
	for _, day := range AllDays() {
		if day.Game == "" {
			t.Errorf("Day %d has no game", day.Day)
			continue
		}
		if !KnownGame(day.Game) {
			t.Errorf("Day %d game %q is not in the game table", day.Day, day.Game)
		}
	}
	if !KnownGame("diagnostic") {
		t.Error("diagnostic missing from game table")
	}
}

func TestGameForUnknownFallsBack(t *testing.T) {
	info := GameFor("no-such-game")
	if info.Instruction == "" {
		t.Error("Fallback game info should still carry an instruction")
	}
	if info.ReadingHeavy {
		t.Error("Fallback game info should not be reading-heavy")
	}
}

func TestReadingHeavyGamesHaveContent(t *testing.T) {
	// A reading-heavy game replaces the reading phase, so its day must
	// actually carry something to read.
	for _, day := range AllDays() {
		if !GameFor(day.Game).ReadingHeavy {
			continue
		}
		if len(day.Words) == 0 && len(day.Syllables) == 0 && len(day.Sentences) == 0 {
			t.Errorf("Day %d game %q is reading-heavy but the day has no reading content", day.Day, day.Game)
		}
	}
}

func TestStageAndWeekMetadata(t *testing.T) {
	for _, day := range AllDays() {
		if day.Stage < 1 || day.Stage > 3 {
			t.Errorf("Day %d stage = %d", day.Day, day.Stage)
		}
		if day.Week < 1 || day.Week > 5 {
			t.Errorf("Day %d week = %d", day.Day, day.Week)
		}
		if day.StageTitle == "" || day.WeekTitle == "" {
			t.Errorf("Day %d missing stage or week title", day.Day)
		}
	}
}

func TestStressMarkFor(t *testing.T) {
	if got := StressMarkFor("МАМА"); got != "МА́МА" {
		t.Errorf("StressMarkFor(МАМА) = %q", got)
	}
	// Unlisted words come back unmarked, not empty.
	if got := StressMarkFor("НЕТ"); got != "НЕТ" {
		t.Errorf("StressMarkFor(НЕТ) = %q", got)
	}
}
