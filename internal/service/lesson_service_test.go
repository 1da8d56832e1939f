package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"learnread/internal/curriculum"
	"learnread/internal/models"
	"learnread/internal/speech"
)

func newTestLessonService(store *fakeStore, speaker speech.Speaker) (*LessonService, *ProgressService) {
	progress := newTestProgressService(store)
	lessons := NewLessonService(progress, speaker)
	lessons.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	return lessons, progress
}

func TestStartLessonValidation(t *testing.T) {
	lessons, progress := newTestLessonService(newFakeStore(), speech.Noop{})
	ctx := context.Background()

	if _, err := lessons.StartLesson(ctx, testLearner, 0); !errors.Is(err, ErrNoSuchDay) {
		t.Errorf("Day 0 err = %v, want ErrNoSuchDay", err)
	}
	if _, err := lessons.StartLesson(ctx, testLearner, 99); !errors.Is(err, ErrNoSuchDay) {
		t.Errorf("Day 99 err = %v, want ErrNoSuchDay", err)
	}
	// Day 1 is locked until the diagnostic is done.
	if _, err := lessons.StartLesson(ctx, testLearner, 1); !errors.Is(err, ErrDayLocked) {
		t.Errorf("Pre-diagnostic day 1 err = %v, want ErrDayLocked", err)
	}

	progress.CompleteDay(testLearner, 0, models.DayResult{})

	// The diagnostic unlocks day 1 but not day 2.
	if _, err := lessons.StartLesson(ctx, testLearner, 2); !errors.Is(err, ErrDayLocked) {
		t.Errorf("Locked day err = %v, want ErrDayLocked", err)
	}

	session, err := lessons.StartLesson(ctx, testLearner, 1)
	if err != nil {
		t.Fatalf("Day 1 should start: %v", err)
	}
	if session.Phase != PhaseIntro || session.Day.Day != 1 {
		t.Errorf("Session phase=%s day=%d", session.Phase, session.Day.Day)
	}
}

func TestFullLessonFlow(t *testing.T) {
	store := newFakeStore()
	recorder := &speech.Recorder{}
	lessons, progress := newTestLessonService(store, recorder)
	ctx := context.Background()

	// Day 8 has syllables and a non-reading-heavy game, so the flow
	// passes through every phase.
	progress.CompleteDay(testLearner, 7, models.DayResult{})

	session, err := lessons.StartLesson(ctx, testLearner, 8)
	if err != nil {
		t.Fatalf("StartLesson: %v", err)
	}

	if _, err := lessons.Begin(ctx, session.ID); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if s, _ := lessons.GetSession(session.ID); s.Phase != PhaseGame {
		t.Fatalf("Phase after begin = %s", s.Phase)
	}

	if _, err := lessons.GameComplete(ctx, session.ID, 4); err != nil {
		t.Fatalf("GameComplete: %v", err)
	}
	if s, _ := lessons.GetSession(session.ID); s.Phase != PhaseReading {
		t.Fatalf("Phase after game = %s", s.Phase)
	}

	if _, err := lessons.ReadingComplete(ctx, session.ID); err != nil {
		t.Fatalf("ReadingComplete: %v", err)
	}

	result, err := lessons.CreativeComplete(ctx, session.ID)
	if err != nil {
		t.Fatalf("CreativeComplete: %v", err)
	}

	if result.Day != 8 || result.CorrectAnswers != 4 {
		t.Errorf("Result day=%d correct=%d", result.Day, result.CorrectAnswers)
	}
	wantPhases := []string{"game", "reading", "creative"}
	if len(result.CompletedPhases) != len(wantPhases) {
		t.Fatalf("CompletedPhases = %v", result.CompletedPhases)
	}
	for i, phase := range wantPhases {
		if result.CompletedPhases[i] != phase {
			t.Errorf("Phase %d = %s, want %s", i, result.CompletedPhases[i], phase)
		}
	}
	if result.Reward != models.RewardNone {
		t.Errorf("Reward = %s, want none", result.Reward)
	}

	// The session is gone and progress was recorded exactly once.
	if _, err := lessons.GetSession(session.ID); !errors.Is(err, ErrNoSuchSession) {
		t.Error("Session should be dropped after completion")
	}
	p := progress.Load(testLearner)
	if !p.HasCompleted(8) || p.CurrentDay != 9 {
		t.Errorf("Progress: completed=%v currentDay=%d", p.CompletedDays, p.CurrentDay)
	}

	// The day title, game instruction and two encouragements were
	// spoken along the way.
	if len(recorder.Spoken()) < 3 {
		t.Errorf("Spoken = %v", recorder.Spoken())
	}
}

func TestSkipCreativeStillCompletesDay(t *testing.T) {
	lessons, progress := newTestLessonService(newFakeStore(), speech.Noop{})
	ctx := context.Background()

	progress.CompleteDay(testLearner, 0, models.DayResult{})

	session, _ := lessons.StartLesson(ctx, testLearner, 1)
	lessons.Begin(ctx, session.ID)
	lessons.GameComplete(ctx, session.ID, 3)

	result, err := lessons.SkipCreative(ctx, session.ID)
	if err != nil {
		t.Fatalf("SkipCreative: %v", err)
	}

	for _, phase := range result.CompletedPhases {
		if phase == "creative" {
			t.Error("Skipped creative should not be in completed phases")
		}
	}
	p := progress.Load(testLearner)
	if !p.HasCompleted(1) {
		t.Error("Day should be completed even with creative skipped")
	}
}

func TestWrongPhaseEvents(t *testing.T) {
	lessons, progress := newTestLessonService(newFakeStore(), speech.Noop{})
	ctx := context.Background()

	progress.CompleteDay(testLearner, 0, models.DayResult{})
	session, _ := lessons.StartLesson(ctx, testLearner, 1)

	if _, err := lessons.GameComplete(ctx, session.ID, 1); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("GameComplete in intro err = %v", err)
	}
	if _, err := lessons.ReadingComplete(ctx, session.ID); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("ReadingComplete in intro err = %v", err)
	}
	if _, err := lessons.CreativeComplete(ctx, session.ID); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("CreativeComplete in intro err = %v", err)
	}

	// A stale begin after the phase moved on.
	lessons.Begin(ctx, session.ID)
	if _, err := lessons.Begin(ctx, session.ID); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Second begin err = %v", err)
	}
}

func TestNextPhaseAfterGame(t *testing.T) {
	tests := []struct {
		name string
		day  int
		want LessonPhase
	}{
		{"letters-only day skips reading", 1, PhaseCreative},
		{"syllable day reads", 8, PhaseReading},
		{"reading-heavy decode skips reading", 10, PhaseCreative},
		{"reading-heavy exam skips reading", 14, PhaseCreative},
		{"word day reads", 15, PhaseReading},
		{"sentence day with reading-heavy game skips reading", 30, PhaseCreative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := curriculum.GetDayData(tt.day)
			if day == nil {
				t.Fatalf("No day %d", tt.day)
			}
			if got := NextPhaseAfterGame(*day); got != tt.want {
				t.Errorf("NextPhaseAfterGame(day %d) = %s, want %s", tt.day, got, tt.want)
			}
		})
	}
}

func TestClassifyReward(t *testing.T) {
	tests := []struct {
		day             int
		want            models.RewardKind
		wantAchievement bool
	}{
		{1, models.RewardNone, false},
		{7, models.RewardCheckpoint, false},
		{14, models.RewardStage, true},
		{21, models.RewardCheckpoint, false},
		{28, models.RewardStage, true},
		{30, models.RewardFinal, true},
	}

	for _, tt := range tests {
		day := curriculum.GetDayData(tt.day)
		reward, achievement := ClassifyReward(*day)
		if reward != tt.want {
			t.Errorf("Day %d reward = %s, want %s", tt.day, reward, tt.want)
		}
		if (achievement != "") != tt.wantAchievement {
			t.Errorf("Day %d achievement = %q", tt.day, achievement)
		}
	}
}

func TestFinalDayAwardsAchievement(t *testing.T) {
	lessons, progress := newTestLessonService(newFakeStore(), speech.Noop{})
	ctx := context.Background()

	progress.CompleteDay(testLearner, 29, models.DayResult{})

	session, err := lessons.StartLesson(ctx, testLearner, 30)
	if err != nil {
		t.Fatalf("StartLesson: %v", err)
	}
	lessons.Begin(ctx, session.ID)
	lessons.GameComplete(ctx, session.ID, 3)

	result, err := lessons.CreativeComplete(ctx, session.ID)
	if err != nil {
		t.Fatalf("CreativeComplete: %v", err)
	}
	if result.Reward != models.RewardFinal {
		t.Errorf("Reward = %s", result.Reward)
	}

	p := progress.Load(testLearner)
	found := false
	for _, a := range p.Achievements {
		if a == "Читатель" {
			found = true
		}
	}
	if !found {
		t.Errorf("Achievements = %v, want Читатель", p.Achievements)
	}
}

func TestLessonEventsReturnCopies(t *testing.T) {
	lessons, progress := newTestLessonService(newFakeStore(), speech.Noop{})
	ctx := context.Background()

	progress.CompleteDay(testLearner, 0, models.DayResult{})
	started, err := lessons.StartLesson(ctx, testLearner, 1)
	if err != nil {
		t.Fatalf("StartLesson: %v", err)
	}

	inGame, err := lessons.Begin(ctx, started.ID)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if started.Phase != PhaseIntro {
		t.Errorf("Earlier session copy changed phase to %s", started.Phase)
	}

	// Handlers JSON-encode returned sessions without holding the
	// service lock, so later events must not mutate them.
	if _, err := lessons.GameComplete(ctx, started.ID, 2); err != nil {
		t.Fatalf("GameComplete: %v", err)
	}
	if inGame.Phase != PhaseGame || len(inGame.Phases) != 0 {
		t.Errorf("Earlier session copy mutated: phase=%s phases=%v", inGame.Phase, inGame.Phases)
	}
}

func TestSweepAbandoned(t *testing.T) {
	lessons, progress := newTestLessonService(newFakeStore(), speech.Noop{})
	ctx := context.Background()

	progress.CompleteDay(testLearner, 0, models.DayResult{})
	session, _ := lessons.StartLesson(ctx, testLearner, 1)

	// Nothing is stale yet.
	if n := lessons.SweepAbandoned(time.Hour); n != 0 {
		t.Errorf("Swept %d sessions, want 0", n)
	}

	// Move the clock past the idle limit.
	lessons.now = func() time.Time { return time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC) }
	if n := lessons.SweepAbandoned(time.Hour); n != 1 {
		t.Errorf("Swept %d sessions, want 1", n)
	}
	if _, err := lessons.GetSession(session.ID); !errors.Is(err, ErrNoSuchSession) {
		t.Error("Swept session should be gone")
	}
}
