package service

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"learnread/internal/curriculum"
	"learnread/internal/models"
)

// documentStore is the persistence needed by the progress service.
// *repository.ProgressRepository satisfies it; tests use an in-memory
// map.
type documentStore interface {
	GetDocument(learnerID string) ([]byte, error)
	PutDocument(learnerID string, doc []byte) error
	DeleteDocument(learnerID string) error
}

// ProgressService is the single source of truth for a learner's
// cumulative state. Every mutation goes load -> change -> stamp ->
// persist; persistence failures are logged and swallowed so a broken
// disk never interrupts a lesson.
type ProgressService struct {
	store documentStore
	now   func() time.Time
}

// NewProgressService creates a new progress service
func NewProgressService(store documentStore) *ProgressService {
	return &ProgressService{
		store: store,
		now:   time.Now,
	}
}

// Load returns the learner's progress, merged over defaults so fields
// added after a snapshot was saved keep their default values. A
// missing or unreadable document yields pristine defaults.
func (s *ProgressService) Load(learnerID string) models.Progress {
	progress := models.DefaultProgress()

	doc, err := s.store.GetDocument(learnerID)
	if err != nil {
		log.Printf("Failed to load progress for %s, using defaults: %v", learnerID, err)
		return progress
	}
	if doc == nil {
		return progress
	}

	if err := json.Unmarshal(doc, &progress); err != nil {
		log.Printf("Failed to parse progress for %s, using defaults: %v", learnerID, err)
		return models.DefaultProgress()
	}

	return progress
}

// save persists the progress document. Failures are logged, never
// surfaced: the in-memory state stays authoritative and the previous
// snapshot simply goes stale until the next successful write.
func (s *ProgressService) save(learnerID string, p models.Progress) {
	doc, err := json.Marshal(p)
	if err != nil {
		log.Printf("Failed to serialize progress for %s: %v", learnerID, err)
		return
	}
	if err := s.store.PutDocument(learnerID, doc); err != nil {
		log.Printf("Failed to save progress for %s: %v", learnerID, err)
	}
}

// update runs a mutation against the loaded progress, stamps the
// activity time and persists the result.
func (s *ProgressService) update(learnerID string, fn func(*models.Progress)) models.Progress {
	p := s.Load(learnerID)
	fn(&p)
	now := s.now()
	p.LastActivity = &now
	s.save(learnerID, p)
	return p
}

// SetChildInfo sets the identity fields without touching day or
// letter state.
func (s *ProgressService) SetChildInfo(learnerID, name string, character models.Character) models.Progress {
	return s.update(learnerID, func(p *models.Progress) {
		p.ChildName = name
		p.Character = character
	})
}

// CompleteDay records a finished day: adds it to the completed set
// (idempotently), unions the result's letters into the known/unknown
// sets, and advances CurrentDay monotonically. Completing day 5 then
// day 2 leaves CurrentDay at 6.
func (s *ProgressService) CompleteDay(learnerID string, day int, result models.DayResult) models.Progress {
	return s.update(learnerID, func(p *models.Progress) {
		p.CompletedDays = models.AppendUniqueInt(p.CompletedDays, day)
		if next := day + 1; next > p.CurrentDay {
			p.CurrentDay = next
		}
		for _, letter := range result.KnownLetters {
			p.KnownLetters = models.AppendUnique(p.KnownLetters, letter)
		}
		for _, letter := range result.UnknownLetters {
			p.UnknownLetters = models.AppendUnique(p.UnknownLetters, letter)
		}
	})
}

// MarkLetterKnown moves a letter into the known set, removing it from
// the unknown set so the two stay disjoint.
func (s *ProgressService) MarkLetterKnown(learnerID, letter string) models.Progress {
	return s.update(learnerID, func(p *models.Progress) {
		p.KnownLetters = models.AppendUnique(p.KnownLetters, letter)
		p.UnknownLetters = models.RemoveString(p.UnknownLetters, letter)
	})
}

// MarkLetterUnknown moves a letter into the unknown set, removing it
// from the known set.
func (s *ProgressService) MarkLetterUnknown(learnerID, letter string) models.Progress {
	return s.update(learnerID, func(p *models.Progress) {
		p.UnknownLetters = models.AppendUnique(p.UnknownLetters, letter)
		p.KnownLetters = models.RemoveString(p.KnownLetters, letter)
	})
}

// AddSyllableRead records a syllable read in stage 1.
func (s *ProgressService) AddSyllableRead(learnerID, syllable string) models.Progress {
	return s.update(learnerID, func(p *models.Progress) {
		p.Stage1.SyllablesRead = models.AppendUnique(p.Stage1.SyllablesRead, syllable)
	})
}

// AddWordRead records a word read in the given stage's sub-progress.
// Only stages 1 and 2 track words; stage 3 is sentence-only.
func (s *ProgressService) AddWordRead(learnerID, word string, stage int) (models.Progress, error) {
	switch stage {
	case 1:
		return s.update(learnerID, func(p *models.Progress) {
			p.Stage1.WordsRead = models.AppendUnique(p.Stage1.WordsRead, word)
		}), nil
	case 2:
		return s.update(learnerID, func(p *models.Progress) {
			p.Stage2.WordsRead = models.AppendUnique(p.Stage2.WordsRead, word)
		}), nil
	default:
		return s.Load(learnerID), fmt.Errorf("no word tracking for stage %d", stage)
	}
}

// AddSentenceRead records a sentence read in stage 3.
func (s *ProgressService) AddSentenceRead(learnerID, sentence string) models.Progress {
	return s.update(learnerID, func(p *models.Progress) {
		p.Stage3.SentencesRead = models.AppendUnique(p.Stage3.SentencesRead, sentence)
	})
}

// IncrementConsecutiveCorrect bumps the consecutive-correct-syllable
// counter that gates stage 1 completion.
func (s *ProgressService) IncrementConsecutiveCorrect(learnerID string) models.Progress {
	return s.update(learnerID, func(p *models.Progress) {
		p.Stage1.ConsecutiveCorrectSyllables++
	})
}

// ResetConsecutiveCorrect zeroes the counter after a wrong answer.
func (s *ProgressService) ResetConsecutiveCorrect(learnerID string) models.Progress {
	return s.update(learnerID, func(p *models.Progress) {
		p.Stage1.ConsecutiveCorrectSyllables = 0
	})
}

// stage1ConsecutiveTarget is the consecutive-correct-syllable streak
// required to pass stage 1.
const stage1ConsecutiveTarget = 10

// CheckStage1Complete evaluates the stage 1 pass conditions: all ten
// diagnostic letters known, a streak of ten correct syllables, and at
// least one word read. When all hold and the latch is not yet set, it
// sets Stage1Passed and reports true. In every other case it mutates
// nothing and reports false; once passed, the latch never resets.
func (s *ProgressService) CheckStage1Complete(learnerID string) bool {
	p := s.Load(learnerID)
	if p.Stage1.Stage1Passed {
		return false
	}

	for _, letter := range curriculum.DiagnosticLetters {
		if !p.KnowsLetter(letter) {
			return false
		}
	}
	if p.Stage1.ConsecutiveCorrectSyllables < stage1ConsecutiveTarget {
		return false
	}
	if len(p.Stage1.WordsRead) < 1 {
		return false
	}

	s.update(learnerID, func(p *models.Progress) {
		p.Stage1.Stage1Passed = true
	})
	return true
}

// AddAchievement records a named achievement once.
func (s *ProgressService) AddAchievement(learnerID, name string) models.Progress {
	return s.update(learnerID, func(p *models.Progress) {
		p.Achievements = models.AppendUnique(p.Achievements, name)
	})
}

// ResetProgress replaces the learner's state with defaults and clears
// the stored document. Destructive; callers gate it behind explicit
// confirmation.
func (s *ProgressService) ResetProgress(learnerID string) models.Progress {
	if err := s.store.DeleteDocument(learnerID); err != nil {
		log.Printf("Failed to clear progress document for %s: %v", learnerID, err)
	}
	return models.DefaultProgress()
}

// GetProgressPercent returns completed days as a percentage of the
// curriculum, rounded to the nearest integer.
func (s *ProgressService) GetProgressPercent(learnerID string) int {
	p := s.Load(learnerID)
	total := curriculum.GetTotalDays()
	return int(math.Round(100 * float64(len(p.CompletedDays)) / float64(total)))
}

// CanPlayDay reports whether the learner may start a day: the
// diagnostic always, a completed day again for review, and otherwise
// only up to the current day. Completion itself is never gated.
func (s *ProgressService) CanPlayDay(learnerID string, day int) bool {
	if day == 0 {
		return true
	}
	if day < 1 || day > curriculum.GetTotalDays() {
		return false
	}
	p := s.Load(learnerID)
	return day <= p.CurrentDay || p.HasCompleted(day)
}
