// Package speech is the spoken-feedback collaborator: a small
// interface the lesson and diagnostic flows talk to, a default
// implementation that pre-generates MP3 clips, and fakes for tests.
// Speech is an enhancement; every caller treats failures as ignorable.
package speech

import (
	"context"
	"fmt"
	"math/rand"
)

// Options tune one utterance. Zero values mean the speaker's defaults.
type Options struct {
	Rate  float64
	Pitch float64
	Lang  string
}

// Speaker fires utterances. Implementations must be safe for
// concurrent use; callers either await the returned error when
// sequencing matters pedagogically or ignore it outright.
type Speaker interface {
	Speak(ctx context.Context, text string, opts Options) error
	SpeakLetter(ctx context.Context, letter string) error
	SpeakSyllable(ctx context.Context, syllable string) error
	SpeakWord(ctx context.Context, word string) error
	SpeakSentence(ctx context.Context, sentence string) error
	SpeakEncouragement(ctx context.Context, category string) error
}

// Encouragement categories.
const (
	EncourageSuccess = "success"
	EncourageRetry   = "encourage"
	EncourageReward  = "reward"
)

var encouragements = map[string][]string{
	EncourageSuccess: {"Молодец!", "Отлично!", "Супер!", "Умница!", "Правильно!"},
	EncourageRetry:   {"Попробуй ещё!", "Почти получилось!", "Давай вместе!"},
	EncourageReward:  {"Ура!", "Ты справился!", "Так держать!"},
}

// EncouragementPhrase picks a random phrase for a category, falling
// back to the success set for unknown categories.
func EncouragementPhrase(category string) string {
	list, ok := encouragements[category]
	if !ok {
		list = encouragements[EncourageSuccess]
	}
	return list[rand.Intn(len(list))]
}

// ReadBySyllables speaks each syllable in order, then the whole word.
// Unlike most speech calls this one is sequenced: each utterance is
// awaited so the child hears syllables before the blend.
func ReadBySyllables(ctx context.Context, s Speaker, syllables []string, word string) error {
	for _, syl := range syllables {
		if err := s.SpeakSyllable(ctx, syl); err != nil {
			return fmt.Errorf("failed to speak syllable %q: %w", syl, err)
		}
	}
	if word == "" {
		return nil
	}
	if err := s.SpeakWord(ctx, word); err != nil {
		return fmt.Errorf("failed to speak word %q: %w", word, err)
	}
	return nil
}
