package speech

import (
	"context"
	"sync"
)

// Noop is a Speaker that does nothing, for environments with no audio.
type Noop struct{}

func (Noop) Speak(ctx context.Context, text string, opts Options) error { return nil }
func (Noop) SpeakLetter(ctx context.Context, letter string) error       { return nil }
func (Noop) SpeakSyllable(ctx context.Context, syllable string) error   { return nil }
func (Noop) SpeakWord(ctx context.Context, word string) error           { return nil }
func (Noop) SpeakSentence(ctx context.Context, sentence string) error   { return nil }
func (Noop) SpeakEncouragement(ctx context.Context, category string) error {
	return nil
}

// Recorder is a Speaker that records every utterance in order. Tests
// substitute it to assert what was spoken and in what sequence. Err,
// when set, is returned from every call so callers' ignore-failures
// behaviour can be exercised.
type Recorder struct {
	mu         sync.Mutex
	Utterances []string
	Err        error
}

func (r *Recorder) record(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Utterances = append(r.Utterances, text)
	return r.Err
}

func (r *Recorder) Speak(ctx context.Context, text string, opts Options) error {
	return r.record(text)
}

func (r *Recorder) SpeakLetter(ctx context.Context, letter string) error {
	if p, ok := PhonemeFor(letter); ok {
		return r.record(p.Sound)
	}
	return r.record(letter)
}

func (r *Recorder) SpeakSyllable(ctx context.Context, syllable string) error {
	return r.record(syllable)
}

func (r *Recorder) SpeakWord(ctx context.Context, word string) error {
	return r.record(word)
}

func (r *Recorder) SpeakSentence(ctx context.Context, sentence string) error {
	return r.record(sentence)
}

func (r *Recorder) SpeakEncouragement(ctx context.Context, category string) error {
	return r.record("encouragement:" + category)
}

// Spoken returns a copy of the recorded utterances.
func (r *Recorder) Spoken() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.Utterances))
	copy(out, r.Utterances)
	return out
}
