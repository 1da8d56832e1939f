package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const ttsRequestTimeout = 10 * time.Second

// TTS is the default Speaker: it makes sure an MP3 clip for the
// utterance exists in the audio directory (generating and caching it
// on first use), and the front end plays clips from there. "Speaking"
// an utterance server-side therefore means ensuring its clip.
type TTS struct {
	audioDir string
	lang     string
	client   *http.Client
}

// NewTTS creates a TTS speaker that caches clips under audioDir.
func NewTTS(audioDir, lang string) *TTS {
	return &TTS{
		audioDir: audioDir,
		lang:     lang,
		client:   &http.Client{Timeout: ttsRequestTimeout},
	}
}

// EnsureClip generates the MP3 for the text unless already cached.
// Returns the clip filename (not the full path).
func (t *TTS) EnsureClip(ctx context.Context, text string) (string, error) {
	sanitized := strings.ToLower(strings.TrimSpace(text))
	sanitized = strings.ReplaceAll(sanitized, " ", "_")
	if sanitized == "" {
		return "", nil
	}

	filename := fmt.Sprintf("clip_%s.mp3", sanitized)
	path := filepath.Join(t.audioDir, filename)

	if _, err := os.Stat(path); err == nil {
		return filename, nil
	}

	if err := t.fetchClip(ctx, text, path); err != nil {
		return "", fmt.Errorf("failed to generate audio for %q: %w", text, err)
	}

	return filename, nil
}

// fetchClip downloads the utterance from the Google Translate TTS
// endpoint (free, no API key) and writes it to outputPath.
func (t *TTS) fetchClip(ctx context.Context, text, outputPath string) error {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", t.lang)
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	fullURL := "https://translate.google.com/translate_tts?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create audio directory: %w", err)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	return nil
}

// Speak ensures the clip for arbitrary text. Options are accepted for
// interface parity; rate and pitch are applied client-side.
func (t *TTS) Speak(ctx context.Context, text string, opts Options) error {
	_, err := t.EnsureClip(ctx, text)
	return err
}

// SpeakLetter speaks a letter by its phoneme sound. Silent letters
// (Ъ, Ь) produce nothing.
func (t *TTS) SpeakLetter(ctx context.Context, letter string) error {
	p, ok := PhonemeFor(strings.ToUpper(letter))
	if !ok {
		return t.Speak(ctx, letter, Options{})
	}
	if p.Sound == "" {
		return nil
	}
	return t.Speak(ctx, p.Sound, Options{})
}

func (t *TTS) SpeakSyllable(ctx context.Context, syllable string) error {
	return t.Speak(ctx, syllable, Options{})
}

func (t *TTS) SpeakWord(ctx context.Context, word string) error {
	return t.Speak(ctx, word, Options{})
}

func (t *TTS) SpeakSentence(ctx context.Context, sentence string) error {
	return t.Speak(ctx, sentence, Options{})
}

func (t *TTS) SpeakEncouragement(ctx context.Context, category string) error {
	return t.Speak(ctx, EncouragementPhrase(category), Options{})
}

// BatchEnsureClips generates clips for a set of utterances, returning
// text -> filename for the ones that succeeded and the first error
// encountered (generation continues past failures).
func (t *TTS) BatchEnsureClips(ctx context.Context, texts []string) (map[string]string, error) {
	results := make(map[string]string)
	var firstErr error

	for _, text := range texts {
		filename, err := t.EnsureClip(ctx, text)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if filename != "" {
			results[text] = filename
		}
	}

	return results, firstErr
}
