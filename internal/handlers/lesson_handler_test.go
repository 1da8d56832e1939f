package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"learnread/internal/models"
	"learnread/internal/service"
	"learnread/internal/speech"
)

// memDocStore is an in-memory progress document store.
type memDocStore struct {
	docs map[string][]byte
}

func newMemDocStore() *memDocStore {
	return &memDocStore{docs: make(map[string][]byte)}
}

func (m *memDocStore) GetDocument(learnerID string) ([]byte, error) {
	return m.docs[learnerID], nil
}

func (m *memDocStore) PutDocument(learnerID string, doc []byte) error {
	m.docs[learnerID] = doc
	return nil
}

func (m *memDocStore) DeleteDocument(learnerID string) error {
	delete(m.docs, learnerID)
	return nil
}

func TestReadWordRecordsWordWhenSpeechFails(t *testing.T) {
	speaker := &speech.Recorder{Err: errors.New("no audio device")}
	progress := service.NewProgressService(newMemDocStore())
	lessons := service.NewLessonService(progress, speaker)
	h := NewLessonHandler(lessons, progress, speaker)

	learner := &models.Learner{ID: "learner-1", Name: "Мила", Character: models.CharacterDino}
	ctx := context.WithValue(context.Background(), LearnerContextKey, learner)

	// Day 8 is a stage 1 syllable day with a reading phase.
	progress.CompleteDay(learner.ID, 7, models.DayResult{})
	session, err := lessons.StartLesson(ctx, learner.ID, 8)
	if err != nil {
		t.Fatalf("StartLesson: %v", err)
	}

	body := bytes.NewBufferString(`{"word":"МАМА","syllables":["МА","МА"]}`)
	r := httptest.NewRequest(http.MethodPost, "/api/lessons/"+session.ID+"/read-word", body)
	r = r.WithContext(ctx)
	r.SetPathValue("id", session.ID)
	w := httptest.NewRecorder()

	h.ReadWord(w, r)

	// A broken speech engine must not block the lesson: the word is
	// still recorded and the request succeeds.
	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	var resp struct {
		Stress string `json:"stress"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Bad response body: %v", err)
	}
	if resp.Stress != "МА́МА" {
		t.Errorf("Stress = %q", resp.Stress)
	}

	p := progress.Load(learner.ID)
	if len(p.Stage1.WordsRead) != 1 || p.Stage1.WordsRead[0] != "МАМА" {
		t.Errorf("Stage1.WordsRead = %v, want the word recorded despite the speech failure", p.Stage1.WordsRead)
	}
}
