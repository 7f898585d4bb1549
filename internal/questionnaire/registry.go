package questionnaire

import (
	"errors"
	"sort"
	"sync"
)

// Store keeps versioned questionnaire definitions. Versions are
// immutable once registered; exactly one version per survey is active
// at a time and is the one submissions are scored against.
type Store interface {
	Put(q Questionnaire) (Questionnaire, error)
	Get(surveyID string, version int) (Questionnaire, error)
	Active(surveyID string) (Questionnaire, error)
	Activate(surveyID string, version int) error
	List() []Questionnaire
}

type memoryStore struct {
	mu      sync.RWMutex
	surveys map[string][]Questionnaire // surveyID -> versions, ascending
}

// NewInMemoryStore returns a Store backed by process memory. Nothing
// here survives a restart; durable questionnaire storage belongs to
// the surrounding application.
func NewInMemoryStore() Store {
	return &memoryStore{surveys: map[string][]Questionnaire{}}
}

func (m *memoryStore) Put(q Questionnaire) (Questionnaire, error) {
	if q.SurveyID == "" {
		return Questionnaire{}, errors.New("survey id required")
	}
	q.Sections = Normalize(q.Sections)

	m.mu.Lock()
	defer m.mu.Unlock()
	versions := m.surveys[q.SurveyID]
	q.Version = len(versions) + 1
	q.IsActive = len(versions) == 0 // first version starts active
	m.surveys[q.SurveyID] = append(versions, q)
	return q, nil
}

func (m *memoryStore) Get(surveyID string, version int) (Questionnaire, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	versions := m.surveys[surveyID]
	if version < 1 || version > len(versions) {
		return Questionnaire{}, errors.New("questionnaire version not found")
	}
	return versions[version-1], nil
}

func (m *memoryStore) Active(surveyID string) (Questionnaire, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, q := range m.surveys[surveyID] {
		if q.IsActive {
			return q, nil
		}
	}
	return Questionnaire{}, errors.New("no active questionnaire version")
}

func (m *memoryStore) Activate(surveyID string, version int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	versions := m.surveys[surveyID]
	if version < 1 || version > len(versions) {
		return errors.New("questionnaire version not found")
	}
	for i := range versions {
		versions[i].IsActive = versions[i].Version == version
	}
	return nil
}

func (m *memoryStore) List() []Questionnaire {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Questionnaire, 0, len(m.surveys))
	for _, versions := range m.surveys {
		out = append(out, versions...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SurveyID != out[j].SurveyID {
			return out[i].SurveyID < out[j].SurveyID
		}
		return out[i].Version < out[j].Version
	})
	return out
}
