package questionnaire_test

import (
	"testing"

	"github.com/complize/selfassess/internal/questionnaire"
)

func putVersion(t *testing.T, store questionnaire.Store, surveyID string) questionnaire.Questionnaire {
	t.Helper()
	q, err := store.Put(questionnaire.Questionnaire{
		SurveyID: surveyID,
		Sections: []questionnaire.Section{{Name: "S", Questions: []questionnaire.Question{{Title: "q"}}}},
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	return q
}

func TestStoreAssignsSequentialVersions(t *testing.T) {
	store := questionnaire.NewInMemoryStore()
	v1 := putVersion(t, store, "dora")
	v2 := putVersion(t, store, "dora")
	other := putVersion(t, store, "nis2")

	if v1.Version != 1 || v2.Version != 2 {
		t.Fatalf("versions = %d, %d; want 1, 2", v1.Version, v2.Version)
	}
	if other.Version != 1 {
		t.Fatalf("independent survey version = %d, want 1", other.Version)
	}
	if !v1.IsActive || v2.IsActive {
		t.Fatal("first version starts active, later ones inactive")
	}
}

func TestStoreActivateIsExclusive(t *testing.T) {
	store := questionnaire.NewInMemoryStore()
	putVersion(t, store, "dora")
	putVersion(t, store, "dora")

	if err := store.Activate("dora", 2); err != nil {
		t.Fatalf("activate: %v", err)
	}
	active, err := store.Active("dora")
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if active.Version != 2 {
		t.Fatalf("active version = %d, want 2", active.Version)
	}
	v1, err := store.Get("dora", 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v1.IsActive {
		t.Fatal("previous version must be deactivated")
	}
}

func TestStoreMissingLookups(t *testing.T) {
	store := questionnaire.NewInMemoryStore()
	if _, err := store.Active("nope"); err == nil {
		t.Fatal("want error for unknown survey")
	}
	if _, err := store.Get("nope", 1); err == nil {
		t.Fatal("want error for unknown version")
	}
	if err := store.Activate("nope", 1); err == nil {
		t.Fatal("want error activating unknown version")
	}
	if _, err := store.Put(questionnaire.Questionnaire{}); err == nil {
		t.Fatal("want error for blank survey id")
	}
}

func TestStorePutNormalizesSections(t *testing.T) {
	store := questionnaire.NewInMemoryStore()
	q, err := store.Put(questionnaire.Questionnaire{
		SurveyID: "dora",
		Sections: []questionnaire.Section{{Name: "S", Questions: []questionnaire.Question{{Title: "q"}}}},
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	got := q.Sections[0].Questions[0]
	if got.Code != "Q001" || got.Weight != 1 {
		t.Fatalf("stored question = %+v, want backfilled code and weight", got)
	}
}

func TestStoreListIsOrdered(t *testing.T) {
	store := questionnaire.NewInMemoryStore()
	putVersion(t, store, "nis2")
	putVersion(t, store, "dora")
	putVersion(t, store, "dora")

	list := store.List()
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	if list[0].SurveyID != "dora" || list[0].Version != 1 ||
		list[1].SurveyID != "dora" || list[1].Version != 2 ||
		list[2].SurveyID != "nis2" {
		t.Fatalf("unexpected order: %+v", list)
	}
}
