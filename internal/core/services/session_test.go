package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
)

func conf(v float64) *float64 {
	return &v
}

func newTestDocument(name string, fields ...domain.Field) *domain.Document {
	return &domain.Document{
		Name:   name,
		Fields: fields,
	}
}

func TestNewSession(t *testing.T) {
	s := NewSession(nil)

	require.NotNil(t, s)
	require.NotNil(t, s.Catalog())
	assert.Nil(t, s.ActiveDocument())
	assert.Empty(t, s.Documents())
	assert.Nil(t, s.Fields())
}

func TestSession_AddDocument_SetsActive(t *testing.T) {
	s := NewSession(nil)

	id := s.AddDocument(newTestDocument("cell-a.pdf",
		domain.Field{ID: "C_NOMINAL_AH_DB", Label: "Nominal Capacity", Value: "10"},
	))

	require.NotEmpty(t, id)
	active := s.ActiveDocument()
	require.NotNil(t, active)
	assert.Equal(t, id, active.ID)
	assert.Equal(t, "cell-a.pdf", active.Name)
	require.Len(t, s.Fields(), 1)
	assert.False(t, active.UploadedAt.IsZero())
}

func TestSession_AddDocument_GeneratesUniqueIDs(t *testing.T) {
	s := NewSession(nil)

	a := s.AddDocument(newTestDocument("a.pdf"))
	b := s.AddDocument(newTestDocument("b.pdf"))

	assert.NotEqual(t, a, b)
	assert.Len(t, s.Documents(), 2)
}

func TestSession_AddDocument_AppendsEvenWhenAnotherIsActive(t *testing.T) {
	// A late extraction result is appended as its own document, never
	// merged into whatever is currently active.
	s := NewSession(nil)
	first := s.AddDocument(newTestDocument("first.pdf"))
	s.SelectDocument(first)

	late := s.AddDocument(newTestDocument("late.pdf",
		domain.Field{ID: "U_NOMINAL_V_DB", Value: "3.6"},
	))

	docs := s.Documents()
	require.Len(t, docs, 2)
	assert.Equal(t, "late.pdf", docs[1].Name)
	assert.Equal(t, late, s.ActiveDocument().ID)
	require.NotNil(t, s.Document(first))
	assert.Empty(t, s.Document(first).Fields)
}

func TestSession_SelectDocument_Unknown_NoOp(t *testing.T) {
	s := NewSession(nil)
	id := s.AddDocument(newTestDocument("a.pdf"))

	s.SelectDocument("does-not-exist")

	require.NotNil(t, s.ActiveDocument())
	assert.Equal(t, id, s.ActiveDocument().ID)
}

func TestSession_SelectDocument_ActiveIsIdempotent(t *testing.T) {
	s := NewSession(nil)
	id := s.AddDocument(newTestDocument("a.pdf",
		domain.Field{ID: "f1", Value: "one"},
		domain.Field{ID: "f2", Value: "two"},
	))

	before := s.Fields()
	s.SelectDocument(id)
	after := s.Fields()

	assert.Equal(t, before, after)
}

func TestSession_EditSurvivesSwitching(t *testing.T) {
	// Edit in A, switch to B, switch back: A shows the edited value.
	s := NewSession(nil)
	docA := s.AddDocument(newTestDocument("a.pdf",
		domain.Field{ID: "C_NOMINAL_AH_DB", Value: "10", Confidence: conf(92)},
	))
	docB := s.AddDocument(newTestDocument("b.pdf",
		domain.Field{ID: "C_NOMINAL_AH_DB", Value: "48", Confidence: conf(88)},
	))

	s.SelectDocument(docA)
	s.UpdateField("C_NOMINAL_AH_DB", "12")
	s.SelectDocument(docB)
	require.Equal(t, "48", s.Fields()[0].Value)
	s.SelectDocument(docA)

	require.Len(t, s.Fields(), 1)
	assert.Equal(t, "12", s.Fields()[0].Value)
}

func TestSession_UpdateField_UnknownID_NoOp(t *testing.T) {
	s := NewSession(nil)
	s.AddDocument(newTestDocument("a.pdf", domain.Field{ID: "f1", Value: "x"}))

	s.UpdateField("missing", "y")

	assert.Equal(t, "x", s.Fields()[0].Value)
}

func TestSession_UpdateField_NoActiveDocument_NoOp(t *testing.T) {
	s := NewSession(nil)

	// Must not panic.
	s.UpdateField("f1", "y")
	s.RemoveField("f1")
	assert.Empty(t, s.AddField("C_NOMINAL_AH_DB"))
}

func TestSession_RemoveField_PreservesOrder(t *testing.T) {
	s := NewSession(nil)
	s.AddDocument(newTestDocument("a.pdf",
		domain.Field{ID: "f1"},
		domain.Field{ID: "f2"},
		domain.Field{ID: "f3"},
	))

	s.RemoveField("f2")

	fields := s.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "f1", fields[0].ID)
	assert.Equal(t, "f3", fields[1].ID)
}

func TestSession_AddThenRemove_RestoresFieldList(t *testing.T) {
	s := NewSession(nil)
	s.AddDocument(newTestDocument("a.pdf",
		domain.Field{ID: "f1", Value: "one"},
		domain.Field{ID: "f2", Value: "two"},
	))
	before := append([]domain.Field(nil), s.Fields()...)

	added := s.AddField("U_NOMINAL_V_DB")
	require.NotEmpty(t, added)
	require.Len(t, s.Fields(), 3)
	s.RemoveField(added)

	assert.Equal(t, before, s.Fields())
}

func TestSession_AddField_FromCatalog(t *testing.T) {
	s := NewSession(nil)
	s.AddDocument(newTestDocument("a.pdf"))

	id := s.AddField("E_NOMINAL_WH_DB")

	require.NotEmpty(t, id)
	fields := s.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, "E_NOMINAL_WH_DB", fields[0].TypeID)
	assert.Equal(t, "Nominal Energy", fields[0].Label)
	assert.Empty(t, fields[0].Value)
	assert.Nil(t, fields[0].Confidence)
	assert.Nil(t, fields[0].Source)
	assert.Equal(t, domain.TierUnset, fields[0].Tier())
}

func TestSession_AddField_UnknownType_NoOp(t *testing.T) {
	s := NewSession(nil)
	s.AddDocument(newTestDocument("a.pdf"))

	id := s.AddField("NOT_IN_CATALOG")

	assert.Empty(t, id)
	assert.Empty(t, s.Fields())
}

func TestSession_AddField_AppendsInOrder(t *testing.T) {
	s := NewSession(nil)
	s.AddDocument(newTestDocument("a.pdf", domain.Field{ID: "extracted"}))

	s.AddField("C_NOMINAL_AH_DB")
	s.AddField("U_NOMINAL_V_DB")

	fields := s.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "extracted", fields[0].ID)
	assert.Equal(t, "C_NOMINAL_AH_DB", fields[1].TypeID)
	assert.Equal(t, "U_NOMINAL_V_DB", fields[2].TypeID)
}

func TestSession_SearchFields(t *testing.T) {
	s := NewSession(nil)
	s.AddDocument(newTestDocument("a.pdf",
		domain.Field{ID: "C_NOMINAL_AH_DB", Label: "Nominal Capacity", Value: "10"},
		domain.Field{ID: "U_NOMINAL_V_DB", Label: "Nominal Voltage", Value: "3.6"},
		domain.Field{ID: "M_CELL_G_DB", Label: "Cell Mass", Value: "45"},
	))

	assert.Len(t, s.SearchFields("nominal"), 2)
	assert.Len(t, s.SearchFields("3.6"), 1)
	assert.Len(t, s.SearchFields(""), 3)
	assert.Empty(t, s.SearchFields("zzz"))
}

func TestSession_FilterByTier(t *testing.T) {
	s := NewSession(nil)
	s.AddDocument(newTestDocument("a.pdf",
		domain.Field{ID: "high", Confidence: conf(95)},
		domain.Field{ID: "medium", Confidence: conf(65)},
		domain.Field{ID: "low", Confidence: conf(20)},
		domain.Field{ID: "manual"},
	))

	review := s.FilterByTier(domain.TierLow, domain.TierMedium, domain.TierUnset)
	require.Len(t, review, 3)
	assert.Equal(t, "medium", review[0].ID)

	high := s.FilterByTier(domain.TierHigh)
	require.Len(t, high, 1)
	assert.Equal(t, "high", high[0].ID)
}

func TestSession_FieldsAreIsolatedBetweenDocuments(t *testing.T) {
	s := NewSession(nil)
	docA := s.AddDocument(newTestDocument("a.pdf", domain.Field{ID: "f1", Value: "a"}))
	s.AddDocument(newTestDocument("b.pdf", domain.Field{ID: "f1", Value: "b"}))

	s.UpdateField("f1", "edited-b")
	s.SelectDocument(docA)

	assert.Equal(t, "a", s.Fields()[0].Value)
}

func TestSession_ConcurrentMutations(t *testing.T) {
	// The session must serialise concurrent writers without corruption.
	s := NewSession(nil)
	s.AddDocument(newTestDocument("a.pdf", domain.Field{ID: "f1", Value: "x"}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.UpdateField("f1", "y")
		}()
		go func() {
			defer wg.Done()
			_ = s.Fields()
			_ = s.Documents()
		}()
	}
	wg.Wait()

	assert.Equal(t, "y", s.Fields()[0].Value)
}
