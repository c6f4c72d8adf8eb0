package document

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quarrydb/quarry-go/api"
)

type notePatch struct {
	Body *string `json:"body,omitempty"`
}

func TestUpdateDocument_Fresh(t *testing.T) {
	patch := NewDocumentUpdate(notePatch{})
	m := NewUpdateDocument[notePatch, note, note](NewID("notes", "7"), patch)

	assert.Equal(t, api.OperationModify, m.Operation())
	assert.Equal(t, "/_api/document/notes/7", m.Path())
	assert.Equal(t, patch, m.Update())
	assert.Equal(t, patch, m.Content())
	assert.True(t, m.Parameters().IsEmpty())
	assert.True(t, m.Header().IsEmpty())

	for name, get := range map[string]func() (bool, bool){
		"waitForSync":  m.WaitForSync,
		"ignoreRevs":   m.IgnoreRevisions,
		"keepNull":     m.KeepNull,
		"mergeObjects": m.MergeObjects,
		"returnOld":    m.ReturnOld,
		"returnNew":    m.ReturnNew,
	} {
		_, ok := get()
		assert.False(t, ok, "%s should be unset on a fresh descriptor", name)
	}
}

func TestUpdateDocument_KeepNullAndMergeObjects(t *testing.T) {
	m := NewUpdateDocument[notePatch, note, note](NewID("notes", "7"), NewDocumentUpdate(notePatch{})).
		WithKeepNull(false).
		WithMergeObjects(true)

	keep, ok := m.KeepNull()
	assert.True(t, ok)
	assert.False(t, keep)

	merge, ok := m.MergeObjects()
	assert.True(t, ok)
	assert.True(t, merge)

	value, _ := m.Parameters().Get("keepNull")
	assert.Equal(t, "false", value)
	value, _ = m.Parameters().Get("mergeObjects")
	assert.Equal(t, "true", value)
}

func TestUpdateDocument_Scenario(t *testing.T) {
	// Build a patch asking to drop nulled attributes and return the
	// updated snapshot; nothing else may leak into the request.
	body := "updated"
	patch := NewDocumentUpdate(notePatch{Body: &body})
	m := NewUpdateDocument[notePatch, note, note](NewID("notes", "7"), patch).
		WithKeepNull(false).
		WithReturnNew(true)

	assert.Equal(t, api.OperationModify, m.Operation())
	assert.Equal(t, patch, m.Content())

	params := m.Parameters()
	assert.Equal(t, 2, params.Len())
	value, _ := params.Get("keepNull")
	assert.Equal(t, "false", value)
	value, _ = params.Get("returnNew")
	assert.Equal(t, "true", value)
	for _, absent := range []string{"waitForSync", "ignoreRevs", "mergeObjects", "returnOld"} {
		_, ok := params.Get(absent)
		assert.False(t, ok, "%s must not appear", absent)
	}
}

func TestUpdateDocument_LaterCallOverwrites(t *testing.T) {
	m := NewUpdateDocument[notePatch, note, note](NewID("notes", "7"), NewDocumentUpdate(notePatch{})).
		WithReturnNew(false).
		WithReturnNew(true)

	value, _ := m.Parameters().Get("returnNew")
	assert.Equal(t, "true", value)
	assert.Equal(t, 1, m.Parameters().Len())
}

func TestUpdateDocument_WithIfMatch(t *testing.T) {
	m := NewUpdateDocument[notePatch, note, note](NewID("notes", "7"), NewDocumentUpdate(notePatch{})).
		WithIfMatch("rev9")

	value, ok := m.Header().Get("If-Match")
	assert.True(t, ok)
	assert.Equal(t, "rev9", value)
}
