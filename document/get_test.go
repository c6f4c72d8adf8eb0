package document

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quarrydb/quarry-go/api"
)

func TestGetDocument_Fresh(t *testing.T) {
	m := NewGetDocument[note](NewID("users", "42"))

	assert.Equal(t, api.OperationRead, m.Operation())
	assert.Equal(t, "/_api/document/users/42", m.Path())
	assert.True(t, m.Parameters().IsEmpty())
	assert.True(t, m.Header().IsEmpty())
	assert.Nil(t, m.Content())

	_, ok := m.IfMatch()
	assert.False(t, ok)
	_, ok = m.IfNoneMatch()
	assert.False(t, ok)
}

func TestGetDocument_WithIfMatch(t *testing.T) {
	m := NewGetDocument[note](NewID("users", "42")).WithIfMatch("rev1")

	rev, ok := m.IfMatch()
	assert.True(t, ok)
	assert.Equal(t, "rev1", rev)

	value, ok := m.Header().Get("If-Match")
	assert.True(t, ok)
	assert.Equal(t, "rev1", value)
}

func TestGetDocument_WithIfMatchOverwrites(t *testing.T) {
	m := NewGetDocument[note](NewID("users", "42")).
		WithIfMatch("rev1").
		WithIfMatch("rev2")

	rev, ok := m.IfMatch()
	assert.True(t, ok)
	assert.Equal(t, "rev2", rev)
	assert.Equal(t, 1, m.Header().Len())
}

func TestGetDocument_ModifierDoesNotMutateOriginal(t *testing.T) {
	original := NewGetDocument[note](NewID("users", "42"))
	_ = original.WithIfMatch("rev1")

	_, ok := original.IfMatch()
	assert.False(t, ok)
	assert.True(t, original.Header().IsEmpty())
}

func TestGetDocument_BothConditionsAllowed(t *testing.T) {
	// Setting both conditions is permitted; the server defines what the
	// combination means.
	m := NewGetDocument[note](NewID("users", "42")).
		WithIfMatch("rev1").
		WithIfNoneMatch("rev2")

	header := m.Header()
	assert.Equal(t, 2, header.Len())

	value, _ := header.Get("If-Match")
	assert.Equal(t, "rev1", value)
	value, _ = header.Get("If-None-Match")
	assert.Equal(t, "rev2", value)
}

func TestGetDocumentHeader_Fresh(t *testing.T) {
	m := NewGetDocumentHeader(NewID("users", "42"))

	assert.Equal(t, api.OperationReadHeader, m.Operation())
	assert.Equal(t, "/_api/document/users/42", m.Path())
	assert.True(t, m.Parameters().IsEmpty())
	assert.True(t, m.Header().IsEmpty())
	assert.Nil(t, m.Content())
}

func TestGetDocumentHeader_Conditions(t *testing.T) {
	m := NewGetDocumentHeader(NewID("users", "42")).
		WithIfNoneMatch("rev3")

	value, ok := m.Header().Get("If-None-Match")
	assert.True(t, ok)
	assert.Equal(t, "rev3", value)

	_, ok = m.IfMatch()
	assert.False(t, ok)
}

func TestGetDescriptors_ReturnType(t *testing.T) {
	get := NewGetDocument[note](NewID("users", "42"))
	head := NewGetDocumentHeader(NewID("users", "42"))

	assert.Equal(t, api.ReturnType{CodeField: "code"}, get.ReturnType())
	assert.Equal(t, api.ReturnType{CodeField: "code"}, head.ReturnType())
}
