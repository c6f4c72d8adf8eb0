package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}

func TestID_String(t *testing.T) {
	id := NewID("users", "42")

	assert.Equal(t, "users", id.Collection())
	assert.Equal(t, "42", id.Key())
	assert.Equal(t, "users/42", id.String())
}

func TestParseID(t *testing.T) {
	id, err := ParseID("users/42")
	require.NoError(t, err)
	assert.Equal(t, NewID("users", "42"), id)
}

func TestParseID_KeyMayContainSlash(t *testing.T) {
	// Only the first slash splits; the rest belongs to the key and is
	// left for the server to judge.
	id, err := ParseID("users/a/b")
	require.NoError(t, err)
	assert.Equal(t, "users", id.Collection())
	assert.Equal(t, "a/b", id.Key())
}

func TestParseID_Invalid(t *testing.T) {
	for _, input := range []string{"", "users", "users/", "/42"} {
		_, err := ParseID(input)
		assert.ErrorIs(t, err, ErrInvalidID, "input %q", input)
	}
}

func TestID_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(NewID("users", "42"))
	require.NoError(t, err)
	assert.Equal(t, `"users/42"`, string(data))

	var id ID
	require.NoError(t, json.Unmarshal(data, &id))
	assert.Equal(t, NewID("users", "42"), id)
}

func TestDocument_UnmarshalEmbedsMetaFields(t *testing.T) {
	body := []byte(`{"_id":"notes/7","_key":"7","_rev":"rev1","title":"hello","body":"world"}`)

	var doc Document[note]
	require.NoError(t, json.Unmarshal(body, &doc))

	assert.Equal(t, NewID("notes", "7"), doc.Header.ID)
	assert.Equal(t, "7", doc.Header.Key)
	assert.Equal(t, Revision("rev1"), doc.Header.Revision)
	assert.Equal(t, note{Title: "hello", Body: "world"}, doc.Content)
}

func TestDocument_MarshalReembedsMetaFields(t *testing.T) {
	doc := Document[note]{
		Header:  Header{ID: NewID("notes", "7"), Key: "7", Revision: "rev1"},
		Content: note{Title: "hello"},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "notes/7", fields["_id"])
	assert.Equal(t, "7", fields["_key"])
	assert.Equal(t, "rev1", fields["_rev"])
	assert.Equal(t, "hello", fields["title"])
}

func TestNewDocument_WithoutKey(t *testing.T) {
	doc := FromContent(note{Title: "hello"})

	_, ok := doc.Key()
	assert.False(t, ok)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"hello"}`, string(data))
}

func TestNewDocument_WithKey(t *testing.T) {
	doc := FromContent(note{Title: "hello"}).WithKey("7")

	key, ok := doc.Key()
	assert.True(t, ok)
	assert.Equal(t, "7", key)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_key":"7","title":"hello"}`, string(data))
}

func TestNewDocument_WithKeyDoesNotMutateOriginal(t *testing.T) {
	original := FromContent(note{Title: "hello"})
	_ = original.WithKey("7")

	_, ok := original.Key()
	assert.False(t, ok)
}

func TestNewDocument_KeyOnNonObjectContent(t *testing.T) {
	doc := FromContent(42).WithKey("7")

	_, err := json.Marshal(doc)
	assert.Error(t, err)
}

func TestDocumentUpdate_MarshalsAsContent(t *testing.T) {
	upd := NewDocumentUpdate(note{Title: "hello"})

	assert.Equal(t, note{Title: "hello"}, upd.Content())

	data, err := json.Marshal(upd)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"hello"}`, string(data))
}

func TestUpdatedDocument_SnapshotsIndependentlyPresent(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantOld bool
		wantNew bool
	}{
		{"neither", `{"_id":"notes/7","_key":"7","_rev":"rev2"}`, false, false},
		{"old only", `{"_id":"notes/7","_key":"7","_rev":"rev2","old":{"title":"a"}}`, true, false},
		{"new only", `{"_id":"notes/7","_key":"7","_rev":"rev2","new":{"title":"b"}}`, false, true},
		{"both", `{"_id":"notes/7","_key":"7","_rev":"rev2","old":{"title":"a"},"new":{"title":"b"}}`, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result UpdatedDocument[note, note]
			require.NoError(t, json.Unmarshal([]byte(tt.body), &result))

			assert.Equal(t, tt.wantOld, result.Old != nil)
			assert.Equal(t, tt.wantNew, result.New != nil)
			assert.Equal(t, Header{ID: NewID("notes", "7"), Key: "7", Revision: "rev2"}, result.Header())
		})
	}
}
