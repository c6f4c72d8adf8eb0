// Package document provides the value types and operation descriptors
// of the Quarry document API. Descriptors are immutable values: they
// carry an operation's parameters and optional modifiers, compile
// deterministically into the pieces of an HTTP request, and declare the
// result type the response decodes into. They perform no I/O; the
// client in the root package dispatches them.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidID is returned when a document identifier string cannot be
// split into a collection name and a key.
var ErrInvalidID = errors.New("invalid document id")

// ID identifies a document by collection name and key. Its canonical
// textual form "collection/key" is used verbatim in request paths. No
// validation of the parts is performed here; malformed keys are
// rejected by the server.
type ID struct {
	collection string
	key        string
}

// NewID creates a document ID from a collection name and a key.
func NewID(collection, key string) ID {
	return ID{collection: collection, key: key}
}

// ParseID parses the canonical "collection/key" form.
func ParseID(s string) (ID, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID{collection: parts[0], key: parts[1]}, nil
}

// Collection returns the collection name part.
func (id ID) Collection() string { return id.collection }

// Key returns the key part.
func (id ID) Key() string { return id.key }

// String returns the canonical "collection/key" form.
func (id ID) String() string {
	return id.collection + "/" + id.key
}

// MarshalJSON encodes the ID as its canonical string.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON decodes the ID from its canonical string.
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Revision is the opaque version stamp the server assigns on every
// create, replace and update. Only equality is meaningful; no ordering
// is implied.
type Revision string

// Header carries a document's identity and current revision. It is the
// result of write operations that do not return full content.
type Header struct {
	ID       ID       `json:"_id"`
	Key      string   `json:"_key"`
	Revision Revision `json:"_rev"`
}

// Document is a full snapshot of a stored document: its header plus its
// content of type T. On the wire the meta fields are embedded in the
// same JSON object as the content.
type Document[T any] struct {
	Header  Header
	Content T
}

// UnmarshalJSON reads the meta fields and decodes the same object into
// the content.
func (d *Document[T]) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &d.Header); err != nil {
		return err
	}
	return json.Unmarshal(data, &d.Content)
}

// MarshalJSON re-embeds the meta fields into the content object.
func (d Document[T]) MarshalJSON() ([]byte, error) {
	meta := map[string]any{
		fieldID:       d.Header.ID,
		fieldKey:      d.Header.Key,
		fieldRevision: d.Header.Revision,
	}
	return embedFields(d.Content, meta)
}

// NewDocument is the payload for creating a document: its content and,
// optionally, a caller-supplied key. Without a key the server generates
// one.
type NewDocument[T any] struct {
	key     *string
	content T
}

// FromContent creates an insert payload with a server-generated key.
func FromContent[T any](content T) NewDocument[T] {
	return NewDocument[T]{content: content}
}

// WithKey returns a copy of the payload with the given caller-supplied
// key.
func (d NewDocument[T]) WithKey(key string) NewDocument[T] {
	d.key = &key
	return d
}

// Key returns the caller-supplied key, if any.
func (d NewDocument[T]) Key() (string, bool) {
	if d.key == nil {
		return "", false
	}
	return *d.key, true
}

// Content returns the document content.
func (d NewDocument[T]) Content() T { return d.content }

// MarshalJSON encodes the content object, injecting the "_key" field
// when a key was supplied. The content must encode to a JSON object.
func (d NewDocument[T]) MarshalJSON() ([]byte, error) {
	if d.key == nil {
		return json.Marshal(d.content)
	}
	return embedFields(d.content, map[string]any{fieldKey: *d.key})
}

// DocumentUpdate is the content payload for replace (full content) and
// update (partial content). The representation is identical; the
// operation kind decides how the server interprets it.
type DocumentUpdate[T any] struct {
	content T
}

// NewDocumentUpdate creates a replace/update payload from content.
func NewDocumentUpdate[T any](content T) DocumentUpdate[T] {
	return DocumentUpdate[T]{content: content}
}

// Content returns the payload content.
func (d DocumentUpdate[T]) Content() T { return d.content }

// MarshalJSON encodes the payload as the content itself.
func (d DocumentUpdate[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.content)
}

// UpdatedDocument is the result of replace and update operations. Old
// and New hold the respective snapshots only when the caller requested
// them through the return-old / return-new modifiers; absence means the
// snapshot was not requested, never that it did not change.
type UpdatedDocument[Old, New any] struct {
	ID       ID       `json:"_id"`
	Key      string   `json:"_key"`
	Revision Revision `json:"_rev"`
	Old      *Old     `json:"old"`
	New      *New     `json:"new"`
}

// Header returns the identity part of the result.
func (d UpdatedDocument[Old, New]) Header() Header {
	return Header{ID: d.ID, Key: d.Key, Revision: d.Revision}
}

// embedFields marshals content and injects extra top-level fields into
// the resulting JSON object.
func embedFields(content any, fields map[string]any) ([]byte, error) {
	data, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("document content must be a JSON object: %w", err)
	}
	if obj == nil {
		obj = make(map[string]json.RawMessage)
	}
	for name, value := range fields {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		obj[name] = raw
	}
	return json.Marshal(obj)
}
