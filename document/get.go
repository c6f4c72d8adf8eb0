package document

import (
	"github.com/quarrydb/quarry-go/api"
)

// GetDocument fetches a document by its ID. The type parameter T is the
// content type the response decodes into; it has no runtime footprint
// on the descriptor itself.
//
// If-Match and If-None-Match may be set independently, including both
// at once. The layer does not resolve that combination; the server
// defines its meaning.
type GetDocument[T any] struct {
	id         ID
	ifMatch    *string
	ifNonMatch *string
}

// NewGetDocument creates a descriptor fetching the document with the
// given ID.
func NewGetDocument[T any](id ID) GetDocument[T] {
	return GetDocument[T]{id: id}
}

// WithIfMatch returns a copy that fetches the document only if its
// current revision equals the given one.
func (m GetDocument[T]) WithIfMatch(revision string) GetDocument[T] {
	m.ifMatch = &revision
	return m
}

// WithIfNoneMatch returns a copy that fetches the document only if its
// current revision differs from the given one.
func (m GetDocument[T]) WithIfNoneMatch(revision string) GetDocument[T] {
	m.ifNonMatch = &revision
	return m
}

// ID returns the document ID being fetched.
func (m GetDocument[T]) ID() ID { return m.id }

// IfMatch returns the if-match revision, if set.
func (m GetDocument[T]) IfMatch() (string, bool) {
	return deref(m.ifMatch)
}

// IfNoneMatch returns the if-none-match revision, if set.
func (m GetDocument[T]) IfNoneMatch() (string, bool) {
	return deref(m.ifNonMatch)
}

func (m GetDocument[T]) Operation() api.Operation { return api.OperationRead }

func (m GetDocument[T]) Path() string {
	return PathAPIDocument + "/" + m.id.String()
}

func (m GetDocument[T]) Parameters() api.Parameters {
	return api.Parameters{}
}

func (m GetDocument[T]) Header() api.Parameters {
	return conditionHeader(m.ifMatch, m.ifNonMatch)
}

func (m GetDocument[T]) Content() any { return nil }

func (m GetDocument[T]) ReturnType() api.ReturnType {
	return api.ReturnType{CodeField: FieldCode}
}

// GetDocumentHeader fetches only a document's header fields, reported
// through the response headers. It has no result body.
type GetDocumentHeader struct {
	id         ID
	ifMatch    *string
	ifNonMatch *string
}

// NewGetDocumentHeader creates a descriptor probing the document with
// the given ID.
func NewGetDocumentHeader(id ID) GetDocumentHeader {
	return GetDocumentHeader{id: id}
}

// WithIfMatch returns a copy that succeeds only if the document's
// current revision equals the given one.
func (m GetDocumentHeader) WithIfMatch(revision string) GetDocumentHeader {
	m.ifMatch = &revision
	return m
}

// WithIfNoneMatch returns a copy that succeeds only if the document's
// current revision differs from the given one.
func (m GetDocumentHeader) WithIfNoneMatch(revision string) GetDocumentHeader {
	m.ifNonMatch = &revision
	return m
}

// ID returns the document ID being probed.
func (m GetDocumentHeader) ID() ID { return m.id }

// IfMatch returns the if-match revision, if set.
func (m GetDocumentHeader) IfMatch() (string, bool) {
	return deref(m.ifMatch)
}

// IfNoneMatch returns the if-none-match revision, if set.
func (m GetDocumentHeader) IfNoneMatch() (string, bool) {
	return deref(m.ifNonMatch)
}

func (m GetDocumentHeader) Operation() api.Operation { return api.OperationReadHeader }

func (m GetDocumentHeader) Path() string {
	return PathAPIDocument + "/" + m.id.String()
}

func (m GetDocumentHeader) Parameters() api.Parameters {
	return api.Parameters{}
}

func (m GetDocumentHeader) Header() api.Parameters {
	return conditionHeader(m.ifMatch, m.ifNonMatch)
}

func (m GetDocumentHeader) Content() any { return nil }

func (m GetDocumentHeader) ReturnType() api.ReturnType {
	return api.ReturnType{CodeField: FieldCode}
}

// conditionHeader builds the conditional request headers shared by the
// read operations.
func conditionHeader(ifMatch, ifNonMatch *string) api.Parameters {
	var header api.Parameters
	if ifMatch != nil {
		header.Insert(headerIfMatch, *ifMatch)
	}
	if ifNonMatch != nil {
		header.Insert(headerIfNonMatch, *ifNonMatch)
	}
	return header
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
