package document

import (
	"github.com/quarrydb/quarry-go/api"
)

// InsertDocument creates a single document in a collection and returns
// its header. The returnNew parameter is fixed to false: the result
// type of this descriptor is a Header and must stay consistent with
// what the request asked for; use InsertDocumentReturnNew to get the
// stored content back.
type InsertDocument[T any] struct {
	collection  string
	document    NewDocument[T]
	waitForSync *bool
}

// NewInsertDocument creates a descriptor inserting one document into
// the named collection.
func NewInsertDocument[T any](collection string, document NewDocument[T]) InsertDocument[T] {
	return InsertDocument[T]{collection: collection, document: document}
}

// WithWaitForSync returns a copy that asks the server to sync to disk
// before answering (or explicitly not to, with false).
func (m InsertDocument[T]) WithWaitForSync(wait bool) InsertDocument[T] {
	m.waitForSync = &wait
	return m
}

// Collection returns the target collection name.
func (m InsertDocument[T]) Collection() string { return m.collection }

// Document returns the insert payload.
func (m InsertDocument[T]) Document() NewDocument[T] { return m.document }

// WaitForSync returns the wait-for-sync setting, if set.
func (m InsertDocument[T]) WaitForSync() (bool, bool) {
	return derefBool(m.waitForSync)
}

func (m InsertDocument[T]) Operation() api.Operation { return api.OperationCreate }

func (m InsertDocument[T]) Path() string {
	return PathAPIDocument + "/" + m.collection
}

func (m InsertDocument[T]) Parameters() api.Parameters {
	return insertParameters(false, m.waitForSync)
}

func (m InsertDocument[T]) Header() api.Parameters {
	return api.Parameters{}
}

func (m InsertDocument[T]) Content() any { return m.document }

func (m InsertDocument[T]) ReturnType() api.ReturnType {
	return api.ReturnType{CodeField: FieldCode}
}

// InsertDocumentReturnNew creates a single document and returns the
// full stored document. returnNew is fixed to true.
type InsertDocumentReturnNew[T any] struct {
	collection  string
	document    NewDocument[T]
	waitForSync *bool
}

// NewInsertDocumentReturnNew creates a descriptor inserting one
// document into the named collection and fetching it back.
func NewInsertDocumentReturnNew[T any](collection string, document NewDocument[T]) InsertDocumentReturnNew[T] {
	return InsertDocumentReturnNew[T]{collection: collection, document: document}
}

// WithWaitForSync returns a copy that asks the server to sync to disk
// before answering (or explicitly not to, with false).
func (m InsertDocumentReturnNew[T]) WithWaitForSync(wait bool) InsertDocumentReturnNew[T] {
	m.waitForSync = &wait
	return m
}

// Collection returns the target collection name.
func (m InsertDocumentReturnNew[T]) Collection() string { return m.collection }

// Document returns the insert payload.
func (m InsertDocumentReturnNew[T]) Document() NewDocument[T] { return m.document }

// WaitForSync returns the wait-for-sync setting, if set.
func (m InsertDocumentReturnNew[T]) WaitForSync() (bool, bool) {
	return derefBool(m.waitForSync)
}

func (m InsertDocumentReturnNew[T]) Operation() api.Operation { return api.OperationCreate }

func (m InsertDocumentReturnNew[T]) Path() string {
	return PathAPIDocument + "/" + m.collection
}

func (m InsertDocumentReturnNew[T]) Parameters() api.Parameters {
	return insertParameters(true, m.waitForSync)
}

func (m InsertDocumentReturnNew[T]) Header() api.Parameters {
	return api.Parameters{}
}

func (m InsertDocumentReturnNew[T]) Content() any { return m.document }

func (m InsertDocumentReturnNew[T]) ReturnType() api.ReturnType {
	return api.ReturnType{CodeField: FieldCode}
}

// InsertDocuments creates a batch of documents in one request and
// returns their headers in batch order. returnNew is fixed to false.
type InsertDocuments[T any] struct {
	collection  string
	documents   []NewDocument[T]
	waitForSync *bool
}

// NewInsertDocuments creates a descriptor inserting the given documents
// into the named collection. Batch order is preserved.
func NewInsertDocuments[T any](collection string, documents []NewDocument[T]) InsertDocuments[T] {
	docs := make([]NewDocument[T], len(documents))
	copy(docs, documents)
	return InsertDocuments[T]{collection: collection, documents: docs}
}

// WithWaitForSync returns a copy that asks the server to sync to disk
// before answering (or explicitly not to, with false).
func (m InsertDocuments[T]) WithWaitForSync(wait bool) InsertDocuments[T] {
	m.waitForSync = &wait
	return m
}

// Collection returns the target collection name.
func (m InsertDocuments[T]) Collection() string { return m.collection }

// Documents returns the insert payloads in batch order.
func (m InsertDocuments[T]) Documents() []NewDocument[T] { return m.documents }

// WaitForSync returns the wait-for-sync setting, if set.
func (m InsertDocuments[T]) WaitForSync() (bool, bool) {
	return derefBool(m.waitForSync)
}

func (m InsertDocuments[T]) Operation() api.Operation { return api.OperationCreate }

func (m InsertDocuments[T]) Path() string {
	return PathAPIDocument + "/" + m.collection
}

func (m InsertDocuments[T]) Parameters() api.Parameters {
	return insertParameters(false, m.waitForSync)
}

func (m InsertDocuments[T]) Header() api.Parameters {
	return api.Parameters{}
}

func (m InsertDocuments[T]) Content() any { return m.documents }

func (m InsertDocuments[T]) ReturnType() api.ReturnType {
	return api.ReturnType{CodeField: FieldCode}
}

// InsertDocumentsReturnNew creates a batch of documents and returns the
// full stored documents in batch order. returnNew is fixed to true.
type InsertDocumentsReturnNew[T any] struct {
	collection  string
	documents   []NewDocument[T]
	waitForSync *bool
}

// NewInsertDocumentsReturnNew creates a descriptor inserting the given
// documents into the named collection and fetching them back.
func NewInsertDocumentsReturnNew[T any](collection string, documents []NewDocument[T]) InsertDocumentsReturnNew[T] {
	docs := make([]NewDocument[T], len(documents))
	copy(docs, documents)
	return InsertDocumentsReturnNew[T]{collection: collection, documents: docs}
}

// WithWaitForSync returns a copy that asks the server to sync to disk
// before answering (or explicitly not to, with false).
func (m InsertDocumentsReturnNew[T]) WithWaitForSync(wait bool) InsertDocumentsReturnNew[T] {
	m.waitForSync = &wait
	return m
}

// Collection returns the target collection name.
func (m InsertDocumentsReturnNew[T]) Collection() string { return m.collection }

// Documents returns the insert payloads in batch order.
func (m InsertDocumentsReturnNew[T]) Documents() []NewDocument[T] { return m.documents }

// WaitForSync returns the wait-for-sync setting, if set.
func (m InsertDocumentsReturnNew[T]) WaitForSync() (bool, bool) {
	return derefBool(m.waitForSync)
}

func (m InsertDocumentsReturnNew[T]) Operation() api.Operation { return api.OperationCreate }

func (m InsertDocumentsReturnNew[T]) Path() string {
	return PathAPIDocument + "/" + m.collection
}

func (m InsertDocumentsReturnNew[T]) Parameters() api.Parameters {
	return insertParameters(true, m.waitForSync)
}

func (m InsertDocumentsReturnNew[T]) Header() api.Parameters {
	return api.Parameters{}
}

func (m InsertDocumentsReturnNew[T]) Content() any { return m.documents }

func (m InsertDocumentsReturnNew[T]) ReturnType() api.ReturnType {
	return api.ReturnType{CodeField: FieldCode}
}

// insertParameters builds the query parameters shared by the insert
// variants. returnNew is always present with the variant's fixed value.
func insertParameters(returnNew bool, waitForSync *bool) api.Parameters {
	var params api.Parameters
	params.InsertBool(paramReturnNew, returnNew)
	if waitForSync != nil {
		params.InsertBool(paramWaitForSync, *waitForSync)
	}
	return params
}

func derefBool(b *bool) (bool, bool) {
	if b == nil {
		return false, false
	}
	return *b, true
}
