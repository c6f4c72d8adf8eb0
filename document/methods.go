package document

import (
	"github.com/quarrydb/quarry-go/api"
)

// Result returns the zero value the response decodes into: the full
// document.
func (m GetDocument[T]) Result() Document[T] { return Document[T]{} }

// Result returns the zero value the response decodes into: nothing,
// the operation reports through response headers only.
func (m GetDocumentHeader) Result() struct{} { return struct{}{} }

// Result returns the zero value the response decodes into: the new
// document's header.
func (m InsertDocument[T]) Result() Header { return Header{} }

// Result returns the zero value the response decodes into: the full
// stored document.
func (m InsertDocumentReturnNew[T]) Result() Document[T] { return Document[T]{} }

// Result returns the zero value the response decodes into: the new
// documents' headers in batch order.
func (m InsertDocuments[T]) Result() []Header { return nil }

// Result returns the zero value the response decodes into: the full
// stored documents in batch order.
func (m InsertDocumentsReturnNew[T]) Result() []Document[T] { return nil }

// Result returns the zero value the response decodes into: the new
// header plus the requested snapshots.
func (m ReplaceDocument[Old, New]) Result() UpdatedDocument[Old, New] {
	return UpdatedDocument[Old, New]{}
}

// Result returns the zero value the response decodes into: the new
// header plus the requested snapshots.
func (m UpdateDocument[Upd, Old, New]) Result() UpdatedDocument[Old, New] {
	return UpdatedDocument[Old, New]{}
}

// The result type of every descriptor is fixed here at compile time.
var (
	_ api.Method[Document[any]]             = GetDocument[any]{}
	_ api.Method[struct{}]                  = GetDocumentHeader{}
	_ api.Method[Header]                    = InsertDocument[any]{}
	_ api.Method[Document[any]]             = InsertDocumentReturnNew[any]{}
	_ api.Method[[]Header]                  = InsertDocuments[any]{}
	_ api.Method[[]Document[any]]           = InsertDocumentsReturnNew[any]{}
	_ api.Method[UpdatedDocument[any, any]] = ReplaceDocument[any, any]{}
	_ api.Method[UpdatedDocument[any, any]] = UpdateDocument[any, any, any]{}
)
