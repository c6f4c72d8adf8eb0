// Package collection provides a typed convenience handle over the
// document operation descriptors for callers that address a single
// collection with a single content type. Callers needing the optional
// modifiers construct descriptors from package document directly.
package collection

import (
	"context"

	quarry "github.com/quarrydb/quarry-go"
	"github.com/quarrydb/quarry-go/document"
)

// Collection binds a collection name and a content type to a client.
// It holds no other state and is safe for concurrent use.
type Collection[T any] struct {
	client *quarry.Client
	name   string
}

// New creates a handle for the named collection.
func New[T any](client *quarry.Client, name string) *Collection[T] {
	return &Collection[T]{client: client, name: name}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

// Document fetches the document with the given key.
func (c *Collection[T]) Document(ctx context.Context, key string) (document.Document[T], error) {
	return c.DocumentByID(ctx, document.NewID(c.name, key))
}

// DocumentByID fetches the document with the given ID.
func (c *Collection[T]) DocumentByID(ctx context.Context, id document.ID) (document.Document[T], error) {
	return quarry.Execute(ctx, c.client, document.NewGetDocument[T](id))
}

// Exists probes for the document with the given key without fetching
// its content.
func (c *Collection[T]) Exists(ctx context.Context, key string) (bool, error) {
	_, err := quarry.Execute(ctx, c.client, document.NewGetDocumentHeader(document.NewID(c.name, key)))
	if err != nil {
		if quarry.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Insert creates a document and returns its header.
func (c *Collection[T]) Insert(ctx context.Context, doc document.NewDocument[T]) (document.Header, error) {
	return quarry.Execute(ctx, c.client, document.NewInsertDocument(c.name, doc))
}

// InsertNew creates a document and returns the full stored document.
func (c *Collection[T]) InsertNew(ctx context.Context, doc document.NewDocument[T]) (document.Document[T], error) {
	return quarry.Execute(ctx, c.client, document.NewInsertDocumentReturnNew(c.name, doc))
}

// InsertMany creates a batch of documents and returns their headers in
// batch order.
func (c *Collection[T]) InsertMany(ctx context.Context, docs []document.NewDocument[T]) ([]document.Header, error) {
	return quarry.Execute(ctx, c.client, document.NewInsertDocuments(c.name, docs))
}

// InsertManyNew creates a batch of documents and returns the full
// stored documents in batch order.
func (c *Collection[T]) InsertManyNew(ctx context.Context, docs []document.NewDocument[T]) ([]document.Document[T], error) {
	return quarry.Execute(ctx, c.client, document.NewInsertDocumentsReturnNew(c.name, docs))
}

// Replace replaces the content of the document with the given key and
// returns its new header.
func (c *Collection[T]) Replace(ctx context.Context, key string, content T) (document.Header, error) {
	id := document.NewID(c.name, key)
	result, err := quarry.Execute(ctx, c.client,
		document.NewReplaceDocument[T, T](id, document.NewDocumentUpdate(content)))
	if err != nil {
		return document.Header{}, err
	}
	return result.Header(), nil
}

// Update patches the document with the given key and returns its new
// header. Patch is the partial content type; fields present in it are
// merged into the stored document.
func Update[T, Patch any](ctx context.Context, c *Collection[T], key string, patch Patch) (document.Header, error) {
	id := document.NewID(c.name, key)
	result, err := quarry.Execute(ctx, c.client,
		document.NewUpdateDocument[Patch, T, T](id, document.NewDocumentUpdate(patch)))
	if err != nil {
		return document.Header{}, err
	}
	return result.Header(), nil
}
