// Package quarry provides a Go client for Quarry, a document-oriented
// database spoken to over an HTTP RPC protocol.
//
// Every document-level remote operation is an immutable, strongly-typed
// descriptor value (package document) that carries the operation's
// parameters and optional modifiers, compiles deterministically into
// the pieces of an HTTP request, and declares the result type the
// response decodes into. This package supplies the client that
// dispatches those descriptors.
//
// # Quick Start
//
//	client, err := quarry.New(
//	    quarry.WithEndpoint("https://db.example.com:8529"),
//	    quarry.WithDatabase("shop"),
//	    quarry.WithAuthentication(quarry.BasicAuth("svc", "secret")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	doc, err := quarry.Execute(ctx, client,
//	    document.NewGetDocument[Customer](document.NewID("customers", "42")))
//
// # Descriptors and modifiers
//
// Descriptors are built with required fields and refined with With*
// modifiers, each returning a new value:
//
//	patch := document.NewUpdateDocument[CustomerPatch, Customer, Customer](id,
//	    document.NewDocumentUpdate(CustomerPatch{Tier: "gold"})).
//	    WithKeepNull(false).
//	    WithReturnNew(true)
//	updated, err := quarry.Execute(ctx, client, patch)
//
// An unset modifier contributes nothing to the request; the server
// applies its default. Result types are fixed at construction: an
// insert built with NewInsertDocument yields a document.Header, one
// built with NewInsertDocumentReturnNew yields the full stored
// document. There is no runtime flag to flip between the two.
//
// # Typed collections
//
// Package collection wraps the descriptors for callers that address one
// collection with one content type:
//
//	customers := collection.New[Customer](client, "customers")
//	doc, err := customers.Document(ctx, "42")
//
// # Error Handling
//
// Errors are typed and can be checked with errors.Is or the predicate
// helpers:
//
//	_, err := quarry.Execute(ctx, client, getDoc)
//	if quarry.IsNotFound(err) {
//	    // Handle missing document
//	}
//	if quarry.IsRevisionConflict(err) {
//	    // Re-read and reconcile
//	}
//
// # Thread Safety
//
// The Client is safe for concurrent use from multiple goroutines, and
// descriptors are plain immutable values safe to construct, copy and
// read concurrently without coordination.
package quarry
