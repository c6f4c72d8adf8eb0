package document

import (
	"github.com/quarrydb/quarry-go/api"
)

// ReplaceDocument replaces a document's content entirely. The type
// parameters Old and New are the content types for the optional old and
// new snapshots of the result; they are markers only and are
// materialized solely when the matching return-old / return-new
// modifier was set.
type ReplaceDocument[Old, New any] struct {
	id              ID
	document        DocumentUpdate[New]
	waitForSync     *bool
	ignoreRevisions *bool
	ifMatch         *string
	returnOld       *bool
	returnNew       *bool
}

// NewReplaceDocument creates a descriptor replacing the document with
// the given ID by the given content.
func NewReplaceDocument[Old, New any](id ID, document DocumentUpdate[New]) ReplaceDocument[Old, New] {
	return ReplaceDocument[Old, New]{id: id, document: document}
}

// WithWaitForSync returns a copy that asks the server to sync to disk
// before answering (or explicitly not to, with false).
func (m ReplaceDocument[Old, New]) WithWaitForSync(wait bool) ReplaceDocument[Old, New] {
	m.waitForSync = &wait
	return m
}

// WithIgnoreRevisions returns a copy that controls whether a revision
// embedded in the replacement content is compared against the stored
// document's revision.
func (m ReplaceDocument[Old, New]) WithIgnoreRevisions(ignore bool) ReplaceDocument[Old, New] {
	m.ignoreRevisions = &ignore
	return m
}

// WithIfMatch returns a copy that replaces the document only if its
// current revision equals the given one.
func (m ReplaceDocument[Old, New]) WithIfMatch(revision string) ReplaceDocument[Old, New] {
	m.ifMatch = &revision
	return m
}

// WithReturnOld returns a copy that asks for the pre-replace snapshot
// in the result.
func (m ReplaceDocument[Old, New]) WithReturnOld(returnOld bool) ReplaceDocument[Old, New] {
	m.returnOld = &returnOld
	return m
}

// WithReturnNew returns a copy that asks for the post-replace snapshot
// in the result.
func (m ReplaceDocument[Old, New]) WithReturnNew(returnNew bool) ReplaceDocument[Old, New] {
	m.returnNew = &returnNew
	return m
}

// ID returns the document ID being replaced.
func (m ReplaceDocument[Old, New]) ID() ID { return m.id }

// Document returns the replacement payload.
func (m ReplaceDocument[Old, New]) Document() DocumentUpdate[New] { return m.document }

// WaitForSync returns the wait-for-sync setting, if set.
func (m ReplaceDocument[Old, New]) WaitForSync() (bool, bool) {
	return derefBool(m.waitForSync)
}

// IgnoreRevisions returns the ignore-revisions setting, if set.
func (m ReplaceDocument[Old, New]) IgnoreRevisions() (bool, bool) {
	return derefBool(m.ignoreRevisions)
}

// IfMatch returns the if-match revision, if set.
func (m ReplaceDocument[Old, New]) IfMatch() (string, bool) {
	return deref(m.ifMatch)
}

// ReturnOld returns the return-old setting, if set.
func (m ReplaceDocument[Old, New]) ReturnOld() (bool, bool) {
	return derefBool(m.returnOld)
}

// ReturnNew returns the return-new setting, if set.
func (m ReplaceDocument[Old, New]) ReturnNew() (bool, bool) {
	return derefBool(m.returnNew)
}

func (m ReplaceDocument[Old, New]) Operation() api.Operation { return api.OperationReplace }

func (m ReplaceDocument[Old, New]) Path() string {
	return PathAPIDocument + "/" + m.id.String()
}

func (m ReplaceDocument[Old, New]) Parameters() api.Parameters {
	var params api.Parameters
	if m.waitForSync != nil {
		params.InsertBool(paramWaitForSync, *m.waitForSync)
	}
	if m.ignoreRevisions != nil {
		params.InsertBool(paramIgnoreRevisions, *m.ignoreRevisions)
	}
	if m.returnOld != nil {
		params.InsertBool(paramReturnOld, *m.returnOld)
	}
	if m.returnNew != nil {
		params.InsertBool(paramReturnNew, *m.returnNew)
	}
	return params
}

func (m ReplaceDocument[Old, New]) Header() api.Parameters {
	var header api.Parameters
	if m.ifMatch != nil {
		header.Insert(headerIfMatch, *m.ifMatch)
	}
	return header
}

func (m ReplaceDocument[Old, New]) Content() any { return m.document }

func (m ReplaceDocument[Old, New]) ReturnType() api.ReturnType {
	return api.ReturnType{CodeField: FieldCode}
}
