package document

import (
	"github.com/quarrydb/quarry-go/api"
)

// UpdateDocument partially updates a document: fields present in the
// patch are merged into the stored content. Upd is the patch content
// type; Old and New are result snapshot markers as on ReplaceDocument.
type UpdateDocument[Upd, Old, New any] struct {
	id              ID
	update          DocumentUpdate[Upd]
	waitForSync     *bool
	ignoreRevisions *bool
	ifMatch         *string
	keepNull        *bool
	mergeObjects    *bool
	returnOld       *bool
	returnNew       *bool
}

// NewUpdateDocument creates a descriptor patching the document with the
// given ID.
func NewUpdateDocument[Upd, Old, New any](id ID, update DocumentUpdate[Upd]) UpdateDocument[Upd, Old, New] {
	return UpdateDocument[Upd, Old, New]{id: id, update: update}
}

// WithWaitForSync returns a copy that asks the server to sync to disk
// before answering (or explicitly not to, with false).
func (m UpdateDocument[Upd, Old, New]) WithWaitForSync(wait bool) UpdateDocument[Upd, Old, New] {
	m.waitForSync = &wait
	return m
}

// WithIgnoreRevisions returns a copy that controls whether a revision
// embedded in the patch is compared against the stored document's
// revision.
func (m UpdateDocument[Upd, Old, New]) WithIgnoreRevisions(ignore bool) UpdateDocument[Upd, Old, New] {
	m.ignoreRevisions = &ignore
	return m
}

// WithIfMatch returns a copy that patches the document only if its
// current revision equals the given one.
func (m UpdateDocument[Upd, Old, New]) WithIfMatch(revision string) UpdateDocument[Upd, Old, New] {
	m.ifMatch = &revision
	return m
}

// WithKeepNull returns a copy that controls whether null values in the
// patch are stored (true) or remove the attribute (false).
func (m UpdateDocument[Upd, Old, New]) WithKeepNull(keep bool) UpdateDocument[Upd, Old, New] {
	m.keepNull = &keep
	return m
}

// WithMergeObjects returns a copy that controls whether object values
// in the patch are merged into existing objects (true) or replace them
// (false).
func (m UpdateDocument[Upd, Old, New]) WithMergeObjects(merge bool) UpdateDocument[Upd, Old, New] {
	m.mergeObjects = &merge
	return m
}

// WithReturnOld returns a copy that asks for the pre-update snapshot in
// the result.
func (m UpdateDocument[Upd, Old, New]) WithReturnOld(returnOld bool) UpdateDocument[Upd, Old, New] {
	m.returnOld = &returnOld
	return m
}

// WithReturnNew returns a copy that asks for the post-update snapshot
// in the result.
func (m UpdateDocument[Upd, Old, New]) WithReturnNew(returnNew bool) UpdateDocument[Upd, Old, New] {
	m.returnNew = &returnNew
	return m
}

// ID returns the document ID being patched.
func (m UpdateDocument[Upd, Old, New]) ID() ID { return m.id }

// Update returns the patch payload.
func (m UpdateDocument[Upd, Old, New]) Update() DocumentUpdate[Upd] { return m.update }

// WaitForSync returns the wait-for-sync setting, if set.
func (m UpdateDocument[Upd, Old, New]) WaitForSync() (bool, bool) {
	return derefBool(m.waitForSync)
}

// IgnoreRevisions returns the ignore-revisions setting, if set.
func (m UpdateDocument[Upd, Old, New]) IgnoreRevisions() (bool, bool) {
	return derefBool(m.ignoreRevisions)
}

// IfMatch returns the if-match revision, if set.
func (m UpdateDocument[Upd, Old, New]) IfMatch() (string, bool) {
	return deref(m.ifMatch)
}

// KeepNull returns the keep-null setting, if set.
func (m UpdateDocument[Upd, Old, New]) KeepNull() (bool, bool) {
	return derefBool(m.keepNull)
}

// MergeObjects returns the merge-objects setting, if set.
func (m UpdateDocument[Upd, Old, New]) MergeObjects() (bool, bool) {
	return derefBool(m.mergeObjects)
}

// ReturnOld returns the return-old setting, if set.
func (m UpdateDocument[Upd, Old, New]) ReturnOld() (bool, bool) {
	return derefBool(m.returnOld)
}

// ReturnNew returns the return-new setting, if set.
func (m UpdateDocument[Upd, Old, New]) ReturnNew() (bool, bool) {
	return derefBool(m.returnNew)
}

func (m UpdateDocument[Upd, Old, New]) Operation() api.Operation { return api.OperationModify }

func (m UpdateDocument[Upd, Old, New]) Path() string {
	return PathAPIDocument + "/" + m.id.String()
}

func (m UpdateDocument[Upd, Old, New]) Parameters() api.Parameters {
	var params api.Parameters
	if m.waitForSync != nil {
		params.InsertBool(paramWaitForSync, *m.waitForSync)
	}
	if m.ignoreRevisions != nil {
		params.InsertBool(paramIgnoreRevisions, *m.ignoreRevisions)
	}
	if m.keepNull != nil {
		params.InsertBool(paramKeepNull, *m.keepNull)
	}
	if m.mergeObjects != nil {
		params.InsertBool(paramMergeObjects, *m.mergeObjects)
	}
	if m.returnOld != nil {
		params.InsertBool(paramReturnOld, *m.returnOld)
	}
	if m.returnNew != nil {
		params.InsertBool(paramReturnNew, *m.returnNew)
	}
	return params
}

func (m UpdateDocument[Upd, Old, New]) Header() api.Parameters {
	var header api.Parameters
	if m.ifMatch != nil {
		header.Insert(headerIfMatch, *m.ifMatch)
	}
	return header
}

func (m UpdateDocument[Upd, Old, New]) Content() any { return m.update }

func (m UpdateDocument[Upd, Old, New]) ReturnType() api.ReturnType {
	return api.ReturnType{CodeField: FieldCode}
}
