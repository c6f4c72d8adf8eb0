package document

// Wire-level names of the document API. These are fixed literals of the
// Quarry HTTP protocol.
const (
	// PathAPIDocument is the API root for document resources, followed
	// by "/{collection}" for creates or "/{collection}/{key}" for
	// operations addressing an existing document.
	PathAPIDocument = "/_api/document"

	paramWaitForSync     = "waitForSync"
	paramReturnNew       = "returnNew"
	paramReturnOld       = "returnOld"
	paramIgnoreRevisions = "ignoreRevs"
	paramKeepNull        = "keepNull"
	paramMergeObjects    = "mergeObjects"

	headerIfMatch    = "If-Match"
	headerIfNonMatch = "If-None-Match"

	// FieldCode is the response envelope field carrying the server's
	// status code.
	FieldCode = "code"

	fieldID       = "_id"
	fieldKey      = "_key"
	fieldRevision = "_rev"
	fieldOld      = "old"
	fieldNew      = "new"
)
