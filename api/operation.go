package api

// Operation classifies a remote operation by its effect on the server.
// The dispatcher maps each kind to an HTTP verb and decides which
// failure-policy class (read-like or write-like) applies; descriptors
// never name verbs themselves.
type Operation int

const (
	// OperationRead fetches a full resource.
	OperationRead Operation = iota
	// OperationReadHeader fetches resource metadata only.
	OperationReadHeader
	// OperationCreate creates one or more new resources.
	OperationCreate
	// OperationReplace replaces a resource's content entirely.
	OperationReplace
	// OperationModify partially updates a resource's content.
	OperationModify
)

func (o Operation) String() string {
	switch o {
	case OperationRead:
		return "read"
	case OperationReadHeader:
		return "read-header"
	case OperationCreate:
		return "create"
	case OperationReplace:
		return "replace"
	case OperationModify:
		return "modify"
	default:
		return "unknown"
	}
}

// IsReadLike reports whether the operation has no effect on the server.
func (o Operation) IsReadLike() bool {
	return o == OperationRead || o == OperationReadHeader
}
