// Package api defines the two contracts every remote operation of the
// Quarry protocol implements: Prepare, which describes how to assemble
// the HTTP request for the operation, and Method, which additionally
// declares the operation's result type and how the raw response maps to
// it. Operation descriptors are plain immutable values; the client in
// the root package consumes both contracts to perform the actual call.
package api

// Prepare describes the request side of a remote operation. All methods
// are side-effect-free reads of the descriptor's own immutable state;
// none of them performs I/O.
type Prepare interface {
	// Operation returns the operation kind, which the dispatcher maps
	// to an HTTP verb and failure-policy class.
	Operation() Operation

	// Path returns the request path below the database root, starting
	// with a slash.
	Path() string

	// Parameters returns the query parameters in insertion order.
	// Unset optional modifiers contribute no entry.
	Parameters() Parameters

	// Header returns the request headers in insertion order.
	Header() Parameters

	// Content returns the request body value to be JSON-encoded, or
	// nil for operations without a body.
	Content() any
}

// ReturnType declares how a raw response envelope maps to a method's
// result. The two slots are independent: ResultField names the response
// field holding the result payload (empty means the response body itself
// is the result), and CodeField names the response field carrying a
// status code to be checked (empty means no such field).
//
// Document operations decode the body directly but do check the status
// field; other operation families fill the slots differently, which is
// why the envelope interpretation lives with the dispatcher and not in
// any one family.
type ReturnType struct {
	ResultField string
	CodeField   string
}

// Method is a remote operation with a declared result type R. R is
// fixed when the descriptor is constructed; the dispatcher decodes the
// response into R with no runtime inspection of the descriptor.
type Method[R any] interface {
	Prepare

	// ReturnType declares the response envelope slots for this method.
	ReturnType() ReturnType

	// Result returns the zero value of the declared result type. The
	// dispatcher decodes the response into it; descriptors carry no
	// result data themselves.
	Result() R
}
