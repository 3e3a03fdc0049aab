package types

import "regexp"

// Wire constraints of the API Gateway control plane. Records do not check
// them; they are exported for callers that validate input before sending it.
const (
	TagKeyMaxLength      = 128
	TagValueMaxLength    = 256
	ReservedTagKeyPrefix = "aws:"

	MinimumCompressionSizeMax = 10485760
	TimeoutInMillisMin        = 50
	TimeoutInMillisMax        = 29000
)

var (
	// StatusCodePattern matches an HTTP status code of a method or gateway
	// response.
	StatusCodePattern = regexp.MustCompile(`^[1-5]\d\d$`)

	// SelectionStatusCodePattern matches the status code of a documentation
	// part location, where "*" and blank match any code.
	SelectionStatusCodePattern = regexp.MustCompile(`^([1-5]\d\d|\*|\s*)$`)

	// TagPattern matches both tag keys and tag values.
	TagPattern = regexp.MustCompile(`^[\p{L}\p{Z}\p{N}_.:/=+\-@]*$`)
)
