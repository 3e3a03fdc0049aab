package models

// APIDefinition is an OpenAPI document imported into a REST API, given
// inline or as an s3://bucket/key URI.
type APIDefinition struct {
	Body           string
	BodyS3URI      string
	FailOnWarnings bool

	// Parameters are passed through to the import, e.g. endpointConfigurationTypes.
	Parameters map[string]string
}

// IsSet reports whether the definition carries a document.
func (d APIDefinition) IsSet() bool {
	return d.Body != "" || d.BodyS3URI != ""
}
