package types

// MethodResponse is a response a Method may return for one status code.
type MethodResponse struct {
	StatusCode *string `json:"statusCode,omitempty"`

	// ResponseParameters maps a header location such as
	// method.response.header.X-Trace to whether it is required.
	ResponseParameters map[string]bool `json:"responseParameters,omitempty"`

	// ResponseModels maps a content type to a model name.
	ResponseModels map[string]string `json:"responseModels,omitempty"`
}

// PutMethodResponseResult is the MethodResponse created by PutMethodResponse.
type PutMethodResponseResult = MethodResponse

// SetStatusCode sets the StatusCode field's value.
func (s *MethodResponse) SetStatusCode(v string) *MethodResponse {
	s.StatusCode = &v
	return s
}

// SetResponseParameters replaces the ResponseParameters map.
func (s *MethodResponse) SetResponseParameters(v map[string]bool) *MethodResponse {
	s.ResponseParameters = v
	return s
}

// AddResponseParametersEntry adds a header. It fails with ErrDuplicateKey if
// key is already present.
func (s *MethodResponse) AddResponseParametersEntry(key string, value bool) error {
	return addEntry(&s.ResponseParameters, key, value)
}

// ClearResponseParametersEntries removes all entries and leaves the field absent.
func (s *MethodResponse) ClearResponseParametersEntries() *MethodResponse {
	s.ResponseParameters = nil
	return s
}

// SetResponseModels replaces the ResponseModels map.
func (s *MethodResponse) SetResponseModels(v map[string]string) *MethodResponse {
	s.ResponseModels = v
	return s
}

// AddResponseModelsEntry adds a model. It fails with ErrDuplicateKey if key
// is already present.
func (s *MethodResponse) AddResponseModelsEntry(key, value string) error {
	return addEntry(&s.ResponseModels, key, value)
}

// ClearResponseModelsEntries removes all entries and leaves the field absent.
func (s *MethodResponse) ClearResponseModelsEntries() *MethodResponse {
	s.ResponseModels = nil
	return s
}

func (s *MethodResponse) String() string {
	return newFieldWriter().
		add("statusCode", s.StatusCode).
		add("responseParameters", s.ResponseParameters).
		add("responseModels", s.ResponseModels).
		String()
}

func (s *MethodResponse) Equal(o *MethodResponse) bool { return equalRecords(s, o) }

func (s *MethodResponse) Hash() uint64 { return hashRecord(s) }

// PutMethodResponseRequest adds a MethodResponse to an existing Method.
type PutMethodResponseRequest struct {
	RestApiId  *string `json:"restApiId,omitempty"`
	ResourceId *string `json:"resourceId,omitempty"`
	HttpMethod *string `json:"httpMethod,omitempty"`

	// StatusCode must match StatusCodePattern.
	StatusCode *string `json:"statusCode,omitempty"`

	ResponseParameters map[string]bool   `json:"responseParameters,omitempty"`
	ResponseModels     map[string]string `json:"responseModels,omitempty"`
}

// SetRestApiId sets the RestApiId field's value.
func (s *PutMethodResponseRequest) SetRestApiId(v string) *PutMethodResponseRequest {
	s.RestApiId = &v
	return s
}

// SetResourceId sets the ResourceId field's value.
func (s *PutMethodResponseRequest) SetResourceId(v string) *PutMethodResponseRequest {
	s.ResourceId = &v
	return s
}

// SetHttpMethod sets the HttpMethod field's value.
func (s *PutMethodResponseRequest) SetHttpMethod(v string) *PutMethodResponseRequest {
	s.HttpMethod = &v
	return s
}

// SetStatusCode sets the StatusCode field's value.
func (s *PutMethodResponseRequest) SetStatusCode(v string) *PutMethodResponseRequest {
	s.StatusCode = &v
	return s
}

// SetResponseParameters replaces the ResponseParameters map.
func (s *PutMethodResponseRequest) SetResponseParameters(v map[string]bool) *PutMethodResponseRequest {
	s.ResponseParameters = v
	return s
}

// AddResponseParametersEntry adds a header. It fails with ErrDuplicateKey if
// key is already present.
func (s *PutMethodResponseRequest) AddResponseParametersEntry(key string, value bool) error {
	return addEntry(&s.ResponseParameters, key, value)
}

// ClearResponseParametersEntries removes all entries and leaves the field absent.
func (s *PutMethodResponseRequest) ClearResponseParametersEntries() *PutMethodResponseRequest {
	s.ResponseParameters = nil
	return s
}

// SetResponseModels replaces the ResponseModels map.
func (s *PutMethodResponseRequest) SetResponseModels(v map[string]string) *PutMethodResponseRequest {
	s.ResponseModels = v
	return s
}

// AddResponseModelsEntry adds a model. It fails with ErrDuplicateKey if key
// is already present.
func (s *PutMethodResponseRequest) AddResponseModelsEntry(key, value string) error {
	return addEntry(&s.ResponseModels, key, value)
}

// ClearResponseModelsEntries removes all entries and leaves the field absent.
func (s *PutMethodResponseRequest) ClearResponseModelsEntries() *PutMethodResponseRequest {
	s.ResponseModels = nil
	return s
}

func (s *PutMethodResponseRequest) String() string {
	return newFieldWriter().
		add("restApiId", s.RestApiId).
		add("resourceId", s.ResourceId).
		add("httpMethod", s.HttpMethod).
		add("statusCode", s.StatusCode).
		add("responseParameters", s.ResponseParameters).
		add("responseModels", s.ResponseModels).
		String()
}

func (s *PutMethodResponseRequest) Equal(o *PutMethodResponseRequest) bool {
	return equalRecords(s, o)
}

func (s *PutMethodResponseRequest) Hash() uint64 { return hashRecord(s) }
