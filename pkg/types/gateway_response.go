package types

// GatewayResponse customises the response API Gateway returns when a request
// fails before reaching the integration.
type GatewayResponse struct {
	// ResponseType is one of GatewayResponseType.
	ResponseType *string `json:"responseType,omitempty"`

	StatusCode *string `json:"statusCode,omitempty"`

	// ResponseParameters maps gatewayresponse.header.X to a static value or
	// a method.request expression.
	ResponseParameters map[string]string `json:"responseParameters,omitempty"`

	// ResponseTemplates is keyed by content type.
	ResponseTemplates map[string]string `json:"responseTemplates,omitempty"`

	// DefaultResponse reports that the response has not been customised.
	DefaultResponse *bool `json:"defaultResponse,omitempty"`
}

type (
	PutGatewayResponseResult    = GatewayResponse
	GetGatewayResponseResult    = GatewayResponse
	UpdateGatewayResponseResult = GatewayResponse
)

// SetResponseType sets the ResponseType field's value.
func (s *GatewayResponse) SetResponseType(v GatewayResponseType) *GatewayResponse {
	rt := string(v)
	s.ResponseType = &rt
	return s
}

// SetStatusCode sets the StatusCode field's value.
func (s *GatewayResponse) SetStatusCode(v string) *GatewayResponse {
	s.StatusCode = &v
	return s
}

// SetResponseParameters replaces the ResponseParameters map.
func (s *GatewayResponse) SetResponseParameters(v map[string]string) *GatewayResponse {
	s.ResponseParameters = v
	return s
}

// AddResponseParametersEntry adds a header mapping. It fails with
// ErrDuplicateKey if key is already present.
func (s *GatewayResponse) AddResponseParametersEntry(key, value string) error {
	return addEntry(&s.ResponseParameters, key, value)
}

// ClearResponseParametersEntries removes all entries and leaves the field absent.
func (s *GatewayResponse) ClearResponseParametersEntries() *GatewayResponse {
	s.ResponseParameters = nil
	return s
}

// SetResponseTemplates replaces the ResponseTemplates map.
func (s *GatewayResponse) SetResponseTemplates(v map[string]string) *GatewayResponse {
	s.ResponseTemplates = v
	return s
}

// AddResponseTemplatesEntry adds a template keyed by content type. It fails
// with ErrDuplicateKey if key is already present.
func (s *GatewayResponse) AddResponseTemplatesEntry(key, value string) error {
	return addEntry(&s.ResponseTemplates, key, value)
}

// ClearResponseTemplatesEntries removes all entries and leaves the field absent.
func (s *GatewayResponse) ClearResponseTemplatesEntries() *GatewayResponse {
	s.ResponseTemplates = nil
	return s
}

// SetDefaultResponse sets the DefaultResponse field's value.
func (s *GatewayResponse) SetDefaultResponse(v bool) *GatewayResponse {
	s.DefaultResponse = &v
	return s
}

func (s *GatewayResponse) String() string {
	return newFieldWriter().
		add("responseType", s.ResponseType).
		add("statusCode", s.StatusCode).
		add("responseParameters", s.ResponseParameters).
		add("responseTemplates", s.ResponseTemplates).
		add("defaultResponse", s.DefaultResponse).
		String()
}

func (s *GatewayResponse) Equal(o *GatewayResponse) bool { return equalRecords(s, o) }

func (s *GatewayResponse) Hash() uint64 { return hashRecord(s) }

// PutGatewayResponseRequest creates or replaces the customisation of one
// GatewayResponseType.
type PutGatewayResponseRequest struct {
	RestApiId    *string `json:"restApiId,omitempty"`
	ResponseType *string `json:"responseType,omitempty"`

	// StatusCode must match StatusCodePattern.
	StatusCode *string `json:"statusCode,omitempty"`

	ResponseParameters map[string]string `json:"responseParameters,omitempty"`
	ResponseTemplates  map[string]string `json:"responseTemplates,omitempty"`
}

// SetRestApiId sets the RestApiId field's value.
func (s *PutGatewayResponseRequest) SetRestApiId(v string) *PutGatewayResponseRequest {
	s.RestApiId = &v
	return s
}

// SetResponseType sets the ResponseType field's value.
func (s *PutGatewayResponseRequest) SetResponseType(v GatewayResponseType) *PutGatewayResponseRequest {
	rt := string(v)
	s.ResponseType = &rt
	return s
}

// SetStatusCode sets the StatusCode field's value.
func (s *PutGatewayResponseRequest) SetStatusCode(v string) *PutGatewayResponseRequest {
	s.StatusCode = &v
	return s
}

// SetResponseParameters replaces the ResponseParameters map.
func (s *PutGatewayResponseRequest) SetResponseParameters(v map[string]string) *PutGatewayResponseRequest {
	s.ResponseParameters = v
	return s
}

// AddResponseParametersEntry adds a header mapping. It fails with
// ErrDuplicateKey if key is already present.
func (s *PutGatewayResponseRequest) AddResponseParametersEntry(key, value string) error {
	return addEntry(&s.ResponseParameters, key, value)
}

// ClearResponseParametersEntries removes all entries and leaves the field absent.
func (s *PutGatewayResponseRequest) ClearResponseParametersEntries() *PutGatewayResponseRequest {
	s.ResponseParameters = nil
	return s
}

// SetResponseTemplates replaces the ResponseTemplates map.
func (s *PutGatewayResponseRequest) SetResponseTemplates(v map[string]string) *PutGatewayResponseRequest {
	s.ResponseTemplates = v
	return s
}

// AddResponseTemplatesEntry adds a template keyed by content type. It fails
// with ErrDuplicateKey if key is already present.
func (s *PutGatewayResponseRequest) AddResponseTemplatesEntry(key, value string) error {
	return addEntry(&s.ResponseTemplates, key, value)
}

// ClearResponseTemplatesEntries removes all entries and leaves the field absent.
func (s *PutGatewayResponseRequest) ClearResponseTemplatesEntries() *PutGatewayResponseRequest {
	s.ResponseTemplates = nil
	return s
}

func (s *PutGatewayResponseRequest) String() string {
	return newFieldWriter().
		add("restApiId", s.RestApiId).
		add("responseType", s.ResponseType).
		add("statusCode", s.StatusCode).
		add("responseParameters", s.ResponseParameters).
		add("responseTemplates", s.ResponseTemplates).
		String()
}

func (s *PutGatewayResponseRequest) Equal(o *PutGatewayResponseRequest) bool {
	return equalRecords(s, o)
}

func (s *PutGatewayResponseRequest) Hash() uint64 { return hashRecord(s) }

// UpdateGatewayResponseRequest changes a GatewayResponse through patch
// operations.
type UpdateGatewayResponseRequest struct {
	RestApiId       *string          `json:"restApiId,omitempty"`
	ResponseType    *string          `json:"responseType,omitempty"`
	PatchOperations []PatchOperation `json:"patchOperations,omitempty"`
}

// SetRestApiId sets the RestApiId field's value.
func (s *UpdateGatewayResponseRequest) SetRestApiId(v string) *UpdateGatewayResponseRequest {
	s.RestApiId = &v
	return s
}

// SetResponseType sets the ResponseType field's value.
func (s *UpdateGatewayResponseRequest) SetResponseType(v GatewayResponseType) *UpdateGatewayResponseRequest {
	rt := string(v)
	s.ResponseType = &rt
	return s
}

// SetPatchOperations replaces the PatchOperations list. A nil list clears the field.
func (s *UpdateGatewayResponseRequest) SetPatchOperations(v []PatchOperation) *UpdateGatewayResponseRequest {
	s.PatchOperations = copyList(v)
	return s
}

// AddPatchOperations appends operations, creating the list if it is absent.
func (s *UpdateGatewayResponseRequest) AddPatchOperations(v ...PatchOperation) *UpdateGatewayResponseRequest {
	if s.PatchOperations == nil {
		s.PatchOperations = make([]PatchOperation, 0, len(v))
	}
	s.PatchOperations = append(s.PatchOperations, v...)
	return s
}

func (s *UpdateGatewayResponseRequest) String() string {
	return newFieldWriter().
		add("restApiId", s.RestApiId).
		add("responseType", s.ResponseType).
		add("patchOperations", s.PatchOperations).
		String()
}

func (s *UpdateGatewayResponseRequest) Equal(o *UpdateGatewayResponseRequest) bool {
	return equalRecords(s, o)
}

func (s *UpdateGatewayResponseRequest) Hash() uint64 { return hashRecord(s) }

// GetGatewayResponseRequest reads the GatewayResponse of one type.
type GetGatewayResponseRequest struct {
	RestApiId    *string `json:"restApiId,omitempty"`
	ResponseType *string `json:"responseType,omitempty"`
}

// SetRestApiId sets the RestApiId field's value.
func (s *GetGatewayResponseRequest) SetRestApiId(v string) *GetGatewayResponseRequest {
	s.RestApiId = &v
	return s
}

// SetResponseType sets the ResponseType field's value.
func (s *GetGatewayResponseRequest) SetResponseType(v GatewayResponseType) *GetGatewayResponseRequest {
	rt := string(v)
	s.ResponseType = &rt
	return s
}

func (s *GetGatewayResponseRequest) String() string {
	return newFieldWriter().
		add("restApiId", s.RestApiId).
		add("responseType", s.ResponseType).
		String()
}

func (s *GetGatewayResponseRequest) Equal(o *GetGatewayResponseRequest) bool {
	return equalRecords(s, o)
}

func (s *GetGatewayResponseRequest) Hash() uint64 { return hashRecord(s) }

// DeleteGatewayResponseRequest resets a GatewayResponse to its default.
type DeleteGatewayResponseRequest struct {
	RestApiId    *string `json:"restApiId,omitempty"`
	ResponseType *string `json:"responseType,omitempty"`
}

// SetRestApiId sets the RestApiId field's value.
func (s *DeleteGatewayResponseRequest) SetRestApiId(v string) *DeleteGatewayResponseRequest {
	s.RestApiId = &v
	return s
}

// SetResponseType sets the ResponseType field's value.
func (s *DeleteGatewayResponseRequest) SetResponseType(v GatewayResponseType) *DeleteGatewayResponseRequest {
	rt := string(v)
	s.ResponseType = &rt
	return s
}

func (s *DeleteGatewayResponseRequest) String() string {
	return newFieldWriter().
		add("restApiId", s.RestApiId).
		add("responseType", s.ResponseType).
		String()
}

func (s *DeleteGatewayResponseRequest) Equal(o *DeleteGatewayResponseRequest) bool {
	return equalRecords(s, o)
}

func (s *DeleteGatewayResponseRequest) Hash() uint64 { return hashRecord(s) }
