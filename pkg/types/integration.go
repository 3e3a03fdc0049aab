package types

// TlsConfig controls certificate checks of an HTTP integration endpoint.
type TlsConfig struct {
	InsecureSkipVerification *bool `json:"insecureSkipVerification,omitempty"`
}

// SetInsecureSkipVerification sets the InsecureSkipVerification field's value.
func (s *TlsConfig) SetInsecureSkipVerification(v bool) *TlsConfig {
	s.InsecureSkipVerification = &v
	return s
}

func (s *TlsConfig) String() string {
	return newFieldWriter().add("insecureSkipVerification", s.InsecureSkipVerification).String()
}

func (s *TlsConfig) Equal(o *TlsConfig) bool { return equalRecords(s, o) }

func (s *TlsConfig) Hash() uint64 { return hashRecord(s) }

// IntegrationResponse maps a backend response onto a MethodResponse.
type IntegrationResponse struct {
	StatusCode       *string `json:"statusCode,omitempty"`
	SelectionPattern *string `json:"selectionPattern,omitempty"`

	ResponseParameters map[string]string `json:"responseParameters,omitempty"`
	ResponseTemplates  map[string]string `json:"responseTemplates,omitempty"`

	// ContentHandling is CONVERT_TO_BINARY or CONVERT_TO_TEXT.
	ContentHandling *string `json:"contentHandling,omitempty"`
}

// SetStatusCode sets the StatusCode field's value.
func (s *IntegrationResponse) SetStatusCode(v string) *IntegrationResponse {
	s.StatusCode = &v
	return s
}

// SetSelectionPattern sets the SelectionPattern field's value.
func (s *IntegrationResponse) SetSelectionPattern(v string) *IntegrationResponse {
	s.SelectionPattern = &v
	return s
}

// SetResponseParameters replaces the ResponseParameters map.
func (s *IntegrationResponse) SetResponseParameters(v map[string]string) *IntegrationResponse {
	s.ResponseParameters = v
	return s
}

// AddResponseParametersEntry adds a parameter mapping. It fails with
// ErrDuplicateKey if key is already present.
func (s *IntegrationResponse) AddResponseParametersEntry(key, value string) error {
	return addEntry(&s.ResponseParameters, key, value)
}

// ClearResponseParametersEntries removes all entries and leaves the field absent.
func (s *IntegrationResponse) ClearResponseParametersEntries() *IntegrationResponse {
	s.ResponseParameters = nil
	return s
}

// SetResponseTemplates replaces the ResponseTemplates map.
func (s *IntegrationResponse) SetResponseTemplates(v map[string]string) *IntegrationResponse {
	s.ResponseTemplates = v
	return s
}

// AddResponseTemplatesEntry adds a template keyed by content type. It fails
// with ErrDuplicateKey if key is already present.
func (s *IntegrationResponse) AddResponseTemplatesEntry(key, value string) error {
	return addEntry(&s.ResponseTemplates, key, value)
}

// ClearResponseTemplatesEntries removes all entries and leaves the field absent.
func (s *IntegrationResponse) ClearResponseTemplatesEntries() *IntegrationResponse {
	s.ResponseTemplates = nil
	return s
}

// SetContentHandling sets the ContentHandling field's value.
func (s *IntegrationResponse) SetContentHandling(v ContentHandlingStrategy) *IntegrationResponse {
	ch := string(v)
	s.ContentHandling = &ch
	return s
}

func (s *IntegrationResponse) String() string {
	return newFieldWriter().
		add("statusCode", s.StatusCode).
		add("selectionPattern", s.SelectionPattern).
		add("responseParameters", s.ResponseParameters).
		add("responseTemplates", s.ResponseTemplates).
		add("contentHandling", s.ContentHandling).
		String()
}

func (s *IntegrationResponse) Equal(o *IntegrationResponse) bool { return equalRecords(s, o) }

func (s *IntegrationResponse) Hash() uint64 { return hashRecord(s) }

// Integration is the backend a Method forwards requests to.
type Integration struct {
	// Type is HTTP, AWS, MOCK, HTTP_PROXY or AWS_PROXY. See IntegrationType.
	Type *string `json:"type,omitempty"`

	HttpMethod *string `json:"httpMethod,omitempty"`
	Uri        *string `json:"uri,omitempty"`

	// ConnectionType is INTERNET or VPC_LINK.
	ConnectionType *string `json:"connectionType,omitempty"`
	ConnectionId   *string `json:"connectionId,omitempty"`

	// Credentials is an IAM role ARN, or arn:aws:iam::*:user/* to pass the
	// caller's identity through.
	Credentials *string `json:"credentials,omitempty"`

	RequestParameters map[string]string `json:"requestParameters,omitempty"`
	RequestTemplates  map[string]string `json:"requestTemplates,omitempty"`

	PassthroughBehavior *string `json:"passthroughBehavior,omitempty"`
	ContentHandling     *string `json:"contentHandling,omitempty"`

	// TimeoutInMillis is between 50 and 29000.
	TimeoutInMillis *int32 `json:"timeoutInMillis,omitempty"`

	CacheNamespace     *string  `json:"cacheNamespace,omitempty"`
	CacheKeyParameters []string `json:"cacheKeyParameters,omitempty"`

	// IntegrationResponses is keyed by status code.
	IntegrationResponses map[string]IntegrationResponse `json:"integrationResponses,omitempty"`

	TlsConfig *TlsConfig `json:"tlsConfig,omitempty"`
}

// PutIntegrationResult is the Integration created by PutIntegration.
type PutIntegrationResult = Integration

// SetType sets the Type field's value.
func (s *Integration) SetType(v IntegrationType) *Integration {
	t := string(v)
	s.Type = &t
	return s
}

// SetHttpMethod sets the HttpMethod field's value.
func (s *Integration) SetHttpMethod(v string) *Integration {
	s.HttpMethod = &v
	return s
}

// SetUri sets the Uri field's value.
func (s *Integration) SetUri(v string) *Integration {
	s.Uri = &v
	return s
}

// SetConnectionType sets the ConnectionType field's value.
func (s *Integration) SetConnectionType(v ConnectionType) *Integration {
	ct := string(v)
	s.ConnectionType = &ct
	return s
}

// SetConnectionId sets the ConnectionId field's value.
func (s *Integration) SetConnectionId(v string) *Integration {
	s.ConnectionId = &v
	return s
}

// SetCredentials sets the Credentials field's value.
func (s *Integration) SetCredentials(v string) *Integration {
	s.Credentials = &v
	return s
}

// SetRequestParameters replaces the RequestParameters map.
func (s *Integration) SetRequestParameters(v map[string]string) *Integration {
	s.RequestParameters = v
	return s
}

// AddRequestParametersEntry adds a parameter mapping. It fails with
// ErrDuplicateKey if key is already present.
func (s *Integration) AddRequestParametersEntry(key, value string) error {
	return addEntry(&s.RequestParameters, key, value)
}

// ClearRequestParametersEntries removes all entries and leaves the field absent.
func (s *Integration) ClearRequestParametersEntries() *Integration {
	s.RequestParameters = nil
	return s
}

// SetRequestTemplates replaces the RequestTemplates map.
func (s *Integration) SetRequestTemplates(v map[string]string) *Integration {
	s.RequestTemplates = v
	return s
}

// AddRequestTemplatesEntry adds a template keyed by content type. It fails
// with ErrDuplicateKey if key is already present.
func (s *Integration) AddRequestTemplatesEntry(key, value string) error {
	return addEntry(&s.RequestTemplates, key, value)
}

// ClearRequestTemplatesEntries removes all entries and leaves the field absent.
func (s *Integration) ClearRequestTemplatesEntries() *Integration {
	s.RequestTemplates = nil
	return s
}

// SetPassthroughBehavior sets the PassthroughBehavior field's value.
func (s *Integration) SetPassthroughBehavior(v string) *Integration {
	s.PassthroughBehavior = &v
	return s
}

// SetContentHandling sets the ContentHandling field's value.
func (s *Integration) SetContentHandling(v ContentHandlingStrategy) *Integration {
	ch := string(v)
	s.ContentHandling = &ch
	return s
}

// SetTimeoutInMillis sets the TimeoutInMillis field's value.
func (s *Integration) SetTimeoutInMillis(v int32) *Integration {
	s.TimeoutInMillis = &v
	return s
}

// SetCacheNamespace sets the CacheNamespace field's value.
func (s *Integration) SetCacheNamespace(v string) *Integration {
	s.CacheNamespace = &v
	return s
}

// SetCacheKeyParameters replaces the CacheKeyParameters list. A nil list clears the field.
func (s *Integration) SetCacheKeyParameters(v []string) *Integration {
	s.CacheKeyParameters = copyList(v)
	return s
}

// AddCacheKeyParameters appends parameters, creating the list if it is absent.
func (s *Integration) AddCacheKeyParameters(v ...string) *Integration {
	if s.CacheKeyParameters == nil {
		s.CacheKeyParameters = make([]string, 0, len(v))
	}
	s.CacheKeyParameters = append(s.CacheKeyParameters, v...)
	return s
}

// SetIntegrationResponses replaces the IntegrationResponses map.
func (s *Integration) SetIntegrationResponses(v map[string]IntegrationResponse) *Integration {
	s.IntegrationResponses = v
	return s
}

// AddIntegrationResponsesEntry adds a response keyed by status code. It
// fails with ErrDuplicateKey if the code is already present.
func (s *Integration) AddIntegrationResponsesEntry(key string, value IntegrationResponse) error {
	return addEntry(&s.IntegrationResponses, key, value)
}

// ClearIntegrationResponsesEntries removes all entries and leaves the field absent.
func (s *Integration) ClearIntegrationResponsesEntries() *Integration {
	s.IntegrationResponses = nil
	return s
}

// SetTlsConfig sets the TlsConfig field's value.
func (s *Integration) SetTlsConfig(v *TlsConfig) *Integration {
	s.TlsConfig = v
	return s
}

func (s *Integration) String() string {
	return newFieldWriter().
		add("type", s.Type).
		add("httpMethod", s.HttpMethod).
		add("uri", s.Uri).
		add("connectionType", s.ConnectionType).
		add("connectionId", s.ConnectionId).
		add("credentials", s.Credentials).
		add("requestParameters", s.RequestParameters).
		add("requestTemplates", s.RequestTemplates).
		add("passthroughBehavior", s.PassthroughBehavior).
		add("contentHandling", s.ContentHandling).
		add("timeoutInMillis", s.TimeoutInMillis).
		add("cacheNamespace", s.CacheNamespace).
		add("cacheKeyParameters", s.CacheKeyParameters).
		add("integrationResponses", s.IntegrationResponses).
		add("tlsConfig", s.TlsConfig).
		String()
}

func (s *Integration) Equal(o *Integration) bool { return equalRecords(s, o) }

func (s *Integration) Hash() uint64 { return hashRecord(s) }

// PutIntegrationRequest sets up the Integration of a Method.
type PutIntegrationRequest struct {
	RestApiId  *string `json:"restApiId,omitempty"`
	ResourceId *string `json:"resourceId,omitempty"`
	HttpMethod *string `json:"httpMethod,omitempty"`

	// Type is required. See IntegrationType.
	Type *string `json:"type,omitempty"`

	// IntegrationHttpMethod is the verb used against the backend. Lambda
	// backends always take POST.
	IntegrationHttpMethod *string `json:"integrationHttpMethod,omitempty"`

	Uri               *string           `json:"uri,omitempty"`
	ConnectionType    *string           `json:"connectionType,omitempty"`
	ConnectionId      *string           `json:"connectionId,omitempty"`
	Credentials       *string           `json:"credentials,omitempty"`
	RequestParameters map[string]string `json:"requestParameters,omitempty"`
	RequestTemplates  map[string]string `json:"requestTemplates,omitempty"`

	// PassthroughBehavior is WHEN_NO_MATCH, WHEN_NO_TEMPLATES or NEVER.
	PassthroughBehavior *string `json:"passthroughBehavior,omitempty"`

	CacheNamespace     *string  `json:"cacheNamespace,omitempty"`
	CacheKeyParameters []string `json:"cacheKeyParameters,omitempty"`

	ContentHandling *string    `json:"contentHandling,omitempty"`
	TimeoutInMillis *int32     `json:"timeoutInMillis,omitempty"`
	TlsConfig       *TlsConfig `json:"tlsConfig,omitempty"`
}

// SetRestApiId sets the RestApiId field's value.
func (s *PutIntegrationRequest) SetRestApiId(v string) *PutIntegrationRequest {
	s.RestApiId = &v
	return s
}

// SetResourceId sets the ResourceId field's value.
func (s *PutIntegrationRequest) SetResourceId(v string) *PutIntegrationRequest {
	s.ResourceId = &v
	return s
}

// SetHttpMethod sets the HttpMethod field's value.
func (s *PutIntegrationRequest) SetHttpMethod(v string) *PutIntegrationRequest {
	s.HttpMethod = &v
	return s
}

// SetType sets the Type field's value.
func (s *PutIntegrationRequest) SetType(v IntegrationType) *PutIntegrationRequest {
	t := string(v)
	s.Type = &t
	return s
}

// SetIntegrationHttpMethod sets the IntegrationHttpMethod field's value.
func (s *PutIntegrationRequest) SetIntegrationHttpMethod(v string) *PutIntegrationRequest {
	s.IntegrationHttpMethod = &v
	return s
}

// SetUri sets the Uri field's value.
func (s *PutIntegrationRequest) SetUri(v string) *PutIntegrationRequest {
	s.Uri = &v
	return s
}

// SetConnectionType sets the ConnectionType field's value.
func (s *PutIntegrationRequest) SetConnectionType(v ConnectionType) *PutIntegrationRequest {
	ct := string(v)
	s.ConnectionType = &ct
	return s
}

// SetConnectionId sets the ConnectionId field's value.
func (s *PutIntegrationRequest) SetConnectionId(v string) *PutIntegrationRequest {
	s.ConnectionId = &v
	return s
}

// SetCredentials sets the Credentials field's value.
func (s *PutIntegrationRequest) SetCredentials(v string) *PutIntegrationRequest {
	s.Credentials = &v
	return s
}

// SetRequestParameters replaces the RequestParameters map.
func (s *PutIntegrationRequest) SetRequestParameters(v map[string]string) *PutIntegrationRequest {
	s.RequestParameters = v
	return s
}

// AddRequestParametersEntry adds a parameter mapping. It fails with
// ErrDuplicateKey if key is already present.
func (s *PutIntegrationRequest) AddRequestParametersEntry(key, value string) error {
	return addEntry(&s.RequestParameters, key, value)
}

// ClearRequestParametersEntries removes all entries and leaves the field absent.
func (s *PutIntegrationRequest) ClearRequestParametersEntries() *PutIntegrationRequest {
	s.RequestParameters = nil
	return s
}

// SetRequestTemplates replaces the RequestTemplates map.
func (s *PutIntegrationRequest) SetRequestTemplates(v map[string]string) *PutIntegrationRequest {
	s.RequestTemplates = v
	return s
}

// AddRequestTemplatesEntry adds a template keyed by content type. It fails
// with ErrDuplicateKey if key is already present.
func (s *PutIntegrationRequest) AddRequestTemplatesEntry(key, value string) error {
	return addEntry(&s.RequestTemplates, key, value)
}

// ClearRequestTemplatesEntries removes all entries and leaves the field absent.
func (s *PutIntegrationRequest) ClearRequestTemplatesEntries() *PutIntegrationRequest {
	s.RequestTemplates = nil
	return s
}

// SetPassthroughBehavior sets the PassthroughBehavior field's value.
func (s *PutIntegrationRequest) SetPassthroughBehavior(v string) *PutIntegrationRequest {
	s.PassthroughBehavior = &v
	return s
}

// SetCacheNamespace sets the CacheNamespace field's value.
func (s *PutIntegrationRequest) SetCacheNamespace(v string) *PutIntegrationRequest {
	s.CacheNamespace = &v
	return s
}

// SetCacheKeyParameters replaces the CacheKeyParameters list. A nil list clears the field.
func (s *PutIntegrationRequest) SetCacheKeyParameters(v []string) *PutIntegrationRequest {
	s.CacheKeyParameters = copyList(v)
	return s
}

// AddCacheKeyParameters appends parameters, creating the list if it is absent.
func (s *PutIntegrationRequest) AddCacheKeyParameters(v ...string) *PutIntegrationRequest {
	if s.CacheKeyParameters == nil {
		s.CacheKeyParameters = make([]string, 0, len(v))
	}
	s.CacheKeyParameters = append(s.CacheKeyParameters, v...)
	return s
}

// SetContentHandling sets the ContentHandling field's value.
func (s *PutIntegrationRequest) SetContentHandling(v ContentHandlingStrategy) *PutIntegrationRequest {
	ch := string(v)
	s.ContentHandling = &ch
	return s
}

// SetTimeoutInMillis sets the TimeoutInMillis field's value.
func (s *PutIntegrationRequest) SetTimeoutInMillis(v int32) *PutIntegrationRequest {
	s.TimeoutInMillis = &v
	return s
}

// SetTlsConfig sets the TlsConfig field's value.
func (s *PutIntegrationRequest) SetTlsConfig(v *TlsConfig) *PutIntegrationRequest {
	s.TlsConfig = v
	return s
}

func (s *PutIntegrationRequest) String() string {
	return newFieldWriter().
		add("restApiId", s.RestApiId).
		add("resourceId", s.ResourceId).
		add("httpMethod", s.HttpMethod).
		add("type", s.Type).
		add("integrationHttpMethod", s.IntegrationHttpMethod).
		add("uri", s.Uri).
		add("connectionType", s.ConnectionType).
		add("connectionId", s.ConnectionId).
		add("credentials", s.Credentials).
		add("requestParameters", s.RequestParameters).
		add("requestTemplates", s.RequestTemplates).
		add("passthroughBehavior", s.PassthroughBehavior).
		add("cacheNamespace", s.CacheNamespace).
		add("cacheKeyParameters", s.CacheKeyParameters).
		add("contentHandling", s.ContentHandling).
		add("timeoutInMillis", s.TimeoutInMillis).
		add("tlsConfig", s.TlsConfig).
		String()
}

func (s *PutIntegrationRequest) Equal(o *PutIntegrationRequest) bool { return equalRecords(s, o) }

func (s *PutIntegrationRequest) Hash() uint64 { return hashRecord(s) }
