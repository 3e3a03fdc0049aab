package types

// Method is an HTTP verb bound to a Resource.
type Method struct {
	HttpMethod *string `json:"httpMethod,omitempty"`

	// AuthorizationType is NONE, AWS_IAM, CUSTOM or COGNITO_USER_POOLS.
	AuthorizationType *string `json:"authorizationType,omitempty"`

	AuthorizerId       *string `json:"authorizerId,omitempty"`
	ApiKeyRequired     *bool   `json:"apiKeyRequired,omitempty"`
	RequestValidatorId *string `json:"requestValidatorId,omitempty"`
	OperationName      *string `json:"operationName,omitempty"`

	// RequestParameters maps a location such as
	// method.request.querystring.name to whether it is required.
	RequestParameters map[string]bool   `json:"requestParameters,omitempty"`
	RequestModels     map[string]string `json:"requestModels,omitempty"`

	// MethodResponses is keyed by status code.
	MethodResponses   map[string]MethodResponse `json:"methodResponses,omitempty"`
	MethodIntegration *Integration              `json:"methodIntegration,omitempty"`

	AuthorizationScopes []string `json:"authorizationScopes,omitempty"`
}

// PutMethodResult is the Method created by PutMethod.
type PutMethodResult = Method

// SetHttpMethod sets the HttpMethod field's value.
func (s *Method) SetHttpMethod(v string) *Method {
	s.HttpMethod = &v
	return s
}

// SetAuthorizationType sets the AuthorizationType field's value.
func (s *Method) SetAuthorizationType(v string) *Method {
	s.AuthorizationType = &v
	return s
}

// SetAuthorizerId sets the AuthorizerId field's value.
func (s *Method) SetAuthorizerId(v string) *Method {
	s.AuthorizerId = &v
	return s
}

// SetApiKeyRequired sets the ApiKeyRequired field's value.
func (s *Method) SetApiKeyRequired(v bool) *Method {
	s.ApiKeyRequired = &v
	return s
}

// SetRequestValidatorId sets the RequestValidatorId field's value.
func (s *Method) SetRequestValidatorId(v string) *Method {
	s.RequestValidatorId = &v
	return s
}

// SetOperationName sets the OperationName field's value.
func (s *Method) SetOperationName(v string) *Method {
	s.OperationName = &v
	return s
}

// SetRequestParameters replaces the RequestParameters map.
func (s *Method) SetRequestParameters(v map[string]bool) *Method {
	s.RequestParameters = v
	return s
}

// AddRequestParametersEntry marks a request parameter as required or
// optional. It fails with ErrDuplicateKey if key is already present.
func (s *Method) AddRequestParametersEntry(key string, value bool) error {
	return addEntry(&s.RequestParameters, key, value)
}

// ClearRequestParametersEntries removes all entries and leaves the field absent.
func (s *Method) ClearRequestParametersEntries() *Method {
	s.RequestParameters = nil
	return s
}

// SetRequestModels replaces the RequestModels map.
func (s *Method) SetRequestModels(v map[string]string) *Method {
	s.RequestModels = v
	return s
}

// AddRequestModelsEntry maps a content type to a model name. It fails with
// ErrDuplicateKey if key is already present.
func (s *Method) AddRequestModelsEntry(key, value string) error {
	return addEntry(&s.RequestModels, key, value)
}

// ClearRequestModelsEntries removes all entries and leaves the field absent.
func (s *Method) ClearRequestModelsEntries() *Method {
	s.RequestModels = nil
	return s
}

// SetMethodResponses replaces the MethodResponses map.
func (s *Method) SetMethodResponses(v map[string]MethodResponse) *Method {
	s.MethodResponses = v
	return s
}

// AddMethodResponsesEntry adds a response keyed by status code. It fails
// with ErrDuplicateKey if the code is already present.
func (s *Method) AddMethodResponsesEntry(key string, value MethodResponse) error {
	return addEntry(&s.MethodResponses, key, value)
}

// ClearMethodResponsesEntries removes all entries and leaves the field absent.
func (s *Method) ClearMethodResponsesEntries() *Method {
	s.MethodResponses = nil
	return s
}

// SetMethodIntegration sets the MethodIntegration field's value.
func (s *Method) SetMethodIntegration(v *Integration) *Method {
	s.MethodIntegration = v
	return s
}

// SetAuthorizationScopes replaces the AuthorizationScopes list. A nil list clears the field.
func (s *Method) SetAuthorizationScopes(v []string) *Method {
	s.AuthorizationScopes = copyList(v)
	return s
}

// AddAuthorizationScopes appends scopes, creating the list if it is absent.
func (s *Method) AddAuthorizationScopes(v ...string) *Method {
	if s.AuthorizationScopes == nil {
		s.AuthorizationScopes = make([]string, 0, len(v))
	}
	s.AuthorizationScopes = append(s.AuthorizationScopes, v...)
	return s
}

func (s *Method) String() string {
	return newFieldWriter().
		add("httpMethod", s.HttpMethod).
		add("authorizationType", s.AuthorizationType).
		add("authorizerId", s.AuthorizerId).
		add("apiKeyRequired", s.ApiKeyRequired).
		add("requestValidatorId", s.RequestValidatorId).
		add("operationName", s.OperationName).
		add("requestParameters", s.RequestParameters).
		add("requestModels", s.RequestModels).
		add("methodResponses", s.MethodResponses).
		add("methodIntegration", s.MethodIntegration).
		add("authorizationScopes", s.AuthorizationScopes).
		String()
}

func (s *Method) Equal(o *Method) bool { return equalRecords(s, o) }

func (s *Method) Hash() uint64 { return hashRecord(s) }

// PutMethodRequest adds a Method to a Resource.
type PutMethodRequest struct {
	RestApiId          *string           `json:"restApiId,omitempty"`
	ResourceId         *string           `json:"resourceId,omitempty"`
	HttpMethod         *string           `json:"httpMethod,omitempty"`
	AuthorizationType  *string           `json:"authorizationType,omitempty"`
	AuthorizerId       *string           `json:"authorizerId,omitempty"`
	ApiKeyRequired     *bool             `json:"apiKeyRequired,omitempty"`
	OperationName      *string           `json:"operationName,omitempty"`
	RequestParameters  map[string]bool   `json:"requestParameters,omitempty"`
	RequestModels      map[string]string `json:"requestModels,omitempty"`
	RequestValidatorId *string           `json:"requestValidatorId,omitempty"`

	AuthorizationScopes []string `json:"authorizationScopes,omitempty"`
}

// SetRestApiId sets the RestApiId field's value.
func (s *PutMethodRequest) SetRestApiId(v string) *PutMethodRequest {
	s.RestApiId = &v
	return s
}

// SetResourceId sets the ResourceId field's value.
func (s *PutMethodRequest) SetResourceId(v string) *PutMethodRequest {
	s.ResourceId = &v
	return s
}

// SetHttpMethod sets the HttpMethod field's value.
func (s *PutMethodRequest) SetHttpMethod(v string) *PutMethodRequest {
	s.HttpMethod = &v
	return s
}

// SetAuthorizationType sets the AuthorizationType field's value.
func (s *PutMethodRequest) SetAuthorizationType(v string) *PutMethodRequest {
	s.AuthorizationType = &v
	return s
}

// SetAuthorizerId sets the AuthorizerId field's value.
func (s *PutMethodRequest) SetAuthorizerId(v string) *PutMethodRequest {
	s.AuthorizerId = &v
	return s
}

// SetApiKeyRequired sets the ApiKeyRequired field's value.
func (s *PutMethodRequest) SetApiKeyRequired(v bool) *PutMethodRequest {
	s.ApiKeyRequired = &v
	return s
}

// SetOperationName sets the OperationName field's value.
func (s *PutMethodRequest) SetOperationName(v string) *PutMethodRequest {
	s.OperationName = &v
	return s
}

// SetRequestParameters replaces the RequestParameters map.
func (s *PutMethodRequest) SetRequestParameters(v map[string]bool) *PutMethodRequest {
	s.RequestParameters = v
	return s
}

// AddRequestParametersEntry marks a request parameter as required or
// optional. It fails with ErrDuplicateKey if key is already present.
func (s *PutMethodRequest) AddRequestParametersEntry(key string, value bool) error {
	return addEntry(&s.RequestParameters, key, value)
}

// ClearRequestParametersEntries removes all entries and leaves the field absent.
func (s *PutMethodRequest) ClearRequestParametersEntries() *PutMethodRequest {
	s.RequestParameters = nil
	return s
}

// SetRequestModels replaces the RequestModels map.
func (s *PutMethodRequest) SetRequestModels(v map[string]string) *PutMethodRequest {
	s.RequestModels = v
	return s
}

// AddRequestModelsEntry maps a content type to a model name. It fails with
// ErrDuplicateKey if key is already present.
func (s *PutMethodRequest) AddRequestModelsEntry(key, value string) error {
	return addEntry(&s.RequestModels, key, value)
}

// ClearRequestModelsEntries removes all entries and leaves the field absent.
func (s *PutMethodRequest) ClearRequestModelsEntries() *PutMethodRequest {
	s.RequestModels = nil
	return s
}

// SetRequestValidatorId sets the RequestValidatorId field's value.
func (s *PutMethodRequest) SetRequestValidatorId(v string) *PutMethodRequest {
	s.RequestValidatorId = &v
	return s
}

// SetAuthorizationScopes replaces the AuthorizationScopes list. A nil list clears the field.
func (s *PutMethodRequest) SetAuthorizationScopes(v []string) *PutMethodRequest {
	s.AuthorizationScopes = copyList(v)
	return s
}

// AddAuthorizationScopes appends scopes, creating the list if it is absent.
func (s *PutMethodRequest) AddAuthorizationScopes(v ...string) *PutMethodRequest {
	if s.AuthorizationScopes == nil {
		s.AuthorizationScopes = make([]string, 0, len(v))
	}
	s.AuthorizationScopes = append(s.AuthorizationScopes, v...)
	return s
}

func (s *PutMethodRequest) String() string {
	return newFieldWriter().
		add("restApiId", s.RestApiId).
		add("resourceId", s.ResourceId).
		add("httpMethod", s.HttpMethod).
		add("authorizationType", s.AuthorizationType).
		add("authorizerId", s.AuthorizerId).
		add("apiKeyRequired", s.ApiKeyRequired).
		add("operationName", s.OperationName).
		add("requestParameters", s.RequestParameters).
		add("requestModels", s.RequestModels).
		add("requestValidatorId", s.RequestValidatorId).
		add("authorizationScopes", s.AuthorizationScopes).
		String()
}

func (s *PutMethodRequest) Equal(o *PutMethodRequest) bool { return equalRecords(s, o) }

func (s *PutMethodRequest) Hash() uint64 { return hashRecord(s) }
