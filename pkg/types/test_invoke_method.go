package types

// TestInvokeMethodRequest simulates a call to a Method without deploying it.
type TestInvokeMethodRequest struct {
	RestApiId  *string `json:"restApiId,omitempty"`
	ResourceId *string `json:"resourceId,omitempty"`
	HttpMethod *string `json:"httpMethod,omitempty"`

	// PathWithQueryString is the URI path, including the query string.
	PathWithQueryString *string `json:"pathWithQueryString,omitempty"`

	Body                *string             `json:"body,omitempty"`
	Headers             map[string]string   `json:"headers,omitempty"`
	MultiValueHeaders   map[string][]string `json:"multiValueHeaders,omitempty"`
	ClientCertificateId *string             `json:"clientCertificateId,omitempty"`
	StageVariables      map[string]string   `json:"stageVariables,omitempty"`
}

// SetRestApiId sets the RestApiId field's value.
func (s *TestInvokeMethodRequest) SetRestApiId(v string) *TestInvokeMethodRequest {
	s.RestApiId = &v
	return s
}

// SetResourceId sets the ResourceId field's value.
func (s *TestInvokeMethodRequest) SetResourceId(v string) *TestInvokeMethodRequest {
	s.ResourceId = &v
	return s
}

// SetHttpMethod sets the HttpMethod field's value.
func (s *TestInvokeMethodRequest) SetHttpMethod(v string) *TestInvokeMethodRequest {
	s.HttpMethod = &v
	return s
}

// SetPathWithQueryString sets the PathWithQueryString field's value.
func (s *TestInvokeMethodRequest) SetPathWithQueryString(v string) *TestInvokeMethodRequest {
	s.PathWithQueryString = &v
	return s
}

// SetBody sets the Body field's value.
func (s *TestInvokeMethodRequest) SetBody(v string) *TestInvokeMethodRequest {
	s.Body = &v
	return s
}

// SetHeaders replaces the Headers map.
func (s *TestInvokeMethodRequest) SetHeaders(v map[string]string) *TestInvokeMethodRequest {
	s.Headers = v
	return s
}

// AddHeadersEntry adds a header. It fails with ErrDuplicateKey if key is
// already present.
func (s *TestInvokeMethodRequest) AddHeadersEntry(key, value string) error {
	return addEntry(&s.Headers, key, value)
}

// ClearHeadersEntries removes all entries and leaves the field absent.
func (s *TestInvokeMethodRequest) ClearHeadersEntries() *TestInvokeMethodRequest {
	s.Headers = nil
	return s
}

// SetMultiValueHeaders replaces the MultiValueHeaders map.
func (s *TestInvokeMethodRequest) SetMultiValueHeaders(v map[string][]string) *TestInvokeMethodRequest {
	s.MultiValueHeaders = v
	return s
}

// AddMultiValueHeadersEntry adds every value of one header. It fails with
// ErrDuplicateKey if key is already present.
func (s *TestInvokeMethodRequest) AddMultiValueHeadersEntry(key string, value []string) error {
	return addEntry(&s.MultiValueHeaders, key, value)
}

// ClearMultiValueHeadersEntries removes all entries and leaves the field absent.
func (s *TestInvokeMethodRequest) ClearMultiValueHeadersEntries() *TestInvokeMethodRequest {
	s.MultiValueHeaders = nil
	return s
}

// SetClientCertificateId sets the ClientCertificateId field's value.
func (s *TestInvokeMethodRequest) SetClientCertificateId(v string) *TestInvokeMethodRequest {
	s.ClientCertificateId = &v
	return s
}

// SetStageVariables replaces the StageVariables map.
func (s *TestInvokeMethodRequest) SetStageVariables(v map[string]string) *TestInvokeMethodRequest {
	s.StageVariables = v
	return s
}

// AddStageVariablesEntry adds a stage variable. It fails with
// ErrDuplicateKey if key is already present.
func (s *TestInvokeMethodRequest) AddStageVariablesEntry(key, value string) error {
	return addEntry(&s.StageVariables, key, value)
}

// ClearStageVariablesEntries removes all entries and leaves the field absent.
func (s *TestInvokeMethodRequest) ClearStageVariablesEntries() *TestInvokeMethodRequest {
	s.StageVariables = nil
	return s
}

func (s *TestInvokeMethodRequest) String() string {
	return newFieldWriter().
		add("restApiId", s.RestApiId).
		add("resourceId", s.ResourceId).
		add("httpMethod", s.HttpMethod).
		add("pathWithQueryString", s.PathWithQueryString).
		add("body", s.Body).
		add("headers", s.Headers).
		add("multiValueHeaders", s.MultiValueHeaders).
		add("clientCertificateId", s.ClientCertificateId).
		add("stageVariables", s.StageVariables).
		String()
}

func (s *TestInvokeMethodRequest) Equal(o *TestInvokeMethodRequest) bool {
	return equalRecords(s, o)
}

func (s *TestInvokeMethodRequest) Hash() uint64 { return hashRecord(s) }

// TestInvokeMethodResult is the simulated response of a TestInvokeMethod call.
type TestInvokeMethodResult struct {
	Status            *int32              `json:"status,omitempty"`
	Body              *string             `json:"body,omitempty"`
	Headers           map[string]string   `json:"headers,omitempty"`
	MultiValueHeaders map[string][]string `json:"multiValueHeaders,omitempty"`

	// Log is the execution log of the simulated call.
	Log *string `json:"log,omitempty"`

	// Latency is in milliseconds.
	Latency *int64 `json:"latency,omitempty"`
}

// SetStatus sets the Status field's value.
func (s *TestInvokeMethodResult) SetStatus(v int32) *TestInvokeMethodResult {
	s.Status = &v
	return s
}

// SetBody sets the Body field's value.
func (s *TestInvokeMethodResult) SetBody(v string) *TestInvokeMethodResult {
	s.Body = &v
	return s
}

// SetHeaders replaces the Headers map.
func (s *TestInvokeMethodResult) SetHeaders(v map[string]string) *TestInvokeMethodResult {
	s.Headers = v
	return s
}

// AddHeadersEntry adds a header. It fails with ErrDuplicateKey if key is
// already present.
func (s *TestInvokeMethodResult) AddHeadersEntry(key, value string) error {
	return addEntry(&s.Headers, key, value)
}

// ClearHeadersEntries removes all entries and leaves the field absent.
func (s *TestInvokeMethodResult) ClearHeadersEntries() *TestInvokeMethodResult {
	s.Headers = nil
	return s
}

// SetMultiValueHeaders replaces the MultiValueHeaders map.
func (s *TestInvokeMethodResult) SetMultiValueHeaders(v map[string][]string) *TestInvokeMethodResult {
	s.MultiValueHeaders = v
	return s
}

// AddMultiValueHeadersEntry adds every value of one header. It fails with
// ErrDuplicateKey if key is already present.
func (s *TestInvokeMethodResult) AddMultiValueHeadersEntry(key string, value []string) error {
	return addEntry(&s.MultiValueHeaders, key, value)
}

// ClearMultiValueHeadersEntries removes all entries and leaves the field absent.
func (s *TestInvokeMethodResult) ClearMultiValueHeadersEntries() *TestInvokeMethodResult {
	s.MultiValueHeaders = nil
	return s
}

// SetLog sets the Log field's value.
func (s *TestInvokeMethodResult) SetLog(v string) *TestInvokeMethodResult {
	s.Log = &v
	return s
}

// SetLatency sets the Latency field's value.
func (s *TestInvokeMethodResult) SetLatency(v int64) *TestInvokeMethodResult {
	s.Latency = &v
	return s
}

func (s *TestInvokeMethodResult) String() string {
	return newFieldWriter().
		add("status", s.Status).
		add("body", s.Body).
		add("headers", s.Headers).
		add("multiValueHeaders", s.MultiValueHeaders).
		add("log", s.Log).
		add("latency", s.Latency).
		String()
}

func (s *TestInvokeMethodResult) Equal(o *TestInvokeMethodResult) bool {
	return equalRecords(s, o)
}

func (s *TestInvokeMethodResult) Hash() uint64 { return hashRecord(s) }
