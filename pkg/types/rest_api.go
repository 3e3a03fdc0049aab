package types

import "time"

// RestApi is a REST API resource as returned by the service.
type RestApi struct {
	Id          *string    `json:"id,omitempty"`
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	CreatedDate *time.Time `json:"createdDate,omitempty"`
	Version     *string    `json:"version,omitempty"`

	// Warnings reported while importing a definition.
	Warnings []string `json:"warnings,omitempty"`

	BinaryMediaTypes []string `json:"binaryMediaTypes,omitempty"`

	// MinimumCompressionSize is in bytes, between 0 and 10485760. Absent
	// disables compression.
	MinimumCompressionSize *int32 `json:"minimumCompressionSize,omitempty"`

	// ApiKeySource is HEADER or AUTHORIZER. See ApiKeySourceType.
	ApiKeySource *string `json:"apiKeySource,omitempty"`

	EndpointConfiguration *EndpointConfiguration `json:"endpointConfiguration,omitempty"`

	Policy *string `json:"policy,omitempty"`

	Tags map[string]string `json:"tags,omitempty"`

	DisableExecuteApiEndpoint *bool `json:"disableExecuteApiEndpoint,omitempty"`

	RootResourceId *string `json:"rootResourceId,omitempty"`
}

type (
	CreateRestApiResult = RestApi
	ImportRestApiResult = RestApi
	PutRestApiResult    = RestApi
	GetRestApiResult    = RestApi
	UpdateRestApiResult = RestApi
)

// SetId sets the Id field's value.
func (s *RestApi) SetId(v string) *RestApi {
	s.Id = &v
	return s
}

// SetName sets the Name field's value.
func (s *RestApi) SetName(v string) *RestApi {
	s.Name = &v
	return s
}

// SetDescription sets the Description field's value.
func (s *RestApi) SetDescription(v string) *RestApi {
	s.Description = &v
	return s
}

// SetCreatedDate sets the CreatedDate field's value.
func (s *RestApi) SetCreatedDate(v time.Time) *RestApi {
	s.CreatedDate = &v
	return s
}

// SetVersion sets the Version field's value.
func (s *RestApi) SetVersion(v string) *RestApi {
	s.Version = &v
	return s
}

// SetWarnings replaces the Warnings list. A nil list clears the field.
func (s *RestApi) SetWarnings(v []string) *RestApi {
	s.Warnings = copyList(v)
	return s
}

// AddWarnings appends warnings, creating the list if it is absent.
func (s *RestApi) AddWarnings(v ...string) *RestApi {
	if s.Warnings == nil {
		s.Warnings = make([]string, 0, len(v))
	}
	s.Warnings = append(s.Warnings, v...)
	return s
}

// SetBinaryMediaTypes replaces the BinaryMediaTypes list. A nil list clears the field.
func (s *RestApi) SetBinaryMediaTypes(v []string) *RestApi {
	s.BinaryMediaTypes = copyList(v)
	return s
}

// AddBinaryMediaTypes appends media types, creating the list if it is absent.
func (s *RestApi) AddBinaryMediaTypes(v ...string) *RestApi {
	if s.BinaryMediaTypes == nil {
		s.BinaryMediaTypes = make([]string, 0, len(v))
	}
	s.BinaryMediaTypes = append(s.BinaryMediaTypes, v...)
	return s
}

// SetMinimumCompressionSize sets the MinimumCompressionSize field's value.
func (s *RestApi) SetMinimumCompressionSize(v int32) *RestApi {
	s.MinimumCompressionSize = &v
	return s
}

// SetApiKeySource sets the ApiKeySource field's value.
func (s *RestApi) SetApiKeySource(v ApiKeySourceType) *RestApi {
	src := string(v)
	s.ApiKeySource = &src
	return s
}

// SetEndpointConfiguration sets the EndpointConfiguration field's value.
func (s *RestApi) SetEndpointConfiguration(v *EndpointConfiguration) *RestApi {
	s.EndpointConfiguration = v
	return s
}

// SetPolicy sets the Policy field's value.
func (s *RestApi) SetPolicy(v string) *RestApi {
	s.Policy = &v
	return s
}

// SetTags replaces the Tags map.
func (s *RestApi) SetTags(v map[string]string) *RestApi {
	s.Tags = v
	return s
}

// AddTagsEntry adds a tag. It fails with ErrDuplicateKey if key is already set.
func (s *RestApi) AddTagsEntry(key, value string) error {
	return addEntry(&s.Tags, key, value)
}

// ClearTagsEntries removes all tags and leaves the field absent.
func (s *RestApi) ClearTagsEntries() *RestApi {
	s.Tags = nil
	return s
}

// SetDisableExecuteApiEndpoint sets the DisableExecuteApiEndpoint field's value.
func (s *RestApi) SetDisableExecuteApiEndpoint(v bool) *RestApi {
	s.DisableExecuteApiEndpoint = &v
	return s
}

// SetRootResourceId sets the RootResourceId field's value.
func (s *RestApi) SetRootResourceId(v string) *RestApi {
	s.RootResourceId = &v
	return s
}

func (s *RestApi) String() string {
	return newFieldWriter().
		add("id", s.Id).
		add("name", s.Name).
		add("description", s.Description).
		add("createdDate", s.CreatedDate).
		add("version", s.Version).
		add("warnings", s.Warnings).
		add("binaryMediaTypes", s.BinaryMediaTypes).
		add("minimumCompressionSize", s.MinimumCompressionSize).
		add("apiKeySource", s.ApiKeySource).
		add("endpointConfiguration", s.EndpointConfiguration).
		add("policy", s.Policy).
		add("tags", s.Tags).
		add("disableExecuteApiEndpoint", s.DisableExecuteApiEndpoint).
		add("rootResourceId", s.RootResourceId).
		String()
}

func (s *RestApi) Equal(o *RestApi) bool { return equalRecords(s, o) }

func (s *RestApi) Hash() uint64 { return hashRecord(s) }

// CreateRestApiRequest creates a new, empty RestApi.
type CreateRestApiRequest struct {
	// Name is required.
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Version     *string `json:"version,omitempty"`

	// CloneFrom is the id of an API to copy.
	CloneFrom *string `json:"cloneFrom,omitempty"`

	BinaryMediaTypes       []string `json:"binaryMediaTypes,omitempty"`
	MinimumCompressionSize *int32   `json:"minimumCompressionSize,omitempty"`

	// ApiKeySource is HEADER or AUTHORIZER. See ApiKeySourceType.
	ApiKeySource *string `json:"apiKeySource,omitempty"`

	EndpointConfiguration *EndpointConfiguration `json:"endpointConfiguration,omitempty"`

	Policy *string `json:"policy,omitempty"`

	// Tags keys are at most 128 characters and cannot start with "aws:";
	// values are at most 256 characters.
	Tags map[string]string `json:"tags,omitempty"`

	DisableExecuteApiEndpoint *bool `json:"disableExecuteApiEndpoint,omitempty"`
}

// SetName sets the Name field's value.
func (s *CreateRestApiRequest) SetName(v string) *CreateRestApiRequest {
	s.Name = &v
	return s
}

// SetDescription sets the Description field's value.
func (s *CreateRestApiRequest) SetDescription(v string) *CreateRestApiRequest {
	s.Description = &v
	return s
}

// SetVersion sets the Version field's value.
func (s *CreateRestApiRequest) SetVersion(v string) *CreateRestApiRequest {
	s.Version = &v
	return s
}

// SetCloneFrom sets the CloneFrom field's value.
func (s *CreateRestApiRequest) SetCloneFrom(v string) *CreateRestApiRequest {
	s.CloneFrom = &v
	return s
}

// SetBinaryMediaTypes replaces the BinaryMediaTypes list. A nil list clears the field.
func (s *CreateRestApiRequest) SetBinaryMediaTypes(v []string) *CreateRestApiRequest {
	s.BinaryMediaTypes = copyList(v)
	return s
}

// AddBinaryMediaTypes appends media types, creating the list if it is absent.
func (s *CreateRestApiRequest) AddBinaryMediaTypes(v ...string) *CreateRestApiRequest {
	if s.BinaryMediaTypes == nil {
		s.BinaryMediaTypes = make([]string, 0, len(v))
	}
	s.BinaryMediaTypes = append(s.BinaryMediaTypes, v...)
	return s
}

// SetMinimumCompressionSize sets the MinimumCompressionSize field's value.
func (s *CreateRestApiRequest) SetMinimumCompressionSize(v int32) *CreateRestApiRequest {
	s.MinimumCompressionSize = &v
	return s
}

// SetApiKeySource sets the ApiKeySource field's value.
func (s *CreateRestApiRequest) SetApiKeySource(v ApiKeySourceType) *CreateRestApiRequest {
	src := string(v)
	s.ApiKeySource = &src
	return s
}

// SetEndpointConfiguration sets the EndpointConfiguration field's value.
func (s *CreateRestApiRequest) SetEndpointConfiguration(v *EndpointConfiguration) *CreateRestApiRequest {
	s.EndpointConfiguration = v
	return s
}

// SetPolicy sets the Policy field's value.
func (s *CreateRestApiRequest) SetPolicy(v string) *CreateRestApiRequest {
	s.Policy = &v
	return s
}

// SetTags replaces the Tags map.
func (s *CreateRestApiRequest) SetTags(v map[string]string) *CreateRestApiRequest {
	s.Tags = v
	return s
}

// AddTagsEntry adds a tag. It fails with ErrDuplicateKey if key is already set.
func (s *CreateRestApiRequest) AddTagsEntry(key, value string) error {
	return addEntry(&s.Tags, key, value)
}

// ClearTagsEntries removes all tags and leaves the field absent.
func (s *CreateRestApiRequest) ClearTagsEntries() *CreateRestApiRequest {
	s.Tags = nil
	return s
}

// SetDisableExecuteApiEndpoint sets the DisableExecuteApiEndpoint field's value.
func (s *CreateRestApiRequest) SetDisableExecuteApiEndpoint(v bool) *CreateRestApiRequest {
	s.DisableExecuteApiEndpoint = &v
	return s
}

func (s *CreateRestApiRequest) String() string {
	return newFieldWriter().
		add("name", s.Name).
		add("description", s.Description).
		add("version", s.Version).
		add("cloneFrom", s.CloneFrom).
		add("binaryMediaTypes", s.BinaryMediaTypes).
		add("minimumCompressionSize", s.MinimumCompressionSize).
		add("apiKeySource", s.ApiKeySource).
		add("endpointConfiguration", s.EndpointConfiguration).
		add("policy", s.Policy).
		add("tags", s.Tags).
		add("disableExecuteApiEndpoint", s.DisableExecuteApiEndpoint).
		String()
}

func (s *CreateRestApiRequest) Equal(o *CreateRestApiRequest) bool { return equalRecords(s, o) }

func (s *CreateRestApiRequest) Hash() uint64 { return hashRecord(s) }

// ImportRestApiRequest creates an API from an OpenAPI definition.
type ImportRestApiRequest struct {
	// FailOnWarnings rolls back the import when a warning is encountered.
	FailOnWarnings *bool `json:"failonwarnings,omitempty"`

	// Parameters are import options, e.g. "endpointConfigurationTypes" or
	// "ignore=documentation". Sent as query string parameters.
	Parameters map[string]string `json:"parameters,omitempty"`

	// Body is the raw definition, JSON or YAML. Required.
	Body []byte `json:"body,omitempty"`
}

// SetFailOnWarnings sets the FailOnWarnings field's value.
func (s *ImportRestApiRequest) SetFailOnWarnings(v bool) *ImportRestApiRequest {
	s.FailOnWarnings = &v
	return s
}

// SetParameters replaces the Parameters map.
func (s *ImportRestApiRequest) SetParameters(v map[string]string) *ImportRestApiRequest {
	s.Parameters = v
	return s
}

// AddParametersEntry adds an import option. It fails with ErrDuplicateKey if
// key is already set.
func (s *ImportRestApiRequest) AddParametersEntry(key, value string) error {
	return addEntry(&s.Parameters, key, value)
}

// ClearParametersEntries removes all options and leaves the field absent.
func (s *ImportRestApiRequest) ClearParametersEntries() *ImportRestApiRequest {
	s.Parameters = nil
	return s
}

// SetBody sets the Body field's value.
func (s *ImportRestApiRequest) SetBody(v []byte) *ImportRestApiRequest {
	s.Body = v
	return s
}

func (s *ImportRestApiRequest) String() string {
	return newFieldWriter().
		add("failOnWarnings", s.FailOnWarnings).
		add("parameters", s.Parameters).
		add("body", s.Body).
		String()
}

func (s *ImportRestApiRequest) Equal(o *ImportRestApiRequest) bool { return equalRecords(s, o) }

func (s *ImportRestApiRequest) Hash() uint64 { return hashRecord(s) }

// PutRestApiRequest merges or overwrites an existing API with a definition.
type PutRestApiRequest struct {
	RestApiId *string `json:"restApiId,omitempty"`

	// Mode is merge or overwrite. See PutMode.
	Mode *string `json:"mode,omitempty"`

	FailOnWarnings *bool             `json:"failonwarnings,omitempty"`
	Parameters     map[string]string `json:"parameters,omitempty"`
	Body           []byte            `json:"body,omitempty"`
}

// SetRestApiId sets the RestApiId field's value.
func (s *PutRestApiRequest) SetRestApiId(v string) *PutRestApiRequest {
	s.RestApiId = &v
	return s
}

// SetMode sets the Mode field's value.
func (s *PutRestApiRequest) SetMode(v PutMode) *PutRestApiRequest {
	mode := string(v)
	s.Mode = &mode
	return s
}

// SetFailOnWarnings sets the FailOnWarnings field's value.
func (s *PutRestApiRequest) SetFailOnWarnings(v bool) *PutRestApiRequest {
	s.FailOnWarnings = &v
	return s
}

// SetParameters replaces the Parameters map.
func (s *PutRestApiRequest) SetParameters(v map[string]string) *PutRestApiRequest {
	s.Parameters = v
	return s
}

// AddParametersEntry adds an import option. It fails with ErrDuplicateKey if
// key is already set.
func (s *PutRestApiRequest) AddParametersEntry(key, value string) error {
	return addEntry(&s.Parameters, key, value)
}

// ClearParametersEntries removes all options and leaves the field absent.
func (s *PutRestApiRequest) ClearParametersEntries() *PutRestApiRequest {
	s.Parameters = nil
	return s
}

// SetBody sets the Body field's value.
func (s *PutRestApiRequest) SetBody(v []byte) *PutRestApiRequest {
	s.Body = v
	return s
}

func (s *PutRestApiRequest) String() string {
	return newFieldWriter().
		add("restApiId", s.RestApiId).
		add("mode", s.Mode).
		add("failOnWarnings", s.FailOnWarnings).
		add("parameters", s.Parameters).
		add("body", s.Body).
		String()
}

func (s *PutRestApiRequest) Equal(o *PutRestApiRequest) bool { return equalRecords(s, o) }

func (s *PutRestApiRequest) Hash() uint64 { return hashRecord(s) }

// GetRestApiRequest reads a RestApi by id.
type GetRestApiRequest struct {
	RestApiId *string `json:"restApiId,omitempty"`
}

// SetRestApiId sets the RestApiId field's value.
func (s *GetRestApiRequest) SetRestApiId(v string) *GetRestApiRequest {
	s.RestApiId = &v
	return s
}

func (s *GetRestApiRequest) String() string {
	return newFieldWriter().add("restApiId", s.RestApiId).String()
}

func (s *GetRestApiRequest) Equal(o *GetRestApiRequest) bool { return equalRecords(s, o) }

func (s *GetRestApiRequest) Hash() uint64 { return hashRecord(s) }

// UpdateRestApiRequest changes a RestApi through patch operations.
type UpdateRestApiRequest struct {
	RestApiId       *string          `json:"restApiId,omitempty"`
	PatchOperations []PatchOperation `json:"patchOperations,omitempty"`
}

// SetRestApiId sets the RestApiId field's value.
func (s *UpdateRestApiRequest) SetRestApiId(v string) *UpdateRestApiRequest {
	s.RestApiId = &v
	return s
}

// SetPatchOperations replaces the PatchOperations list. A nil list clears the field.
func (s *UpdateRestApiRequest) SetPatchOperations(v []PatchOperation) *UpdateRestApiRequest {
	s.PatchOperations = copyList(v)
	return s
}

// AddPatchOperations appends operations, creating the list if it is absent.
func (s *UpdateRestApiRequest) AddPatchOperations(v ...PatchOperation) *UpdateRestApiRequest {
	if s.PatchOperations == nil {
		s.PatchOperations = make([]PatchOperation, 0, len(v))
	}
	s.PatchOperations = append(s.PatchOperations, v...)
	return s
}

func (s *UpdateRestApiRequest) String() string {
	return newFieldWriter().
		add("restApiId", s.RestApiId).
		add("patchOperations", s.PatchOperations).
		String()
}

func (s *UpdateRestApiRequest) Equal(o *UpdateRestApiRequest) bool { return equalRecords(s, o) }

func (s *UpdateRestApiRequest) Hash() uint64 { return hashRecord(s) }

// DeleteRestApiRequest deletes a RestApi by id.
type DeleteRestApiRequest struct {
	RestApiId *string `json:"restApiId,omitempty"`
}

// SetRestApiId sets the RestApiId field's value.
func (s *DeleteRestApiRequest) SetRestApiId(v string) *DeleteRestApiRequest {
	s.RestApiId = &v
	return s
}

func (s *DeleteRestApiRequest) String() string {
	return newFieldWriter().add("restApiId", s.RestApiId).String()
}

func (s *DeleteRestApiRequest) Equal(o *DeleteRestApiRequest) bool { return equalRecords(s, o) }

func (s *DeleteRestApiRequest) Hash() uint64 { return hashRecord(s) }
