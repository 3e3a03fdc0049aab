package types

import "time"

// AccessLogSettings sends per-request access logs of a Stage to a log group
// or Firehose stream.
type AccessLogSettings struct {
	// Format is a single-line template using $context variables.
	Format *string `json:"format,omitempty"`

	DestinationArn *string `json:"destinationArn,omitempty"`
}

// SetFormat sets the Format field's value.
func (s *AccessLogSettings) SetFormat(v string) *AccessLogSettings {
	s.Format = &v
	return s
}

// SetDestinationArn sets the DestinationArn field's value.
func (s *AccessLogSettings) SetDestinationArn(v string) *AccessLogSettings {
	s.DestinationArn = &v
	return s
}

func (s *AccessLogSettings) String() string {
	return newFieldWriter().
		add("format", s.Format).
		add("destinationArn", s.DestinationArn).
		String()
}

func (s *AccessLogSettings) Equal(o *AccessLogSettings) bool { return equalRecords(s, o) }

func (s *AccessLogSettings) Hash() uint64 { return hashRecord(s) }

// CanarySettings is the canary release attached to a Stage.
type CanarySettings struct {
	PercentTraffic         *float64          `json:"percentTraffic,omitempty"`
	DeploymentId           *string           `json:"deploymentId,omitempty"`
	StageVariableOverrides map[string]string `json:"stageVariableOverrides,omitempty"`
	UseStageCache          *bool             `json:"useStageCache,omitempty"`
}

// SetPercentTraffic sets the PercentTraffic field's value.
func (s *CanarySettings) SetPercentTraffic(v float64) *CanarySettings {
	s.PercentTraffic = &v
	return s
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *CanarySettings) SetDeploymentId(v string) *CanarySettings {
	s.DeploymentId = &v
	return s
}

// SetStageVariableOverrides replaces the StageVariableOverrides map.
func (s *CanarySettings) SetStageVariableOverrides(v map[string]string) *CanarySettings {
	s.StageVariableOverrides = v
	return s
}

// AddStageVariableOverridesEntry overrides one stage variable. It fails with
// ErrDuplicateKey if key is already present.
func (s *CanarySettings) AddStageVariableOverridesEntry(key, value string) error {
	return addEntry(&s.StageVariableOverrides, key, value)
}

// ClearStageVariableOverridesEntries removes all entries and leaves the field absent.
func (s *CanarySettings) ClearStageVariableOverridesEntries() *CanarySettings {
	s.StageVariableOverrides = nil
	return s
}

// SetUseStageCache sets the UseStageCache field's value.
func (s *CanarySettings) SetUseStageCache(v bool) *CanarySettings {
	s.UseStageCache = &v
	return s
}

func (s *CanarySettings) String() string {
	return newFieldWriter().
		add("percentTraffic", s.PercentTraffic).
		add("deploymentId", s.DeploymentId).
		add("stageVariableOverrides", s.StageVariableOverrides).
		add("useStageCache", s.UseStageCache).
		String()
}

func (s *CanarySettings) Equal(o *CanarySettings) bool { return equalRecords(s, o) }

func (s *CanarySettings) Hash() uint64 { return hashRecord(s) }

// MethodSetting holds the logging, throttling and caching settings of one
// method of a Stage.
type MethodSetting struct {
	MetricsEnabled *bool `json:"metricsEnabled,omitempty"`

	// LoggingLevel is OFF, ERROR or INFO.
	LoggingLevel *string `json:"loggingLevel,omitempty"`

	DataTraceEnabled     *bool    `json:"dataTraceEnabled,omitempty"`
	ThrottlingBurstLimit *int32   `json:"throttlingBurstLimit,omitempty"`
	ThrottlingRateLimit  *float64 `json:"throttlingRateLimit,omitempty"`
	CachingEnabled       *bool    `json:"cachingEnabled,omitempty"`
	CacheTtlInSeconds    *int32   `json:"cacheTtlInSeconds,omitempty"`
	CacheDataEncrypted   *bool    `json:"cacheDataEncrypted,omitempty"`

	RequireAuthorizationForCacheControl    *bool   `json:"requireAuthorizationForCacheControl,omitempty"`
	UnauthorizedCacheControlHeaderStrategy *string `json:"unauthorizedCacheControlHeaderStrategy,omitempty"`
}

// SetMetricsEnabled sets the MetricsEnabled field's value.
func (s *MethodSetting) SetMetricsEnabled(v bool) *MethodSetting {
	s.MetricsEnabled = &v
	return s
}

// SetLoggingLevel sets the LoggingLevel field's value.
func (s *MethodSetting) SetLoggingLevel(v string) *MethodSetting {
	s.LoggingLevel = &v
	return s
}

// SetDataTraceEnabled sets the DataTraceEnabled field's value.
func (s *MethodSetting) SetDataTraceEnabled(v bool) *MethodSetting {
	s.DataTraceEnabled = &v
	return s
}

// SetThrottlingBurstLimit sets the ThrottlingBurstLimit field's value.
func (s *MethodSetting) SetThrottlingBurstLimit(v int32) *MethodSetting {
	s.ThrottlingBurstLimit = &v
	return s
}

// SetThrottlingRateLimit sets the ThrottlingRateLimit field's value.
func (s *MethodSetting) SetThrottlingRateLimit(v float64) *MethodSetting {
	s.ThrottlingRateLimit = &v
	return s
}

// SetCachingEnabled sets the CachingEnabled field's value.
func (s *MethodSetting) SetCachingEnabled(v bool) *MethodSetting {
	s.CachingEnabled = &v
	return s
}

// SetCacheTtlInSeconds sets the CacheTtlInSeconds field's value.
func (s *MethodSetting) SetCacheTtlInSeconds(v int32) *MethodSetting {
	s.CacheTtlInSeconds = &v
	return s
}

// SetCacheDataEncrypted sets the CacheDataEncrypted field's value.
func (s *MethodSetting) SetCacheDataEncrypted(v bool) *MethodSetting {
	s.CacheDataEncrypted = &v
	return s
}

// SetRequireAuthorizationForCacheControl sets the RequireAuthorizationForCacheControl field's value.
func (s *MethodSetting) SetRequireAuthorizationForCacheControl(v bool) *MethodSetting {
	s.RequireAuthorizationForCacheControl = &v
	return s
}

// SetUnauthorizedCacheControlHeaderStrategy sets the UnauthorizedCacheControlHeaderStrategy field's value.
func (s *MethodSetting) SetUnauthorizedCacheControlHeaderStrategy(v UnauthorizedCacheControlHeaderStrategy) *MethodSetting {
	strategy := string(v)
	s.UnauthorizedCacheControlHeaderStrategy = &strategy
	return s
}

func (s *MethodSetting) String() string {
	return newFieldWriter().
		add("metricsEnabled", s.MetricsEnabled).
		add("loggingLevel", s.LoggingLevel).
		add("dataTraceEnabled", s.DataTraceEnabled).
		add("throttlingBurstLimit", s.ThrottlingBurstLimit).
		add("throttlingRateLimit", s.ThrottlingRateLimit).
		add("cachingEnabled", s.CachingEnabled).
		add("cacheTtlInSeconds", s.CacheTtlInSeconds).
		add("cacheDataEncrypted", s.CacheDataEncrypted).
		add("requireAuthorizationForCacheControl", s.RequireAuthorizationForCacheControl).
		add("unauthorizedCacheControlHeaderStrategy", s.UnauthorizedCacheControlHeaderStrategy).
		String()
}

func (s *MethodSetting) Equal(o *MethodSetting) bool { return equalRecords(s, o) }

func (s *MethodSetting) Hash() uint64 { return hashRecord(s) }

// Stage is a named reference to a Deployment.
type Stage struct {
	DeploymentId        *string `json:"deploymentId,omitempty"`
	ClientCertificateId *string `json:"clientCertificateId,omitempty"`
	StageName           *string `json:"stageName,omitempty"`
	Description         *string `json:"description,omitempty"`

	CacheClusterEnabled *bool   `json:"cacheClusterEnabled,omitempty"`
	CacheClusterSize    *string `json:"cacheClusterSize,omitempty"`
	CacheClusterStatus  *string `json:"cacheClusterStatus,omitempty"`

	// MethodSettings is keyed by {resource_path}/{http_method}, or "*/*" for
	// every method of the stage.
	MethodSettings map[string]MethodSetting `json:"methodSettings,omitempty"`

	Variables            map[string]string `json:"variables,omitempty"`
	DocumentationVersion *string           `json:"documentationVersion,omitempty"`

	AccessLogSettings *AccessLogSettings `json:"accessLogSettings,omitempty"`
	CanarySettings    *CanarySettings    `json:"canarySettings,omitempty"`

	TracingEnabled *bool             `json:"tracingEnabled,omitempty"`
	WebAclArn      *string           `json:"webAclArn,omitempty"`
	Tags           map[string]string `json:"tags,omitempty"`

	CreatedDate     *time.Time `json:"createdDate,omitempty"`
	LastUpdatedDate *time.Time `json:"lastUpdatedDate,omitempty"`
}

type (
	CreateStageResult = Stage
	UpdateStageResult = Stage
)

// SetDeploymentId sets the DeploymentId field's value.
func (s *Stage) SetDeploymentId(v string) *Stage {
	s.DeploymentId = &v
	return s
}

// SetClientCertificateId sets the ClientCertificateId field's value.
func (s *Stage) SetClientCertificateId(v string) *Stage {
	s.ClientCertificateId = &v
	return s
}

// SetStageName sets the StageName field's value.
func (s *Stage) SetStageName(v string) *Stage {
	s.StageName = &v
	return s
}

// SetDescription sets the Description field's value.
func (s *Stage) SetDescription(v string) *Stage {
	s.Description = &v
	return s
}

// SetCacheClusterEnabled sets the CacheClusterEnabled field's value.
func (s *Stage) SetCacheClusterEnabled(v bool) *Stage {
	s.CacheClusterEnabled = &v
	return s
}

// SetCacheClusterSize sets the CacheClusterSize field's value.
func (s *Stage) SetCacheClusterSize(v CacheClusterSize) *Stage {
	size := string(v)
	s.CacheClusterSize = &size
	return s
}

// SetCacheClusterStatus sets the CacheClusterStatus field's value.
func (s *Stage) SetCacheClusterStatus(v CacheClusterStatus) *Stage {
	status := string(v)
	s.CacheClusterStatus = &status
	return s
}

// SetMethodSettings replaces the MethodSettings map.
func (s *Stage) SetMethodSettings(v map[string]MethodSetting) *Stage {
	s.MethodSettings = v
	return s
}

// AddMethodSettingsEntry adds the settings of one method. It fails with
// ErrDuplicateKey if key is already present.
func (s *Stage) AddMethodSettingsEntry(key string, value MethodSetting) error {
	return addEntry(&s.MethodSettings, key, value)
}

// ClearMethodSettingsEntries removes all entries and leaves the field absent.
func (s *Stage) ClearMethodSettingsEntries() *Stage {
	s.MethodSettings = nil
	return s
}

// SetVariables replaces the Variables map.
func (s *Stage) SetVariables(v map[string]string) *Stage {
	s.Variables = v
	return s
}

// AddVariablesEntry adds a stage variable. It fails with ErrDuplicateKey if
// key is already present.
func (s *Stage) AddVariablesEntry(key, value string) error {
	return addEntry(&s.Variables, key, value)
}

// ClearVariablesEntries removes all entries and leaves the field absent.
func (s *Stage) ClearVariablesEntries() *Stage {
	s.Variables = nil
	return s
}

// SetDocumentationVersion sets the DocumentationVersion field's value.
func (s *Stage) SetDocumentationVersion(v string) *Stage {
	s.DocumentationVersion = &v
	return s
}

// SetAccessLogSettings sets the AccessLogSettings field's value.
func (s *Stage) SetAccessLogSettings(v *AccessLogSettings) *Stage {
	s.AccessLogSettings = v
	return s
}

// SetCanarySettings sets the CanarySettings field's value.
func (s *Stage) SetCanarySettings(v *CanarySettings) *Stage {
	s.CanarySettings = v
	return s
}

// SetTracingEnabled sets the TracingEnabled field's value.
func (s *Stage) SetTracingEnabled(v bool) *Stage {
	s.TracingEnabled = &v
	return s
}

// SetWebAclArn sets the WebAclArn field's value.
func (s *Stage) SetWebAclArn(v string) *Stage {
	s.WebAclArn = &v
	return s
}

// SetTags replaces the Tags map.
func (s *Stage) SetTags(v map[string]string) *Stage {
	s.Tags = v
	return s
}

// AddTagsEntry adds a tag. It fails with ErrDuplicateKey if key is already set.
func (s *Stage) AddTagsEntry(key, value string) error {
	return addEntry(&s.Tags, key, value)
}

// ClearTagsEntries removes all tags and leaves the field absent.
func (s *Stage) ClearTagsEntries() *Stage {
	s.Tags = nil
	return s
}

// SetCreatedDate sets the CreatedDate field's value.
func (s *Stage) SetCreatedDate(v time.Time) *Stage {
	s.CreatedDate = &v
	return s
}

// SetLastUpdatedDate sets the LastUpdatedDate field's value.
func (s *Stage) SetLastUpdatedDate(v time.Time) *Stage {
	s.LastUpdatedDate = &v
	return s
}

func (s *Stage) String() string {
	return newFieldWriter().
		add("deploymentId", s.DeploymentId).
		add("clientCertificateId", s.ClientCertificateId).
		add("stageName", s.StageName).
		add("description", s.Description).
		add("cacheClusterEnabled", s.CacheClusterEnabled).
		add("cacheClusterSize", s.CacheClusterSize).
		add("cacheClusterStatus", s.CacheClusterStatus).
		add("methodSettings", s.MethodSettings).
		add("variables", s.Variables).
		add("documentationVersion", s.DocumentationVersion).
		add("accessLogSettings", s.AccessLogSettings).
		add("canarySettings", s.CanarySettings).
		add("tracingEnabled", s.TracingEnabled).
		add("webAclArn", s.WebAclArn).
		add("tags", s.Tags).
		add("createdDate", s.CreatedDate).
		add("lastUpdatedDate", s.LastUpdatedDate).
		String()
}

func (s *Stage) Equal(o *Stage) bool { return equalRecords(s, o) }

func (s *Stage) Hash() uint64 { return hashRecord(s) }

// CreateStageRequest creates a Stage pointing at an existing Deployment.
type CreateStageRequest struct {
	RestApiId    *string `json:"restApiId,omitempty"`
	StageName    *string `json:"stageName,omitempty"`
	DeploymentId *string `json:"deploymentId,omitempty"`
	Description  *string `json:"description,omitempty"`

	CacheClusterEnabled *bool   `json:"cacheClusterEnabled,omitempty"`
	CacheClusterSize    *string `json:"cacheClusterSize,omitempty"`

	Variables            map[string]string `json:"variables,omitempty"`
	DocumentationVersion *string           `json:"documentationVersion,omitempty"`
	CanarySettings       *CanarySettings   `json:"canarySettings,omitempty"`
	TracingEnabled       *bool             `json:"tracingEnabled,omitempty"`
	Tags                 map[string]string `json:"tags,omitempty"`
}

// SetRestApiId sets the RestApiId field's value.
func (s *CreateStageRequest) SetRestApiId(v string) *CreateStageRequest {
	s.RestApiId = &v
	return s
}

// SetStageName sets the StageName field's value.
func (s *CreateStageRequest) SetStageName(v string) *CreateStageRequest {
	s.StageName = &v
	return s
}

// SetDeploymentId sets the DeploymentId field's value.
func (s *CreateStageRequest) SetDeploymentId(v string) *CreateStageRequest {
	s.DeploymentId = &v
	return s
}

// SetDescription sets the Description field's value.
func (s *CreateStageRequest) SetDescription(v string) *CreateStageRequest {
	s.Description = &v
	return s
}

// SetCacheClusterEnabled sets the CacheClusterEnabled field's value.
func (s *CreateStageRequest) SetCacheClusterEnabled(v bool) *CreateStageRequest {
	s.CacheClusterEnabled = &v
	return s
}

// SetCacheClusterSize sets the CacheClusterSize field's value.
func (s *CreateStageRequest) SetCacheClusterSize(v CacheClusterSize) *CreateStageRequest {
	size := string(v)
	s.CacheClusterSize = &size
	return s
}

// SetVariables replaces the Variables map.
func (s *CreateStageRequest) SetVariables(v map[string]string) *CreateStageRequest {
	s.Variables = v
	return s
}

// AddVariablesEntry adds a stage variable. It fails with ErrDuplicateKey if
// key is already present.
func (s *CreateStageRequest) AddVariablesEntry(key, value string) error {
	return addEntry(&s.Variables, key, value)
}

// ClearVariablesEntries removes all entries and leaves the field absent.
func (s *CreateStageRequest) ClearVariablesEntries() *CreateStageRequest {
	s.Variables = nil
	return s
}

// SetDocumentationVersion sets the DocumentationVersion field's value.
func (s *CreateStageRequest) SetDocumentationVersion(v string) *CreateStageRequest {
	s.DocumentationVersion = &v
	return s
}

// SetCanarySettings sets the CanarySettings field's value.
func (s *CreateStageRequest) SetCanarySettings(v *CanarySettings) *CreateStageRequest {
	s.CanarySettings = v
	return s
}

// SetTracingEnabled sets the TracingEnabled field's value.
func (s *CreateStageRequest) SetTracingEnabled(v bool) *CreateStageRequest {
	s.TracingEnabled = &v
	return s
}

// SetTags replaces the Tags map.
func (s *CreateStageRequest) SetTags(v map[string]string) *CreateStageRequest {
	s.Tags = v
	return s
}

// AddTagsEntry adds a tag. It fails with ErrDuplicateKey if key is already set.
func (s *CreateStageRequest) AddTagsEntry(key, value string) error {
	return addEntry(&s.Tags, key, value)
}

// ClearTagsEntries removes all tags and leaves the field absent.
func (s *CreateStageRequest) ClearTagsEntries() *CreateStageRequest {
	s.Tags = nil
	return s
}

func (s *CreateStageRequest) String() string {
	return newFieldWriter().
		add("restApiId", s.RestApiId).
		add("stageName", s.StageName).
		add("deploymentId", s.DeploymentId).
		add("description", s.Description).
		add("cacheClusterEnabled", s.CacheClusterEnabled).
		add("cacheClusterSize", s.CacheClusterSize).
		add("variables", s.Variables).
		add("documentationVersion", s.DocumentationVersion).
		add("canarySettings", s.CanarySettings).
		add("tracingEnabled", s.TracingEnabled).
		add("tags", s.Tags).
		String()
}

func (s *CreateStageRequest) Equal(o *CreateStageRequest) bool { return equalRecords(s, o) }

func (s *CreateStageRequest) Hash() uint64 { return hashRecord(s) }

// UpdateStageRequest changes a Stage through patch operations.
type UpdateStageRequest struct {
	RestApiId       *string          `json:"restApiId,omitempty"`
	StageName       *string          `json:"stageName,omitempty"`
	PatchOperations []PatchOperation `json:"patchOperations,omitempty"`
}

// SetRestApiId sets the RestApiId field's value.
func (s *UpdateStageRequest) SetRestApiId(v string) *UpdateStageRequest {
	s.RestApiId = &v
	return s
}

// SetStageName sets the StageName field's value.
func (s *UpdateStageRequest) SetStageName(v string) *UpdateStageRequest {
	s.StageName = &v
	return s
}

// SetPatchOperations replaces the PatchOperations list. A nil list clears the field.
func (s *UpdateStageRequest) SetPatchOperations(v []PatchOperation) *UpdateStageRequest {
	s.PatchOperations = copyList(v)
	return s
}

// AddPatchOperations appends operations, creating the list if it is absent.
func (s *UpdateStageRequest) AddPatchOperations(v ...PatchOperation) *UpdateStageRequest {
	if s.PatchOperations == nil {
		s.PatchOperations = make([]PatchOperation, 0, len(v))
	}
	s.PatchOperations = append(s.PatchOperations, v...)
	return s
}

func (s *UpdateStageRequest) String() string {
	return newFieldWriter().
		add("restApiId", s.RestApiId).
		add("stageName", s.StageName).
		add("patchOperations", s.PatchOperations).
		String()
}

func (s *UpdateStageRequest) Equal(o *UpdateStageRequest) bool { return equalRecords(s, o) }

func (s *UpdateStageRequest) Hash() uint64 { return hashRecord(s) }
