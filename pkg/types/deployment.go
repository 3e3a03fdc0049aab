package types

import "time"

// DeploymentCanarySettings configures the canary release created along with
// a deployment.
type DeploymentCanarySettings struct {
	// PercentTraffic is between 0.0 and 100.0.
	PercentTraffic *float64 `json:"percentTraffic,omitempty"`

	StageVariableOverrides map[string]string `json:"stageVariableOverrides,omitempty"`
	UseStageCache          *bool             `json:"useStageCache,omitempty"`
}

// SetPercentTraffic sets the PercentTraffic field's value.
func (s *DeploymentCanarySettings) SetPercentTraffic(v float64) *DeploymentCanarySettings {
	s.PercentTraffic = &v
	return s
}

// SetStageVariableOverrides replaces the StageVariableOverrides map.
func (s *DeploymentCanarySettings) SetStageVariableOverrides(v map[string]string) *DeploymentCanarySettings {
	s.StageVariableOverrides = v
	return s
}

// AddStageVariableOverridesEntry overrides one stage variable. It fails with
// ErrDuplicateKey if key is already present.
func (s *DeploymentCanarySettings) AddStageVariableOverridesEntry(key, value string) error {
	return addEntry(&s.StageVariableOverrides, key, value)
}

// ClearStageVariableOverridesEntries removes all entries and leaves the field absent.
func (s *DeploymentCanarySettings) ClearStageVariableOverridesEntries() *DeploymentCanarySettings {
	s.StageVariableOverrides = nil
	return s
}

// SetUseStageCache sets the UseStageCache field's value.
func (s *DeploymentCanarySettings) SetUseStageCache(v bool) *DeploymentCanarySettings {
	s.UseStageCache = &v
	return s
}

func (s *DeploymentCanarySettings) String() string {
	return newFieldWriter().
		add("percentTraffic", s.PercentTraffic).
		add("stageVariableOverrides", s.StageVariableOverrides).
		add("useStageCache", s.UseStageCache).
		String()
}

func (s *DeploymentCanarySettings) Equal(o *DeploymentCanarySettings) bool {
	return equalRecords(s, o)
}

func (s *DeploymentCanarySettings) Hash() uint64 { return hashRecord(s) }

// CreateDeploymentRequest deploys a RestApi, optionally creating or updating
// the stage it is deployed to.
type CreateDeploymentRequest struct {
	RestApiId        *string `json:"restApiId,omitempty"`
	StageName        *string `json:"stageName,omitempty"`
	StageDescription *string `json:"stageDescription,omitempty"`
	Description      *string `json:"description,omitempty"`

	CacheClusterEnabled *bool `json:"cacheClusterEnabled,omitempty"`

	// CacheClusterSize is one of the CacheClusterSize tiers, e.g. "0.5".
	CacheClusterSize *string `json:"cacheClusterSize,omitempty"`

	// Variables are the stage variables. Names match [A-Za-z0-9_]+ and values
	// match [A-Za-z0-9-._~:/?#&=,]+.
	Variables map[string]string `json:"variables,omitempty"`

	CanarySettings *DeploymentCanarySettings `json:"canarySettings,omitempty"`
	TracingEnabled *bool                     `json:"tracingEnabled,omitempty"`
}

// SetRestApiId sets the RestApiId field's value.
func (s *CreateDeploymentRequest) SetRestApiId(v string) *CreateDeploymentRequest {
	s.RestApiId = &v
	return s
}

// SetStageName sets the StageName field's value.
func (s *CreateDeploymentRequest) SetStageName(v string) *CreateDeploymentRequest {
	s.StageName = &v
	return s
}

// SetStageDescription sets the StageDescription field's value.
func (s *CreateDeploymentRequest) SetStageDescription(v string) *CreateDeploymentRequest {
	s.StageDescription = &v
	return s
}

// SetDescription sets the Description field's value.
func (s *CreateDeploymentRequest) SetDescription(v string) *CreateDeploymentRequest {
	s.Description = &v
	return s
}

// SetCacheClusterEnabled sets the CacheClusterEnabled field's value.
func (s *CreateDeploymentRequest) SetCacheClusterEnabled(v bool) *CreateDeploymentRequest {
	s.CacheClusterEnabled = &v
	return s
}

// SetCacheClusterSize sets the CacheClusterSize field's value.
func (s *CreateDeploymentRequest) SetCacheClusterSize(v CacheClusterSize) *CreateDeploymentRequest {
	size := string(v)
	s.CacheClusterSize = &size
	return s
}

// SetVariables replaces the Variables map.
func (s *CreateDeploymentRequest) SetVariables(v map[string]string) *CreateDeploymentRequest {
	s.Variables = v
	return s
}

// AddVariablesEntry adds a stage variable. It fails with ErrDuplicateKey if
// key is already present.
func (s *CreateDeploymentRequest) AddVariablesEntry(key, value string) error {
	return addEntry(&s.Variables, key, value)
}

// ClearVariablesEntries removes all entries and leaves the field absent.
func (s *CreateDeploymentRequest) ClearVariablesEntries() *CreateDeploymentRequest {
	s.Variables = nil
	return s
}

// SetCanarySettings sets the CanarySettings field's value.
func (s *CreateDeploymentRequest) SetCanarySettings(v *DeploymentCanarySettings) *CreateDeploymentRequest {
	s.CanarySettings = v
	return s
}

// SetTracingEnabled sets the TracingEnabled field's value.
func (s *CreateDeploymentRequest) SetTracingEnabled(v bool) *CreateDeploymentRequest {
	s.TracingEnabled = &v
	return s
}

func (s *CreateDeploymentRequest) String() string {
	return newFieldWriter().
		add("restApiId", s.RestApiId).
		add("stageName", s.StageName).
		add("stageDescription", s.StageDescription).
		add("description", s.Description).
		add("cacheClusterEnabled", s.CacheClusterEnabled).
		add("cacheClusterSize", s.CacheClusterSize).
		add("variables", s.Variables).
		add("canarySettings", s.CanarySettings).
		add("tracingEnabled", s.TracingEnabled).
		String()
}

func (s *CreateDeploymentRequest) Equal(o *CreateDeploymentRequest) bool {
	return equalRecords(s, o)
}

func (s *CreateDeploymentRequest) Hash() uint64 { return hashRecord(s) }

// MethodSnapshot summarises a Method as captured by a Deployment.
type MethodSnapshot struct {
	AuthorizationType *string `json:"authorizationType,omitempty"`
	ApiKeyRequired    *bool   `json:"apiKeyRequired,omitempty"`
}

// SetAuthorizationType sets the AuthorizationType field's value.
func (s *MethodSnapshot) SetAuthorizationType(v string) *MethodSnapshot {
	s.AuthorizationType = &v
	return s
}

// SetApiKeyRequired sets the ApiKeyRequired field's value.
func (s *MethodSnapshot) SetApiKeyRequired(v bool) *MethodSnapshot {
	s.ApiKeyRequired = &v
	return s
}

func (s *MethodSnapshot) String() string {
	return newFieldWriter().
		add("authorizationType", s.AuthorizationType).
		add("apiKeyRequired", s.ApiKeyRequired).
		String()
}

func (s *MethodSnapshot) Equal(o *MethodSnapshot) bool { return equalRecords(s, o) }

func (s *MethodSnapshot) Hash() uint64 { return hashRecord(s) }

// Deployment is an immutable snapshot of a RestApi.
type Deployment struct {
	Id          *string    `json:"id,omitempty"`
	Description *string    `json:"description,omitempty"`
	CreatedDate *time.Time `json:"createdDate,omitempty"`

	// ApiSummary is keyed by resource path, then by HTTP verb.
	ApiSummary map[string]map[string]MethodSnapshot `json:"apiSummary,omitempty"`
}

// CreateDeploymentResult is the Deployment returned by CreateDeployment.
type CreateDeploymentResult = Deployment

// SetId sets the Id field's value.
func (s *Deployment) SetId(v string) *Deployment {
	s.Id = &v
	return s
}

// SetDescription sets the Description field's value.
func (s *Deployment) SetDescription(v string) *Deployment {
	s.Description = &v
	return s
}

// SetCreatedDate sets the CreatedDate field's value.
func (s *Deployment) SetCreatedDate(v time.Time) *Deployment {
	s.CreatedDate = &v
	return s
}

// SetApiSummary replaces the ApiSummary map.
func (s *Deployment) SetApiSummary(v map[string]map[string]MethodSnapshot) *Deployment {
	s.ApiSummary = v
	return s
}

// AddApiSummaryEntry adds the methods of one resource path. It fails with
// ErrDuplicateKey if the path is already present.
func (s *Deployment) AddApiSummaryEntry(key string, value map[string]MethodSnapshot) error {
	return addEntry(&s.ApiSummary, key, value)
}

// ClearApiSummaryEntries removes all entries and leaves the field absent.
func (s *Deployment) ClearApiSummaryEntries() *Deployment {
	s.ApiSummary = nil
	return s
}

func (s *Deployment) String() string {
	return newFieldWriter().
		add("id", s.Id).
		add("description", s.Description).
		add("createdDate", s.CreatedDate).
		add("apiSummary", s.ApiSummary).
		String()
}

func (s *Deployment) Equal(o *Deployment) bool { return equalRecords(s, o) }

func (s *Deployment) Hash() uint64 { return hashRecord(s) }
