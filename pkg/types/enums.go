package types

// ApiKeySourceType is the source of the API key used for metering requests.
type ApiKeySourceType string

const (
	ApiKeySourceTypeHeader     ApiKeySourceType = "HEADER"
	ApiKeySourceTypeAuthorizer ApiKeySourceType = "AUTHORIZER"
)

var apiKeySourceTypeTable = newEnumTable("ApiKeySourceType",
	ApiKeySourceTypeHeader,
	ApiKeySourceTypeAuthorizer,
)

// ParseApiKeySourceType returns the ApiKeySourceType named by value.
func ParseApiKeySourceType(value string) (ApiKeySourceType, error) {
	return apiKeySourceTypeTable.parse(value)
}

// Values returns every ApiKeySourceType in declaration order.
func (ApiKeySourceType) Values() []ApiKeySourceType { return apiKeySourceTypeTable.values() }

func (e ApiKeySourceType) String() string { return string(e) }

// CacheClusterSize is the size of a stage cache cluster, in gigabytes.
type CacheClusterSize string

const (
	CacheClusterSize05  CacheClusterSize = "0.5"
	CacheClusterSize16  CacheClusterSize = "1.6"
	CacheClusterSize61  CacheClusterSize = "6.1"
	CacheClusterSize135 CacheClusterSize = "13.5"
	CacheClusterSize284 CacheClusterSize = "28.4"
	CacheClusterSize582 CacheClusterSize = "58.2"
	CacheClusterSize118 CacheClusterSize = "118"
	CacheClusterSize237 CacheClusterSize = "237"
)

var cacheClusterSizeTable = newEnumTable("CacheClusterSize",
	CacheClusterSize05,
	CacheClusterSize16,
	CacheClusterSize61,
	CacheClusterSize135,
	CacheClusterSize284,
	CacheClusterSize582,
	CacheClusterSize118,
	CacheClusterSize237,
)

// ParseCacheClusterSize returns the CacheClusterSize named by value.
func ParseCacheClusterSize(value string) (CacheClusterSize, error) {
	return cacheClusterSizeTable.parse(value)
}

// Values returns every CacheClusterSize in declaration order.
func (CacheClusterSize) Values() []CacheClusterSize { return cacheClusterSizeTable.values() }

func (e CacheClusterSize) String() string { return string(e) }

// CacheClusterStatus is the status of a stage cache cluster.
type CacheClusterStatus string

const (
	CacheClusterStatusCreateInProgress CacheClusterStatus = "CREATE_IN_PROGRESS"
	CacheClusterStatusAvailable        CacheClusterStatus = "AVAILABLE"
	CacheClusterStatusDeleteInProgress CacheClusterStatus = "DELETE_IN_PROGRESS"
	CacheClusterStatusNotAvailable     CacheClusterStatus = "NOT_AVAILABLE"
	CacheClusterStatusFlushInProgress  CacheClusterStatus = "FLUSH_IN_PROGRESS"
)

var cacheClusterStatusTable = newEnumTable("CacheClusterStatus",
	CacheClusterStatusCreateInProgress,
	CacheClusterStatusAvailable,
	CacheClusterStatusDeleteInProgress,
	CacheClusterStatusNotAvailable,
	CacheClusterStatusFlushInProgress,
)

// ParseCacheClusterStatus returns the CacheClusterStatus named by value.
func ParseCacheClusterStatus(value string) (CacheClusterStatus, error) {
	return cacheClusterStatusTable.parse(value)
}

// Values returns every CacheClusterStatus in declaration order.
func (CacheClusterStatus) Values() []CacheClusterStatus { return cacheClusterStatusTable.values() }

func (e CacheClusterStatus) String() string { return string(e) }

// ConnectionType is the network connection type of an integration.
type ConnectionType string

const (
	ConnectionTypeInternet ConnectionType = "INTERNET"
	ConnectionTypeVpcLink  ConnectionType = "VPC_LINK"
)

var connectionTypeTable = newEnumTable("ConnectionType",
	ConnectionTypeInternet,
	ConnectionTypeVpcLink,
)

// ParseConnectionType returns the ConnectionType named by value.
func ParseConnectionType(value string) (ConnectionType, error) {
	return connectionTypeTable.parse(value)
}

// Values returns every ConnectionType in declaration order.
func (ConnectionType) Values() []ConnectionType { return connectionTypeTable.values() }

func (e ConnectionType) String() string { return string(e) }

// ContentHandlingStrategy controls payload conversion between binary and
// Base64-encoded text.
type ContentHandlingStrategy string

const (
	ContentHandlingStrategyConvertToBinary ContentHandlingStrategy = "CONVERT_TO_BINARY"
	ContentHandlingStrategyConvertToText   ContentHandlingStrategy = "CONVERT_TO_TEXT"
)

var contentHandlingStrategyTable = newEnumTable("ContentHandlingStrategy",
	ContentHandlingStrategyConvertToBinary,
	ContentHandlingStrategyConvertToText,
)

// ParseContentHandlingStrategy returns the ContentHandlingStrategy named by value.
func ParseContentHandlingStrategy(value string) (ContentHandlingStrategy, error) {
	return contentHandlingStrategyTable.parse(value)
}

// Values returns every ContentHandlingStrategy in declaration order.
func (ContentHandlingStrategy) Values() []ContentHandlingStrategy {
	return contentHandlingStrategyTable.values()
}

func (e ContentHandlingStrategy) String() string { return string(e) }

// DocumentationPartType is the kind of API entity a documentation part
// describes.
type DocumentationPartType string

const (
	DocumentationPartTypeApi            DocumentationPartType = "API"
	DocumentationPartTypeAuthorizer     DocumentationPartType = "AUTHORIZER"
	DocumentationPartTypeModel          DocumentationPartType = "MODEL"
	DocumentationPartTypeResource       DocumentationPartType = "RESOURCE"
	DocumentationPartTypeMethod         DocumentationPartType = "METHOD"
	DocumentationPartTypePathParameter  DocumentationPartType = "PATH_PARAMETER"
	DocumentationPartTypeQueryParameter DocumentationPartType = "QUERY_PARAMETER"
	DocumentationPartTypeRequestHeader  DocumentationPartType = "REQUEST_HEADER"
	DocumentationPartTypeRequestBody    DocumentationPartType = "REQUEST_BODY"
	DocumentationPartTypeResponse       DocumentationPartType = "RESPONSE"
	DocumentationPartTypeResponseHeader DocumentationPartType = "RESPONSE_HEADER"
	DocumentationPartTypeResponseBody   DocumentationPartType = "RESPONSE_BODY"
)

var documentationPartTypeTable = newEnumTable("DocumentationPartType",
	DocumentationPartTypeApi,
	DocumentationPartTypeAuthorizer,
	DocumentationPartTypeModel,
	DocumentationPartTypeResource,
	DocumentationPartTypeMethod,
	DocumentationPartTypePathParameter,
	DocumentationPartTypeQueryParameter,
	DocumentationPartTypeRequestHeader,
	DocumentationPartTypeRequestBody,
	DocumentationPartTypeResponse,
	DocumentationPartTypeResponseHeader,
	DocumentationPartTypeResponseBody,
)

// ParseDocumentationPartType returns the DocumentationPartType named by value.
func ParseDocumentationPartType(value string) (DocumentationPartType, error) {
	return documentationPartTypeTable.parse(value)
}

// Values returns every DocumentationPartType in declaration order.
func (DocumentationPartType) Values() []DocumentationPartType {
	return documentationPartTypeTable.values()
}

func (e DocumentationPartType) String() string { return string(e) }

// DomainNameStatus is the provisioning status of a custom domain name.
type DomainNameStatus string

const (
	DomainNameStatusAvailable                    DomainNameStatus = "AVAILABLE"
	DomainNameStatusUpdating                     DomainNameStatus = "UPDATING"
	DomainNameStatusPending                      DomainNameStatus = "PENDING"
	DomainNameStatusPendingCertificateReimport   DomainNameStatus = "PENDING_CERTIFICATE_REIMPORT"
	DomainNameStatusPendingOwnershipVerification DomainNameStatus = "PENDING_OWNERSHIP_VERIFICATION"
)

var domainNameStatusTable = newEnumTable("DomainNameStatus",
	DomainNameStatusAvailable,
	DomainNameStatusUpdating,
	DomainNameStatusPending,
	DomainNameStatusPendingCertificateReimport,
	DomainNameStatusPendingOwnershipVerification,
)

// ParseDomainNameStatus returns the DomainNameStatus named by value.
func ParseDomainNameStatus(value string) (DomainNameStatus, error) {
	return domainNameStatusTable.parse(value)
}

// Values returns every DomainNameStatus in declaration order.
func (DomainNameStatus) Values() []DomainNameStatus { return domainNameStatusTable.values() }

func (e DomainNameStatus) String() string { return string(e) }

// EndpointType is the endpoint flavour of an API or domain name.
type EndpointType string

const (
	EndpointTypeRegional EndpointType = "REGIONAL"
	EndpointTypeEdge     EndpointType = "EDGE"
	EndpointTypePrivate  EndpointType = "PRIVATE"
)

var endpointTypeTable = newEnumTable("EndpointType",
	EndpointTypeRegional,
	EndpointTypeEdge,
	EndpointTypePrivate,
)

// ParseEndpointType returns the EndpointType named by value.
func ParseEndpointType(value string) (EndpointType, error) {
	return endpointTypeTable.parse(value)
}

// Values returns every EndpointType in declaration order.
func (EndpointType) Values() []EndpointType { return endpointTypeTable.values() }

func (e EndpointType) String() string { return string(e) }

// GatewayResponseType identifies the error condition a gateway response is
// returned for.
type GatewayResponseType string

const (
	GatewayResponseTypeDefault4xx                   GatewayResponseType = "DEFAULT_4XX"
	GatewayResponseTypeDefault5xx                   GatewayResponseType = "DEFAULT_5XX"
	GatewayResponseTypeResourceNotFound             GatewayResponseType = "RESOURCE_NOT_FOUND"
	GatewayResponseTypeUnauthorized                 GatewayResponseType = "UNAUTHORIZED"
	GatewayResponseTypeInvalidApiKey                GatewayResponseType = "INVALID_API_KEY"
	GatewayResponseTypeAccessDenied                 GatewayResponseType = "ACCESS_DENIED"
	GatewayResponseTypeAuthorizerFailure            GatewayResponseType = "AUTHORIZER_FAILURE"
	GatewayResponseTypeAuthorizerConfigurationError GatewayResponseType = "AUTHORIZER_CONFIGURATION_ERROR"
	GatewayResponseTypeInvalidSignature             GatewayResponseType = "INVALID_SIGNATURE"
	GatewayResponseTypeExpiredToken                 GatewayResponseType = "EXPIRED_TOKEN"
	GatewayResponseTypeMissingAuthenticationToken   GatewayResponseType = "MISSING_AUTHENTICATION_TOKEN"
	GatewayResponseTypeIntegrationFailure           GatewayResponseType = "INTEGRATION_FAILURE"
	GatewayResponseTypeIntegrationTimeout           GatewayResponseType = "INTEGRATION_TIMEOUT"
	GatewayResponseTypeApiConfigurationError        GatewayResponseType = "API_CONFIGURATION_ERROR"
	GatewayResponseTypeUnsupportedMediaType         GatewayResponseType = "UNSUPPORTED_MEDIA_TYPE"
	GatewayResponseTypeBadRequestParameters         GatewayResponseType = "BAD_REQUEST_PARAMETERS"
	GatewayResponseTypeBadRequestBody               GatewayResponseType = "BAD_REQUEST_BODY"
	GatewayResponseTypeRequestTooLarge              GatewayResponseType = "REQUEST_TOO_LARGE"
	GatewayResponseTypeThrottled                    GatewayResponseType = "THROTTLED"
	GatewayResponseTypeQuotaExceeded                GatewayResponseType = "QUOTA_EXCEEDED"
	GatewayResponseTypeWafFiltered                  GatewayResponseType = "WAF_FILTERED"
)

var gatewayResponseTypeTable = newEnumTable("GatewayResponseType",
	GatewayResponseTypeDefault4xx,
	GatewayResponseTypeDefault5xx,
	GatewayResponseTypeResourceNotFound,
	GatewayResponseTypeUnauthorized,
	GatewayResponseTypeInvalidApiKey,
	GatewayResponseTypeAccessDenied,
	GatewayResponseTypeAuthorizerFailure,
	GatewayResponseTypeAuthorizerConfigurationError,
	GatewayResponseTypeInvalidSignature,
	GatewayResponseTypeExpiredToken,
	GatewayResponseTypeMissingAuthenticationToken,
	GatewayResponseTypeIntegrationFailure,
	GatewayResponseTypeIntegrationTimeout,
	GatewayResponseTypeApiConfigurationError,
	GatewayResponseTypeUnsupportedMediaType,
	GatewayResponseTypeBadRequestParameters,
	GatewayResponseTypeBadRequestBody,
	GatewayResponseTypeRequestTooLarge,
	GatewayResponseTypeThrottled,
	GatewayResponseTypeQuotaExceeded,
	GatewayResponseTypeWafFiltered,
)

// ParseGatewayResponseType returns the GatewayResponseType named by value.
func ParseGatewayResponseType(value string) (GatewayResponseType, error) {
	return gatewayResponseTypeTable.parse(value)
}

// Values returns every GatewayResponseType in declaration order.
func (GatewayResponseType) Values() []GatewayResponseType { return gatewayResponseTypeTable.values() }

func (e GatewayResponseType) String() string { return string(e) }

// IntegrationType is the back end type of an integration.
type IntegrationType string

const (
	IntegrationTypeHttp      IntegrationType = "HTTP"
	IntegrationTypeAws       IntegrationType = "AWS"
	IntegrationTypeMock      IntegrationType = "MOCK"
	IntegrationTypeHttpProxy IntegrationType = "HTTP_PROXY"
	IntegrationTypeAwsProxy  IntegrationType = "AWS_PROXY"
)

var integrationTypeTable = newEnumTable("IntegrationType",
	IntegrationTypeHttp,
	IntegrationTypeAws,
	IntegrationTypeMock,
	IntegrationTypeHttpProxy,
	IntegrationTypeAwsProxy,
)

// ParseIntegrationType returns the IntegrationType named by value.
func ParseIntegrationType(value string) (IntegrationType, error) {
	return integrationTypeTable.parse(value)
}

// Values returns every IntegrationType in declaration order.
func (IntegrationType) Values() []IntegrationType { return integrationTypeTable.values() }

func (e IntegrationType) String() string { return string(e) }

type LocationStatusType string

const (
	LocationStatusTypeDocumented   LocationStatusType = "DOCUMENTED"
	LocationStatusTypeUndocumented LocationStatusType = "UNDOCUMENTED"
)

var locationStatusTypeTable = newEnumTable("LocationStatusType",
	LocationStatusTypeDocumented,
	LocationStatusTypeUndocumented,
)

// ParseLocationStatusType returns the LocationStatusType named by value.
func ParseLocationStatusType(value string) (LocationStatusType, error) {
	return locationStatusTypeTable.parse(value)
}

// Values returns every LocationStatusType in declaration order.
func (LocationStatusType) Values() []LocationStatusType { return locationStatusTypeTable.values() }

func (e LocationStatusType) String() string { return string(e) }

// Op is the operation code of a PatchOperation (RFC 6902).
type Op string

const (
	OpAdd     Op = "add"
	OpRemove  Op = "remove"
	OpReplace Op = "replace"
	OpMove    Op = "move"
	OpCopy    Op = "copy"
	OpTest    Op = "test"
)

var opTable = newEnumTable("Op",
	OpAdd,
	OpRemove,
	OpReplace,
	OpMove,
	OpCopy,
	OpTest,
)

// ParseOp returns the Op named by value. Op values are lower case.
func ParseOp(value string) (Op, error) {
	return opTable.parse(value)
}

// Values returns every Op in declaration order.
func (Op) Values() []Op { return opTable.values() }

func (e Op) String() string { return string(e) }

// PutMode selects whether PutRestApi merges into or overwrites an API.
type PutMode string

const (
	PutModeMerge     PutMode = "merge"
	PutModeOverwrite PutMode = "overwrite"
)

var putModeTable = newEnumTable("PutMode",
	PutModeMerge,
	PutModeOverwrite,
)

// ParsePutMode returns the PutMode named by value.
func ParsePutMode(value string) (PutMode, error) {
	return putModeTable.parse(value)
}

// Values returns every PutMode in declaration order.
func (PutMode) Values() []PutMode { return putModeTable.values() }

func (e PutMode) String() string { return string(e) }

// SecurityPolicy is the TLS version and cipher suite of a domain name.
type SecurityPolicy string

const (
	SecurityPolicyTls10 SecurityPolicy = "TLS_1_0"
	SecurityPolicyTls12 SecurityPolicy = "TLS_1_2"
)

var securityPolicyTable = newEnumTable("SecurityPolicy",
	SecurityPolicyTls10,
	SecurityPolicyTls12,
)

// ParseSecurityPolicy returns the SecurityPolicy named by value.
func ParseSecurityPolicy(value string) (SecurityPolicy, error) {
	return securityPolicyTable.parse(value)
}

// Values returns every SecurityPolicy in declaration order.
func (SecurityPolicy) Values() []SecurityPolicy { return securityPolicyTable.values() }

func (e SecurityPolicy) String() string { return string(e) }

// UnauthorizedCacheControlHeaderStrategy decides how unauthorized requests
// to invalidate a cache entry are handled.
type UnauthorizedCacheControlHeaderStrategy string

const (
	UnauthorizedCacheControlHeaderStrategyFailWith403                  UnauthorizedCacheControlHeaderStrategy = "FAIL_WITH_403"
	UnauthorizedCacheControlHeaderStrategySucceedWithResponseHeader    UnauthorizedCacheControlHeaderStrategy = "SUCCEED_WITH_RESPONSE_HEADER"
	UnauthorizedCacheControlHeaderStrategySucceedWithoutResponseHeader UnauthorizedCacheControlHeaderStrategy = "SUCCEED_WITHOUT_RESPONSE_HEADER"
)

var unauthorizedCacheControlHeaderStrategyTable = newEnumTable("UnauthorizedCacheControlHeaderStrategy",
	UnauthorizedCacheControlHeaderStrategyFailWith403,
	UnauthorizedCacheControlHeaderStrategySucceedWithResponseHeader,
	UnauthorizedCacheControlHeaderStrategySucceedWithoutResponseHeader,
)

// ParseUnauthorizedCacheControlHeaderStrategy returns the strategy named by value.
func ParseUnauthorizedCacheControlHeaderStrategy(value string) (UnauthorizedCacheControlHeaderStrategy, error) {
	return unauthorizedCacheControlHeaderStrategyTable.parse(value)
}

// Values returns every UnauthorizedCacheControlHeaderStrategy in declaration order.
func (UnauthorizedCacheControlHeaderStrategy) Values() []UnauthorizedCacheControlHeaderStrategy {
	return unauthorizedCacheControlHeaderStrategyTable.values()
}

func (e UnauthorizedCacheControlHeaderStrategy) String() string { return string(e) }

// VpcLinkStatus is the provisioning status of a VPC link.
type VpcLinkStatus string

const (
	VpcLinkStatusAvailable VpcLinkStatus = "AVAILABLE"
	VpcLinkStatusPending   VpcLinkStatus = "PENDING"
	VpcLinkStatusDeleting  VpcLinkStatus = "DELETING"
	VpcLinkStatusFailed    VpcLinkStatus = "FAILED"
)

var vpcLinkStatusTable = newEnumTable("VpcLinkStatus",
	VpcLinkStatusAvailable,
	VpcLinkStatusPending,
	VpcLinkStatusDeleting,
	VpcLinkStatusFailed,
)

// ParseVpcLinkStatus returns the VpcLinkStatus named by value.
func ParseVpcLinkStatus(value string) (VpcLinkStatus, error) {
	return vpcLinkStatusTable.parse(value)
}

// Values returns every VpcLinkStatus in declaration order.
func (VpcLinkStatus) Values() []VpcLinkStatus { return vpcLinkStatusTable.values() }

func (e VpcLinkStatus) String() string { return string(e) }
