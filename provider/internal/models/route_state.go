package models

// ResourceInfo tracks a path segment created or reused for a route.
type ResourceInfo struct {
	ResourceID string `json:"resource_id"`
	PathPart   string `json:"path_part"`
}

// RouteState is a route after provisioning.
type RouteState struct {
	Path          string `json:"path"`
	Method        string `json:"method"`
	Authorization string `json:"authorization"`
	AuthorizerID  string `json:"authorizer_id"`
	ResourceID    string `json:"resource_id"`
}

// APIGWState is the API Gateway side of a deployed route set.
type APIGWState struct {
	APIGatewayID string
	StageName    string
	DeploymentID string
	Routes       []RouteState
	Resources    map[string]ResourceInfo
}
