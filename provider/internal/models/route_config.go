package models

// RouteConfig is one path and verb to expose through a Lambda proxy integration.
type RouteConfig struct {
	Path          string
	Method        string
	Authorization string
	AuthorizerID  string

	// APIKeyRequired is forwarded to PutMethod.
	APIKeyRequired bool
}

// DeploymentConfig describes the deployment created after the routes are in place.
type DeploymentConfig struct {
	StageName   string
	Description string
	Variables   map[string]string

	// CanaryPercent above zero deploys as a canary receiving that share of traffic.
	CanaryPercent float64
}

// LambdaTarget is the function backing every route of a resource.
type LambdaTarget struct {
	FunctionName string

	// CredentialsRole is an IAM role name or ARN API Gateway assumes to
	// invoke the function. Empty relies on the resource policy instead.
	CredentialsRole string
}

// AccessLogConfig enables stage access logging to CloudWatch Logs.
type AccessLogConfig struct {
	Format        string
	RetentionDays int32
}
