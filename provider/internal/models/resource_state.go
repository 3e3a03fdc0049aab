package models

// ResourceState is persisted as JSON in the "internal" attribute of the
// apigw_lambda_routes resource.
type ResourceState struct {
	FunctionName   string                  `json:"function_name"`
	FunctionArn    string                  `json:"function_arn"`
	CredentialsArn string                  `json:"credentials_arn,omitempty"`
	APIGatewayID   string                  `json:"api_gateway_id"`
	StageName      string                  `json:"stage_name"`
	DeploymentID   string                  `json:"deployment_id"`
	StatementID    string                  `json:"statement_id"`
	Routes         []RouteState            `json:"routes"`
	Resources      map[string]ResourceInfo `json:"resources"`
	AccessLogGroup string                  `json:"access_log_group,omitempty"`
}
