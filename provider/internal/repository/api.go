package repository

import (
	"context"

	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	iam "github.com/aws/aws-sdk-go-v2/service/iam"
	lambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	s3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// APIGatewayAPI is the subset of the API Gateway client used by APIGWRepository.
type APIGatewayAPI interface {
	apigw.GetResourcesAPIClient

	CreateRestApi(ctx context.Context, params *apigw.CreateRestApiInput, optFns ...func(*apigw.Options)) (*apigw.CreateRestApiOutput, error)
	ImportRestApi(ctx context.Context, params *apigw.ImportRestApiInput, optFns ...func(*apigw.Options)) (*apigw.ImportRestApiOutput, error)
	PutRestApi(ctx context.Context, params *apigw.PutRestApiInput, optFns ...func(*apigw.Options)) (*apigw.PutRestApiOutput, error)
	GetRestApi(ctx context.Context, params *apigw.GetRestApiInput, optFns ...func(*apigw.Options)) (*apigw.GetRestApiOutput, error)
	UpdateRestApi(ctx context.Context, params *apigw.UpdateRestApiInput, optFns ...func(*apigw.Options)) (*apigw.UpdateRestApiOutput, error)
	DeleteRestApi(ctx context.Context, params *apigw.DeleteRestApiInput, optFns ...func(*apigw.Options)) (*apigw.DeleteRestApiOutput, error)
	TagResource(ctx context.Context, params *apigw.TagResourceInput, optFns ...func(*apigw.Options)) (*apigw.TagResourceOutput, error)
	UntagResource(ctx context.Context, params *apigw.UntagResourceInput, optFns ...func(*apigw.Options)) (*apigw.UntagResourceOutput, error)

	CreateResource(ctx context.Context, params *apigw.CreateResourceInput, optFns ...func(*apigw.Options)) (*apigw.CreateResourceOutput, error)
	DeleteResource(ctx context.Context, params *apigw.DeleteResourceInput, optFns ...func(*apigw.Options)) (*apigw.DeleteResourceOutput, error)
	PutMethod(ctx context.Context, params *apigw.PutMethodInput, optFns ...func(*apigw.Options)) (*apigw.PutMethodOutput, error)
	DeleteMethod(ctx context.Context, params *apigw.DeleteMethodInput, optFns ...func(*apigw.Options)) (*apigw.DeleteMethodOutput, error)
	PutMethodResponse(ctx context.Context, params *apigw.PutMethodResponseInput, optFns ...func(*apigw.Options)) (*apigw.PutMethodResponseOutput, error)
	PutIntegration(ctx context.Context, params *apigw.PutIntegrationInput, optFns ...func(*apigw.Options)) (*apigw.PutIntegrationOutput, error)
	TestInvokeMethod(ctx context.Context, params *apigw.TestInvokeMethodInput, optFns ...func(*apigw.Options)) (*apigw.TestInvokeMethodOutput, error)

	CreateDeployment(ctx context.Context, params *apigw.CreateDeploymentInput, optFns ...func(*apigw.Options)) (*apigw.CreateDeploymentOutput, error)
	CreateStage(ctx context.Context, params *apigw.CreateStageInput, optFns ...func(*apigw.Options)) (*apigw.CreateStageOutput, error)
	UpdateStage(ctx context.Context, params *apigw.UpdateStageInput, optFns ...func(*apigw.Options)) (*apigw.UpdateStageOutput, error)

	PutGatewayResponse(ctx context.Context, params *apigw.PutGatewayResponseInput, optFns ...func(*apigw.Options)) (*apigw.PutGatewayResponseOutput, error)
	GetGatewayResponse(ctx context.Context, params *apigw.GetGatewayResponseInput, optFns ...func(*apigw.Options)) (*apigw.GetGatewayResponseOutput, error)
	UpdateGatewayResponse(ctx context.Context, params *apigw.UpdateGatewayResponseInput, optFns ...func(*apigw.Options)) (*apigw.UpdateGatewayResponseOutput, error)
	DeleteGatewayResponse(ctx context.Context, params *apigw.DeleteGatewayResponseInput, optFns ...func(*apigw.Options)) (*apigw.DeleteGatewayResponseOutput, error)

	CreateDomainName(ctx context.Context, params *apigw.CreateDomainNameInput, optFns ...func(*apigw.Options)) (*apigw.CreateDomainNameOutput, error)
	CreateVpcLink(ctx context.Context, params *apigw.CreateVpcLinkInput, optFns ...func(*apigw.Options)) (*apigw.CreateVpcLinkOutput, error)
	GetVpcLink(ctx context.Context, params *apigw.GetVpcLinkInput, optFns ...func(*apigw.Options)) (*apigw.GetVpcLinkOutput, error)
	CreateDocumentationPart(ctx context.Context, params *apigw.CreateDocumentationPartInput, optFns ...func(*apigw.Options)) (*apigw.CreateDocumentationPartOutput, error)
}

// LambdaAPI is the subset of the Lambda client used by LambdaRepository.
type LambdaAPI interface {
	GetFunction(ctx context.Context, params *lambda.GetFunctionInput, optFns ...func(*lambda.Options)) (*lambda.GetFunctionOutput, error)
	AddPermission(ctx context.Context, params *lambda.AddPermissionInput, optFns ...func(*lambda.Options)) (*lambda.AddPermissionOutput, error)
	RemovePermission(ctx context.Context, params *lambda.RemovePermissionInput, optFns ...func(*lambda.Options)) (*lambda.RemovePermissionOutput, error)
}

// CloudWatchLogsAPI is the subset of the CloudWatch Logs client used by CWLogsRepository.
type CloudWatchLogsAPI interface {
	CreateLogGroup(ctx context.Context, params *cw.CreateLogGroupInput, optFns ...func(*cw.Options)) (*cw.CreateLogGroupOutput, error)
	PutRetentionPolicy(ctx context.Context, params *cw.PutRetentionPolicyInput, optFns ...func(*cw.Options)) (*cw.PutRetentionPolicyOutput, error)
	DeleteLogGroup(ctx context.Context, params *cw.DeleteLogGroupInput, optFns ...func(*cw.Options)) (*cw.DeleteLogGroupOutput, error)
}

// IAMAPI is the subset of the IAM client used by IAMRepository.
type IAMAPI interface {
	GetRole(ctx context.Context, params *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error)
}

// S3API is the subset of the S3 client used by S3Repository.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

var (
	_ APIGatewayAPI     = (*apigw.Client)(nil)
	_ LambdaAPI         = (*lambda.Client)(nil)
	_ CloudWatchLogsAPI = (*cw.Client)(nil)
	_ IAMAPI            = (*iam.Client)(nil)
	_ S3API             = (*s3.Client)(nil)
)
