package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	lambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// LambdaRepository manages the API Gateway side of a Lambda function: its ARN
// and the resource policy statement that lets API Gateway invoke it.
type LambdaRepository struct {
	API LambdaAPI
}

// StatementID is the resource policy statement ID used for apiID.
func StatementID(apiID string) string {
	return fmt.Sprintf("apigateway-%s", apiID)
}

// GetFunctionArn resolves a function name, partial ARN or ARN to its full ARN.
func (r *LambdaRepository) GetFunctionArn(ctx context.Context, functionName string) (string, error) {
	out, err := r.API.GetFunction(ctx, &lambda.GetFunctionInput{FunctionName: aws.String(functionName)})
	if err != nil {
		return "", fmt.Errorf("GetFunction failed for %s: %w", functionName, err)
	}
	if out.Configuration == nil || out.Configuration.FunctionArn == nil {
		return "", fmt.Errorf("GetFunction returned no ARN for %s", functionName)
	}
	return aws.ToString(out.Configuration.FunctionArn), nil
}

// AddPermission grants API Gateway permission to invoke the function. An
// existing statement with the same ID is kept.
func (r *LambdaRepository) AddPermission(ctx context.Context, functionName, apiID, sourceArn string) (string, error) {
	statementID := StatementID(apiID)

	_, err := r.API.AddPermission(ctx, &lambda.AddPermissionInput{
		FunctionName: aws.String(functionName),
		StatementId:  aws.String(statementID),
		Action:       aws.String("lambda:InvokeFunction"),
		Principal:    aws.String("apigateway.amazonaws.com"),
		SourceArn:    aws.String(sourceArn),
	})
	if err != nil {
		if !IsConflict(err) {
			return "", fmt.Errorf("AddPermission failed: %w", err)
		}
		tflog.Debug(ctx, "lambda permission already present", map[string]interface{}{
			"function_name": functionName,
			"statement_id":  statementID,
		})
	}
	return statementID, nil
}

// RemovePermission revokes the statement added by AddPermission.
func (r *LambdaRepository) RemovePermission(ctx context.Context, functionName, apiID string) error {
	_, err := r.API.RemovePermission(ctx, &lambda.RemovePermissionInput{
		FunctionName: aws.String(functionName),
		StatementId:  aws.String(StatementID(apiID)),
	})
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("RemovePermission failed: %w", err)
	}
	return nil
}
