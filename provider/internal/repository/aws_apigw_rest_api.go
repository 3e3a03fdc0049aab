package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
)

// CreateRestApi creates an empty REST API or clones an existing one.
func (r *APIGWRepository) CreateRestApi(ctx context.Context, in *dto.CreateRestApiRequest) (*dto.CreateRestApiResult, error) {
	out, err := r.API.CreateRestApi(ctx, toCreateRestApiInput(in))
	if err != nil {
		return nil, fmt.Errorf("CreateRestApi failed: %w", err)
	}
	tflog.Debug(ctx, "created rest api", map[string]interface{}{
		"rest_api_id": aws.ToString(out.Id),
		"name":        aws.ToString(out.Name),
	})
	return fromCreateRestApiOutput(out), nil
}

// ImportRestApi creates a REST API from an OpenAPI definition.
func (r *APIGWRepository) ImportRestApi(ctx context.Context, in *dto.ImportRestApiRequest) (*dto.ImportRestApiResult, error) {
	out, err := r.API.ImportRestApi(ctx, toImportRestApiInput(in))
	if err != nil {
		return nil, fmt.Errorf("ImportRestApi failed: %w", err)
	}
	for _, w := range out.Warnings {
		tflog.Warn(ctx, "rest api import warning", map[string]interface{}{
			"rest_api_id": aws.ToString(out.Id),
			"warning":     w,
		})
	}
	return fromImportRestApiOutput(out), nil
}

// PutRestApi merges or overwrites a REST API with an OpenAPI definition.
func (r *APIGWRepository) PutRestApi(ctx context.Context, in *dto.PutRestApiRequest) (*dto.PutRestApiResult, error) {
	out, err := r.API.PutRestApi(ctx, toPutRestApiInput(in))
	if err != nil {
		return nil, fmt.Errorf("PutRestApi failed for api %s: %w", aws.ToString(in.RestApiId), err)
	}
	return fromPutRestApiOutput(out), nil
}

// GetRestApi reads a REST API. Callers check IsNotFound on the returned error.
func (r *APIGWRepository) GetRestApi(ctx context.Context, in *dto.GetRestApiRequest) (*dto.GetRestApiResult, error) {
	out, err := r.API.GetRestApi(ctx, &apigw.GetRestApiInput{RestApiId: in.RestApiId})
	if err != nil {
		return nil, fmt.Errorf("GetRestApi failed for api %s: %w", aws.ToString(in.RestApiId), err)
	}
	return fromGetRestApiOutput(out), nil
}

// UpdateRestApi applies patch operations to a REST API.
func (r *APIGWRepository) UpdateRestApi(ctx context.Context, in *dto.UpdateRestApiRequest) (*dto.UpdateRestApiResult, error) {
	out, err := r.API.UpdateRestApi(ctx, &apigw.UpdateRestApiInput{
		RestApiId:       in.RestApiId,
		PatchOperations: toPatchOperations(in.PatchOperations),
	})
	if err != nil {
		return nil, fmt.Errorf("UpdateRestApi failed for api %s: %w", aws.ToString(in.RestApiId), err)
	}
	return fromUpdateRestApiOutput(out), nil
}

// DeleteRestApi deletes a REST API. An API that is already gone is not an error.
func (r *APIGWRepository) DeleteRestApi(ctx context.Context, in *dto.DeleteRestApiRequest) error {
	err := r.withThrottleRetry(ctx, func() error {
		_, err := r.API.DeleteRestApi(ctx, &apigw.DeleteRestApiInput{RestApiId: in.RestApiId})
		return err
	})
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("DeleteRestApi failed for api %s: %w", aws.ToString(in.RestApiId), err)
	}
	return nil
}

// TagResource adds or overwrites tags on the resource identified by arn.
func (r *APIGWRepository) TagResource(ctx context.Context, arn string, tags map[string]string) error {
	if len(tags) == 0 {
		return nil
	}
	_, err := r.API.TagResource(ctx, &apigw.TagResourceInput{ResourceArn: aws.String(arn), Tags: tags})
	if err != nil {
		return fmt.Errorf("TagResource failed for %s: %w", arn, err)
	}
	return nil
}

// UntagResource removes the tag keys from the resource identified by arn.
func (r *APIGWRepository) UntagResource(ctx context.Context, arn string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := r.API.UntagResource(ctx, &apigw.UntagResourceInput{ResourceArn: aws.String(arn), TagKeys: keys})
	if err != nil {
		return fmt.Errorf("UntagResource failed for %s: %w", arn, err)
	}
	return nil
}
