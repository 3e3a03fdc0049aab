package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
)

// CreateDeployment snapshots the API and, when StageName is set, points that stage at it.
func (r *APIGWRepository) CreateDeployment(ctx context.Context, in *dto.CreateDeploymentRequest) (*dto.CreateDeploymentResult, error) {
	var out *apigw.CreateDeploymentOutput
	err := r.withThrottleRetry(ctx, func() error {
		var err error
		out, err = r.API.CreateDeployment(ctx, toCreateDeploymentInput(in))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("CreateDeployment failed for api %s: %w", aws.ToString(in.RestApiId), err)
	}
	tflog.Debug(ctx, "created deployment", map[string]interface{}{
		"rest_api_id":   aws.ToString(in.RestApiId),
		"stage_name":    aws.ToString(in.StageName),
		"deployment_id": aws.ToString(out.Id),
	})
	return fromCreateDeploymentOutput(out), nil
}

// CreateStage creates a stage for an existing deployment.
func (r *APIGWRepository) CreateStage(ctx context.Context, in *dto.CreateStageRequest) (*dto.CreateStageResult, error) {
	out, err := r.API.CreateStage(ctx, toCreateStageInput(in))
	if err != nil {
		return nil, fmt.Errorf("CreateStage failed for stage %s: %w", aws.ToString(in.StageName), err)
	}
	return fromCreateStageOutput(out), nil
}

// UpdateStage applies patch operations to a stage.
func (r *APIGWRepository) UpdateStage(ctx context.Context, in *dto.UpdateStageRequest) (*dto.UpdateStageResult, error) {
	var out *apigw.UpdateStageOutput
	err := r.withThrottleRetry(ctx, func() error {
		var err error
		out, err = r.API.UpdateStage(ctx, &apigw.UpdateStageInput{
			RestApiId:       in.RestApiId,
			StageName:       in.StageName,
			PatchOperations: toPatchOperations(in.PatchOperations),
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("UpdateStage failed for stage %s: %w", aws.ToString(in.StageName), err)
	}
	return fromUpdateStageOutput(out), nil
}
