package service

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-log/tflog"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
	"github.com/raywall/terraform-provider-apigw/provider/internal/client"
	"github.com/raywall/terraform-provider-apigw/provider/internal/models"
	"github.com/raywall/terraform-provider-apigw/provider/internal/repository"
)

// StageLoggingService sends the access logs of a stage to CloudWatch Logs.
type StageLoggingService struct {
	CWLogsRepo *repository.CWLogsRepository
	APIGWRepo  *repository.APIGWRepository
	Client     *client.AWSClient // Region/AccountID for the log group ARN
}

// AccessLogGroupName is the log group receiving the access logs of a stage.
func AccessLogGroupName(apiID, stageName string) string {
	return fmt.Sprintf("/aws/apigateway/%s/%s/access", apiID, stageName)
}

// EnsureAccessLogging creates the log group of the stage if needed and points
// the stage access log settings at it. It returns the log group name.
func (s *StageLoggingService) EnsureAccessLogging(ctx context.Context, apiID, stageName string, cfg models.AccessLogConfig) (string, error) {
	logGroup := AccessLogGroupName(apiID, stageName)

	if err := s.CWLogsRepo.CreateLogGroupIfNotExists(ctx, logGroup, cfg.RetentionDays); err != nil {
		return "", fmt.Errorf("access log group %s: %w", logGroup, err)
	}

	_, err := s.APIGWRepo.UpdateStage(ctx, new(dto.UpdateStageRequest).
		SetRestApiId(apiID).
		SetStageName(stageName).
		AddPatchOperations(
			*dto.NewPatchOperation(dto.OpReplace, "/accessLogSettings/destinationArn").
				SetValue(s.Client.LogGroupArn(logGroup)),
			*dto.NewPatchOperation(dto.OpReplace, "/accessLogSettings/format").
				SetValue(cfg.Format),
		))
	if err != nil {
		return "", fmt.Errorf("enabling access logs on stage %s: %w", stageName, err)
	}

	tflog.Info(ctx, "stage access logging enabled", map[string]interface{}{
		"rest_api_id": apiID,
		"stage_name":  stageName,
		"log_group":   logGroup,
	})
	return logGroup, nil
}

// DisableAccessLogging removes the access log settings of the stage and
// deletes logGroup. A stage that no longer exists is not an error.
func (s *StageLoggingService) DisableAccessLogging(ctx context.Context, apiID, stageName, logGroup string) error {
	_, err := s.APIGWRepo.UpdateStage(ctx, new(dto.UpdateStageRequest).
		SetRestApiId(apiID).
		SetStageName(stageName).
		AddPatchOperations(*dto.NewPatchOperation(dto.OpRemove, "/accessLogSettings")))
	if err != nil && !repository.IsNotFound(err) {
		return fmt.Errorf("disabling access logs on stage %s: %w", stageName, err)
	}

	if logGroup == "" {
		return nil
	}
	return s.CWLogsRepo.DeleteLogGroup(ctx, logGroup)
}
