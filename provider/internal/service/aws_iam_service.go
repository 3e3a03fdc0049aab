package service

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/raywall/terraform-provider-apigw/provider/internal/repository"
)

// IAMService resolves the roles API Gateway assumes to invoke integrations.
type IAMService struct {
	IAMRepo *repository.IAMRepository
}

// ResolveRoleArn turns a role name or ARN into an ARN. An empty role resolves
// to an empty ARN: the integration then relies on the function's resource policy.
func (s *IAMService) ResolveRoleArn(ctx context.Context, role string) (string, error) {
	if role == "" {
		return "", nil
	}
	arn, err := s.IAMRepo.GetRoleArn(ctx, role)
	if err != nil {
		return "", fmt.Errorf("resolving credentials role %s: %w", role, err)
	}
	tflog.Debug(ctx, "resolved integration credentials", map[string]interface{}{
		"role":     role,
		"role_arn": arn,
	})
	return arn, nil
}
