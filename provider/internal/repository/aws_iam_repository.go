package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	iam "github.com/aws/aws-sdk-go-v2/service/iam"
)

// IAMRepository resolves the roles API Gateway assumes to call integrations.
type IAMRepository struct {
	API IAMAPI
}

// GetRoleArn returns the ARN of roleName. A value that already is an ARN is
// returned unchanged without calling IAM.
func (r *IAMRepository) GetRoleArn(ctx context.Context, roleName string) (string, error) {
	if strings.HasPrefix(roleName, "arn:") {
		return roleName, nil
	}
	out, err := r.API.GetRole(ctx, &iam.GetRoleInput{RoleName: aws.String(roleName)})
	if err != nil {
		return "", fmt.Errorf("GetRole failed for %s: %w", roleName, err)
	}
	if out.Role == nil {
		return "", fmt.Errorf("GetRole returned no role for %s", roleName)
	}
	return aws.ToString(out.Role.Arn), nil
}
