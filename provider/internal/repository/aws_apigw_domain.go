package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
)

// CreateDomainName registers a custom domain name.
func (r *APIGWRepository) CreateDomainName(ctx context.Context, in *dto.CreateDomainNameRequest) (*dto.CreateDomainNameResult, error) {
	out, err := r.API.CreateDomainName(ctx, toCreateDomainNameInput(in))
	if err != nil {
		return nil, fmt.Errorf("CreateDomainName failed for %s: %w", aws.ToString(in.DomainName), err)
	}
	return fromCreateDomainNameOutput(out), nil
}

func (r *APIGWRepository) CreateVpcLink(ctx context.Context, in *dto.CreateVpcLinkRequest) (*dto.CreateVpcLinkResult, error) {
	out, err := r.API.CreateVpcLink(ctx, toCreateVpcLinkInput(in))
	if err != nil {
		return nil, fmt.Errorf("CreateVpcLink failed for %s: %w", aws.ToString(in.Name), err)
	}
	return fromCreateVpcLinkOutput(out), nil
}

func (r *APIGWRepository) GetVpcLink(ctx context.Context, in *dto.GetVpcLinkRequest) (*dto.GetVpcLinkResult, error) {
	out, err := r.API.GetVpcLink(ctx, &apigw.GetVpcLinkInput{VpcLinkId: in.VpcLinkId})
	if err != nil {
		return nil, fmt.Errorf("GetVpcLink failed for %s: %w", aws.ToString(in.VpcLinkId), err)
	}
	return fromGetVpcLinkOutput(out), nil
}

// CreateDocumentationPart documents an entity of a REST API. The location
// status code is checked before the call.
func (r *APIGWRepository) CreateDocumentationPart(ctx context.Context, in *dto.CreateDocumentationPartRequest) (*dto.CreateDocumentationPartResult, error) {
	if loc := in.Location; loc != nil && loc.StatusCode != nil && !dto.SelectionStatusCodePattern.MatchString(*loc.StatusCode) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatusCode, *loc.StatusCode)
	}
	out, err := r.API.CreateDocumentationPart(ctx, toCreateDocumentationPartInput(in))
	if err != nil {
		return nil, fmt.Errorf("CreateDocumentationPart failed: %w", err)
	}
	return fromCreateDocumentationPartOutput(out), nil
}
