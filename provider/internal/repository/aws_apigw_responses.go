package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	gwtypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
)

// PutMethodResponse declares a method response. An existing one is left as is.
func (r *APIGWRepository) PutMethodResponse(ctx context.Context, in *dto.PutMethodResponseRequest) (*dto.PutMethodResponseResult, error) {
	out, err := r.API.PutMethodResponse(ctx, toPutMethodResponseInput(in))
	if err != nil {
		if IsConflict(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("PutMethodResponse failed: %w", err)
	}
	return fromPutMethodResponseOutput(out), nil
}

// PutIntegration sets up the backend integration of a method.
func (r *APIGWRepository) PutIntegration(ctx context.Context, in *dto.PutIntegrationRequest) (*dto.PutIntegrationResult, error) {
	out, err := r.API.PutIntegration(ctx, toPutIntegrationInput(in))
	if err != nil {
		return nil, fmt.Errorf("PutIntegration failed: %w", err)
	}
	return fromPutIntegrationOutput(out), nil
}

// TestInvokeMethod simulates a request against a method without deploying it.
func (r *APIGWRepository) TestInvokeMethod(ctx context.Context, in *dto.TestInvokeMethodRequest) (*dto.TestInvokeMethodResult, error) {
	out, err := r.API.TestInvokeMethod(ctx, toTestInvokeMethodInput(in))
	if err != nil {
		return nil, fmt.Errorf("TestInvokeMethod failed: %w", err)
	}
	return fromTestInvokeMethodOutput(out), nil
}

// PutGatewayResponse customises one gateway response type.
func (r *APIGWRepository) PutGatewayResponse(ctx context.Context, in *dto.PutGatewayResponseRequest) (*dto.PutGatewayResponseResult, error) {
	out, err := r.API.PutGatewayResponse(ctx, toPutGatewayResponseInput(in))
	if err != nil {
		return nil, fmt.Errorf("PutGatewayResponse failed for %s: %w", aws.ToString(in.ResponseType), err)
	}
	return fromPutGatewayResponseOutput(out), nil
}

// GetGatewayResponse reads one gateway response type.
func (r *APIGWRepository) GetGatewayResponse(ctx context.Context, in *dto.GetGatewayResponseRequest) (*dto.GetGatewayResponseResult, error) {
	out, err := r.API.GetGatewayResponse(ctx, &apigw.GetGatewayResponseInput{
		RestApiId:    in.RestApiId,
		ResponseType: enumValue[gwtypes.GatewayResponseType](in.ResponseType),
	})
	if err != nil {
		return nil, fmt.Errorf("GetGatewayResponse failed for %s: %w", aws.ToString(in.ResponseType), err)
	}
	return fromGetGatewayResponseOutput(out), nil
}

// UpdateGatewayResponse applies patch operations to one gateway response type.
func (r *APIGWRepository) UpdateGatewayResponse(ctx context.Context, in *dto.UpdateGatewayResponseRequest) (*dto.UpdateGatewayResponseResult, error) {
	out, err := r.API.UpdateGatewayResponse(ctx, &apigw.UpdateGatewayResponseInput{
		RestApiId:       in.RestApiId,
		ResponseType:    enumValue[gwtypes.GatewayResponseType](in.ResponseType),
		PatchOperations: toPatchOperations(in.PatchOperations),
	})
	if err != nil {
		return nil, fmt.Errorf("UpdateGatewayResponse failed for %s: %w", aws.ToString(in.ResponseType), err)
	}
	return fromUpdateGatewayResponseOutput(out), nil
}

// DeleteGatewayResponse resets a gateway response type to its default.
func (r *APIGWRepository) DeleteGatewayResponse(ctx context.Context, in *dto.DeleteGatewayResponseRequest) error {
	_, err := r.API.DeleteGatewayResponse(ctx, &apigw.DeleteGatewayResponseInput{
		RestApiId:    in.RestApiId,
		ResponseType: enumValue[gwtypes.GatewayResponseType](in.ResponseType),
	})
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("DeleteGatewayResponse failed for %s: %w", aws.ToString(in.ResponseType), err)
	}
	return nil
}
