package service

import (
	"context"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
	"github.com/raywall/terraform-provider-apigw/provider/internal/repository"
)

// GatewayResponseService customises the responses API Gateway returns for
// requests that never reach an integration.
type GatewayResponseService struct {
	APIGWRepo *repository.APIGWRepository
}

// Put creates or replaces the response.
func (s *GatewayResponseService) Put(ctx context.Context, req *dto.PutGatewayResponseRequest) (*dto.GatewayResponse, error) {
	return s.APIGWRepo.PutGatewayResponse(ctx, req)
}

// Read returns the response, or nil when it is not customised anymore.
func (s *GatewayResponseService) Read(ctx context.Context, apiID string, responseType dto.GatewayResponseType) (*dto.GatewayResponse, error) {
	resp, err := s.APIGWRepo.GetGatewayResponse(ctx, new(dto.GetGatewayResponseRequest).
		SetRestApiId(apiID).
		SetResponseType(responseType))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if resp.DefaultResponse != nil && *resp.DefaultResponse {
		return nil, nil
	}
	return resp, nil
}

// Update patches the response towards desired, reading it first. Without a
// status code in desired the response is put again instead, since only a put
// restores the default code of the type.
func (s *GatewayResponseService) Update(ctx context.Context, desired *dto.PutGatewayResponseRequest) (*dto.GatewayResponse, error) {
	apiID, responseType := "", dto.GatewayResponseType("")
	if desired.RestApiId != nil {
		apiID = *desired.RestApiId
	}
	if desired.ResponseType != nil {
		responseType = dto.GatewayResponseType(*desired.ResponseType)
	}

	current, err := s.APIGWRepo.GetGatewayResponse(ctx, new(dto.GetGatewayResponseRequest).
		SetRestApiId(apiID).
		SetResponseType(responseType))
	if err != nil {
		return nil, err
	}

	if desired.StatusCode == nil && current.StatusCode != nil {
		return s.Put(ctx, desired)
	}

	ops := GatewayResponsePatch(current, desired)
	if len(ops) == 0 {
		return current, nil
	}
	return s.APIGWRepo.UpdateGatewayResponse(ctx, new(dto.UpdateGatewayResponseRequest).
		SetRestApiId(apiID).
		SetResponseType(responseType).
		SetPatchOperations(ops))
}

// Delete resets the response to its default.
func (s *GatewayResponseService) Delete(ctx context.Context, apiID string, responseType dto.GatewayResponseType) error {
	return s.APIGWRepo.DeleteGatewayResponse(ctx, new(dto.DeleteGatewayResponseRequest).
		SetRestApiId(apiID).
		SetResponseType(responseType))
}
