package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
	"github.com/raywall/terraform-provider-apigw/provider/internal/client"
	"github.com/raywall/terraform-provider-apigw/provider/internal/models"
	"github.com/raywall/terraform-provider-apigw/provider/internal/repository"
)

// DefaultSettleDelay is how long DeleteRoutesOrchestration waits between
// deleting methods and deleting the resources that held them.
const DefaultSettleDelay = 500 * time.Millisecond

// APIGatewayService wires routes of a REST API to a Lambda proxy integration.
type APIGatewayService struct {
	APIGWRepo *repository.APIGWRepository
	Client    *client.AWSClient // Region for integration URIs

	// SettleDelay is the pause between method and resource deletion.
	SettleDelay time.Duration
}

// IntegrationURI is the invocation URI of a Lambda function for API Gateway.
func IntegrationURI(region, functionArn string) string {
	return fmt.Sprintf("arn:aws:apigateway:%s:lambda:path/2015-03-31/functions/%s/invocations", region, functionArn)
}

// EnsureRoutesAndDeploy makes sure every route has its path, method and
// integration in place, then deploys the API to deploy.StageName.
func (s *APIGatewayService) EnsureRoutesAndDeploy(ctx context.Context, apiID string, deploy models.DeploymentConfig, functionArn, credentialsArn string, routes []models.RouteConfig) (*models.APIGWState, error) {
	rootID, err := s.APIGWRepo.GetRootResourceID(ctx, apiID)
	if err != nil {
		return nil, fmt.Errorf("getting root resource ID: %w", err)
	}

	apigwState := &models.APIGWState{
		APIGatewayID: apiID,
		StageName:    deploy.StageName,
		Resources:    make(map[string]models.ResourceInfo),
	}
	routesState := make([]models.RouteState, 0, len(routes))

	for _, r := range routes {
		method := strings.ToUpper(r.Method)

		resourceID, pathResources, err := s.APIGWRepo.EnsurePath(ctx, apiID, rootID, r.Path)
		if err != nil {
			return nil, fmt.Errorf("ensure path %s: %w", r.Path, err)
		}
		for k, v := range pathResources {
			apigwState.Resources[k] = v
		}

		if err := s.putRoute(ctx, apiID, resourceID, method, functionArn, credentialsArn, r); err != nil {
			return nil, fmt.Errorf("put method/integration %s %s: %w", method, r.Path, err)
		}

		routesState = append(routesState, models.RouteState{
			Path:          r.Path,
			Method:        method,
			Authorization: authorizationType(r.Authorization),
			AuthorizerID:  r.AuthorizerID,
			ResourceID:    resourceID,
		})
	}
	apigwState.Routes = routesState

	dep, err := s.APIGWRepo.CreateDeployment(ctx, deploymentRequest(apiID, deploy))
	if err != nil {
		return nil, fmt.Errorf("deploy api failed: %w", err)
	}
	if dep.Id != nil {
		apigwState.DeploymentID = *dep.Id
	}

	tflog.Info(ctx, "api deployed", map[string]interface{}{
		"rest_api_id":   apiID,
		"stage_name":    deploy.StageName,
		"deployment_id": apigwState.DeploymentID,
		"routes":        len(routesState),
	})
	return apigwState, nil
}

func (s *APIGatewayService) putRoute(ctx context.Context, apiID, resourceID, method, functionArn, credentialsArn string, r models.RouteConfig) error {
	authType := authorizationType(r.Authorization)
	methodReq := new(dto.PutMethodRequest).
		SetRestApiId(apiID).
		SetResourceId(resourceID).
		SetHttpMethod(method).
		SetAuthorizationType(authType).
		SetApiKeyRequired(r.APIKeyRequired)
	if authType != "NONE" && r.AuthorizerID != "" {
		methodReq.SetAuthorizerId(r.AuthorizerID)
	}
	if _, err := s.APIGWRepo.PutMethod(ctx, methodReq); err != nil {
		return err
	}

	// Lambda proxy integrations are always invoked with POST.
	integrationReq := new(dto.PutIntegrationRequest).
		SetRestApiId(apiID).
		SetResourceId(resourceID).
		SetHttpMethod(method).
		SetType(dto.IntegrationTypeAwsProxy).
		SetIntegrationHttpMethod("POST").
		SetUri(IntegrationURI(s.Client.Region, functionArn))
	if credentialsArn != "" {
		integrationReq.SetCredentials(credentialsArn)
	}
	if _, err := s.APIGWRepo.PutIntegration(ctx, integrationReq); err != nil {
		return err
	}

	_, err := s.APIGWRepo.PutMethodResponse(ctx, new(dto.PutMethodResponseRequest).
		SetRestApiId(apiID).
		SetResourceId(resourceID).
		SetHttpMethod(method).
		SetStatusCode("200"))
	return err
}

func authorizationType(v string) string {
	if v == "" {
		return "NONE"
	}
	return strings.ToUpper(v)
}

func deploymentRequest(apiID string, deploy models.DeploymentConfig) *dto.CreateDeploymentRequest {
	req := new(dto.CreateDeploymentRequest).
		SetRestApiId(apiID).
		SetStageName(deploy.StageName)
	if deploy.Description != "" {
		req.SetDescription(deploy.Description)
	}
	if len(deploy.Variables) > 0 {
		req.SetVariables(deploy.Variables)
	}
	if deploy.CanaryPercent > 0 {
		req.SetCanarySettings(new(dto.DeploymentCanarySettings).SetPercentTraffic(deploy.CanaryPercent))
	}
	return req
}

// DeleteRoutesOrchestration deletes the methods of routes, then the resources
// created for them. Method failures do not stop the teardown; they are
// returned together once the resources have been handled.
func (s *APIGatewayService) DeleteRoutesOrchestration(ctx context.Context, apiID string, routes []models.RouteState, resources map[string]models.ResourceInfo) error {
	var result *multierror.Error

	for _, route := range routes {
		if err := s.APIGWRepo.DeleteMethod(ctx, apiID, route.ResourceID, route.Method); err != nil {
			result = multierror.Append(result, fmt.Errorf("delete method %s %s: %w", route.Method, route.Path, err))
		}
	}

	if s.SettleDelay > 0 {
		select {
		case <-ctx.Done():
			return multierror.Append(result, ctx.Err()).ErrorOrNil()
		case <-time.After(s.SettleDelay):
		}
	}

	if err := s.APIGWRepo.DeleteResources(ctx, apiID, resources); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
