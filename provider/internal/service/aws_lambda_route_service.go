package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
	"github.com/raywall/terraform-provider-apigw/provider/internal/client"
	"github.com/raywall/terraform-provider-apigw/provider/internal/models"
	"github.com/raywall/terraform-provider-apigw/provider/internal/repository"
)

// LambdaRouteService exposes a Lambda function through routes of an
// existing REST API: invoke permission, routes, deployment and access logs.
type LambdaRouteService struct {
	IAMService        *IAMService
	LoggingService    *StageLoggingService
	APIGatewayService *APIGatewayService
	LambdaRepo        *repository.LambdaRepository
	Client            *client.AWSClient
}

// NewLambdaRouteService assembles the service graph from one AWS client.
func NewLambdaRouteService(c *client.AWSClient) *LambdaRouteService {
	apigwRepo := repository.NewAPIGWRepository(c.APIGW)
	return &LambdaRouteService{
		IAMService: &IAMService{IAMRepo: &repository.IAMRepository{API: c.IAM}},
		LoggingService: &StageLoggingService{
			CWLogsRepo: &repository.CWLogsRepository{API: c.CWLogs},
			APIGWRepo:  apigwRepo,
			Client:     c,
		},
		APIGatewayService: &APIGatewayService{APIGWRepo: apigwRepo, Client: c, SettleDelay: DefaultSettleDelay},
		LambdaRepo:        &repository.LambdaRepository{API: c.Lambda},
		Client:            c,
	}
}

// CheckResourceExistence reports whether the REST API and the function of a
// stored state still exist.
func (s *LambdaRouteService) CheckResourceExistence(ctx context.Context, st *models.ResourceState) (bool, error) {
	_, err := s.APIGatewayService.APIGWRepo.GetRestApi(ctx, new(dto.GetRestApiRequest).SetRestApiId(st.APIGatewayID))
	if err != nil {
		if repository.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	if _, err := s.LambdaRepo.GetFunctionArn(ctx, st.FunctionName); err != nil {
		if repository.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// EnsureRoutes grants API Gateway permission to invoke the function, puts the
// routes in place and deploys them. A non-nil logs enables stage access logging.
func (s *LambdaRouteService) EnsureRoutes(ctx context.Context, apiID string, target models.LambdaTarget, deploy models.DeploymentConfig, routes []models.RouteConfig, logs *models.AccessLogConfig) (*models.ResourceState, error) {
	fnArn, err := s.LambdaRepo.GetFunctionArn(ctx, target.FunctionName)
	if err != nil {
		return nil, fmt.Errorf("lambda function lookup failed: %w", err)
	}

	credentialsArn, err := s.IAMService.ResolveRoleArn(ctx, target.CredentialsRole)
	if err != nil {
		return nil, err
	}

	statementID, err := s.LambdaRepo.AddPermission(ctx, target.FunctionName, apiID, s.Client.ExecuteAPISourceArn(apiID))
	if err != nil {
		return nil, fmt.Errorf("lambda permission failed: %w", err)
	}

	apigwState, err := s.APIGatewayService.EnsureRoutesAndDeploy(ctx, apiID, deploy, fnArn, credentialsArn, routes)
	if err != nil {
		return nil, fmt.Errorf("APIGW route setup failed: %w", err)
	}

	st := &models.ResourceState{
		FunctionName:   target.FunctionName,
		FunctionArn:    fnArn,
		CredentialsArn: credentialsArn,
		APIGatewayID:   apigwState.APIGatewayID,
		StageName:      apigwState.StageName,
		DeploymentID:   apigwState.DeploymentID,
		StatementID:    statementID,
		Routes:         apigwState.Routes,
		Resources:      apigwState.Resources,
	}

	if logs != nil {
		logGroup, err := s.LoggingService.EnsureAccessLogging(ctx, apiID, deploy.StageName, *logs)
		if err != nil {
			return nil, fmt.Errorf("access logging setup failed: %w", err)
		}
		st.AccessLogGroup = logGroup
	}

	return st, nil
}

// DeleteRoutes tears down everything EnsureRoutes created. Every step runs
// even when an earlier one fails; the failures are returned together.
func (s *LambdaRouteService) DeleteRoutes(ctx context.Context, st *models.ResourceState) error {
	var result *multierror.Error

	if st.AccessLogGroup != "" {
		if err := s.LoggingService.DisableAccessLogging(ctx, st.APIGatewayID, st.StageName, st.AccessLogGroup); err != nil {
			result = multierror.Append(result, fmt.Errorf("access logging removal failed: %w", err))
		}
	}

	if err := s.APIGatewayService.DeleteRoutesOrchestration(ctx, st.APIGatewayID, st.Routes, st.Resources); err != nil {
		result = multierror.Append(result, fmt.Errorf("APIGW deletion failed: %w", err))
	}

	if err := s.LambdaRepo.RemovePermission(ctx, st.FunctionName, st.APIGatewayID); err != nil {
		result = multierror.Append(result, fmt.Errorf("lambda permission removal failed: %w", err))
	}

	if err := result.ErrorOrNil(); err != nil {
		tflog.Warn(ctx, "lambda routes teardown incomplete", map[string]interface{}{
			"rest_api_id": st.APIGatewayID,
			"errors":      len(result.Errors),
		})
		return err
	}
	return nil
}

// UpdateRoutes moves a deployed route set from old to the new configuration.
// Routes and resources no longer configured are removed before the new
// deployment and a replaced function loses its permission. The old access
// log group is removed when logging is turned off or the stage changes.
func (s *LambdaRouteService) UpdateRoutes(ctx context.Context, old *models.ResourceState, target models.LambdaTarget, deploy models.DeploymentConfig, routes []models.RouteConfig, logs *models.AccessLogConfig) (*models.ResourceState, error) {
	apiID := old.APIGatewayID

	stale, staleResources := StaleRoutes(old, routes)
	if len(stale) > 0 || len(staleResources) > 0 {
		if err := s.APIGatewayService.DeleteRoutesOrchestration(ctx, apiID, stale, staleResources); err != nil {
			return nil, fmt.Errorf("removing stale routes: %w", err)
		}
	}

	st, err := s.EnsureRoutes(ctx, apiID, target, deploy, routes, logs)
	if err != nil {
		return nil, err
	}
	// Resources created by an earlier apply and still in use stay owned.
	for path, info := range old.Resources {
		if _, gone := staleResources[path]; gone {
			continue
		}
		if _, ok := st.Resources[path]; !ok {
			st.Resources[path] = info
		}
	}

	if old.FunctionName != "" && old.FunctionName != target.FunctionName {
		if err := s.LambdaRepo.RemovePermission(ctx, old.FunctionName, apiID); err != nil {
			return st, fmt.Errorf("lambda permission removal failed: %w", err)
		}
	}

	// The group name follows the stage, so a moved stage leaves the old one behind.
	if old.AccessLogGroup != "" && old.AccessLogGroup != st.AccessLogGroup {
		if err := s.LoggingService.DisableAccessLogging(ctx, apiID, old.StageName, old.AccessLogGroup); err != nil {
			return st, fmt.Errorf("access logging removal failed: %w", err)
		}
	}
	return st, nil
}

// StaleRoutes returns the routes of old missing from routes, and the
// resources no configured route path runs through.
func StaleRoutes(old *models.ResourceState, routes []models.RouteConfig) ([]models.RouteState, map[string]models.ResourceInfo) {
	wanted := make(map[string]bool, len(routes))
	paths := make([]string, 0, len(routes))
	for _, r := range routes {
		p := normalizePath(r.Path)
		wanted[strings.ToUpper(r.Method)+" "+p] = true
		paths = append(paths, p)
	}

	var stale []models.RouteState
	for _, r := range old.Routes {
		if !wanted[strings.ToUpper(r.Method)+" "+normalizePath(r.Path)] {
			stale = append(stale, r)
		}
	}

	staleResources := make(map[string]models.ResourceInfo)
	for path, info := range old.Resources {
		if !pathInUse(path, paths) {
			staleResources[path] = info
		}
	}
	return stale, staleResources
}

func normalizePath(p string) string {
	return "/" + strings.Trim(p, "/")
}

func pathInUse(resourcePath string, routePaths []string) bool {
	for _, p := range routePaths {
		if p == resourcePath || strings.HasPrefix(p, resourcePath+"/") {
			return true
		}
	}
	return false
}
