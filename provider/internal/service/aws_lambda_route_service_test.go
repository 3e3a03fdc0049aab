package service_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	gwtypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/terraform-provider-apigw/provider/internal/models"
	"github.com/raywall/terraform-provider-apigw/provider/internal/repository"
	"github.com/raywall/terraform-provider-apigw/provider/internal/service"
)

var ordersRoutes = []models.RouteConfig{
	{Path: "/orders", Method: "GET"},
	{Path: "/orders/{id}", Method: "PUT"},
}

func TestLambdaRouteServiceEnsureRoutes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	apiID := f.api.AddRestApi("orders")

	st, err := f.routeService().EnsureRoutes(ctx, apiID,
		models.LambdaTarget{FunctionName: testFunction, CredentialsRole: "apigw-invoke"},
		models.DeploymentConfig{StageName: "dev"},
		ordersRoutes,
		&models.AccessLogConfig{Format: `{"requestId":"$context.requestId"}`, RetentionDays: 30})
	require.NoError(t, err)

	assert.Equal(t, testFnArn, st.FunctionArn)
	assert.Equal(t, testRoleArn, st.CredentialsArn)
	assert.Equal(t, repository.StatementID(apiID), st.StatementID)
	assert.Equal(t, service.AccessLogGroupName(apiID, "dev"), st.AccessLogGroup)
	assert.Len(t, st.Routes, 2)

	assert.Equal(t, f.client.ExecuteAPISourceArn(apiID), f.lambda.Statements[testFunction][st.StatementID])
	assert.Equal(t, int32(30), f.logs.Groups[st.AccessLogGroup])

	stage, ok := f.api.Stage(apiID, "dev")
	require.True(t, ok)
	require.NotNil(t, stage.AccessLogSettings)
	assert.Equal(t, f.client.LogGroupArn(st.AccessLogGroup), aws.ToString(stage.AccessLogSettings.DestinationArn))
	assert.Equal(t, `{"requestId":"$context.requestId"}`, aws.ToString(stage.AccessLogSettings.Format))
}

func TestLambdaRouteServiceEnsureRoutesUnknownFunction(t *testing.T) {
	f := newFixture(t)
	apiID := f.api.AddRestApi("orders")

	_, err := f.routeService().EnsureRoutes(context.Background(), apiID,
		models.LambdaTarget{FunctionName: "nope"}, models.DeploymentConfig{StageName: "dev"}, ordersRoutes, nil)
	require.Error(t, err)
	assert.True(t, repository.IsNotFound(err))
	assert.Empty(t, f.api.Ops())
}

func TestLambdaRouteServiceCheckResourceExistence(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := f.routeService()
	apiID := f.api.AddRestApi("orders")

	exists, err := svc.CheckResourceExistence(ctx, &models.ResourceState{APIGatewayID: apiID, FunctionName: testFunction})
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.CheckResourceExistence(ctx, &models.ResourceState{APIGatewayID: "gone", FunctionName: testFunction})
	require.NoError(t, err)
	assert.False(t, exists)

	delete(f.lambda.Functions, testFunction)
	exists, err = svc.CheckResourceExistence(ctx, &models.ResourceState{APIGatewayID: apiID, FunctionName: testFunction})
	require.NoError(t, err)
	assert.False(t, exists)

	f.api.Errors["GetRestApi"] = &gwtypes.TooManyRequestsException{Message: aws.String("slow down")}
	_, err = svc.CheckResourceExistence(ctx, &models.ResourceState{APIGatewayID: apiID, FunctionName: testFunction})
	assert.Error(t, err)
}

func TestLambdaRouteServiceDeleteRoutes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := f.routeService()
	apiID := f.api.AddRestApi("orders")

	st, err := svc.EnsureRoutes(ctx, apiID, models.LambdaTarget{FunctionName: testFunction},
		models.DeploymentConfig{StageName: "dev"}, ordersRoutes, &models.AccessLogConfig{Format: "$context.requestId"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRoutes(ctx, st))

	assert.Equal(t, []string{"/"}, f.api.ResourcePaths(apiID))
	assert.Empty(t, f.lambda.Statements[testFunction])
	assert.NotContains(t, f.logs.Groups, st.AccessLogGroup)
	stage, _ := f.api.Stage(apiID, "dev")
	assert.Nil(t, stage.AccessLogSettings)

	// A second teardown finds nothing left and still succeeds.
	require.NoError(t, svc.DeleteRoutes(ctx, st))
}

func TestLambdaRouteServiceDeleteRoutesAggregatesErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := f.routeService()
	apiID := f.api.AddRestApi("orders")

	st, err := svc.EnsureRoutes(ctx, apiID, models.LambdaTarget{FunctionName: testFunction},
		models.DeploymentConfig{StageName: "dev"}, ordersRoutes, &models.AccessLogConfig{Format: "$context.requestId"})
	require.NoError(t, err)

	f.api.Errors["UpdateStage"] = &gwtypes.BadRequestException{Message: aws.String("stage locked")}
	f.api.Errors["DeleteMethod"] = &gwtypes.BadRequestException{Message: aws.String("method locked")}

	err = svc.DeleteRoutes(ctx, st)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access logging removal failed")
	assert.Contains(t, err.Error(), "APIGW deletion failed")

	// Later steps ran regardless.
	assert.Empty(t, f.lambda.Statements[testFunction])
	assert.Equal(t, []string{"/"}, f.api.ResourcePaths(apiID))
}

func TestIAMServiceResolveRoleArn(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := &service.IAMService{IAMRepo: &repository.IAMRepository{API: f.iam}}

	arn, err := svc.ResolveRoleArn(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, arn)

	arn, err = svc.ResolveRoleArn(ctx, "apigw-invoke")
	require.NoError(t, err)
	assert.Equal(t, testRoleArn, arn)

	arn, err = svc.ResolveRoleArn(ctx, "arn:aws:iam::123456789012:role/other")
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:iam::123456789012:role/other", arn)

	_, err = svc.ResolveRoleArn(ctx, "missing")
	require.Error(t, err)
	assert.True(t, repository.IsNotFound(err))
}

func TestStaleRoutes(t *testing.T) {
	old := &models.ResourceState{
		Routes: []models.RouteState{
			{Path: "/orders", Method: "GET", ResourceID: "r1"},
			{Path: "/orders/{id}", Method: "PUT", ResourceID: "r2"},
			{Path: "/orders/{id}/items", Method: "GET", ResourceID: "r3"},
		},
		Resources: map[string]models.ResourceInfo{
			"/orders":            {ResourceID: "r1", PathPart: "orders"},
			"/orders/{id}":       {ResourceID: "r2", PathPart: "{id}"},
			"/orders/{id}/items": {ResourceID: "r3", PathPart: "items"},
		},
	}

	stale, resources := service.StaleRoutes(old, []models.RouteConfig{
		{Path: "orders/", Method: "get"},
		{Path: "/orders/{id}", Method: "DELETE"},
	})

	require.Len(t, stale, 2)
	assert.Equal(t, "/orders/{id}", stale[0].Path)
	assert.Equal(t, "/orders/{id}/items", stale[1].Path)
	assert.Equal(t, map[string]models.ResourceInfo{
		"/orders/{id}/items": {ResourceID: "r3", PathPart: "items"},
	}, resources)
}

func TestLambdaRouteServiceUpdateRoutes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.lambda.Functions["orders-v2"] = true
	svc := f.routeService()
	apiID := f.api.AddRestApi("orders")

	old, err := svc.EnsureRoutes(ctx, apiID, models.LambdaTarget{FunctionName: testFunction},
		models.DeploymentConfig{StageName: "dev"}, ordersRoutes, &models.AccessLogConfig{Format: "$context.requestId"})
	require.NoError(t, err)

	st, err := svc.UpdateRoutes(ctx, old, models.LambdaTarget{FunctionName: "orders-v2"},
		models.DeploymentConfig{StageName: "dev"}, []models.RouteConfig{{Path: "/orders", Method: "GET"}}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"/", "/orders"}, f.api.ResourcePaths(apiID))
	assert.Len(t, st.Routes, 1)
	assert.Empty(t, st.AccessLogGroup)
	assert.NotEqual(t, old.DeploymentID, st.DeploymentID)

	assert.Empty(t, f.lambda.Statements[testFunction])
	assert.Contains(t, f.lambda.Statements["orders-v2"], repository.StatementID(apiID))
	assert.NotContains(t, f.logs.Groups, old.AccessLogGroup)

	get, ok := f.api.Method(apiID, "/orders", "GET")
	require.True(t, ok)
	assert.Contains(t, aws.ToString(get.MethodIntegration.Uri), "function:orders-v2")
}

func TestLambdaRouteServiceDeleteRoutesKeepsSharedResources(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := f.routeService()
	apiID := f.api.AddRestApi("orders")

	// Another configuration owns /shared before these routes exist.
	rootID, err := f.repo.GetRootResourceID(ctx, apiID)
	require.NoError(t, err)
	_, _, err = f.repo.EnsurePath(ctx, apiID, rootID, "/shared")
	require.NoError(t, err)

	st, err := svc.EnsureRoutes(ctx, apiID, models.LambdaTarget{FunctionName: testFunction},
		models.DeploymentConfig{StageName: "dev"}, []models.RouteConfig{{Path: "/shared/x", Method: "POST"}}, nil)
	require.NoError(t, err)
	assert.NotContains(t, st.Resources, "/shared")
	assert.Contains(t, st.Resources, "/shared/x")

	require.NoError(t, svc.DeleteRoutes(ctx, st))
	assert.Equal(t, []string{"/", "/shared"}, f.api.ResourcePaths(apiID))
}

func TestLambdaRouteServiceUpdateRoutesKeepsOwnedResources(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := f.routeService()
	apiID := f.api.AddRestApi("orders")
	target := models.LambdaTarget{FunctionName: testFunction}
	deploy := models.DeploymentConfig{StageName: "dev"}

	old, err := svc.EnsureRoutes(ctx, apiID, target, deploy, ordersRoutes, nil)
	require.NoError(t, err)

	// Same routes again: nothing is created, yet everything stays ours.
	st, err := svc.UpdateRoutes(ctx, old, target, deploy, ordersRoutes, nil)
	require.NoError(t, err)
	assert.Equal(t, old.Resources, st.Resources)

	require.NoError(t, svc.DeleteRoutes(ctx, st))
	assert.Equal(t, []string{"/"}, f.api.ResourcePaths(apiID))
}

func TestLambdaRouteServiceUpdateRoutesStageRename(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := f.routeService()
	apiID := f.api.AddRestApi("orders")
	target := models.LambdaTarget{FunctionName: testFunction}
	logs := &models.AccessLogConfig{Format: "$context.requestId"}

	old, err := svc.EnsureRoutes(ctx, apiID, target, models.DeploymentConfig{StageName: "dev"}, ordersRoutes, logs)
	require.NoError(t, err)

	st, err := svc.UpdateRoutes(ctx, old, target, models.DeploymentConfig{StageName: "qa"}, ordersRoutes, logs)
	require.NoError(t, err)

	assert.Equal(t, service.AccessLogGroupName(apiID, "qa"), st.AccessLogGroup)
	assert.Contains(t, f.logs.Groups, st.AccessLogGroup)
	assert.NotContains(t, f.logs.Groups, old.AccessLogGroup)

	devStage, ok := f.api.Stage(apiID, "dev")
	require.True(t, ok)
	assert.Nil(t, devStage.AccessLogSettings)
	qaStage, ok := f.api.Stage(apiID, "qa")
	require.True(t, ok)
	assert.NotNil(t, qaStage.AccessLogSettings)
}
