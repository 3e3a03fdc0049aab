package resource

import (
	"context"
	"testing"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/terraform-provider-apigw/provider/internal/models"
)

func lambdaRoutesConfig(apiID string) map[string]interface{} {
	return map[string]interface{}{
		"api_gateway_id": "orders:" + apiID,
		"stage_name":     "dev",
		"stage_variables": map[string]interface{}{
			"env": "dev",
		},
		"lambda": []interface{}{
			map[string]interface{}{"function_name": testFunction},
		},
		"routes": []interface{}{
			map[string]interface{}{"path": "/orders", "method": "get"},
			map[string]interface{}{"path": "/orders/{id}", "method": "POST", "authorization": "aws_iam"},
		},
		"access_log_format":         `{"requestId":"$context.requestId"}`,
		"access_log_retention_days": 14,
	}
}

func TestResourceLambdaRoutesSchema(t *testing.T) {
	require.NoError(t, ResourceAPIGatewayLambdaRoutes().InternalValidate(nil, true))
}

func TestExtractConfig(t *testing.T) {
	d := schema.TestResourceDataRaw(t, ResourceAPIGatewayLambdaRoutes().Schema, lambdaRoutesConfig("a1b2c3"))

	target, deploy, routes, logs := extractConfig(d)
	assert.Equal(t, models.LambdaTarget{FunctionName: testFunction}, target)
	assert.Equal(t, "dev", deploy.StageName)
	assert.Equal(t, map[string]string{"env": "dev"}, deploy.Variables)
	require.Len(t, routes, 2)
	assert.Equal(t, "GET", routes[0].Method)
	assert.Equal(t, "NONE", routes[0].Authorization)
	assert.Equal(t, "AWS_IAM", routes[1].Authorization)
	require.NotNil(t, logs)
	assert.Equal(t, int32(14), logs.RetentionDays)

	cfg := lambdaRoutesConfig("a1b2c3")
	delete(cfg, "access_log_format")
	d = schema.TestResourceDataRaw(t, ResourceAPIGatewayLambdaRoutes().Schema, cfg)
	_, _, _, logs = extractConfig(d)
	assert.Nil(t, logs)
}

func TestResourceLambdaRoutesLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	apiID := env.api.AddRestApi("orders")

	d := schema.TestResourceDataRaw(t, ResourceAPIGatewayLambdaRoutes().Schema, lambdaRoutesConfig(apiID))

	diags := resourceLambdaRoutesCreate(ctx, d, env.bundle)
	require.False(t, diags.HasError(), "%v", diags)
	assert.Equal(t, apiID+"/"+testFunction, d.Id())
	assert.NotEmpty(t, d.Get("deployment_id"))
	assert.Equal(t, "https://"+apiID+".execute-api.us-east-1.amazonaws.com/dev", d.Get("invoke_url"))
	assert.Equal(t, []string{"/", "/orders", "/orders/{id}"}, env.api.ResourcePaths(apiID))

	st, err := readInternalState(d)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Len(t, st.Routes, 2)
	assert.NotEmpty(t, st.AccessLogGroup)
	assert.Contains(t, env.logs.Groups, st.AccessLogGroup)

	diags = resourceLambdaRoutesRead(ctx, d, env.bundle)
	require.False(t, diags.HasError(), "%v", diags)
	assert.NotEmpty(t, d.Id())

	diags = resourceLambdaRoutesDelete(ctx, d, env.bundle)
	require.False(t, diags.HasError(), "%v", diags)
	assert.Empty(t, d.Id())
	assert.Equal(t, []string{"/"}, env.api.ResourcePaths(apiID))
	assert.NotContains(t, env.logs.Groups, st.AccessLogGroup)
	assert.Empty(t, env.lambda.Statements[testFunction])
}

func TestResourceLambdaRoutesUpdatePrunesRoutes(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	apiID := env.api.AddRestApi("orders")

	d := schema.TestResourceDataRaw(t, ResourceAPIGatewayLambdaRoutes().Schema, lambdaRoutesConfig(apiID))
	diags := resourceLambdaRoutesCreate(ctx, d, env.bundle)
	require.False(t, diags.HasError(), "%v", diags)
	internal := d.Get("internal").(string)

	cfg := lambdaRoutesConfig(apiID)
	cfg["routes"] = []interface{}{
		map[string]interface{}{"path": "/orders", "method": "GET"},
	}
	delete(cfg, "access_log_format")
	upd := schema.TestResourceDataRaw(t, ResourceAPIGatewayLambdaRoutes().Schema, cfg)
	upd.SetId(d.Id())
	require.NoError(t, upd.Set("internal", internal))

	diags = resourceLambdaRoutesUpdate(ctx, upd, env.bundle)
	require.False(t, diags.HasError(), "%v", diags)

	assert.Equal(t, []string{"/", "/orders"}, env.api.ResourcePaths(apiID))
	st, err := readInternalState(upd)
	require.NoError(t, err)
	require.Len(t, st.Routes, 1)
	assert.Empty(t, st.AccessLogGroup)
	assert.Empty(t, env.logs.Groups)
}

func TestResourceLambdaRoutesReadRemovesMissingAPI(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	apiID := env.api.AddRestApi("orders")

	d := schema.TestResourceDataRaw(t, ResourceAPIGatewayLambdaRoutes().Schema, lambdaRoutesConfig(apiID))
	diags := resourceLambdaRoutesCreate(ctx, d, env.bundle)
	require.False(t, diags.HasError(), "%v", diags)

	delete(env.lambda.Functions, testFunction)

	diags = resourceLambdaRoutesRead(ctx, d, env.bundle)
	require.False(t, diags.HasError(), "%v", diags)
	assert.Empty(t, d.Id())
}

func TestReadInternalState(t *testing.T) {
	d := schema.TestResourceDataRaw(t, ResourceAPIGatewayLambdaRoutes().Schema, map[string]interface{}{})

	st, err := readInternalState(d)
	require.NoError(t, err)
	assert.Nil(t, st)

	require.NoError(t, d.Set("internal", "{not json"))
	_, err = readInternalState(d)
	assert.Error(t, err)
}
