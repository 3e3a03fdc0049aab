package resource

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	gwtypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"github.com/hashicorp/terraform-plugin-sdk/v2/diag"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceRestAPISchema(t *testing.T) {
	require.NoError(t, ResourceRestAPI().InternalValidate(nil, true))
}

func TestResourceRestAPICreatePlain(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	d := schema.TestResourceDataRaw(t, ResourceRestAPI().Schema, map[string]interface{}{
		"name":                     "orders",
		"description":              "orders API",
		"binary_media_types":       []interface{}{"image/png"},
		"minimum_compression_size": 1024,
		"endpoint_types":           []interface{}{"REGIONAL"},
		"tags":                     map[string]interface{}{"team": "payments"},
	})

	diags := resourceRestAPICreate(ctx, d, env.bundle)
	require.False(t, diags.HasError(), "%v", diags)
	require.NotEmpty(t, d.Id())

	in := env.api.Inputs("CreateRestApi")
	require.Len(t, in, 1)
	create := in[0].(*apigw.CreateRestApiInput)
	assert.Equal(t, "orders", aws.ToString(create.Name))
	assert.Equal(t, int32(1024), aws.ToInt32(create.MinimumCompressionSize))
	assert.Equal(t, []gwtypes.EndpointType{gwtypes.EndpointTypeRegional}, create.EndpointConfiguration.Types)
	assert.Equal(t, map[string]string{"team": "payments"}, create.Tags)

	assert.Equal(t, "orders API", d.Get("description"))
	assert.Equal(t, "HEADER", d.Get("api_key_source"))
	assert.Equal(t, 1024, d.Get("minimum_compression_size"))
	assert.NotEmpty(t, d.Get("root_resource_id"))
	assert.Equal(t, "arn:aws:execute-api:us-east-1:123456789012:"+d.Id(), d.Get("execution_arn"))
	assert.Empty(t, env.api.Inputs("ImportRestApi"))
}

func TestResourceRestAPICreateFromBody(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	d := schema.TestResourceDataRaw(t, ResourceRestAPI().Schema, map[string]interface{}{
		"name":             "orders",
		"body":             `{"openapi":"3.0.1","info":{"title":"orders-imported"}}`,
		"fail_on_warnings": false,
	})

	diags := resourceRestAPICreate(ctx, d, env.bundle)
	require.False(t, diags.HasError(), "%v", diags)

	var warnings []diag.Diagnostic
	for _, dg := range diags {
		if dg.Severity == diag.Warning {
			warnings = append(warnings, dg)
		}
	}
	require.Len(t, warnings, 1)
	assert.Equal(t, "imported by fake", warnings[0].Detail)
	assert.Equal(t, []interface{}{"imported by fake"}, d.Get("warnings"))

	assert.Len(t, env.api.Inputs("ImportRestApi"), 1)
	assert.Equal(t, "orders", d.Get("name"), "the configured name wins over the definition title")
}

func TestResourceRestAPICreateFromS3(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.s3.Objects["specs/orders.json"] = []byte(`{"openapi":"3.0.1","info":{"title":"orders"}}`)

	d := schema.TestResourceDataRaw(t, ResourceRestAPI().Schema, map[string]interface{}{
		"name":        "orders",
		"body_s3_uri": "s3://specs/orders.json",
	})

	diags := resourceRestAPICreate(ctx, d, env.bundle)
	require.False(t, diags.HasError(), "%v", diags)
	assert.Len(t, env.api.Inputs("ImportRestApi"), 1)
}

func TestResourceRestAPIReadRemovesDeleted(t *testing.T) {
	env := newTestEnv(t)
	d := schema.TestResourceDataRaw(t, ResourceRestAPI().Schema, map[string]interface{}{"name": "orders"})
	d.SetId("missing")

	diags := resourceRestAPIRead(context.Background(), d, env.bundle)
	require.False(t, diags.HasError(), "%v", diags)
	assert.Empty(t, d.Id())
}

func TestResourceRestAPIUpdate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	apiID := env.api.AddRestApi("orders")

	d := schema.TestResourceDataRaw(t, ResourceRestAPI().Schema, map[string]interface{}{
		"name":                         "orders-v2",
		"binary_media_types":           []interface{}{"application/pdf"},
		"disable_execute_api_endpoint": true,
	})
	d.SetId(apiID)

	diags := resourceRestAPIUpdate(ctx, d, env.bundle)
	require.False(t, diags.HasError(), "%v", diags)

	updates := env.api.Inputs("UpdateRestApi")
	require.Len(t, updates, 1)
	assert.NotEmpty(t, updates[0].(*apigw.UpdateRestApiInput).PatchOperations)
	assert.Empty(t, env.api.Inputs("PutRestApi"))

	assert.Equal(t, "orders-v2", d.Get("name"))
	assert.Equal(t, true, d.Get("disable_execute_api_endpoint"))
	assert.Equal(t, []interface{}{"application/pdf"}, d.Get("binary_media_types").(*schema.Set).List())
}

func TestResourceRestAPIUpdatePutsDefinition(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	apiID := env.api.AddRestApi("orders")

	d := schema.TestResourceDataRaw(t, ResourceRestAPI().Schema, map[string]interface{}{
		"name": "orders",
		"body": `{"openapi":"3.0.1","info":{"title":"orders"}}`,
	})
	d.SetId(apiID)

	diags := resourceRestAPIUpdate(ctx, d, env.bundle)
	require.False(t, diags.HasError(), "%v", diags)

	puts := env.api.Inputs("PutRestApi")
	require.Len(t, puts, 1)
	assert.Equal(t, gwtypes.PutModeOverwrite, puts[0].(*apigw.PutRestApiInput).Mode)
}

func TestResourceRestAPIDelete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	apiID := env.api.AddRestApi("orders")

	d := schema.TestResourceDataRaw(t, ResourceRestAPI().Schema, map[string]interface{}{"name": "orders"})
	d.SetId(apiID)

	diags := resourceRestAPIDelete(ctx, d, env.bundle)
	require.False(t, diags.HasError(), "%v", diags)
	assert.Empty(t, d.Id())

	d.SetId(apiID)
	diags = resourceRestAPIDelete(ctx, d, env.bundle)
	assert.False(t, diags.HasError(), "deleting twice is not an error")
}

func TestResourceRestAPINotConfigured(t *testing.T) {
	d := schema.TestResourceDataRaw(t, ResourceRestAPI().Schema, map[string]interface{}{"name": "orders"})
	diags := resourceRestAPICreate(context.Background(), d, nil)
	require.True(t, diags.HasError())
	assert.Contains(t, diags[0].Summary, "provider not configured")
}

func TestResourceRestAPICreateFromBodyKeepsTags(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	d := schema.TestResourceDataRaw(t, ResourceRestAPI().Schema, map[string]interface{}{
		"name": "orders",
		"body": `{"openapi":"3.0.1","info":{"title":"orders"}}`,
		"tags": map[string]interface{}{"env": "prod"},
	})

	diags := resourceRestAPICreate(ctx, d, env.bundle)
	require.False(t, diags.HasError(), "%v", diags)
	assert.Equal(t, map[string]interface{}{"env": "prod"}, d.Get("tags"))
	assert.Len(t, env.api.Inputs("TagResource"), 1)
}

func TestResourceRestAPIUpdateRemovesPolicy(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	policy := `{"Version":"2012-10-17"}`

	d := schema.TestResourceDataRaw(t, ResourceRestAPI().Schema, map[string]interface{}{
		"name":   "orders",
		"policy": policy,
	})
	diags := resourceRestAPICreate(ctx, d, env.bundle)
	require.False(t, diags.HasError(), "%v", diags)
	require.Equal(t, policy, d.Get("policy"))

	upd := schema.TestResourceDataRaw(t, ResourceRestAPI().Schema, map[string]interface{}{"name": "orders"})
	upd.SetId(d.Id())
	diags = resourceRestAPIUpdate(ctx, upd, env.bundle)
	require.False(t, diags.HasError(), "%v", diags)

	updates := env.api.Inputs("UpdateRestApi")
	require.Len(t, updates, 1)
	ops := updates[0].(*apigw.UpdateRestApiInput).PatchOperations
	require.Len(t, ops, 1)
	assert.Equal(t, "/policy", aws.ToString(ops[0].Path))
	assert.Equal(t, "", aws.ToString(ops[0].Value))
	assert.Equal(t, "", upd.Get("policy"))
}
