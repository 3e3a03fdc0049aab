package apigw

import (
	"context"
	"testing"

	"github.com/hashicorp/terraform-plugin-sdk/v2/terraform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider(t *testing.T) {
	require.NoError(t, Provider().InternalValidate())
}

func TestProviderResources(t *testing.T) {
	p := Provider()
	for _, name := range []string{"apigw_rest_api", "apigw_gateway_response", "apigw_lambda_routes"} {
		assert.Contains(t, p.ResourcesMap, name)
	}
}

func TestProviderConfigurePartialCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	p := Provider()
	diags := p.Configure(context.Background(), terraform.NewResourceConfigRaw(map[string]interface{}{
		"region":     "us-east-1",
		"access_key": "AKIAEXAMPLE",
	}))
	require.True(t, diags.HasError())
	assert.Contains(t, diags[0].Summary, "access_key and secret_key must be set together")
}
