package apigw

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-sdk/v2/diag"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"

	"github.com/raywall/terraform-provider-apigw/provider/internal/client"
	"github.com/raywall/terraform-provider-apigw/provider/internal/resource"
)

// Provider returns the provider schema and its resources.
func Provider() *schema.Provider {
	return &schema.Provider{
		Schema: map[string]*schema.Schema{
			"region": {
				Type:        schema.TypeString,
				Optional:    true,
				DefaultFunc: schema.MultiEnvDefaultFunc([]string{"AWS_REGION", "AWS_DEFAULT_REGION"}, ""),
				Description: "AWS region to use for resources",
			},
			"profile": {
				Type:        schema.TypeString,
				Optional:    true,
				DefaultFunc: schema.EnvDefaultFunc("AWS_PROFILE", ""),
				Description: "Shared config profile",
			},
			"access_key": {
				Type:        schema.TypeString,
				Optional:    true,
				DefaultFunc: schema.EnvDefaultFunc("AWS_ACCESS_KEY_ID", ""),
			},
			"secret_key": {
				Type:        schema.TypeString,
				Optional:    true,
				Sensitive:   true,
				DefaultFunc: schema.EnvDefaultFunc("AWS_SECRET_ACCESS_KEY", ""),
			},
		},
		ResourcesMap: map[string]*schema.Resource{
			"apigw_rest_api":         resource.ResourceRestAPI(),
			"apigw_gateway_response": resource.ResourceGatewayResponse(),
			"apigw_lambda_routes":    resource.ResourceAPIGatewayLambdaRoutes(),
		},
		ConfigureContextFunc: providerConfigure,
	}
}

func providerConfigure(ctx context.Context, d *schema.ResourceData) (interface{}, diag.Diagnostics) {
	cfg := client.Config{
		Region:    d.Get("region").(string),
		Profile:   d.Get("profile").(string),
		AccessKey: d.Get("access_key").(string),
		SecretKey: d.Get("secret_key").(string),
	}

	awsClient, err := client.New(ctx, cfg)
	if err != nil {
		return nil, diag.FromErr(fmt.Errorf("failed to create aws client: %w", err))
	}

	return resource.NewConfigurationBundle(awsClient), nil
}
