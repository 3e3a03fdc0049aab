package main

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/resource"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"

	apigw "github.com/raywall/terraform-provider-apigw/provider"
)

const restAPIConfig = `
resource "apigw_rest_api" "test" {
  name               = %[1]q
  binary_media_types = ["image/png"]
  endpoint_types     = ["REGIONAL"]
  tags = {
    suite = "acceptance"
  }
}

resource "apigw_gateway_response" "unauthorized" {
  rest_api_id   = apigw_rest_api.test.id
  response_type = "UNAUTHORIZED"
  status_code   = "401"
  response_templates = {
    "application/json" = "{\"message\":$context.error.messageString}"
  }
}
`

// TestProviderAcceptance runs against a real account. It is skipped unless
// TF_ACC is set.
func TestProviderAcceptance(t *testing.T) {
	name := "apigw-acc-" + uuid.NewString()[:8]

	resource.Test(t, resource.TestCase{
		ProviderFactories: map[string]func() (*schema.Provider, error){
			"apigw": func() (*schema.Provider, error) { return apigw.Provider(), nil },
		},
		Steps: []resource.TestStep{
			{
				Config: fmt.Sprintf(restAPIConfig, name),
				Check: resource.ComposeTestCheckFunc(
					resource.TestCheckResourceAttr("apigw_rest_api.test", "name", name),
					resource.TestCheckResourceAttrSet("apigw_rest_api.test", "root_resource_id"),
					resource.TestCheckResourceAttr("apigw_gateway_response.unauthorized", "status_code", "401"),
				),
			},
		},
	})
}
