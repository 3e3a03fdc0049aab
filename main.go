package main

import (
	"github.com/hashicorp/terraform-plugin-sdk/v2/plugin"

	apigw "github.com/raywall/terraform-provider-apigw/provider"
)

func main() {
	plugin.Serve(&plugin.ServeOpts{
		ProviderFunc: apigw.Provider,
	})
}
