package resource

import (
	"fmt"

	"github.com/raywall/terraform-provider-apigw/provider/internal/client"
	"github.com/raywall/terraform-provider-apigw/provider/internal/repository"
	"github.com/raywall/terraform-provider-apigw/provider/internal/service"
)

// ConfigurationBundle is the provider meta handed to every resource.
type ConfigurationBundle struct {
	Client          *client.AWSClient
	RouteService    *service.LambdaRouteService
	RestAPIService  *service.RestAPIService
	ResponseService *service.GatewayResponseService
}

// NewConfigurationBundle wires repositories and services on top of c.
func NewConfigurationBundle(c *client.AWSClient) *ConfigurationBundle {
	routes := service.NewLambdaRouteService(c)
	apigwRepo := routes.APIGatewayService.APIGWRepo
	return &ConfigurationBundle{
		Client:       c,
		RouteService: routes,
		RestAPIService: &service.RestAPIService{
			APIGWRepo: apigwRepo,
			S3Repo:    &repository.S3Repository{API: c.S3},
			Client:    c,
		},
		ResponseService: &service.GatewayResponseService{APIGWRepo: apigwRepo},
	}
}

func bundleFrom(m interface{}) (*ConfigurationBundle, error) {
	bundle, ok := m.(*ConfigurationBundle)
	if !ok || bundle == nil {
		return nil, fmt.Errorf("provider not configured")
	}
	return bundle, nil
}
