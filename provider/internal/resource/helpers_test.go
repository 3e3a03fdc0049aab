package resource

import (
	"testing"
	"time"

	"github.com/raywall/terraform-provider-apigw/provider/internal/client"
	"github.com/raywall/terraform-provider-apigw/provider/internal/repository"
	"github.com/raywall/terraform-provider-apigw/provider/internal/repository/repositorytest"
	"github.com/raywall/terraform-provider-apigw/provider/internal/service"
)

const testFunction = "orders-handler"

type testEnv struct {
	api    *repositorytest.FakeAPIGateway
	lambda *repositorytest.FakeLambda
	logs   *repositorytest.FakeCloudWatchLogs
	s3     *repositorytest.FakeS3
	bundle *ConfigurationBundle
}

// newTestEnv builds a bundle over in-memory fakes, the way
// NewConfigurationBundle does over real clients.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		api:    repositorytest.NewFakeAPIGateway(),
		lambda: repositorytest.NewFakeLambda(testFunction),
		logs:   repositorytest.NewFakeCloudWatchLogs(),
		s3:     &repositorytest.FakeS3{Objects: map[string][]byte{}},
	}
	c := &client.AWSClient{Region: "us-east-1", AccountID: "123456789012"}
	apigwRepo := &repository.APIGWRepository{API: env.api}

	env.bundle = &ConfigurationBundle{
		Client: c,
		RouteService: &service.LambdaRouteService{
			IAMService: &service.IAMService{IAMRepo: &repository.IAMRepository{API: &repositorytest.FakeIAM{}}},
			LoggingService: &service.StageLoggingService{
				CWLogsRepo: &repository.CWLogsRepository{API: env.logs, RetentionTimeout: time.Second},
				APIGWRepo:  apigwRepo,
				Client:     c,
			},
			APIGatewayService: &service.APIGatewayService{APIGWRepo: apigwRepo, Client: c},
			LambdaRepo:        &repository.LambdaRepository{API: env.lambda},
			Client:            c,
		},
		RestAPIService: &service.RestAPIService{
			APIGWRepo: apigwRepo,
			S3Repo:    &repository.S3Repository{API: env.s3},
			Client:    c,
		},
		ResponseService: &service.GatewayResponseService{APIGWRepo: apigwRepo},
	}
	return env
}
