package service_test

import (
	"testing"
	"time"

	"github.com/raywall/terraform-provider-apigw/provider/internal/client"
	"github.com/raywall/terraform-provider-apigw/provider/internal/repository"
	"github.com/raywall/terraform-provider-apigw/provider/internal/repository/repositorytest"
	"github.com/raywall/terraform-provider-apigw/provider/internal/service"
)

const (
	testFunction = "orders-handler"
	testFnArn    = "arn:aws:lambda:us-east-1:123456789012:function:orders-handler"
	testRoleArn  = "arn:aws:iam::123456789012:role/apigw-invoke"
)

type fixture struct {
	api    *repositorytest.FakeAPIGateway
	lambda *repositorytest.FakeLambda
	logs   *repositorytest.FakeCloudWatchLogs
	iam    *repositorytest.FakeIAM
	s3     *repositorytest.FakeS3
	client *client.AWSClient
	repo   *repository.APIGWRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		api:    repositorytest.NewFakeAPIGateway(),
		lambda: repositorytest.NewFakeLambda(testFunction),
		logs:   repositorytest.NewFakeCloudWatchLogs(),
		iam:    &repositorytest.FakeIAM{Roles: map[string]string{"apigw-invoke": testRoleArn}},
		s3:     &repositorytest.FakeS3{Objects: map[string][]byte{}},
		client: &client.AWSClient{Region: "us-east-1", AccountID: "123456789012"},
	}
	f.repo = &repository.APIGWRepository{API: f.api}
	return f
}

func (f *fixture) apigwService() *service.APIGatewayService {
	return &service.APIGatewayService{APIGWRepo: f.repo, Client: f.client}
}

func (f *fixture) loggingService() *service.StageLoggingService {
	return &service.StageLoggingService{
		CWLogsRepo: &repository.CWLogsRepository{API: f.logs, RetentionTimeout: time.Second},
		APIGWRepo:  f.repo,
		Client:     f.client,
	}
}

func (f *fixture) routeService() *service.LambdaRouteService {
	return &service.LambdaRouteService{
		IAMService:        &service.IAMService{IAMRepo: &repository.IAMRepository{API: f.iam}},
		LoggingService:    f.loggingService(),
		APIGatewayService: f.apigwService(),
		LambdaRepo:        &repository.LambdaRepository{API: f.lambda},
		Client:            f.client,
	}
}

func (f *fixture) restAPIService() *service.RestAPIService {
	return &service.RestAPIService{
		APIGWRepo: f.repo,
		S3Repo:    &repository.S3Repository{API: f.s3},
		Client:    f.client,
	}
}
