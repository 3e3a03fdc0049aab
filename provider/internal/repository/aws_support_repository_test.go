package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/terraform-provider-apigw/provider/internal/repository"
	"github.com/raywall/terraform-provider-apigw/provider/internal/repository/repositorytest"
)

func TestParseS3URI(t *testing.T) {
	tests := []struct {
		uri     string
		bucket  string
		key     string
		wantErr bool
	}{
		{uri: "s3://specs/orders/openapi.json", bucket: "specs", key: "orders/openapi.json"},
		{uri: "s3://specs/a", bucket: "specs", key: "a"},
		{uri: "s3://specs", wantErr: true},
		{uri: "s3://specs/", wantErr: true},
		{uri: "s3:///key", wantErr: true},
		{uri: "https://specs.s3.amazonaws.com/a", wantErr: true},
		{uri: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			bucket, key, err := repository.ParseS3URI(tt.uri)
			if tt.wantErr {
				require.ErrorIs(t, err, repository.ErrInvalidS3URI)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestS3GetObject(t *testing.T) {
	repo := &repository.S3Repository{API: &repositorytest.FakeS3{Objects: map[string][]byte{
		"specs/orders.json": []byte(`{"openapi":"3.0.1"}`),
	}}}

	body, err := repo.GetObject(context.Background(), "s3://specs/orders.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"openapi":"3.0.1"}`, string(body))

	_, err = repo.GetObject(context.Background(), "s3://specs/missing.json")
	require.Error(t, err)
	assert.True(t, repository.IsNotFound(err))
}

func TestLambdaPermissions(t *testing.T) {
	ctx := context.Background()
	fake := repositorytest.NewFakeLambda("orders-handler")
	repo := &repository.LambdaRepository{API: fake}

	arn, err := repo.GetFunctionArn(ctx, "orders-handler")
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:lambda:us-east-1:123456789012:function:orders-handler", arn)

	_, err = repo.GetFunctionArn(ctx, "missing")
	assert.True(t, repository.IsNotFound(err))

	sourceArn := "arn:aws:execute-api:us-east-1:123456789012:abc123/*/*/*"
	sid, err := repo.AddPermission(ctx, "orders-handler", "abc123", sourceArn)
	require.NoError(t, err)
	assert.Equal(t, "apigateway-abc123", sid)
	assert.Equal(t, sourceArn, fake.Statements["orders-handler"][sid])

	// Re-adding the same statement is idempotent.
	_, err = repo.AddPermission(ctx, "orders-handler", "abc123", sourceArn)
	require.NoError(t, err)

	_, err = repo.AddPermission(ctx, "missing", "abc123", sourceArn)
	require.Error(t, err)

	require.NoError(t, repo.RemovePermission(ctx, "orders-handler", "abc123"))
	assert.Empty(t, fake.Statements["orders-handler"])
	require.NoError(t, repo.RemovePermission(ctx, "orders-handler", "abc123"))
}

func TestCreateLogGroupIfNotExists(t *testing.T) {
	ctx := context.Background()
	fake := repositorytest.NewFakeCloudWatchLogs()
	fake.RetentionNotFound = 1
	repo := &repository.CWLogsRepository{API: fake, RetentionTimeout: 10 * time.Second}

	require.NoError(t, repo.CreateLogGroupIfNotExists(ctx, "/aws/apigateway/orders", 14))
	assert.Equal(t, int32(14), fake.Groups["/aws/apigateway/orders"])

	// Existing group: only the retention changes.
	require.NoError(t, repo.CreateLogGroupIfNotExists(ctx, "/aws/apigateway/orders", 30))
	assert.Equal(t, int32(30), fake.Groups["/aws/apigateway/orders"])

	require.NoError(t, repo.CreateLogGroupIfNotExists(ctx, "/aws/apigateway/forever", 0))
	assert.Equal(t, int32(0), fake.Groups["/aws/apigateway/forever"])

	require.NoError(t, repo.DeleteLogGroup(ctx, "/aws/apigateway/orders"))
	require.NoError(t, repo.DeleteLogGroup(ctx, "/aws/apigateway/orders"))
	assert.NotContains(t, fake.Groups, "/aws/apigateway/orders")
}

func TestGetRoleArn(t *testing.T) {
	ctx := context.Background()
	repo := &repository.IAMRepository{API: &repositorytest.FakeIAM{Roles: map[string]string{
		"apigw-invoke": "arn:aws:iam::123456789012:role/apigw-invoke",
	}}}

	arn, err := repo.GetRoleArn(ctx, "apigw-invoke")
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:iam::123456789012:role/apigw-invoke", arn)

	arn, err = repo.GetRoleArn(ctx, "arn:aws:iam::123456789012:role/other")
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:iam::123456789012:role/other", arn)

	_, err = repo.GetRoleArn(ctx, "missing")
	require.Error(t, err)
	assert.True(t, repository.IsNotFound(err))
}
