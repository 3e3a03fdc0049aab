package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	gwtypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
	"github.com/raywall/terraform-provider-apigw/provider/internal/models"
	"github.com/raywall/terraform-provider-apigw/provider/internal/repository"
	"github.com/raywall/terraform-provider-apigw/provider/internal/repository/repositorytest"
)

func newRepo(t *testing.T) (*repository.APIGWRepository, *repositorytest.FakeAPIGateway, string) {
	t.Helper()
	fake := repositorytest.NewFakeAPIGateway()
	apiID := fake.AddRestApi("orders")
	return &repository.APIGWRepository{API: fake}, fake, apiID
}

func TestGetRootResourceID(t *testing.T) {
	repo, fake, apiID := newRepo(t)
	fake.PageSize = 1

	_, _, err := repo.EnsurePath(context.Background(), apiID, mustRoot(t, repo, apiID), "/a/b/c")
	require.NoError(t, err)

	rootID, err := repo.GetRootResourceID(context.Background(), apiID)
	require.NoError(t, err)
	assert.NotEmpty(t, rootID)

	// One page per resource plus the initial lookups.
	assert.Greater(t, len(fake.Inputs("GetResources")), 4)
}

func TestGetRootResourceIDUnknownAPI(t *testing.T) {
	repo, _, _ := newRepo(t)

	_, err := repo.GetRootResourceID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, repository.IsNotFound(err))
}

func mustRoot(t *testing.T, repo *repository.APIGWRepository, apiID string) string {
	t.Helper()
	rootID, err := repo.GetRootResourceID(context.Background(), apiID)
	require.NoError(t, err)
	return rootID
}

func TestEnsurePath(t *testing.T) {
	ctx := context.Background()
	repo, fake, apiID := newRepo(t)
	rootID := mustRoot(t, repo, apiID)

	leafID, resources, err := repo.EnsurePath(ctx, apiID, rootID, "/orders/{id}/items")
	require.NoError(t, err)

	assert.Equal(t, []string{"/", "/orders", "/orders/{id}", "/orders/{id}/items"}, fake.ResourcePaths(apiID))
	require.Len(t, resources, 3)
	assert.Equal(t, leafID, resources["/orders/{id}/items"].ResourceID)
	assert.Equal(t, "{id}", resources["/orders/{id}"].PathPart)
	assert.Len(t, fake.Inputs("CreateResource"), 3)

	// A second route sharing the prefix reuses the existing segments and
	// does not claim them.
	_, resources, err = repo.EnsurePath(ctx, apiID, rootID, "orders/{id}/")
	require.NoError(t, err)
	assert.Empty(t, resources)
	assert.Len(t, fake.Inputs("CreateResource"), 3)
}

func TestEnsurePathRootOnly(t *testing.T) {
	repo, fake, apiID := newRepo(t)
	rootID := mustRoot(t, repo, apiID)

	id, resources, err := repo.EnsurePath(context.Background(), apiID, rootID, "/")
	require.NoError(t, err)
	assert.Equal(t, rootID, id)
	assert.Empty(t, resources)
	assert.Empty(t, fake.Inputs("CreateResource"))
}

// racingAPI creates the resource itself on the first CreateResource and then
// reports a conflict, as if another writer had won the race.
type racingAPI struct {
	*repositorytest.FakeAPIGateway
	raced bool
}

func (r *racingAPI) CreateResource(ctx context.Context, in *apigw.CreateResourceInput, optFns ...func(*apigw.Options)) (*apigw.CreateResourceOutput, error) {
	if !r.raced {
		r.raced = true
		if _, err := r.FakeAPIGateway.CreateResource(ctx, in, optFns...); err != nil {
			return nil, err
		}
		return nil, &gwtypes.ConflictException{Message: aws.String("Another resource with the same parent already has this name")}
	}
	return r.FakeAPIGateway.CreateResource(ctx, in, optFns...)
}

func TestEnsurePathConcurrentCreateConflict(t *testing.T) {
	ctx := context.Background()
	fake := repositorytest.NewFakeAPIGateway()
	apiID := fake.AddRestApi("orders")
	repo := &repository.APIGWRepository{API: &racingAPI{FakeAPIGateway: fake}}
	rootID := mustRoot(t, repo, apiID)

	id, resources, err := repo.EnsurePath(ctx, apiID, rootID, "/health/live")
	require.NoError(t, err)
	assert.Equal(t, id, resources["/health/live"].ResourceID)
	assert.NotContains(t, resources, "/health", "a segment another writer created is not ours")
	assert.Equal(t, []string{"/", "/health", "/health/live"}, fake.ResourcePaths(apiID))
}

func TestEnsurePathCreateFailure(t *testing.T) {
	repo, fake, apiID := newRepo(t)
	rootID := mustRoot(t, repo, apiID)
	fake.Errors["CreateResource"] = &gwtypes.BadRequestException{Message: aws.String("bad path part")}

	_, _, err := repo.EnsurePath(context.Background(), apiID, rootID, "/bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CreateResource failed for path /bad")
}

func TestPutMethodIgnoresExisting(t *testing.T) {
	ctx := context.Background()
	repo, _, apiID := newRepo(t)
	rootID := mustRoot(t, repo, apiID)

	req := new(dto.PutMethodRequest).
		SetRestApiId(apiID).
		SetResourceId(rootID).
		SetHttpMethod("GET").
		SetAuthorizationType("NONE").
		SetApiKeyRequired(true)

	got, err := repo.PutMethod(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "GET", aws.ToString(got.HttpMethod))
	assert.True(t, aws.ToBool(got.ApiKeyRequired))

	got, err = repo.PutMethod(ctx, req)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteMethodMissingIsNotAnError(t *testing.T) {
	repo, _, apiID := newRepo(t)
	rootID := mustRoot(t, repo, apiID)

	require.NoError(t, repo.DeleteMethod(context.Background(), apiID, rootID, "DELETE"))
}

func TestDeleteMethodRetriesThrottling(t *testing.T) {
	ctx := context.Background()
	repo, fake, apiID := newRepo(t)
	repo.ThrottleTimeout = 10 * time.Second
	rootID := mustRoot(t, repo, apiID)

	_, err := repo.PutMethod(ctx, new(dto.PutMethodRequest).
		SetRestApiId(apiID).SetResourceId(rootID).SetHttpMethod("GET").SetAuthorizationType("NONE"))
	require.NoError(t, err)

	fake.Errors["DeleteMethod"] = &gwtypes.TooManyRequestsException{Message: aws.String("slow down")}

	require.NoError(t, repo.DeleteMethod(ctx, apiID, rootID, "GET"))
	assert.Len(t, fake.Inputs("DeleteMethod"), 2)
	_, ok := fake.Method(apiID, "/", "GET")
	assert.False(t, ok)
}

func TestDeleteResourcesDeepestFirst(t *testing.T) {
	ctx := context.Background()
	repo, fake, apiID := newRepo(t)
	rootID := mustRoot(t, repo, apiID)

	all := map[string]models.ResourceInfo{}
	for _, p := range []string{"/a/b/c", "/a/d"} {
		_, resources, err := repo.EnsurePath(ctx, apiID, rootID, p)
		require.NoError(t, err)
		for k, v := range resources {
			all[k] = v
		}
	}

	require.NoError(t, repo.DeleteResources(ctx, apiID, all))

	var order []string
	byID := map[string]string{}
	for path, info := range all {
		byID[info.ResourceID] = path
	}
	for _, in := range fake.Inputs("DeleteResource") {
		order = append(order, byID[aws.ToString(in.(*apigw.DeleteResourceInput).ResourceId)])
	}
	assert.Equal(t, []string{"/a/b/c", "/a/b", "/a/d", "/a"}, order)
	assert.Equal(t, []string{"/"}, fake.ResourcePaths(apiID))
}

func TestDeleteResourcesLogsAndContinues(t *testing.T) {
	ctx := context.Background()
	repo, fake, apiID := newRepo(t)
	rootID := mustRoot(t, repo, apiID)

	_, resources, err := repo.EnsurePath(ctx, apiID, rootID, "/x/y")
	require.NoError(t, err)
	fake.Errors["DeleteResource"] = &gwtypes.BadRequestException{Message: aws.String("in use")}
	fake.Sticky = true

	require.NoError(t, repo.DeleteResources(ctx, apiID, resources))
	assert.Len(t, fake.Inputs("DeleteResource"), 2)
	assert.Equal(t, []string{"/", "/x", "/x/y"}, fake.ResourcePaths(apiID))
}

func TestDeleteResourcesHonoursContext(t *testing.T) {
	repo, _, apiID := newRepo(t)
	repo.DeleteInterval = time.Hour
	rootID := mustRoot(t, repo, apiID)

	_, resources, err := repo.EnsurePath(context.Background(), apiID, rootID, "/x/y")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, repo.DeleteResources(ctx, apiID, resources), context.DeadlineExceeded)
}

func TestGetResourcesConvertsMethods(t *testing.T) {
	ctx := context.Background()
	repo, _, apiID := newRepo(t)
	rootID := mustRoot(t, repo, apiID)

	_, err := repo.PutMethod(ctx, new(dto.PutMethodRequest).
		SetRestApiId(apiID).SetResourceId(rootID).SetHttpMethod("ANY").SetAuthorizationType("AWS_IAM"))
	require.NoError(t, err)

	resources, err := repo.GetResources(ctx, apiID)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "/", aws.ToString(resources[0].Path))
	require.Contains(t, resources[0].ResourceMethods, "ANY")
	assert.Equal(t, "AWS_IAM", aws.ToString(resources[0].ResourceMethods["ANY"].AuthorizationType))
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		err      error
		notFound bool
		conflict bool
	}{
		{err: &gwtypes.NotFoundException{}, notFound: true},
		{err: fmt.Errorf("wrapped: %w", &gwtypes.NotFoundException{}), notFound: true},
		{err: &gwtypes.ConflictException{}, conflict: true},
		{err: fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", &gwtypes.ConflictException{})), conflict: true},
		{err: &gwtypes.BadRequestException{}},
		{err: fmt.Errorf("NotFoundException in text only")},
		{err: nil},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			assert.Equal(t, tt.notFound, repository.IsNotFound(tt.err))
			assert.Equal(t, tt.conflict, repository.IsConflict(tt.err))
		})
	}
}
