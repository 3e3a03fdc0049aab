package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	gwtypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/retry"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
	"github.com/raywall/terraform-provider-apigw/provider/internal/models"
)

// DefaultDeleteInterval spaces DeleteResource calls, which API Gateway throttles aggressively.
const DefaultDeleteInterval = 200 * time.Millisecond

// APIGWRepository projects API Gateway records onto the AWS API Gateway (v1) client.
type APIGWRepository struct {
	API APIGatewayAPI

	// DeleteInterval is the pause between resource deletions.
	DeleteInterval time.Duration
	// ThrottleTimeout bounds the retries of throttled calls. Zero disables retrying.
	ThrottleTimeout time.Duration
}

// NewAPIGWRepository returns a repository with the production pacing defaults.
func NewAPIGWRepository(api APIGatewayAPI) *APIGWRepository {
	return &APIGWRepository{
		API:             api,
		DeleteInterval:  DefaultDeleteInterval,
		ThrottleTimeout: 2 * time.Minute,
	}
}

// GetResources lists every resource of a REST API, following pagination.
func (r *APIGWRepository) GetResources(ctx context.Context, apiID string) ([]dto.Resource, error) {
	items, err := r.listResources(ctx, apiID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.Resource, 0, len(items))
	for _, it := range items {
		out = append(out, fromResource(it))
	}
	return out, nil
}

// GetRootResourceID returns the ID of the "/" resource.
func (r *APIGWRepository) GetRootResourceID(ctx context.Context, apiID string) (string, error) {
	id, err := r.findResourceByPath(ctx, apiID, "/")
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("%w: api %s", ErrRootResourceNotFound, apiID)
	}
	return id, nil
}

// EnsurePath creates every missing segment of path and returns the ID of the
// last one together with the resources it created. Segments that already
// existed, or that another writer created first, belong to someone else and
// are left out so a teardown never deletes them.
func (r *APIGWRepository) EnsurePath(ctx context.Context, apiID, rootID, path string) (string, map[string]models.ResourceInfo, error) {
	path = strings.Trim(path, "/")
	resources := make(map[string]models.ResourceInfo)

	if path == "" {
		return rootID, resources, nil
	}

	existing, err := r.resourcesByPath(ctx, apiID)
	if err != nil {
		return "", nil, err
	}

	currentParentID := rootID
	currentPath := ""

	for _, part := range strings.Split(path, "/") {
		currentPath = currentPath + "/" + part

		if id, ok := existing[currentPath]; ok {
			currentParentID = id
			continue
		}

		result, err := r.API.CreateResource(ctx, &apigw.CreateResourceInput{
			RestApiId: aws.String(apiID),
			ParentId:  aws.String(currentParentID),
			PathPart:  aws.String(part),
		})
		if err != nil {
			if IsConflict(err) {
				// Created concurrently by another writer.
				id, ferr := r.findResourceByPath(ctx, apiID, currentPath)
				if ferr == nil && id != "" {
					currentParentID = id
					existing[currentPath] = id
					continue
				}
			}
			return "", nil, fmt.Errorf("CreateResource failed for path %s: %w", currentPath, err)
		}

		currentParentID = aws.ToString(result.Id)
		existing[currentPath] = currentParentID
		resources[currentPath] = models.ResourceInfo{ResourceID: currentParentID, PathPart: part}

		tflog.Debug(ctx, "created api gateway resource", map[string]interface{}{
			"rest_api_id": apiID,
			"path":        currentPath,
			"resource_id": currentParentID,
		})
	}

	return currentParentID, resources, nil
}

// PutMethod creates a method on a resource. An existing method is left as is.
func (r *APIGWRepository) PutMethod(ctx context.Context, in *dto.PutMethodRequest) (*dto.PutMethodResult, error) {
	out, err := r.API.PutMethod(ctx, toPutMethodInput(in))
	if err != nil {
		if IsConflict(err) {
			tflog.Debug(ctx, "method already exists", map[string]interface{}{
				"resource_id": aws.ToString(in.ResourceId),
				"http_method": aws.ToString(in.HttpMethod),
			})
			return nil, nil
		}
		return nil, fmt.Errorf("PutMethod failed: %w", err)
	}
	return fromPutMethodOutput(out), nil
}

// DeleteMethod deletes a method. A method that is already gone is not an error.
func (r *APIGWRepository) DeleteMethod(ctx context.Context, apiID, resourceID, httpMethod string) error {
	err := r.withThrottleRetry(ctx, func() error {
		_, err := r.API.DeleteMethod(ctx, &apigw.DeleteMethodInput{
			RestApiId:  aws.String(apiID),
			ResourceId: aws.String(resourceID),
			HttpMethod: aws.String(httpMethod),
		})
		return err
	})
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("DeleteMethod failed: %w", err)
	}
	return nil
}

// DeleteResources deletes the given resources deepest first. Failures are
// logged and skipped so that one shared parent cannot block the teardown.
func (r *APIGWRepository) DeleteResources(ctx context.Context, apiID string, resources map[string]models.ResourceInfo) error {
	if len(resources) == 0 {
		return nil
	}

	paths := make([]string, 0, len(resources))
	for path := range resources {
		paths = append(paths, path)
	}
	sort.Slice(paths, func(i, j int) bool {
		di, dj := strings.Count(paths[i], "/"), strings.Count(paths[j], "/")
		if di != dj {
			return di > dj
		}
		return paths[i] < paths[j]
	})

	for i, path := range paths {
		if i > 0 && r.DeleteInterval > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.DeleteInterval):
			}
		}

		res := resources[path]
		err := r.withThrottleRetry(ctx, func() error {
			_, err := r.API.DeleteResource(ctx, &apigw.DeleteResourceInput{
				RestApiId:  aws.String(apiID),
				ResourceId: aws.String(res.ResourceID),
			})
			return err
		})
		if err != nil && !IsNotFound(err) {
			tflog.Warn(ctx, "failed to delete api gateway resource", map[string]interface{}{
				"path":        path,
				"resource_id": res.ResourceID,
				"error":       err.Error(),
			})
		}
	}

	return nil
}

func (r *APIGWRepository) listResources(ctx context.Context, apiID string) ([]gwtypes.Resource, error) {
	var items []gwtypes.Resource
	p := apigw.NewGetResourcesPaginator(r.API, &apigw.GetResourcesInput{
		RestApiId: aws.String(apiID),
		Limit:     aws.Int32(500),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("GetResources failed for api %s: %w", apiID, err)
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

func (r *APIGWRepository) resourcesByPath(ctx context.Context, apiID string) (map[string]string, error) {
	items, err := r.listResources(ctx, apiID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(items))
	for _, it := range items {
		out[aws.ToString(it.Path)] = aws.ToString(it.Id)
	}
	return out, nil
}

// findResourceByPath returns "" with a nil error when path does not exist.
func (r *APIGWRepository) findResourceByPath(ctx context.Context, apiID, path string) (string, error) {
	byPath, err := r.resourcesByPath(ctx, apiID)
	if err != nil {
		return "", err
	}
	return byPath[path], nil
}

// withThrottleRetry retries fn while API Gateway answers TooManyRequestsException.
func (r *APIGWRepository) withThrottleRetry(ctx context.Context, fn func() error) error {
	if r.ThrottleTimeout <= 0 {
		return fn()
	}
	return retry.RetryContext(ctx, r.ThrottleTimeout, func() *retry.RetryError {
		err := fn()
		if err == nil {
			return nil
		}
		if isAPIErrorCode(err, "TooManyRequestsException") {
			return retry.RetryableError(err)
		}
		return retry.NonRetryableError(err)
	})
}
