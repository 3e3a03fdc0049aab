package service

import (
	"context"
	"fmt"
	"maps"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
	"github.com/raywall/terraform-provider-apigw/provider/internal/client"
	"github.com/raywall/terraform-provider-apigw/provider/internal/models"
	"github.com/raywall/terraform-provider-apigw/provider/internal/repository"
)

// RestAPIService manages the lifecycle of a REST API, either built empty or
// imported from an OpenAPI definition.
type RestAPIService struct {
	APIGWRepo *repository.APIGWRepository
	S3Repo    *repository.S3Repository
	Client    *client.AWSClient // Region for the API ARN used by tagging
}

// Create creates the API. With a definition the API is imported first, then
// the properties and tags of req are applied on top of it. If that fails the
// imported API is returned along with the error so the caller can track it.
func (s *RestAPIService) Create(ctx context.Context, req *dto.CreateRestApiRequest, def models.APIDefinition) (*dto.RestApi, error) {
	if !def.IsSet() {
		return s.APIGWRepo.CreateRestApi(ctx, req)
	}

	body, err := s.loadBody(ctx, def)
	if err != nil {
		return nil, err
	}
	importReq := new(dto.ImportRestApiRequest).
		SetBody(body).
		SetFailOnWarnings(def.FailOnWarnings)
	if len(def.Parameters) > 0 {
		importReq.SetParameters(def.Parameters)
	}

	imported, err := s.APIGWRepo.ImportRestApi(ctx, importReq)
	if err != nil {
		return nil, err
	}

	updated, err := s.patch(ctx, imported, req)
	if err != nil {
		return imported, err
	}
	if err := s.syncTags(ctx, updated, req.Tags); err != nil {
		return imported, err
	}
	updated.Warnings = imported.Warnings
	return updated, nil
}

// Read returns the API, or nil when it no longer exists.
func (s *RestAPIService) Read(ctx context.Context, apiID string) (*dto.RestApi, error) {
	api, err := s.APIGWRepo.GetRestApi(ctx, new(dto.GetRestApiRequest).SetRestApiId(apiID))
	if err != nil {
		if repository.IsNotFound(err) {
			tflog.Warn(ctx, "rest api not found", map[string]interface{}{"rest_api_id": apiID})
			return nil, nil
		}
		return nil, err
	}
	return api, nil
}

// Update patches the API towards desired and reconciles its tags. Nothing is
// sent when the API already matches.
func (s *RestAPIService) Update(ctx context.Context, apiID string, desired *dto.CreateRestApiRequest) (*dto.RestApi, error) {
	current, err := s.APIGWRepo.GetRestApi(ctx, new(dto.GetRestApiRequest).SetRestApiId(apiID))
	if err != nil {
		return nil, err
	}
	updated, err := s.patch(ctx, current, desired)
	if err != nil {
		return nil, err
	}
	if err := s.syncTags(ctx, updated, desired.Tags); err != nil {
		return nil, err
	}
	return updated, nil
}

// syncTags moves the tags of api to desired and records the result on api.
// Tags are not part of the patchable properties of a REST API.
func (s *RestAPIService) syncTags(ctx context.Context, api *dto.RestApi, desired map[string]string) error {
	var removed []string
	for k := range api.Tags {
		if _, ok := desired[k]; !ok {
			removed = append(removed, k)
		}
	}
	sort.Strings(removed)
	changed := make(map[string]string)
	for k, v := range desired {
		if cur, ok := api.Tags[k]; !ok || cur != v {
			changed[k] = v
		}
	}
	if len(removed) == 0 && len(changed) == 0 {
		return nil
	}
	if s.Client == nil {
		return fmt.Errorf("tagging rest api: aws client is not configured")
	}

	arn := s.Client.RestAPIArn(aws.ToString(api.Id))
	if err := s.APIGWRepo.UntagResource(ctx, arn, removed); err != nil {
		return err
	}
	if err := s.APIGWRepo.TagResource(ctx, arn, changed); err != nil {
		return err
	}
	tflog.Debug(ctx, "rest api tags reconciled", map[string]interface{}{
		"rest_api_id": aws.ToString(api.Id),
		"removed":     len(removed),
		"changed":     len(changed),
	})

	api.Tags = nil
	if len(desired) > 0 {
		api.Tags = maps.Clone(desired)
	}
	return nil
}

func (s *RestAPIService) patch(ctx context.Context, current *dto.RestApi, desired *dto.CreateRestApiRequest) (*dto.RestApi, error) {
	ops := RestApiPatch(current, desired)
	if len(ops) == 0 {
		return current, nil
	}

	apiID := ""
	if current.Id != nil {
		apiID = *current.Id
	}
	tflog.Debug(ctx, "patching rest api", map[string]interface{}{
		"rest_api_id": apiID,
		"operations":  len(ops),
	})
	return s.APIGWRepo.UpdateRestApi(ctx, new(dto.UpdateRestApiRequest).
		SetRestApiId(apiID).
		SetPatchOperations(ops))
}

// PutDefinition replaces or merges the definition of an existing API.
func (s *RestAPIService) PutDefinition(ctx context.Context, apiID string, def models.APIDefinition, mode dto.PutMode) (*dto.RestApi, error) {
	body, err := s.loadBody(ctx, def)
	if err != nil {
		return nil, err
	}
	req := new(dto.PutRestApiRequest).
		SetRestApiId(apiID).
		SetMode(mode).
		SetFailOnWarnings(def.FailOnWarnings).
		SetBody(body)
	if len(def.Parameters) > 0 {
		req.SetParameters(def.Parameters)
	}
	return s.APIGWRepo.PutRestApi(ctx, req)
}

// Delete deletes the API. An API that is already gone is not an error.
func (s *RestAPIService) Delete(ctx context.Context, apiID string) error {
	return s.APIGWRepo.DeleteRestApi(ctx, new(dto.DeleteRestApiRequest).SetRestApiId(apiID))
}

func (s *RestAPIService) loadBody(ctx context.Context, def models.APIDefinition) ([]byte, error) {
	if def.Body != "" {
		return []byte(def.Body), nil
	}
	if def.BodyS3URI == "" {
		return nil, fmt.Errorf("api definition has neither body nor body_s3_uri")
	}
	if s.S3Repo == nil {
		return nil, fmt.Errorf("loading %s: s3 is not configured", def.BodyS3URI)
	}
	return s.S3Repo.GetObject(ctx, def.BodyS3URI)
}
