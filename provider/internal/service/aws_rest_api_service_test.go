package service_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
	"github.com/raywall/terraform-provider-apigw/provider/internal/models"
)

const petstore = `{"openapi":"3.0.1","info":{"title":"petstore","version":"1"},"paths":{}}`

func TestRestAPIServiceCreatePlain(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	name := "orders-" + uuid.NewString()

	api, err := f.restAPIService().Create(ctx, new(dto.CreateRestApiRequest).SetName(name), models.APIDefinition{})
	require.NoError(t, err)
	assert.Equal(t, name, aws.ToString(api.Name))
	assert.Equal(t, []string{"CreateRestApi"}, f.api.Ops())
}

func TestRestAPIServiceCreateFromBody(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	req := new(dto.CreateRestApiRequest).
		SetName("pets").
		SetDescription("imported").
		AddBinaryMediaTypes("image/png")
	api, err := f.restAPIService().Create(ctx, req, models.APIDefinition{
		Body:       petstore,
		Parameters: map[string]string{"endpointConfigurationTypes": "REGIONAL"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"ImportRestApi", "UpdateRestApi"}, f.api.Ops())
	assert.Equal(t, "pets", aws.ToString(api.Name))
	assert.Equal(t, "imported", aws.ToString(api.Description))
	assert.Equal(t, []string{"image/png"}, api.BinaryMediaTypes)
	assert.Equal(t, []string{"imported by fake"}, api.Warnings)

	in := f.api.Inputs("ImportRestApi")[0].(*apigw.ImportRestApiInput)
	assert.JSONEq(t, petstore, string(in.Body))
	assert.Equal(t, "REGIONAL", in.Parameters["endpointConfigurationTypes"])
}

func TestRestAPIServiceCreateFromS3(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.s3.Objects["specs/petstore.json"] = []byte(petstore)

	api, err := f.restAPIService().Create(ctx, new(dto.CreateRestApiRequest).SetName("petstore"),
		models.APIDefinition{BodyS3URI: "s3://specs/petstore.json"})
	require.NoError(t, err)
	assert.Equal(t, "petstore", aws.ToString(api.Name))
	// The imported title already matches, so no patch is sent.
	assert.Equal(t, []string{"ImportRestApi"}, f.api.Ops())

	_, err = f.restAPIService().Create(ctx, new(dto.CreateRestApiRequest).SetName("x"),
		models.APIDefinition{BodyS3URI: "s3://specs/missing.json"})
	require.Error(t, err)
}

func TestRestAPIServiceCreateKeepsImportedOnPatchFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.api.Errors["UpdateRestApi"] = assert.AnError

	api, err := f.restAPIService().Create(ctx, new(dto.CreateRestApiRequest).SetName("renamed"),
		models.APIDefinition{Body: petstore})
	require.Error(t, err)
	require.NotNil(t, api)
	assert.NotEmpty(t, aws.ToString(api.Id))
}

func TestRestAPIServiceReadUpdateDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := f.restAPIService()
	apiID := f.api.AddRestApi("orders")

	api, err := svc.Read(ctx, apiID)
	require.NoError(t, err)
	require.NotNil(t, api)

	unchanged, err := svc.Update(ctx, apiID, new(dto.CreateRestApiRequest).SetName("orders"))
	require.NoError(t, err)
	assert.True(t, api.Equal(unchanged))
	assert.Empty(t, f.api.Inputs("UpdateRestApi"))

	updated, err := svc.Update(ctx, apiID, new(dto.CreateRestApiRequest).
		SetName("orders").
		SetDescription("v2").
		SetMinimumCompressionSize(0))
	require.NoError(t, err)
	assert.Equal(t, "v2", aws.ToString(updated.Description))
	assert.Equal(t, int32(0), aws.ToInt32(updated.MinimumCompressionSize))
	assert.NotNil(t, updated.MinimumCompressionSize)

	put, err := svc.PutDefinition(ctx, apiID, models.APIDefinition{Body: petstore}, dto.PutModeOverwrite)
	require.NoError(t, err)
	assert.Equal(t, "petstore", aws.ToString(put.Name))
	in := f.api.Inputs("PutRestApi")[0].(*apigw.PutRestApiInput)
	assert.Equal(t, "overwrite", string(in.Mode))

	require.NoError(t, svc.Delete(ctx, apiID))
	require.NoError(t, svc.Delete(ctx, apiID))

	gone, err := svc.Read(ctx, apiID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestRestAPIServiceCreateFromBodyAppliesTags(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	api, err := f.restAPIService().Create(ctx, new(dto.CreateRestApiRequest).
		SetName("petstore").
		SetTags(map[string]string{"env": "prod"}),
		models.APIDefinition{Body: petstore})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"env": "prod"}, api.Tags)

	in := f.api.Inputs("TagResource")[0].(*apigw.TagResourceInput)
	assert.Equal(t, f.client.RestAPIArn(aws.ToString(api.Id)), aws.ToString(in.ResourceArn))

	remote, err := f.restAPIService().Read(ctx, aws.ToString(api.Id))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"env": "prod"}, remote.Tags)
}

func TestRestAPIServiceUpdateTags(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := f.restAPIService()

	api, err := svc.Create(ctx, new(dto.CreateRestApiRequest).
		SetName("orders").
		SetTags(map[string]string{"env": "dev", "team": "core"}),
		models.APIDefinition{})
	require.NoError(t, err)
	apiID := aws.ToString(api.Id)

	updated, err := svc.Update(ctx, apiID, new(dto.CreateRestApiRequest).
		SetName("orders").
		SetTags(map[string]string{"env": "prod", "cost": "42"}))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"env": "prod", "cost": "42"}, updated.Tags)

	untag := f.api.Inputs("UntagResource")[0].(*apigw.UntagResourceInput)
	assert.Equal(t, []string{"team"}, untag.TagKeys)
	tag := f.api.Inputs("TagResource")[0].(*apigw.TagResourceInput)
	assert.Equal(t, map[string]string{"env": "prod", "cost": "42"}, tag.Tags)

	remote, err := svc.Read(ctx, apiID)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"env": "prod", "cost": "42"}, remote.Tags)

	// Matching tags send nothing.
	_, err = svc.Update(ctx, apiID, new(dto.CreateRestApiRequest).
		SetName("orders").
		SetTags(map[string]string{"env": "prod", "cost": "42"}))
	require.NoError(t, err)
	assert.Len(t, f.api.Inputs("TagResource"), 1)
}

func TestRestAPIServiceUpdateClearsPolicy(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := f.restAPIService()

	api, err := svc.Create(ctx, new(dto.CreateRestApiRequest).
		SetName("orders").
		SetPolicy(`{"Version":"2012-10-17"}`), models.APIDefinition{})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, aws.ToString(api.Id), new(dto.CreateRestApiRequest).
		SetName("orders").
		SetPolicy(""))
	require.NoError(t, err)
	assert.Empty(t, aws.ToString(updated.Policy))

	in := f.api.Inputs("UpdateRestApi")[0].(*apigw.UpdateRestApiInput)
	require.Len(t, in.PatchOperations, 1)
	assert.Equal(t, "/policy", aws.ToString(in.PatchOperations[0].Path))
	assert.Equal(t, "", aws.ToString(in.PatchOperations[0].Value))
}
