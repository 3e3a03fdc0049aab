package resource

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/hashicorp/terraform-plugin-sdk/v2/diag"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/structure"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/validation"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
	"github.com/raywall/terraform-provider-apigw/provider/internal/models"
)

// ResourceRestAPI manages a REST API, created empty or imported from an
// OpenAPI definition.
func ResourceRestAPI() *schema.Resource {
	return &schema.Resource{
		CreateContext: resourceRestAPICreate,
		ReadContext:   resourceRestAPIRead,
		UpdateContext: resourceRestAPIUpdate,
		DeleteContext: resourceRestAPIDelete,
		Importer: &schema.ResourceImporter{
			StateContext: schema.ImportStatePassthroughContext,
		},
		Schema: map[string]*schema.Schema{
			"name":        {Type: schema.TypeString, Required: true},
			"description": {Type: schema.TypeString, Optional: true},
			"body": {
				Type:          schema.TypeString,
				Optional:      true,
				ConflictsWith: []string{"body_s3_uri"},
				ValidateFunc:  validateDefinitionBody,
				Description:   "OpenAPI definition, JSON or YAML.",
			},
			"body_s3_uri": {
				Type:          schema.TypeString,
				Optional:      true,
				ConflictsWith: []string{"body"},
				ValidateFunc:  validateS3URI,
				Description:   "s3://bucket/key of the OpenAPI definition.",
			},
			"fail_on_warnings": {Type: schema.TypeBool, Optional: true},
			"parameters": {
				Type:        schema.TypeMap,
				Optional:    true,
				Elem:        &schema.Schema{Type: schema.TypeString},
				Description: "Import parameters such as endpointConfigurationTypes or basepath.",
			},
			"put_mode": {
				Type:         schema.TypeString,
				Optional:     true,
				Default:      string(dto.PutModeOverwrite),
				ValidateFunc: enumValidator(dto.ParsePutMode),
			},
			"binary_media_types": {
				Type:     schema.TypeSet,
				Optional: true,
				Elem:     &schema.Schema{Type: schema.TypeString},
			},
			"minimum_compression_size": {
				Type:         schema.TypeInt,
				Optional:     true,
				Default:      -1,
				ValidateFunc: validation.IntBetween(-1, dto.MinimumCompressionSizeMax),
				Description:  "Payload size in bytes above which responses are compressed. -1 disables compression.",
			},
			"api_key_source": {
				Type:         schema.TypeString,
				Optional:     true,
				Default:      string(dto.ApiKeySourceTypeHeader),
				ValidateFunc: enumValidator(dto.ParseApiKeySourceType),
			},
			"endpoint_types": {
				Type:     schema.TypeList,
				Optional: true,
				Computed: true,
				MaxItems: 1,
				Elem: &schema.Schema{
					Type:         schema.TypeString,
					ValidateFunc: enumValidator(dto.ParseEndpointType),
				},
			},
			"vpc_endpoint_ids": {
				Type:     schema.TypeSet,
				Optional: true,
				ForceNew: true,
				Elem:     &schema.Schema{Type: schema.TypeString},
			},
			"policy": {
				Type:             schema.TypeString,
				Optional:         true,
				ValidateFunc:     validateJSON,
				DiffSuppressFunc: structure.SuppressJsonDiff,
			},
			"disable_execute_api_endpoint": {Type: schema.TypeBool, Optional: true},
			"tags": {
				Type:         schema.TypeMap,
				Optional:     true,
				Elem:         &schema.Schema{Type: schema.TypeString},
				ValidateFunc: validateTags,
			},
			"root_resource_id": {Type: schema.TypeString, Computed: true},
			"created_date":     {Type: schema.TypeString, Computed: true},
			"execution_arn":    {Type: schema.TypeString, Computed: true},
			"warnings": {
				Type:     schema.TypeList,
				Computed: true,
				Elem:     &schema.Schema{Type: schema.TypeString},
			},
		},
	}
}

func resourceRestAPICreate(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	api, err := bundle.RestAPIService.Create(ctx, expandRestAPI(d), expandDefinition(d))
	if api != nil && api.Id != nil {
		d.SetId(*api.Id)
	}
	if err != nil {
		return diag.FromErr(fmt.Errorf("creating rest api: %w", err))
	}

	var diags diag.Diagnostics
	for _, w := range api.Warnings {
		diags = append(diags, diag.Diagnostic{
			Severity: diag.Warning,
			Summary:  "OpenAPI import warning",
			Detail:   w,
		})
	}
	if err := d.Set("warnings", api.Warnings); err != nil {
		return append(diags, diag.FromErr(err)...)
	}
	return append(diags, resourceRestAPIRead(ctx, d, m)...)
}

func resourceRestAPIRead(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	api, err := bundle.RestAPIService.Read(ctx, d.Id())
	if err != nil {
		return diag.FromErr(err)
	}
	if api == nil {
		d.SetId("")
		return nil
	}
	return flattenRestAPI(d, bundle, api)
}

func resourceRestAPIUpdate(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	def := expandDefinition(d)
	if def.IsSet() && d.HasChanges("body", "body_s3_uri", "parameters") {
		mode := dto.PutMode(d.Get("put_mode").(string))
		if _, err := bundle.RestAPIService.PutDefinition(ctx, d.Id(), def, mode); err != nil {
			return diag.FromErr(fmt.Errorf("putting definition: %w", err))
		}
	}

	desired := expandRestAPI(d)
	// A policy removed from the configuration is cleared remotely.
	desired.SetPolicy(d.Get("policy").(string))
	if _, err := bundle.RestAPIService.Update(ctx, d.Id(), desired); err != nil {
		return diag.FromErr(fmt.Errorf("updating rest api: %w", err))
	}
	return resourceRestAPIRead(ctx, d, m)
}

func resourceRestAPIDelete(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}
	if err := bundle.RestAPIService.Delete(ctx, d.Id()); err != nil {
		return diag.FromErr(fmt.Errorf("deleting rest api: %w", err))
	}
	d.SetId("")
	return nil
}

func expandRestAPI(d *schema.ResourceData) *dto.CreateRestApiRequest {
	req := new(dto.CreateRestApiRequest).
		SetName(d.Get("name").(string)).
		SetDescription(d.Get("description").(string)).
		SetApiKeySource(dto.ApiKeySourceType(d.Get("api_key_source").(string))).
		SetDisableExecuteApiEndpoint(d.Get("disable_execute_api_endpoint").(bool)).
		SetBinaryMediaTypes(expandStringSet(d.Get("binary_media_types"))).
		SetTags(expandStringMap(d.Get("tags")))

	if size := d.Get("minimum_compression_size").(int); size >= 0 {
		req.SetMinimumCompressionSize(int32(size))
	}
	if policy := d.Get("policy").(string); policy != "" {
		req.SetPolicy(policy)
	}

	endpoint := new(dto.EndpointConfiguration)
	for _, t := range d.Get("endpoint_types").([]interface{}) {
		endpoint.AddTypes(dto.EndpointType(t.(string)))
	}
	if ids := expandStringSet(d.Get("vpc_endpoint_ids")); ids != nil {
		endpoint.SetVpcEndpointIds(ids)
	}
	if endpoint.Types != nil || endpoint.VpcEndpointIds != nil {
		req.SetEndpointConfiguration(endpoint)
	}
	return req
}

func expandDefinition(d *schema.ResourceData) models.APIDefinition {
	return models.APIDefinition{
		Body:           d.Get("body").(string),
		BodyS3URI:      d.Get("body_s3_uri").(string),
		FailOnWarnings: d.Get("fail_on_warnings").(bool),
		Parameters:     expandStringMap(d.Get("parameters")),
	}
}

func flattenRestAPI(d *schema.ResourceData, bundle *ConfigurationBundle, api *dto.RestApi) diag.Diagnostics {
	values := map[string]interface{}{
		"name":                         aws.ToString(api.Name),
		"description":                  aws.ToString(api.Description),
		"api_key_source":               aws.ToString(api.ApiKeySource),
		"binary_media_types":           api.BinaryMediaTypes,
		"disable_execute_api_endpoint": aws.ToBool(api.DisableExecuteApiEndpoint),
		"tags":                         api.Tags,
		"root_resource_id":             aws.ToString(api.RootResourceId),
		"execution_arn":                executionArn(bundle, aws.ToString(api.Id)),
	}

	values["minimum_compression_size"] = -1
	if api.MinimumCompressionSize != nil {
		values["minimum_compression_size"] = int(*api.MinimumCompressionSize)
	}
	if api.Policy != nil {
		values["policy"] = *api.Policy
	}
	if api.CreatedDate != nil {
		values["created_date"] = api.CreatedDate.UTC().Format(time.RFC3339)
	}
	if ec := api.EndpointConfiguration; ec != nil {
		values["endpoint_types"] = ec.Types
		values["vpc_endpoint_ids"] = ec.VpcEndpointIds
	}

	for k, v := range values {
		if err := d.Set(k, v); err != nil {
			return diag.FromErr(fmt.Errorf("setting %s: %w", k, err))
		}
	}
	return nil
}

func executionArn(bundle *ConfigurationBundle, apiID string) string {
	if bundle.Client == nil {
		return ""
	}
	return fmt.Sprintf("arn:aws:execute-api:%s:%s:%s", bundle.Client.Region, bundle.Client.AccountID, apiID)
}
