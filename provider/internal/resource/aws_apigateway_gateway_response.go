package resource

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/hashicorp/terraform-plugin-sdk/v2/diag"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
)

// ResourceGatewayResponse customises one gateway response type of a REST API.
// Destroying it restores the default response.
func ResourceGatewayResponse() *schema.Resource {
	return &schema.Resource{
		CreateContext: resourceGatewayResponseCreate,
		ReadContext:   resourceGatewayResponseRead,
		UpdateContext: resourceGatewayResponseUpdate,
		DeleteContext: resourceGatewayResponseDelete,
		Importer: &schema.ResourceImporter{
			StateContext: resourceGatewayResponseImport,
		},
		Schema: map[string]*schema.Schema{
			"rest_api_id": {Type: schema.TypeString, Required: true, ForceNew: true},
			"response_type": {
				Type:         schema.TypeString,
				Required:     true,
				ForceNew:     true,
				ValidateFunc: enumValidator(dto.ParseGatewayResponseType),
			},
			"status_code": {
				Type:         schema.TypeString,
				Optional:     true,
				ValidateFunc: validateStatusCode,
			},
			"response_parameters": {
				Type:     schema.TypeMap,
				Optional: true,
				Elem:     &schema.Schema{Type: schema.TypeString},
			},
			"response_templates": {
				Type:     schema.TypeMap,
				Optional: true,
				Elem:     &schema.Schema{Type: schema.TypeString},
			},
		},
	}
}

func resourceGatewayResponseCreate(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	req := expandGatewayResponse(d)
	if _, err := bundle.ResponseService.Put(ctx, req); err != nil {
		return diag.FromErr(fmt.Errorf("putting gateway response: %w", err))
	}

	d.SetId(gatewayResponseID(*req.RestApiId, *req.ResponseType))
	return resourceGatewayResponseRead(ctx, d, m)
}

func resourceGatewayResponseRead(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	apiID := d.Get("rest_api_id").(string)
	responseType := dto.GatewayResponseType(d.Get("response_type").(string))

	resp, err := bundle.ResponseService.Read(ctx, apiID, responseType)
	if err != nil {
		return diag.FromErr(err)
	}
	if resp == nil {
		d.SetId("")
		return nil
	}

	values := map[string]interface{}{
		"response_parameters": resp.ResponseParameters,
		"response_templates":  resp.ResponseTemplates,
	}
	// An unset status_code means the default code of the type.
	if d.Get("status_code").(string) != "" {
		values["status_code"] = aws.ToString(resp.StatusCode)
	}
	for k, v := range values {
		if err := d.Set(k, v); err != nil {
			return diag.FromErr(fmt.Errorf("setting %s: %w", k, err))
		}
	}
	return nil
}

func resourceGatewayResponseUpdate(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}
	if _, err := bundle.ResponseService.Update(ctx, expandGatewayResponse(d)); err != nil {
		return diag.FromErr(fmt.Errorf("updating gateway response: %w", err))
	}
	return resourceGatewayResponseRead(ctx, d, m)
}

func resourceGatewayResponseDelete(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	apiID := d.Get("rest_api_id").(string)
	responseType := dto.GatewayResponseType(d.Get("response_type").(string))
	if err := bundle.ResponseService.Delete(ctx, apiID, responseType); err != nil {
		return diag.FromErr(fmt.Errorf("resetting gateway response: %w", err))
	}
	d.SetId("")
	return nil
}

func resourceGatewayResponseImport(_ context.Context, d *schema.ResourceData, _ interface{}) ([]*schema.ResourceData, error) {
	apiID, responseType, err := parseGatewayResponseID(d.Id())
	if err != nil {
		return nil, err
	}
	if err := d.Set("rest_api_id", apiID); err != nil {
		return nil, err
	}
	if err := d.Set("response_type", string(responseType)); err != nil {
		return nil, err
	}
	return []*schema.ResourceData{d}, nil
}

func expandGatewayResponse(d *schema.ResourceData) *dto.PutGatewayResponseRequest {
	req := new(dto.PutGatewayResponseRequest).
		SetRestApiId(d.Get("rest_api_id").(string)).
		SetResponseType(dto.GatewayResponseType(d.Get("response_type").(string))).
		SetResponseParameters(expandStringMap(d.Get("response_parameters"))).
		SetResponseTemplates(expandStringMap(d.Get("response_templates")))
	if code := d.Get("status_code").(string); code != "" {
		req.SetStatusCode(code)
	}
	return req
}

func gatewayResponseID(apiID, responseType string) string {
	return apiID + "/" + responseType
}

// parseGatewayResponseID splits an "api-id/RESPONSE_TYPE" import ID.
func parseGatewayResponseID(id string) (string, dto.GatewayResponseType, error) {
	apiID, rawType, ok := strings.Cut(id, "/")
	if !ok || apiID == "" {
		return "", "", fmt.Errorf("unexpected ID %q, expected rest-api-id/RESPONSE_TYPE", id)
	}
	responseType, err := dto.ParseGatewayResponseType(rawType)
	if err != nil {
		return "", "", fmt.Errorf("unexpected ID %q: %w", id, err)
	}
	return apiID, responseType, nil
}
