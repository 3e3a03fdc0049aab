package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/hashicorp/terraform-plugin-sdk/v2/diag"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/validation"

	"github.com/raywall/terraform-provider-apigw/provider/internal/models"
)

var (
	routeMethods        = []string{"ANY", "DELETE", "GET", "HEAD", "OPTIONS", "PATCH", "POST", "PUT"}
	routeAuthorizations = []string{"NONE", "AWS_IAM", "CUSTOM", "COGNITO_USER_POOLS"}

	// CloudWatch Logs only accepts these retention periods.
	logRetentionDays = []int{0, 1, 3, 5, 7, 14, 30, 60, 90, 120, 150, 180, 365, 400, 545, 731, 1096, 1827, 2192, 2557, 2922, 3288, 3653}
)

// ResourceAPIGatewayLambdaRoutes exposes one Lambda function through routes
// of an existing REST API and deploys them to a stage.
func ResourceAPIGatewayLambdaRoutes() *schema.Resource {
	return &schema.Resource{
		CreateContext: resourceLambdaRoutesCreate,
		ReadContext:   resourceLambdaRoutesRead,
		UpdateContext: resourceLambdaRoutesUpdate,
		DeleteContext: resourceLambdaRoutesDelete,
		Schema: map[string]*schema.Schema{
			"api_gateway_id": {
				Type:        schema.TypeString,
				Required:    true,
				ForceNew:    true,
				Description: "REST API ID, or a \"name:id\" pair.",
			},
			"stage_name":  {Type: schema.TypeString, Required: true, ForceNew: true},
			"description": {Type: schema.TypeString, Optional: true},
			"stage_variables": {
				Type:     schema.TypeMap,
				Optional: true,
				Elem:     &schema.Schema{Type: schema.TypeString},
			},
			"canary_percent": {
				Type:         schema.TypeFloat,
				Optional:     true,
				ValidateFunc: validation.FloatBetween(0, 100),
				Description:  "Share of the traffic sent to the new deployment as a canary.",
			},
			"lambda": {
				Type:     schema.TypeList,
				MaxItems: 1,
				Required: true,
				Elem: &schema.Resource{
					Schema: map[string]*schema.Schema{
						"function_name": {Type: schema.TypeString, Required: true},
						"credentials_role": {
							Type:        schema.TypeString,
							Optional:    true,
							Description: "IAM role name or ARN API Gateway assumes to invoke the function.",
						},
					},
				},
			},
			"routes": {
				Type:     schema.TypeList,
				Required: true,
				MinItems: 1,
				Elem: &schema.Resource{
					Schema: map[string]*schema.Schema{
						"path": {Type: schema.TypeString, Required: true, ValidateFunc: validateRoutePath},
						"method": {
							Type:         schema.TypeString,
							Required:     true,
							ValidateFunc: validation.StringInSlice(routeMethods, true),
						},
						"authorization": {
							Type:         schema.TypeString,
							Optional:     true,
							Default:      "NONE",
							ValidateFunc: validation.StringInSlice(routeAuthorizations, true),
						},
						"authorizer_id":    {Type: schema.TypeString, Optional: true},
						"api_key_required": {Type: schema.TypeBool, Optional: true},
					},
				},
			},
			"access_log_format": {
				Type:        schema.TypeString,
				Optional:    true,
				Description: "Enables stage access logging to CloudWatch Logs with this format.",
			},
			"access_log_retention_days": {
				Type:         schema.TypeInt,
				Optional:     true,
				ValidateFunc: validation.IntInSlice(logRetentionDays),
			},
			"deployment_id": {Type: schema.TypeString, Computed: true},
			"invoke_url":    {Type: schema.TypeString, Computed: true},
			"internal":      {Type: schema.TypeString, Computed: true},
		},
	}
}

func resourceLambdaRoutesCreate(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	apiID := extractAPIID(d.Get("api_gateway_id").(string))
	target, deploy, routes, logs := extractConfig(d)

	st, err := bundle.RouteService.EnsureRoutes(ctx, apiID, target, deploy, routes, logs)
	if err != nil {
		return diag.FromErr(fmt.Errorf("deployment failed: %w", err))
	}

	d.SetId(fmt.Sprintf("%s/%s", st.APIGatewayID, st.FunctionName))
	return setLambdaRoutesState(d, bundle, st)
}

func resourceLambdaRoutesRead(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	st, err := readInternalState(d)
	if err != nil {
		d.SetId("")
		return diag.FromErr(err)
	}
	if st == nil {
		return nil
	}

	exists, err := bundle.RouteService.CheckResourceExistence(ctx, st)
	if err != nil {
		return diag.FromErr(fmt.Errorf("failed during existence check: %w", err))
	}
	if !exists {
		tflog.Warn(ctx, "lambda routes gone, removing from state", map[string]interface{}{
			"id": d.Id(),
		})
		d.SetId("")
	}
	return nil
}

func resourceLambdaRoutesUpdate(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	old, err := readInternalState(d)
	if err != nil {
		return diag.FromErr(err)
	}
	if old == nil {
		return resourceLambdaRoutesCreate(ctx, d, m)
	}

	target, deploy, routes, logs := extractConfig(d)
	st, err := bundle.RouteService.UpdateRoutes(ctx, old, target, deploy, routes, logs)
	if st != nil {
		d.SetId(fmt.Sprintf("%s/%s", st.APIGatewayID, st.FunctionName))
		if diags := setLambdaRoutesState(d, bundle, st); diags.HasError() {
			return diags
		}
	}
	if err != nil {
		return diag.FromErr(fmt.Errorf("update failed: %w", err))
	}
	return nil
}

func resourceLambdaRoutesDelete(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	st, err := readInternalState(d)
	if err != nil {
		return diag.FromErr(err)
	}
	if st != nil {
		if err := bundle.RouteService.DeleteRoutes(ctx, st); err != nil {
			return diag.FromErr(fmt.Errorf("failed to delete routes: %w", err))
		}
	}

	d.SetId("")
	return nil
}

func readInternalState(d *schema.ResourceData) (*models.ResourceState, error) {
	internal := d.Get("internal").(string)
	if internal == "" {
		return nil, nil
	}
	var st models.ResourceState
	if err := json.Unmarshal([]byte(internal), &st); err != nil {
		return nil, fmt.Errorf("failed reading internal state: %w", err)
	}
	return &st, nil
}

func setLambdaRoutesState(d *schema.ResourceData, bundle *ConfigurationBundle, st *models.ResourceState) diag.Diagnostics {
	b, err := json.Marshal(st)
	if err != nil {
		return diag.FromErr(err)
	}
	if err := d.Set("internal", string(b)); err != nil {
		return diag.FromErr(err)
	}
	if err := d.Set("deployment_id", st.DeploymentID); err != nil {
		return diag.FromErr(err)
	}
	if err := d.Set("invoke_url", invokeURL(bundle.Client.Region, st.APIGatewayID, st.StageName)); err != nil {
		return diag.FromErr(err)
	}
	return nil
}

func invokeURL(region, apiID, stage string) string {
	return fmt.Sprintf("https://%s.execute-api.%s.amazonaws.com/%s", apiID, region, stage)
}

// extractAPIID accepts a bare ID or a "name:id" pair.
func extractAPIID(apiID string) string {
	parts := strings.Split(apiID, ":")
	if len(parts) > 1 {
		return parts[1]
	}
	return apiID
}

func extractConfig(d *schema.ResourceData) (models.LambdaTarget, models.DeploymentConfig, []models.RouteConfig, *models.AccessLogConfig) {
	var target models.LambdaTarget
	if lc, ok := d.Get("lambda").([]interface{}); ok && len(lc) > 0 && lc[0] != nil {
		lcMap := lc[0].(map[string]interface{})
		target.FunctionName = lcMap["function_name"].(string)
		target.CredentialsRole = lcMap["credentials_role"].(string)
	}

	deploy := models.DeploymentConfig{
		StageName:     d.Get("stage_name").(string),
		Description:   d.Get("description").(string),
		Variables:     expandStringMap(d.Get("stage_variables")),
		CanaryPercent: d.Get("canary_percent").(float64),
	}

	routesRaw := d.Get("routes").([]interface{})
	routes := make([]models.RouteConfig, 0, len(routesRaw))
	for _, r := range routesRaw {
		rm := r.(map[string]interface{})
		routes = append(routes, models.RouteConfig{
			Path:           rm["path"].(string),
			Method:         strings.ToUpper(rm["method"].(string)),
			Authorization:  strings.ToUpper(rm["authorization"].(string)),
			AuthorizerID:   rm["authorizer_id"].(string),
			APIKeyRequired: rm["api_key_required"].(bool),
		})
	}

	var logs *models.AccessLogConfig
	if format := d.Get("access_log_format").(string); format != "" {
		logs = &models.AccessLogConfig{
			Format:        format,
			RetentionDays: int32(d.Get("access_log_retention_days").(int)),
		}
	}

	return target, deploy, routes, logs
}
