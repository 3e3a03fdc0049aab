package resource

import (
	"strings"
	"testing"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
)

func TestValidateTags(t *testing.T) {
	tests := []struct {
		name    string
		tags    map[string]interface{}
		wantErr string
	}{
		{name: "valid", tags: map[string]interface{}{"team": "payments", "cost-center": "a/b:c"}},
		{name: "empty value", tags: map[string]interface{}{"team": ""}},
		{name: "reserved prefix", tags: map[string]interface{}{"aws:owner": "x"}, wantErr: "reserved prefix"},
		{name: "reserved prefix any case", tags: map[string]interface{}{"AWS:owner": "x"}, wantErr: "reserved prefix"},
		{name: "key too long", tags: map[string]interface{}{strings.Repeat("k", dto.TagKeyMaxLength+1): "x"}, wantErr: "characters"},
		{name: "value too long", tags: map[string]interface{}{"team": strings.Repeat("v", dto.TagValueMaxLength+1)}, wantErr: "exceeds"},
		{name: "invalid key character", tags: map[string]interface{}{"team*": "x"}, wantErr: "invalid characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := validateTags(tt.tags, "tags")
			if tt.wantErr == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0].Error(), tt.wantErr)
		})
	}

	_, errs := validateTags("not a map", "tags")
	assert.Len(t, errs, 1)
}

func TestEnumValidator(t *testing.T) {
	validate := enumValidator(dto.ParseGatewayResponseType)

	_, errs := validate("UNAUTHORIZED", "response_type")
	assert.Empty(t, errs)

	_, errs = validate("unauthorized", "response_type")
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], dto.ErrUnknownEnumValue)

	_, errs = validate(42, "response_type")
	assert.Len(t, errs, 1)
}

func TestValidateStatusCode(t *testing.T) {
	for _, code := range []string{"200", "401", "599"} {
		_, errs := validateStatusCode(code, "status_code")
		assert.Empty(t, errs, code)
	}
	for _, code := range []string{"", "600", "20", "2000", "abc"} {
		_, errs := validateStatusCode(code, "status_code")
		assert.Len(t, errs, 1, code)
	}
}

func TestValidateRoutePath(t *testing.T) {
	for _, p := range []string{"/", "/orders", "/orders/{id}"} {
		_, errs := validateRoutePath(p, "path")
		assert.Empty(t, errs, p)
	}
	for _, p := range []string{"", "orders", "/orders//items"} {
		_, errs := validateRoutePath(p, "path")
		assert.Len(t, errs, 1, p)
	}
}

func TestValidateDefinitionBody(t *testing.T) {
	_, errs := validateDefinitionBody(`{"openapi":"3.0.1"}`, "body")
	assert.Empty(t, errs)

	_, errs = validateDefinitionBody("openapi: 3.0.1\ninfo:\n  title: orders\n", "body")
	assert.Empty(t, errs, "YAML bodies are left to the service")

	_, errs = validateDefinitionBody(`{"openapi":`, "body")
	assert.Len(t, errs, 1)
}

func TestValidateS3URI(t *testing.T) {
	_, errs := validateS3URI("s3://specs/orders.json", "body_s3_uri")
	assert.Empty(t, errs)

	_, errs = validateS3URI("https://specs/orders.json", "body_s3_uri")
	assert.Len(t, errs, 1)
}

func TestExpandHelpers(t *testing.T) {
	assert.Nil(t, expandStringMap(map[string]interface{}{}))
	assert.Equal(t, map[string]string{"a": "1"}, expandStringMap(map[string]interface{}{"a": "1"}))

	assert.Nil(t, expandStringSet(schema.NewSet(schema.HashString, nil)))
	assert.ElementsMatch(t, []string{"image/png", "application/pdf"},
		expandStringSet(schema.NewSet(schema.HashString, []interface{}{"image/png", "application/pdf"})))
}

func TestExtractAPIID(t *testing.T) {
	assert.Equal(t, "a1b2c3", extractAPIID("a1b2c3"))
	assert.Equal(t, "a1b2c3", extractAPIID("orders:a1b2c3"))
}
