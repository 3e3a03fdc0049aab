package service

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
)

func opStrings(ops []dto.PatchOperation) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = aws.ToString(op.Op) + " " + aws.ToString(op.Path)
		if op.Value != nil {
			out[i] += "=" + *op.Value
		}
	}
	return out
}

func TestEscapePointer(t *testing.T) {
	assert.Equal(t, "image~1png", escapePointer("image/png"))
	assert.Equal(t, "a~0b~1c", escapePointer("a~b/c"))
	assert.Equal(t, "*~1*", escapePointer("*/*"))
}

func TestRestApiPatch(t *testing.T) {
	current := new(dto.RestApi).
		SetName("orders").
		SetDescription("old").
		SetApiKeySource(dto.ApiKeySourceTypeHeader).
		SetMinimumCompressionSize(512).
		SetEndpointConfiguration(new(dto.EndpointConfiguration).AddTypes(dto.EndpointTypeEdge)).
		AddBinaryMediaTypes("image/png", "application/pdf")

	testCases := []struct {
		name    string
		desired *dto.CreateRestApiRequest
		want    []string
	}{
		{
			name: "in sync",
			desired: new(dto.CreateRestApiRequest).
				SetName("orders").
				SetMinimumCompressionSize(512).
				AddBinaryMediaTypes("application/pdf", "image/png"),
			want: []string{},
		},
		{
			name: "scalars",
			desired: new(dto.CreateRestApiRequest).
				SetName("orders-v2").
				SetDescription("").
				SetApiKeySource(dto.ApiKeySourceTypeAuthorizer).
				SetDisableExecuteApiEndpoint(true).
				SetMinimumCompressionSize(1024).
				AddBinaryMediaTypes("image/png", "application/pdf"),
			want: []string{
				"replace /name=orders-v2",
				"replace /description=",
				"replace /apiKeySource=AUTHORIZER",
				"replace /disableExecuteApiEndpoint=true",
				"replace /minimumCompressionSize=1024",
			},
		},
		{
			name: "compression disabled and media types changed",
			desired: new(dto.CreateRestApiRequest).
				AddBinaryMediaTypes("image/png", "image/jpeg"),
			want: []string{
				"replace /minimumCompressionSize=",
				"remove /binaryMediaTypes/application~1pdf",
				"add /binaryMediaTypes/image~1jpeg",
			},
		},
		{
			name: "endpoint type",
			desired: new(dto.CreateRestApiRequest).
				SetMinimumCompressionSize(512).
				SetEndpointConfiguration(new(dto.EndpointConfiguration).AddTypes(dto.EndpointTypeRegional)).
				AddBinaryMediaTypes("image/png", "application/pdf"),
			want: []string{"replace /endpointConfiguration/types/0=REGIONAL"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, opStrings(RestApiPatch(current, tc.desired)))
		})
	}
}

func TestGatewayResponsePatch(t *testing.T) {
	current := new(dto.GatewayResponse).
		SetResponseType(dto.GatewayResponseTypeUnauthorized).
		SetStatusCode("401").
		SetResponseParameters(map[string]string{
			"gatewayresponse.header.X-Keep": "'a'",
			"gatewayresponse.header.X-Drop": "'b'",
		}).
		SetResponseTemplates(map[string]string{"application/json": `{"old":true}`})

	desired := new(dto.PutGatewayResponseRequest).
		SetStatusCode("403").
		SetResponseParameters(map[string]string{
			"gatewayresponse.header.X-Keep": "'a'",
			"gatewayresponse.header.X-New":  "'c'",
		}).
		SetResponseTemplates(map[string]string{"application/json": `{"new":true}`})

	assert.Equal(t, []string{
		"replace /statusCode=403",
		"remove /responseParameters/gatewayresponse.header.X-Drop",
		"add /responseParameters/gatewayresponse.header.X-New='c'",
		`replace /responseTemplates/application~1json={"new":true}`,
	}, opStrings(GatewayResponsePatch(current, desired)))
}
