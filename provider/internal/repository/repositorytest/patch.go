package repositorytest

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	gwtypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"
)

var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

// splitPatchPath returns the first path segment and the unescaped remainder.
func splitPatchPath(path string) (head, rest string) {
	head, rest, _ = strings.Cut(strings.TrimPrefix(path, "/"), "/")
	return head, pointerUnescaper.Replace(rest)
}

func titleOf(body []byte) string {
	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
	}
	if err := json.Unmarshal(body, &doc); err != nil || doc.Info.Title == "" {
		return "imported"
	}
	return doc.Info.Title
}

func patchRestApi(api *gwtypes.RestApi, op gwtypes.PatchOperation) error {
	head, rest := splitPatchPath(aws.ToString(op.Path))
	value := aws.ToString(op.Value)

	switch {
	case head == "name" && op.Op == gwtypes.OpReplace:
		api.Name = op.Value
	case head == "description" && op.Op == gwtypes.OpReplace:
		api.Description = op.Value
	case head == "policy" && op.Op == gwtypes.OpReplace:
		api.Policy = op.Value
	case head == "apiKeySource" && op.Op == gwtypes.OpReplace:
		api.ApiKeySource = gwtypes.ApiKeySourceType(value)
	case head == "disableExecuteApiEndpoint" && op.Op == gwtypes.OpReplace:
		api.DisableExecuteApiEndpoint = value == "true"
	case head == "minimumCompressionSize" && op.Op == gwtypes.OpReplace:
		if value == "" {
			api.MinimumCompressionSize = nil
			return nil
		}
		n, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return badRequest("Invalid minimumCompressionSize %q", value)
		}
		api.MinimumCompressionSize = aws.Int32(int32(n))
	case head == "binaryMediaTypes" && op.Op == gwtypes.OpAdd:
		if !slices.Contains(api.BinaryMediaTypes, rest) {
			api.BinaryMediaTypes = append(api.BinaryMediaTypes, rest)
		}
	case head == "binaryMediaTypes" && op.Op == gwtypes.OpRemove:
		api.BinaryMediaTypes = slices.DeleteFunc(api.BinaryMediaTypes, func(s string) bool { return s == rest })
	case head == "endpointConfiguration" && rest == "types/0" && op.Op == gwtypes.OpReplace:
		if api.EndpointConfiguration == nil {
			api.EndpointConfiguration = &gwtypes.EndpointConfiguration{}
		}
		api.EndpointConfiguration.Types = []gwtypes.EndpointType{gwtypes.EndpointType(value)}
	default:
		return badRequest("Invalid patch path %s", aws.ToString(op.Path))
	}
	return nil
}

func patchStage(s *gwtypes.Stage, op gwtypes.PatchOperation) error {
	head, rest := splitPatchPath(aws.ToString(op.Path))

	switch {
	case head == "accessLogSettings" && op.Op == gwtypes.OpRemove && rest == "":
		s.AccessLogSettings = nil
	case head == "accessLogSettings" && op.Op == gwtypes.OpReplace:
		if s.AccessLogSettings == nil {
			s.AccessLogSettings = &gwtypes.AccessLogSettings{}
		}
		switch rest {
		case "destinationArn":
			s.AccessLogSettings.DestinationArn = op.Value
		case "format":
			s.AccessLogSettings.Format = op.Value
		default:
			return badRequest("Invalid patch path %s", aws.ToString(op.Path))
		}
	case head == "description" && op.Op == gwtypes.OpReplace:
		s.Description = op.Value
	case head == "deploymentId" && op.Op == gwtypes.OpReplace:
		s.DeploymentId = op.Value
	case head == "tracingEnabled" && op.Op == gwtypes.OpReplace:
		s.TracingEnabled = aws.ToString(op.Value) == "true"
	case head == "variables" && op.Op != gwtypes.OpRemove:
		if s.Variables == nil {
			s.Variables = map[string]string{}
		}
		s.Variables[rest] = aws.ToString(op.Value)
	case head == "variables" && op.Op == gwtypes.OpRemove:
		delete(s.Variables, rest)
	default:
		return badRequest("Invalid patch path %s", aws.ToString(op.Path))
	}
	return nil
}

func patchGatewayResponse(r *gwtypes.GatewayResponse, op gwtypes.PatchOperation) error {
	head, rest := splitPatchPath(aws.ToString(op.Path))

	var target *map[string]string
	switch head {
	case "statusCode":
		if op.Op != gwtypes.OpReplace {
			return badRequest("Invalid patch operation %s on statusCode", op.Op)
		}
		r.StatusCode = op.Value
		return nil
	case "responseParameters":
		target = &r.ResponseParameters
	case "responseTemplates":
		target = &r.ResponseTemplates
	default:
		return badRequest("Invalid patch path %s", aws.ToString(op.Path))
	}

	switch op.Op {
	case gwtypes.OpAdd, gwtypes.OpReplace:
		if *target == nil {
			*target = map[string]string{}
		}
		(*target)[rest] = aws.ToString(op.Value)
	case gwtypes.OpRemove:
		delete(*target, rest)
	default:
		return badRequest("Invalid patch operation %s", op.Op)
	}
	return nil
}

func isGatewayResponseType(rt gwtypes.GatewayResponseType) bool {
	return slices.Contains(rt.Values(), rt)
}

func defaultStatus(rt gwtypes.GatewayResponseType) *string {
	switch rt {
	case gwtypes.GatewayResponseTypeDefault4xx, gwtypes.GatewayResponseTypeDefault5xx:
		return nil
	case gwtypes.GatewayResponseTypeUnauthorized:
		return aws.String("401")
	case gwtypes.GatewayResponseTypeAccessDenied, gwtypes.GatewayResponseTypeExpiredToken,
		gwtypes.GatewayResponseTypeInvalidSignature, gwtypes.GatewayResponseTypeMissingAuthenticationToken,
		gwtypes.GatewayResponseTypeInvalidApiKey, gwtypes.GatewayResponseTypeWafFiltered:
		return aws.String("403")
	case gwtypes.GatewayResponseTypeResourceNotFound:
		return aws.String("404")
	case gwtypes.GatewayResponseTypeRequestTooLarge:
		return aws.String("413")
	case gwtypes.GatewayResponseTypeUnsupportedMediaType:
		return aws.String("415")
	case gwtypes.GatewayResponseTypeQuotaExceeded, gwtypes.GatewayResponseTypeThrottled:
		return aws.String("429")
	case gwtypes.GatewayResponseTypeIntegrationTimeout, gwtypes.GatewayResponseTypeIntegrationFailure:
		return aws.String("504")
	default:
		return aws.String("500")
	}
}
