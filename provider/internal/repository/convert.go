package repository

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	gwtypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
)

// Record enum fields are plain strings. Values the SDK does not model are
// forwarded as-is and left to the service to reject.

func enumValue[T ~string](v *string) T {
	return T(aws.ToString(v))
}

func enumPtr[T ~string](v T) *string {
	if v == "" {
		return nil
	}
	s := string(v)
	return &s
}

func enumList[T ~string](values []string) []T {
	if values == nil {
		return nil
	}
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}
	return out
}

func stringList[T ~string](values []T) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func toEndpointConfiguration(in *dto.EndpointConfiguration) *gwtypes.EndpointConfiguration {
	if in == nil {
		return nil
	}
	return &gwtypes.EndpointConfiguration{
		Types:          enumList[gwtypes.EndpointType](in.Types),
		VpcEndpointIds: in.VpcEndpointIds,
	}
}

func fromEndpointConfiguration(in *gwtypes.EndpointConfiguration) *dto.EndpointConfiguration {
	if in == nil {
		return nil
	}
	return &dto.EndpointConfiguration{
		Types:          stringList(in.Types),
		VpcEndpointIds: in.VpcEndpointIds,
	}
}

func toPatchOperations(in []dto.PatchOperation) []gwtypes.PatchOperation {
	if in == nil {
		return nil
	}
	out := make([]gwtypes.PatchOperation, len(in))
	for i, op := range in {
		out[i] = gwtypes.PatchOperation{
			Op:    enumValue[gwtypes.Op](op.Op),
			Path:  op.Path,
			Value: op.Value,
			From:  op.From,
		}
	}
	return out
}

// restApiFields is the common shape of every REST API output.
type restApiFields struct {
	id, name, description, version, policy, rootResourceID *string
	apiKeySource              gwtypes.ApiKeySourceType
	binaryMediaTypes          []string
	warnings                  []string
	minimumCompressionSize    *int32
	endpointConfiguration     *gwtypes.EndpointConfiguration
	tags                      map[string]string
	disableExecuteApiEndpoint bool
	createdDate               *time.Time
}

func (f restApiFields) record() *dto.RestApi {
	return &dto.RestApi{
		Id:                        f.id,
		Name:                      f.name,
		Description:               f.description,
		CreatedDate:               f.createdDate,
		Version:                   f.version,
		Warnings:                  f.warnings,
		BinaryMediaTypes:          f.binaryMediaTypes,
		MinimumCompressionSize:    f.minimumCompressionSize,
		ApiKeySource:              enumPtr(f.apiKeySource),
		EndpointConfiguration:     fromEndpointConfiguration(f.endpointConfiguration),
		Policy:                    f.policy,
		Tags:                      f.tags,
		DisableExecuteApiEndpoint: aws.Bool(f.disableExecuteApiEndpoint),
		RootResourceId:            f.rootResourceID,
	}
}

func toCreateRestApiInput(in *dto.CreateRestApiRequest) *apigw.CreateRestApiInput {
	return &apigw.CreateRestApiInput{
		Name:                      in.Name,
		Description:               in.Description,
		Version:                   in.Version,
		CloneFrom:                 in.CloneFrom,
		BinaryMediaTypes:          in.BinaryMediaTypes,
		MinimumCompressionSize:    in.MinimumCompressionSize,
		ApiKeySource:              enumValue[gwtypes.ApiKeySourceType](in.ApiKeySource),
		EndpointConfiguration:     toEndpointConfiguration(in.EndpointConfiguration),
		Policy:                    in.Policy,
		Tags:                      in.Tags,
		DisableExecuteApiEndpoint: aws.ToBool(in.DisableExecuteApiEndpoint),
	}
}

func fromCreateRestApiOutput(out *apigw.CreateRestApiOutput) *dto.CreateRestApiResult {
	return restApiFields{
		id: out.Id, name: out.Name, description: out.Description, version: out.Version,
		policy: out.Policy, rootResourceID: out.RootResourceId, apiKeySource: out.ApiKeySource,
		binaryMediaTypes: out.BinaryMediaTypes, warnings: out.Warnings,
		minimumCompressionSize: out.MinimumCompressionSize, endpointConfiguration: out.EndpointConfiguration,
		tags: out.Tags, disableExecuteApiEndpoint: out.DisableExecuteApiEndpoint, createdDate: out.CreatedDate,
	}.record()
}

func toImportRestApiInput(in *dto.ImportRestApiRequest) *apigw.ImportRestApiInput {
	return &apigw.ImportRestApiInput{
		Body:           in.Body,
		FailOnWarnings: aws.ToBool(in.FailOnWarnings),
		Parameters:     in.Parameters,
	}
}

func fromImportRestApiOutput(out *apigw.ImportRestApiOutput) *dto.ImportRestApiResult {
	return restApiFields{
		id: out.Id, name: out.Name, description: out.Description, version: out.Version,
		policy: out.Policy, rootResourceID: out.RootResourceId, apiKeySource: out.ApiKeySource,
		binaryMediaTypes: out.BinaryMediaTypes, warnings: out.Warnings,
		minimumCompressionSize: out.MinimumCompressionSize, endpointConfiguration: out.EndpointConfiguration,
		tags: out.Tags, disableExecuteApiEndpoint: out.DisableExecuteApiEndpoint, createdDate: out.CreatedDate,
	}.record()
}

func toPutRestApiInput(in *dto.PutRestApiRequest) *apigw.PutRestApiInput {
	return &apigw.PutRestApiInput{
		RestApiId:      in.RestApiId,
		Body:           in.Body,
		Mode:           enumValue[gwtypes.PutMode](in.Mode),
		FailOnWarnings: aws.ToBool(in.FailOnWarnings),
		Parameters:     in.Parameters,
	}
}

func fromPutRestApiOutput(out *apigw.PutRestApiOutput) *dto.PutRestApiResult {
	return restApiFields{
		id: out.Id, name: out.Name, description: out.Description, version: out.Version,
		policy: out.Policy, rootResourceID: out.RootResourceId, apiKeySource: out.ApiKeySource,
		binaryMediaTypes: out.BinaryMediaTypes, warnings: out.Warnings,
		minimumCompressionSize: out.MinimumCompressionSize, endpointConfiguration: out.EndpointConfiguration,
		tags: out.Tags, disableExecuteApiEndpoint: out.DisableExecuteApiEndpoint, createdDate: out.CreatedDate,
	}.record()
}

func fromGetRestApiOutput(out *apigw.GetRestApiOutput) *dto.GetRestApiResult {
	return restApiFields{
		id: out.Id, name: out.Name, description: out.Description, version: out.Version,
		policy: out.Policy, rootResourceID: out.RootResourceId, apiKeySource: out.ApiKeySource,
		binaryMediaTypes: out.BinaryMediaTypes, warnings: out.Warnings,
		minimumCompressionSize: out.MinimumCompressionSize, endpointConfiguration: out.EndpointConfiguration,
		tags: out.Tags, disableExecuteApiEndpoint: out.DisableExecuteApiEndpoint, createdDate: out.CreatedDate,
	}.record()
}

func fromUpdateRestApiOutput(out *apigw.UpdateRestApiOutput) *dto.UpdateRestApiResult {
	return restApiFields{
		id: out.Id, name: out.Name, description: out.Description, version: out.Version,
		policy: out.Policy, rootResourceID: out.RootResourceId, apiKeySource: out.ApiKeySource,
		binaryMediaTypes: out.BinaryMediaTypes, warnings: out.Warnings,
		minimumCompressionSize: out.MinimumCompressionSize, endpointConfiguration: out.EndpointConfiguration,
		tags: out.Tags, disableExecuteApiEndpoint: out.DisableExecuteApiEndpoint, createdDate: out.CreatedDate,
	}.record()
}

func toPutMethodInput(in *dto.PutMethodRequest) *apigw.PutMethodInput {
	return &apigw.PutMethodInput{
		RestApiId:           in.RestApiId,
		ResourceId:          in.ResourceId,
		HttpMethod:          in.HttpMethod,
		AuthorizationType:   in.AuthorizationType,
		AuthorizerId:        in.AuthorizerId,
		ApiKeyRequired:      aws.ToBool(in.ApiKeyRequired),
		OperationName:       in.OperationName,
		RequestParameters:   in.RequestParameters,
		RequestModels:       in.RequestModels,
		RequestValidatorId:  in.RequestValidatorId,
		AuthorizationScopes: in.AuthorizationScopes,
	}
}

func fromMethod(in gwtypes.Method) dto.Method {
	return dto.Method{
		HttpMethod:          in.HttpMethod,
		AuthorizationType:   in.AuthorizationType,
		AuthorizerId:        in.AuthorizerId,
		ApiKeyRequired:      in.ApiKeyRequired,
		RequestValidatorId:  in.RequestValidatorId,
		OperationName:       in.OperationName,
		RequestParameters:   in.RequestParameters,
		RequestModels:       in.RequestModels,
		MethodResponses:     fromMethodResponses(in.MethodResponses),
		MethodIntegration:   fromIntegration(in.MethodIntegration),
		AuthorizationScopes: in.AuthorizationScopes,
	}
}

func fromPutMethodOutput(out *apigw.PutMethodOutput) *dto.PutMethodResult {
	m := fromMethod(gwtypes.Method{
		HttpMethod:          out.HttpMethod,
		AuthorizationType:   out.AuthorizationType,
		AuthorizerId:        out.AuthorizerId,
		ApiKeyRequired:      out.ApiKeyRequired,
		RequestValidatorId:  out.RequestValidatorId,
		OperationName:       out.OperationName,
		RequestParameters:   out.RequestParameters,
		RequestModels:       out.RequestModels,
		MethodResponses:     out.MethodResponses,
		MethodIntegration:   out.MethodIntegration,
		AuthorizationScopes: out.AuthorizationScopes,
	})
	return &m
}

func fromResource(in gwtypes.Resource) dto.Resource {
	r := dto.Resource{
		Id:       in.Id,
		ParentId: in.ParentId,
		PathPart: in.PathPart,
		Path:     in.Path,
	}
	if in.ResourceMethods != nil {
		r.ResourceMethods = make(map[string]dto.Method, len(in.ResourceMethods))
		for k, m := range in.ResourceMethods {
			r.ResourceMethods[k] = fromMethod(m)
		}
	}
	return r
}

func toPutMethodResponseInput(in *dto.PutMethodResponseRequest) *apigw.PutMethodResponseInput {
	return &apigw.PutMethodResponseInput{
		RestApiId:          in.RestApiId,
		ResourceId:         in.ResourceId,
		HttpMethod:         in.HttpMethod,
		StatusCode:         in.StatusCode,
		ResponseParameters: in.ResponseParameters,
		ResponseModels:     in.ResponseModels,
	}
}

func fromPutMethodResponseOutput(out *apigw.PutMethodResponseOutput) *dto.PutMethodResponseResult {
	return &dto.PutMethodResponseResult{
		StatusCode:         out.StatusCode,
		ResponseParameters: out.ResponseParameters,
		ResponseModels:     out.ResponseModels,
	}
}

func fromMethodResponses(in map[string]gwtypes.MethodResponse) map[string]dto.MethodResponse {
	if in == nil {
		return nil
	}
	out := make(map[string]dto.MethodResponse, len(in))
	for k, v := range in {
		out[k] = dto.MethodResponse{
			StatusCode:         v.StatusCode,
			ResponseParameters: v.ResponseParameters,
			ResponseModels:     v.ResponseModels,
		}
	}
	return out
}

func toTlsConfig(in *dto.TlsConfig) *gwtypes.TlsConfig {
	if in == nil {
		return nil
	}
	return &gwtypes.TlsConfig{InsecureSkipVerification: aws.ToBool(in.InsecureSkipVerification)}
}

func fromTlsConfig(in *gwtypes.TlsConfig) *dto.TlsConfig {
	if in == nil {
		return nil
	}
	return &dto.TlsConfig{InsecureSkipVerification: aws.Bool(in.InsecureSkipVerification)}
}

func toPutIntegrationInput(in *dto.PutIntegrationRequest) *apigw.PutIntegrationInput {
	return &apigw.PutIntegrationInput{
		RestApiId:             in.RestApiId,
		ResourceId:            in.ResourceId,
		HttpMethod:            in.HttpMethod,
		Type:                  enumValue[gwtypes.IntegrationType](in.Type),
		IntegrationHttpMethod: in.IntegrationHttpMethod,
		Uri:                   in.Uri,
		ConnectionType:        enumValue[gwtypes.ConnectionType](in.ConnectionType),
		ConnectionId:          in.ConnectionId,
		Credentials:           in.Credentials,
		RequestParameters:     in.RequestParameters,
		RequestTemplates:      in.RequestTemplates,
		PassthroughBehavior:   in.PassthroughBehavior,
		CacheNamespace:        in.CacheNamespace,
		CacheKeyParameters:    in.CacheKeyParameters,
		ContentHandling:       enumValue[gwtypes.ContentHandlingStrategy](in.ContentHandling),
		TimeoutInMillis:       in.TimeoutInMillis,
		TlsConfig:             toTlsConfig(in.TlsConfig),
	}
}

func fromIntegration(in *gwtypes.Integration) *dto.Integration {
	if in == nil {
		return nil
	}
	out := &dto.Integration{
		Type:                enumPtr(in.Type),
		HttpMethod:          in.HttpMethod,
		Uri:                 in.Uri,
		ConnectionType:      enumPtr(in.ConnectionType),
		ConnectionId:        in.ConnectionId,
		Credentials:         in.Credentials,
		RequestParameters:   in.RequestParameters,
		RequestTemplates:    in.RequestTemplates,
		PassthroughBehavior: in.PassthroughBehavior,
		ContentHandling:     enumPtr(in.ContentHandling),
		CacheNamespace:      in.CacheNamespace,
		CacheKeyParameters:  in.CacheKeyParameters,
		TlsConfig:           fromTlsConfig(in.TlsConfig),
	}
	if in.TimeoutInMillis != 0 {
		out.TimeoutInMillis = aws.Int32(in.TimeoutInMillis)
	}
	if in.IntegrationResponses != nil {
		out.IntegrationResponses = make(map[string]dto.IntegrationResponse, len(in.IntegrationResponses))
		for k, v := range in.IntegrationResponses {
			out.IntegrationResponses[k] = dto.IntegrationResponse{
				StatusCode:         v.StatusCode,
				SelectionPattern:   v.SelectionPattern,
				ResponseParameters: v.ResponseParameters,
				ResponseTemplates:  v.ResponseTemplates,
				ContentHandling:    enumPtr(v.ContentHandling),
			}
		}
	}
	return out
}

func fromPutIntegrationOutput(out *apigw.PutIntegrationOutput) *dto.PutIntegrationResult {
	return fromIntegration(&gwtypes.Integration{
		Type:                 out.Type,
		HttpMethod:           out.HttpMethod,
		Uri:                  out.Uri,
		ConnectionType:       out.ConnectionType,
		ConnectionId:         out.ConnectionId,
		Credentials:          out.Credentials,
		RequestParameters:    out.RequestParameters,
		RequestTemplates:     out.RequestTemplates,
		PassthroughBehavior:  out.PassthroughBehavior,
		ContentHandling:      out.ContentHandling,
		TimeoutInMillis:      out.TimeoutInMillis,
		CacheNamespace:       out.CacheNamespace,
		CacheKeyParameters:   out.CacheKeyParameters,
		IntegrationResponses: out.IntegrationResponses,
		TlsConfig:            out.TlsConfig,
	})
}

func toTestInvokeMethodInput(in *dto.TestInvokeMethodRequest) *apigw.TestInvokeMethodInput {
	return &apigw.TestInvokeMethodInput{
		RestApiId:           in.RestApiId,
		ResourceId:          in.ResourceId,
		HttpMethod:          in.HttpMethod,
		PathWithQueryString: in.PathWithQueryString,
		Body:                in.Body,
		Headers:             in.Headers,
		MultiValueHeaders:   in.MultiValueHeaders,
		ClientCertificateId: in.ClientCertificateId,
		StageVariables:      in.StageVariables,
	}
}

func fromTestInvokeMethodOutput(out *apigw.TestInvokeMethodOutput) *dto.TestInvokeMethodResult {
	return &dto.TestInvokeMethodResult{
		Status:            aws.Int32(out.Status),
		Body:              out.Body,
		Headers:           out.Headers,
		MultiValueHeaders: out.MultiValueHeaders,
		Log:               out.Log,
		Latency:           aws.Int64(out.Latency),
	}
}
