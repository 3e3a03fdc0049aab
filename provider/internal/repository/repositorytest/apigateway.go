package repositorytest

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	gwtypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"
)

// Call is one recorded request.
type Call struct {
	Op    string
	Input interface{}
}

// FakeAPIGateway keeps REST APIs, resources, methods, stages and gateway
// responses in memory. It is safe for concurrent use.
type FakeAPIGateway struct {
	mu sync.Mutex

	// Errors, keyed by operation name, are returned instead of running the
	// operation. An entry is consumed by the first call unless Sticky is set.
	Errors map[string]error
	Sticky bool

	// PageSize limits GetResources pages. Zero returns everything at once.
	PageSize int

	Calls []Call

	seq       int
	apis      map[string]*gwtypes.RestApi
	resources map[string]map[string]*gwtypes.Resource
	stages    map[string]*gwtypes.Stage
	responses map[string]map[gwtypes.GatewayResponseType]*gwtypes.GatewayResponse
	vpcLinks  map[string]*gwtypes.VpcLink
}

// NewFakeAPIGateway returns an empty fake.
func NewFakeAPIGateway() *FakeAPIGateway {
	return &FakeAPIGateway{
		Errors:    map[string]error{},
		apis:      map[string]*gwtypes.RestApi{},
		resources: map[string]map[string]*gwtypes.Resource{},
		stages:    map[string]*gwtypes.Stage{},
		responses: map[string]map[gwtypes.GatewayResponseType]*gwtypes.GatewayResponse{},
		vpcLinks:  map[string]*gwtypes.VpcLink{},
	}
}

// Ops returns the names of the recorded calls in order.
func (f *FakeAPIGateway) Ops() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	ops := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Inputs returns the inputs recorded for op.
func (f *FakeAPIGateway) Inputs(op string) []interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []interface{}
	for _, c := range f.Calls {
		if c.Op == op {
			out = append(out, c.Input)
		}
	}
	return out
}

// AddRestApi seeds a REST API with its root resource and returns its ID.
func (f *FakeAPIGateway) AddRestApi(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addRestApi(&gwtypes.RestApi{Name: aws.String(name)})
}

// ResourcePaths lists the resource paths of an API, sorted.
func (f *FakeAPIGateway) ResourcePaths(apiID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var paths []string
	for _, r := range f.resources[apiID] {
		paths = append(paths, aws.ToString(r.Path))
	}
	sort.Strings(paths)
	return paths
}

// Method returns the method stored on the resource at path, if any.
func (f *FakeAPIGateway) Method(apiID, path, httpMethod string) (gwtypes.Method, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.resources[apiID] {
		if aws.ToString(r.Path) == path {
			m, ok := r.ResourceMethods[httpMethod]
			return m, ok
		}
	}
	return gwtypes.Method{}, false
}

// Stage returns a copy of the named stage, if any.
func (f *FakeAPIGateway) Stage(apiID, stageName string) (gwtypes.Stage, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.stages[apiID+"/"+stageName]
	if !ok {
		return gwtypes.Stage{}, false
	}
	return *s, true
}

// record logs the call and returns the injected error for op, if any.
// The caller holds f.mu.
func (f *FakeAPIGateway) record(op string, input interface{}) error {
	f.Calls = append(f.Calls, Call{Op: op, Input: input})
	if err, ok := f.Errors[op]; ok {
		if !f.Sticky {
			delete(f.Errors, op)
		}
		return err
	}
	return nil
}

func (f *FakeAPIGateway) nextID(prefix string) string {
	f.seq++
	return prefix + strconv.Itoa(f.seq)
}

func notFound(format string, args ...interface{}) error {
	return &gwtypes.NotFoundException{Message: aws.String(fmt.Sprintf(format, args...))}
}

func conflict(format string, args ...interface{}) error {
	return &gwtypes.ConflictException{Message: aws.String(fmt.Sprintf(format, args...))}
}

func badRequest(format string, args ...interface{}) error {
	return &gwtypes.BadRequestException{Message: aws.String(fmt.Sprintf(format, args...))}
}

func (f *FakeAPIGateway) addRestApi(api *gwtypes.RestApi) string {
	id := f.nextID("api")
	rootID := f.nextID("root")
	api.Id = aws.String(id)
	api.RootResourceId = aws.String(rootID)
	if api.CreatedDate == nil {
		api.CreatedDate = aws.Time(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	}
	f.apis[id] = api
	f.resources[id] = map[string]*gwtypes.Resource{
		rootID: {Id: aws.String(rootID), Path: aws.String("/")},
	}
	return id
}

func (f *FakeAPIGateway) api(id *string) (*gwtypes.RestApi, error) {
	api, ok := f.apis[aws.ToString(id)]
	if !ok {
		return nil, notFound("Invalid API identifier specified %s", aws.ToString(id))
	}
	return api, nil
}

func (f *FakeAPIGateway) CreateRestApi(_ context.Context, in *apigw.CreateRestApiInput, _ ...func(*apigw.Options)) (*apigw.CreateRestApiOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateRestApi", in); err != nil {
		return nil, err
	}
	if aws.ToString(in.Name) == "" {
		return nil, badRequest("name is required")
	}
	api := &gwtypes.RestApi{
		Name:                      in.Name,
		Description:               in.Description,
		Version:                   in.Version,
		BinaryMediaTypes:          in.BinaryMediaTypes,
		MinimumCompressionSize:    in.MinimumCompressionSize,
		ApiKeySource:              in.ApiKeySource,
		EndpointConfiguration:     in.EndpointConfiguration,
		Policy:                    in.Policy,
		Tags:                      maps.Clone(in.Tags),
		DisableExecuteApiEndpoint: in.DisableExecuteApiEndpoint,
	}
	if api.ApiKeySource == "" {
		api.ApiKeySource = gwtypes.ApiKeySourceTypeHeader
	}
	f.addRestApi(api)
	a := *api
	return &apigw.CreateRestApiOutput{
		Id: a.Id, Name: a.Name, Description: a.Description, Version: a.Version, CreatedDate: a.CreatedDate,
		BinaryMediaTypes: a.BinaryMediaTypes, MinimumCompressionSize: a.MinimumCompressionSize,
		ApiKeySource: a.ApiKeySource, EndpointConfiguration: a.EndpointConfiguration, Policy: a.Policy,
		Tags: a.Tags, DisableExecuteApiEndpoint: a.DisableExecuteApiEndpoint, RootResourceId: a.RootResourceId,
	}, nil
}

func (f *FakeAPIGateway) ImportRestApi(_ context.Context, in *apigw.ImportRestApiInput, _ ...func(*apigw.Options)) (*apigw.ImportRestApiOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ImportRestApi", in); err != nil {
		return nil, err
	}
	if len(in.Body) == 0 {
		return nil, badRequest("body is required")
	}
	api := &gwtypes.RestApi{
		Name:         aws.String(titleOf(in.Body)),
		ApiKeySource: gwtypes.ApiKeySourceTypeHeader,
	}
	f.addRestApi(api)
	a := *api
	return &apigw.ImportRestApiOutput{
		Id: a.Id, Name: a.Name, CreatedDate: a.CreatedDate, ApiKeySource: a.ApiKeySource,
		RootResourceId: a.RootResourceId, Warnings: []string{"imported by fake"},
	}, nil
}

func (f *FakeAPIGateway) PutRestApi(_ context.Context, in *apigw.PutRestApiInput, _ ...func(*apigw.Options)) (*apigw.PutRestApiOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("PutRestApi", in); err != nil {
		return nil, err
	}
	api, err := f.api(in.RestApiId)
	if err != nil {
		return nil, err
	}
	api.Name = aws.String(titleOf(in.Body))
	a := *api
	return &apigw.PutRestApiOutput{
		Id: a.Id, Name: a.Name, Description: a.Description, CreatedDate: a.CreatedDate,
		ApiKeySource: a.ApiKeySource, RootResourceId: a.RootResourceId, Tags: a.Tags,
	}, nil
}

func (f *FakeAPIGateway) GetRestApi(_ context.Context, in *apigw.GetRestApiInput, _ ...func(*apigw.Options)) (*apigw.GetRestApiOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetRestApi", in); err != nil {
		return nil, err
	}
	api, err := f.api(in.RestApiId)
	if err != nil {
		return nil, err
	}
	a := *api
	return &apigw.GetRestApiOutput{
		Id: a.Id, Name: a.Name, Description: a.Description, Version: a.Version, CreatedDate: a.CreatedDate,
		BinaryMediaTypes: a.BinaryMediaTypes, MinimumCompressionSize: a.MinimumCompressionSize,
		ApiKeySource: a.ApiKeySource, EndpointConfiguration: a.EndpointConfiguration, Policy: a.Policy,
		Tags: a.Tags, DisableExecuteApiEndpoint: a.DisableExecuteApiEndpoint, RootResourceId: a.RootResourceId,
	}, nil
}

func (f *FakeAPIGateway) UpdateRestApi(_ context.Context, in *apigw.UpdateRestApiInput, _ ...func(*apigw.Options)) (*apigw.UpdateRestApiOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateRestApi", in); err != nil {
		return nil, err
	}
	api, err := f.api(in.RestApiId)
	if err != nil {
		return nil, err
	}
	for _, op := range in.PatchOperations {
		if err := patchRestApi(api, op); err != nil {
			return nil, err
		}
	}
	a := *api
	return &apigw.UpdateRestApiOutput{
		Id: a.Id, Name: a.Name, Description: a.Description, Version: a.Version, CreatedDate: a.CreatedDate,
		BinaryMediaTypes: a.BinaryMediaTypes, MinimumCompressionSize: a.MinimumCompressionSize,
		ApiKeySource: a.ApiKeySource, EndpointConfiguration: a.EndpointConfiguration, Policy: a.Policy,
		Tags: a.Tags, DisableExecuteApiEndpoint: a.DisableExecuteApiEndpoint, RootResourceId: a.RootResourceId,
	}, nil
}

// taggedApi resolves an ARN of the form arn:aws:apigateway:<region>::/restapis/<id>.
func (f *FakeAPIGateway) taggedApi(arn *string) (*gwtypes.RestApi, error) {
	_, id, ok := strings.Cut(aws.ToString(arn), "::/restapis/")
	if !ok || id == "" || strings.Contains(id, "/") {
		return nil, badRequest("Invalid resource ARN %s", aws.ToString(arn))
	}
	return f.api(aws.String(id))
}

func (f *FakeAPIGateway) TagResource(_ context.Context, in *apigw.TagResourceInput, _ ...func(*apigw.Options)) (*apigw.TagResourceOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("TagResource", in); err != nil {
		return nil, err
	}
	api, err := f.taggedApi(in.ResourceArn)
	if err != nil {
		return nil, err
	}
	if api.Tags == nil {
		api.Tags = map[string]string{}
	}
	maps.Copy(api.Tags, in.Tags)
	return &apigw.TagResourceOutput{}, nil
}

func (f *FakeAPIGateway) UntagResource(_ context.Context, in *apigw.UntagResourceInput, _ ...func(*apigw.Options)) (*apigw.UntagResourceOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UntagResource", in); err != nil {
		return nil, err
	}
	api, err := f.taggedApi(in.ResourceArn)
	if err != nil {
		return nil, err
	}
	for _, k := range in.TagKeys {
		delete(api.Tags, k)
	}
	return &apigw.UntagResourceOutput{}, nil
}

func (f *FakeAPIGateway) DeleteRestApi(_ context.Context, in *apigw.DeleteRestApiInput, _ ...func(*apigw.Options)) (*apigw.DeleteRestApiOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteRestApi", in); err != nil {
		return nil, err
	}
	if _, err := f.api(in.RestApiId); err != nil {
		return nil, err
	}
	id := aws.ToString(in.RestApiId)
	delete(f.apis, id)
	delete(f.resources, id)
	delete(f.responses, id)
	return &apigw.DeleteRestApiOutput{}, nil
}

func (f *FakeAPIGateway) GetResources(_ context.Context, in *apigw.GetResourcesInput, _ ...func(*apigw.Options)) (*apigw.GetResourcesOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetResources", in); err != nil {
		return nil, err
	}
	if _, err := f.api(in.RestApiId); err != nil {
		return nil, err
	}

	var items []gwtypes.Resource
	for _, r := range f.resources[aws.ToString(in.RestApiId)] {
		items = append(items, *r)
	}
	sort.Slice(items, func(i, j int) bool { return aws.ToString(items[i].Path) < aws.ToString(items[j].Path) })

	start := 0
	if in.Position != nil {
		start, _ = strconv.Atoi(aws.ToString(in.Position))
	}
	end := len(items)
	if f.PageSize > 0 && start+f.PageSize < end {
		end = start + f.PageSize
	}
	out := &apigw.GetResourcesOutput{Items: items[start:end]}
	if end < len(items) {
		out.Position = aws.String(strconv.Itoa(end))
	}
	return out, nil
}

func (f *FakeAPIGateway) CreateResource(_ context.Context, in *apigw.CreateResourceInput, _ ...func(*apigw.Options)) (*apigw.CreateResourceOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateResource", in); err != nil {
		return nil, err
	}
	if _, err := f.api(in.RestApiId); err != nil {
		return nil, err
	}
	tree := f.resources[aws.ToString(in.RestApiId)]
	parent, ok := tree[aws.ToString(in.ParentId)]
	if !ok {
		return nil, notFound("Invalid Resource identifier specified")
	}
	path := strings.TrimSuffix(aws.ToString(parent.Path), "/") + "/" + aws.ToString(in.PathPart)
	for _, r := range tree {
		if aws.ToString(r.Path) == path {
			return nil, conflict("Another resource with the same parent already has this name: %s", aws.ToString(in.PathPart))
		}
	}
	id := f.nextID("res")
	tree[id] = &gwtypes.Resource{Id: aws.String(id), ParentId: in.ParentId, PathPart: in.PathPart, Path: aws.String(path)}
	return &apigw.CreateResourceOutput{Id: aws.String(id), ParentId: in.ParentId, PathPart: in.PathPart, Path: aws.String(path)}, nil
}

func (f *FakeAPIGateway) DeleteResource(_ context.Context, in *apigw.DeleteResourceInput, _ ...func(*apigw.Options)) (*apigw.DeleteResourceOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteResource", in); err != nil {
		return nil, err
	}
	tree := f.resources[aws.ToString(in.RestApiId)]
	r, ok := tree[aws.ToString(in.ResourceId)]
	if !ok {
		return nil, notFound("Invalid Resource identifier specified")
	}
	prefix := aws.ToString(r.Path) + "/"
	for id, other := range tree {
		if id == aws.ToString(in.ResourceId) || strings.HasPrefix(aws.ToString(other.Path), prefix) {
			delete(tree, id)
		}
	}
	return &apigw.DeleteResourceOutput{}, nil
}

func (f *FakeAPIGateway) resource(apiID, resourceID *string) (*gwtypes.Resource, error) {
	if _, err := f.api(apiID); err != nil {
		return nil, err
	}
	r, ok := f.resources[aws.ToString(apiID)][aws.ToString(resourceID)]
	if !ok {
		return nil, notFound("Invalid Resource identifier specified")
	}
	return r, nil
}

func (f *FakeAPIGateway) PutMethod(_ context.Context, in *apigw.PutMethodInput, _ ...func(*apigw.Options)) (*apigw.PutMethodOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("PutMethod", in); err != nil {
		return nil, err
	}
	r, err := f.resource(in.RestApiId, in.ResourceId)
	if err != nil {
		return nil, err
	}
	verb := aws.ToString(in.HttpMethod)
	if _, ok := r.ResourceMethods[verb]; ok {
		return nil, conflict("Method already exists for this resource")
	}
	if r.ResourceMethods == nil {
		r.ResourceMethods = map[string]gwtypes.Method{}
	}
	m := gwtypes.Method{
		HttpMethod:          in.HttpMethod,
		AuthorizationType:   in.AuthorizationType,
		AuthorizerId:        in.AuthorizerId,
		ApiKeyRequired:      aws.Bool(in.ApiKeyRequired),
		OperationName:       in.OperationName,
		RequestParameters:   in.RequestParameters,
		RequestModels:       in.RequestModels,
		RequestValidatorId:  in.RequestValidatorId,
		AuthorizationScopes: in.AuthorizationScopes,
	}
	r.ResourceMethods[verb] = m
	return &apigw.PutMethodOutput{
		HttpMethod: m.HttpMethod, AuthorizationType: m.AuthorizationType, AuthorizerId: m.AuthorizerId,
		ApiKeyRequired: m.ApiKeyRequired, OperationName: m.OperationName, RequestParameters: m.RequestParameters,
		RequestModels: m.RequestModels, RequestValidatorId: m.RequestValidatorId, AuthorizationScopes: m.AuthorizationScopes,
	}, nil
}

func (f *FakeAPIGateway) DeleteMethod(_ context.Context, in *apigw.DeleteMethodInput, _ ...func(*apigw.Options)) (*apigw.DeleteMethodOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteMethod", in); err != nil {
		return nil, err
	}
	r, err := f.resource(in.RestApiId, in.ResourceId)
	if err != nil {
		return nil, err
	}
	if _, ok := r.ResourceMethods[aws.ToString(in.HttpMethod)]; !ok {
		return nil, notFound("Invalid Method identifier specified")
	}
	delete(r.ResourceMethods, aws.ToString(in.HttpMethod))
	return &apigw.DeleteMethodOutput{}, nil
}

func (f *FakeAPIGateway) method(apiID, resourceID, verb *string) (*gwtypes.Resource, gwtypes.Method, error) {
	r, err := f.resource(apiID, resourceID)
	if err != nil {
		return nil, gwtypes.Method{}, err
	}
	m, ok := r.ResourceMethods[aws.ToString(verb)]
	if !ok {
		return nil, gwtypes.Method{}, notFound("Invalid Method identifier specified")
	}
	return r, m, nil
}

func (f *FakeAPIGateway) PutMethodResponse(_ context.Context, in *apigw.PutMethodResponseInput, _ ...func(*apigw.Options)) (*apigw.PutMethodResponseOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("PutMethodResponse", in); err != nil {
		return nil, err
	}
	r, m, err := f.method(in.RestApiId, in.ResourceId, in.HttpMethod)
	if err != nil {
		return nil, err
	}
	code := aws.ToString(in.StatusCode)
	if _, ok := m.MethodResponses[code]; ok {
		return nil, conflict("Response already exists for this resource")
	}
	if m.MethodResponses == nil {
		m.MethodResponses = map[string]gwtypes.MethodResponse{}
	}
	m.MethodResponses[code] = gwtypes.MethodResponse{
		StatusCode:         in.StatusCode,
		ResponseParameters: in.ResponseParameters,
		ResponseModels:     in.ResponseModels,
	}
	r.ResourceMethods[aws.ToString(in.HttpMethod)] = m
	return &apigw.PutMethodResponseOutput{
		StatusCode:         in.StatusCode,
		ResponseParameters: in.ResponseParameters,
		ResponseModels:     in.ResponseModels,
	}, nil
}

func (f *FakeAPIGateway) PutIntegration(_ context.Context, in *apigw.PutIntegrationInput, _ ...func(*apigw.Options)) (*apigw.PutIntegrationOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("PutIntegration", in); err != nil {
		return nil, err
	}
	r, m, err := f.method(in.RestApiId, in.ResourceId, in.HttpMethod)
	if err != nil {
		return nil, err
	}
	timeout := int32(29000)
	if in.TimeoutInMillis != nil {
		timeout = *in.TimeoutInMillis
	}
	integration := &gwtypes.Integration{
		Type:                in.Type,
		HttpMethod:          in.IntegrationHttpMethod,
		Uri:                 in.Uri,
		ConnectionType:      in.ConnectionType,
		ConnectionId:        in.ConnectionId,
		Credentials:         in.Credentials,
		RequestParameters:   in.RequestParameters,
		RequestTemplates:    in.RequestTemplates,
		PassthroughBehavior: in.PassthroughBehavior,
		ContentHandling:     in.ContentHandling,
		TimeoutInMillis:     timeout,
		CacheNamespace:      in.CacheNamespace,
		CacheKeyParameters:  in.CacheKeyParameters,
		TlsConfig:           in.TlsConfig,
	}
	m.MethodIntegration = integration
	r.ResourceMethods[aws.ToString(in.HttpMethod)] = m
	return &apigw.PutIntegrationOutput{
		Type: integration.Type, HttpMethod: integration.HttpMethod, Uri: integration.Uri,
		ConnectionType: integration.ConnectionType, ConnectionId: integration.ConnectionId,
		Credentials: integration.Credentials, RequestParameters: integration.RequestParameters,
		RequestTemplates: integration.RequestTemplates, PassthroughBehavior: integration.PassthroughBehavior,
		ContentHandling: integration.ContentHandling, TimeoutInMillis: integration.TimeoutInMillis,
		CacheNamespace: integration.CacheNamespace, CacheKeyParameters: integration.CacheKeyParameters,
		TlsConfig: integration.TlsConfig,
	}, nil
}

func (f *FakeAPIGateway) TestInvokeMethod(_ context.Context, in *apigw.TestInvokeMethodInput, _ ...func(*apigw.Options)) (*apigw.TestInvokeMethodOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("TestInvokeMethod", in); err != nil {
		return nil, err
	}
	_, m, err := f.method(in.RestApiId, in.ResourceId, in.HttpMethod)
	if err != nil {
		return nil, err
	}
	if m.MethodIntegration == nil {
		return &apigw.TestInvokeMethodOutput{Status: 500, Log: aws.String("Execution failed due to configuration error: No integration defined for method")}, nil
	}
	return &apigw.TestInvokeMethodOutput{
		Status:            200,
		Body:              in.Body,
		Headers:           in.Headers,
		MultiValueHeaders: in.MultiValueHeaders,
		Log:               aws.String("Method completed with status: 200"),
		Latency:           12,
	}, nil
}

func (f *FakeAPIGateway) CreateDeployment(_ context.Context, in *apigw.CreateDeploymentInput, _ ...func(*apigw.Options)) (*apigw.CreateDeploymentOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateDeployment", in); err != nil {
		return nil, err
	}
	apiID := aws.ToString(in.RestApiId)
	if _, err := f.api(in.RestApiId); err != nil {
		return nil, err
	}

	summary := map[string]map[string]gwtypes.MethodSnapshot{}
	for _, r := range f.resources[apiID] {
		for verb, m := range r.ResourceMethods {
			if m.MethodIntegration == nil {
				return nil, badRequest("No integration defined for method")
			}
			if summary[aws.ToString(r.Path)] == nil {
				summary[aws.ToString(r.Path)] = map[string]gwtypes.MethodSnapshot{}
			}
			summary[aws.ToString(r.Path)][verb] = gwtypes.MethodSnapshot{
				AuthorizationType: m.AuthorizationType,
				ApiKeyRequired:    aws.ToBool(m.ApiKeyRequired),
			}
		}
	}
	if len(summary) == 0 {
		return nil, badRequest("The REST API doesn't contain any methods")
	}

	id := f.nextID("dep")
	if name := aws.ToString(in.StageName); name != "" {
		s, ok := f.stages[apiID+"/"+name]
		if !ok {
			s = &gwtypes.Stage{StageName: in.StageName, CreatedDate: aws.Time(time.Now().UTC())}
			f.stages[apiID+"/"+name] = s
		}
		s.DeploymentId = aws.String(id)
		s.Variables = maps.Clone(in.Variables)
		if in.StageDescription != nil {
			s.Description = in.StageDescription
		}
		if c := in.CanarySettings; c != nil {
			s.CanarySettings = &gwtypes.CanarySettings{
				DeploymentId:           aws.String(id),
				PercentTraffic:         c.PercentTraffic,
				StageVariableOverrides: c.StageVariableOverrides,
				UseStageCache:          c.UseStageCache,
			}
		}
	}
	return &apigw.CreateDeploymentOutput{
		Id:          aws.String(id),
		Description: in.Description,
		CreatedDate: aws.Time(time.Now().UTC()),
		ApiSummary:  summary,
	}, nil
}

func (f *FakeAPIGateway) CreateStage(_ context.Context, in *apigw.CreateStageInput, _ ...func(*apigw.Options)) (*apigw.CreateStageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateStage", in); err != nil {
		return nil, err
	}
	if _, err := f.api(in.RestApiId); err != nil {
		return nil, err
	}
	key := aws.ToString(in.RestApiId) + "/" + aws.ToString(in.StageName)
	if _, ok := f.stages[key]; ok {
		return nil, conflict("Stage already exists")
	}
	s := &gwtypes.Stage{
		StageName:            in.StageName,
		DeploymentId:         in.DeploymentId,
		Description:          in.Description,
		CacheClusterEnabled:  in.CacheClusterEnabled,
		CacheClusterSize:     in.CacheClusterSize,
		Variables:            in.Variables,
		DocumentationVersion: in.DocumentationVersion,
		CanarySettings:       in.CanarySettings,
		TracingEnabled:       in.TracingEnabled,
		Tags:                 in.Tags,
		CreatedDate:          aws.Time(time.Now().UTC()),
	}
	if s.CacheClusterEnabled {
		s.CacheClusterStatus = gwtypes.CacheClusterStatusCreateInProgress
	} else {
		s.CacheClusterStatus = gwtypes.CacheClusterStatusNotAvailable
	}
	f.stages[key] = s
	c := *s
	return &apigw.CreateStageOutput{
		StageName: c.StageName, DeploymentId: c.DeploymentId, Description: c.Description,
		ClientCertificateId: c.ClientCertificateId, CacheClusterEnabled: c.CacheClusterEnabled,
		CacheClusterSize: c.CacheClusterSize, CacheClusterStatus: c.CacheClusterStatus,
		MethodSettings: c.MethodSettings, Variables: c.Variables, DocumentationVersion: c.DocumentationVersion,
		AccessLogSettings: c.AccessLogSettings, CanarySettings: c.CanarySettings, TracingEnabled: c.TracingEnabled,
		WebAclArn: c.WebAclArn, Tags: c.Tags, CreatedDate: c.CreatedDate, LastUpdatedDate: c.LastUpdatedDate,
	}, nil
}

func (f *FakeAPIGateway) UpdateStage(_ context.Context, in *apigw.UpdateStageInput, _ ...func(*apigw.Options)) (*apigw.UpdateStageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateStage", in); err != nil {
		return nil, err
	}
	s, ok := f.stages[aws.ToString(in.RestApiId)+"/"+aws.ToString(in.StageName)]
	if !ok {
		return nil, notFound("Invalid Stage identifier specified")
	}
	for _, op := range in.PatchOperations {
		if err := patchStage(s, op); err != nil {
			return nil, err
		}
	}
	s.LastUpdatedDate = aws.Time(time.Now().UTC())
	c := *s
	return &apigw.UpdateStageOutput{
		StageName: c.StageName, DeploymentId: c.DeploymentId, Description: c.Description,
		ClientCertificateId: c.ClientCertificateId, CacheClusterEnabled: c.CacheClusterEnabled,
		CacheClusterSize: c.CacheClusterSize, CacheClusterStatus: c.CacheClusterStatus,
		MethodSettings: c.MethodSettings, Variables: c.Variables, DocumentationVersion: c.DocumentationVersion,
		AccessLogSettings: c.AccessLogSettings, CanarySettings: c.CanarySettings, TracingEnabled: c.TracingEnabled,
		WebAclArn: c.WebAclArn, Tags: c.Tags, CreatedDate: c.CreatedDate, LastUpdatedDate: c.LastUpdatedDate,
	}, nil
}

func (f *FakeAPIGateway) gatewayResponse(apiID *string, rt gwtypes.GatewayResponseType) (*gwtypes.GatewayResponse, error) {
	if _, err := f.api(apiID); err != nil {
		return nil, err
	}
	if r, ok := f.responses[aws.ToString(apiID)][rt]; ok {
		return r, nil
	}
	if !isGatewayResponseType(rt) {
		return nil, badRequest("Invalid response type: %s", rt)
	}
	return &gwtypes.GatewayResponse{ResponseType: rt, StatusCode: defaultStatus(rt), DefaultResponse: true}, nil
}

func (f *FakeAPIGateway) PutGatewayResponse(_ context.Context, in *apigw.PutGatewayResponseInput, _ ...func(*apigw.Options)) (*apigw.PutGatewayResponseOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("PutGatewayResponse", in); err != nil {
		return nil, err
	}
	if _, err := f.gatewayResponse(in.RestApiId, in.ResponseType); err != nil {
		return nil, err
	}
	r := &gwtypes.GatewayResponse{
		ResponseType:       in.ResponseType,
		StatusCode:         in.StatusCode,
		ResponseParameters: maps.Clone(in.ResponseParameters),
		ResponseTemplates:  maps.Clone(in.ResponseTemplates),
	}
	// A put without a status code restores the default one of the type.
	if r.StatusCode == nil {
		r.StatusCode = defaultStatus(in.ResponseType)
	}
	apiID := aws.ToString(in.RestApiId)
	if f.responses[apiID] == nil {
		f.responses[apiID] = map[gwtypes.GatewayResponseType]*gwtypes.GatewayResponse{}
	}
	f.responses[apiID][in.ResponseType] = r
	return &apigw.PutGatewayResponseOutput{
		ResponseType: r.ResponseType, StatusCode: r.StatusCode,
		ResponseParameters: r.ResponseParameters, ResponseTemplates: r.ResponseTemplates,
	}, nil
}

func (f *FakeAPIGateway) GetGatewayResponse(_ context.Context, in *apigw.GetGatewayResponseInput, _ ...func(*apigw.Options)) (*apigw.GetGatewayResponseOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetGatewayResponse", in); err != nil {
		return nil, err
	}
	r, err := f.gatewayResponse(in.RestApiId, in.ResponseType)
	if err != nil {
		return nil, err
	}
	return &apigw.GetGatewayResponseOutput{
		ResponseType: r.ResponseType, StatusCode: r.StatusCode, DefaultResponse: r.DefaultResponse,
		ResponseParameters: r.ResponseParameters, ResponseTemplates: r.ResponseTemplates,
	}, nil
}

func (f *FakeAPIGateway) UpdateGatewayResponse(_ context.Context, in *apigw.UpdateGatewayResponseInput, _ ...func(*apigw.Options)) (*apigw.UpdateGatewayResponseOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateGatewayResponse", in); err != nil {
		return nil, err
	}
	apiID := aws.ToString(in.RestApiId)
	r, ok := f.responses[apiID][in.ResponseType]
	if !ok {
		return nil, notFound("Gateway response type not defined on api")
	}
	for _, op := range in.PatchOperations {
		if err := patchGatewayResponse(r, op); err != nil {
			return nil, err
		}
	}
	return &apigw.UpdateGatewayResponseOutput{
		ResponseType: r.ResponseType, StatusCode: r.StatusCode,
		ResponseParameters: r.ResponseParameters, ResponseTemplates: r.ResponseTemplates,
	}, nil
}

func (f *FakeAPIGateway) DeleteGatewayResponse(_ context.Context, in *apigw.DeleteGatewayResponseInput, _ ...func(*apigw.Options)) (*apigw.DeleteGatewayResponseOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteGatewayResponse", in); err != nil {
		return nil, err
	}
	apiID := aws.ToString(in.RestApiId)
	if _, ok := f.responses[apiID][in.ResponseType]; !ok {
		return nil, notFound("Gateway response type not defined on api")
	}
	delete(f.responses[apiID], in.ResponseType)
	return &apigw.DeleteGatewayResponseOutput{}, nil
}

func (f *FakeAPIGateway) CreateDomainName(_ context.Context, in *apigw.CreateDomainNameInput, _ ...func(*apigw.Options)) (*apigw.CreateDomainNameOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateDomainName", in); err != nil {
		return nil, err
	}
	out := &apigw.CreateDomainNameOutput{
		DomainName:              in.DomainName,
		CertificateName:         in.CertificateName,
		CertificateArn:          in.CertificateArn,
		RegionalCertificateArn:  in.RegionalCertificateArn,
		RegionalCertificateName: in.RegionalCertificateName,
		EndpointConfiguration:   in.EndpointConfiguration,
		SecurityPolicy:          in.SecurityPolicy,
		Tags:                    in.Tags,
		DomainNameStatus:        gwtypes.DomainNameStatusPending,
	}
	if in.RegionalCertificateArn != nil {
		out.RegionalDomainName = aws.String("d-" + f.nextID("") + ".execute-api.amazonaws.com")
	} else {
		out.DistributionDomainName = aws.String("d" + f.nextID("") + ".cloudfront.net")
	}
	if m := in.MutualTlsAuthentication; m != nil {
		out.MutualTlsAuthentication = &gwtypes.MutualTlsAuthentication{
			TruststoreUri:     m.TruststoreUri,
			TruststoreVersion: m.TruststoreVersion,
		}
	}
	return out, nil
}

func (f *FakeAPIGateway) CreateVpcLink(_ context.Context, in *apigw.CreateVpcLinkInput, _ ...func(*apigw.Options)) (*apigw.CreateVpcLinkOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateVpcLink", in); err != nil {
		return nil, err
	}
	link := &gwtypes.VpcLink{
		Id:          aws.String(f.nextID("vpcl")),
		Name:        in.Name,
		Description: in.Description,
		TargetArns:  in.TargetArns,
		Tags:        in.Tags,
		Status:      gwtypes.VpcLinkStatusPending,
	}
	f.vpcLinks[aws.ToString(link.Id)] = link
	return &apigw.CreateVpcLinkOutput{
		Id: link.Id, Name: link.Name, Description: link.Description,
		TargetArns: link.TargetArns, Tags: link.Tags, Status: link.Status,
	}, nil
}

func (f *FakeAPIGateway) GetVpcLink(_ context.Context, in *apigw.GetVpcLinkInput, _ ...func(*apigw.Options)) (*apigw.GetVpcLinkOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetVpcLink", in); err != nil {
		return nil, err
	}
	link, ok := f.vpcLinks[aws.ToString(in.VpcLinkId)]
	if !ok {
		return nil, notFound("VpcLink not found")
	}
	link.Status = gwtypes.VpcLinkStatusAvailable
	return &apigw.GetVpcLinkOutput{
		Id: link.Id, Name: link.Name, Description: link.Description,
		TargetArns: link.TargetArns, Tags: link.Tags, Status: link.Status,
	}, nil
}

func (f *FakeAPIGateway) CreateDocumentationPart(_ context.Context, in *apigw.CreateDocumentationPartInput, _ ...func(*apigw.Options)) (*apigw.CreateDocumentationPartOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateDocumentationPart", in); err != nil {
		return nil, err
	}
	if _, err := f.api(in.RestApiId); err != nil {
		return nil, err
	}
	if in.Location == nil || in.Location.Type == "" {
		return nil, badRequest("location type is required")
	}
	return &apigw.CreateDocumentationPartOutput{
		Id:         aws.String(f.nextID("doc")),
		Location:   in.Location,
		Properties: in.Properties,
	}, nil
}
