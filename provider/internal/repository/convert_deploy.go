package repository

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	gwtypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
)

func toCreateDeploymentInput(in *dto.CreateDeploymentRequest) *apigw.CreateDeploymentInput {
	out := &apigw.CreateDeploymentInput{
		RestApiId:           in.RestApiId,
		StageName:           in.StageName,
		StageDescription:    in.StageDescription,
		Description:         in.Description,
		CacheClusterEnabled: in.CacheClusterEnabled,
		CacheClusterSize:    enumValue[gwtypes.CacheClusterSize](in.CacheClusterSize),
		Variables:           in.Variables,
		TracingEnabled:      in.TracingEnabled,
	}
	if c := in.CanarySettings; c != nil {
		out.CanarySettings = &gwtypes.DeploymentCanarySettings{
			PercentTraffic:         aws.ToFloat64(c.PercentTraffic),
			StageVariableOverrides: c.StageVariableOverrides,
			UseStageCache:          aws.ToBool(c.UseStageCache),
		}
	}
	return out
}

func fromCreateDeploymentOutput(out *apigw.CreateDeploymentOutput) *dto.CreateDeploymentResult {
	d := &dto.CreateDeploymentResult{
		Id:          out.Id,
		Description: out.Description,
		CreatedDate: out.CreatedDate,
	}
	if out.ApiSummary != nil {
		d.ApiSummary = make(map[string]map[string]dto.MethodSnapshot, len(out.ApiSummary))
		for path, methods := range out.ApiSummary {
			snapshots := make(map[string]dto.MethodSnapshot, len(methods))
			for method, s := range methods {
				snapshots[method] = dto.MethodSnapshot{
					AuthorizationType: s.AuthorizationType,
					ApiKeyRequired:    aws.Bool(s.ApiKeyRequired),
				}
			}
			d.ApiSummary[path] = snapshots
		}
	}
	return d
}

func toCanarySettings(in *dto.CanarySettings) *gwtypes.CanarySettings {
	if in == nil {
		return nil
	}
	return &gwtypes.CanarySettings{
		PercentTraffic:         aws.ToFloat64(in.PercentTraffic),
		DeploymentId:           in.DeploymentId,
		StageVariableOverrides: in.StageVariableOverrides,
		UseStageCache:          aws.ToBool(in.UseStageCache),
	}
}

func fromCanarySettings(in *gwtypes.CanarySettings) *dto.CanarySettings {
	if in == nil {
		return nil
	}
	return &dto.CanarySettings{
		PercentTraffic:         aws.Float64(in.PercentTraffic),
		DeploymentId:           in.DeploymentId,
		StageVariableOverrides: in.StageVariableOverrides,
		UseStageCache:          aws.Bool(in.UseStageCache),
	}
}

func fromMethodSettings(in map[string]gwtypes.MethodSetting) map[string]dto.MethodSetting {
	if in == nil {
		return nil
	}
	out := make(map[string]dto.MethodSetting, len(in))
	for k, v := range in {
		out[k] = dto.MethodSetting{
			MetricsEnabled:                         aws.Bool(v.MetricsEnabled),
			LoggingLevel:                           v.LoggingLevel,
			DataTraceEnabled:                       aws.Bool(v.DataTraceEnabled),
			ThrottlingBurstLimit:                   aws.Int32(v.ThrottlingBurstLimit),
			ThrottlingRateLimit:                    aws.Float64(v.ThrottlingRateLimit),
			CachingEnabled:                         aws.Bool(v.CachingEnabled),
			CacheTtlInSeconds:                      aws.Int32(v.CacheTtlInSeconds),
			CacheDataEncrypted:                     aws.Bool(v.CacheDataEncrypted),
			RequireAuthorizationForCacheControl:    aws.Bool(v.RequireAuthorizationForCacheControl),
			UnauthorizedCacheControlHeaderStrategy: enumPtr(v.UnauthorizedCacheControlHeaderStrategy),
		}
	}
	return out
}

func toCreateStageInput(in *dto.CreateStageRequest) *apigw.CreateStageInput {
	return &apigw.CreateStageInput{
		RestApiId:            in.RestApiId,
		StageName:            in.StageName,
		DeploymentId:         in.DeploymentId,
		Description:          in.Description,
		CacheClusterEnabled:  aws.ToBool(in.CacheClusterEnabled),
		CacheClusterSize:     enumValue[gwtypes.CacheClusterSize](in.CacheClusterSize),
		Variables:            in.Variables,
		DocumentationVersion: in.DocumentationVersion,
		CanarySettings:       toCanarySettings(in.CanarySettings),
		TracingEnabled:       aws.ToBool(in.TracingEnabled),
		Tags:                 in.Tags,
	}
}

// stageFields is the common shape of the stage outputs.
type stageFields struct {
	deploymentID, clientCertificateID, stageName, description *string
	documentationVersion, webAclArn                           *string
	cacheClusterEnabled, tracingEnabled                       bool
	cacheClusterSize                                          gwtypes.CacheClusterSize
	cacheClusterStatus                                        gwtypes.CacheClusterStatus
	methodSettings                                            map[string]gwtypes.MethodSetting
	variables, tags                                           map[string]string
	accessLogSettings                                         *gwtypes.AccessLogSettings
	canarySettings                                            *gwtypes.CanarySettings
	createdDate, lastUpdatedDate                              *time.Time
}

func (f stageFields) record() *dto.Stage {
	s := &dto.Stage{
		DeploymentId:         f.deploymentID,
		ClientCertificateId:  f.clientCertificateID,
		StageName:            f.stageName,
		Description:          f.description,
		CacheClusterEnabled:  aws.Bool(f.cacheClusterEnabled),
		CacheClusterSize:     enumPtr(f.cacheClusterSize),
		CacheClusterStatus:   enumPtr(f.cacheClusterStatus),
		MethodSettings:       fromMethodSettings(f.methodSettings),
		Variables:            f.variables,
		DocumentationVersion: f.documentationVersion,
		CanarySettings:       fromCanarySettings(f.canarySettings),
		TracingEnabled:       aws.Bool(f.tracingEnabled),
		WebAclArn:            f.webAclArn,
		Tags:                 f.tags,
		CreatedDate:          f.createdDate,
		LastUpdatedDate:      f.lastUpdatedDate,
	}
	if a := f.accessLogSettings; a != nil {
		s.AccessLogSettings = &dto.AccessLogSettings{Format: a.Format, DestinationArn: a.DestinationArn}
	}
	return s
}

func fromCreateStageOutput(out *apigw.CreateStageOutput) *dto.CreateStageResult {
	return stageFields{
		deploymentID: out.DeploymentId, clientCertificateID: out.ClientCertificateId,
		stageName: out.StageName, description: out.Description,
		documentationVersion: out.DocumentationVersion, webAclArn: out.WebAclArn,
		cacheClusterEnabled: out.CacheClusterEnabled, tracingEnabled: out.TracingEnabled,
		cacheClusterSize: out.CacheClusterSize, cacheClusterStatus: out.CacheClusterStatus,
		methodSettings: out.MethodSettings, variables: out.Variables, tags: out.Tags,
		accessLogSettings: out.AccessLogSettings, canarySettings: out.CanarySettings,
		createdDate: out.CreatedDate, lastUpdatedDate: out.LastUpdatedDate,
	}.record()
}

func fromUpdateStageOutput(out *apigw.UpdateStageOutput) *dto.UpdateStageResult {
	return stageFields{
		deploymentID: out.DeploymentId, clientCertificateID: out.ClientCertificateId,
		stageName: out.StageName, description: out.Description,
		documentationVersion: out.DocumentationVersion, webAclArn: out.WebAclArn,
		cacheClusterEnabled: out.CacheClusterEnabled, tracingEnabled: out.TracingEnabled,
		cacheClusterSize: out.CacheClusterSize, cacheClusterStatus: out.CacheClusterStatus,
		methodSettings: out.MethodSettings, variables: out.Variables, tags: out.Tags,
		accessLogSettings: out.AccessLogSettings, canarySettings: out.CanarySettings,
		createdDate: out.CreatedDate, lastUpdatedDate: out.LastUpdatedDate,
	}.record()
}
