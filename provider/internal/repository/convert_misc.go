package repository

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	gwtypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
)

func toCreateDomainNameInput(in *dto.CreateDomainNameRequest) *apigw.CreateDomainNameInput {
	out := &apigw.CreateDomainNameInput{
		DomainName:                          in.DomainName,
		CertificateName:                     in.CertificateName,
		CertificateBody:                     in.CertificateBody,
		CertificatePrivateKey:               in.CertificatePrivateKey,
		CertificateChain:                    in.CertificateChain,
		CertificateArn:                      in.CertificateArn,
		RegionalCertificateName:             in.RegionalCertificateName,
		RegionalCertificateArn:              in.RegionalCertificateArn,
		EndpointConfiguration:               toEndpointConfiguration(in.EndpointConfiguration),
		Tags:                                in.Tags,
		SecurityPolicy:                      enumValue[gwtypes.SecurityPolicy](in.SecurityPolicy),
		OwnershipVerificationCertificateArn: in.OwnershipVerificationCertificateArn,
	}
	if m := in.MutualTlsAuthentication; m != nil {
		out.MutualTlsAuthentication = &gwtypes.MutualTlsAuthenticationInput{
			TruststoreUri:     m.TruststoreUri,
			TruststoreVersion: m.TruststoreVersion,
		}
	}
	return out
}

func fromCreateDomainNameOutput(out *apigw.CreateDomainNameOutput) *dto.CreateDomainNameResult {
	d := &dto.CreateDomainNameResult{
		DomainName:                          out.DomainName,
		CertificateName:                     out.CertificateName,
		CertificateArn:                      out.CertificateArn,
		CertificateUploadDate:               out.CertificateUploadDate,
		RegionalDomainName:                  out.RegionalDomainName,
		RegionalHostedZoneId:                out.RegionalHostedZoneId,
		RegionalCertificateName:             out.RegionalCertificateName,
		RegionalCertificateArn:              out.RegionalCertificateArn,
		DistributionDomainName:              out.DistributionDomainName,
		DistributionHostedZoneId:            out.DistributionHostedZoneId,
		EndpointConfiguration:               fromEndpointConfiguration(out.EndpointConfiguration),
		DomainNameStatus:                    enumPtr(out.DomainNameStatus),
		DomainNameStatusMessage:             out.DomainNameStatusMessage,
		SecurityPolicy:                      enumPtr(out.SecurityPolicy),
		Tags:                                out.Tags,
		OwnershipVerificationCertificateArn: out.OwnershipVerificationCertificateArn,
	}
	if m := out.MutualTlsAuthentication; m != nil {
		d.MutualTlsAuthentication = &dto.MutualTlsAuthentication{
			TruststoreUri:      m.TruststoreUri,
			TruststoreVersion:  m.TruststoreVersion,
			TruststoreWarnings: m.TruststoreWarnings,
		}
	}
	return d
}

func toPutGatewayResponseInput(in *dto.PutGatewayResponseRequest) *apigw.PutGatewayResponseInput {
	return &apigw.PutGatewayResponseInput{
		RestApiId:          in.RestApiId,
		ResponseType:       enumValue[gwtypes.GatewayResponseType](in.ResponseType),
		StatusCode:         in.StatusCode,
		ResponseParameters: in.ResponseParameters,
		ResponseTemplates:  in.ResponseTemplates,
	}
}

func gatewayResponseRecord(rt gwtypes.GatewayResponseType, status *string, params, templates map[string]string, def bool) *dto.GatewayResponse {
	return &dto.GatewayResponse{
		ResponseType:       enumPtr(rt),
		StatusCode:         status,
		ResponseParameters: params,
		ResponseTemplates:  templates,
		DefaultResponse:    aws.Bool(def),
	}
}

func fromPutGatewayResponseOutput(out *apigw.PutGatewayResponseOutput) *dto.PutGatewayResponseResult {
	return gatewayResponseRecord(out.ResponseType, out.StatusCode, out.ResponseParameters, out.ResponseTemplates, out.DefaultResponse)
}

func fromGetGatewayResponseOutput(out *apigw.GetGatewayResponseOutput) *dto.GetGatewayResponseResult {
	return gatewayResponseRecord(out.ResponseType, out.StatusCode, out.ResponseParameters, out.ResponseTemplates, out.DefaultResponse)
}

func fromUpdateGatewayResponseOutput(out *apigw.UpdateGatewayResponseOutput) *dto.UpdateGatewayResponseResult {
	return gatewayResponseRecord(out.ResponseType, out.StatusCode, out.ResponseParameters, out.ResponseTemplates, out.DefaultResponse)
}

func toCreateVpcLinkInput(in *dto.CreateVpcLinkRequest) *apigw.CreateVpcLinkInput {
	return &apigw.CreateVpcLinkInput{
		Name:        in.Name,
		Description: in.Description,
		TargetArns:  in.TargetArns,
		Tags:        in.Tags,
	}
}

func vpcLinkRecord(id, name, description *string, targets []string, status gwtypes.VpcLinkStatus, message *string, tags map[string]string) *dto.VpcLink {
	return &dto.VpcLink{
		Id:            id,
		Name:          name,
		Description:   description,
		TargetArns:    targets,
		Status:        enumPtr(status),
		StatusMessage: message,
		Tags:          tags,
	}
}

func fromCreateVpcLinkOutput(out *apigw.CreateVpcLinkOutput) *dto.CreateVpcLinkResult {
	return vpcLinkRecord(out.Id, out.Name, out.Description, out.TargetArns, out.Status, out.StatusMessage, out.Tags)
}

func fromGetVpcLinkOutput(out *apigw.GetVpcLinkOutput) *dto.GetVpcLinkResult {
	return vpcLinkRecord(out.Id, out.Name, out.Description, out.TargetArns, out.Status, out.StatusMessage, out.Tags)
}

func toDocumentationPartLocation(in *dto.DocumentationPartLocation) *gwtypes.DocumentationPartLocation {
	if in == nil {
		return nil
	}
	return &gwtypes.DocumentationPartLocation{
		Type:       enumValue[gwtypes.DocumentationPartType](in.Type),
		Path:       in.Path,
		Method:     in.Method,
		StatusCode: in.StatusCode,
		Name:       in.Name,
	}
}

func fromDocumentationPartLocation(in *gwtypes.DocumentationPartLocation) *dto.DocumentationPartLocation {
	if in == nil {
		return nil
	}
	return &dto.DocumentationPartLocation{
		Type:       enumPtr(in.Type),
		Path:       in.Path,
		Method:     in.Method,
		StatusCode: in.StatusCode,
		Name:       in.Name,
	}
}

func toCreateDocumentationPartInput(in *dto.CreateDocumentationPartRequest) *apigw.CreateDocumentationPartInput {
	return &apigw.CreateDocumentationPartInput{
		RestApiId:  in.RestApiId,
		Location:   toDocumentationPartLocation(in.Location),
		Properties: in.Properties,
	}
}

func fromCreateDocumentationPartOutput(out *apigw.CreateDocumentationPartOutput) *dto.CreateDocumentationPartResult {
	return &dto.CreateDocumentationPartResult{
		Id:         out.Id,
		Location:   fromDocumentationPartLocation(out.Location),
		Properties: out.Properties,
	}
}
