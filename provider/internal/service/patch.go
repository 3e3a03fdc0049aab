package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
)

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// escapePointer escapes one JSON pointer segment, so "image/png" becomes
// "image~1png".
func escapePointer(segment string) string {
	return pointerEscaper.Replace(segment)
}

func replaceOp(path, value string) dto.PatchOperation {
	return *dto.NewPatchOperation(dto.OpReplace, path).SetValue(value)
}

// RestApiPatch returns the operations turning current into desired. Absent
// scalar fields of desired are left unchanged; binary media types and the
// minimum compression size are always reconciled, absence meaning none.
func RestApiPatch(current *dto.RestApi, desired *dto.CreateRestApiRequest) []dto.PatchOperation {
	var ops []dto.PatchOperation

	scalar := func(path string, want, have *string) {
		if want != nil && aws.ToString(want) != aws.ToString(have) {
			ops = append(ops, replaceOp(path, *want))
		}
	}
	scalar("/name", desired.Name, current.Name)
	scalar("/description", desired.Description, current.Description)
	scalar("/policy", desired.Policy, current.Policy)
	scalar("/apiKeySource", desired.ApiKeySource, current.ApiKeySource)

	if want := desired.DisableExecuteApiEndpoint; want != nil && *want != aws.ToBool(current.DisableExecuteApiEndpoint) {
		ops = append(ops, replaceOp("/disableExecuteApiEndpoint", strconv.FormatBool(*want)))
	}

	switch want, have := desired.MinimumCompressionSize, current.MinimumCompressionSize; {
	case want == nil && have != nil:
		ops = append(ops, replaceOp("/minimumCompressionSize", ""))
	case want != nil && (have == nil || *want != *have):
		ops = append(ops, replaceOp("/minimumCompressionSize", strconv.Itoa(int(*want))))
	}

	if want := desired.EndpointConfiguration; want != nil && len(want.Types) > 0 {
		var have string
		if current.EndpointConfiguration != nil && len(current.EndpointConfiguration.Types) > 0 {
			have = current.EndpointConfiguration.Types[0]
		}
		if want.Types[0] != have {
			ops = append(ops, replaceOp("/endpointConfiguration/types/0", want.Types[0]))
		}
	}

	return append(ops, listPatch("/binaryMediaTypes", current.BinaryMediaTypes, desired.BinaryMediaTypes)...)
}

// GatewayResponsePatch returns the operations turning current into desired.
func GatewayResponsePatch(current *dto.GatewayResponse, desired *dto.PutGatewayResponseRequest) []dto.PatchOperation {
	var ops []dto.PatchOperation
	if want := desired.StatusCode; want != nil && *want != aws.ToString(current.StatusCode) {
		ops = append(ops, replaceOp("/statusCode", *want))
	}
	ops = append(ops, mapPatch("/responseParameters", current.ResponseParameters, desired.ResponseParameters)...)
	return append(ops, mapPatch("/responseTemplates", current.ResponseTemplates, desired.ResponseTemplates)...)
}

// listPatch adds the items of want missing from have and removes the rest.
func listPatch(path string, have, want []string) []dto.PatchOperation {
	var ops []dto.PatchOperation
	inHave := make(map[string]bool, len(have))
	for _, v := range have {
		inHave[v] = true
	}
	inWant := make(map[string]bool, len(want))
	for _, v := range want {
		inWant[v] = true
	}

	for _, v := range have {
		if !inWant[v] {
			ops = append(ops, *dto.NewPatchOperation(dto.OpRemove, path+"/"+escapePointer(v)))
		}
	}
	for _, v := range want {
		if !inHave[v] {
			ops = append(ops, *dto.NewPatchOperation(dto.OpAdd, path+"/"+escapePointer(v)))
			inHave[v] = true
		}
	}
	return ops
}

// mapPatch reconciles the entries of a string map, in key order.
func mapPatch(path string, have, want map[string]string) []dto.PatchOperation {
	keys := make([]string, 0, len(have)+len(want))
	for k := range have {
		keys = append(keys, k)
	}
	for k := range want {
		if _, ok := have[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var ops []dto.PatchOperation
	for _, k := range keys {
		p := path + "/" + escapePointer(k)
		hv, inHave := have[k]
		wv, inWant := want[k]
		switch {
		case !inWant:
			ops = append(ops, *dto.NewPatchOperation(dto.OpRemove, p))
		case !inHave:
			ops = append(ops, *dto.NewPatchOperation(dto.OpAdd, p).SetValue(wv))
		case hv != wv:
			ops = append(ops, replaceOp(p, wv))
		}
	}
	return ops
}
