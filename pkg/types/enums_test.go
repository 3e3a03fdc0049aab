package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentationPartType(t *testing.T) {
	v, err := ParseDocumentationPartType("RESOURCE")
	require.NoError(t, err)
	assert.Equal(t, DocumentationPartTypeResource, v)

	v, err = ParseDocumentationPartType("API")
	require.NoError(t, err)
	assert.Equal(t, DocumentationPartTypeApi, v)

	for _, bad := range []string{"NOT_A_TYPE", "", "resource", " RESOURCE"} {
		_, err := ParseDocumentationPartType(bad)
		assert.ErrorIs(t, err, ErrUnknownEnumValue, bad)
		assert.ErrorIs(t, err, ErrInvalidArgument, bad)
	}
}

func TestParseErrorMessages(t *testing.T) {
	_, err := ParseOp("patch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"patch" is not a valid Op`)

	_, err = ParseGatewayResponseType("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GatewayResponseType value cannot be empty")
}

// assertEnum checks that every value round-trips through parse and that
// Values keeps declaration order.
func assertEnum[T ~string](t *testing.T, parse func(string) (T, error), values []T, want ...string) {
	t.Helper()

	got := make([]string, len(values))
	for i, v := range values {
		got[i] = string(v)
		parsed, err := parse(string(v))
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
	assert.Equal(t, want, got)

	_, err := parse("bogus")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = parse("")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEnumTables(t *testing.T) {
	t.Run("ApiKeySourceType", func(t *testing.T) {
		assertEnum(t, ParseApiKeySourceType, ApiKeySourceType("").Values(), "HEADER", "AUTHORIZER")
	})
	t.Run("CacheClusterSize", func(t *testing.T) {
		assertEnum(t, ParseCacheClusterSize, CacheClusterSize("").Values(),
			"0.5", "1.6", "6.1", "13.5", "28.4", "58.2", "118", "237")
	})
	t.Run("CacheClusterStatus", func(t *testing.T) {
		assertEnum(t, ParseCacheClusterStatus, CacheClusterStatus("").Values(),
			"CREATE_IN_PROGRESS", "AVAILABLE", "DELETE_IN_PROGRESS", "NOT_AVAILABLE", "FLUSH_IN_PROGRESS")
	})
	t.Run("ConnectionType", func(t *testing.T) {
		assertEnum(t, ParseConnectionType, ConnectionType("").Values(), "INTERNET", "VPC_LINK")
	})
	t.Run("ContentHandlingStrategy", func(t *testing.T) {
		assertEnum(t, ParseContentHandlingStrategy, ContentHandlingStrategy("").Values(),
			"CONVERT_TO_BINARY", "CONVERT_TO_TEXT")
	})
	t.Run("DocumentationPartType", func(t *testing.T) {
		assertEnum(t, ParseDocumentationPartType, DocumentationPartType("").Values(),
			"API", "AUTHORIZER", "MODEL", "RESOURCE", "METHOD", "PATH_PARAMETER", "QUERY_PARAMETER",
			"REQUEST_HEADER", "REQUEST_BODY", "RESPONSE", "RESPONSE_HEADER", "RESPONSE_BODY")
	})
	t.Run("DomainNameStatus", func(t *testing.T) {
		assertEnum(t, ParseDomainNameStatus, DomainNameStatus("").Values(),
			"AVAILABLE", "UPDATING", "PENDING", "PENDING_CERTIFICATE_REIMPORT", "PENDING_OWNERSHIP_VERIFICATION")
	})
	t.Run("EndpointType", func(t *testing.T) {
		assertEnum(t, ParseEndpointType, EndpointType("").Values(), "REGIONAL", "EDGE", "PRIVATE")
	})
	t.Run("IntegrationType", func(t *testing.T) {
		assertEnum(t, ParseIntegrationType, IntegrationType("").Values(),
			"HTTP", "AWS", "MOCK", "HTTP_PROXY", "AWS_PROXY")
	})
	t.Run("LocationStatusType", func(t *testing.T) {
		assertEnum(t, ParseLocationStatusType, LocationStatusType("").Values(), "DOCUMENTED", "UNDOCUMENTED")
	})
	t.Run("Op", func(t *testing.T) {
		assertEnum(t, ParseOp, Op("").Values(), "add", "remove", "replace", "move", "copy", "test")
	})
	t.Run("PutMode", func(t *testing.T) {
		assertEnum(t, ParsePutMode, PutMode("").Values(), "merge", "overwrite")
	})
	t.Run("SecurityPolicy", func(t *testing.T) {
		assertEnum(t, ParseSecurityPolicy, SecurityPolicy("").Values(), "TLS_1_0", "TLS_1_2")
	})
	t.Run("UnauthorizedCacheControlHeaderStrategy", func(t *testing.T) {
		assertEnum(t, ParseUnauthorizedCacheControlHeaderStrategy, UnauthorizedCacheControlHeaderStrategy("").Values(),
			"FAIL_WITH_403", "SUCCEED_WITH_RESPONSE_HEADER", "SUCCEED_WITHOUT_RESPONSE_HEADER")
	})
	t.Run("VpcLinkStatus", func(t *testing.T) {
		assertEnum(t, ParseVpcLinkStatus, VpcLinkStatus("").Values(), "AVAILABLE", "PENDING", "DELETING", "FAILED")
	})
}

func TestGatewayResponseTypeValues(t *testing.T) {
	values := GatewayResponseType("").Values()
	require.Len(t, values, 21)
	assert.Equal(t, GatewayResponseTypeDefault4xx, values[0])

	seen := make(map[GatewayResponseType]bool)
	for _, v := range values {
		assert.False(t, seen[v], "duplicate %s", v)
		seen[v] = true
		assert.Equal(t, string(v), v.String())
	}
}

func TestValuesReturnsCopy(t *testing.T) {
	values := EndpointType("").Values()
	values[0] = "MUTATED"

	assert.Equal(t, EndpointTypeRegional, EndpointType("").Values()[0])
}
