package resource

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"

	dto "github.com/raywall/terraform-provider-apigw/pkg/types"
	"github.com/raywall/terraform-provider-apigw/provider/internal/repository"
)

// enumValidator accepts the values parse accepts.
func enumValidator[T ~string](parse func(string) (T, error)) schema.SchemaValidateFunc {
	return func(v interface{}, k string) ([]string, []error) {
		s, ok := v.(string)
		if !ok {
			return nil, []error{fmt.Errorf("expected type of %s to be string", k)}
		}
		if _, err := parse(s); err != nil {
			return nil, []error{fmt.Errorf("%s: %w", k, err)}
		}
		return nil, nil
	}
}

func validateTags(v interface{}, k string) ([]string, []error) {
	tags, ok := v.(map[string]interface{})
	if !ok {
		return nil, []error{fmt.Errorf("expected type of %s to be a map", k)}
	}

	var errs []error
	for key, raw := range tags {
		value, _ := raw.(string)
		switch {
		case !govalidator.StringLength(key, "1", strconv.Itoa(dto.TagKeyMaxLength)):
			errs = append(errs, fmt.Errorf("%s: key %q must be 1 to %d characters", k, key, dto.TagKeyMaxLength))
		case strings.HasPrefix(strings.ToLower(key), dto.ReservedTagKeyPrefix):
			errs = append(errs, fmt.Errorf("%s: key %q uses the reserved prefix %q", k, key, dto.ReservedTagKeyPrefix))
		case !govalidator.Matches(key, dto.TagPattern.String()):
			errs = append(errs, fmt.Errorf("%s: key %q contains invalid characters", k, key))
		case !govalidator.StringLength(value, "0", strconv.Itoa(dto.TagValueMaxLength)):
			errs = append(errs, fmt.Errorf("%s: value of %q exceeds %d characters", k, key, dto.TagValueMaxLength))
		case !govalidator.Matches(value, dto.TagPattern.String()):
			errs = append(errs, fmt.Errorf("%s: value of %q contains invalid characters", k, key))
		}
	}
	return nil, errs
}

func validateJSON(v interface{}, k string) ([]string, []error) {
	s, _ := v.(string)
	if s != "" && !govalidator.IsJSON(s) {
		return nil, []error{fmt.Errorf("%s: invalid JSON", k)}
	}
	return nil, nil
}

// validateDefinitionBody accepts YAML as is and checks bodies that look like JSON.
func validateDefinitionBody(v interface{}, k string) ([]string, []error) {
	s, _ := v.(string)
	if strings.HasPrefix(strings.TrimSpace(s), "{") {
		return validateJSON(v, k)
	}
	return nil, nil
}

func validateS3URI(v interface{}, k string) ([]string, []error) {
	s, _ := v.(string)
	if _, _, err := repository.ParseS3URI(s); err != nil {
		return nil, []error{fmt.Errorf("%s: %w", k, err)}
	}
	return nil, nil
}

func validateRoutePath(v interface{}, k string) ([]string, []error) {
	s, _ := v.(string)
	if !strings.HasPrefix(s, "/") || strings.Contains(s, "//") {
		return nil, []error{fmt.Errorf("%s: %q must start with / and contain no empty segment", k, s)}
	}
	return nil, nil
}

func validateStatusCode(v interface{}, k string) ([]string, []error) {
	s, _ := v.(string)
	if !dto.StatusCodePattern.MatchString(s) {
		return nil, []error{fmt.Errorf("%s: %q is not an HTTP status code", k, s)}
	}
	return nil, nil
}

func expandStringMap(raw interface{}) map[string]string {
	m, _ := raw.(map[string]interface{})
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k], _ = v.(string)
	}
	return out
}

func expandStringSet(raw interface{}) []string {
	set, ok := raw.(*schema.Set)
	if !ok || set.Len() == 0 {
		return nil
	}
	out := make([]string, 0, set.Len())
	for _, v := range set.List() {
		out = append(out, v.(string))
	}
	return out
}
