package types

// EndpointConfiguration lists the endpoint types of an API or domain name.
type EndpointConfiguration struct {
	// Types holds EndpointType values. A RestApi has exactly one.
	Types []string `json:"types,omitempty"`

	// VpcEndpointIds is only meaningful for PRIVATE endpoints.
	VpcEndpointIds []string `json:"vpcEndpointIds,omitempty"`
}

// SetTypes replaces the Types list. A nil list clears the field.
func (s *EndpointConfiguration) SetTypes(v []string) *EndpointConfiguration {
	s.Types = copyList(v)
	return s
}

// AddTypes appends endpoint types, creating the list if it is absent.
func (s *EndpointConfiguration) AddTypes(v ...EndpointType) *EndpointConfiguration {
	if s.Types == nil {
		s.Types = make([]string, 0, len(v))
	}
	for _, t := range v {
		s.Types = append(s.Types, string(t))
	}
	return s
}

// SetVpcEndpointIds replaces the VpcEndpointIds list. A nil list clears the field.
func (s *EndpointConfiguration) SetVpcEndpointIds(v []string) *EndpointConfiguration {
	s.VpcEndpointIds = copyList(v)
	return s
}

// AddVpcEndpointIds appends VPC endpoint ids, creating the list if it is absent.
func (s *EndpointConfiguration) AddVpcEndpointIds(v ...string) *EndpointConfiguration {
	if s.VpcEndpointIds == nil {
		s.VpcEndpointIds = make([]string, 0, len(v))
	}
	s.VpcEndpointIds = append(s.VpcEndpointIds, v...)
	return s
}

func (s *EndpointConfiguration) String() string {
	return newFieldWriter().
		add("types", s.Types).
		add("vpcEndpointIds", s.VpcEndpointIds).
		String()
}

func (s *EndpointConfiguration) Equal(o *EndpointConfiguration) bool { return equalRecords(s, o) }

func (s *EndpointConfiguration) Hash() uint64 { return hashRecord(s) }
