package types

// VpcLink connects private integrations to a Network Load Balancer.
type VpcLink struct {
	Id          *string  `json:"id,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	TargetArns  []string `json:"targetArns,omitempty"`

	// Status is one of VpcLinkStatus.
	Status        *string           `json:"status,omitempty"`
	StatusMessage *string           `json:"statusMessage,omitempty"`
	Tags          map[string]string `json:"tags,omitempty"`
}

type (
	CreateVpcLinkResult = VpcLink
	GetVpcLinkResult    = VpcLink
)

// SetId sets the Id field's value.
func (s *VpcLink) SetId(v string) *VpcLink {
	s.Id = &v
	return s
}

// SetName sets the Name field's value.
func (s *VpcLink) SetName(v string) *VpcLink {
	s.Name = &v
	return s
}

// SetDescription sets the Description field's value.
func (s *VpcLink) SetDescription(v string) *VpcLink {
	s.Description = &v
	return s
}

// SetTargetArns replaces the TargetArns list. A nil list clears the field.
func (s *VpcLink) SetTargetArns(v []string) *VpcLink {
	s.TargetArns = copyList(v)
	return s
}

// AddTargetArns appends load balancer ARNs, creating the list if it is absent.
func (s *VpcLink) AddTargetArns(v ...string) *VpcLink {
	if s.TargetArns == nil {
		s.TargetArns = make([]string, 0, len(v))
	}
	s.TargetArns = append(s.TargetArns, v...)
	return s
}

// SetStatus sets the Status field's value.
func (s *VpcLink) SetStatus(v VpcLinkStatus) *VpcLink {
	status := string(v)
	s.Status = &status
	return s
}

// SetStatusMessage sets the StatusMessage field's value.
func (s *VpcLink) SetStatusMessage(v string) *VpcLink {
	s.StatusMessage = &v
	return s
}

// SetTags replaces the Tags map.
func (s *VpcLink) SetTags(v map[string]string) *VpcLink {
	s.Tags = v
	return s
}

// AddTagsEntry adds a tag. It fails with ErrDuplicateKey if key is already set.
func (s *VpcLink) AddTagsEntry(key, value string) error {
	return addEntry(&s.Tags, key, value)
}

// ClearTagsEntries removes all tags and leaves the field absent.
func (s *VpcLink) ClearTagsEntries() *VpcLink {
	s.Tags = nil
	return s
}

func (s *VpcLink) String() string {
	return newFieldWriter().
		add("id", s.Id).
		add("name", s.Name).
		add("description", s.Description).
		add("targetArns", s.TargetArns).
		add("status", s.Status).
		add("statusMessage", s.StatusMessage).
		add("tags", s.Tags).
		String()
}

func (s *VpcLink) Equal(o *VpcLink) bool { return equalRecords(s, o) }

func (s *VpcLink) Hash() uint64 { return hashRecord(s) }

// CreateVpcLinkRequest creates a VpcLink. Creation is asynchronous; poll
// GetVpcLink until the status leaves PENDING.
type CreateVpcLinkRequest struct {
	Name        *string           `json:"name,omitempty"`
	Description *string           `json:"description,omitempty"`
	TargetArns  []string          `json:"targetArns,omitempty"`
	Tags        map[string]string `json:"tags,omitempty"`
}

// SetName sets the Name field's value.
func (s *CreateVpcLinkRequest) SetName(v string) *CreateVpcLinkRequest {
	s.Name = &v
	return s
}

// SetDescription sets the Description field's value.
func (s *CreateVpcLinkRequest) SetDescription(v string) *CreateVpcLinkRequest {
	s.Description = &v
	return s
}

// SetTargetArns replaces the TargetArns list. A nil list clears the field.
func (s *CreateVpcLinkRequest) SetTargetArns(v []string) *CreateVpcLinkRequest {
	s.TargetArns = copyList(v)
	return s
}

// AddTargetArns appends load balancer ARNs, creating the list if it is absent.
func (s *CreateVpcLinkRequest) AddTargetArns(v ...string) *CreateVpcLinkRequest {
	if s.TargetArns == nil {
		s.TargetArns = make([]string, 0, len(v))
	}
	s.TargetArns = append(s.TargetArns, v...)
	return s
}

// SetTags replaces the Tags map.
func (s *CreateVpcLinkRequest) SetTags(v map[string]string) *CreateVpcLinkRequest {
	s.Tags = v
	return s
}

// AddTagsEntry adds a tag. It fails with ErrDuplicateKey if key is already set.
func (s *CreateVpcLinkRequest) AddTagsEntry(key, value string) error {
	return addEntry(&s.Tags, key, value)
}

// ClearTagsEntries removes all tags and leaves the field absent.
func (s *CreateVpcLinkRequest) ClearTagsEntries() *CreateVpcLinkRequest {
	s.Tags = nil
	return s
}

func (s *CreateVpcLinkRequest) String() string {
	return newFieldWriter().
		add("name", s.Name).
		add("description", s.Description).
		add("targetArns", s.TargetArns).
		add("tags", s.Tags).
		String()
}

func (s *CreateVpcLinkRequest) Equal(o *CreateVpcLinkRequest) bool { return equalRecords(s, o) }

func (s *CreateVpcLinkRequest) Hash() uint64 { return hashRecord(s) }

// GetVpcLinkRequest reads a VpcLink by id.
type GetVpcLinkRequest struct {
	VpcLinkId *string `json:"vpcLinkId,omitempty"`
}

// SetVpcLinkId sets the VpcLinkId field's value.
func (s *GetVpcLinkRequest) SetVpcLinkId(v string) *GetVpcLinkRequest {
	s.VpcLinkId = &v
	return s
}

func (s *GetVpcLinkRequest) String() string {
	return newFieldWriter().add("vpcLinkId", s.VpcLinkId).String()
}

func (s *GetVpcLinkRequest) Equal(o *GetVpcLinkRequest) bool { return equalRecords(s, o) }

func (s *GetVpcLinkRequest) Hash() uint64 { return hashRecord(s) }
