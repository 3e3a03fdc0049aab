package types

// Resource is a path segment of a REST API.
type Resource struct {
	Id       *string `json:"id,omitempty"`
	ParentId *string `json:"parentId,omitempty"`
	PathPart *string `json:"pathPart,omitempty"`
	Path     *string `json:"path,omitempty"`

	// ResourceMethods is keyed by HTTP verb.
	ResourceMethods map[string]Method `json:"resourceMethods,omitempty"`
}

// SetId sets the Id field's value.
func (s *Resource) SetId(v string) *Resource {
	s.Id = &v
	return s
}

// SetParentId sets the ParentId field's value.
func (s *Resource) SetParentId(v string) *Resource {
	s.ParentId = &v
	return s
}

// SetPathPart sets the PathPart field's value.
func (s *Resource) SetPathPart(v string) *Resource {
	s.PathPart = &v
	return s
}

// SetPath sets the Path field's value.
func (s *Resource) SetPath(v string) *Resource {
	s.Path = &v
	return s
}

// SetResourceMethods replaces the ResourceMethods map.
func (s *Resource) SetResourceMethods(v map[string]Method) *Resource {
	s.ResourceMethods = v
	return s
}

// AddResourceMethodsEntry adds a method keyed by HTTP verb. It fails with
// ErrDuplicateKey if the verb is already present.
func (s *Resource) AddResourceMethodsEntry(key string, value Method) error {
	return addEntry(&s.ResourceMethods, key, value)
}

// ClearResourceMethodsEntries removes all entries and leaves the field absent.
func (s *Resource) ClearResourceMethodsEntries() *Resource {
	s.ResourceMethods = nil
	return s
}

func (s *Resource) String() string {
	return newFieldWriter().
		add("id", s.Id).
		add("parentId", s.ParentId).
		add("pathPart", s.PathPart).
		add("path", s.Path).
		add("resourceMethods", s.ResourceMethods).
		String()
}

func (s *Resource) Equal(o *Resource) bool { return equalRecords(s, o) }

func (s *Resource) Hash() uint64 { return hashRecord(s) }
