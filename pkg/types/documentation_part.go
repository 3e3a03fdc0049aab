package types

// DocumentationPartLocation identifies the API entity a DocumentationPart
// describes. Fields that do not apply to Type are left absent.
type DocumentationPartLocation struct {
	// Type is one of DocumentationPartType. Required.
	Type *string `json:"type,omitempty"`

	Path   *string `json:"path,omitempty"`
	Method *string `json:"method,omitempty"`

	// StatusCode must match SelectionStatusCodePattern.
	StatusCode *string `json:"statusCode,omitempty"`

	Name *string `json:"name,omitempty"`
}

// SetType sets the Type field's value.
func (s *DocumentationPartLocation) SetType(v DocumentationPartType) *DocumentationPartLocation {
	t := string(v)
	s.Type = &t
	return s
}

// SetPath sets the Path field's value.
func (s *DocumentationPartLocation) SetPath(v string) *DocumentationPartLocation {
	s.Path = &v
	return s
}

// SetMethod sets the Method field's value.
func (s *DocumentationPartLocation) SetMethod(v string) *DocumentationPartLocation {
	s.Method = &v
	return s
}

// SetStatusCode sets the StatusCode field's value.
func (s *DocumentationPartLocation) SetStatusCode(v string) *DocumentationPartLocation {
	s.StatusCode = &v
	return s
}

// SetName sets the Name field's value.
func (s *DocumentationPartLocation) SetName(v string) *DocumentationPartLocation {
	s.Name = &v
	return s
}

func (s *DocumentationPartLocation) String() string {
	return newFieldWriter().
		add("type", s.Type).
		add("path", s.Path).
		add("method", s.Method).
		add("statusCode", s.StatusCode).
		add("name", s.Name).
		String()
}

func (s *DocumentationPartLocation) Equal(o *DocumentationPartLocation) bool {
	return equalRecords(s, o)
}

func (s *DocumentationPartLocation) Hash() uint64 { return hashRecord(s) }

// DocumentationPart attaches a JSON document to part of an API.
type DocumentationPart struct {
	Id       *string                    `json:"id,omitempty"`
	Location *DocumentationPartLocation `json:"location,omitempty"`

	// Properties is a JSON object, e.g. {"description": "..."}.
	Properties *string `json:"properties,omitempty"`
}

// CreateDocumentationPartResult is the DocumentationPart returned by
// CreateDocumentationPart.
type CreateDocumentationPartResult = DocumentationPart

// SetId sets the Id field's value.
func (s *DocumentationPart) SetId(v string) *DocumentationPart {
	s.Id = &v
	return s
}

// SetLocation sets the Location field's value.
func (s *DocumentationPart) SetLocation(v *DocumentationPartLocation) *DocumentationPart {
	s.Location = v
	return s
}

// SetProperties sets the Properties field's value.
func (s *DocumentationPart) SetProperties(v string) *DocumentationPart {
	s.Properties = &v
	return s
}

func (s *DocumentationPart) String() string {
	return newFieldWriter().
		add("id", s.Id).
		add("location", s.Location).
		add("properties", s.Properties).
		String()
}

func (s *DocumentationPart) Equal(o *DocumentationPart) bool { return equalRecords(s, o) }

func (s *DocumentationPart) Hash() uint64 { return hashRecord(s) }

// CreateDocumentationPartRequest documents one location of a RestApi.
type CreateDocumentationPartRequest struct {
	RestApiId  *string                    `json:"restApiId,omitempty"`
	Location   *DocumentationPartLocation `json:"location,omitempty"`
	Properties *string                    `json:"properties,omitempty"`
}

// SetRestApiId sets the RestApiId field's value.
func (s *CreateDocumentationPartRequest) SetRestApiId(v string) *CreateDocumentationPartRequest {
	s.RestApiId = &v
	return s
}

// SetLocation sets the Location field's value.
func (s *CreateDocumentationPartRequest) SetLocation(v *DocumentationPartLocation) *CreateDocumentationPartRequest {
	s.Location = v
	return s
}

// SetProperties sets the Properties field's value.
func (s *CreateDocumentationPartRequest) SetProperties(v string) *CreateDocumentationPartRequest {
	s.Properties = &v
	return s
}

func (s *CreateDocumentationPartRequest) String() string {
	return newFieldWriter().
		add("restApiId", s.RestApiId).
		add("location", s.Location).
		add("properties", s.Properties).
		String()
}

func (s *CreateDocumentationPartRequest) Equal(o *CreateDocumentationPartRequest) bool {
	return equalRecords(s, o)
}

func (s *CreateDocumentationPartRequest) Hash() uint64 { return hashRecord(s) }
