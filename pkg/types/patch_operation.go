package types

// PatchOperation is a single RFC 6902 edit applied by the UpdateX operations.
type PatchOperation struct {
	// Op is one of add, remove, replace, move, copy or test. See Op.
	Op *string `json:"op,omitempty"`

	// Path is the JSON pointer of the property to edit, e.g. "/deploymentId".
	Path *string `json:"path,omitempty"`

	// Value is the new value for add, replace and test operations.
	Value *string `json:"value,omitempty"`

	// From is the source JSON pointer of copy and move operations.
	From *string `json:"from,omitempty"`
}

// NewPatchOperation returns an operation with op and path set.
func NewPatchOperation(op Op, path string) *PatchOperation {
	return new(PatchOperation).SetOp(op).SetPath(path)
}

// SetOp sets the Op field's value.
func (s *PatchOperation) SetOp(v Op) *PatchOperation {
	op := string(v)
	s.Op = &op
	return s
}

// SetPath sets the Path field's value.
func (s *PatchOperation) SetPath(v string) *PatchOperation {
	s.Path = &v
	return s
}

// SetValue sets the Value field's value.
func (s *PatchOperation) SetValue(v string) *PatchOperation {
	s.Value = &v
	return s
}

// SetFrom sets the From field's value.
func (s *PatchOperation) SetFrom(v string) *PatchOperation {
	s.From = &v
	return s
}

func (s *PatchOperation) String() string {
	return newFieldWriter().
		add("op", s.Op).
		add("path", s.Path).
		add("value", s.Value).
		add("from", s.From).
		String()
}

func (s *PatchOperation) Equal(o *PatchOperation) bool { return equalRecords(s, o) }

func (s *PatchOperation) Hash() uint64 { return hashRecord(s) }
