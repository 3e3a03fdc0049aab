// Package types holds the request, result and enum shapes of the Amazon API
// Gateway REST control plane.
//
// Records are plain mutable structs. Optional fields are pointers, slices or
// maps and nil always means "absent". Every field has a fluent SetX method
// that returns the receiver so calls can be chained:
//
//	req := new(types.CreateRestApiRequest).
//		SetName("demo").
//		AddBinaryMediaTypes("image/png", "image/jpeg")
//	if err := req.AddTagsEntry("env", "prod"); err != nil {
//		return err
//	}
//
// Records never validate their contents; the constraints documented on the
// fields are enforced by the service.
package types
