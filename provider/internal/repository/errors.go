package repository

import (
	"errors"
	"slices"

	"github.com/aws/smithy-go"
)

var (
	// ErrRootResourceNotFound is returned when a REST API has no "/" resource.
	ErrRootResourceNotFound = errors.New("root resource not found")
	// ErrInvalidS3URI is returned for an S3 location not of the form s3://bucket/key.
	ErrInvalidS3URI = errors.New("invalid s3 uri")
	// ErrInvalidStatusCode is returned for a documentation location status
	// code that is neither an HTTP code, "*" nor blank.
	ErrInvalidStatusCode = errors.New("invalid status code")
)

// isAPIErrorCode reports whether err carries one of the given smithy error codes.
func isAPIErrorCode(err error, codes ...string) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return slices.Contains(codes, apiErr.ErrorCode())
}

// IsNotFound reports whether err is a remote "not found" error.
func IsNotFound(err error) bool {
	return isAPIErrorCode(err, "NotFoundException", "ResourceNotFoundException", "NoSuchEntity", "NoSuchKey")
}

// IsConflict reports whether err is a remote conflict, e.g. a resource that already exists.
func IsConflict(err error) bool {
	return isAPIErrorCode(err, "ConflictException", "ResourceConflictException", "ResourceAlreadyExistsException")
}
