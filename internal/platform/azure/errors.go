package azure

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azfile/fileerror"
)

// ErrAlreadyExists is wrapped by create operations that lost a race with another creator.
var ErrAlreadyExists = errors.New("already exists")

// responseError extracts the service error from an SDK error chain.
func responseError(err error) (*azcore.ResponseError, bool) {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return respErr, true
	}
	return nil, false
}

// ErrorCode returns the service error code of err, or "" if it is not a service error.
func ErrorCode(err error) string {
	if respErr, ok := responseError(err); ok {
		return respErr.ErrorCode
	}
	return ""
}

// StatusCode returns the HTTP status of err, or 0 if it is not a service error.
func StatusCode(err error) int {
	if respErr, ok := responseError(err); ok {
		return respErr.StatusCode
	}
	return 0
}

// IsNotFound checks if an error indicates a resource was not found.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound ||
		fileerror.HasCode(err, fileerror.ShareNotFound, fileerror.ResourceNotFound)
}

// IsConflict checks if an error indicates a conflict occurred.
func IsConflict(err error) bool {
	return StatusCode(err) == http.StatusConflict
}

// IsAlreadyExists checks if a create failed because the resource exists.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists) ||
		fileerror.HasCode(err, fileerror.ShareAlreadyExists, fileerror.ResourceAlreadyExists)
}

// IsAuthFailure checks if an error indicates rejected or missing credentials.
func IsAuthFailure(err error) bool {
	if err == nil {
		return false
	}
	var authErr *azidentity.AuthenticationFailedError
	if errors.As(err, &authErr) {
		return true
	}
	switch StatusCode(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	}
	return fileerror.HasCode(err, fileerror.AuthenticationFailed, fileerror.AuthorizationFailure)
}

// Summary renders err as a single line suitable for user-facing output.
// Service errors are reduced to their code and status; the full response
// is only useful in verbose logs.
func Summary(err error) string {
	if err == nil {
		return ""
	}
	if respErr, ok := responseError(err); ok {
		code := respErr.ErrorCode
		if code == "" {
			code = http.StatusText(respErr.StatusCode)
		}
		return fmt.Sprintf("%s (HTTP %d)", code, respErr.StatusCode)
	}
	return err.Error()
}
