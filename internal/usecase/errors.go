package usecase

import (
	"SecureBank/internal/messages"
	"SecureBank/internal/service/backend"
)

// pageFailure maps a failed fetch to the message shown on an analytics page:
// the backend's own text for an error status, else the failing endpoint's
// fallback, else the page's generic message.
func pageFailure(err error, cat *messages.Catalog, fallbacks map[string]string, generic string) *PageError {
	apiErr, ok := backend.AsAPIError(err)
	if !ok || apiErr.Kind != backend.KindStatus {
		return &PageError{Message: cat.T(generic), Err: err}
	}
	if apiErr.Message != "" {
		return &PageError{Message: apiErr.Message, Err: err}
	}
	if key, ok := fallbacks[apiErr.Endpoint]; ok {
		return &PageError{Message: cat.T(key), Err: err}
	}
	return &PageError{Message: cat.T(generic), Err: err}
}

// firstError returns the first non-nil error in endpoint order.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
