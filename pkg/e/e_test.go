package e

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_KindAndMessage(t *testing.T) {
	testCases := []struct {
		name string
		err  *APIError
		kind error
		msg  string
	}{
		{"brand", ErrBrandNotExist, ErrNotFound, "Brand does not exist"},
		{"category", ErrCategoryNotExist, ErrNotFound, "Category does not exist"},
		{"no file", ErrNoFileUploaded, ErrBadRequest, "No file uploaded. Please upload an image."},
		{"upload", ErrImageUploadFailed, ErrBadRequest, "Failed to upload image. Please try again."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := Wrap("op", tc.err)

			assert.ErrorIs(t, wrapped, tc.err)
			assert.ErrorIs(t, wrapped, tc.kind)
			assert.Equal(t, tc.msg, tc.err.Error())

			var apiErr *APIError
			assert.True(t, errors.As(wrapped, &apiErr))
			assert.Equal(t, tc.msg, apiErr.Error())
		})
	}
}

func TestAPIError_DistinctKinds(t *testing.T) {
	assert.NotErrorIs(t, ErrBrandNotExist, ErrBadRequest)
	assert.NotErrorIs(t, ErrNoFileUploaded, ErrNotFound)
	assert.NotErrorIs(t, ErrBrandNotExist, ErrCategoryNotExist)
}
