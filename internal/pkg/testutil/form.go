package testutil

import (
	"mime/multipart"
	"testing"

	"github.com/splashcamper/splashcamper-api/internal/pkg/httputil"
	"github.com/stretchr/testify/require"
)

// CreateTestForm creates a multipart form holding one file under the upload field
func CreateTestForm(t *testing.T, fileName string, fileContent []byte) *multipart.Form {
	t.Helper()

	form, err := httputil.CreateForm(fileContent, fileName)
	require.NoError(t, err)

	return form
}

// CreateEmptyForm creates an empty multipart form for testing
func CreateEmptyForm() *multipart.Form {
	return &multipart.Form{
		File: make(map[string][]*multipart.FileHeader),
	}
}

// CreateMultipleTestFilesForm creates a multipart form with multiple test files
func CreateMultipleTestFilesForm(t *testing.T, names []string, contents [][]byte) *multipart.Form {
	t.Helper()

	form, err := httputil.CreateMultipleFilesForm(contents, names)
	require.NoError(t, err)

	return form
}
