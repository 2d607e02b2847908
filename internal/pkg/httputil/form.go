// Package httputil builds multipart forms for image uploads and tests.
package httputil

import (
	"bytes"
	"fmt"
	"mime/multipart"
)

// FilesField is the multipart field name carrying uploaded files.
const FilesField = "files"

// maxFormMemory bounds the in-memory part of a parsed form.
const maxFormMemory = 32 << 20

// CreateForm wraps a single file into a multipart form under FilesField.
func CreateForm(content []byte, fileName string) (*multipart.Form, error) {
	return CreateMultipleFilesForm([][]byte{content}, []string{fileName})
}

// CreateMultipleFilesForm wraps files into a multipart form under FilesField.
// contents and fileNames are matched by index.
func CreateMultipleFilesForm(contents [][]byte, fileNames []string) (*multipart.Form, error) {
	if len(contents) != len(fileNames) {
		return nil, fmt.Errorf("got %d contents for %d file names", len(contents), len(fileNames))
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for i, content := range contents {
		part, err := writer.CreateFormFile(FilesField, fileNames[i])
		if err != nil {
			return nil, fmt.Errorf("failed to create form file %s: %w", fileNames[i], err)
		}
		if _, err := part.Write(content); err != nil {
			return nil, fmt.Errorf("failed to write form file %s: %w", fileNames[i], err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(maxFormMemory)
	if err != nil {
		return nil, fmt.Errorf("failed to read multipart form: %w", err)
	}

	return form, nil
}
