package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// Form builds a multipart request body, used by the endpoints that accept
// file uploads (event banners, payment screenshots).
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	name  string
	value string
}

type formFile struct {
	field    string
	filename string
	content  io.Reader
}

// AddField appends a plain text field.
func (f *Form) AddField(name, value string) *Form {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// AddFile appends a file part read from r.
func (f *Form) AddFile(field, filename string, r io.Reader) *Form {
	f.files = append(f.files, formFile{field: field, filename: filename, content: r})
	return f
}

func (f *Form) encode() (contentType string, body io.Reader, err error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, fld := range f.fields {
		if err := w.WriteField(fld.name, fld.value); err != nil {
			return "", nil, fmt.Errorf("write form field %q: %w", fld.name, err)
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.filename)
		if err != nil {
			return "", nil, fmt.Errorf("create form file %q: %w", file.field, err)
		}
		if _, err := io.Copy(part, file.content); err != nil {
			return "", nil, fmt.Errorf("copy form file %q: %w", file.field, err)
		}
	}
	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("finalize multipart form: %w", err)
	}
	return w.FormDataContentType(), &buf, nil
}
