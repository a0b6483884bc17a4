package winja

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
)

// FileUpload is a binary field of a multipart write (an opportunity image or
// a partner logo).
type FileUpload struct {
	// Name is the filename reported to the server.
	Name string

	// Content is the file body.
	Content io.Reader
}

type formField struct {
	key   string
	value string
}

type filePart struct {
	key  string
	file *FileUpload
}

// multipartPayload accumulates the fields of a multipart write in insertion
// order. Booleans are encoded as "1"/"0": the backend expects integer-like
// flags and rejects "true"/"false".
type multipartPayload struct {
	fields []formField
	files  []filePart
}

func (p *multipartPayload) set(key, value string) {
	p.fields = append(p.fields, formField{key: key, value: value})
}

// setOptional skips empty values, mirroring how absent form fields are
// simply not submitted.
func (p *multipartPayload) setOptional(key, value string) {
	if value != "" {
		p.set(key, value)
	}
}

func (p *multipartPayload) setBool(key string, value bool) {
	if value {
		p.set(key, "1")
	} else {
		p.set(key, "0")
	}
}

func (p *multipartPayload) setInt(key string, value int64) {
	p.set(key, strconv.FormatInt(value, 10))
}

func (p *multipartPayload) setFile(key string, file *FileUpload) {
	if file != nil {
		p.files = append(p.files, filePart{key: key, file: file})
	}
}

// encode renders the payload as a multipart/form-data body, returning the
// body and its content type (which carries the boundary).
func (p *multipartPayload) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, field := range p.fields {
		if err := writer.WriteField(field.key, field.value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %q: %w", field.key, err)
		}
	}

	for _, part := range p.files {
		fw, err := writer.CreateFormFile(part.key, part.file.Name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part %q: %w", part.key, err)
		}
		if _, err := io.Copy(fw, part.file.Content); err != nil {
			return nil, "", fmt.Errorf("failed to write file part %q: %w", part.key, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return &buf, writer.FormDataContentType(), nil
}
