package forms

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// FilePart is a binary attachment selected for upload. Edit screens only add
// a part for files the admin re-selected; an empty Name means "keep the
// stored file" and produces no part.
type FilePart struct {
	Field    string
	Name     string
	Contents io.Reader
}

// Multipart assembles a form body field by field, repeating array values as
// one part per element the way the upstream API expects.
type Multipart struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	err    error
}

func NewMultipart() *Multipart {
	m := &Multipart{}
	m.writer = multipart.NewWriter(&m.buf)
	return m
}

func (m *Multipart) Field(name, value string) *Multipart {
	if m.err != nil {
		return m
	}
	m.err = m.writer.WriteField(name, value)
	return m
}

func (m *Multipart) Repeated(name string, values []string) *Multipart {
	for _, value := range values {
		m.Field(name, value)
	}
	return m
}

func (m *Multipart) File(part FilePart) *Multipart {
	if m.err != nil || part.Name == "" {
		return m
	}
	dest, err := m.writer.CreateFormFile(part.Field, part.Name)
	if err != nil {
		m.err = err
		return m
	}
	if part.Contents != nil {
		if _, err := io.Copy(dest, part.Contents); err != nil {
			m.err = err
		}
	}
	return m
}

// Encode closes the writer and returns the body with its content type.
func (m *Multipart) Encode() (io.Reader, string, error) {
	if m.err != nil {
		return nil, "", fmt.Errorf("build multipart body: %w", m.err)
	}
	if err := m.writer.Close(); err != nil {
		return nil, "", fmt.Errorf("build multipart body: %w", err)
	}
	return &m.buf, m.writer.FormDataContentType(), nil
}
