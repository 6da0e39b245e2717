package forms

import (
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"
)

func TestMultipartRepeatsArrayFields(t *testing.T) {
	body, contentType, err := NewMultipart().
		Field("title", "Backend Engineer").
		Repeated("skills", []string{"Go", "SQL"}).
		File(FilePart{Field: "image", Name: "cover.png", Contents: strings.NewReader("png-bytes")}).
		Encode()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("expected multipart content type, got %q: %v", contentType, err)
	}
	reader := multipart.NewReader(body, params["boundary"])

	var skills []string
	var gotTitle, gotFile string
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read part: %v", err)
		}
		value, _ := io.ReadAll(part)
		switch part.FormName() {
		case "title":
			gotTitle = string(value)
		case "skills":
			skills = append(skills, string(value))
		case "image":
			gotFile = part.FileName()
		}
	}

	if gotTitle != "Backend Engineer" {
		t.Fatalf("unexpected title %q", gotTitle)
	}
	if len(skills) != 2 || skills[0] != "Go" || skills[1] != "SQL" {
		t.Fatalf("expected skills repeated as two parts, got %v", skills)
	}
	if gotFile != "cover.png" {
		t.Fatalf("expected file part, got %q", gotFile)
	}
}

func TestMultipartSkipsUnselectedFile(t *testing.T) {
	body, contentType, err := NewMultipart().
		Field("title", "Edited").
		File(FilePart{Field: "pdf_file"}).
		Encode()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	_, params, _ := mime.ParseMediaType(contentType)
	reader := multipart.NewReader(body, params["boundary"])
	count := 0
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read part: %v", err)
		}
		if part.FormName() == "pdf_file" {
			t.Fatal("expected no part for an unselected file")
		}
		count++
	}
	if count != 1 {
		t.Fatalf("expected only the title part, got %d parts", count)
	}
}
