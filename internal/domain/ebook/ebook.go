package ebook

import (
	"time"

	"opsdash/internal/common"
)

// Ebook highlights keep insertion order and are unique (exact match).
type Ebook struct {
	ID          common.UUID `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Highlights  []string    `json:"highlights"`
	Image       string      `json:"image"`
	PDFFile     string      `json:"pdf_file"`
	CreatedAt   time.Time   `json:"created_at"`
}
