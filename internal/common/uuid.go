package common

import "github.com/google/uuid"

type UUID string

// NewUUID mints the correlation ids attached to upstream requests. Record
// ids are upstream-assigned and pass through as opaque strings.
func NewUUID() UUID {
	return UUID(uuid.NewString())
}

func (u UUID) String() string {
	return string(u)
}
