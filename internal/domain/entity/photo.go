package entity

import (
	"time"

	"github.com/google/uuid"
)

// PhotoCategory classifies an attachment within a registration.
type PhotoCategory string

const (
	PhotoProfile  PhotoCategory = "perfil"
	PhotoDocument PhotoCategory = "documento"
	PhotoVaccine  PhotoCategory = "vacina"
	PhotoOther    PhotoCategory = "outros"
)

// Valid reports whether c is one of the known categories.
func (c PhotoCategory) Valid() bool {
	switch c {
	case PhotoProfile, PhotoDocument, PhotoVaccine, PhotoOther:
		return true
	default:
		return false
	}
}

// Photo is the metadata for one stored attachment. The binary payload
// lives in the blob store keyed by ID; this struct is the index entry.
type Photo struct {
	ID         uuid.UUID     `json:"id"`
	Name       string        `json:"nome"`
	MIMEType   string        `json:"tipo"`
	Size       int64         `json:"tamanho"`
	PersonID   uuid.UUID     `json:"pessoaId"`
	Category   PhotoCategory `json:"categoria"`
	UploadedAt time.Time     `json:"dataUpload"`
}
