// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"rpromo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPersonNotFound is returned when an operation targets a registration
// that does not exist. Absence is a result, not a provider failure.
var ErrPersonNotFound = errors.New("person not found")

// ProviderKind identifies one of the interchangeable storage backends.
type ProviderKind string

const (
	ProviderLocalFile ProviderKind = "localfile"
	ProviderPostgres  ProviderKind = "postgres"
)

// ProviderInfo is static capability metadata about a storage backend.
type ProviderInfo struct {
	Kind             ProviderKind `json:"kind"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	SupportsRealTime bool         `json:"supportsRealTime"`
	SupportsOffline  bool         `json:"supportsOffline"`
	RequiresAuth     bool         `json:"requiresAuth"`
}

// PersonPatch carries a partial update: only non-nil fields are merged
// into the stored registration. Matches the original's Partial<Pessoa>
// update shape.
type PersonPatch struct {
	FullName         *string
	CPF              *string
	RG               *string
	IssuingAuthority *string
	IssuedAt         *time.Time
	BirthDate        *time.Time
	Sex              *string
	RaceColor        *string
	Birthplace       *string
	FatherName       *string
	MotherName       *string
	Email            *string
	Phone            *string

	VoterRegistration *string
	ElectoralZone     *string
	ElectoralSection  *string
	LaborCard         *string
	LaborCardIssuedAt *time.Time
	PIS               *string
	ReservistCert     *string

	AccountType   *entity.AccountType
	Bank          *string
	BankBranch    *string
	AccountNumber *string
	PIXKey        *string

	Street       *string
	Neighborhood *string
	City         *string
	PostalCode   *string

	HasChildren *bool
	Children    *[]entity.Child

	Status             *entity.Status
	InactivationReason *string
}

// Apply merges the non-nil patch fields into p. Both providers go through
// this single merge so local and remote updates agree field for field.
func (patch PersonPatch) Apply(p *entity.Person) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setTime := func(dst *time.Time, src *time.Time) {
		if src != nil {
			*dst = *src
		}
	}

	setString(&p.FullName, patch.FullName)
	setString(&p.CPF, patch.CPF)
	setString(&p.RG, patch.RG)
	setString(&p.IssuingAuthority, patch.IssuingAuthority)
	setTime(&p.IssuedAt, patch.IssuedAt)
	setTime(&p.BirthDate, patch.BirthDate)
	setString(&p.Sex, patch.Sex)
	setString(&p.RaceColor, patch.RaceColor)
	setString(&p.Birthplace, patch.Birthplace)
	setString(&p.FatherName, patch.FatherName)
	setString(&p.MotherName, patch.MotherName)
	setString(&p.Email, patch.Email)
	setString(&p.Phone, patch.Phone)

	setString(&p.VoterRegistration, patch.VoterRegistration)
	setString(&p.ElectoralZone, patch.ElectoralZone)
	setString(&p.ElectoralSection, patch.ElectoralSection)
	setString(&p.LaborCard, patch.LaborCard)
	setTime(&p.LaborCardIssuedAt, patch.LaborCardIssuedAt)
	setString(&p.PIS, patch.PIS)
	setString(&p.ReservistCert, patch.ReservistCert)

	if patch.AccountType != nil {
		p.AccountType = *patch.AccountType
	}
	setString(&p.Bank, patch.Bank)
	setString(&p.BankBranch, patch.BankBranch)
	setString(&p.AccountNumber, patch.AccountNumber)
	setString(&p.PIXKey, patch.PIXKey)

	setString(&p.Street, patch.Street)
	setString(&p.Neighborhood, patch.Neighborhood)
	setString(&p.City, patch.City)
	setString(&p.PostalCode, patch.PostalCode)

	if patch.HasChildren != nil {
		p.HasChildren = *patch.HasChildren
	}
	if patch.Children != nil {
		p.Children = *patch.Children
	}
	if patch.HasChildren != nil || patch.Children != nil {
		p.NormalizeChildren()
	}

	if patch.Status != nil {
		p.Status = *patch.Status
	}
	setString(&p.InactivationReason, patch.InactivationReason)
}

// PersonProvider is the uniform CRUD + search contract every storage
// backend implements. The registry depends on this interface only; which
// implementation is active is decided by the provider selector.
type PersonProvider interface {
	// GetAll returns every registration, newest first by creation time.
	GetAll(ctx context.Context) ([]*entity.Person, error)

	// GetByID returns one registration, or ErrPersonNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Person, error)

	// Create assigns an id and creation timestamp, persists the
	// registration and returns the stored copy.
	Create(ctx context.Context, person *entity.Person) (*entity.Person, error)

	// Update merges the patch into the stored registration, bumps the
	// update timestamp and returns the result, or ErrPersonNotFound.
	Update(ctx context.Context, id uuid.UUID, patch PersonPatch) (*entity.Person, error)

	// Delete removes a registration. False means the id was unknown.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Search returns the registrations matching the AND-combined filters,
	// preserving the GetAll ordering.
	Search(ctx context.Context, filters SearchFilters) ([]*entity.Person, error)

	// Info returns static capability metadata about this backend.
	Info() ProviderInfo
}
