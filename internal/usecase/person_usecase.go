// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"rpromo/internal/domain/entity"
	"rpromo/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ChildInput is one dependent on a registration form.
type ChildInput struct {
	Name      string    `json:"nome" validate:"required"`
	BirthDate time.Time `json:"dataNascimento" validate:"required"`
}

// CreatePersonInput defines the data required to register a person. Field
// names follow the registration form; dates arrive as RFC 3339.
type CreatePersonInput struct {
	FullName         string    `json:"nomeCompleto" validate:"required"`
	CPF              string    `json:"cpf" validate:"required"`
	RG               string    `json:"rg"`
	IssuingAuthority string    `json:"orgaoEmissor"`
	IssuedAt         time.Time `json:"dataExpedicao"`
	BirthDate        time.Time `json:"dataNascimento"`
	Sex              string    `json:"sexo"`
	RaceColor        string    `json:"racaCor"`
	Birthplace       string    `json:"naturalidade"`
	FatherName       string    `json:"nomePai"`
	MotherName       string    `json:"nomeMae"`
	Email            string    `json:"email" validate:"omitempty,email"`
	Phone            string    `json:"telefone"`

	VoterRegistration string    `json:"tituloEleitor"`
	ElectoralZone     string    `json:"zonaEleitoral"`
	ElectoralSection  string    `json:"secaoEleitoral"`
	LaborCard         string    `json:"carteiraTrabalho"`
	LaborCardIssuedAt time.Time `json:"dataEmissaoCarteira"`
	PIS               string    `json:"pis"`
	ReservistCert     string    `json:"certificadoReservista"`

	AccountType   string `json:"tipoConta"`
	Bank          string `json:"banco"`
	BankBranch    string `json:"agenciaBancaria"`
	AccountNumber string `json:"numeroConta"`
	PIXKey        string `json:"chavePix"`

	Street       string `json:"rua"`
	Neighborhood string `json:"bairro"`
	City         string `json:"cidade"`
	PostalCode   string `json:"cep"`

	HasChildren bool         `json:"temFilhos"`
	Children    []ChildInput `json:"nomesFilhos" validate:"dive"`
}

// UpdatePersonInput is a partial update: only present fields are merged.
type UpdatePersonInput struct {
	FullName         *string    `json:"nomeCompleto"`
	CPF              *string    `json:"cpf"`
	RG               *string    `json:"rg"`
	IssuingAuthority *string    `json:"orgaoEmissor"`
	IssuedAt         *time.Time `json:"dataExpedicao"`
	BirthDate        *time.Time `json:"dataNascimento"`
	Sex              *string    `json:"sexo"`
	RaceColor        *string    `json:"racaCor"`
	Birthplace       *string    `json:"naturalidade"`
	FatherName       *string    `json:"nomePai"`
	MotherName       *string    `json:"nomeMae"`
	Email            *string    `json:"email" validate:"omitempty,email"`
	Phone            *string    `json:"telefone"`

	VoterRegistration *string    `json:"tituloEleitor"`
	ElectoralZone     *string    `json:"zonaEleitoral"`
	ElectoralSection  *string    `json:"secaoEleitoral"`
	LaborCard         *string    `json:"carteiraTrabalho"`
	LaborCardIssuedAt *time.Time `json:"dataEmissaoCarteira"`
	PIS               *string    `json:"pis"`
	ReservistCert     *string    `json:"certificadoReservista"`

	AccountType   *string `json:"tipoConta"`
	Bank          *string `json:"banco"`
	BankBranch    *string `json:"agenciaBancaria"`
	AccountNumber *string `json:"numeroConta"`
	PIXKey        *string `json:"chavePix"`

	Street       *string `json:"rua"`
	Neighborhood *string `json:"bairro"`
	City         *string `json:"cidade"`
	PostalCode   *string `json:"cep"`

	HasChildren *bool         `json:"temFilhos"`
	Children    *[]ChildInput `json:"nomesFilhos"`

	Status             *string `json:"status" validate:"omitempty,oneof=Ativo Inativo"`
	InactivationReason *string `json:"motivoInativacao"`
}

// ChangeStatusInput activates or inactivates a registration. Inactivation
// carries the reason; activation ignores it.
type ChangeStatusInput struct {
	Status string `json:"status" validate:"required,oneof=Ativo Inativo"`
	Reason string `json:"motivo"`
}

// SearchInput carries the AND-combined search filters.
type SearchInput struct {
	Term         string
	Status       string
	Neighborhood string
	City         string
	DateFrom     *time.Time
	DateTo       *time.Time
}

// --- Output DTOs ---

// RegistrySnapshot is the registry's published collection state. When the
// active provider fails, People holds the previously loaded collection and
// LastError says why it is stale.
type RegistrySnapshot struct {
	People    []*entity.Person `json:"pessoas"`
	Loading   bool             `json:"carregando"`
	LastError string           `json:"erro,omitempty"`
}

// PersonStats summarizes the collection for the dashboard.
type PersonStats struct {
	Total          int            `json:"total"`
	Active         int            `json:"ativos"`
	Inactive       int            `json:"inativos"`
	ByNeighborhood map[string]int `json:"porBairro"`
	ByCity         map[string]int `json:"porCidade"`
}

// FilterOptions lists the distinct values the search form can offer.
type FilterOptions struct {
	Neighborhoods []string `json:"bairros"`
	Cities        []string `json:"cidades"`
}

// PersonUsecase is the stateful registry facade over the active storage
// provider. It owns the session collection: reads serve a copied snapshot,
// writes go to the provider and refresh the snapshot on success.
type PersonUsecase interface {
	// List reloads the collection from the active provider and returns the
	// snapshot. On provider failure the previous snapshot is returned
	// alongside the error.
	List(ctx context.Context) (*RegistrySnapshot, error)

	// Reload discards the in-memory collection and loads it again from the
	// active provider. The selector calls this after a switch.
	Reload(ctx context.Context) error

	Get(ctx context.Context, id uuid.UUID) (*entity.Person, error)
	Create(ctx context.Context, input *CreatePersonInput) (*entity.Person, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdatePersonInput) (*entity.Person, error)

	// Delete removes the registration and cascades its photo attachments.
	Delete(ctx context.Context, id uuid.UUID) error

	Search(ctx context.Context, input SearchInput) ([]*entity.Person, error)

	// ChangeStatus is sugar over Update: inactivating requires a non-empty
	// reason, activating clears the stored reason.
	ChangeStatus(ctx context.Context, id uuid.UUID, input *ChangeStatusInput) (*entity.Person, error)

	Stats(ctx context.Context) (*PersonStats, error)
	FilterOptions(ctx context.Context) (*FilterOptions, error)
}

// Filters maps the input onto the repository filter type.
func (input SearchInput) Filters() repository.SearchFilters {
	return repository.SearchFilters{
		Term:         input.Term,
		Status:       entity.Status(input.Status),
		Neighborhood: input.Neighborhood,
		City:         input.City,
		DateFrom:     input.DateFrom,
		DateTo:       input.DateTo,
	}
}
