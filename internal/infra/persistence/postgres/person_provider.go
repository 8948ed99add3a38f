// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"rpromo/internal/domain/entity"
	domainerrors "rpromo/internal/domain/errors"
	"rpromo/internal/domain/repository"
	"rpromo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// personProvider implements repository.PersonProvider against the remote
// 'pessoas' table. Every operation is a single round trip; filters are
// translated into native predicates instead of filtering client-side.
type personProvider struct {
	db *gorm.DB
}

// NewPersonProvider is the constructor for the remote provider. It returns
// nil when no database client is configured so the selector can skip the
// backend entirely.
func NewPersonProvider(db *gorm.DB) repository.PersonProvider {
	if db == nil {
		return nil
	}

	return &personProvider{db: db}
}

// Info returns static capability metadata about this backend.
func (repo *personProvider) Info() repository.ProviderInfo {
	return repository.ProviderInfo{
		Kind:             repository.ProviderPostgres,
		Name:             "PostgreSQL Provider",
		Description:      "Banco de dados gerenciado (PostgreSQL)",
		SupportsRealTime: true,
		SupportsOffline:  false,
		RequiresAuth:     true,
	}
}

// GetAll returns every registration, newest first by creation time.
func (repo *personProvider) GetAll(ctx context.Context) ([]*entity.Person, error) {
	var models []*model.PersonModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, providerFailure(err, "failed to list people")
	}

	people := make([]*entity.Person, 0, len(models))
	for _, m := range models {
		people = append(people, toPersonDomain(m))
	}

	return people, nil
}

// GetByID returns one registration, or ErrPersonNotFound.
func (repo *personProvider) GetByID(ctx context.Context, id uuid.UUID) (*entity.Person, error) {
	var personM model.PersonModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&personM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, providerFailure(err, "failed to find person by id")
	}

	return toPersonDomain(&personM), nil
}

// Create persists a new registration and returns the stored copy.
func (repo *personProvider) Create(ctx context.Context, person *entity.Person) (*entity.Person, error) {
	stored := *person
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	if stored.Status == "" {
		stored.Status = entity.StatusActive
	}
	stored.NormalizeChildren()

	personM := fromPersonDomain(&stored)

	if err := repo.db.WithContext(ctx).Create(personM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrPersonAlreadyExists.WrapMessage("cpf already registered")
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrPersonCreationFailed.WrapMessage("missing required registration fields")
		}

		return nil, providerFailure(err, "failed to create person")
	}

	return toPersonDomain(personM), nil
}

// Update merges the patch into the stored registration.
func (repo *personProvider) Update(ctx context.Context, id uuid.UUID, patch repository.PersonPatch) (*entity.Person, error) {
	var personM model.PersonModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&personM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, providerFailure(err, "failed to load person for update")
	}

	person := toPersonDomain(&personM)
	patch.Apply(person)

	updated := fromPersonDomain(person)
	updated.CreatedAt = personM.CreatedAt

	if err := repo.db.WithContext(ctx).Save(updated).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrPersonUpdateFailed.WrapMessage("missing required registration fields")
		}

		return nil, providerFailure(err, "failed to update person")
	}

	return toPersonDomain(updated), nil
}

// Delete removes a registration. False means the id was unknown.
func (repo *personProvider) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PersonModel{})
	if result.Error != nil {
		return false, providerFailure(result.Error, "failed to delete person")
	}

	return result.RowsAffected > 0, nil
}

// Search translates the filters into native predicates: ILIKE patterns for
// the term and address axes, equality for status and an inclusive range on
// the creation timestamp. CPF and phone are matched on their digit strings.
func (repo *personProvider) Search(ctx context.Context, filters repository.SearchFilters) ([]*entity.Person, error) {
	query := repo.db.WithContext(ctx).Model(&model.PersonModel{})

	if term := strings.TrimSpace(filters.Term); term != "" {
		pattern := likePattern(term)
		query = query.Where(
			`nome_completo ILIKE ? OR regexp_replace(cpf, '\D', '', 'g') LIKE ? OR email ILIKE ? OR regexp_replace(telefone, '\D', '', 'g') LIKE ? OR bairro ILIKE ? OR cidade ILIKE ?`,
			pattern, pattern, pattern, pattern, pattern, pattern,
		)
	}

	if filters.Status != "" {
		query = query.Where("status = ?", string(filters.Status))
	}

	if neighborhood := strings.TrimSpace(filters.Neighborhood); neighborhood != "" {
		query = query.Where("bairro ILIKE ?", likePattern(neighborhood))
	}

	if city := strings.TrimSpace(filters.City); city != "" {
		query = query.Where("cidade ILIKE ?", likePattern(city))
	}

	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at <= ?", *filters.DateTo)
	}

	var models []*model.PersonModel
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, providerFailure(err, "failed to search people")
	}

	people := make([]*entity.Person, 0, len(models))
	for _, m := range models {
		people = append(people, toPersonDomain(m))
	}

	return people, nil
}

// likePattern builds a contains pattern for ILIKE. LIKE metacharacters in
// the user's input are escaped so the canonical substring semantics hold:
// "%" and "_" match themselves, same as the in-memory matcher.
func likePattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)

	return "%" + escaped + "%"
}

// providerFailure wraps a database error into the generic provider-failure
// AppError. The original error stays attached for logs; the user-facing
// message never leaks driver details.
func providerFailure(err error, details string) error {
	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

// toPersonDomain converts a GORM PersonModel to a domain Person entity.
func toPersonDomain(data *model.PersonModel) *entity.Person {
	if data == nil {
		return nil
	}

	return &entity.Person{
		ID:               data.ID,
		FullName:         data.NomeCompleto,
		CPF:              data.CPF,
		RG:               data.RG,
		IssuingAuthority: data.OrgaoEmissor,
		IssuedAt:         data.DataExpedicao,
		BirthDate:        data.DataNascimento,
		Sex:              data.Sexo,
		RaceColor:        data.RacaCor,
		Birthplace:       data.Naturalidade,
		FatherName:       data.NomePai,
		MotherName:       data.NomeMae,
		Email:            data.Email,
		Phone:            data.Telefone,

		VoterRegistration: data.TituloEleitor,
		ElectoralZone:     data.ZonaEleitoral,
		ElectoralSection:  data.SecaoEleitoral,
		LaborCard:         data.CarteiraTrabalho,
		LaborCardIssuedAt: data.DataEmissaoCarteira,
		PIS:               data.PIS,
		ReservistCert:     data.CertificadoReservista,

		AccountType:   entity.AccountType(data.TipoConta),
		Bank:          data.Banco,
		BankBranch:    data.AgenciaBancaria,
		AccountNumber: data.NumeroConta,
		PIXKey:        data.ChavePix,

		Street:       data.Rua,
		Neighborhood: data.Bairro,
		City:         data.Cidade,
		PostalCode:   data.CEP,

		HasChildren: data.TemFilhos,
		ChildCount:  data.QuantidadeFilhos,
		Children:    data.NomesFilhos,

		Status:             entity.Status(data.Status),
		InactivationReason: data.MotivoInativacao,

		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPersonDomain converts a domain Person entity to a GORM PersonModel for persistence.
func fromPersonDomain(data *entity.Person) *model.PersonModel {
	if data == nil {
		return nil
	}

	return &model.PersonModel{
		ID:             data.ID,
		NomeCompleto:   data.FullName,
		CPF:            data.CPF,
		RG:             data.RG,
		OrgaoEmissor:   data.IssuingAuthority,
		DataExpedicao:  data.IssuedAt,
		DataNascimento: data.BirthDate,
		Sexo:           data.Sex,
		RacaCor:        data.RaceColor,
		Naturalidade:   data.Birthplace,
		NomePai:        data.FatherName,
		NomeMae:        data.MotherName,
		Email:          data.Email,
		Telefone:       data.Phone,

		TituloEleitor:         data.VoterRegistration,
		ZonaEleitoral:         data.ElectoralZone,
		SecaoEleitoral:        data.ElectoralSection,
		CarteiraTrabalho:      data.LaborCard,
		DataEmissaoCarteira:   data.LaborCardIssuedAt,
		PIS:                   data.PIS,
		CertificadoReservista: data.ReservistCert,

		TipoConta:       string(data.AccountType),
		Banco:           data.Bank,
		AgenciaBancaria: data.BankBranch,
		NumeroConta:     data.AccountNumber,
		ChavePix:        data.PIXKey,

		Rua:    data.Street,
		Bairro: data.Neighborhood,
		Cidade: data.City,
		CEP:    data.PostalCode,

		TemFilhos:        data.HasChildren,
		QuantidadeFilhos: data.ChildCount,
		NomesFilhos:      data.Children,

		Status:           string(data.Status),
		MotivoInativacao: data.InactivationReason,

		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
