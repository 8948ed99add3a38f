package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"rpromo/config"
	deliverycontext "rpromo/internal/delivery/context"
	"rpromo/internal/domain/entity"
	domainerrors "rpromo/internal/domain/errors"
	"rpromo/internal/domain/repository"
	"rpromo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// personRegistry implements the PersonUsecase interface. It is the single
// stateful owner of the session collection: an ordered snapshot, a loading
// flag and the last provider error, all guarded by one mutex. Provider
// failures leave the previous snapshot visible; the error rides alongside.
type personRegistry struct {
	selector *ProviderSelector
	photos   repository.PhotoStore
	timeout  time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	people  []*entity.Person
	loaded  bool
	loading bool
	lastErr error
}

// PersonRegistryParams holds dependencies for the registry, injected by Fx.
type PersonRegistryParams struct {
	fx.In

	Selector   *ProviderSelector
	PhotoStore repository.PhotoStore
	Config     *config.Config
	Logger     *slog.Logger
}

// NewPersonRegistry is the constructor for personRegistry.
func NewPersonRegistry(params PersonRegistryParams) usecase.PersonUsecase {
	return &personRegistry{
		selector: params.Selector,
		photos:   params.PhotoStore,
		timeout:  params.Config.Storage.OperationTimeout,
		logger:   params.Logger,
	}
}

func (reg *personRegistry) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, reg.logger)
}

// opCtx bounds one provider call. The original had no timeout at all and a
// hung remote call pinned the loading flag forever.
func (reg *personRegistry) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, reg.timeout)
}

// List reloads the collection and returns the published snapshot. On
// provider failure the stale snapshot is returned alongside the error.
func (reg *personRegistry) List(ctx context.Context) (*usecase.RegistrySnapshot, error) {
	err := reg.Reload(ctx)

	return reg.snapshot(), err
}

// Reload discards the in-memory collection and loads it again from the
// active provider.
func (reg *personRegistry) Reload(ctx context.Context) error {
	reg.setLoading(true)
	defer reg.setLoading(false)

	opCtx, cancel := reg.opCtx(ctx)
	defer cancel()

	people, err := reg.selector.Current().GetAll(opCtx)

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if err != nil {
		reg.lastErr = err
		reg.log(ctx).Error("Failed to load collection",
			slog.String("provider", string(reg.selector.CurrentInfo().Kind)),
			slog.Any("error", err))

		return errors.Wrap(err, "failed to load collection")
	}

	reg.people = people
	reg.loaded = true
	reg.lastErr = nil

	return nil
}

// refresh re-loads the snapshot after a successful mutation. Failures are
// recorded on the registry state but do not fail the mutation itself.
func (reg *personRegistry) refresh(ctx context.Context) {
	if err := reg.Reload(ctx); err != nil {
		reg.log(ctx).Warn("Snapshot refresh after mutation failed", slog.Any("error", err))
	}
}

func (reg *personRegistry) setLoading(v bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	reg.loading = v
}

// snapshot returns a copy of the published collection state.
func (reg *personRegistry) snapshot() *usecase.RegistrySnapshot {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	people := make([]*entity.Person, len(reg.people))
	copy(people, reg.people)

	snap := &usecase.RegistrySnapshot{
		People:  people,
		Loading: reg.loading,
	}
	if reg.lastErr != nil {
		snap.LastError = reg.lastErr.Error()
	}

	return snap
}

// collection returns the loaded snapshot, loading it first when the
// registry has not seen the provider yet.
func (reg *personRegistry) collection(ctx context.Context) ([]*entity.Person, error) {
	reg.mu.Lock()
	loaded := reg.loaded
	reg.mu.Unlock()

	if !loaded {
		if err := reg.Reload(ctx); err != nil {
			return nil, err
		}
	}

	return reg.snapshot().People, nil
}

func (reg *personRegistry) Get(ctx context.Context, id uuid.UUID) (*entity.Person, error) {
	opCtx, cancel := reg.opCtx(ctx)
	defer cancel()

	person, err := reg.selector.Current().GetByID(opCtx, id)
	if errors.Is(err, repository.ErrPersonNotFound) {
		return nil, domainerrors.ErrPersonNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get person")
	}

	return person, nil
}

func (reg *personRegistry) Create(ctx context.Context, input *usecase.CreatePersonInput) (*entity.Person, error) {
	opCtx, cancel := reg.opCtx(ctx)
	defer cancel()

	created, err := reg.selector.Current().Create(opCtx, personFromInput(input))
	if err != nil {
		reg.log(ctx).Error("Failed to create person",
			slog.String("cpf", repository.DigitsOnly(input.CPF)),
			slog.Any("error", err))

		return nil, err
	}

	reg.log(ctx).Info("Person registered", slog.Any("personID", created.ID))
	reg.refresh(ctx)

	return created, nil
}

func (reg *personRegistry) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdatePersonInput) (*entity.Person, error) {
	opCtx, cancel := reg.opCtx(ctx)
	defer cancel()

	updated, err := reg.selector.Current().Update(opCtx, id, patchFromInput(input))
	if errors.Is(err, repository.ErrPersonNotFound) {
		return nil, domainerrors.ErrPersonNotFound
	}
	if err != nil {
		reg.log(ctx).Error("Failed to update person", slog.Any("personID", id), slog.Any("error", err))

		return nil, err
	}

	reg.refresh(ctx)

	return updated, nil
}

// Delete removes the registration and cascades its photo attachments.
func (reg *personRegistry) Delete(ctx context.Context, id uuid.UUID) error {
	opCtx, cancel := reg.opCtx(ctx)
	defer cancel()

	ok, err := reg.selector.Current().Delete(opCtx, id)
	if err != nil {
		reg.log(ctx).Error("Failed to delete person", slog.Any("personID", id), slog.Any("error", err))

		return err
	}
	if !ok {
		return domainerrors.ErrPersonNotFound
	}

	if err := reg.photos.DeleteByPerson(ctx, id); err != nil {
		// The registration is already gone; orphaned payloads are logged,
		// not surfaced.
		reg.log(ctx).Warn("Failed to cascade photo delete", slog.Any("personID", id), slog.Any("error", err))
	}

	reg.log(ctx).Info("Person removed", slog.Any("personID", id))
	reg.refresh(ctx)

	return nil
}

func (reg *personRegistry) Search(ctx context.Context, input usecase.SearchInput) ([]*entity.Person, error) {
	opCtx, cancel := reg.opCtx(ctx)
	defer cancel()

	people, err := reg.selector.Current().Search(opCtx, input.Filters())
	if err != nil {
		return nil, errors.Wrap(err, "failed to search people")
	}

	return people, nil
}

// ChangeStatus is sugar over Update. Inactivating requires a reason;
// activating clears the stored one.
func (reg *personRegistry) ChangeStatus(ctx context.Context, id uuid.UUID, input *usecase.ChangeStatusInput) (*entity.Person, error) {
	status := entity.Status(input.Status)
	if !status.Valid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(input.Status)
	}

	reason := strings.TrimSpace(input.Reason)
	if status == entity.StatusInactive && reason == "" {
		return nil, domainerrors.ErrInactivationReasonRequired
	}
	if status == entity.StatusActive {
		reason = ""
	}

	patch := repository.PersonPatch{
		Status:             &status,
		InactivationReason: &reason,
	}

	opCtx, cancel := reg.opCtx(ctx)
	defer cancel()

	updated, err := reg.selector.Current().Update(opCtx, id, patch)
	if errors.Is(err, repository.ErrPersonNotFound) {
		return nil, domainerrors.ErrPersonNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to change person status")
	}

	reg.log(ctx).Info("Person status changed",
		slog.Any("personID", id), slog.String("status", string(status)))
	reg.refresh(ctx)

	return updated, nil
}

// Stats summarizes the loaded collection for the dashboard.
func (reg *personRegistry) Stats(ctx context.Context) (*usecase.PersonStats, error) {
	people, err := reg.collection(ctx)
	if err != nil {
		return nil, err
	}

	stats := &usecase.PersonStats{
		Total:          len(people),
		ByNeighborhood: make(map[string]int),
		ByCity:         make(map[string]int),
	}
	for _, p := range people {
		if p.Status == entity.StatusActive {
			stats.Active++
		} else {
			stats.Inactive++
		}
		if p.Neighborhood != "" {
			stats.ByNeighborhood[p.Neighborhood]++
		}
		if p.City != "" {
			stats.ByCity[p.City]++
		}
	}

	return stats, nil
}

// FilterOptions lists the distinct neighborhoods and cities present in the
// loaded collection, sorted.
func (reg *personRegistry) FilterOptions(ctx context.Context) (*usecase.FilterOptions, error) {
	people, err := reg.collection(ctx)
	if err != nil {
		return nil, err
	}

	neighborhoods := distinct(people, func(p *entity.Person) string { return p.Neighborhood })
	cities := distinct(people, func(p *entity.Person) string { return p.City })

	return &usecase.FilterOptions{
		Neighborhoods: neighborhoods,
		Cities:        cities,
	}, nil
}

func distinct(people []*entity.Person, field func(*entity.Person) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, p := range people {
		v := strings.TrimSpace(field(p))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)

	return values
}

// personFromInput builds the entity to create. Status and timestamps are
// assigned by the provider.
func personFromInput(input *usecase.CreatePersonInput) *entity.Person {
	p := &entity.Person{
		FullName:         input.FullName,
		CPF:              input.CPF,
		RG:               input.RG,
		IssuingAuthority: input.IssuingAuthority,
		IssuedAt:         input.IssuedAt,
		BirthDate:        input.BirthDate,
		Sex:              input.Sex,
		RaceColor:        input.RaceColor,
		Birthplace:       input.Birthplace,
		FatherName:       input.FatherName,
		MotherName:       input.MotherName,
		Email:            input.Email,
		Phone:            input.Phone,

		VoterRegistration: input.VoterRegistration,
		ElectoralZone:     input.ElectoralZone,
		ElectoralSection:  input.ElectoralSection,
		LaborCard:         input.LaborCard,
		LaborCardIssuedAt: input.LaborCardIssuedAt,
		PIS:               input.PIS,
		ReservistCert:     input.ReservistCert,

		AccountType:   entity.AccountType(input.AccountType),
		Bank:          input.Bank,
		BankBranch:    input.BankBranch,
		AccountNumber: input.AccountNumber,
		PIXKey:        input.PIXKey,

		Street:       input.Street,
		Neighborhood: input.Neighborhood,
		City:         input.City,
		PostalCode:   input.PostalCode,

		HasChildren: input.HasChildren,
		Children:    childrenFromInput(input.Children),
	}
	p.NormalizeChildren()

	return p
}

func childrenFromInput(inputs []usecase.ChildInput) []entity.Child {
	if len(inputs) == 0 {
		return nil
	}

	children := make([]entity.Child, 0, len(inputs))
	for _, c := range inputs {
		children = append(children, entity.Child{Name: c.Name, BirthDate: c.BirthDate})
	}

	return children
}

// patchFromInput maps the partial update DTO onto the provider patch.
func patchFromInput(input *usecase.UpdatePersonInput) repository.PersonPatch {
	patch := repository.PersonPatch{
		FullName:         input.FullName,
		CPF:              input.CPF,
		RG:               input.RG,
		IssuingAuthority: input.IssuingAuthority,
		IssuedAt:         input.IssuedAt,
		BirthDate:        input.BirthDate,
		Sex:              input.Sex,
		RaceColor:        input.RaceColor,
		Birthplace:       input.Birthplace,
		FatherName:       input.FatherName,
		MotherName:       input.MotherName,
		Email:            input.Email,
		Phone:            input.Phone,

		VoterRegistration: input.VoterRegistration,
		ElectoralZone:     input.ElectoralZone,
		ElectoralSection:  input.ElectoralSection,
		LaborCard:         input.LaborCard,
		LaborCardIssuedAt: input.LaborCardIssuedAt,
		PIS:               input.PIS,
		ReservistCert:     input.ReservistCert,

		Bank:          input.Bank,
		BankBranch:    input.BankBranch,
		AccountNumber: input.AccountNumber,
		PIXKey:        input.PIXKey,

		Street:       input.Street,
		Neighborhood: input.Neighborhood,
		City:         input.City,
		PostalCode:   input.PostalCode,

		HasChildren:        input.HasChildren,
		InactivationReason: input.InactivationReason,
	}

	if input.AccountType != nil {
		accountType := entity.AccountType(*input.AccountType)
		patch.AccountType = &accountType
	}
	if input.Status != nil {
		status := entity.Status(*input.Status)
		patch.Status = &status
	}
	if input.Children != nil {
		children := childrenFromInput(*input.Children)
		patch.Children = &children
	}

	return patch
}
