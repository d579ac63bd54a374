// Package businessflow contains the core business logic and use cases for directory management
package businessflow

import (
	"context"
	"fmt"

	"github.com/CoriMyp/bot-bugalter/app/dto"
	"github.com/CoriMyp/bot-bugalter/models"
	"github.com/CoriMyp/bot-bugalter/repository"
	"github.com/CoriMyp/bot-bugalter/utils"
	"gorm.io/gorm"
)

// DirectoryFlow defines operations for managing the entity directory:
// countries, templates, bookmaker profiles, wallets and sources.
type DirectoryFlow interface {
	CreateCountry(ctx context.Context, req *dto.CreateCountryRequest, actor *Actor) (*dto.CountryDTO, error)
	ListCountries(ctx context.Context) ([]dto.CountryDTO, error)
	DeleteCountry(ctx context.Context, id uint, actor *Actor) error

	CreateTemplate(ctx context.Context, req *dto.CreateTemplateRequest, actor *Actor) (*dto.TemplateDTO, error)
	ListTemplates(ctx context.Context, countryID uint) ([]dto.TemplateDTO, error)
	DeleteTemplate(ctx context.Context, id uint, actor *Actor) error

	CreateBookmaker(ctx context.Context, req *dto.CreateBookmakerRequest, actor *Actor) (*models.Bookmaker, error)
	UpdateBookmaker(ctx context.Context, id uint, req *dto.UpdateBookmakerRequest, actor *Actor) error
	DeleteBookmaker(ctx context.Context, id uint, actor *Actor) error

	CreateWallet(ctx context.Context, req *dto.CreateWalletRequest, actor *Actor) (*models.Wallet, error)
	AdjustWallet(ctx context.Context, id uint, req *dto.AdjustWalletRequest, actor *Actor) error
	DeleteWallet(ctx context.Context, id uint, actor *Actor) error

	CreateSource(ctx context.Context, req *dto.CreateSourceRequest, actor *Actor) (*dto.SourceDTO, error)
	ListSources(ctx context.Context) ([]dto.SourceDTO, error)
	DeleteSource(ctx context.Context, id uint, actor *Actor) error
}

// DirectoryFlowImpl implements DirectoryFlow
type DirectoryFlowImpl struct {
	countryRepo   repository.CountryRepository
	templateRepo  repository.TemplateRepository
	bookmakerRepo repository.BookmakerRepository
	walletRepo    repository.WalletRepository
	sourceRepo    repository.SourceRepository
	historyRepo   repository.HistoryRepository
	db            *gorm.DB
}

// NewDirectoryFlow constructs a DirectoryFlow
func NewDirectoryFlow(
	countryRepo repository.CountryRepository,
	templateRepo repository.TemplateRepository,
	bookmakerRepo repository.BookmakerRepository,
	walletRepo repository.WalletRepository,
	sourceRepo repository.SourceRepository,
	historyRepo repository.HistoryRepository,
	db *gorm.DB,
) DirectoryFlow {
	return &DirectoryFlowImpl{
		countryRepo:   countryRepo,
		templateRepo:  templateRepo,
		bookmakerRepo: bookmakerRepo,
		walletRepo:    walletRepo,
		sourceRepo:    sourceRepo,
		historyRepo:   historyRepo,
		db:            db,
	}
}

// CreateCountry registers a country. Names are normalized to leading
// uppercase so lookups from free-form chat input stay stable.
func (f *DirectoryFlowImpl) CreateCountry(ctx context.Context, req *dto.CreateCountryRequest, actor *Actor) (*dto.CountryDTO, error) {
	name := utils.Capitalize(req.Name)

	existing, err := f.countryRepo.ByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewBusinessError("COUNTRY_ALREADY_EXISTS", "Country already exists", ErrCountryAlreadyExists)
	}

	country := &models.Country{
		Name:       name,
		Commission: req.Commission,
		Flag:       req.Flag,
	}

	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.countryRepo.Save(txCtx, country); err != nil {
			return err
		}
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationCountryCreated,
			fmt.Sprintf("country %q created", name))
	})
	if err != nil {
		return nil, err
	}

	return &dto.CountryDTO{ID: country.ID, Name: country.Name, Commission: country.Commission, Flag: country.Flag}, nil
}

// ListCountries lists live countries
func (f *DirectoryFlowImpl) ListCountries(ctx context.Context) ([]dto.CountryDTO, error) {
	countries, err := f.countryRepo.ListLive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CountryDTO, 0, len(countries))
	for _, c := range countries {
		out = append(out, dto.CountryDTO{ID: c.ID, Name: c.Name, Commission: c.Commission, Flag: c.Flag})
	}
	return out, nil
}

// DeleteCountry soft-deletes a country together with its templates,
// bookmakers and wallets, so nothing under it keeps contributing to
// derived figures.
func (f *DirectoryFlowImpl) DeleteCountry(ctx context.Context, id uint, actor *Actor) error {
	country, err := f.countryRepo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if country == nil {
		return NewBusinessError("COUNTRY_NOT_FOUND", "Country not found", ErrCountryNotFound)
	}

	return repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		bookmakers, err := f.bookmakerRepo.ListByCountry(txCtx, id)
		if err != nil {
			return err
		}
		for _, b := range bookmakers {
			if err := f.bookmakerRepo.SoftDelete(txCtx, b.ID); err != nil {
				return err
			}
		}

		wallets, err := f.walletRepo.ListByCountry(txCtx, id)
		if err != nil {
			return err
		}
		for _, w := range wallets {
			if err := f.walletRepo.SoftDelete(txCtx, w.ID); err != nil {
				return err
			}
		}

		templates, err := f.templateRepo.ListByCountry(txCtx, id)
		if err != nil {
			return err
		}
		for _, t := range templates {
			if err := f.templateRepo.SoftDelete(txCtx, t.ID); err != nil {
				return err
			}
		}

		if err := f.countryRepo.SoftDelete(txCtx, id); err != nil {
			return err
		}
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationCountryDeleted,
			fmt.Sprintf("country %q deleted", country.Name))
	})
}

// CreateTemplate registers a bookmaker brand under a country
func (f *DirectoryFlowImpl) CreateTemplate(ctx context.Context, req *dto.CreateTemplateRequest, actor *Actor) (*dto.TemplateDTO, error) {
	country, err := f.countryRepo.ByID(ctx, req.CountryID)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, NewBusinessError("COUNTRY_NOT_FOUND", "Country not found", ErrCountryNotFound)
	}

	name := utils.Capitalize(req.Name)
	existing, err := f.templateRepo.ByNameAndCountry(ctx, name, country.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewBusinessError("TEMPLATE_ALREADY_EXISTS", "Template already exists in this country", ErrTemplateAlreadyExists)
	}

	template := &models.Template{
		Name:               name,
		CountryID:          country.ID,
		EmployeePercentage: req.EmployeePercentage,
	}

	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.templateRepo.Save(txCtx, template); err != nil {
			return err
		}
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationTemplateCreated,
			fmt.Sprintf("template %q under %q", name, country.Name))
	})
	if err != nil {
		return nil, err
	}

	return &dto.TemplateDTO{
		ID:                 template.ID,
		Name:               template.Name,
		CountryID:          template.CountryID,
		EmployeePercentage: template.EmployeePercentage,
	}, nil
}

// ListTemplates lists live templates under a country
func (f *DirectoryFlowImpl) ListTemplates(ctx context.Context, countryID uint) ([]dto.TemplateDTO, error) {
	templates, err := f.templateRepo.ListByCountry(ctx, countryID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TemplateDTO, 0, len(templates))
	for _, t := range templates {
		out = append(out, dto.TemplateDTO{
			ID:                 t.ID,
			Name:               t.Name,
			CountryID:          t.CountryID,
			EmployeePercentage: t.EmployeePercentage,
		})
	}
	return out, nil
}

// DeleteTemplate soft-deletes a template. Profiles created from it keep
// their copied percentage and stay live.
func (f *DirectoryFlowImpl) DeleteTemplate(ctx context.Context, id uint, actor *Actor) error {
	template, err := f.templateRepo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if template == nil {
		return NewBusinessError("TEMPLATE_NOT_FOUND", "Template not found", ErrTemplateNotFound)
	}

	return repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.templateRepo.SoftDelete(txCtx, id); err != nil {
			return err
		}
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationTemplateDeleted,
			fmt.Sprintf("template %q deleted", template.Name))
	})
}

// CreateBookmaker creates a profile from a template, copying the brand
// name and the employee percentage at creation time.
func (f *DirectoryFlowImpl) CreateBookmaker(ctx context.Context, req *dto.CreateBookmakerRequest, actor *Actor) (*models.Bookmaker, error) {
	template, err := f.templateRepo.ByID(ctx, req.TemplateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, NewBusinessError("TEMPLATE_NOT_FOUND", "Template not found", ErrTemplateNotFound)
	}

	bookmaker := &models.Bookmaker{
		Name:             req.Login,
		DisplayName:      template.Name,
		CountryID:        template.CountryID,
		TemplateID:       &template.ID,
		SalaryPercentage: template.EmployeePercentage,
		IsActive:         true,
	}

	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.bookmakerRepo.Save(txCtx, bookmaker); err != nil {
			return err
		}
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationBookmakerCreated,
			fmt.Sprintf("bookmaker %s (%s)", bookmaker.Name, bookmaker.DisplayName))
	})
	if err != nil {
		return nil, err
	}
	return bookmaker, nil
}

// UpdateBookmaker applies partial updates. Deactivation stamps the
// profile so the passive country balance drops it while its own figures
// stay intact.
func (f *DirectoryFlowImpl) UpdateBookmaker(ctx context.Context, id uint, req *dto.UpdateBookmakerRequest, actor *Actor) error {
	bookmaker, err := f.bookmakerRepo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if bookmaker == nil {
		return NewBusinessError("BOOKMAKER_NOT_FOUND", "Bookmaker not found", ErrBookmakerNotFound)
	}

	fields := map[string]any{}
	if req.Login != nil {
		fields["name"] = *req.Login
	}
	if req.SalaryPercentage != nil {
		fields["salary_percentage"] = *req.SalaryPercentage
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
		if *req.IsActive {
			fields["deactivated_at"] = nil
		} else {
			fields["deactivated_at"] = utils.UTCNow()
		}
	}
	if len(fields) == 0 {
		return nil
	}

	return repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.bookmakerRepo.UpdateFields(txCtx, id, fields); err != nil {
			return err
		}
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationBookmakerUpdated,
			fmt.Sprintf("bookmaker %d updated", id))
	})
}

// DeleteBookmaker soft-deletes a profile
func (f *DirectoryFlowImpl) DeleteBookmaker(ctx context.Context, id uint, actor *Actor) error {
	bookmaker, err := f.bookmakerRepo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if bookmaker == nil {
		return NewBusinessError("BOOKMAKER_NOT_FOUND", "Bookmaker not found", ErrBookmakerNotFound)
	}

	return repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.bookmakerRepo.SoftDelete(txCtx, id); err != nil {
			return err
		}
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationBookmakerDeleted,
			fmt.Sprintf("bookmaker %s (%s) deleted", bookmaker.Name, bookmaker.DisplayName))
	})
}

// CreateWallet registers a wallet. Country-scoped wallets need a live
// country; general-pool wallets carry no country reference.
func (f *DirectoryFlowImpl) CreateWallet(ctx context.Context, req *dto.CreateWalletRequest, actor *Actor) (*models.Wallet, error) {
	if req.Category == models.WalletCategoryCountry {
		if req.CountryID == nil {
			return nil, NewBusinessError("CREATE_WALLET_VALIDATION_FAILED", "Country wallet needs a country", ErrCountryNotFound)
		}
		country, err := f.countryRepo.ByID(ctx, *req.CountryID)
		if err != nil {
			return nil, err
		}
		if country == nil {
			return nil, NewBusinessError("COUNTRY_NOT_FOUND", "Country not found", ErrCountryNotFound)
		}
	}

	wallet := &models.Wallet{
		Name:     req.Name,
		Category: req.Category,
		Deposit:  req.Deposit,
	}
	if req.Category == models.WalletCategoryCountry {
		wallet.CountryID = req.CountryID
	}

	err := repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.walletRepo.Save(txCtx, wallet); err != nil {
			return err
		}
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationWalletCreated,
			fmt.Sprintf("wallet %q (%s)", wallet.Name, wallet.Category))
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

// AdjustWallet shifts the wallet's manual adjustment delta
func (f *DirectoryFlowImpl) AdjustWallet(ctx context.Context, id uint, req *dto.AdjustWalletRequest, actor *Actor) error {
	wallet, err := f.walletRepo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if wallet == nil {
		return NewBusinessError("WALLET_NOT_FOUND", "Wallet not found", ErrWalletNotFound)
	}

	return repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		fields := map[string]any{"adjustment": wallet.Adjustment + req.Delta}
		if err := f.walletRepo.UpdateFields(txCtx, id, fields); err != nil {
			return err
		}
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationWalletAdjusted,
			fmt.Sprintf("wallet %q adjusted by %.2f", wallet.Name, req.Delta))
	})
}

// DeleteWallet soft-deletes a wallet
func (f *DirectoryFlowImpl) DeleteWallet(ctx context.Context, id uint, actor *Actor) error {
	wallet, err := f.walletRepo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if wallet == nil {
		return NewBusinessError("WALLET_NOT_FOUND", "Wallet not found", ErrWalletNotFound)
	}

	return repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.walletRepo.SoftDelete(txCtx, id); err != nil {
			return err
		}
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationWalletDeleted,
			fmt.Sprintf("wallet %q deleted", wallet.Name))
	})
}

// CreateSource registers a traffic source
func (f *DirectoryFlowImpl) CreateSource(ctx context.Context, req *dto.CreateSourceRequest, actor *Actor) (*dto.SourceDTO, error) {
	name := utils.Capitalize(req.Name)

	existing, err := f.sourceRepo.ByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewBusinessError("SOURCE_ALREADY_EXISTS", "Source already exists", ErrSourceAlreadyExists)
	}

	source := &models.Source{Name: name}
	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.sourceRepo.Save(txCtx, source); err != nil {
			return err
		}
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationSourceCreated,
			fmt.Sprintf("source %q created", name))
	})
	if err != nil {
		return nil, err
	}

	return &dto.SourceDTO{ID: source.ID, Name: source.Name}, nil
}

// ListSources lists live sources
func (f *DirectoryFlowImpl) ListSources(ctx context.Context) ([]dto.SourceDTO, error) {
	sources, err := f.sourceRepo.ListLive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SourceDTO, 0, len(sources))
	for _, s := range sources {
		out = append(out, dto.SourceDTO{ID: s.ID, Name: s.Name})
	}
	return out, nil
}

// DeleteSource soft-deletes a source
func (f *DirectoryFlowImpl) DeleteSource(ctx context.Context, id uint, actor *Actor) error {
	source, err := f.sourceRepo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if source == nil {
		return NewBusinessError("SOURCE_NOT_FOUND", "Source not found", ErrSourceNotFound)
	}

	return repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.sourceRepo.SoftDelete(txCtx, id); err != nil {
			return err
		}
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationSourceDeleted,
			fmt.Sprintf("source %q deleted", source.Name))
	})
}
