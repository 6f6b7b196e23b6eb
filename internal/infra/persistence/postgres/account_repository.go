package postgres

import (
	"context"

	"pitstop/internal/domain/entity"
	domainerrors "pitstop/internal/domain/errors"
	"pitstop/internal/domain/repository"
	"pitstop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements repository.AccountRepository.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (repo *accountRepository) FindCustomerByUsername(ctx context.Context, username string) (*entity.Customer, error) {
	accountM, err := repo.findAccount(ctx, entity.RoleCustomer, "username = ?", username)
	if err != nil {
		return nil, err
	}

	addresses, err := repo.loadAddresses(ctx, entity.OwnerTypeCustomer, accountM.ID)
	if err != nil {
		return nil, err
	}

	return &entity.Customer{
		Account:   toAccountDomain(accountM),
		Addresses: toAddressesDomain(addresses[accountM.ID]),
	}, nil
}

func (repo *accountRepository) FindWorkshopByUsername(ctx context.Context, username string) (*entity.Workshop, error) {
	return repo.findWorkshop(ctx, "username = ?", username)
}

func (repo *accountRepository) FindWorkshopByID(ctx context.Context, id uuid.UUID) (*entity.Workshop, error) {
	return repo.findWorkshop(ctx, "id = ?", id)
}

// FindAllWorkshops loads every workshop with two queries for accounts and one
// for addresses, independent of the population size.
func (repo *accountRepository) FindAllWorkshops(ctx context.Context) ([]*entity.Workshop, error) {
	var accountModels []*model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("Workshop").
		Where("role = ?", string(entity.RoleWorkshop)).
		Order("created_at ASC, id ASC").
		Find(&accountModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list workshops")
	}

	if len(accountModels) == 0 {
		return []*entity.Workshop{}, nil
	}

	ids := make([]uuid.UUID, 0, len(accountModels))
	for _, accountM := range accountModels {
		ids = append(ids, accountM.ID)
	}

	addresses, err := repo.loadAddresses(ctx, entity.OwnerTypeWorkshop, ids...)
	if err != nil {
		return nil, err
	}

	workshops := make([]*entity.Workshop, 0, len(accountModels))
	for _, accountM := range accountModels {
		workshops = append(workshops, toWorkshopDomain(accountM, addresses[accountM.ID]))
	}

	return workshops, nil
}

// SaveCustomer upserts the account row and replaces the stored address list.
func (repo *accountRepository) SaveCustomer(ctx context.Context, customer *entity.Customer) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveAccount(tx, &customer.Account); err != nil {
			return err
		}

		return saveAddresses(tx, customer.ID, entity.OwnerTypeCustomer, customer.Addresses)
	})
}

// SaveWorkshop upserts the account row, the workshop profile and its address.
func (repo *accountRepository) SaveWorkshop(ctx context.Context, workshop *entity.Workshop) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveAccount(tx, &workshop.Account); err != nil {
			return err
		}

		profileM := fromWorkshopProfileDomain(workshop)
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "vehicle_type", "services", "is_premium", "updated_at"}),
		}).Create(profileM).Error
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to save workshop profile")
		}

		var addresses []*entity.Address
		if workshop.Address != nil {
			addresses = []*entity.Address{workshop.Address}
		}

		return saveAddresses(tx, workshop.ID, entity.OwnerTypeWorkshop, addresses)
	})
}

func (repo *accountRepository) findWorkshop(ctx context.Context, query string, arg any) (*entity.Workshop, error) {
	accountM, err := repo.findAccount(ctx, entity.RoleWorkshop, query, arg)
	if err != nil {
		return nil, err
	}

	addresses, err := repo.loadAddresses(ctx, entity.OwnerTypeWorkshop, accountM.ID)
	if err != nil {
		return nil, err
	}

	return toWorkshopDomain(accountM, addresses[accountM.ID]), nil
}

func (repo *accountRepository) findAccount(ctx context.Context, role entity.Role, query string, arg any) (*model.AccountModel, error) {
	db := repo.db.WithContext(ctx)
	if role == entity.RoleWorkshop {
		db = db.Preload("Workshop")
	}

	var accountM model.AccountModel
	err := db.Where(query, arg).Where("role = ?", string(role)).First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return &accountM, nil
}

// loadAddresses returns the addresses of the owners keyed by owner, each list in stored order.
func (repo *accountRepository) loadAddresses(ctx context.Context, ownerType entity.OwnerType, ownerIDs ...uuid.UUID) (map[uuid.UUID][]*model.AddressModel, error) {
	var addressModels []*model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id IN ?", string(ownerType), ownerIDs).
		Order("position ASC, created_at ASC").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load addresses")
	}

	byOwner := make(map[uuid.UUID][]*model.AddressModel, len(ownerIDs))
	for _, addressM := range addressModels {
		byOwner[addressM.OwnerID] = append(byOwner[addressM.OwnerID], addressM)
	}

	return byOwner, nil
}

func saveAccount(tx *gorm.DB, account *entity.Account) error {
	if account.ID == uuid.Nil {
		account.ID = newID()
	}

	accountM := fromAccountDomain(account)
	err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "name", "email", "role", "updated_at"}),
	}).Create(accountM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("username already in use")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// saveAddresses upserts the given list, recording each entry's position, and
// removes stored addresses of the owner that are no longer in it.
func saveAddresses(tx *gorm.DB, ownerID uuid.UUID, ownerType entity.OwnerType, addresses []*entity.Address) error {
	keep := make([]uuid.UUID, 0, len(addresses))
	addressModels := make([]*model.AddressModel, 0, len(addresses))
	for i, address := range addresses {
		if address.ID == uuid.Nil {
			address.ID = newID()
		}
		address.OwnerID = ownerID
		address.OwnerType = ownerType

		addressM := fromAddressDomain(address)
		addressM.Position = i
		addressModels = append(addressModels, addressM)
		keep = append(keep, address.ID)
	}

	prune := tx.Where("owner_id = ? AND owner_type = ?", ownerID, string(ownerType))
	if len(keep) > 0 {
		prune = prune.Where("id NOT IN ?", keep)
	}
	if err := prune.Delete(&model.AddressModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to prune addresses")
	}

	if len(addressModels) == 0 {
		return nil
	}

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"formatted_address", "latitude", "longitude", "is_default", "position", "updated_at",
		}),
	}).Create(&addressModels).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save addresses")
	}

	for i, addressM := range addressModels {
		addresses[i].CreatedAt = addressM.CreatedAt
		addresses[i].UpdatedAt = addressM.UpdatedAt
	}

	return nil
}

func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}

// --- Mapper Functions ---

func toAccountDomain(data *model.AccountModel) entity.Account {
	return entity.Account{
		ID:        data.ID,
		Username:  data.Username,
		Name:      data.Name,
		Email:     data.Email,
		Role:      entity.Role(data.Role),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:        data.ID,
		Username:  data.Username,
		Name:      data.Name,
		Email:     data.Email,
		Role:      string(data.Role),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toWorkshopDomain builds a workshop; a missing profile row reads as a closed
// workshop with no capabilities.
func toWorkshopDomain(data *model.AccountModel, addresses []*model.AddressModel) *entity.Workshop {
	workshop := &entity.Workshop{
		Account:  toAccountDomain(data),
		Status:   entity.WorkshopStatusClosed,
		Services: entity.ServiceTypes{},
	}

	if profile := data.Workshop; profile != nil {
		workshop.Status = entity.WorkshopStatus(profile.Status)
		workshop.Services = entity.ServiceTypesFromStrings(profile.Services)
		workshop.IsPremium = profile.IsPremium
		if profile.VehicleType != nil {
			if vehicleType, ok := entity.ParseVehicleType(*profile.VehicleType); ok {
				workshop.VehicleType = &vehicleType
			}
		}
	}

	workshop.Address = entity.DefaultAddress(toAddressesDomain(addresses))

	return workshop
}

func fromWorkshopProfileDomain(data *entity.Workshop) *model.WorkshopProfileModel {
	profileM := &model.WorkshopProfileModel{
		AccountID: data.ID,
		Status:    string(data.Status),
		Services:  data.Services.ToStrings(),
		IsPremium: data.IsPremium,
		UpdatedAt: data.UpdatedAt,
	}
	if profileM.Status == "" {
		profileM.Status = string(entity.WorkshopStatusClosed)
	}
	if data.VehicleType != nil {
		vehicleType := string(*data.VehicleType)
		profileM.VehicleType = &vehicleType
	}

	return profileM
}

func toAddressesDomain(data []*model.AddressModel) []*entity.Address {
	addresses := make([]*entity.Address, 0, len(data))
	for _, addressM := range data {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses
}

func toAddressDomain(data *model.AddressModel) *entity.Address {
	address := &entity.Address{
		ID:               data.ID,
		OwnerID:          data.OwnerID,
		OwnerType:        entity.OwnerType(data.OwnerType),
		FormattedAddress: data.FormattedAddress,
		IsDefault:        data.IsDefault,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	if data.Latitude != nil && data.Longitude != nil {
		address.Coordinate = &entity.Coordinate{Latitude: *data.Latitude, Longitude: *data.Longitude}
	}

	return address
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	addressM := &model.AddressModel{
		ID:               data.ID,
		OwnerID:          data.OwnerID,
		OwnerType:        string(data.OwnerType),
		FormattedAddress: data.FormattedAddress,
		IsDefault:        data.IsDefault,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	if data.Coordinate != nil {
		lat, lon := data.Coordinate.Latitude, data.Coordinate.Longitude
		addressM.Latitude = &lat
		addressM.Longitude = &lon
	}

	return addressM
}
