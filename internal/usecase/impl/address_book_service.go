package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "pitstop/internal/delivery/context"
	"pitstop/internal/domain/entity"
	domainerrors "pitstop/internal/domain/errors"
	"pitstop/internal/domain/repository"
	"pitstop/internal/domain/service"
	"pitstop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type addressBookService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	locker      service.AccountLocker
	geocoding   usecase.GeocodingUsecase
	events      *workshopEvents
	logger      *slog.Logger
}

// AddressBookServiceParams holds dependencies for AddressBookService, injected by Fx.
type AddressBookServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Locker      service.AccountLocker
	Geocoding   usecase.GeocodingUsecase
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewAddressBookService is the constructor for addressBookService.
func NewAddressBookService(params AddressBookServiceParams) usecase.AddressBookUsecase {
	return &addressBookService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		locker:      params.Locker,
		geocoding:   params.Geocoding,
		events:      &workshopEvents{publisher: params.Publisher, logger: params.Logger},
		logger:      params.Logger,
	}
}

func (srv *addressBookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveInput geocodes the input outside of any lock. A coordinate is
// reverse geocoded (never fails), text is forward geocoded (may fail).
func (srv *addressBookService) resolveInput(ctx context.Context, input *usecase.AddressInput) (*entity.Address, error) {
	if coord, ok := input.Coordinate(); ok {
		return &entity.Address{
			Coordinate:       &coord,
			FormattedAddress: srv.geocoding.ResolveAddress(ctx, coord),
		}, nil
	}

	if input != nil && strings.TrimSpace(input.FormattedAddress) != "" {
		location, err := srv.geocoding.ResolveCoordinate(ctx, input.FormattedAddress)
		if err != nil {
			return nil, err
		}
		coord := location.Coordinate

		return &entity.Address{
			Coordinate:       &coord,
			FormattedAddress: location.FormattedAddress,
		}, nil
	}

	return nil, domainerrors.ErrInvalidAddressInput.WithDetails("either latitude and longitude or formatted_address is required")
}

// AddCustomerAddress appends a resolved address. The first address becomes the default.
func (srv *addressBookService) AddCustomerAddress(ctx context.Context, username string, input *usecase.AddressInput) (*entity.Address, error) {
	address, err := srv.resolveInput(ctx, input)
	if err != nil {
		return nil, err
	}

	err = withAccountLock(ctx, srv.locker, username, func() error {
		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			accountRepo := repoFactory.AccountRepo()

			customer, err := accountRepo.FindCustomerByUsername(ctx, username)
			if err != nil {
				return customerLookupError(err, username)
			}

			for _, existing := range customer.Addresses {
				if entity.SameText(existing.FormattedAddress, address.FormattedAddress) {
					return domainerrors.ErrDuplicateAddress.WithDetails(address.FormattedAddress)
				}
			}

			now := time.Now()
			address.ID = uuid.New()
			address.OwnerID = customer.ID
			address.OwnerType = entity.OwnerTypeCustomer
			address.IsDefault = len(customer.Addresses) == 0
			address.CreatedAt = now
			address.UpdatedAt = now

			customer.Addresses = append(customer.Addresses, address)
			customer.Touch(now)

			return errors.Wrap(accountRepo.SaveCustomer(ctx, customer), "failed to save customer")
		})
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Customer address added",
		slog.String("username", username),
		slog.String("address_id", address.ID.String()),
		slog.Bool("is_default", address.IsDefault),
	)

	return address, nil
}

func (srv *addressBookService) ListCustomerAddresses(ctx context.Context, username string) ([]*entity.Address, error) {
	customer, err := srv.accountRepo.FindCustomerByUsername(ctx, username)
	if err != nil {
		return nil, customerLookupError(err, username)
	}

	if customer.Addresses == nil {
		return []*entity.Address{}, nil
	}

	return customer.Addresses, nil
}

// SetDefaultAddress flags exactly one address as default in a single write.
func (srv *addressBookService) SetDefaultAddress(ctx context.Context, username string, addressID uuid.UUID) (*entity.Address, error) {
	var selected *entity.Address

	err := withAccountLock(ctx, srv.locker, username, func() error {
		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			accountRepo := repoFactory.AccountRepo()

			customer, err := accountRepo.FindCustomerByUsername(ctx, username)
			if err != nil {
				return customerLookupError(err, username)
			}

			if len(customer.Addresses) == 0 {
				return domainerrors.ErrNoAddresses
			}

			for _, address := range customer.Addresses {
				if address.ID == addressID {
					selected = address
				}
			}
			if selected == nil {
				return domainerrors.ErrAddressNotFound.WithDetails("address id: " + addressID.String())
			}

			now := time.Now()
			for _, address := range customer.Addresses {
				address.IsDefault = address == selected
			}
			selected.UpdatedAt = now
			customer.Touch(now)

			return errors.Wrap(accountRepo.SaveCustomer(ctx, customer), "failed to save customer")
		})
	})
	if err != nil {
		return nil, err
	}

	return selected, nil
}

// GetDefaultAddress returns the flagged address, or the first one when the flag is ambiguous.
func (srv *addressBookService) GetDefaultAddress(ctx context.Context, username string) (*entity.Address, error) {
	customer, err := srv.accountRepo.FindCustomerByUsername(ctx, username)
	if err != nil {
		return nil, customerLookupError(err, username)
	}

	address := entity.DefaultAddress(customer.Addresses)
	if address == nil {
		return nil, domainerrors.ErrAddressRequired
	}

	if flagged := entity.CountDefaults(customer.Addresses); flagged != 1 {
		srv.log(ctx).Warn("Customer default address is ambiguous, using first address",
			slog.String("username", username),
			slog.Int("flagged", flagged),
		)
	}

	return address, nil
}

// SetWorkshopAddress replaces the single workshop address, keeping its ID.
func (srv *addressBookService) SetWorkshopAddress(ctx context.Context, username string, input *usecase.AddressInput) (*entity.Address, error) {
	resolved, err := srv.resolveInput(ctx, input)
	if err != nil {
		return nil, err
	}

	var workshop *entity.Workshop
	err = withAccountLock(ctx, srv.locker, username, func() error {
		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			accountRepo := repoFactory.AccountRepo()

			found, err := accountRepo.FindWorkshopByUsername(ctx, username)
			if err != nil {
				return workshopLookupError(err, username)
			}
			workshop = found

			now := time.Now()
			address := workshop.Address
			if address == nil {
				address = &entity.Address{
					ID:        uuid.New(),
					OwnerID:   workshop.ID,
					OwnerType: entity.OwnerTypeWorkshop,
					CreatedAt: now,
				}
			}
			address.Coordinate = resolved.Coordinate
			address.FormattedAddress = resolved.FormattedAddress
			address.IsDefault = true
			address.UpdatedAt = now

			workshop.Address = address
			workshop.Touch(now)

			return errors.Wrap(accountRepo.SaveWorkshop(ctx, workshop), "failed to save workshop")
		})
	})
	if err != nil {
		return nil, err
	}

	srv.events.publish(ctx, service.WorkshopEventAddressChanged, workshop)

	return workshop.Address, nil
}

func (srv *addressBookService) GetWorkshopAddress(ctx context.Context, username string) (*entity.Address, error) {
	workshop, err := srv.accountRepo.FindWorkshopByUsername(ctx, username)
	if err != nil {
		return nil, workshopLookupError(err, username)
	}

	if workshop.Address == nil {
		return nil, domainerrors.ErrAddressNotFound.WithDetails("workshop address is not set")
	}

	return workshop.Address, nil
}
