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
)

// pricingRuleRepository implements repository.PricingRuleRepository.
type pricingRuleRepository struct {
	db *gorm.DB
}

// NewPricingRuleRepository is the constructor for pricingRuleRepository.
func NewPricingRuleRepository(db *gorm.DB) repository.PricingRuleRepository {
	return &pricingRuleRepository{db: db}
}

func (repo *pricingRuleRepository) FindPricingRule(ctx context.Context, vehicleType entity.VehicleType, serviceType entity.ServiceType) (*entity.PricingRule, error) {
	return repo.first(ctx, "vehicle_type = ? AND service_type = ?", string(vehicleType), string(serviceType))
}

func (repo *pricingRuleRepository) FindPricingRuleByID(ctx context.Context, id uuid.UUID) (*entity.PricingRule, error) {
	return repo.first(ctx, "id = ?", id)
}

// FindPricingRulesByVehicleTypeIn returns matching rules in insertion order.
func (repo *pricingRuleRepository) FindPricingRulesByVehicleTypeIn(ctx context.Context, vehicleTypes []entity.VehicleType) ([]*entity.PricingRule, error) {
	if len(vehicleTypes) == 0 {
		return []*entity.PricingRule{}, nil
	}

	values := make([]string, 0, len(vehicleTypes))
	for _, v := range vehicleTypes {
		values = append(values, string(v))
	}

	var ruleModels []*model.PricingRuleModel
	err := repo.db.WithContext(ctx).
		Where("vehicle_type IN ?", values).
		Order("created_at ASC, id ASC").
		Find(&ruleModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pricing rules by vehicle type")
	}

	return toPricingRulesDomain(ruleModels), nil
}

func (repo *pricingRuleRepository) ListPricingRules(ctx context.Context) ([]*entity.PricingRule, error) {
	var ruleModels []*model.PricingRuleModel
	err := repo.db.WithContext(ctx).
		Order("vehicle_type ASC, service_type ASC").
		Find(&ruleModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pricing rules")
	}

	return toPricingRulesDomain(ruleModels), nil
}

func (repo *pricingRuleRepository) CreatePricingRule(ctx context.Context, rule *entity.PricingRule) error {
	if rule.ID == uuid.Nil {
		rule.ID = newID()
	}

	ruleM := fromPricingRuleDomain(rule)
	if err := repo.db.WithContext(ctx).Create(ruleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPricingRuleConflict
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("pricing amounts must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pricing rule")
	}

	rule.CreatedAt = ruleM.CreatedAt
	rule.UpdatedAt = ruleM.UpdatedAt

	return nil
}

// UpdatePricingRule rewrites the amounts of an existing rule. The pair key is immutable.
func (repo *pricingRuleRepository) UpdatePricingRule(ctx context.Context, rule *entity.PricingRule) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PricingRuleModel{}).
		Where("id = ?", rule.ID).
		Updates(map[string]any{
			"base_amount":    rule.BaseAmount,
			"premium_amount": rule.PremiumAmount,
			"updated_at":     rule.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update pricing rule")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPricingRuleNotFound
	}

	return nil
}

func (repo *pricingRuleRepository) DeletePricingRule(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PricingRuleModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete pricing rule")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPricingRuleNotFound
	}

	return nil
}

func (repo *pricingRuleRepository) first(ctx context.Context, query string, args ...any) (*entity.PricingRule, error) {
	var ruleM model.PricingRuleModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&ruleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPricingRuleNotFound
		}

		return nil, errors.Wrap(err, "failed to find pricing rule")
	}

	return toPricingRuleDomain(&ruleM), nil
}

// --- Mapper Functions ---

func toPricingRulesDomain(data []*model.PricingRuleModel) []*entity.PricingRule {
	rules := make([]*entity.PricingRule, 0, len(data))
	for _, ruleM := range data {
		rules = append(rules, toPricingRuleDomain(ruleM))
	}

	return rules
}

func toPricingRuleDomain(data *model.PricingRuleModel) *entity.PricingRule {
	return &entity.PricingRule{
		ID:            data.ID,
		VehicleType:   entity.VehicleType(data.VehicleType),
		ServiceType:   entity.ServiceType(data.ServiceType),
		BaseAmount:    data.BaseAmount,
		PremiumAmount: data.PremiumAmount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromPricingRuleDomain(data *entity.PricingRule) *model.PricingRuleModel {
	return &model.PricingRuleModel{
		ID:            data.ID,
		VehicleType:   string(data.VehicleType),
		ServiceType:   string(data.ServiceType),
		BaseAmount:    data.BaseAmount,
		PremiumAmount: data.PremiumAmount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
