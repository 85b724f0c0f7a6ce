package directoryrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormEntityDirectory implements ports.EntityDirectory. Every lookup is
// scoped by tenant, so rows of other tenants read as absent.
type GormEntityDirectory struct {
	db *gorm.DB
}

func NewGormEntityDirectory(db *gorm.DB) *GormEntityDirectory {
	return &GormEntityDirectory{db: db}
}

func (d *GormEntityDirectory) ProductExists(ctx context.Context, tenantID, productID kernel.UUID) (bool, error) {
	return d.exists(ctx, &ProductDTO{}, tenantID, productID)
}

func (d *GormEntityDirectory) UserExists(ctx context.Context, tenantID, userID kernel.UUID) (bool, error) {
	return d.exists(ctx, &UserDTO{}, tenantID, userID)
}

func (d *GormEntityDirectory) CompanyExists(ctx context.Context, tenantID, companyID kernel.UUID) (bool, error) {
	if err := errors.Join(tenantID.Validate(), companyID.Validate()); err != nil {
		return false, err
	}
	if !tenantID.IsEqual(companyID) {
		return false, nil
	}
	return d.count(d.db.WithContext(ctx).Model(&CompanyDTO{}).Where("id = ?", companyID.Bytes()))
}

func (d *GormEntityDirectory) exists(ctx context.Context, model any, tenantID, id kernel.UUID) (bool, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return false, err
	}
	return d.count(d.db.WithContext(ctx).Model(model).Where("id = ? AND company_id = ?", id.Bytes(), tenantID.Bytes()))
}

func (d *GormEntityDirectory) count(query *gorm.DB) (bool, error) {
	var count int64
	if err := query.Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddCompany, AddUser and AddProduct seed the directory. Registration flows
// live outside the core; these are used by the CLI and integration tests.
func (d *GormEntityDirectory) AddCompany(ctx context.Context, dto CompanyDTO) error {
	return d.db.WithContext(ctx).Create(&dto).Error
}

func (d *GormEntityDirectory) AddUser(ctx context.Context, dto UserDTO) error {
	return d.db.WithContext(ctx).Create(&dto).Error
}

func (d *GormEntityDirectory) AddProduct(ctx context.Context, dto ProductDTO) error {
	return d.db.WithContext(ctx).Create(&dto).Error
}
