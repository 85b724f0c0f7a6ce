// Package directoryrepo stores the tenant directory the logistics core
// references: companies, their users and their products.
package directoryrepo

import (
	"time"

	"github.com/google/uuid"
)

// CompanyDTO is a tenant.
type CompanyDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (CompanyDTO) TableName() string {
	return "companies"
}

// UserDTO is a member of a company. Role holds the upper-case role name.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role      string    `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

// ProductDTO is an item a company ships.
type ProductDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	SKU       string    `gorm:"column:sku;type:varchar(64)"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}
