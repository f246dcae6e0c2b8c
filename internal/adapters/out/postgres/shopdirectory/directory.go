// Package shopdirectory provides a read-only view of the shop catalog.
// The catalog is owned by another system; this package only resolves the
// facts dispatch needs, the operating merchant and the pickup point.
package shopdirectory

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShopDTO represents the replicated shop catalog row.
type ShopDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Latitude   float64   `gorm:"type:double precision;not null"`
	Longitude  float64   `gorm:"type:double precision;not null"`
}

// TableName specifies the database table name for shop catalog entries.
func (ShopDTO) TableName() string {
	return "shops"
}

// GormShopDirectory implements ports.ShopDirectory against the replicated
// catalog table.
type GormShopDirectory struct {
	db *gorm.DB
}

// NewGormShopDirectory creates a directory reading from the given connection.
func NewGormShopDirectory(db *gorm.DB) *GormShopDirectory {
	return &GormShopDirectory{db: db}
}

// ResolveMerchant returns the merchant operating the given shop.
func (d *GormShopDirectory) ResolveMerchant(ctx context.Context, shopID kernel.UUID) (kernel.UUID, error) {
	dto, err := d.get(ctx, shopID)
	if err != nil {
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(dto.MerchantID[:])
}

// ResolveLocation returns the shop's pickup point.
func (d *GormShopDirectory) ResolveLocation(ctx context.Context, shopID kernel.UUID) (kernel.GeoPoint, error) {
	dto, err := d.get(ctx, shopID)
	if err != nil {
		return kernel.GeoPoint{}, err
	}

	return kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
}

func (d *GormShopDirectory) get(ctx context.Context, shopID kernel.UUID) (ShopDTO, error) {
	var dto ShopDTO

	if err := shopID.Validate(); err != nil {
		return dto, err
	}

	if err := d.db.WithContext(ctx).First(&dto, "id = ?", shopID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto, errs.NewObjectNotFoundError("shop", shopID.String())
		}
		return dto, errs.NewUnavailableError("shop directory get", err)
	}

	return dto, nil
}
