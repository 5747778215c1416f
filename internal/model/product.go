package model

import "github.com/shopspring/decimal"

// Product — товар каталога. Цена хранится как decimal(10,2), может отсутствовать.
type Product struct {
	ProductID int64 `gorm:"primaryKey;autoIncrement" json:"product_id"`

	ProductName     string              `gorm:"not null" json:"product_name"`
	SupplierID      *int64              `gorm:"index" json:"supplier_id,omitempty"`
	CategoryID      *int64              `gorm:"index" json:"category_id,omitempty"`
	QuantityPerUnit string              `json:"quantity_per_unit"`
	UnitPrice       decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"unit_price"`
	UnitsInStock    *int16              `json:"units_in_stock,omitempty"`
	UnitsOnOrder    *int16              `json:"units_on_order,omitempty"`
	ReorderLevel    *int16              `json:"reorder_level,omitempty"`
	Discontinued    bool                `gorm:"not null;default:false" json:"discontinued"`
}

// Category — категория товаров с независимо обновляемой картинкой.
type Category struct {
	CategoryID int64 `gorm:"primaryKey;autoIncrement" json:"category_id"`

	CategoryName string `gorm:"not null" json:"category_name"`
	Description  string `json:"description"`

	// Picture меняется только через саб-ресурс /picture.
	Picture []byte `json:"-"`
}
