package model

import "time"

// Employee — сотрудник, автор статей блога.
type Employee struct {
	EmployeeID int64 `gorm:"primaryKey;autoIncrement" json:"employee_id"`

	LastName        string     `gorm:"not null" json:"last_name"`
	FirstName       string     `gorm:"not null" json:"first_name"`
	Title           string     `json:"title"`
	TitleOfCourtesy string     `json:"title_of_courtesy"`
	BirthDate       *time.Time `json:"birth_date,omitempty"`
	HireDate        *time.Time `json:"hire_date,omitempty"`
	Address         string     `json:"address"`
	City            string     `json:"city"`
	Region          string     `json:"region"`
	PostalCode      string     `json:"postal_code"`
	Country         string     `json:"country"`
	HomePhone       string     `json:"home_phone"`
	Extension       string     `json:"extension"`
	Notes           string     `json:"notes"`
	ReportsTo       *int64     `json:"reports_to,omitempty"`

	// Photo меняется только через саб-ресурс /photo, в JSON не отдаётся.
	Photo []byte `json:"-"`
}
