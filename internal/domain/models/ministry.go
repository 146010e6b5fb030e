// internal/domain/models/ministry.go
package models

// MinistryContact holds the public contact details shown on ministry pages.
type MinistryContact struct {
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Website       string `json:"website"`
	Address       string `json:"address"`
	AddressArabic string `json:"address_arabic"`
}

// Ministry groups services for catalog organization. Reference data:
// loaded at startup, never mutated by users.
type Ministry struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	NameArabic        string          `json:"name_arabic"`
	Description       string          `json:"description"`
	DescriptionArabic string          `json:"description_arabic"`
	Services          []string        `json:"services"` // service IDs
	Contact           MinistryContact `json:"contact"`
	Status            ServiceStatus   `json:"status"`
}
