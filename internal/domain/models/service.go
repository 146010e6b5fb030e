// internal/domain/models/service.go
package models

// ServiceStatus is the availability state of a catalog service.
type ServiceStatus string

const (
	ServiceOnline      ServiceStatus = "online"
	ServiceOffline     ServiceStatus = "offline"
	ServiceMaintenance ServiceStatus = "maintenance"
	ServiceLimited     ServiceStatus = "limited"
)

// Acceptable reports whether citizens may submit applications for a
// service in this state. Offline and maintenance services render a
// disabled apply control instead.
func (s ServiceStatus) Acceptable() bool {
	return s == ServiceOnline || s == ServiceLimited
}

// ServiceCategory groups services on the catalog pages.
type ServiceCategory string

const (
	CategoryCivilRegistry       ServiceCategory = "civil-registry"
	CategoryVehicleRegistration ServiceCategory = "vehicle-registration"
	CategoryTaxation            ServiceCategory = "taxation"
	CategoryUtilities           ServiceCategory = "utilities"
	CategorySocialSecurity      ServiceCategory = "social-security"
	CategoryHealth              ServiceCategory = "health"
	CategoryEducation           ServiceCategory = "education"
	CategoryJustice             ServiceCategory = "justice"
	CategoryInterior            ServiceCategory = "interior"
	CategoryLabor               ServiceCategory = "labor"
)

// ServiceCategories is the canonical ordering used by filter dropdowns.
var ServiceCategories = []ServiceCategory{
	CategoryCivilRegistry,
	CategoryVehicleRegistration,
	CategoryTaxation,
	CategoryUtilities,
	CategorySocialSecurity,
	CategoryHealth,
	CategoryEducation,
	CategoryJustice,
	CategoryInterior,
	CategoryLabor,
}

// Service is a read-only catalog entry describing one government
// procedure. Fees are in USD.
type Service struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	NameArabic        string          `json:"name_arabic"`
	Description       string          `json:"description"`
	DescriptionArabic string          `json:"description_arabic"`
	Category          ServiceCategory `json:"category"`
	Status            ServiceStatus   `json:"status"`
	EstimatedTime     string          `json:"estimated_time"`
	RequiredDocuments []string        `json:"required_documents"`
	Fees              float64         `json:"fees"`
	MinistryID        string          `json:"ministry_id"`
	Ministry          string          `json:"ministry"`
	MinistryArabic    string          `json:"ministry_arabic"`
}
