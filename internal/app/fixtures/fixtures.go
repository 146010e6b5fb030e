// internal/app/fixtures/fixtures.go
//
// Seed data for the portal. Everything here is mock content: the
// catalog, the ministries, the demo citizen, and the welcome
// notifications are loaded into the in-memory store at startup and
// sign-in. No real registry is consulted.
package fixtures

import (
	"time"

	"github.com/google/uuid"

	"github.com/hzein/bawaba/internal/domain/models"
)

// DemoUser is the citizen signed in by the demo login path and by any
// sign-in that does not match a registered account.
func DemoUser() models.User {
	return models.User{
		ID:              "user-demo-001",
		NationalID:      "12345678901",
		FirstName:       "Ahmad",
		LastName:        "Khalil",
		FirstNameArabic: "أحمد",
		LastNameArabic:  "خليل",
		Email:           "ahmad.khalil@email.com",
		Phone:           "+961 71 123 456",
		DateOfBirth:     time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
		Gender:          "male",
		Nationality:     "Lebanese",
		Address: models.Address{
			Street:         "Hamra Street",
			StreetArabic:   "شارع الحمرا",
			Building:       "Azar Building, 3rd floor",
			City:           "Beirut",
			CityArabic:     "بيروت",
			District:       "Beirut",
			DistrictArabic: "بيروت",
			PostalCode:     "1103",
		},
		IsVerified:       true,
		RegistrationDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

// Ministries returns the ministry directory.
func Ministries() []models.Ministry {
	return []models.Ministry{
		{
			ID:                "min-interior",
			Name:              "Ministry of Interior",
			NameArabic:        "وزارة الداخلية والبلديات",
			Description:       "Civil status, identity documents, and municipal affairs.",
			DescriptionArabic: "الأحوال الشخصية ووثائق الهوية والشؤون البلدية.",
			Services:          []string{"svc-passport", "svc-civil-extract", "svc-id-card"},
			Contact: models.MinistryContact{
				Phone:         "+961 1 754 500",
				Email:         "info@interior.gov.lb",
				Website:       "https://www.interior.gov.lb",
				Address:       "Sanayeh, Beirut",
				AddressArabic: "الصنائع، بيروت",
			},
			Status: models.ServiceOnline,
		},
		{
			ID:                "min-finance",
			Name:              "Ministry of Finance",
			NameArabic:        "وزارة المالية",
			Description:       "Taxation, customs, and public revenue.",
			DescriptionArabic: "الضرائب والجمارك والإيرادات العامة.",
			Services:          []string{"svc-income-tax", "svc-property-tax"},
			Contact: models.MinistryContact{
				Phone:         "+961 1 956 000",
				Email:         "info@finance.gov.lb",
				Website:       "https://www.finance.gov.lb",
				Address:       "Riad El Solh, Beirut",
				AddressArabic: "رياض الصلح، بيروت",
			},
			Status: models.ServiceOnline,
		},
		{
			ID:                "min-interior-traffic",
			Name:              "Traffic and Vehicles Authority",
			NameArabic:        "هيئة إدارة السير والآليات والمركبات",
			Description:       "Vehicle registration, driving licences, and traffic records.",
			DescriptionArabic: "تسجيل المركبات ورخص القيادة وسجلات السير.",
			Services:          []string{"svc-vehicle-reg", "svc-driving-licence"},
			Contact: models.MinistryContact{
				Phone:         "+961 1 511 300",
				Email:         "info@tva.gov.lb",
				Website:       "https://www.tva.gov.lb",
				Address:       "Dekwaneh, Mount Lebanon",
				AddressArabic: "الدكوانة، جبل لبنان",
			},
			Status: models.ServiceLimited,
		},
		{
			ID:                "min-health",
			Name:              "Ministry of Public Health",
			NameArabic:        "وزارة الصحة العامة",
			Description:       "Health cards, vaccination records, and medical licensing.",
			DescriptionArabic: "البطاقات الصحية وسجلات التلقيح والتراخيص الطبية.",
			Services:          []string{"svc-health-card"},
			Contact: models.MinistryContact{
				Phone:         "+961 1 615 900",
				Email:         "info@moph.gov.lb",
				Website:       "https://www.moph.gov.lb",
				Address:       "Bir Hassan, Beirut",
				AddressArabic: "بئر حسن، بيروت",
			},
			Status: models.ServiceOnline,
		},
		{
			ID:                "min-labor",
			Name:              "Ministry of Labor",
			NameArabic:        "وزارة العمل",
			Description:       "Work permits and social security registration.",
			DescriptionArabic: "إجازات العمل وتسجيل الضمان الاجتماعي.",
			Services:          []string{"svc-work-permit", "svc-nssf"},
			Contact: models.MinistryContact{
				Phone:         "+961 1 540 114",
				Email:         "info@labor.gov.lb",
				Website:       "https://www.labor.gov.lb",
				Address:       "Mseitbeh, Beirut",
				AddressArabic: "المصيطبة، بيروت",
			},
			Status: models.ServiceMaintenance,
		},
	}
}

// Services returns the service catalog. Fees are in USD.
func Services() []models.Service {
	return []models.Service{
		{
			ID:                "svc-passport",
			Name:              "Passport Renewal",
			NameArabic:        "تجديد جواز السفر",
			Description:       "Renew a Lebanese passport for five or ten years.",
			DescriptionArabic: "تجديد جواز سفر لبناني لمدة خمس أو عشر سنوات.",
			Category:          models.CategoryInterior,
			Status:            models.ServiceOnline,
			EstimatedTime:     "5-7 business days",
			RequiredDocuments: []string{"Current passport", "National ID", "Two recent photos"},
			Fees:              60,
			MinistryID:        "min-interior",
			Ministry:          "Ministry of Interior",
			MinistryArabic:    "وزارة الداخلية والبلديات",
		},
		{
			ID:                "svc-civil-extract",
			Name:              "Individual Civil Extract",
			NameArabic:        "إخراج قيد إفرادي",
			Description:       "Official extract of an individual's civil registry record.",
			DescriptionArabic: "مستخرج رسمي من سجل الأحوال الشخصية للفرد.",
			Category:          models.CategoryCivilRegistry,
			Status:            models.ServiceOnline,
			EstimatedTime:     "1-2 business days",
			RequiredDocuments: []string{"National ID"},
			Fees:              2,
			MinistryID:        "min-interior",
			Ministry:          "Ministry of Interior",
			MinistryArabic:    "وزارة الداخلية والبلديات",
		},
		{
			ID:                "svc-id-card",
			Name:              "National ID Card Replacement",
			NameArabic:        "بدل عن ضائع لبطاقة الهوية",
			Description:       "Replace a lost or damaged national identity card.",
			DescriptionArabic: "استبدال بطاقة هوية وطنية مفقودة أو متضررة.",
			Category:          models.CategoryCivilRegistry,
			Status:            models.ServiceLimited,
			EstimatedTime:     "10-15 business days",
			RequiredDocuments: []string{"Police report", "Civil extract", "Two recent photos"},
			Fees:              15,
			MinistryID:        "min-interior",
			Ministry:          "Ministry of Interior",
			MinistryArabic:    "وزارة الداخلية والبلديات",
		},
		{
			ID:                "svc-income-tax",
			Name:              "Income Tax Declaration",
			NameArabic:        "التصريح عن ضريبة الدخل",
			Description:       "File the annual income tax declaration.",
			DescriptionArabic: "تقديم التصريح السنوي عن ضريبة الدخل.",
			Category:          models.CategoryTaxation,
			Status:            models.ServiceOnline,
			EstimatedTime:     "Immediate",
			RequiredDocuments: []string{"Taxpayer number", "Income statements"},
			Fees:              0,
			MinistryID:        "min-finance",
			Ministry:          "Ministry of Finance",
			MinistryArabic:    "وزارة المالية",
		},
		{
			ID:                "svc-property-tax",
			Name:              "Built Property Tax Payment",
			NameArabic:        "دفع ضريبة الأملاك المبنية",
			Description:       "Pay the annual built property tax.",
			DescriptionArabic: "دفع الضريبة السنوية على الأملاك المبنية.",
			Category:          models.CategoryTaxation,
			Status:            models.ServiceOffline,
			EstimatedTime:     "Immediate",
			RequiredDocuments: []string{"Property deed number"},
			Fees:              0,
			MinistryID:        "min-finance",
			Ministry:          "Ministry of Finance",
			MinistryArabic:    "وزارة المالية",
		},
		{
			ID:                "svc-vehicle-reg",
			Name:              "Vehicle Registration Renewal",
			NameArabic:        "تجديد تسجيل المركبة",
			Description:       "Renew the annual vehicle registration (mecanique).",
			DescriptionArabic: "تجديد التسجيل السنوي للمركبة (الميكانيك).",
			Category:          models.CategoryVehicleRegistration,
			Status:            models.ServiceLimited,
			EstimatedTime:     "Same day",
			RequiredDocuments: []string{"Vehicle registration card", "Insurance certificate", "Inspection report"},
			Fees:              120,
			MinistryID:        "min-interior-traffic",
			Ministry:          "Traffic and Vehicles Authority",
			MinistryArabic:    "هيئة إدارة السير والآليات والمركبات",
		},
		{
			ID:                "svc-driving-licence",
			Name:              "Driving Licence Renewal",
			NameArabic:        "تجديد رخصة القيادة",
			Description:       "Renew an expired driving licence.",
			DescriptionArabic: "تجديد رخصة قيادة منتهية الصلاحية.",
			Category:          models.CategoryVehicleRegistration,
			Status:            models.ServiceOnline,
			EstimatedTime:     "3-5 business days",
			RequiredDocuments: []string{"Expired licence", "Medical certificate", "Two recent photos"},
			Fees:              45,
			MinistryID:        "min-interior-traffic",
			Ministry:          "Traffic and Vehicles Authority",
			MinistryArabic:    "هيئة إدارة السير والآليات والمركبات",
		},
		{
			ID:                "svc-health-card",
			Name:              "Public Health Card",
			NameArabic:        "البطاقة الصحية",
			Description:       "Issue a public health coverage card.",
			DescriptionArabic: "إصدار بطاقة التغطية الصحية العامة.",
			Category:          models.CategoryHealth,
			Status:            models.ServiceOnline,
			EstimatedTime:     "7-10 business days",
			RequiredDocuments: []string{"National ID", "Residence proof", "One recent photo"},
			Fees:              10,
			MinistryID:        "min-health",
			Ministry:          "Ministry of Public Health",
			MinistryArabic:    "وزارة الصحة العامة",
		},
		{
			ID:                "svc-work-permit",
			Name:              "Work Permit Application",
			NameArabic:        "طلب إجازة عمل",
			Description:       "Apply for or renew a work permit.",
			DescriptionArabic: "طلب إجازة عمل جديدة أو تجديدها.",
			Category:          models.CategoryLabor,
			Status:            models.ServiceMaintenance,
			EstimatedTime:     "15-20 business days",
			RequiredDocuments: []string{"Employment contract", "National ID", "Medical tests"},
			Fees:              200,
			MinistryID:        "min-labor",
			Ministry:          "Ministry of Labor",
			MinistryArabic:    "وزارة العمل",
		},
		{
			ID:                "svc-nssf",
			Name:              "Social Security Registration",
			NameArabic:        "تسجيل في الضمان الاجتماعي",
			Description:       "Register an employee with the National Social Security Fund.",
			DescriptionArabic: "تسجيل أجير في الصندوق الوطني للضمان الاجتماعي.",
			Category:          models.CategorySocialSecurity,
			Status:            models.ServiceOnline,
			EstimatedTime:     "5-7 business days",
			RequiredDocuments: []string{"Employment contract", "Civil extract", "Employer registration"},
			Fees:              0,
			MinistryID:        "min-labor",
			Ministry:          "Ministry of Labor",
			MinistryArabic:    "وزارة العمل",
		},
	}
}

// WelcomeNotifications returns the starter notifications pushed to a
// citizen right after sign-in.
func WelcomeNotifications(userID string, now time.Time) []models.Notification {
	return []models.Notification{
		{
			ID:            uuid.NewString(),
			UserID:        userID,
			Title:         "Welcome to the Portal",
			TitleArabic:   "أهلاً بك في البوابة",
			Message:       "Browse services, track applications, and manage your profile in one place.",
			MessageArabic: "تصفح الخدمات وتتبع الطلبات وأدر ملفك الشخصي في مكان واحد.",
			Type:          models.NotificationInfo,
			CreatedAt:     now.Add(-48 * time.Hour),
			ActionURL:     "/services",
		},
		{
			ID:            uuid.NewString(),
			UserID:        userID,
			Title:         "Scheduled Maintenance",
			TitleArabic:   "صيانة مجدولة",
			Message:       "Work permit services are under maintenance this week.",
			MessageArabic: "خدمات إجازات العمل قيد الصيانة هذا الأسبوع.",
			Type:          models.NotificationWarning,
			CreatedAt:     now.Add(-24 * time.Hour),
			ActionURL:     "/services",
		},
	}
}
