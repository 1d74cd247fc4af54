// Package defaults holds the demo accounts and starter content shared by the
// server seed step and the client fallback store
package defaults

import "github.com/assetmagnets/platform/internal/models"

// DemoAccount is a login created for demonstrations
type DemoAccount struct {
	Email    string
	Password string
	Name     string
	Role     models.Role
}

// DemoAccounts returns the demo logins
func DemoAccounts() []DemoAccount {
	return []DemoAccount{
		{Email: "admin@assetmagnets.com", Password: "admin123", Name: "Admin User", Role: models.RoleAdmin},
		{Email: "student@assetmagnets.com", Password: "student123", Name: "Student User", Role: models.RoleStudent},
		{Email: "instructor@assetmagnets.com", Password: "instructor123", Name: "Instructor User", Role: models.RoleInstructor},
	}
}

// Services returns the starter services
func Services() []*models.Service {
	return []*models.Service{
		{
			Title:       "Asset Management",
			Description: "End-to-end management of physical and financial assets across their lifecycle.",
			Icon:        "briefcase",
			Features:    models.StringList{"Portfolio tracking", "Lifecycle planning", "Performance reporting"},
			Order:       1,
		},
		{
			Title:       "Asset Valuation",
			Description: "Independent valuations that follow international standards.",
			Icon:        "chart",
			Features:    models.StringList{"Fair value assessment", "Impairment testing", "Audit support"},
			Order:       2,
		},
		{
			Title:       "Professional Training",
			Description: "Accredited courses for asset management professionals.",
			Icon:        "book",
			Features:    models.StringList{"Certified instructors", "Online and on-site", "Corporate programs"},
			Order:       3,
		},
		{
			Title:       "Consulting",
			Description: "Strategy and governance advice for asset-intensive organisations.",
			Icon:        "users",
			Features:    models.StringList{"Maturity assessments", "ISO 55000 readiness", "Process design"},
			Order:       4,
		},
	}
}

// ContactInfo returns the starter contact details
func ContactInfo() []*models.ContactInfo {
	return []*models.ContactInfo{
		{Type: models.ContactInfoPhone, Label: "Phone", Value: "+971 4 000 0000", Icon: "phone", Order: 1},
		{Type: models.ContactInfoEmail, Label: "Email", Value: "info@assetmagnets.com", Icon: "mail", Order: 2},
		{Type: models.ContactInfoAddress, Label: "Head office", Value: "Business Bay, Dubai, UAE", Icon: "map-pin", Order: 3},
		{Type: models.ContactInfoHours, Label: "Working hours", Value: "Sun - Thu, 9:00 - 18:00", Icon: "clock", Order: 4},
	}
}

// FAQs returns the starter questions
func FAQs() []*models.FAQ {
	return []*models.FAQ{
		{
			Question: "What services does Asset Magnets offer?",
			Answer:   "We provide asset management, valuation, consulting and professional training.",
			Category: "general",
			Order:    1,
		},
		{
			Question: "Are your courses accredited?",
			Answer:   "Yes, our training programs are delivered by certified instructors and lead to recognised certificates.",
			Category: "training",
			Order:    2,
		},
		{
			Question: "How do I apply for a job?",
			Answer:   "Create an applicant account and apply from the careers page.",
			Category: "careers",
			Order:    3,
		},
	}
}

// Offices returns the starter office locations
func Offices() []*models.GlobalOffice {
	return []*models.GlobalOffice{
		{
			City:           "Dubai",
			Country:        "United Arab Emirates",
			Address:        "Business Bay, Dubai",
			Phone:          "+971 4 000 0000",
			Email:          "dubai@assetmagnets.com",
			IsHeadquarters: true,
		},
		{
			City:    "London",
			Country: "United Kingdom",
			Address: "Canary Wharf, London",
			Phone:   "+44 20 0000 0000",
			Email:   "london@assetmagnets.com",
		},
		{
			City:    "Riyadh",
			Country: "Saudi Arabia",
			Address: "King Fahd Road, Riyadh",
			Phone:   "+966 11 000 0000",
			Email:   "riyadh@assetmagnets.com",
		},
	}
}
