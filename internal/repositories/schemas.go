package repositories

import "github.com/assetmagnets/platform/internal/models"

// ServiceSchema maps models.Service onto the services table
var ServiceSchema = Schema[*models.Service]{
	Table:   "services",
	Columns: []string{"title", "description", "icon", "features", "sort_order"},
	OrderBy: "sort_order ASC, created_at ASC",
	New:     func() *models.Service { return &models.Service{} },
	Fields: func(s *models.Service) []any {
		return []any{&s.Title, &s.Description, &s.Icon, &s.Features, &s.Order}
	},
}

// CourseSchema maps models.Course onto the courses table
var CourseSchema = Schema[*models.Course]{
	Table:   "courses",
	Columns: []string{"title", "description", "category", "level", "duration", "price", "image_url", "instructor_id"},
	OrderBy: "created_at DESC",
	New:     func() *models.Course { return &models.Course{} },
	Fields: func(c *models.Course) []any {
		return []any{&c.Title, &c.Description, &c.Category, &c.Level, &c.Duration, &c.Price, &c.ImageURL, &c.InstructorID}
	},
}

// JobSchema maps models.Job onto the jobs table
var JobSchema = Schema[*models.Job]{
	Table:   "jobs",
	Columns: []string{"title", "department", "location", "employment_type", "description", "requirements", "salary", "is_active"},
	OrderBy: "created_at DESC",
	New:     func() *models.Job { return &models.Job{} },
	Fields: func(j *models.Job) []any {
		return []any{&j.Title, &j.Department, &j.Location, &j.EmploymentType, &j.Description, &j.Requirements, &j.Salary, &j.IsActive}
	},
}

// ContactInfoSchema maps models.ContactInfo onto the contact_info table
var ContactInfoSchema = Schema[*models.ContactInfo]{
	Table:   "contact_info",
	Columns: []string{"type", "label", "value", "icon", "sort_order"},
	OrderBy: "sort_order ASC, created_at ASC",
	New:     func() *models.ContactInfo { return &models.ContactInfo{} },
	Fields: func(c *models.ContactInfo) []any {
		return []any{&c.Type, &c.Label, &c.Value, &c.Icon, &c.Order}
	},
}

// FAQSchema maps models.FAQ onto the faqs table
var FAQSchema = Schema[*models.FAQ]{
	Table:   "faqs",
	Columns: []string{"question", "answer", "category", "sort_order"},
	OrderBy: "sort_order ASC, created_at ASC",
	New:     func() *models.FAQ { return &models.FAQ{} },
	Fields: func(f *models.FAQ) []any {
		return []any{&f.Question, &f.Answer, &f.Category, &f.Order}
	},
}

// GlobalOfficeSchema maps models.GlobalOffice onto the global_offices table
var GlobalOfficeSchema = Schema[*models.GlobalOffice]{
	Table:   "global_offices",
	Columns: []string{"city", "country", "address", "phone", "email", "is_headquarters"},
	OrderBy: "country ASC, city ASC",
	New:     func() *models.GlobalOffice { return &models.GlobalOffice{} },
	Fields: func(o *models.GlobalOffice) []any {
		return []any{&o.City, &o.Country, &o.Address, &o.Phone, &o.Email, &o.IsHeadquarters}
	},
}

// ContactMessageSchema maps models.ContactMessage onto the contact_messages table
var ContactMessageSchema = Schema[*models.ContactMessage]{
	Table:   "contact_messages",
	Columns: []string{"name", "email", "phone", "subject", "message", "status", "priority"},
	OrderBy: "created_at DESC",
	New:     func() *models.ContactMessage { return &models.ContactMessage{} },
	Fields: func(m *models.ContactMessage) []any {
		return []any{&m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.Status, &m.Priority}
	},
}

// UserSchema maps models.User onto the users table
var UserSchema = Schema[*models.User]{
	Table:   "users",
	Columns: []string{"email", "name", "password_hash", "role"},
	OrderBy: "created_at DESC",
	New:     func() *models.User { return &models.User{} },
	Fields: func(u *models.User) []any {
		return []any{&u.Email, &u.Name, &u.PasswordHash, &u.Role}
	},
}
