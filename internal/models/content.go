package models

// Service is an offering shown on the services page
type Service struct {
	Base
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Features    StringList `json:"features"`
	Order       int        `json:"order"`
}

// Validate implements Record
func (s *Service) Validate() error {
	if err := required("title", s.Title); err != nil {
		return err
	}
	return required("description", s.Description)
}

// GetOrder implements Ordered
func (s *Service) GetOrder() int { return s.Order }

// Course is a training course
type Course struct {
	Base
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Level       string  `json:"level"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	// InstructorID is a weak reference to a User id
	InstructorID *string `json:"instructorId"`
}

// Validate implements Record
func (c *Course) Validate() error {
	if err := required("title", c.Title); err != nil {
		return err
	}
	if c.Price < 0 {
		return &ValidationError{Field: "price", Message: "must not be negative"}
	}
	return nil
}

// Job is an open position on the careers page
type Job struct {
	Base
	Title          string     `json:"title"`
	Department     string     `json:"department"`
	Location       string     `json:"location"`
	EmploymentType string     `json:"employmentType"`
	Description    string     `json:"description"`
	Requirements   StringList `json:"requirements"`
	Salary         string     `json:"salary"`
	IsActive       bool       `json:"isActive"`
}

// Validate implements Record
func (j *Job) Validate() error {
	if err := required("title", j.Title); err != nil {
		return err
	}
	return required("location", j.Location)
}

// ContactInfoType is the kind of a contact info entry
type ContactInfoType string

// ContactInfoType constants
const (
	ContactInfoPhone   ContactInfoType = "phone"
	ContactInfoEmail   ContactInfoType = "email"
	ContactInfoAddress ContactInfoType = "address"
	ContactInfoHours   ContactInfoType = "hours"
)

// ContactInfo is one line of the contact page
type ContactInfo struct {
	Base
	Type  ContactInfoType `json:"type"`
	Label string          `json:"label"`
	Value string          `json:"value"`
	Icon  string          `json:"icon"`
	Order int             `json:"order"`
}

// Validate implements Record
func (c *ContactInfo) Validate() error {
	if err := oneOf("type", c.Type, ContactInfoPhone, ContactInfoEmail, ContactInfoAddress, ContactInfoHours); err != nil {
		return err
	}
	return required("value", c.Value)
}

// GetOrder implements Ordered
func (c *ContactInfo) GetOrder() int { return c.Order }

// FAQ is a question and answer pair
type FAQ struct {
	Base
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

// Validate implements Record
func (f *FAQ) Validate() error {
	if err := required("question", f.Question); err != nil {
		return err
	}
	return required("answer", f.Answer)
}

// GetOrder implements Ordered
func (f *FAQ) GetOrder() int { return f.Order }

// GlobalOffice is a physical office location
type GlobalOffice struct {
	Base
	City           string `json:"city"`
	Country        string `json:"country"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	IsHeadquarters bool   `json:"isHeadquarters"`
}

// Validate implements Record
func (o *GlobalOffice) Validate() error {
	if err := required("city", o.City); err != nil {
		return err
	}
	return required("country", o.Country)
}
