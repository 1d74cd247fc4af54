package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/assetmagnets/platform/internal/auth/middleware"
	"github.com/assetmagnets/platform/internal/models"
)

// Services groups the business logic behind the /api routes
type Services struct {
	Auth            AuthService
	Users           UserService
	Services        EntityService[*models.Service]
	Courses         EntityService[*models.Course]
	Jobs            EntityService[*models.Job]
	ContactInfo     EntityService[*models.ContactInfo]
	FAQs            EntityService[*models.FAQ]
	Offices         EntityService[*models.GlobalOffice]
	ContactMessages EntityService[*models.ContactMessage]
}

// RouteOptions configures Mount
type RouteOptions struct {
	Validator    middleware.TokenValidator
	Logger       *zap.Logger
	ExposeErrors bool
	// AuthLimiter guards the /auth routes; nil disables it
	AuthLimiter func(http.Handler) http.Handler
}

// Mount registers every API route on r
// Note: This assumes the router is already scoped to /api
func Mount(r chi.Router, svc Services, opts RouteOptions) {
	logger := opts.Logger
	expose := opts.ExposeErrors

	authenticate := middleware.AuthMiddleware(opts.Validator)
	staff := middleware.RoleMiddleware(opts.Validator, models.RoleAdmin, models.RoleEditor)
	teaching := middleware.RoleMiddleware(opts.Validator, models.RoleAdmin, models.RoleEditor, models.RoleInstructor)
	admin := middleware.RoleMiddleware(opts.Validator, models.RoleAdmin)

	r.Group(func(r chi.Router) {
		r.Use(optional(opts.AuthLimiter))
		NewAuthHandler(svc.Auth, logger, expose).RegisterRoutes(r, authenticate)
	})

	publicContent := AccessPolicy{Write: staff}

	content := NewContentHandler(svc, logger, expose)
	RegisterEntityRoutes(r, "/services", content.ServicesRoutes(), publicContent)
	RegisterEntityRoutes(r, "/courses", content.CoursesRoutes(), AccessPolicy{Write: teaching})
	RegisterEntityRoutes(r, "/jobs", content.JobsRoutes(), publicContent)
	RegisterEntityRoutes(r, "/contact-info", content.ContactInfoRoutes(), publicContent)
	RegisterEntityRoutes(r, "/faqs", content.FAQsRoutes(), publicContent)
	RegisterEntityRoutes(r, "/offices", content.OfficesRoutes(), publicContent)

	// Anyone may submit the contact form, only staff may read it
	RegisterEntityRoutes(r, "/contact-messages", content.ContactMessagesRoutes(), AccessPolicy{
		Read:   staff,
		Write:  staff,
		Create: passThrough,
	})

	NewUserHandler(svc.Users, logger, expose).RegisterRoutes(r, admin)
}

func passThrough(next http.Handler) http.Handler { return next }
