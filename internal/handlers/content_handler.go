package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/assetmagnets/platform/internal/models"
)

// ContentHandler handles the CRUD routes of the site content and the contact form
type ContentHandler struct {
	services        *EntityHandler[*models.Service]
	courses         *EntityHandler[*models.Course]
	jobs            *EntityHandler[*models.Job]
	contactInfo     *EntityHandler[*models.ContactInfo]
	faqs            *EntityHandler[*models.FAQ]
	offices         *EntityHandler[*models.GlobalOffice]
	contactMessages *EntityHandler[*models.ContactMessage]
}

// NewContentHandler creates a new content handler
func NewContentHandler(svc Services, logger *zap.Logger, exposeErrors bool) *ContentHandler {
	return &ContentHandler{
		services:        NewEntityHandler("service", svc.Services, func() *models.Service { return &models.Service{} }, logger, exposeErrors),
		courses:         NewEntityHandler("course", svc.Courses, func() *models.Course { return &models.Course{} }, logger, exposeErrors),
		jobs:            NewEntityHandler("job", svc.Jobs, func() *models.Job { return &models.Job{} }, logger, exposeErrors),
		contactInfo:     NewEntityHandler("contact info", svc.ContactInfo, func() *models.ContactInfo { return &models.ContactInfo{} }, logger, exposeErrors),
		faqs:            NewEntityHandler("faq", svc.FAQs, func() *models.FAQ { return &models.FAQ{} }, logger, exposeErrors),
		offices:         NewEntityHandler("office", svc.Offices, func() *models.GlobalOffice { return &models.GlobalOffice{} }, logger, exposeErrors),
		contactMessages: NewEntityHandler("contact message", svc.ContactMessages, func() *models.ContactMessage { return &models.ContactMessage{} }, logger, exposeErrors),
	}
}

// ServicesRoutes returns the handlers of the /services routes
func (h *ContentHandler) ServicesRoutes() EntityRoutes {
	return EntityRoutes{
		List:   h.ListServices,
		Get:    h.GetService,
		Create: h.CreateService,
		Update: h.UpdateService,
		Delete: h.DeleteService,
	}
}

// ListServices handles GET /services
// @Summary List services
// @Description Return every service in display order
// @Tags services
// @Produce json
// @Success 200 {object} models.Envelope{data=[]models.Service}
// @Failure 500 {object} models.Envelope
// @Router /services [get]
func (h *ContentHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	h.services.List(w, r)
}

// GetService handles GET /services/{id}
// @Summary Get service
// @Tags services
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} models.Envelope{data=models.Service}
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /services/{id} [get]
func (h *ContentHandler) GetService(w http.ResponseWriter, r *http.Request) {
	h.services.Get(w, r)
}

// CreateService handles POST /services
// @Summary Create service
// @Description Create a service (admin, editor)
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Service true "Service"
// @Success 201 {object} models.Envelope{data=models.Service}
// @Failure 400 {object} models.Envelope "Invalid input"
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /services [post]
func (h *ContentHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	h.services.Create(w, r)
}

// UpdateService handles PUT /services/{id}
// @Summary Update service
// @Description Replace a service (admin, editor)
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Param request body models.Service true "Service"
// @Success 200 {object} models.Envelope{data=models.Service}
// @Failure 400 {object} models.Envelope "Invalid input"
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /services/{id} [put]
func (h *ContentHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	h.services.Update(w, r)
}

// DeleteService handles DELETE /services/{id}
// @Summary Delete service
// @Description Delete a service (admin, editor)
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} models.Envelope{data=models.DeleteResponse}
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /services/{id} [delete]
func (h *ContentHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	h.services.Delete(w, r)
}

// CoursesRoutes returns the handlers of the /courses routes
func (h *ContentHandler) CoursesRoutes() EntityRoutes {
	return EntityRoutes{
		List:   h.ListCourses,
		Get:    h.GetCourse,
		Create: h.CreateCourse,
		Update: h.UpdateCourse,
		Delete: h.DeleteCourse,
	}
}

// ListCourses handles GET /courses
// @Summary List courses
// @Description Return every course in display order
// @Tags courses
// @Produce json
// @Success 200 {object} models.Envelope{data=[]models.Course}
// @Failure 500 {object} models.Envelope
// @Router /courses [get]
func (h *ContentHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	h.courses.List(w, r)
}

// GetCourse handles GET /courses/{id}
// @Summary Get course
// @Tags courses
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} models.Envelope{data=models.Course}
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /courses/{id} [get]
func (h *ContentHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	h.courses.Get(w, r)
}

// CreateCourse handles POST /courses
// @Summary Create course
// @Description Create a course (admin, editor, instructor)
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Course true "Course"
// @Success 201 {object} models.Envelope{data=models.Course}
// @Failure 400 {object} models.Envelope "Invalid input"
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /courses [post]
func (h *ContentHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	h.courses.Create(w, r)
}

// UpdateCourse handles PUT /courses/{id}
// @Summary Update course
// @Description Replace a course (admin, editor, instructor)
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Param request body models.Course true "Course"
// @Success 200 {object} models.Envelope{data=models.Course}
// @Failure 400 {object} models.Envelope "Invalid input"
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /courses/{id} [put]
func (h *ContentHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	h.courses.Update(w, r)
}

// DeleteCourse handles DELETE /courses/{id}
// @Summary Delete course
// @Description Delete a course (admin, editor, instructor)
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} models.Envelope{data=models.DeleteResponse}
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /courses/{id} [delete]
func (h *ContentHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	h.courses.Delete(w, r)
}

// JobsRoutes returns the handlers of the /jobs routes
func (h *ContentHandler) JobsRoutes() EntityRoutes {
	return EntityRoutes{
		List:   h.ListJobs,
		Get:    h.GetJob,
		Create: h.CreateJob,
		Update: h.UpdateJob,
		Delete: h.DeleteJob,
	}
}

// ListJobs handles GET /jobs
// @Summary List job openings
// @Description Return every job in display order
// @Tags jobs
// @Produce json
// @Success 200 {object} models.Envelope{data=[]models.Job}
// @Failure 500 {object} models.Envelope
// @Router /jobs [get]
func (h *ContentHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	h.jobs.List(w, r)
}

// GetJob handles GET /jobs/{id}
// @Summary Get job
// @Tags jobs
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} models.Envelope{data=models.Job}
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /jobs/{id} [get]
func (h *ContentHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	h.jobs.Get(w, r)
}

// CreateJob handles POST /jobs
// @Summary Create job
// @Description Create a job (admin, editor)
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Job true "Job"
// @Success 201 {object} models.Envelope{data=models.Job}
// @Failure 400 {object} models.Envelope "Invalid input"
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /jobs [post]
func (h *ContentHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	h.jobs.Create(w, r)
}

// UpdateJob handles PUT /jobs/{id}
// @Summary Update job
// @Description Replace a job (admin, editor)
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Param request body models.Job true "Job"
// @Success 200 {object} models.Envelope{data=models.Job}
// @Failure 400 {object} models.Envelope "Invalid input"
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /jobs/{id} [put]
func (h *ContentHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	h.jobs.Update(w, r)
}

// DeleteJob handles DELETE /jobs/{id}
// @Summary Delete job
// @Description Delete a job (admin, editor)
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} models.Envelope{data=models.DeleteResponse}
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /jobs/{id} [delete]
func (h *ContentHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	h.jobs.Delete(w, r)
}

// ContactInfoRoutes returns the handlers of the /contact-info routes
func (h *ContentHandler) ContactInfoRoutes() EntityRoutes {
	return EntityRoutes{
		List:   h.ListContactInfo,
		Get:    h.GetContactInfo,
		Create: h.CreateContactInfo,
		Update: h.UpdateContactInfo,
		Delete: h.DeleteContactInfo,
	}
}

// ListContactInfo handles GET /contact-info
// @Summary List contact info entries
// @Description Return every contact info entry in display order
// @Tags contact-info
// @Produce json
// @Success 200 {object} models.Envelope{data=[]models.ContactInfo}
// @Failure 500 {object} models.Envelope
// @Router /contact-info [get]
func (h *ContentHandler) ListContactInfo(w http.ResponseWriter, r *http.Request) {
	h.contactInfo.List(w, r)
}

// GetContactInfo handles GET /contact-info/{id}
// @Summary Get contact info entry
// @Tags contact-info
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} models.Envelope{data=models.ContactInfo}
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /contact-info/{id} [get]
func (h *ContentHandler) GetContactInfo(w http.ResponseWriter, r *http.Request) {
	h.contactInfo.Get(w, r)
}

// CreateContactInfo handles POST /contact-info
// @Summary Create contact info entry
// @Description Create a contact info entry (admin, editor)
// @Tags contact-info
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ContactInfo true "Contact info entry"
// @Success 201 {object} models.Envelope{data=models.ContactInfo}
// @Failure 400 {object} models.Envelope "Invalid input"
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /contact-info [post]
func (h *ContentHandler) CreateContactInfo(w http.ResponseWriter, r *http.Request) {
	h.contactInfo.Create(w, r)
}

// UpdateContactInfo handles PUT /contact-info/{id}
// @Summary Update contact info entry
// @Description Replace a contact info entry (admin, editor)
// @Tags contact-info
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Param request body models.ContactInfo true "Contact info entry"
// @Success 200 {object} models.Envelope{data=models.ContactInfo}
// @Failure 400 {object} models.Envelope "Invalid input"
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /contact-info/{id} [put]
func (h *ContentHandler) UpdateContactInfo(w http.ResponseWriter, r *http.Request) {
	h.contactInfo.Update(w, r)
}

// DeleteContactInfo handles DELETE /contact-info/{id}
// @Summary Delete contact info entry
// @Description Delete a contact info entry (admin, editor)
// @Tags contact-info
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} models.Envelope{data=models.DeleteResponse}
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /contact-info/{id} [delete]
func (h *ContentHandler) DeleteContactInfo(w http.ResponseWriter, r *http.Request) {
	h.contactInfo.Delete(w, r)
}

// FAQsRoutes returns the handlers of the /faqs routes
func (h *ContentHandler) FAQsRoutes() EntityRoutes {
	return EntityRoutes{
		List:   h.ListFAQs,
		Get:    h.GetFAQ,
		Create: h.CreateFAQ,
		Update: h.UpdateFAQ,
		Delete: h.DeleteFAQ,
	}
}

// ListFAQs handles GET /faqs
// @Summary List FAQs
// @Description Return every FAQ in display order
// @Tags faqs
// @Produce json
// @Success 200 {object} models.Envelope{data=[]models.FAQ}
// @Failure 500 {object} models.Envelope
// @Router /faqs [get]
func (h *ContentHandler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	h.faqs.List(w, r)
}

// GetFAQ handles GET /faqs/{id}
// @Summary Get FAQ
// @Tags faqs
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} models.Envelope{data=models.FAQ}
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /faqs/{id} [get]
func (h *ContentHandler) GetFAQ(w http.ResponseWriter, r *http.Request) {
	h.faqs.Get(w, r)
}

// CreateFAQ handles POST /faqs
// @Summary Create FAQ
// @Description Create a FAQ (admin, editor)
// @Tags faqs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.FAQ true "FAQ"
// @Success 201 {object} models.Envelope{data=models.FAQ}
// @Failure 400 {object} models.Envelope "Invalid input"
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /faqs [post]
func (h *ContentHandler) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	h.faqs.Create(w, r)
}

// UpdateFAQ handles PUT /faqs/{id}
// @Summary Update FAQ
// @Description Replace a FAQ (admin, editor)
// @Tags faqs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Param request body models.FAQ true "FAQ"
// @Success 200 {object} models.Envelope{data=models.FAQ}
// @Failure 400 {object} models.Envelope "Invalid input"
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /faqs/{id} [put]
func (h *ContentHandler) UpdateFAQ(w http.ResponseWriter, r *http.Request) {
	h.faqs.Update(w, r)
}

// DeleteFAQ handles DELETE /faqs/{id}
// @Summary Delete FAQ
// @Description Delete a FAQ (admin, editor)
// @Tags faqs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} models.Envelope{data=models.DeleteResponse}
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /faqs/{id} [delete]
func (h *ContentHandler) DeleteFAQ(w http.ResponseWriter, r *http.Request) {
	h.faqs.Delete(w, r)
}

// OfficesRoutes returns the handlers of the /offices routes
func (h *ContentHandler) OfficesRoutes() EntityRoutes {
	return EntityRoutes{
		List:   h.ListOffices,
		Get:    h.GetOffice,
		Create: h.CreateOffice,
		Update: h.UpdateOffice,
		Delete: h.DeleteOffice,
	}
}

// ListOffices handles GET /offices
// @Summary List global offices
// @Description Return every office in display order
// @Tags offices
// @Produce json
// @Success 200 {object} models.Envelope{data=[]models.GlobalOffice}
// @Failure 500 {object} models.Envelope
// @Router /offices [get]
func (h *ContentHandler) ListOffices(w http.ResponseWriter, r *http.Request) {
	h.offices.List(w, r)
}

// GetOffice handles GET /offices/{id}
// @Summary Get office
// @Tags offices
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} models.Envelope{data=models.GlobalOffice}
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /offices/{id} [get]
func (h *ContentHandler) GetOffice(w http.ResponseWriter, r *http.Request) {
	h.offices.Get(w, r)
}

// CreateOffice handles POST /offices
// @Summary Create office
// @Description Create an office (admin, editor)
// @Tags offices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.GlobalOffice true "Office"
// @Success 201 {object} models.Envelope{data=models.GlobalOffice}
// @Failure 400 {object} models.Envelope "Invalid input"
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /offices [post]
func (h *ContentHandler) CreateOffice(w http.ResponseWriter, r *http.Request) {
	h.offices.Create(w, r)
}

// UpdateOffice handles PUT /offices/{id}
// @Summary Update office
// @Description Replace an office (admin, editor)
// @Tags offices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Param request body models.GlobalOffice true "Office"
// @Success 200 {object} models.Envelope{data=models.GlobalOffice}
// @Failure 400 {object} models.Envelope "Invalid input"
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /offices/{id} [put]
func (h *ContentHandler) UpdateOffice(w http.ResponseWriter, r *http.Request) {
	h.offices.Update(w, r)
}

// DeleteOffice handles DELETE /offices/{id}
// @Summary Delete office
// @Description Delete an office (admin, editor)
// @Tags offices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} models.Envelope{data=models.DeleteResponse}
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /offices/{id} [delete]
func (h *ContentHandler) DeleteOffice(w http.ResponseWriter, r *http.Request) {
	h.offices.Delete(w, r)
}

// ContactMessagesRoutes returns the handlers of the /contact-messages routes
func (h *ContentHandler) ContactMessagesRoutes() EntityRoutes {
	return EntityRoutes{
		List:   h.ListContactMessages,
		Get:    h.GetContactMessage,
		Create: h.CreateContactMessage,
		Update: h.UpdateContactMessage,
		Delete: h.DeleteContactMessage,
	}
}

// ListContactMessages handles GET /contact-messages
// @Summary List contact messages
// @Description Return every contact message, newest first (admin, editor)
// @Tags contact-messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Envelope{data=[]models.ContactMessage}
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /contact-messages [get]
func (h *ContentHandler) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	h.contactMessages.List(w, r)
}

// GetContactMessage handles GET /contact-messages/{id}
// @Summary Get contact message
// @Tags contact-messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} models.Envelope{data=models.ContactMessage}
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /contact-messages/{id} [get]
func (h *ContentHandler) GetContactMessage(w http.ResponseWriter, r *http.Request) {
	h.contactMessages.Get(w, r)
}

// CreateContactMessage handles POST /contact-messages
// @Summary Create contact message
// @Description Submit the contact form; status defaults to new and staff are notified
// @Tags contact-messages
// @Accept json
// @Produce json
// @Param request body models.ContactMessage true "Contact message"
// @Success 201 {object} models.Envelope{data=models.ContactMessage}
// @Failure 400 {object} models.Envelope "Invalid input"
// @Failure 500 {object} models.Envelope
// @Router /contact-messages [post]
func (h *ContentHandler) CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	h.contactMessages.Create(w, r)
}

// UpdateContactMessage handles PUT /contact-messages/{id}
// @Summary Update contact message
// @Description Replace a contact message (admin, editor)
// @Tags contact-messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Param request body models.ContactMessage true "Contact message"
// @Success 200 {object} models.Envelope{data=models.ContactMessage}
// @Failure 400 {object} models.Envelope "Invalid input"
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /contact-messages/{id} [put]
func (h *ContentHandler) UpdateContactMessage(w http.ResponseWriter, r *http.Request) {
	h.contactMessages.Update(w, r)
}

// DeleteContactMessage handles DELETE /contact-messages/{id}
// @Summary Delete contact message
// @Description Delete a contact message (admin, editor)
// @Tags contact-messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} models.Envelope{data=models.DeleteResponse}
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /contact-messages/{id} [delete]
func (h *ContentHandler) DeleteContactMessage(w http.ResponseWriter, r *http.Request) {
	h.contactMessages.Delete(w, r)
}
