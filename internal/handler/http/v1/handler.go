package v1

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/incidentwatch/emergency_monitoring_system/internal/alert"
	"github.com/incidentwatch/emergency_monitoring_system/internal/config"
	"github.com/incidentwatch/emergency_monitoring_system/internal/feed"
	"github.com/incidentwatch/emergency_monitoring_system/internal/models"
	"github.com/incidentwatch/emergency_monitoring_system/internal/service"
	"github.com/incidentwatch/emergency_monitoring_system/internal/storage"
	"github.com/incidentwatch/emergency_monitoring_system/internal/vision"
)

type Handler struct {
	incidentService service.IncidentService
	authService     service.AuthService
	systemService   service.SystemService
	classifier      vision.Classifier
	alerts          *alert.Manager
	cooldown        *feed.Cooldown
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	authService service.AuthService,
	systemService service.SystemService,
	classifier vision.Classifier,
	alerts *alert.Manager,
	cooldown *feed.Cooldown,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService: incidentService,
		authService:     authService,
		systemService:   systemService,
		classifier:      classifier,
		alerts:          alerts,
		cooldown:        cooldown,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// validationErrors разворачивает ошибку валидатора в список сообщений по полям
func validationErrors(err error) []string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, len(verrs))
		for i, fe := range verrs {
			msgs[i] = fe.Error()
		}
		return msgs
	}
	return []string{err.Error()}
}

// @Summary Operator login
// @Description Authenticate an operator by username and password.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 401 {object} map[string]string "Invalid username or password"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "errors": []string{"invalid request body"}})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "errors": validationErrors(err)})
		return
	}

	user, err := h.authService.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		// Неизвестный пользователь и неверный пароль дают одинаковый ответ
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		ID:       user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	})
}

// @Summary List emergency contacts
// @Description Get the emergency services directory.
// @Tags Contacts
// @Produce json
// @Success 200 {array} models.EmergencyContact
// @Router /emergency-contacts [get]
func (h *Handler) listEmergencyContacts(c *gin.Context) {
	log := h.logger.WithField("method", "listEmergencyContacts")

	contacts, err := h.systemService.ListEmergencyContacts(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list emergency contacts")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// @Summary List incidents
// @Description Get all incidents in creation order.
// @Tags Incidents
// @Produce json
// @Success 200 {array} IncidentResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.incidentService.ListIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary List active incidents
// @Description Get incidents with status "active".
// @Tags Incidents
// @Produce json
// @Success 200 {array} IncidentResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/active [get]
func (h *Handler) listActiveIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listActiveIncidents")

	incidents, err := h.incidentService.ListActiveIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list active incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its numeric ID.
// @Tags Incidents
// @Produce json
// @Param id path int true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Incident not found"})
			return
		}
		log.WithError(err).Error("Failed to get incident from service")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Create a new incident
// @Description Create a new incident. The external incidentId must be unique.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "errors": []string{"invalid request body"}})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "errors": validationErrors(err)})
		return
	}

	incident, err := h.incidentService.CreateIncident(c.Request.Context(), DTOToIncidentModel(input))
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateIncidentID) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "errors": []string{"incidentId already exists"}})
			return
		}
		log.WithError(err).Error("Failed to create incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary Update incident status
// @Description Transition an incident into a new lifecycle status.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param id path int true "Incident ID"
// @Param status body UpdateIncidentStatusRequest true "Status update request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]interface{} "Invalid incident ID or status"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/status [patch]
func (h *Handler) updateIncidentStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "updateIncidentStatus").WithField("id", id)

	var input UpdateIncidentStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "errors": []string{"invalid request body"}})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "errors": validationErrors(err)})
		return
	}

	incident, err := h.incidentService.UpdateIncidentStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Incident not found"})
			return
		}
		log.WithError(err).Error("Failed to update incident status in service")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Generate incident report
// @Description Generate a plaintext report file for an incident.
// @Tags Reports
// @Produce json
// @Param id path int true "Incident ID"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /incidents/{id}/generate-report [post]
func (h *Handler) generateReport(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "generateReport").WithField("id", id)

	reportURL, err := h.incidentService.GenerateReport(c.Request.Context(), id)
	if err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Incident not found"})
			return
		}
		log.WithError(err).Error("Failed to generate report")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, ReportResponse{ReportURL: reportURL})
}

// @Summary Delete incident report
// @Description Delete a previously generated report file.
// @Tags Reports
// @Produce json
// @Param id path int true "Incident ID"
// @Success 200 {object} map[string]string "Report deleted successfully"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident or report not found"
// @Router /incidents/{id}/delete-report [delete]
func (h *Handler) deleteReport(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "deleteReport").WithField("id", id)

	if err := h.incidentService.DeleteReport(c.Request.Context(), id); err != nil {
		switch {
		case service.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"message": "Incident not found"})
		case errors.Is(err, service.ErrReportNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Report not found"})
		default:
			log.WithError(err).Error("Failed to delete report")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete report"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report deleted successfully"})
}

// @Summary Download incident report
// @Description Download a generated report file by name.
// @Tags Reports
// @Produce plain
// @Param file path string true "Report file name"
// @Success 200 {string} string "Report contents"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /incidents/reports/{file} [get]
func (h *Handler) downloadReport(c *gin.Context) {
	// Base отсекает попытки выйти из каталога отчётов
	name := filepath.Base(c.Param("file"))
	path := filepath.Join(h.cfg.ReportsDir, name)

	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Report not found"})
		return
	}
	c.File(path)
}

// @Summary List system statuses
// @Description Get health indicators of the monitored subsystems.
// @Tags System
// @Produce json
// @Success 200 {array} models.SystemStatus
// @Router /system-status [get]
func (h *Handler) listSystemStatuses(c *gin.Context) {
	log := h.logger.WithField("method", "listSystemStatuses")

	statuses, err := h.systemService.ListSystemStatuses(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list system statuses")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, statuses)
}

// @Summary Update system status
// @Description Partially update a subsystem indicator (external monitor write path).
// @Tags System
// @Accept json
// @Produce json
// @Param id path int true "System status ID"
// @Param update body UpdateSystemStatusRequest true "Partial update"
// @Success 200 {object} models.SystemStatus
// @Failure 400 {object} map[string]interface{} "Invalid ID or body"
// @Failure 404 {object} map[string]string "System status not found"
// @Router /system-status/{id} [patch]
func (h *Handler) updateSystemStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid system status ID"})
		return
	}
	log := h.logger.WithField("method", "updateSystemStatus").WithField("id", id)

	var input UpdateSystemStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "errors": []string{"invalid request body"}})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "errors": validationErrors(err)})
		return
	}

	status, err := h.systemService.UpdateSystemStatus(c.Request.Context(), id, DTOToSystemStatusUpdate(input))
	if err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "System status not found"})
			return
		}
		log.WithError(err).Error("Failed to update system status in service")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// @Summary Classify a camera frame
// @Description Forward a frame to the AI classifier; a probability at or above the threshold creates an incident and raises an alert.
// @Tags Detection
// @Accept mpfd
// @Produce json
// @Param file formData file true "Frame image"
// @Success 200 {object} DetectResponse
// @Failure 400 {object} map[string]string "Image file is required"
// @Failure 500 {object} map[string]string "Failed to classify frame"
// @Router /detect [post]
func (h *Handler) detect(c *gin.Context) {
	log := h.logger.WithField("method", "detect")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded frame")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to classify frame"})
		return
	}
	defer file.Close()

	prediction, err := h.classifier.Predict(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		log.WithError(err).Error("Failed to classify frame")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to classify frame"})
		return
	}

	resp := DetectResponse{
		Prediction:          prediction.Prediction,
		AccidentProbability: prediction.AccidentProbability,
	}

	if prediction.AccidentProbability >= h.cfg.PredictThreshold && !h.cooldown.Active(vision.SourceAI) {
		p := prediction.AccidentProbability
		inc := models.Incident{
			IncidentID:     fmt.Sprintf("AI-%d", time.Now().UnixMilli()),
			Title:          prediction.Prediction,
			Description:    "AI detected possible accident",
			Severity:       models.SeverityHigh,
			Source:         vision.SourceAI,
			Location:       "Auto-detected location",
			Coordinates:    "37.7749,-122.4194",
			OptimizedRoute: "Auto-calculated route",
			Status:         models.StatusActive,
			Probability:    &p,
		}

		created, err := h.incidentService.CreateIncident(c.Request.Context(), inc)
		if err != nil {
			log.WithError(err).Error("Failed to create incident from AI detection")
		} else {
			h.alerts.SetAlert(created)
			h.alerts.OpenIncident(created)
			h.cooldown.Arm(vision.SourceAI)
			resp.IncidentID = created.IncidentID
		}
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
