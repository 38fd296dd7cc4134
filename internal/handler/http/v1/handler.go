package v1

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/spot_tracker/internal/config"
	"github.com/shenikar/spot_tracker/internal/maps"
	"github.com/shenikar/spot_tracker/internal/models"
	"github.com/shenikar/spot_tracker/internal/service"
	"github.com/shenikar/spot_tracker/internal/spotlist"
	"github.com/sirupsen/logrus"
)

// Сообщения об ошибках, которые видит пользователь. Детали остаются в логах.
const (
	errMsgSave     = "could not save spot"
	errMsgUpdate   = "could not update spot"
	errMsgDelete   = "could not delete spot"
	errMsgClear    = "could not clear spots"
	errMsgLoad     = "could not load spots"
	errMsgNotFound = "spot not found"
)

type Handler struct {
	spotService service.SpotService
	logger      *logrus.Logger
	validate    *validator.Validate
	cfg         *config.Config
}

func NewHandler(spotService service.SpotService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		spotService: spotService,
		logger:      logger,
		validate:    validator.New(),
		cfg:         cfg,
	}
}

// @Summary Create a new spot
// @Description Create a new spot. Name and location are required; rating is kept only for completed spots.
// @Tags Spots
// @Accept json
// @Produce json
// @Param spot body CreateSpotRequest true "Spot creation request"
// @Success 201 {object} SpotResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Could not save spot"
// @Router /spots [post]
func (h *Handler) createSpot(c *gin.Context) {
	var input CreateSpotRequest
	log := h.logger.WithField("method", "createSpot")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToSpotModel(input)
	if err := h.spotService.CreateSpot(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create spot in service")
		h.respondError(c, err, errMsgSave)
		return
	}
	c.JSON(http.StatusCreated, ModelToSpotResponse(model))
}

// @Summary Get a list of spots
// @Description Get all spots, newest first, optionally narrowed by a search term, status and explore type.
// @Tags Spots
// @Accept json
// @Produce json
// @Param search query string false "Case-insensitive search over name, location and notes"
// @Param status query string false "Exact status"
// @Param explore_type query string false "Exact explore type"
// @Success 200 {array} SpotResponse
// @Failure 500 {object} map[string]string "Could not load spots"
// @Router /spots [get]
func (h *Handler) listSpots(c *gin.Context) {
	log := h.logger.WithField("method", "listSpots")

	spots, err := h.spotService.ListSpots(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		log.WithError(err).Error("Failed to list spots from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": errMsgLoad})
		return
	}

	c.JSON(http.StatusOK, ModelsToSpotResponses(spots))
}

// @Summary Get spot cards
// @Description Get the filtered spot list rendered as HTML cards. On failure the empty list is rendered with an error message.
// @Tags Spots
// @Produce html
// @Param search query string false "Case-insensitive search over name, location and notes"
// @Param status query string false "Exact status"
// @Param explore_type query string false "Exact explore type"
// @Success 200 {string} string "HTML markup"
// @Failure 500 {string} string "HTML markup with error message"
// @Router /spots/cards [get]
func (h *Handler) listSpotCards(c *gin.Context) {
	log := h.logger.WithField("method", "listSpotCards")

	status := http.StatusOK
	errMsg := ""
	spots, err := h.spotService.ListSpots(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		log.WithError(err).Error("Failed to list spots from service")
		status = http.StatusInternalServerError
		errMsg = errMsgLoad
		spots = nil
	}

	var buf bytes.Buffer
	if err := spotlist.RenderCards(&buf, spots, errMsg); err != nil {
		log.WithError(err).Error("Failed to render spot cards")
		c.String(http.StatusInternalServerError, errMsgLoad)
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// @Summary Get spot markers
// @Description Get the filtered spots whose location carries coordinates as a GeoJSON FeatureCollection.
// @Tags Maps
// @Produce json
// @Param search query string false "Case-insensitive search over name, location and notes"
// @Param status query string false "Exact status"
// @Param explore_type query string false "Exact explore type"
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 500 {object} map[string]string "Could not load spots"
// @Router /spots/geojson [get]
func (h *Handler) spotsGeoJSON(c *gin.Context) {
	log := h.logger.WithField("method", "spotsGeoJSON")

	spots, err := h.spotService.ListSpots(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		log.WithError(err).Error("Failed to list spots from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": errMsgLoad})
		return
	}

	body, err := maps.FeatureCollection(spots).MarshalJSON()
	if err != nil {
		log.WithError(err).Error("Failed to marshal feature collection")
		c.JSON(http.StatusInternalServerError, gin.H{"error": errMsgLoad})
		return
	}
	c.Data(http.StatusOK, "application/geo+json", body)
}

// @Summary Get spot statistics
// @Description Get totals, per-type counts and the average rating of rated completed spots.
// @Tags Spots
// @Accept json
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} map[string]string "Could not load spots"
// @Router /spots/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.spotService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": errMsgLoad})
		return
	}

	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary Get spot by ID
// @Description Get a single spot by its ID.
// @Tags Spots
// @Accept json
// @Produce json
// @Param id path int true "Spot ID"
// @Success 200 {object} SpotResponse
// @Failure 400 {object} map[string]string "Invalid spot ID"
// @Failure 404 {object} map[string]string "Spot not found"
// @Failure 500 {object} map[string]string "Could not load spots"
// @Router /spots/{id} [get]
func (h *Handler) getSpot(c *gin.Context) {
	id, ok := parseSpotID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getSpot").WithField("id", id)

	spot, err := h.spotService.GetSpot(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get spot from service")
		h.respondError(c, err, errMsgLoad)
		return
	}
	c.JSON(http.StatusOK, ModelToSpotResponse(spot))
}

// @Summary Update an existing spot
// @Description Overwrite the editable fields of a spot. ID and creation time are kept.
// @Tags Spots
// @Accept json
// @Produce json
// @Param id path int true "Spot ID"
// @Param spot body UpdateSpotRequest true "Spot update request"
// @Success 200 {object} SpotResponse
// @Failure 400 {object} map[string]string "Invalid spot ID or request body"
// @Failure 404 {object} map[string]string "Spot not found"
// @Failure 500 {object} map[string]string "Could not update spot"
// @Router /spots/{id} [put]
func (h *Handler) updateSpot(c *gin.Context) {
	id, ok := parseSpotID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateSpot").WithField("id", id)

	var input UpdateSpotRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToSpotModel(input)
	model.ID = id

	if err := h.spotService.UpdateSpot(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update spot in service")
		h.respondError(c, err, errMsgUpdate)
		return
	}
	c.JSON(http.StatusOK, ModelToSpotResponse(model))
}

// @Summary Delete a spot
// @Description Delete a spot by its ID. Requires the delete passcode.
// @Tags Spots
// @Produce json
// @Security PasscodeAuth
// @Param id path int true "Spot ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid spot ID"
// @Failure 401 {object} map[string]string "Passcode required"
// @Failure 403 {object} map[string]string "Incorrect passcode"
// @Failure 404 {object} map[string]string "Spot not found"
// @Failure 500 {object} map[string]string "Could not delete spot"
// @Router /spots/{id} [delete]
func (h *Handler) deleteSpot(c *gin.Context) {
	id, ok := parseSpotID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteSpot").WithField("id", id)

	if err := h.spotService.DeleteSpot(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to delete spot in service")
		h.respondError(c, err, errMsgDelete)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete all spots
// @Description Remove every spot. Requires the delete passcode.
// @Tags Spots
// @Produce json
// @Security PasscodeAuth
// @Success 200 {object} ClearResponse
// @Failure 401 {object} map[string]string "Passcode required"
// @Failure 403 {object} map[string]string "Incorrect passcode"
// @Failure 500 {object} map[string]string "Could not clear spots"
// @Router /spots [delete]
func (h *Handler) clearSpots(c *gin.Context) {
	log := h.logger.WithField("method", "clearSpots")

	deleted, err := h.spotService.ClearSpots(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to clear spots in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": errMsgClear})
		return
	}

	c.JSON(http.StatusOK, ClearResponse{Deleted: deleted})
}

// @Summary Resolve a location for the map
// @Description Get the embed and open-in-maps URLs for a location, plus its coordinates when the location carries them.
// @Tags Maps
// @Produce json
// @Param location query string true "Free-text location or map URL"
// @Success 200 {object} maps.Link
// @Failure 400 {object} map[string]string "Location is required"
// @Router /maps/link [get]
func (h *Handler) mapLink(c *gin.Context) {
	location := strings.TrimSpace(c.Query("location"))
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location is required"})
		return
	}
	c.JSON(http.StatusOK, maps.Resolve(location))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError отвечает 404 для отсутствующего спота, 400 для пустых обязательных
// полей и общим сообщением операции для всего остального
func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrSpotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errMsgNotFound})
	case errors.Is(err, models.ErrMissingRequiredFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrMissingRequiredFields.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func parseSpotID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid spot ID"})
		return 0, false
	}
	return id, true
}

func filterFromQuery(c *gin.Context) spotlist.Filter {
	return spotlist.Filter{
		Search:      c.Query("search"),
		Status:      c.Query("status"),
		ExploreType: c.Query("explore_type"),
	}
}
