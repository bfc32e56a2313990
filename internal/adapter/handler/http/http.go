package http

import (
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"
	"github.com/sm8ta/webike_theft_registry/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BikeHandler struct {
	bikeService ports.BikeService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type BikeRequest struct {
	Brand          string `json:"brand" binding:"required" example:"Trek"`
	Model          string `json:"model" binding:"required" example:"FX3"`
	Type           string `json:"type" binding:"required" example:"road"`
	Year           int    `json:"year" binding:"required" example:"2021"`
	Color          string `json:"color" binding:"required" example:"black"`
	FrameSize      string `json:"frameSize,omitempty" example:"M"`
	SerialNumber   string `json:"serialNumber" binding:"required" example:"WTU123456"`
	AdditionalInfo string `json:"additionalInfo,omitempty" example:"Rear rack, bell"`
}

type UpdateBikeRequest struct {
	Brand          *string `json:"brand,omitempty" example:"Trek"`
	Model          *string `json:"model,omitempty" example:"FX3 Disc"`
	Type           *string `json:"type,omitempty" example:"hybrid"`
	Year           *int    `json:"year,omitempty" example:"2022"`
	Color          *string `json:"color,omitempty" example:"blue"`
	FrameSize      *string `json:"frameSize,omitempty" example:"L"`
	SerialNumber   *string `json:"serialNumber,omitempty" example:"WTU123456"`
	AdditionalInfo *string `json:"additionalInfo,omitempty" example:"New saddle"`
}

type AttachImagesRequest struct {
	Images []string `json:"images" binding:"required" example:"https://res.cloudinary.com/demo/image/upload/bike.jpg"`
}

type BikesResponse struct {
	Bikes []*domain.Bike `json:"bikes"`
	Count int            `json:"count"`
}

type ImagesResponse struct {
	Images []*domain.BikeImage `json:"images"`
	Count  int                 `json:"count"`
}

func NewBikeHandler(bikeService ports.BikeService, logger ports.LoggerPort, metrics ports.MetricsPort) *BikeHandler {
	return &BikeHandler{
		bikeService: bikeService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary Register a bike
// @Description Registers a new bike owned by the caller. Status starts as registered.
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body BikeRequest true "Bike data"
// @Success 201 {object} domain.Bike "Bike registered"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /bikes [post]
func (h *BikeHandler) RegisterBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := currentUser(c, h.logger)
	if !ok {
		return
	}

	var req BikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	bike := &domain.Bike{
		Brand:          strings.TrimSpace(req.Brand),
		Model:          strings.TrimSpace(req.Model),
		Type:           domain.BikeType(strings.ToLower(req.Type)),
		Year:           req.Year,
		Color:          strings.TrimSpace(req.Color),
		FrameSize:      req.FrameSize,
		SerialNumber:   strings.TrimSpace(req.SerialNumber),
		AdditionalInfo: req.AdditionalInfo,
	}

	created, err := h.bikeService.RegisterBike(c.Request.Context(), user, bike)
	if err != nil {
		handleServiceError(c, h.logger, err, "register bike")
		return
	}

	h.metrics.RecordEvent(ports.EventBikeRegistered)
	c.JSON(http.StatusCreated, created)
}

// @Summary List my bikes
// @Description All bikes of the caller, newest first
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Success 200 {object} BikesResponse "Bikes"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 500 {object} errorResponse "Internal error"
// @Router /bikes [get]
func (h *BikeHandler) ListBikes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := currentUser(c, h.logger)
	if !ok {
		return
	}

	bikes, err := h.bikeService.ListOwned(c.Request.Context(), user)
	if err != nil {
		handleServiceError(c, h.logger, err, "list bikes")
		return
	}

	c.JSON(http.StatusOK, BikesResponse{Bikes: bikes, Count: len(bikes)})
}

// @Summary List bikes available for a theft report
// @Description Bikes of the caller that are still in registered status
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Success 200 {object} BikesResponse "Bikes"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /bikes/available [get]
func (h *BikeHandler) ListAvailableBikes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := currentUser(c, h.logger)
	if !ok {
		return
	}

	bikes, err := h.bikeService.ListAvailable(c.Request.Context(), user)
	if err != nil {
		handleServiceError(c, h.logger, err, "list available bikes")
		return
	}

	c.JSON(http.StatusOK, BikesResponse{Bikes: bikes, Count: len(bikes)})
}

// @Summary Get a bike
// @Description One bike of the caller with its images
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bike ID"
// @Success 200 {object} domain.Bike "Bike"
// @Failure 400 {object} errorResponse "Invalid bike ID"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /bikes/{id} [get]
func (h *BikeHandler) GetBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := currentUser(c, h.logger)
	if !ok {
		return
	}
	bikeID, ok := pathUUID(c, "id", "Invalid bike ID")
	if !ok {
		return
	}

	bike, err := h.bikeService.GetBike(c.Request.Context(), user, bikeID)
	if err != nil {
		handleServiceError(c, h.logger, err, "get bike")
		return
	}

	c.JSON(http.StatusOK, bike)
}

// @Summary Edit a bike
// @Description Changes any subset of the mutable bike attributes. Status cannot be set here.
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Bike ID"
// @Param request body UpdateBikeRequest true "Fields to change"
// @Success 200 {object} domain.Bike "Bike updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /bikes/{id} [patch]
func (h *BikeHandler) UpdateBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := currentUser(c, h.logger)
	if !ok {
		return
	}
	bikeID, ok := pathUUID(c, "id", "Invalid bike ID")
	if !ok {
		return
	}

	var req UpdateBikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	upd := domain.BikeUpdate{
		Brand:          req.Brand,
		Model:          req.Model,
		Year:           req.Year,
		Color:          req.Color,
		FrameSize:      req.FrameSize,
		SerialNumber:   req.SerialNumber,
		AdditionalInfo: req.AdditionalInfo,
	}
	if req.Type != nil {
		t := domain.BikeType(strings.ToLower(*req.Type))
		upd.Type = &t
	}

	updated, err := h.bikeService.UpdateBike(c.Request.Context(), user, bikeID, upd)
	if err != nil {
		handleServiceError(c, h.logger, err, "update bike")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Attach bike images
// @Description Attaches up to 10 images. Send JSON with image URLs, or multipart/form-data with files in the "images" field. The first image becomes the primary one.
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Accept mpfd
// @Produce json
// @Param id path string true "Bike ID"
// @Param request body AttachImagesRequest false "Image URLs"
// @Success 201 {object} ImagesResponse "Images attached"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Bike not found"
// @Failure 503 {object} errorResponse "Uploads not configured"
// @Router /bikes/{id}/images [post]
func (h *BikeHandler) AttachImages(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := currentUser(c, h.logger)
	if !ok {
		return
	}
	bikeID, ok := pathUUID(c, "id", "Invalid bike ID")
	if !ok {
		return
	}

	var (
		images []*domain.BikeImage
		err    error
	)
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		form, ferr := c.MultipartForm()
		if ferr != nil {
			bindError(c, h.logger, ferr)
			return
		}
		files, closeAll, ferr := openImageFiles(form.File["images"])
		if ferr != nil {
			bindError(c, h.logger, ferr)
			return
		}
		defer closeAll()
		images, err = h.bikeService.UploadImages(c.Request.Context(), user, bikeID, files)
	} else {
		var req AttachImagesRequest
		if berr := c.ShouldBindJSON(&req); berr != nil {
			bindError(c, h.logger, berr)
			return
		}
		images, err = h.bikeService.AttachImages(c.Request.Context(), user, bikeID, req.Images)
	}
	if err != nil {
		handleServiceError(c, h.logger, err, "attach images")
		return
	}

	h.metrics.RecordEvent(ports.EventImagesAttached)
	c.JSON(http.StatusCreated, ImagesResponse{Images: images, Count: len(images)})
}

func openImageFiles(headers []*multipart.FileHeader) ([]ports.ImageFile, func(), error) {
	opened := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	files := make([]ports.ImageFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		opened = append(opened, f)
		files = append(files, ports.ImageFile{Name: fh.Filename, Reader: f})
	}
	return files, closeAll, nil
}

func pathUUID(c *gin.Context, param, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, message)
		return uuid.Nil, false
	}
	return id, true
}
