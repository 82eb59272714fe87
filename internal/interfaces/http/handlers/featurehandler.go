package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"replydesk/internal/application/feature/usecases"
	"replydesk/internal/shared/id"
	"replydesk/internal/shared/logger"
	"replydesk/internal/shared/utils"
)

type FeatureHandler struct {
	createFeatureUC *usecases.CreateFeatureUseCase
	updateFeatureUC *usecases.UpdateFeatureUseCase
	deleteFeatureUC *usecases.DeleteFeatureUseCase
	getFeatureUC    *usecases.GetFeatureUseCase
	listFeaturesUC  *usecases.ListFeaturesUseCase
	logger          logger.Interface
}

func NewFeatureHandler(
	createFeatureUC *usecases.CreateFeatureUseCase,
	updateFeatureUC *usecases.UpdateFeatureUseCase,
	deleteFeatureUC *usecases.DeleteFeatureUseCase,
	getFeatureUC *usecases.GetFeatureUseCase,
	listFeaturesUC *usecases.ListFeaturesUseCase,
) *FeatureHandler {
	return &FeatureHandler{
		createFeatureUC: createFeatureUC,
		updateFeatureUC: updateFeatureUC,
		deleteFeatureUC: deleteFeatureUC,
		getFeatureUC:    getFeatureUC,
		listFeaturesUC:  listFeaturesUC,
		logger:          logger.NewLogger(),
	}
}

type CreateFeatureRequest struct {
	Name        string                `json:"name" binding:"required"`
	Slug        string                `json:"slug" binding:"required"`
	Description string                `json:"description"`
	Fields      []usecases.FieldInput `json:"fields" binding:"required,min=1,dive"`
}

type UpdateFeatureRequest struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Fields      []usecases.FieldInput `json:"fields"`
}

func (h *FeatureHandler) CreateFeature(c *gin.Context) {
	var req CreateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create feature", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.createFeatureUC.Execute(c.Request.Context(), usecases.CreateFeatureCommand{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Fields:      req.Fields,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "feature created successfully")
}

func (h *FeatureHandler) UpdateFeature(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFeature, "feature")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.updateFeatureUC.Execute(c.Request.Context(), usecases.UpdateFeatureCommand{
		SID:         sid,
		Name:        req.Name,
		Description: req.Description,
		Fields:      req.Fields,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "feature updated successfully", result)
}

func (h *FeatureHandler) DeleteFeature(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFeature, "feature")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteFeatureUC.Execute(c.Request.Context(), usecases.DeleteFeatureCommand{SID: sid}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *FeatureHandler) GetFeature(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFeature, "feature")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getFeatureUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *FeatureHandler) ListFeatures(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listFeaturesUC.Execute(c.Request.Context(), usecases.ListFeaturesCommand{
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Features, result.Total, p.Page, p.PageSize)
}
