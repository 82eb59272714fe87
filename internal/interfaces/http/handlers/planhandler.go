package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"replydesk/internal/application/plan/usecases"
	"replydesk/internal/shared/id"
	"replydesk/internal/shared/logger"
	"replydesk/internal/shared/utils"
)

type PlanHandler struct {
	createPlanUC       *usecases.CreatePlanUseCase
	updatePlanUC       *usecases.UpdatePlanUseCase
	deletePlanUC       *usecases.DeletePlanUseCase
	getPlanUC          *usecases.GetPlanUseCase
	listPlansUC        *usecases.ListPlansUseCase
	setPlanFeatureUC   *usecases.SetPlanFeatureUseCase
	listPlanFeaturesUC *usecases.ListPlanFeaturesUseCase
	logger             logger.Interface
}

func NewPlanHandler(
	createPlanUC *usecases.CreatePlanUseCase,
	updatePlanUC *usecases.UpdatePlanUseCase,
	deletePlanUC *usecases.DeletePlanUseCase,
	getPlanUC *usecases.GetPlanUseCase,
	listPlansUC *usecases.ListPlansUseCase,
	setPlanFeatureUC *usecases.SetPlanFeatureUseCase,
	listPlanFeaturesUC *usecases.ListPlanFeaturesUseCase,
) *PlanHandler {
	return &PlanHandler{
		createPlanUC:       createPlanUC,
		updatePlanUC:       updatePlanUC,
		deletePlanUC:       deletePlanUC,
		getPlanUC:          getPlanUC,
		listPlansUC:        listPlansUC,
		setPlanFeatureUC:   setPlanFeatureUC,
		listPlanFeaturesUC: listPlanFeaturesUC,
		logger:             logger.NewLogger(),
	}
}

type CreatePlanRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         *uint64 `json:"price"`
	AllowSelfEdit bool    `json:"allow_self_edit"`
}

type UpdatePlanRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Price         *uint64 `json:"price"`
	ClearPrice    bool    `json:"clear_price"`
	AllowSelfEdit *bool   `json:"allow_self_edit"`
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), usecases.CreatePlanCommand{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		AllowSelfEdit: req.AllowSelfEdit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "plan created successfully")
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPlan, "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), usecases.UpdatePlanCommand{
		SID:           sid,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		ClearPrice:    req.ClearPrice,
		AllowSelfEdit: req.AllowSelfEdit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "plan updated successfully", result)
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPlan, "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deletePlanUC.Execute(c.Request.Context(), usecases.DeletePlanCommand{SID: sid}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPlan, "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPlanUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listPlansUC.Execute(c.Request.Context(), usecases.ListPlansCommand{
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Plans, result.Total, p.Page, p.PageSize)
}

// EnableFeature handles PUT /plans/:id/features/:featureID. Idempotent:
// enabling an already enabled feature succeeds.
func (h *PlanHandler) EnableFeature(c *gin.Context) {
	h.toggleFeature(c, true)
}

// DisableFeature handles DELETE /plans/:id/features/:featureID. Idempotent:
// disabling a feature that was never enabled succeeds.
func (h *PlanHandler) DisableFeature(c *gin.Context) {
	h.toggleFeature(c, false)
}

func (h *PlanHandler) toggleFeature(c *gin.Context, enabled bool) {
	planSID, err := utils.ParseSIDParam(c, "id", id.PrefixPlan, "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	featureSID, err := utils.ParseSIDParam(c, "featureID", id.PrefixFeature, "feature")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.setPlanFeatureUC.Execute(c.Request.Context(), usecases.SetPlanFeatureCommand{
		PlanSID:    planSID,
		FeatureSID: featureSID,
		Enabled:    enabled,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *PlanHandler) ListPlanFeatures(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPlan, "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listPlanFeaturesUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
