package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"replydesk/internal/application/clientconfig/usecases"
	"replydesk/internal/interfaces/http/middleware"
	"replydesk/internal/shared/id"
	"replydesk/internal/shared/logger"
	"replydesk/internal/shared/utils"
)

// ClientConfigHandler serves the client panel's configuration surface:
// the enabled feature list and per-feature settings forms.
type ClientConfigHandler struct {
	listEnabledFeaturesUC *usecases.ListEnabledFeaturesUseCase
	getFeatureSettingsUC  *usecases.GetFeatureSettingsUseCase
	saveFeatureSettingsUC *usecases.SaveFeatureSettingsUseCase
	logger                logger.Interface
}

func NewClientConfigHandler(
	listEnabledFeaturesUC *usecases.ListEnabledFeaturesUseCase,
	getFeatureSettingsUC *usecases.GetFeatureSettingsUseCase,
	saveFeatureSettingsUC *usecases.SaveFeatureSettingsUseCase,
) *ClientConfigHandler {
	return &ClientConfigHandler{
		listEnabledFeaturesUC: listEnabledFeaturesUC,
		getFeatureSettingsUC:  getFeatureSettingsUC,
		saveFeatureSettingsUC: saveFeatureSettingsUC,
		logger:                logger.NewLogger(),
	}
}

type SaveFeatureSettingsRequest struct {
	Values map[string]string `json:"values" binding:"required"`
}

func (h *ClientConfigHandler) GetConfiguration(c *gin.Context) {
	clientSID, err := utils.ParseSIDParam(c, "id", id.PrefixClient, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listEnabledFeaturesUC.Execute(c.Request.Context(), usecases.ListEnabledFeaturesCommand{
		ClientSID: clientSID,
		Role:      middleware.RoleFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ClientConfigHandler) GetFeatureSettings(c *gin.Context) {
	clientSID, err := utils.ParseSIDParam(c, "id", id.PrefixClient, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	featureSID, err := utils.ParseSIDParam(c, "featureID", id.PrefixFeature, "feature")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getFeatureSettingsUC.Execute(c.Request.Context(), usecases.GetFeatureSettingsCommand{
		ClientSID:  clientSID,
		FeatureSID: featureSID,
		Role:       middleware.RoleFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ClientConfigHandler) SaveFeatureSettings(c *gin.Context) {
	clientSID, err := utils.ParseSIDParam(c, "id", id.PrefixClient, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	featureSID, err := utils.ParseSIDParam(c, "featureID", id.PrefixFeature, "feature")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SaveFeatureSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for save settings", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.saveFeatureSettingsUC.Execute(c.Request.Context(), usecases.SaveFeatureSettingsCommand{
		ClientSID:  clientSID,
		FeatureSID: featureSID,
		Values:     req.Values,
		Role:       middleware.RoleFromContext(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "settings saved successfully", nil)
}
