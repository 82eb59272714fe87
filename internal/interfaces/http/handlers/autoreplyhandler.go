package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"replydesk/internal/application/autoreply/usecases"
	"replydesk/internal/shared/id"
	"replydesk/internal/shared/logger"
	"replydesk/internal/shared/utils"
)

type AutoReplyHandler struct {
	createRuleUC *usecases.CreateRuleUseCase
	updateRuleUC *usecases.UpdateRuleUseCase
	deleteRuleUC *usecases.DeleteRuleUseCase
	listRulesUC  *usecases.ListRulesUseCase
	logger       logger.Interface
}

func NewAutoReplyHandler(
	createRuleUC *usecases.CreateRuleUseCase,
	updateRuleUC *usecases.UpdateRuleUseCase,
	deleteRuleUC *usecases.DeleteRuleUseCase,
	listRulesUC *usecases.ListRulesUseCase,
) *AutoReplyHandler {
	return &AutoReplyHandler{
		createRuleUC: createRuleUC,
		updateRuleUC: updateRuleUC,
		deleteRuleUC: deleteRuleUC,
		listRulesUC:  listRulesUC,
		logger:       logger.NewLogger(),
	}
}

type CreateRuleRequest struct {
	Keyword   string `json:"keyword" binding:"required"`
	MatchMode string `json:"match_mode" binding:"required,oneof=exact contains"`
	ReplyBody string `json:"reply_body" binding:"required"`
	Priority  int    `json:"priority"`
}

type UpdateRuleRequest struct {
	Keyword   *string `json:"keyword"`
	MatchMode *string `json:"match_mode" binding:"omitempty,oneof=exact contains"`
	ReplyBody *string `json:"reply_body"`
	Priority  *int    `json:"priority"`
	IsActive  *bool   `json:"is_active"`
}

func (h *AutoReplyHandler) CreateRule(c *gin.Context) {
	clientSID, err := utils.ParseSIDParam(c, "id", id.PrefixClient, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create rule", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.createRuleUC.Execute(c.Request.Context(), usecases.CreateRuleCommand{
		ClientSID: clientSID,
		Keyword:   req.Keyword,
		MatchMode: req.MatchMode,
		ReplyBody: req.ReplyBody,
		Priority:  req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "auto reply rule created successfully")
}

func (h *AutoReplyHandler) UpdateRule(c *gin.Context) {
	clientSID, err := utils.ParseSIDParam(c, "id", id.PrefixClient, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ruleSID, err := utils.ParseSIDParam(c, "ruleID", id.PrefixAutoReply, "auto reply rule")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.updateRuleUC.Execute(c.Request.Context(), usecases.UpdateRuleCommand{
		SID:       ruleSID,
		ClientSID: clientSID,
		Keyword:   req.Keyword,
		MatchMode: req.MatchMode,
		ReplyBody: req.ReplyBody,
		Priority:  req.Priority,
		IsActive:  req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "auto reply rule updated successfully", result)
}

func (h *AutoReplyHandler) DeleteRule(c *gin.Context) {
	clientSID, err := utils.ParseSIDParam(c, "id", id.PrefixClient, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ruleSID, err := utils.ParseSIDParam(c, "ruleID", id.PrefixAutoReply, "auto reply rule")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteRuleUC.Execute(c.Request.Context(), usecases.DeleteRuleCommand{
		SID:       ruleSID,
		ClientSID: clientSID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *AutoReplyHandler) ListRules(c *gin.Context) {
	clientSID, err := utils.ParseSIDParam(c, "id", id.PrefixClient, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listRulesUC.Execute(c.Request.Context(), clientSID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
