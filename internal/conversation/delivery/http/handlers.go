package http

import (
	"github.com/gin-gonic/gin"

	"lead-qualification-assistant/pkg/response"
)

// GetConversation godoc
// @Summary     Get the active conversation
// @Description Returns the transcript, lead info, classification and state of the active conversation.
// @Tags        Conversation
// @Produce     json
// @Success     200 {object} conversationResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversation [GET]
func (h *handler) GetConversation(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Current(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Current: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newConversationResp(output))
}

// SendMessage godoc
// @Summary     Send a lead message
// @Description Appends the lead's message, waits for the assistant reply and classifies the lead once enough messages exist.
// @Description A failed generation still returns 200 with failed=true and a system message as the reply.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "Message"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - assistant still responding"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversation/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SendMessage(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SendMessage: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSendMessageResp(output))
}

// UpdateLead godoc
// @Summary     Update lead contact info
// @Description Sets the lead name, phone and email. A blank name falls back to "Anonymous Lead".
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       body body updateLeadReq true "Lead info"
// @Success     200 {object} conversationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversation/lead [PUT]
func (h *handler) UpdateLead(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateLeadReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateLead(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateLead: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newConversationResp(output))
}

// Classify godoc
// @Summary     Classify the lead
// @Description Runs classification over the full transcript using the current business rules.
// @Tags        Conversation
// @Produce     json
// @Success     200 {object} classifyResp
// @Failure     409 {object} response.Resp "Conflict - assistant still responding"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversation/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Classify(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Classify: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newClassifyResp(output))
}

// Clear godoc
// @Summary     Archive and reset the conversation
// @Description Saves a non-empty conversation to history and starts a fresh one.
// @Tags        Conversation
// @Produce     json
// @Success     200 {object} clearResp
// @Failure     409 {object} response.Resp "Conflict - assistant still responding"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversation/clear [POST]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Clear(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newClearResp(output))
}

// ExportConversation godoc
// @Summary     Export the active conversation
// @Description Downloads the conversation as JSON, CSV or XLSX. Extra metadata can be passed as meta[key]=value.
// @Tags        Conversation
// @Produce     application/json
// @Produce     text/csv
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       format query string false "json (default), csv or xlsx"
// @Success     200 {file} file
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversation/export [GET]
func (h *handler) ExportConversation(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Export(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Attachment(c, output.Filename, output.ContentType, output.Body)
}

// ListHistory godoc
// @Summary     List archived conversations
// @Description Returns archived conversations, newest first, filtered by search text and classification.
// @Tags        History
// @Produce     json
// @Param       search         query string false "Matches lead name, phone, email or last message"
// @Param       classification query string false "all, HOT, COLD, INVALID or ANALYZING"
// @Param       limit          query int    false "Page size (default: 20, max: 100)"
// @Param       offset         query int    false "Page offset (default: 0)"
// @Success     200 {object} listHistoryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/history [GET]
func (h *handler) ListHistory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListHistory(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListHistory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListHistoryResp(output))
}

// GetHistory godoc
// @Summary     Get an archived conversation
// @Tags        History
// @Produce     json
// @Param       id path string true "Conversation ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/history/{id} [GET]
func (h *handler) GetHistory(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processHistoryID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GetHistory(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetHistory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newHistoryResp(output, true))
}

// DeleteHistory godoc
// @Summary     Delete an archived conversation
// @Tags        History
// @Produce     json
// @Param       id path string true "Conversation ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/history/{id} [DELETE]
func (h *handler) DeleteHistory(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processHistoryID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteHistory(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteHistory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// LoadHistory godoc
// @Summary     Resume an archived conversation
// @Description Replaces the active conversation with a copy of the archived one under a new id.
// @Tags        History
// @Produce     json
// @Param       id path string true "Conversation ID"
// @Success     200 {object} conversationResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - assistant still responding"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/history/{id}/load [POST]
func (h *handler) LoadHistory(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processHistoryID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.LoadHistory(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.LoadHistory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newConversationResp(output))
}

// ExportHistory godoc
// @Summary     Export an archived conversation
// @Tags        History
// @Produce     application/json
// @Produce     text/csv
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       id     path  string true  "Conversation ID"
// @Param       format query string false "json (default), csv or xlsx"
// @Success     200 {file} file
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/history/{id}/export [GET]
func (h *handler) ExportHistory(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processHistoryID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExportHistory(ctx, id, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportHistory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Attachment(c, output.Filename, output.ContentType, output.Body)
}

// GetProfile godoc
// @Summary     Get the business profile
// @Tags        Profile
// @Produce     json
// @Success     200 {object} profileResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profile [GET]
func (h *handler) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GetProfile(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetProfile: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newProfileResp(output))
}

// UpdateProfile godoc
// @Summary     Replace the business profile
// @Description Used by the assistant persona for every following reply.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body profileReq true "Business profile"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profile [PUT]
func (h *handler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProfileReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateProfile(ctx, req.toModel())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateProfile: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newProfileResp(output))
}

// GetRules godoc
// @Summary     Get the classification rules
// @Tags        Profile
// @Produce     json
// @Success     200 {object} rulesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profile/rules [GET]
func (h *handler) GetRules(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GetRules(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetRules: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRulesResp(output))
}

// UpdateRules godoc
// @Summary     Replace the classification rules
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body rulesReq true "Classification rules"
// @Success     200 {object} rulesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profile/rules [PUT]
func (h *handler) UpdateRules(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRulesReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateRules(ctx, req.toModel())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateRules: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRulesResp(output))
}
