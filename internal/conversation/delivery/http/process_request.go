package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// processSendMessageReq binds the send message request body.
func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Content) == "" {
		return req, errEmptyMessage
	}
	return req, nil
}

func (h *handler) processUpdateLeadReq(c *gin.Context) (updateLeadReq, error) {
	var req updateLeadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListHistoryReq(c *gin.Context) (listHistoryReq, error) {
	var req listHistoryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processExportReq reads ?format= and any meta[key]=value pairs.
func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if meta := c.QueryMap("meta"); len(meta) > 0 {
		req.Metadata = meta
	}
	return req, nil
}

func (h *handler) processProfileReq(c *gin.Context) (profileReq, error) {
	var req profileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processRulesReq(c *gin.Context) (rulesReq, error) {
	var req rulesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processHistoryID reads the :id path parameter.
func (h *handler) processHistoryID(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errMissingHistoryID
	}
	return id, nil
}
