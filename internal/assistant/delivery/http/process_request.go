package http

import (
	"github.com/gin-gonic/gin"

	"task-intelligence/pkg/response"
)

func bindJSON[T any](c *gin.Context) (T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.ErrBadRequest(err)
	}
	return req, nil
}

// processProviderReq binds the provider body and the :id URI param.
func (h *handler) processProviderReq(c *gin.Context) (providerReq, error) {
	req, err := bindJSON[providerReq](c)
	if err != nil {
		return req, err
	}
	req.ProviderID = c.Param("id")
	return req, nil
}

// processCorrectionRateReq binds the days query parameter; 0 covers all retained history.
func (h *handler) processCorrectionRateReq(c *gin.Context) (correctionRateReq, error) {
	var req correctionRateReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, response.ErrBadRequest(err)
	}
	return req, nil
}
