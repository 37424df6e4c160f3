package http

import (
	"github.com/gin-gonic/gin"

	"task-intelligence/pkg/llmprovider"
	"task-intelligence/pkg/response"
)

// fail reports a use-case error; errors without a mapping become 500.
func (h *handler) fail(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	mapped := h.mapError(err)
	if mapped == nil {
		h.l.Errorf(ctx, "uc.%s: %s", op, llmprovider.Summary(err))
		response.InternalError(c, err)
		return
	}
	h.l.Warnf(ctx, "uc.%s: %s", op, llmprovider.Summary(err))
	response.Error(c, mapped, nil)
}

// Estimate godoc
// @Summary     Estimate task duration
// @Description Asks the active provider how many minutes a task will take. suggested=false means no backend could answer.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body estimateReq true "Task"
// @Success     200  {object} estimateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Provider error"
// @Failure     503  {object} response.Resp "Provider busy, retry later"
// @Router      /api/v1/ai/estimate [POST]
func (h *handler) Estimate(c *gin.Context) {
	req, err := bindJSON[estimateReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.EstimateDuration(c.Request.Context(), req.toInput())
	if err != nil {
		h.fail(c, "EstimateDuration", err)
		return
	}

	response.OK(c, h.newEstimateResp(output))
}

// Priority godoc
// @Summary     Suggest task priority
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body priorityReq true "Task"
// @Success     200  {object} priorityResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Provider error"
// @Failure     503  {object} response.Resp "Provider busy, retry later"
// @Router      /api/v1/ai/priority [POST]
func (h *handler) Priority(c *gin.Context) {
	req, err := bindJSON[priorityReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SuggestPriority(c.Request.Context(), req.toInput())
	if err != nil {
		h.fail(c, "SuggestPriority", err)
		return
	}

	response.OK(c, h.newPriorityResp(output))
}

// Order godoc
// @Summary     Suggest a working order
// @Description Returns the tasks with 1-based positions. An unusable reply keeps the input order.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body orderReq true "Tasks"
// @Success     200  {object} orderResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Provider error"
// @Failure     503  {object} response.Resp "Provider busy, retry later"
// @Router      /api/v1/ai/order [POST]
func (h *handler) Order(c *gin.Context) {
	req, err := bindJSON[orderReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SuggestOrder(c.Request.Context(), req.toInput())
	if err != nil {
		h.fail(c, "SuggestOrder", err)
		return
	}

	response.OK(c, h.newOrderResp(output))
}

// Analyze godoc
// @Summary     Analyze a task
// @Description Full analysis of a stored task (task_id) or an inline task.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Task or task id"
// @Success     200  {object} analyzeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Task not found"
// @Failure     502  {object} response.Resp "Provider error"
// @Failure     503  {object} response.Resp "Provider busy, retry later"
// @Router      /api/v1/ai/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	req, err := bindJSON[analyzeReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Analyze(c.Request.Context(), req.toInput())
	if err != nil {
		h.fail(c, "Analyze", err)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// Complete godoc
// @Summary     Raw completion
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body completeReq true "Prompt"
// @Success     200  {object} completeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Provider error"
// @Failure     503  {object} response.Resp "Provider busy, retry later"
// @Router      /api/v1/ai/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	req, err := bindJSON[completeReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Complete(c.Request.Context(), req.toInput())
	if err != nil {
		h.fail(c, "Complete", err)
		return
	}

	response.OK(c, completeResp{Text: output.Text})
}
