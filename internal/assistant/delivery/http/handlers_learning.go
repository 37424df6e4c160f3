package http

import (
	"github.com/gin-gonic/gin"

	"task-intelligence/pkg/response"
)

// RecordCorrection godoc
// @Summary     Record a correction
// @Description Stores a user override of a suggestion. With task_id the choice is also applied to the stored task.
// @Tags        Learning
// @Accept      json
// @Produce     json
// @Param       body body correctionReq true "Correction"
// @Success     200 {object} recordedResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Task not found"
// @Router      /api/v1/ai/corrections [POST]
func (h *handler) RecordCorrection(c *gin.Context) {
	req, err := bindJSON[correctionReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	recorded, err := h.uc.RecordCorrection(c.Request.Context(), req.toInput())
	if err != nil {
		h.fail(c, "RecordCorrection", err)
		return
	}

	response.OK(c, recordedResp{Recorded: recorded})
}

// RecordDurationAccuracy godoc
// @Summary     Record estimate accuracy
// @Tags        Learning
// @Accept      json
// @Produce     json
// @Param       body body durationAccuracyReq true "Estimate and actual minutes"
// @Success     200 {object} recordedResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/ai/duration-accuracy [POST]
func (h *handler) RecordDurationAccuracy(c *gin.Context) {
	req, err := bindJSON[durationAccuracyReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	recorded, err := h.uc.RecordDurationAccuracy(c.Request.Context(), req.toInput())
	if err != nil {
		h.fail(c, "RecordDurationAccuracy", err)
		return
	}

	response.OK(c, recordedResp{Recorded: recorded})
}

// RecordImpression godoc
// @Summary     Record an impression
// @Description Marks one suggestion as shown to the user.
// @Tags        Learning
// @Produce     json
// @Success     200 {object} recordedResp
// @Router      /api/v1/ai/impressions [POST]
func (h *handler) RecordImpression(c *gin.Context) {
	if err := h.uc.RecordImpression(c.Request.Context()); err != nil {
		h.fail(c, "RecordImpression", err)
		return
	}

	response.OK(c, recordedResp{Recorded: true})
}

// RecordCompletion godoc
// @Summary     Record a task completion
// @Description Completes a stored task (task_id) or accepts an inline completed task, and feeds habit tracking.
// @Tags        Learning
// @Accept      json
// @Produce     json
// @Param       body body completionReq true "Completion"
// @Success     200 {object} completionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Task not found"
// @Router      /api/v1/ai/completions [POST]
func (h *handler) RecordCompletion(c *gin.Context) {
	req, err := bindJSON[completionReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	task, err := h.uc.RecordTaskCompletion(c.Request.Context(), req.toInput())
	if err != nil {
		h.fail(c, "RecordTaskCompletion", err)
		return
	}

	response.OK(c, h.newCompletionResp(task))
}

// CorrectionRate godoc
// @Summary     Correction rate
// @Description Corrections over impressions in the last N days, capped at 1. days=0 covers all retained history.
// @Tags        Learning
// @Produce     json
// @Param       days query int false "Window in days"
// @Success     200 {object} correctionRateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/ai/correction-rate [GET]
func (h *handler) CorrectionRate(c *gin.Context) {
	req, err := h.processCorrectionRateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	rate := h.uc.CorrectionRate(c.Request.Context(), req.Days)
	response.OK(c, correctionRateResp{Days: req.Days, Rate: rate})
}

// Stats godoc
// @Summary     Learning statistics
// @Tags        Learning
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/v1/ai/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	response.OK(c, h.newStatsResp(h.uc.Stats(c.Request.Context()), h.uc.IsProcessing()))
}

// ResetLearning godoc
// @Summary     Reset learning
// @Description Clears corrections, accuracy history, impressions and habits.
// @Tags        Learning
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/ai/learning [DELETE]
func (h *handler) ResetLearning(c *gin.Context) {
	if err := h.uc.ResetLearning(c.Request.Context()); err != nil {
		h.fail(c, "ResetLearning", err)
		return
	}

	response.OK(c, nil)
}
