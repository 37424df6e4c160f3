package http

import (
	"github.com/gin-gonic/gin"

	"task-intelligence/pkg/response"
)

// ListProviders godoc
// @Summary     List providers
// @Description Every catalog provider with its configuration, availability and the active selection.
// @Tags        Providers
// @Produce     json
// @Success     200 {object} providersResp
// @Router      /api/v1/ai/providers [GET]
func (h *handler) ListProviders(c *gin.Context) {
	response.OK(c, h.newProvidersResp(h.uc.Providers(c.Request.Context())))
}

// ConfigureProvider godoc
// @Summary     Configure a provider
// @Description Stores endpoint and model; the credential goes to the system keychain. An empty credential keeps the stored one.
// @Tags        Providers
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Provider ID"
// @Param       body body providerReq true "Configuration"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Invalid endpoint"
// @Failure     404 {object} response.Resp "Unknown provider"
// @Router      /api/v1/ai/providers/{id} [PUT]
func (h *handler) ConfigureProvider(c *gin.Context) {
	req, err := h.processProviderReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.ConfigureProvider(c.Request.Context(), req.toInput()); err != nil {
		h.fail(c, "ConfigureProvider", err)
		return
	}

	response.OK(c, nil)
}

// RemoveProvider godoc
// @Summary     Remove a provider
// @Tags        Providers
// @Produce     json
// @Param       id path string true "Provider ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Unknown provider"
// @Router      /api/v1/ai/providers/{id} [DELETE]
func (h *handler) RemoveProvider(c *gin.Context) {
	if err := h.uc.RemoveProvider(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "RemoveProvider", err)
		return
	}

	response.OK(c, nil)
}

// Activate godoc
// @Summary     Select the active provider
// @Description An unavailable provider silently reverts to the default; reverted reports it.
// @Tags        Providers
// @Produce     json
// @Param       id path string true "Provider ID"
// @Success     200 {object} activateResp
// @Router      /api/v1/ai/providers/{id}/activate [POST]
func (h *handler) Activate(c *gin.Context) {
	id := c.Param("id")
	active := h.uc.SetActive(c.Request.Context(), id)
	response.OK(c, activateResp{Active: active, Requested: id, Reverted: active != id})
}

// TestConnection godoc
// @Summary     Test a provider configuration
// @Description Performs one round trip. Without endpoint and model the stored configuration is tested.
// @Tags        Providers
// @Accept      json
// @Produce     json
// @Param       body body testConnectionReq true "Configuration"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Invalid endpoint or credential"
// @Failure     502 {object} response.Resp "Provider error"
// @Failure     503 {object} response.Resp "Provider busy, retry later"
// @Router      /api/v1/ai/providers/test [POST]
func (h *handler) TestConnection(c *gin.Context) {
	req, err := bindJSON[testConnectionReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.TestConnection(c.Request.Context(), req.toInput()); err != nil {
		h.fail(c, "TestConnection", err)
		return
	}

	response.OK(c, nil)
}

// Models godoc
// @Summary     Discover models
// @Description Lists models offered by the provider's stored configuration. Advisory: failures give an empty list.
// @Tags        Providers
// @Produce     json
// @Param       id       path  string true  "Provider ID"
// @Param       endpoint query string false "Endpoint to query instead of the stored one"
// @Success     200 {object} modelsResp
// @Router      /api/v1/ai/providers/{id}/models [GET]
func (h *handler) Models(c *gin.Context) {
	req := providerReq{ProviderID: c.Param("id"), Endpoint: c.Query("endpoint")}
	models := h.uc.DiscoverModels(c.Request.Context(), req.toInput())
	response.OK(c, modelsResp{Models: models})
}
