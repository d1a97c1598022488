package http

import (
	"github.com/gin-gonic/gin"

	"physics-writing-assistant/pkg/response"
)

// Run godoc
// @Summary     Run a round-table discussion
// @Description Runs plan, persona turns and reflection until the panel finishes or the iteration cap is hit.
// @Tags        Discussion
// @Accept      json
// @Produce     json
// @Param       body body runReq true "Text and panel"
// @Success     200  {object} runResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Generation failed"
// @Failure     504  {object} response.Resp "Run timed out"
// @Router      /api/v1/discussions [POST]
func (h *handler) Run(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRunReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Run(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Run: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newRunResp(output))
}

// Detail godoc
// @Summary     Get a completed discussion
// @Description Returns a recently completed discussion by id.
// @Tags        Discussion
// @Produce     json
// @Param       id path string true "Discussion ID"
// @Success     200 {object} runResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/discussions/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Get(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newRunResp(output))
}

// ListPersonas godoc
// @Summary     List panel personas
// @Tags        Discussion
// @Produce     json
// @Success     200 {object} listPersonasResp
// @Router      /api/v1/personas [GET]
func (h *handler) ListPersonas(c *gin.Context) {
	response.OK(c, newListPersonasResp(h.uc.Personas(c.Request.Context())))
}
