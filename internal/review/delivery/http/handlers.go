package http

import (
	"github.com/gin-gonic/gin"

	"physics-writing-assistant/internal/review"
	"physics-writing-assistant/pkg/response"
)

// Analyze godoc
// @Summary     Review a paper section
// @Description Returns a structured critique of one section for a target journal.
// @Tags        Review
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Section text"
// @Success     200  {object} analyzeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Model failure"
// @Router      /api/v1/reviews [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAnalyzeResp(output))
}

// Sections godoc
// @Summary     List paper sections
// @Tags        Review
// @Produce     json
// @Success     200 {object} sectionsResp
// @Router      /api/v1/review/sections [GET]
func (h *handler) Sections(c *gin.Context) {
	response.OK(c, newSectionsResp())
}

// Formats godoc
// @Summary     List publication formats
// @Tags        Review
// @Produce     json
// @Success     200 {object} formatsResp
// @Router      /api/v1/review/formats [GET]
func (h *handler) Formats(c *gin.Context) {
	response.OK(c, formatsResp{Formats: review.PublicationFormats, Default: h.uc.DefaultFormat()})
}

// Example godoc
// @Summary     Get an example text
// @Tags        Review
// @Produce     json
// @Param       section path string true "Paper section"
// @Success     200 {object} exampleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/review/examples/{section} [GET]
func (h *handler) Example(c *gin.Context) {
	section, ok := review.ParseSection(c.Param("section"))
	if !ok {
		response.NotFound(c, review.ErrUnknownSection.Error())
		return
	}
	response.OK(c, exampleResp{Section: string(section), Text: review.ExampleTexts[section]})
}
