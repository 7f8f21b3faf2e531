package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"calendar-converter/internal/schedule"
	"calendar-converter/pkg/response"
)

// ConvertText godoc
// @Summary     Convert text to a calendar
// @Description Extracts events from free text and returns an .ics file (or JSON with format=json).
// @Tags        Calendar
// @Accept      json
// @Produce     text/calendar
// @Produce     json
// @Param       body   body  convertTextReq true  "Schedule text"
// @Param       format query string         false "Response format: ics (default) or json"
// @Success     200 {file}   file         "calendar.ics"
// @Success     200 {object} convertResp  "format=json"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Unusable engine output or dates"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Extraction engine unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/convert/text [POST]
func (h *handler) ConvertText(c *gin.Context) {
	ctx := c.Request.Context()

	format, err := h.processFormat(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processConvertTextReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ConvertText(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ConvertText: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.respond(c, format, output)
}

// ConvertFile godoc
// @Summary     Convert an uploaded file to a calendar
// @Description Image files (.jpg .jpeg .png .gif .bmp .webp) are read as pictures; anything else as UTF-8 text.
// @Tags        Calendar
// @Accept      multipart/form-data
// @Produce     text/calendar
// @Produce     json
// @Param       file   formData file   true  "Schedule file"
// @Param       format query    string false "Response format: ics (default) or json"
// @Success     200 {file}   file         "calendar.ics"
// @Success     200 {object} convertResp  "format=json"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Unusable engine output or dates"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Extraction engine unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/convert/file [POST]
func (h *handler) ConvertFile(c *gin.Context) {
	h.convertUpload(c, h.uc.ConvertFile)
}

// ConvertImage godoc
// @Summary     Convert an image of a schedule to a calendar
// @Description The upload is always treated as an image; its MIME type is derived from the extension (default image/jpeg).
// @Tags        Calendar
// @Accept      multipart/form-data
// @Produce     text/calendar
// @Produce     json
// @Param       file   formData file   true  "Schedule image"
// @Param       format query    string false "Response format: ics (default) or json"
// @Success     200 {file}   file         "calendar.ics"
// @Success     200 {object} convertResp  "format=json"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Unusable engine output or dates"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Extraction engine unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/convert/image [POST]
func (h *handler) ConvertImage(c *gin.Context) {
	h.convertUpload(c, h.uc.ConvertImage)
}

type convertFunc func(ctx context.Context, input schedule.ConvertFileInput) (schedule.ConvertOutput, error)

func (h *handler) convertUpload(c *gin.Context, convert convertFunc) {
	ctx := c.Request.Context()

	format, err := h.processFormat(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processConvertFileReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := convert(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Convert %q: %v", req.Filename, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.respond(c, format, output)
}

// respond writes either the .ics attachment or the JSON event list.
func (h *handler) respond(c *gin.Context, format string, output schedule.ConvertOutput) {
	if format == formatJSON {
		response.OK(c, h.newConvertResp(output))
		return
	}

	ctx := c.Request.Context()
	file, err := h.uc.Render(ctx, output.Events)
	if err != nil {
		h.l.Errorf(ctx, "uc.Render: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Attachment(c, file.Filename, file.ContentType, file.Data)
}
