package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const formField = "file"

// processFormat reads the ?format= query parameter.
func (h *handler) processFormat(c *gin.Context) (string, error) {
	format := strings.ToLower(c.DefaultQuery("format", formatICS))
	if format != formatICS && format != formatJSON {
		return "", errInvalidFmt
	}
	return format, nil
}

// processConvertTextReq binds the JSON body.
func (h *handler) processConvertTextReq(c *gin.Context) (convertTextReq, error) {
	var req convertTextReq
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	if err := c.ShouldBindJSON(&req); err != nil {
		if isTooLarge(err) {
			return req, errBodyTooLarge
		}
		return req, errInvalidBody
	}
	return req, nil
}

// processConvertFileReq reads the uploaded multipart file.
func (h *handler) processConvertFileReq(c *gin.Context) (convertFileReq, error) {
	var req convertFileReq
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fh, err := c.FormFile(formField)
	if err != nil {
		if isTooLarge(err) {
			return req, errBodyTooLarge
		}
		return req, errMissingFile
	}

	f, err := fh.Open()
	if err != nil {
		return req, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return req, err
	}

	req.Filename = fh.Filename
	req.Data = data
	return req, nil
}

func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe) || strings.Contains(err.Error(), "request body too large")
}
