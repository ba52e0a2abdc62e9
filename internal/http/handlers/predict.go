package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/agrinet/internal/diagnosis"
	"github.com/yungbote/agrinet/internal/http/response"
	"github.com/yungbote/agrinet/internal/platform/apierr"
	"github.com/yungbote/agrinet/internal/platform/logger"
)

const (
	msgModelNotLoaded = "Model is not loaded properly."
	msgImageFailed    = "An error occurred while processing the image."

	uploadField = "file"
)

type Predictor interface {
	Predict(ctx context.Context, up diagnosis.Upload) (*diagnosis.Prediction, error)
}

type PredictHandler struct {
	log      *logger.Logger
	svc      Predictor
	maxBytes int64
}

func NewPredictHandler(log *logger.Logger, svc Predictor, maxBytes int64) *PredictHandler {
	return &PredictHandler{
		log:      log.With("handler", "PredictHandler"),
		svc:      svc,
		maxBytes: maxBytes,
	}
}

// Predict classifies the image uploaded in the multipart "file" field.
func (h *PredictHandler) Predict(c *gin.Context) {
	up, err := h.readUpload(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	p, err := h.svc.Predict(c.Request.Context(), up)
	if err != nil {
		h.fail(c, predictError(err))
		return
	}
	response.RespondOK(c, p)
}

func (h *PredictHandler) readUpload(c *gin.Context) (diagnosis.Upload, error) {
	if h.maxBytes > 0 {
		if c.Request.ContentLength > h.maxBytes {
			return diagnosis.Upload{}, tooLarge(nil)
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	}

	fh, err := c.FormFile(uploadField)
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return diagnosis.Upload{}, tooLarge(err)
		}
		return diagnosis.Upload{}, apierr.New(http.StatusBadRequest, "missing_file", msgImageFailed, err)
	}
	f, err := fh.Open()
	if err != nil {
		return diagnosis.Upload{}, apierr.New(http.StatusBadRequest, "unreadable_file", msgImageFailed, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return diagnosis.Upload{}, apierr.New(http.StatusBadRequest, "unreadable_file", msgImageFailed, err)
	}
	return diagnosis.Upload{Filename: fh.Filename, Data: data}, nil
}

func (h *PredictHandler) fail(c *gin.Context, err error) {
	ae := apierr.As(err)
	if ae.Status >= http.StatusInternalServerError && ae.Status != http.StatusServiceUnavailable {
		h.log.Error("prediction failed", "code", ae.Code, "error", err)
	} else {
		h.log.Warn("prediction rejected", "code", ae.Code, "error", err)
	}
	_ = c.Error(err)
	response.RespondMessage(c, ae.Status, ae.PublicMessage())
}

func predictError(err error) *apierr.Error {
	switch {
	case errors.Is(err, diagnosis.ErrModelNotLoaded):
		return apierr.New(http.StatusServiceUnavailable, "model_not_loaded", msgModelNotLoaded, err)
	case errors.Is(err, diagnosis.ErrInvalidImage):
		return apierr.New(http.StatusBadRequest, "invalid_image", msgImageFailed, err)
	default:
		return apierr.New(http.StatusInternalServerError, "prediction_failed", msgImageFailed, err)
	}
}

func tooLarge(err error) *apierr.Error {
	if err == nil {
		err = fmt.Errorf("upload exceeds limit")
	}
	return apierr.New(http.StatusRequestEntityTooLarge, "upload_too_large", "Uploaded file is too large.", err)
}
