package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

const (
	defaultQRSize = 256
	maxQRSize     = 1024
)

// QRController отдает QR код короткой ссылки.
type QRController struct {
	urlService ShortURLStore
	baseURL    string
}

func NewQRController(urlService ShortURLStore, baseURL string) *QRController {
	return &QRController{urlService: urlService, baseURL: baseURL}
}

// QRCode обрабатывает GET /api/urls/:shortID/qr?size=N и возвращает PNG.
func (q *QRController) QRCode(ctx *gin.Context) {
	size := defaultQRSize
	if raw := ctx.Query("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 || v > maxQRSize {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": ErrBadRequest.Error()})
			return
		}
		size = v
	}

	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	sURL, err := q.urlService.GetByShortIdentifier(reqCtx, ctx.Param("shortID"))
	if err != nil {
		abortWithError(ctx, err, true)
		return
	}

	png, err := qrcode.Encode(shortURL(q.baseURL, ctx.Request, sURL.ShortIdentifier), qrcode.Medium, size)
	if err != nil {
		_ = ctx.Error(fmt.Errorf("encode qr: %w", err))
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": ErrInternal.Error()})
		return
	}
	ctx.Data(http.StatusOK, "image/png", png)
}
