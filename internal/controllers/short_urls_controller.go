package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/fsdevblog/tinyurl/internal/expiry"
	"github.com/fsdevblog/tinyurl/internal/models"
	"github.com/fsdevblog/tinyurl/internal/services"
	"github.com/gin-gonic/gin"
)

type ShortURLController struct {
	urlService ShortURLStore
	baseURL    string
}

func NewShortURLController(urlService ShortURLStore, baseURL string) *ShortURLController {
	return &ShortURLController{
		urlService: urlService,
		baseURL:    baseURL,
	}
}

// CreateShortURLParams тело JSON запроса на сокращение.
type CreateShortURLParams struct {
	URL               string     `json:"url" binding:"required"`
	Alias             string     `json:"alias"`
	ExpiresAt         *time.Time `json:"expiresAt"`
	ExpirationMinutes *int       `json:"expirationMinutes"`
}

// CreateShortURLResponse ответ на сокращение.
type CreateShortURLResponse struct {
	Result    string     `json:"result"`
	Code      string     `json:"code"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

// URLStatsResponse запись со статистикой переходов.
type URLStatsResponse struct {
	Code       string     `json:"code"`
	URL        string     `json:"url"`
	ShortURL   string     `json:"shortUrl"`
	CreatedAt  time.Time  `json:"createdAt"`
	ExpiresAt  *time.Time `json:"expiresAt"`
	VisitCount int64      `json:"visitCount"`
}

// Redirect обрабатывает GET /:shortID. Отсутствующая и истекшая ссылка дают одинаковый 404.
func (s *ShortURLController) Redirect(ctx *gin.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	rawURL, err := s.urlService.Resolve(reqCtx, ctx.Param("shortID"))
	if err != nil {
		abortWithError(ctx, err, false)
		return
	}

	ctx.Redirect(http.StatusTemporaryRedirect, rawURL)
}

// CreateShortURL принимает plain запрос со ссылкой (POST /) или JSON (POST /api/shorten).
//
// Ответы:
//   - 201 новая запись
//   - 200 переиспользована существующая запись (дедупликация по ссылке)
//   - 409 alias занят или ссылка уже сокращена под другим идентификатором
//   - 422 ошибка валидации
func (s *ShortURLController) CreateShortURL(ctx *gin.Context) {
	asJSON := isJSONRequest(ctx)

	var params services.ShortenParams
	if asJSON {
		var req CreateShortURLParams
		if err := ctx.ShouldBindJSON(&req); err != nil {
			_ = ctx.Error(fmt.Errorf("bind json: %w", err))
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": ErrBadRequest.Error()})
			return
		}
		params = services.ShortenParams{
			URL:       req.URL,
			Alias:     req.Alias,
			ExpiresAt: req.ExpiresAt,
		}
		if req.ExpirationMinutes != nil {
			d, err := expiry.Minutes(*req.ExpirationMinutes)
			if err != nil {
				abortWithError(ctx, fmt.Errorf("%w: %w", services.ErrValidation, err), true)
				return
			}
			params.ExpiresIn = &d
		}
	} else {
		body, readErr := io.ReadAll(ctx.Request.Body)
		if readErr != nil {
			_ = ctx.Error(fmt.Errorf("read body: %w", readErr))
			ctx.String(http.StatusInternalServerError, ErrInternal.Error())
			return
		}
		params = services.ShortenParams{URL: string(body)}
	}

	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	sURL, created, err := s.urlService.Shorten(reqCtx, params)
	if err != nil {
		abortWithError(ctx, err, asJSON)
		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}

	result := shortURL(s.baseURL, ctx.Request, sURL.ShortIdentifier)
	if asJSON {
		ctx.JSON(status, CreateShortURLResponse{
			Result:    result,
			Code:      sURL.ShortIdentifier,
			ExpiresAt: sURL.ExpiresAt,
		})
		return
	}
	ctx.String(status, result)
}

// Stats обрабатывает GET /api/urls/:shortID. Истекшие, но не удаленные записи тоже отдаются.
func (s *ShortURLController) Stats(ctx *gin.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	sURL, err := s.urlService.GetByShortIdentifier(reqCtx, ctx.Param("shortID"))
	if err != nil {
		abortWithError(ctx, err, true)
		return
	}
	ctx.JSON(http.StatusOK, s.statsResponse(ctx.Request, sURL))
}

// UpdateExpiry обрабатывает PATCH /api/urls/:shortID/expiry.
//
// Поле expirationMinutes:
//   - отсутствует: срок не меняется
//   - null или <= 0: срок сбрасывается по политике
//   - > 0: срок пересчитывается от момента создания записи
func (s *ShortURLController) UpdateExpiry(ctx *gin.Context) {
	var req UpdateExpiryParams
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(fmt.Errorf("bind json: %w", err))
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": ErrBadRequest.Error()})
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	shortID := ctx.Param("shortID")
	var sURL *models.URL
	var err error
	if req.ExpirationMinutes.Set {
		sURL, err = s.urlService.UpdateExpiry(reqCtx, shortID, req.ExpirationMinutes.Value)
	} else {
		sURL, err = s.urlService.GetByShortIdentifier(reqCtx, shortID)
	}
	if err != nil {
		abortWithError(ctx, err, true)
		return
	}
	ctx.JSON(http.StatusOK, s.statsResponse(ctx.Request, sURL))
}

// AliasAvailability обрабатывает GET /api/aliases/:alias.
func (s *ShortURLController) AliasAvailability(ctx *gin.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	alias := ctx.Param("alias")
	available, err := s.urlService.IsAliasAvailable(reqCtx, alias)
	if err != nil {
		abortWithError(ctx, err, true)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"alias": alias, "available": available})
}

func (s *ShortURLController) statsResponse(r *http.Request, sURL *models.URL) URLStatsResponse {
	return URLStatsResponse{
		Code:       sURL.ShortIdentifier,
		URL:        sURL.URL,
		ShortURL:   shortURL(s.baseURL, r, sURL.ShortIdentifier),
		CreatedAt:  sURL.CreatedAt,
		ExpiresAt:  sURL.ExpiresAt,
		VisitCount: sURL.VisitCount,
	}
}

// UpdateExpiryParams тело запроса изменения срока.
type UpdateExpiryParams struct {
	ExpirationMinutes OptionalInt `json:"expirationMinutes"`
}

// OptionalInt различает отсутствующее поле, явный null и число.
type OptionalInt struct {
	Set   bool
	Value *int
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		return errors.New("expirationMinutes must be an integer or null")
	}
	o.Value = &v
	return nil
}
