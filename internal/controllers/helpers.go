package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	DefaultRequestTimeout = 3 * time.Second
)

// isJSONRequest Определяет тип запроса (json или нет) по заголовку Content-Type.
func isJSONRequest(ctx *gin.Context) bool {
	ct := ctx.Request.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/json")
}

// shortURL собирает короткую ссылку. Без baseURL используется Scheme://Host запроса.
func shortURL(baseURL string, r *http.Request, shortID string) string {
	if baseURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(baseURL, "/"), shortID)
	}
	var scheme = "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, r.Host, shortID)
}

// abortWithError пишет ошибку в контекст для логгера и отвечает соответствующим статусом.
func abortWithError(ctx *gin.Context, err error, asJSON bool) {
	_ = ctx.Error(err)
	status, public := errorStatus(err)
	if asJSON {
		ctx.AbortWithStatusJSON(status, gin.H{"error": public.Error()})
		return
	}
	ctx.String(status, public.Error())
	ctx.Abort()
}
