package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/fsdevblog/tinyurl/internal/logs"
	"github.com/fsdevblog/tinyurl/internal/models"
	"github.com/fsdevblog/tinyurl/internal/services/smocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// ExampleShortURLController_CreateShortURL создание ссылки с пользовательским идентификатором.
func ExampleShortURLController_CreateShortURL() {
	gin.SetMode(gin.TestMode)
	store := new(smocks.URLMock)
	store.On("Shorten", mock.Anything, mock.Anything).
		Return(&models.URL{URL: "https://example.com", ShortIdentifier: "my-link"}, true, nil)

	router := SetupRouter(RouterParams{
		URLService: store,
		BaseURL:    "http://test.com",
		Logger: logs.MustNew(func(o *logs.LoggerOptions) {
			o.Level = logs.LevelTypeError
		}),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/shorten",
		bytes.NewBufferString(`{"url":"https://example.com","alias":"my-link"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	fmt.Printf("Status: %d\n", w.Code)
	fmt.Printf("Response: %s\n", w.Body.String())

	// Output:
	// Status: 201
	// Response: {"result":"http://test.com/my-link","code":"my-link","expiresAt":null}
}
