package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestExtractUintParam_ValidID(t *testing.T) {
	// Arrange
	router := gin.New()
	var captured uint
	router.DELETE("/questions/:id", ExtractUintParam("id", "questionID"), func(c *gin.Context) {
		captured = c.MustGet("questionID").(uint)
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest("DELETE", "/questions/42", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), captured, "ID должен быть доступен в контексте под заданным ключом")
}

func TestExtractUintParam_InvalidID(t *testing.T) {
	// Arrange
	router := gin.New()
	handlerCalled := false
	router.DELETE("/questions/:id", ExtractUintParam("id", "questionID"), func(c *gin.Context) {
		handlerCalled = true
	})

	testCases := []struct {
		name string
		path string
	}{
		{"нечисловой ID", "/questions/abc"},
		{"отрицательный ID", "/questions/-1"},
		{"дробный ID", "/questions/1.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest("DELETE", tc.path, nil)
			w := httptest.NewRecorder()

			// Act
			router.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, handlerCalled, "Обработчик не должен вызываться при невалидном параметре")
		})
	}
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	// Arrange
	router := gin.New()
	router.Use(RequestID())
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader), "Заголовок X-Request-ID должен быть сгенерирован")
}

func TestRequestID_PreservesIncoming(t *testing.T) {
	// Arrange
	router := gin.New()
	router.Use(RequestID())
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest("GET", "/health", nil)
	req.Header.Set(RequestIDHeader, "client-supplied-id")
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, "client-supplied-id", w.Header().Get(RequestIDHeader), "Входящий X-Request-ID должен сохраняться")
}
