package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/agrinet/internal/http/response"
	"github.com/yungbote/agrinet/internal/web/pages"
)

// PageHandler serves the home page from bytes rendered once at construction.
type PageHandler struct {
	home []byte
}

func NewPageHandler() (*PageHandler, error) {
	home, err := pages.HomeHTML()
	if err != nil {
		return nil, fmt.Errorf("render home page: %w", err)
	}
	return &PageHandler{home: home}, nil
}

func (h *PageHandler) Home(c *gin.Context) {
	response.RespondHTML(c, http.StatusOK, h.home)
}
