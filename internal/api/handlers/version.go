package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/a2z-projetos/app-codigos-projeto/internal/version"
)

// VersionHandler expõe a versão do build
type VersionHandler struct {
	info version.Info
}

func NewVersionHandler() *VersionHandler {
	return &VersionHandler{info: version.Get()}
}

// GetVersion godoc
// @Summary Versão da aplicação
// @Tags health
// @Produce json
// @Success 200 {object} version.Info
// @Router /version [get]
func (h *VersionHandler) GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, h.info)
}
