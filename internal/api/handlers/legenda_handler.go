package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/a2z-projetos/app-codigos-projeto/internal/codigo"
	"github.com/a2z-projetos/app-codigos-projeto/internal/models"
	"github.com/a2z-projetos/app-codigos-projeto/internal/services"
	"github.com/a2z-projetos/app-codigos-projeto/internal/utils"
)

// LegendHandler gerencia os endpoints de legenda
type LegendHandler struct {
	codeService *services.CodeService
	logger      *zap.Logger
}

// NewLegendHandler cria um novo handler de legendas
func NewLegendHandler(codeService *services.CodeService, logger *zap.Logger) *LegendHandler {
	return &LegendHandler{
		codeService: codeService,
		logger:      logger,
	}
}

// DecodeLegend godoc
// @Summary Legenda de um código digitado
// @Description Traduz cada segmento para o rótulo do dicionário. Um código malformado não é erro: a legenda traz uma única linha "Erro" e valido=false.
// @Tags legenda
// @Produce json
// @Produce text/markdown
// @Produce text/html
// @Param codigo query string true "Código completo" example(IGU-A2Z-RJ-A-000-00-A-A-AT-0001-270524-R0)
// @Param format query string false "Formato da resposta" Enums(json, markdown, html) default(json)
// @Success 200 {object} models.LegendResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/legenda [get]
func (h *LegendHandler) DecodeLegend(c *gin.Context) {
	format, err := models.ParseLegendFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identifier := strings.TrimSpace(c.Query("codigo"))
	if identifier == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro codigo é obrigatório"})
		return
	}

	items, err := h.codeService.LegendFor(c.Request.Context(), identifier)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.render(c, format, identifier, items)
}

// CodeLegend godoc
// @Summary Legenda de um código emitido
// @Tags legenda
// @Produce json
// @Produce text/markdown
// @Produce text/html
// @Param id path string true "ID do código"
// @Param format query string false "Formato da resposta" Enums(json, markdown, html) default(json)
// @Success 200 {object} models.LegendResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/codigos/{id}/legenda [get]
func (h *LegendHandler) CodeLegend(c *gin.Context) {
	format, err := models.ParseLegendFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	code, items, err := h.codeService.Legend(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.render(c, format, code.Identifier, items)
}

func (h *LegendHandler) render(c *gin.Context, format models.LegendFormat, identifier string, items []codigo.LegendItem) {
	switch format {
	case models.LegendFormatMarkdown:
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(codigo.LegendMarkdown(identifier, items)))
	case models.LegendFormatHTML:
		html := utils.MarkdownToHTML(codigo.LegendMarkdown(identifier, items))
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
	default:
		c.JSON(http.StatusOK, models.LegendResponse{
			Codigo: identifier,
			Valido: !codigo.IsLegendError(items),
			Itens:  items,
		})
	}
}
