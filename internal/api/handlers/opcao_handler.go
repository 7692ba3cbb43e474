package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/a2z-projetos/app-codigos-projeto/internal/codigo"
	"github.com/a2z-projetos/app-codigos-projeto/internal/models"
	"github.com/a2z-projetos/app-codigos-projeto/internal/services"
)

// OptionHandler gerencia os endpoints do dicionário de opções
type OptionHandler struct {
	optionService *services.OptionService
	validator     *validator.Validate
	logger        *zap.Logger
}

// NewOptionHandler cria um novo handler de opções
func NewOptionHandler(optionService *services.OptionService, logger *zap.Logger) *OptionHandler {
	return &OptionHandler{
		optionService: optionService,
		validator:     validator.New(),
		logger:        logger,
	}
}

// ListAllOptions godoc
// @Summary Lista as opções ativas de todas as categorias
// @Description Retorna um objeto com a chave de cada categoria (contratantes, empresas, localidades, servicos, sistemas, componentes, etapas, disciplinas, tipoDocumento) e suas opções ordenadas pelo rótulo.
// @Tags opcoes
// @Produce json
// @Success 200 {object} models.OptionsResponse
// @Failure 500 {object} map[string]string
// @Router /api/v1/opcoes [get]
func (h *OptionHandler) ListAllOptions(c *gin.Context) {
	dict, err := h.optionService.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := make(models.OptionsResponse, len(dict))
	for _, category := range codigo.Categories() {
		opts := dict[category]
		codigo.SortByLabel(opts)
		if opts == nil {
			opts = []codigo.CategoryOption{}
		}
		response[category.Key()] = opts
	}
	c.JSON(http.StatusOK, response)
}

// ListOptions godoc
// @Summary Lista as opções ativas de uma categoria
// @Tags opcoes
// @Produce json
// @Param categoria path string true "Chave da categoria" Enums(contratantes, empresas, localidades, servicos, sistemas, componentes, etapas, disciplinas, tipoDocumento)
// @Success 200 {array} codigo.CategoryOption
// @Failure 400 {object} map[string]string "Categoria desconhecida"
// @Failure 500 {object} map[string]string
// @Router /api/v1/opcoes/{categoria} [get]
func (h *OptionHandler) ListOptions(c *gin.Context) {
	category, ok := parseCategory(c)
	if !ok {
		return
	}

	opts, err := h.optionService.ListActive(c.Request.Context(), category)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

// CreateOption godoc
// @Summary Cadastra uma opção na categoria
// @Description Uma opção desativada com o mesmo valor e o mesmo rótulo é reativada; com outro rótulo a resposta é 409.
// @Tags opcoes
// @Accept json
// @Produce json
// @Param categoria path string true "Chave da categoria"
// @Param opcao body models.OptionRequest true "Valor e rótulo"
// @Success 201 {object} codigo.CategoryOption
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string "Valor já cadastrado"
// @Failure 500 {object} map[string]string
// @Router /api/v1/opcoes/{categoria} [post]
func (h *OptionHandler) CreateOption(c *gin.Context) {
	category, ok := parseCategory(c)
	if !ok {
		return
	}

	var request models.OptionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}
	if err := h.validator.Struct(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validação falhou: " + err.Error()})
		return
	}

	opt, err := h.optionService.Register(c.Request.Context(), category, request.Value, request.Label)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, opt)
}

// DeactivateOption godoc
// @Summary Desativa uma opção
// @Description A opção deixa de aparecer nas listas; códigos já emitidos continuam válidos e com legenda.
// @Tags opcoes
// @Param categoria path string true "Chave da categoria"
// @Param valor path string true "Valor da opção"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/opcoes/{categoria}/{valor} [delete]
func (h *OptionHandler) DeactivateOption(c *gin.Context) {
	category, ok := parseCategory(c)
	if !ok {
		return
	}

	if err := h.optionService.Deactivate(c.Request.Context(), category, c.Param("valor")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
