package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	middlewares "github.com/a2z-projetos/app-codigos-projeto/internal/middleware"
	"github.com/a2z-projetos/app-codigos-projeto/internal/models"
	"github.com/a2z-projetos/app-codigos-projeto/internal/services"
)

// CodeHandler gerencia os endpoints de códigos emitidos
type CodeHandler struct {
	codeService *services.CodeService
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewCodeHandler cria um novo handler de códigos
func NewCodeHandler(codeService *services.CodeService, logger *zap.Logger) *CodeHandler {
	return &CodeHandler{
		codeService: codeService,
		validator:   validator.New(),
		logger:      logger,
	}
}

// CreateCode godoc
// @Summary Emite um novo código de projeto
// @Description Valida os campos contra o dicionário de opções ativas e grava o código.
// @Description Sem "numero" o próximo número livre é alocado automaticamente; com "numero" o valor informado é usado e um conflito retorna 409.
// @Description "versao" assume R0 e "data" a data atual quando omitidos.
// @Tags codigos
// @Accept json
// @Produce json
// @Param X-User-ID header string false "ID do usuário"
// @Param X-User-Name header string false "Nome do usuário"
// @Param codigo body models.GenerateCodeRequest true "Campos do código"
// @Success 201 {object} codigo.IssuedCode
// @Failure 400 {object} map[string]string "Campos inválidos ou fora do dicionário"
// @Failure 409 {object} map[string]string "Número já utilizado ou alocação sem número livre"
// @Failure 500 {object} map[string]string
// @Router /api/v1/codigos [post]
func (h *CodeHandler) CreateCode(c *gin.Context) {
	var request models.GenerateCodeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	if err := h.validator.Struct(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validação falhou: " + err.Error()})
		return
	}

	fields, err := request.FieldSet()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	author := services.Author{
		ID:   middlewares.GetUserID(c),
		Name: middlewares.GetUserName(c),
	}

	saved, err := h.codeService.Generate(c.Request.Context(), services.GenerateRequest{
		Name:   request.Name,
		Fields: fields,
	}, author)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// ListCodes godoc
// @Summary Lista os códigos emitidos
// @Description Lista todos os códigos, do mais recente para o mais antigo. Todos os usuários veem todos os códigos.
// @Tags codigos
// @Produce json
// @Param limit query int false "Itens por página (máximo: 100)" minimum(1) maximum(100) default(20)
// @Param offset query int false "Deslocamento" minimum(0) default(0)
// @Success 200 {object} models.CodeListResponse
// @Failure 500 {object} map[string]string
// @Router /api/v1/codigos [get]
func (h *CodeHandler) ListCodes(c *gin.Context) {
	page, err := h.codeService.List(c.Request.Context(),
		parseIntQuery(c, "limit", services.DefaultPageSize),
		parseIntQuery(c, "offset", 0),
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.CodeListResponse{
		Items:  page.Items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

// GetCode godoc
// @Summary Busca um código pelo ID
// @Tags codigos
// @Produce json
// @Param id path string true "ID do código"
// @Success 200 {object} codigo.IssuedCode
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/codigos/{id} [get]
func (h *CodeHandler) GetCode(c *gin.Context) {
	code, err := h.codeService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, code)
}

// DeleteCode godoc
// @Summary Exclui um código
// @Description Remove o código e libera o número sequencial para novas emissões.
// @Tags codigos
// @Param id path string true "ID do código"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/codigos/{id} [delete]
func (h *CodeHandler) DeleteCode(c *gin.Context) {
	if err := h.codeService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// NextNumber godoc
// @Summary Prévia do próximo número sequencial
// @Description Calcula o menor número livre sem reservá-lo; a emissão pode receber outro número se houver gravações concorrentes.
// @Tags codigos
// @Produce json
// @Success 200 {object} models.NextNumberResponse
// @Failure 409 {object} map[string]string "Números esgotados"
// @Failure 500 {object} map[string]string
// @Router /api/v1/codigos/proximo-numero [get]
func (h *CodeHandler) NextNumber(c *gin.Context) {
	numero, err := h.codeService.NextNumber(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, models.NextNumberResponse{Numero: numero})
}
