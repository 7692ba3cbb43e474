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

// ContractorHandler gerencia o cadastro de contratantes
type ContractorHandler struct {
	optionService *services.OptionService
	validator     *validator.Validate
	logger        *zap.Logger
}

// NewContractorHandler cria um novo handler de contratantes
func NewContractorHandler(optionService *services.OptionService, logger *zap.Logger) *ContractorHandler {
	return &ContractorHandler{
		optionService: optionService,
		validator:     validator.New(),
		logger:        logger,
	}
}

// CreateContractor godoc
// @Summary Cadastra um contratante pelo nome completo
// @Description Gera a abreviação automaticamente. Se já existe um contratante com o mesmo rótulo, ele é retornado com status 200 e created=false.
// @Tags contratantes
// @Accept json
// @Produce json
// @Param contratante body models.ContractorRequest true "Nome completo"
// @Success 201 {object} models.ContractorResponse
// @Success 200 {object} models.ContractorResponse "Contratante já cadastrado"
// @Failure 400 {object} map[string]string "Nome vazio após normalização"
// @Failure 409 {object} map[string]string "Abreviação já usada por outro contratante"
// @Failure 500 {object} map[string]string
// @Router /api/v1/contratantes [post]
func (h *ContractorHandler) CreateContractor(c *gin.Context) {
	var request models.ContractorRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}
	if err := h.validator.Struct(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validação falhou: " + err.Error()})
		return
	}

	opt, created, err := h.optionService.AddContractor(c.Request.Context(), request.Nome)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, models.ContractorResponse{Option: opt, Created: created})
}

// PreviewAbbreviation godoc
// @Summary Prévia da abreviação de um contratante
// @Tags contratantes
// @Produce json
// @Param nome query string true "Nome completo"
// @Success 200 {object} models.AbbreviationResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/contratantes/abreviacao [get]
func (h *ContractorHandler) PreviewAbbreviation(c *gin.Context) {
	nome := c.Query("nome")
	abbreviation, err := codigo.Abbreviate(nome)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.AbbreviationResponse{
		Nome:       nome,
		Abreviacao: abbreviation,
		Rotulo:     codigo.ContractorLabel(abbreviation, nome),
	})
}
