package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/a2z-projetos/app-codigos-projeto/internal/codigo"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository"
	"github.com/a2z-projetos/app-codigos-projeto/internal/services"
)

// statusFor traduz os erros de domínio em status HTTP
func statusFor(err error) int {
	switch {
	case errors.Is(err, codigo.ErrValidation),
		errors.Is(err, codigo.ErrMalformedIdentifier),
		errors.Is(err, codigo.ErrUnknownCategory),
		errors.Is(err, codigo.ErrEmptyName):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrDuplicateNumber),
		errors.Is(err, repository.ErrDuplicateOption),
		errors.Is(err, services.ErrAllocationConflict),
		errors.Is(err, codigo.ErrSequenceExhausted):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondError escreve {"error": "..."} com o status do erro.
// Erros internos são logados e não expõem detalhes ao cliente.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	_ = c.Error(err)

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("Erro ao processar requisição",
			zap.String("route", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(status, gin.H{"error": "Erro interno do servidor"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func parseIntQuery(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}

func parseCategory(c *gin.Context) (codigo.Category, bool) {
	category, err := codigo.ParseCategory(c.Param("categoria"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, false
	}
	return category, true
}
