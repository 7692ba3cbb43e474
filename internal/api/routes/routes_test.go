package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/a2z-projetos/app-codigos-projeto/internal/codigo"
	"github.com/a2z-projetos/app-codigos-projeto/internal/config"
	"github.com/a2z-projetos/app-codigos-projeto/internal/models"
	"github.com/a2z-projetos/app-codigos-projeto/internal/repository/memory"
	"github.com/a2z-projetos/app-codigos-projeto/internal/seed"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	store := memory.New()
	dict, err := seed.Default()
	require.NoError(t, err)
	_, err = seed.Seed(context.Background(), store, dict, zap.NewNop())
	require.NoError(t, err)

	cfg := &config.Config{
		StorageBackend: config.BackendMemory,
		Allocation: config.AllocationConfig{
			MaxAttempts:    3,
			InitialBackoff: time.Millisecond,
			MaxBackoff:     2 * time.Millisecond,
		},
	}
	return SetupRouter(cfg, store, zap.NewNop())
}

func do(r *gin.Engine, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validCode() models.GenerateCodeRequest {
	return models.GenerateCodeRequest{
		Name:          "Projeto ETA Guandu",
		Contratante:   "IGU",
		Empresa:       "A2Z",
		Localidade:    "RJ",
		Servico:       "A",
		Sistema:       "000",
		Componente:    "00",
		Etapa:         "A",
		Disciplina:    "A",
		TipoDocumento: "AT",
		Data:          "2024-05-27",
	}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestCodeLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/v1/codigos", validCode(), "X-User-ID", "u1", "X-User-Name", "Maria")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[codigo.IssuedCode](t, w)
	assert.Equal(t, "IGU-A2Z-RJ-A-000-00-A-A-AT-0001-270524-R0", created.Identifier)
	assert.Equal(t, "Maria", created.AuthorName)
	assert.Equal(t, "u1", created.AuthorID)

	w = do(r, http.MethodGet, "/api/v1/codigos/proximo-numero", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0002", decode[models.NextNumberResponse](t, w).Numero)

	w = do(r, http.MethodGet, "/api/v1/codigos/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.Identifier, decode[codigo.IssuedCode](t, w).Identifier)

	w = do(r, http.MethodGet, "/api/v1/codigos?limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[models.CodeListResponse](t, w)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, 10, list.Limit)

	w = do(r, http.MethodGet, "/api/v1/codigos/"+created.ID+"/legenda", nil)
	require.Equal(t, http.StatusOK, w.Code)
	legend := decode[models.LegendResponse](t, w)
	assert.True(t, legend.Valido)
	assert.Len(t, legend.Itens, codigo.SegmentCount)

	w = do(r, http.MethodDelete, "/api/v1/codigos/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodDelete, "/api/v1/codigos/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/api/v1/codigos/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCodeErrors(t *testing.T) {
	r := newTestRouter(t)

	explicit := validCode()
	explicit.Numero = "7"
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/v1/codigos", explicit).Code)

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"json inválido", `{"name":`, http.StatusBadRequest},
		{"campo obrigatório ausente", func() models.GenerateCodeRequest { c := validCode(); c.Sistema = ""; return c }(), http.StatusBadRequest},
		{"valor fora do dicionário", func() models.GenerateCodeRequest { c := validCode(); c.Contratante = "XYZ"; return c }(), http.StatusBadRequest},
		{"data inválida", func() models.GenerateCodeRequest { c := validCode(); c.Data = "27/05/2024"; return c }(), http.StatusBadRequest},
		{"número não numérico", func() models.GenerateCodeRequest { c := validCode(); c.Numero = "12a"; return c }(), http.StatusBadRequest},
		{"número zero", func() models.GenerateCodeRequest { c := validCode(); c.Numero = "0"; return c }(), http.StatusBadRequest},
		{"número já usado", explicit, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/v1/codigos", tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.NotEmpty(t, decode[map[string]string](t, w)["error"])
		})
	}
}

func TestLegendFormats(t *testing.T) {
	r := newTestRouter(t)
	identifier := "IGU-A2Z-RJ-A-000-00-A-A-AT-0001-270524-R0"

	w := do(r, http.MethodGet, "/api/v1/legenda?codigo="+identifier, nil)
	require.Equal(t, http.StatusOK, w.Code)
	legend := decode[models.LegendResponse](t, w)
	assert.True(t, legend.Valido)
	assert.Equal(t, "IGU - IGUÁ", legend.Itens[0].Text)

	w = do(r, http.MethodGet, "/api/v1/legenda?format=markdown&codigo="+identifier, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/markdown")
	assert.Contains(t, w.Body.String(), "| Campo | Descrição |")

	w = do(r, http.MethodGet, "/api/v1/legenda?format=html&codigo="+identifier, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<table>")

	w = do(r, http.MethodGet, "/api/v1/legenda?codigo="+url.QueryEscape("IGU-A2Z"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[models.LegendResponse](t, w).Valido)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/v1/legenda?format=xml&codigo="+identifier, nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/v1/legenda", nil).Code)
}

func TestOptionEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/v1/opcoes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[map[string][]codigo.CategoryOption](t, w)
	assert.Len(t, all, len(codigo.Categories()))
	assert.NotEmpty(t, all["tipoDocumento"])

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/v1/opcoes/cores", nil).Code)

	option := models.OptionRequest{Value: "SP", Label: "SP - SÃO PAULO"}
	w = do(r, http.MethodPost, "/api/v1/opcoes/localidades", option)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, http.StatusConflict, do(r, http.MethodPost, "/api/v1/opcoes/localidades", option).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/v1/opcoes/localidades", models.OptionRequest{Value: "S-P", Label: "X"}).Code)

	w = do(r, http.MethodGet, "/api/v1/opcoes/localidades", nil)
	require.Equal(t, http.StatusOK, w.Code)
	values := map[string]bool{}
	for _, opt := range decode[[]codigo.CategoryOption](t, w) {
		values[opt.Value] = true
	}
	assert.True(t, values["SP"])

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/api/v1/opcoes/localidades/SP", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/api/v1/opcoes/localidades/SP", nil).Code)
}

func TestContractorEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/v1/contratantes/abreviacao?nome="+url.QueryEscape("Carvalho Hosken"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CAH", decode[models.AbbreviationResponse](t, w).Abreviacao)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/v1/contratantes/abreviacao?nome=123", nil).Code)

	// já existe no dicionário padrão como "CAH - CARVALHO HOSKEN"
	w = do(r, http.MethodPost, "/api/v1/contratantes", models.ContractorRequest{Nome: "Carvalho Hosken"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.False(t, decode[models.ContractorResponse](t, w).Created)

	w = do(r, http.MethodPost, "/api/v1/contratantes", models.ContractorRequest{Nome: "Construtora Nova Era"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.ContractorResponse](t, w)
	assert.True(t, created.Created)
	assert.Equal(t, "CNE", created.Option.Value)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/v1/contratantes", models.ContractorRequest{}).Code)
}

func TestOperationalEndpoints(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/liveness", "/readiness", "/health", "/version"} {
		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, path, nil).Code, path)
	}

	do(r, http.MethodGet, "/api/v1/opcoes", nil)
	w := do(r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "codigos_http_requests_total")

	w = do(r, http.MethodOptions, "/api/v1/codigos", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
