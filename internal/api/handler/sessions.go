package handler

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-comparison-api/infrastructure/datasource"
	"github.com/vfg2006/sales-comparison-api/infrastructure/export"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/session"
	"github.com/vfg2006/sales-comparison-api/pkg/apiErrors"
	"github.com/vfg2006/sales-comparison-api/pkg/log"
	"github.com/vfg2006/sales-comparison-api/pkg/utils"
)

const uploadField = "file"

type productsRequest struct {
	ProductKeys []string `json:"product_keys"`
}

type rangeRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type rangesRequest struct {
	Current rangeRequest `json:"current"`
	Prior   rangeRequest `json:"prior"`
}

type comparisonRowResponse struct {
	domain.ComparisonRow
	Formatted formattedRow `json:"formatted"`
}

type formattedRow struct {
	TotalCurrent string `json:"total_current"`
	TotalPrior   string `json:"total_prior"`
	Difference   string `json:"difference"`
	PctVariation string `json:"pct_variation"`
}

type comparisonResponse struct {
	Selection      domain.Selection        `json:"selection"`
	HasProductCode bool                    `json:"has_product_code"`
	Rows           []comparisonRowResponse `json:"rows"`
}

type dailyTrendsResponse struct {
	Series   []domain.DailySeries `json:"series"`
	Warnings []string             `json:"warnings"`
}

type monthlyTrendsResponse struct {
	Window domain.MonthWindow     `json:"window"`
	Series []domain.MonthlySeries `json:"series"`
}

func sessionID(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}

func CreateSession(manager session.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - CreateSession")

		snapshot, err := manager.Create(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar sessão")
			return
		}

		writeJSON(w, http.StatusCreated, snapshot)
	})
}

func GetSession(manager session.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := manager.Get(r.Context(), sessionID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar sessão")
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	})
}

// UploadDataset recebe um CSV ou XLSX via multipart e substitui o dataset da sessão
func UploadDataset(manager session.Manager, maxBytes int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := sessionID(r)
		logger := log.ForSession(r.Context(), id)
		logger.Info("INIT - UploadDataset")

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		file, header, err := r.FormFile(uploadField)
		if err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				apiErrors.WriteError(w, apiErrors.ErrUploadTooBig, "Arquivo excede o tamanho máximo permitido", map[string]int64{"max_bytes": maxBytes})
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo não enviado no campo 'file'", nil)
			return
		}
		defer file.Close()

		table, err := datasource.ReadUpload(header.Filename, file)
		if err != nil {
			writeServiceError(w, r, errors.Wrap(err, "upload"), "Erro ao ler o arquivo enviado")
			return
		}

		snapshot, err := manager.LoadDataset(r.Context(), id, table)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao carregar o conjunto de dados")
			return
		}

		logger.WithField("dataset_file", header.Filename).Info("Conjunto de dados enviado")
		writeJSON(w, http.StatusOK, snapshot)
	})
}

// ReloadDataset associa à sessão a cópia mais recente do dataset remoto
func ReloadDataset(manager session.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := manager.ReloadDataset(r.Context(), sessionID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao recarregar o conjunto de dados")
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	})
}

func ListProducts(manager session.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		products, err := manager.Products(r.Context(), sessionID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar produtos")
			return
		}

		writeJSON(w, http.StatusOK, products)
	})
}

func ListCategories(manager session.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		categories, err := manager.Categories(r.Context(), sessionID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar categorias")
			return
		}

		writeJSON(w, http.StatusOK, categories)
	})
}

func ConfirmProducts(manager session.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForSession(r.Context(), sessionID(r)).Info("INIT - ConfirmProducts")

		var req productsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		snapshot, err := manager.ConfirmProducts(r.Context(), sessionID(r), req.ProductKeys)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao confirmar produtos")
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	})
}

func ChooseRanges(manager session.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rangesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		current, err := parseRange(req.Current)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha Actual: "+err.Error(), nil)
			return
		}
		prior, err := parseRange(req.Prior)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha Anterior: "+err.Error(), nil)
			return
		}

		snapshot, err := manager.ChooseRanges(r.Context(), sessionID(r), current, prior)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao escolher intervalos")
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	})
}

func ConfirmRanges(manager session.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := manager.ConfirmRanges(r.Context(), sessionID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao confirmar intervalos")
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	})
}

func GetComparison(manager session.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := manager.Comparison(r.Context(), sessionID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar comparação")
			return
		}

		resp := comparisonResponse{
			Selection:      result.Selection,
			HasProductCode: result.HasProductCode,
			Rows:           make([]comparisonRowResponse, 0, len(result.Rows)),
		}
		for _, row := range result.Rows {
			resp.Rows = append(resp.Rows, comparisonRowResponse{
				ComparisonRow: row,
				Formatted: formattedRow{
					TotalCurrent: utils.FormatCurrency(row.TotalCurrent),
					TotalPrior:   utils.FormatCurrency(row.TotalPrior),
					Difference:   utils.FormatCurrency(row.Difference),
					PctVariation: utils.FormatPercent(row.PctVariation),
				},
			})
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

// GetDailyTrends devolve as séries diárias; produtos sem vendas geram um aviso
func GetDailyTrends(manager session.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		series, err := manager.DailyTrends(r.Context(), sessionID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar tendências diárias")
			return
		}

		resp := dailyTrendsResponse{
			Series:   series,
			Warnings: make([]string, 0),
		}
		for _, s := range series {
			if len(s.Years) == 0 {
				resp.Warnings = append(resp.Warnings, "Sem vendas para o produto "+s.DisplayName)
			}
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

// GetMonthlyTrends aceita os filtros category, brand (repetível) e month (repetível, 1-12)
func GetMonthlyTrends(manager session.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query, err := parseMonthlyQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		series, err := manager.MonthlyTrends(r.Context(), sessionID(r), query)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar tendências mensais")
			return
		}

		writeJSON(w, http.StatusOK, monthlyTrendsResponse{
			Window: manager.MonthWindow(),
			Series: series,
		})
	})
}

// ExportComparison gera a planilha em memória para que erros ainda possam virar JSON
func ExportComparison(manager session.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := sessionID(r)
		log.ForSession(r.Context(), id).Info("INIT - ExportComparison")

		var buf bytes.Buffer
		if err := manager.Export(r.Context(), id, &buf); err != nil {
			writeServiceError(w, r, err, "Erro ao exportar comparação")
			return
		}

		w.Header().Set("Content-Type", export.ContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)

		if _, err := buf.WriteTo(w); err != nil {
			log.ForSession(r.Context(), id).WithError(err).Warn("Erro ao enviar planilha")
		}
	})
}

func parseRange(req rangeRequest) (domain.DateRange, error) {
	start, err := utils.ParseDate(strings.TrimSpace(req.Start))
	if err != nil {
		return domain.DateRange{}, errors.Wrap(err, "data de início inválida")
	}
	end, err := utils.ParseDate(strings.TrimSpace(req.End))
	if err != nil {
		return domain.DateRange{}, errors.Wrap(err, "data de fim inválida")
	}
	return domain.NewDateRange(*start, *end), nil
}

func parseMonthlyQuery(r *http.Request) (domain.MonthlyQuery, error) {
	values := r.URL.Query()

	query := domain.MonthlyQuery{
		Category: strings.TrimSpace(values.Get("category")),
		Brands:   make([]string, 0),
		Months:   make([]int, 0),
	}
	for _, brand := range values["brand"] {
		if brand = strings.TrimSpace(brand); brand != "" {
			query.Brands = append(query.Brands, brand)
		}
	}
	for _, raw := range values["month"] {
		month, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || month < 1 || month > 12 {
			return domain.MonthlyQuery{}, errors.Errorf("mês inválido: %q", raw)
		}
		query.Months = append(query.Months, month)
	}

	return query, nil
}
