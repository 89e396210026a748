package comparing

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-comparison-api/internal/config"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
)

// Comparer expõe o motor de comparação com os parâmetros já resolvidos
type Comparer interface {
	// Normalize valida e normaliza uma tabela bruta com o contrato de campos configurado
	Normalize(table domain.RawTable) (*domain.Dataset, error)

	// Compare calcula os totais das duas janelas e a tabela comparativa
	Compare(dataset *domain.Dataset, selection domain.Selection) (*domain.ComparisonResult, error)

	// DailyTrends monta as séries diárias dos produtos selecionados
	DailyTrends(dataset *domain.Dataset, selection domain.Selection) ([]domain.DailySeries, error)

	// MonthlyTrends monta as séries mensais de uma categoria
	MonthlyTrends(dataset *domain.Dataset, query domain.MonthlyQuery) ([]domain.MonthlySeries, error)

	// MonthWindow retorna a janela mensal configurada
	MonthWindow() domain.MonthWindow
}

// Service implementa Comparer
type Service struct {
	fields domain.FieldNames
	window domain.MonthWindow
}

// NewService cria uma nova instância do motor de comparação
func NewService(cfg *config.Config) Comparer {
	return &Service{
		fields: cfg.Fields,
		window: cfg.MonthlyTrend,
	}
}

func (s *Service) Normalize(table domain.RawTable) (*domain.Dataset, error) {
	dataset, err := Normalize(table, s.fields)
	if err != nil {
		logrus.WithError(err).WithField("rows", len(table.Rows)).Warn("comparison: falha ao normalizar dados")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"rows_read":         dataset.Report.RowsRead,
		"rows_kept":         dataset.Report.RowsKept,
		"dropped_date_rows": dataset.Report.DroppedDateRows,
		"has_product_code":  dataset.HasProductCode,
	}).Info("comparison: dados normalizados")

	return dataset, nil
}

func (s *Service) Compare(dataset *domain.Dataset, selection domain.Selection) (*domain.ComparisonResult, error) {
	if err := validateSelection(dataset, selection); err != nil {
		return nil, err
	}

	current := FilterByRange(dataset.Records, selection.ProductKeys, selection.RangeCurrent)
	prior := FilterByRange(dataset.Records, selection.ProductKeys, selection.RangePrior)

	rows := Compare(
		WindowTotals(current, selection.ProductKeys),
		WindowTotals(prior, selection.ProductKeys),
		selection.ProductKeys,
		dataset.DisplayNames(),
		productCodes(dataset),
	)

	logrus.WithFields(logrus.Fields{
		"products":      len(selection.ProductKeys),
		"range_current": selection.RangeCurrent.String(),
		"range_prior":   selection.RangePrior.String(),
		"rows_current":  len(current),
		"rows_prior":    len(prior),
	}).Debug("comparison: tabela comparativa calculada")

	return &domain.ComparisonResult{
		Selection:      selection,
		Rows:           rows,
		Current:        current,
		Prior:          prior,
		HasProductCode: dataset.HasProductCode,
	}, nil
}

func (s *Service) DailyTrends(dataset *domain.Dataset, selection domain.Selection) ([]domain.DailySeries, error) {
	if err := validateSelection(dataset, selection); err != nil {
		return nil, err
	}

	current := FilterByRange(dataset.Records, selection.ProductKeys, selection.RangeCurrent)
	prior := FilterByRange(dataset.Records, selection.ProductKeys, selection.RangePrior)

	return DailyTrends(current, prior, selection.ProductKeys, dataset.DisplayNames()), nil
}

func (s *Service) MonthlyTrends(dataset *domain.Dataset, query domain.MonthlyQuery) ([]domain.MonthlySeries, error) {
	if dataset == nil {
		return nil, NewEmptyResultError("nenhum dado carregado")
	}

	series, err := MonthlyTrends(dataset.Records, query, s.window)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"category": query.Category,
			"brands":   query.Brands,
		}).Info("comparison: série mensal sem resultado")
		return nil, err
	}

	return series, nil
}

func (s *Service) MonthWindow() domain.MonthWindow {
	return s.window
}

func validateSelection(dataset *domain.Dataset, selection domain.Selection) error {
	if dataset == nil {
		return NewEmptyResultError("nenhum dado carregado")
	}
	if len(selection.ProductKeys) == 0 {
		return fmt.Errorf("é necessário selecionar ao menos um produto")
	}
	return nil
}

func productCodes(dataset *domain.Dataset) map[string]string {
	codes := make(map[string]string)
	if !dataset.HasProductCode {
		return codes
	}
	for _, record := range dataset.Records {
		if record.ProductCode != "" {
			codes[record.ProductKey()] = record.ProductCode
		}
	}
	return codes
}
