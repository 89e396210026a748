package datasource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/vfg2006/sales-comparison-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-comparison-api/internal/config"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
	"github.com/vfg2006/sales-comparison-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const driveDownloadURL = "https://drive.google.com/uc?id=%s"

var (
	// ErrUnsupportedFormat indica um arquivo que não é CSV nem XLSX
	ErrUnsupportedFormat = errors.New("formato de arquivo não suportado")
	// ErrNoSource indica que nenhuma fonte remota foi configurada
	ErrNoSource = errors.New("nenhuma fonte de dados configurada")
)

// Loader carrega a tabela bruta de vendas a partir de uma fonte externa
type Loader interface {
	Load(ctx context.Context) (domain.RawTable, error)
	Name() string
}

// RemoteCSVLoader baixa um CSV por HTTP, como o compartilhamento público do Google Drive
type RemoteCSVLoader struct {
	url    string
	client *http.Client
}

func NewRemoteCSVLoader(url string, timeout time.Duration) *RemoteCSVLoader {
	return &RemoteCSVLoader{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// DriveURL monta a URL de download direto de um arquivo do Google Drive
func DriveURL(fileID string) string {
	return fmt.Sprintf(driveDownloadURL, fileID)
}

func (l *RemoteCSVLoader) Name() string {
	return "remote-csv"
}

func (l *RemoteCSVLoader) Load(ctx context.Context) (domain.RawTable, error) {
	body, err := utils.MakeRequest(ctx, l.client, l.url)
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("datasource: erro ao baixar %s: %w", l.url, err)
	}
	defer body.Close()

	return ReadCSV(body)
}

// ReadUpload lê um arquivo enviado pelo usuário, escolhendo o formato pela extensão
func ReadUpload(filename string, r io.Reader) (domain.RawTable, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ReadCSV(r)
	case ".xlsx":
		return ReadXLSX(r)
	default:
		return domain.RawTable{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
	}
}

// ReadCSV lê um CSV cuja primeira linha é o cabeçalho
func ReadCSV(r io.Reader) (domain.RawTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("datasource: erro ao ler CSV: %w", err)
	}

	return toTable(records), nil
}

// ReadXLSX lê a primeira planilha de um arquivo XLSX cuja primeira linha é o cabeçalho
func ReadXLSX(r io.Reader) (domain.RawTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("datasource: erro ao abrir XLSX: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.RawTable{}, fmt.Errorf("datasource: arquivo XLSX sem planilhas")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("datasource: erro ao ler planilha %q: %w", sheets[0], err)
	}

	return toTable(rows), nil
}

func toTable(records [][]string) domain.RawTable {
	if len(records) == 0 {
		return domain.RawTable{Columns: []string{}, Rows: []map[string]string{}}
	}

	columns := make([]string, len(records[0]))
	for i, name := range records[0] {
		// BOM de arquivos exportados pelo Excel
		columns[i] = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		row := make(map[string]string, len(columns))
		for i, column := range columns {
			if i < len(record) {
				row[column] = record[i]
			} else {
				row[column] = ""
			}
		}
		rows = append(rows, row)
	}

	return domain.RawTable{Columns: columns, Rows: rows}
}

func isBlank(record []string) bool {
	for _, value := range record {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

// NewLoader cria o carregador da fonte configurada. Retorna ErrNoSource quando
// a fonte é "none" e os dados chegam apenas por upload.
func NewLoader(cfg *config.Config, queryer postgres.Queryer) (Loader, error) {
	switch cfg.DataSource.Kind {
	case config.DataSourceDrive:
		return NewRemoteCSVLoader(DriveURL(cfg.DataSource.DriveFileID), cfg.DataSource.Timeout), nil
	case config.DataSourceHTTP:
		return NewRemoteCSVLoader(cfg.DataSource.URL, cfg.DataSource.Timeout), nil
	case config.DataSourcePostgres:
		if queryer == nil {
			return nil, fmt.Errorf("datasource: conexão com o banco não informada")
		}
		return NewWarehouseLoader(queryer, cfg.Warehouse.Table, cfg.Fields), nil
	default:
		return nil, ErrNoSource
	}
}
