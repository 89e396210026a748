package datasource

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-comparison-api/internal/config"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const salesCSV = "\ufeffDia DiaID,Plu PluCD,Plu DESC,Marca DESC,$ Ventas sin impuestos Totales\n" +
	"2023-09-30,1001,Leche,Lala,\"$1,234.50\"\n" +
	",,,,\n" +
	"2023-10-01,1002,Yogurt,Danone\n"

func TestReadCSV(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(salesCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"Dia DiaID", "Plu PluCD", "Plu DESC", "Marca DESC", "$ Ventas sin impuestos Totales"}, table.Columns)
	require.Len(t, table.Rows, 2, "linhas em branco são ignoradas")
	assert.Equal(t, "$1,234.50", table.Rows[0]["$ Ventas sin impuestos Totales"])
	assert.Equal(t, "", table.Rows[1]["$ Ventas sin impuestos Totales"], "colunas faltantes viram texto vazio")
}

func TestReadUpload(t *testing.T) {
	xlsx := excelize.NewFile()
	sheet := xlsx.GetSheetName(0)
	require.NoError(t, xlsx.SetSheetRow(sheet, "A1", &[]any{"Dia DiaID", "Plu DESC", "Marca DESC", "$ Ventas sin impuestos Totales"}))
	require.NoError(t, xlsx.SetSheetRow(sheet, "A2", &[]any{"2024-01-05", "Pan", "Bimbo", "10.5"}))
	var xlsxBuf bytes.Buffer
	require.NoError(t, xlsx.Write(&xlsxBuf))

	tests := []struct {
		name     string
		filename string
		content  []byte
		validate func(t *testing.T, table domain.RawTable, err error)
	}{
		{
			name:     "CSV",
			filename: "ventas.CSV",
			content:  []byte(salesCSV),
			validate: func(t *testing.T, table domain.RawTable, err error) {
				require.NoError(t, err)
				assert.Len(t, table.Rows, 2)
			},
		},
		{
			name:     "XLSX - primeira planilha",
			filename: "ventas.xlsx",
			content:  xlsxBuf.Bytes(),
			validate: func(t *testing.T, table domain.RawTable, err error) {
				require.NoError(t, err)
				assert.True(t, table.HasColumn("Marca DESC"))
				require.Len(t, table.Rows, 1)
				assert.Equal(t, "Bimbo", table.Rows[0]["Marca DESC"])
				assert.Equal(t, "10.5", table.Rows[0]["$ Ventas sin impuestos Totales"])
			},
		},
		{
			name:     "Formato não suportado",
			filename: "ventas.json",
			content:  []byte("{}"),
			validate: func(t *testing.T, table domain.RawTable, err error) {
				assert.True(t, errors.Is(err, ErrUnsupportedFormat))
			},
		},
		{
			name:     "XLSX corrompido",
			filename: "ventas.xlsx",
			content:  []byte("not a zip"),
			validate: func(t *testing.T, table domain.RawTable, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ReadUpload(tt.filename, bytes.NewReader(tt.content))
			tt.validate(t, table, err)
		})
	}
}

func TestRemoteCSVLoader_Load(t *testing.T) {
	t.Run("Sucesso", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			w.Write([]byte(salesCSV))
		}))
		defer server.Close()

		table, err := NewRemoteCSVLoader(server.URL, 5*time.Second).Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, table.Rows, 2)
	})

	t.Run("Status diferente de 200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := NewRemoteCSVLoader(server.URL, 5*time.Second).Load(context.Background())
		assert.Error(t, err)
	})
}

func TestNewLoader(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		validate func(t *testing.T, loader Loader, err error)
	}{
		{
			name: "Google Drive",
			cfg:  config.Config{DataSource: config.DataSource{Kind: config.DataSourceDrive, DriveFileID: "abc123"}},
			validate: func(t *testing.T, loader Loader, err error) {
				require.NoError(t, err)
				remote, ok := loader.(*RemoteCSVLoader)
				require.True(t, ok)
				assert.Equal(t, "https://drive.google.com/uc?id=abc123", remote.url)
			},
		},
		{
			name: "URL HTTP",
			cfg:  config.Config{DataSource: config.DataSource{Kind: config.DataSourceHTTP, URL: "http://example.com/ventas.csv"}},
			validate: func(t *testing.T, loader Loader, err error) {
				require.NoError(t, err)
				assert.Equal(t, "remote-csv", loader.Name())
			},
		},
		{
			name: "Postgres sem conexão",
			cfg:  config.Config{DataSource: config.DataSource{Kind: config.DataSourcePostgres}},
			validate: func(t *testing.T, loader Loader, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "Sem fonte",
			cfg:  config.Config{DataSource: config.DataSource{Kind: config.DataSourceNone}},
			validate: func(t *testing.T, loader Loader, err error) {
				assert.True(t, errors.Is(err, ErrNoSource))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, err := NewLoader(&tt.cfg, nil)
			tt.validate(t, loader, err)
		})
	}
}

func TestWarehouseLoader_buildQuery(t *testing.T) {
	loader := NewWarehouseLoader(nil, "daily_product_sales", domain.FieldNames{
		Date:               "Dia DiaID",
		ProductDescription: "Plu DESC",
		Brand:              "Marca DESC",
		Amount:             "$ Ventas sin impuestos Totales",
	})

	query, args, err := loader.buildQuery()
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Equal(t,
		`SELECT "Dia DiaID", "Plu DESC", "Marca DESC", "$ Ventas sin impuestos Totales" FROM "daily_product_sales" ORDER BY "Dia DiaID" ASC`,
		query,
	)
}
