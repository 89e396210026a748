// Script de carga do data warehouse de vendas a partir de um CSV ou XLSX.
//
// Uso: go run ./infrastructure/migration/script <arquivo.csv|arquivo.xlsx>
//
// A tabela WAREHOUSE_TABLE é criada quando não existe, com uma coluna de texto
// para cada coluna do arquivo. Os valores são gravados como texto, exatamente
// como vieram do arquivo, e a normalização continua a cargo da API.
package main

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-comparison-api/infrastructure/datasource"
	"github.com/vfg2006/sales-comparison-api/internal/config"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
	"github.com/vfg2006/sales-comparison-api/pkg/log"
)

const progressEvery = 1000

func main() {
	if len(os.Args) < 2 {
		logrus.Fatal("informe o caminho do arquivo de vendas")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	table, err := readFile(os.Args[1])
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao ler arquivo de vendas")
	}
	if err := checkFields(table, cfg.Fields); err != nil {
		logrus.WithError(err).Fatal("ERRO no contrato de campos")
	}

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao abrir conexão com o PostgreSQL")
	}
	defer db.Close()

	startTime := time.Now()
	logrus.Info("Iniciando transação...")

	tx, err := db.Begin()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao iniciar transação")
	}

	if _, err := tx.Exec(createTableStatement(cfg.Warehouse.Table, table.Columns)); err != nil {
		rollback(tx)
		logrus.WithError(err).Fatal("ERRO ao criar tabela")
	}

	inserted, err := copyRows(tx, cfg.Warehouse.Table, table)
	if err != nil {
		rollback(tx)
		logrus.WithError(err).Fatal("ERRO ao inserir linhas")
	}

	if err := tx.Commit(); err != nil {
		logrus.WithError(err).Fatal("ERRO ao confirmar transação")
	}

	logrus.WithFields(logrus.Fields{
		"dataset_rows": inserted,
		"table":        cfg.Warehouse.Table,
		"elapsed":      time.Since(startTime).String(),
	}).Info("Carga concluída")
}

func readFile(path string) (domain.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.RawTable{}, err
	}
	defer f.Close()

	return datasource.ReadUpload(path, f)
}

// checkFields garante que a API conseguirá ler a tabela carregada
func checkFields(table domain.RawTable, fields domain.FieldNames) error {
	missing := make([]string, 0)
	for _, name := range fields.Required() {
		if !table.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("colunas ausentes no arquivo: %s", strings.Join(missing, ", "))
	}
	return nil
}

func createTableStatement(table string, columns []string) string {
	defs := make([]string, 0, len(columns))
	for _, column := range columns {
		defs = append(defs, pq.QuoteIdentifier(column)+" TEXT")
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", pq.QuoteIdentifier(table), strings.Join(defs, ", "))
}

func copyRows(tx *sql.Tx, table string, raw domain.RawTable) (int, error) {
	stmt, err := tx.Prepare(pq.CopyIn(table, raw.Columns...))
	if err != nil {
		return 0, fmt.Errorf("erro ao preparar COPY: %w", err)
	}

	values := make([]any, len(raw.Columns))
	for i, row := range raw.Rows {
		for j, column := range raw.Columns {
			values[j] = row[column]
		}
		if _, err := stmt.Exec(values...); err != nil {
			stmt.Close()
			return i, fmt.Errorf("linha %d: %w", i+1, err)
		}
		if i > 0 && i%progressEvery == 0 {
			logrus.Infof("Progresso: %d/%d linhas processadas", i, len(raw.Rows))
		}
	}

	// Exec sem argumentos envia o COPY acumulado
	if _, err := stmt.Exec(); err != nil {
		stmt.Close()
		return 0, fmt.Errorf("erro ao finalizar COPY: %w", err)
	}

	return len(raw.Rows), stmt.Close()
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		logrus.WithError(err).Error("ERRO ao reverter transação")
		return
	}
	logrus.Info("Transação revertida")
}
