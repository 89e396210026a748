package session

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/sales-comparison-api/internal/domain"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/comparing"
	"github.com/vfg2006/sales-comparison-api/pkg/log"
	"github.com/vfg2006/sales-comparison-api/pkg/utils"
)

// DatasetProvider fornece uma cópia do dataset remoto mais recente
type DatasetProvider interface {
	Current() (*domain.Dataset, bool)
}

// Exporter grava a planilha de comparação
type Exporter interface {
	Write(w io.Writer, bundle domain.ExportBundle) error
}

// Manager conduz as sessões do painel pelas etapas de seleção.
// Cada sessão mantém seu próprio dataset e sua própria seleção.
type Manager interface {
	Create(ctx context.Context) (domain.SessionSnapshot, error)
	Get(ctx context.Context, id string) (domain.SessionSnapshot, error)
	LoadDataset(ctx context.Context, id string, table domain.RawTable) (domain.SessionSnapshot, error)
	ReloadDataset(ctx context.Context, id string) (domain.SessionSnapshot, error)
	Products(ctx context.Context, id string) ([]domain.ProductOption, error)
	Categories(ctx context.Context, id string) ([]domain.CategoryOption, error)
	ConfirmProducts(ctx context.Context, id string, keys []string) (domain.SessionSnapshot, error)
	ChooseRanges(ctx context.Context, id string, current, prior domain.DateRange) (domain.SessionSnapshot, error)
	ConfirmRanges(ctx context.Context, id string) (domain.SessionSnapshot, error)
	Comparison(ctx context.Context, id string) (*domain.ComparisonResult, error)
	DailyTrends(ctx context.Context, id string) ([]domain.DailySeries, error)
	MonthlyTrends(ctx context.Context, id string, query domain.MonthlyQuery) ([]domain.MonthlySeries, error)
	MonthWindow() domain.MonthWindow
	Export(ctx context.Context, id string, w io.Writer) error
	SweepIdle(ctx context.Context, maxIdle time.Duration) int
	Count() int
}

type session struct {
	mu         sync.Mutex
	id         string
	state      domain.SessionState
	selection  domain.Selection
	dataset    *domain.Dataset
	createdAt  time.Time
	lastSeenAt time.Time
}

type Service struct {
	comparer comparing.Comparer
	datasets DatasetProvider
	exporter Exporter
	newID    func() (string, error)
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]*session
}

func NewService(comparer comparing.Comparer, datasets DatasetProvider, exporter Exporter) Manager {
	return &Service{
		comparer: comparer,
		datasets: datasets,
		exporter: exporter,
		newID:    utils.GenerateID,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

func (s *Service) Create(ctx context.Context) (domain.SessionSnapshot, error) {
	id, err := s.newID()
	if err != nil {
		return domain.SessionSnapshot{}, fmt.Errorf("erro ao gerar ID da sessão: %w", err)
	}

	now := s.now()
	sess := &session{
		id:         id,
		state:      domain.SessionStateNoSelection,
		createdAt:  now,
		lastSeenAt: now,
	}
	if dataset, ok := s.datasets.Current(); ok {
		sess.dataset = dataset
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	log.ForSession(ctx, id).WithField("session_has_dataset", sess.dataset != nil).Info("session: sessão criada")

	return sess.snapshot(), nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.SessionSnapshot, error) {
	var snapshot domain.SessionSnapshot
	err := s.withSession(id, func(sess *session) error {
		snapshot = sess.snapshot()
		return nil
	})
	return snapshot, err
}

// LoadDataset normaliza a tabela enviada e a associa à sessão, descartando a seleção anterior
func (s *Service) LoadDataset(ctx context.Context, id string, table domain.RawTable) (domain.SessionSnapshot, error) {
	dataset, err := s.comparer.Normalize(table)
	if err != nil {
		return domain.SessionSnapshot{}, err
	}

	return s.replaceDataset(ctx, id, dataset)
}

// ReloadDataset substitui o dataset da sessão pela versão mais recente da fonte remota
func (s *Service) ReloadDataset(ctx context.Context, id string) (domain.SessionSnapshot, error) {
	dataset, ok := s.datasets.Current()
	if !ok {
		return domain.SessionSnapshot{}, NewSessionError(ErrNoDataset, id, "fonte remota indisponível")
	}

	return s.replaceDataset(ctx, id, dataset)
}

func (s *Service) replaceDataset(ctx context.Context, id string, dataset *domain.Dataset) (domain.SessionSnapshot, error) {
	var snapshot domain.SessionSnapshot
	err := s.withSession(id, func(sess *session) error {
		sess.dataset = dataset
		sess.reset()
		snapshot = sess.snapshot()
		return nil
	})
	if err != nil {
		return snapshot, err
	}

	log.ForSession(ctx, id).WithFields(log.Fields{
		"dataset_rows":         dataset.Report.RowsKept,
		"dataset_dropped_rows": dataset.Report.DroppedDateRows,
	}).Info("session: conjunto de dados carregado")

	return snapshot, nil
}

func (s *Service) Products(ctx context.Context, id string) ([]domain.ProductOption, error) {
	var products []domain.ProductOption
	err := s.withSession(id, func(sess *session) error {
		if sess.dataset == nil {
			return NewSessionError(ErrNoDataset, id, "")
		}
		products = sess.dataset.Products()
		return nil
	})
	return products, err
}

func (s *Service) Categories(ctx context.Context, id string) ([]domain.CategoryOption, error) {
	var categories []domain.CategoryOption
	err := s.withSession(id, func(sess *session) error {
		if sess.dataset == nil {
			return NewSessionError(ErrNoDataset, id, "")
		}
		categories = sess.dataset.Categories()
		return nil
	})
	return categories, err
}

// ConfirmProducts pode ser chamado em qualquer etapa e reinicia a escolha de datas.
// Os intervalos recebem como padrão os limites de data dos produtos escolhidos.
func (s *Service) ConfirmProducts(ctx context.Context, id string, keys []string) (domain.SessionSnapshot, error) {
	var snapshot domain.SessionSnapshot
	err := s.withSession(id, func(sess *session) error {
		if sess.dataset == nil {
			return NewSessionError(ErrNoDataset, id, "")
		}

		unique := dedupe(keys)
		if len(unique) == 0 {
			return NewSessionError(ErrEmptySelection, id, "")
		}

		known := sess.dataset.DisplayNames()
		unknown := make([]string, 0)
		for _, key := range unique {
			if _, ok := known[key]; !ok {
				unknown = append(unknown, key)
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			return NewSessionError(ErrUnknownProduct, id, fmt.Sprintf("%v", unknown))
		}

		minDate, maxDate, _ := sess.dataset.DateBounds(unique)
		bounds := domain.NewDateRange(minDate, maxDate)

		sess.selection = domain.Selection{
			ProductKeys:  unique,
			RangeCurrent: bounds,
			RangePrior:   bounds,
		}
		sess.state = domain.SessionStateProductsChosen
		snapshot = sess.snapshot()
		return nil
	})
	if err == nil {
		log.ForSession(ctx, id).WithField("session_products", len(snapshot.Selection.ProductKeys)).Debug("session: produtos confirmados")
	}
	return snapshot, err
}

// ChooseRanges valida os dois intervalos contra os limites de data dos produtos escolhidos
func (s *Service) ChooseRanges(ctx context.Context, id string, current, prior domain.DateRange) (domain.SessionSnapshot, error) {
	var snapshot domain.SessionSnapshot
	err := s.withSession(id, func(sess *session) error {
		if sess.state == domain.SessionStateNoSelection {
			return NewSessionError(ErrInvalidTransition, id, "selecione os produtos antes das datas")
		}

		current = domain.NewDateRange(current.Start, current.End)
		prior = domain.NewDateRange(prior.Start, prior.End)

		minDate, maxDate, _ := sess.dataset.DateBounds(sess.selection.ProductKeys)
		ranges := []struct {
			name  string
			value domain.DateRange
		}{
			{"Fecha Actual", current},
			{"Fecha Anterior", prior},
		}
		for _, r := range ranges {
			if err := r.value.Validate(); err != nil {
				return NewSessionError(ErrInvalidRange, id, fmt.Sprintf("%s: %s", r.name, err.Error()))
			}
			if r.value.Start.Before(minDate) || r.value.End.After(maxDate) {
				return NewSessionError(ErrInvalidRange, id, fmt.Sprintf(
					"%s: %s fora dos limites %s",
					r.name, r.value.String(), domain.NewDateRange(minDate, maxDate).String(),
				))
			}
		}

		sess.selection.RangeCurrent = current
		sess.selection.RangePrior = prior
		sess.state = domain.SessionStateRangesChosen
		snapshot = sess.snapshot()
		return nil
	})
	return snapshot, err
}

// ConfirmRanges exige que o fim da janela atual seja posterior ao fim da janela anterior
func (s *Service) ConfirmRanges(ctx context.Context, id string) (domain.SessionSnapshot, error) {
	var snapshot domain.SessionSnapshot
	err := s.withSession(id, func(sess *session) error {
		if sess.state != domain.SessionStateRangesChosen && sess.state != domain.SessionStateReady {
			return NewSessionError(ErrInvalidTransition, id, "escolha as datas antes de confirmar")
		}
		if !sess.selection.RangeCurrent.End.After(sess.selection.RangePrior.End) {
			return NewSessionError(ErrRangeOrder, id, "")
		}

		sess.state = domain.SessionStateReady
		snapshot = sess.snapshot()
		return nil
	})
	if err == nil {
		log.ForSession(ctx, id).WithFields(log.Fields{
			"session_range_current": snapshot.Selection.RangeCurrent.String(),
			"session_range_prior":   snapshot.Selection.RangePrior.String(),
		}).Info("session: seleção pronta para comparação")
	}
	return snapshot, err
}

func (s *Service) Comparison(ctx context.Context, id string) (*domain.ComparisonResult, error) {
	var result *domain.ComparisonResult
	err := s.withReadySession(id, func(sess *session) error {
		var err error
		result, err = s.comparer.Compare(sess.dataset, sess.selection)
		return err
	})
	return result, err
}

func (s *Service) DailyTrends(ctx context.Context, id string) ([]domain.DailySeries, error) {
	var series []domain.DailySeries
	err := s.withReadySession(id, func(sess *session) error {
		var err error
		series, err = s.comparer.DailyTrends(sess.dataset, sess.selection)
		return err
	})
	return series, err
}

// MonthlyTrends depende apenas do dataset, não da seleção de produtos
func (s *Service) MonthlyTrends(ctx context.Context, id string, query domain.MonthlyQuery) ([]domain.MonthlySeries, error) {
	var series []domain.MonthlySeries
	err := s.withSession(id, func(sess *session) error {
		if sess.dataset == nil {
			return NewSessionError(ErrNoDataset, id, "")
		}
		var err error
		series, err = s.comparer.MonthlyTrends(sess.dataset, query)
		return err
	})
	return series, err
}

// MonthWindow é a mesma janela para todas as sessões
func (s *Service) MonthWindow() domain.MonthWindow {
	return s.comparer.MonthWindow()
}

func (s *Service) Export(ctx context.Context, id string, w io.Writer) error {
	return s.withReadySession(id, func(sess *session) error {
		result, err := s.comparer.Compare(sess.dataset, sess.selection)
		if err != nil {
			return err
		}

		return s.exporter.Write(w, domain.ExportBundle{
			Fields:         sess.dataset.Fields,
			Columns:        sess.dataset.Columns,
			Current:        result.Current,
			Prior:          result.Prior,
			Rows:           result.Rows,
			HasProductCode: result.HasProductCode,
		})
	})
}

// SweepIdle remove as sessões sem atividade há mais de maxIdle e retorna quantas foram removidas
func (s *Service) SweepIdle(ctx context.Context, maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastSeenAt.Before(cutoff)
		sess.mu.Unlock()

		if idle {
			delete(s.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		log.ForContext(ctx).WithFields(log.Fields{
			"session_removed": removed,
			"session_active":  len(s.sessions),
		}).Info("session: sessões inativas removidas")
	}

	return removed
}

func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// withSession executa fn com a sessão bloqueada e atualiza o horário de atividade
func (s *Service) withSession(id string, fn func(sess *session) error) error {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return NewSessionError(ErrSessionNotFound, id, "")
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.lastSeenAt = s.now()
	return fn(sess)
}

func (s *Service) withReadySession(id string, fn func(sess *session) error) error {
	return s.withSession(id, func(sess *session) error {
		if sess.state != domain.SessionStateReady {
			return NewSessionError(ErrInvalidTransition, id, fmt.Sprintf("estado atual: %s", sess.state))
		}
		return fn(sess)
	})
}

func (sess *session) reset() {
	sess.state = domain.SessionStateNoSelection
	sess.selection = domain.Selection{}
}

func (sess *session) snapshot() domain.SessionSnapshot {
	snapshot := domain.SessionSnapshot{
		ID:         sess.id,
		State:      sess.state,
		Selection:  sess.selection,
		HasDataset: sess.dataset != nil,
		CreatedAt:  sess.createdAt,
		LastSeenAt: sess.lastSeenAt,
	}
	snapshot.Selection.ProductKeys = append([]string(nil), sess.selection.ProductKeys...)

	if sess.dataset != nil {
		report := sess.dataset.Report
		snapshot.Dataset = &report

		if len(sess.selection.ProductKeys) > 0 {
			if minDate, maxDate, ok := sess.dataset.DateBounds(sess.selection.ProductKeys); ok {
				bounds := domain.NewDateRange(minDate, maxDate)
				snapshot.DateBounds = &bounds
			}
		}
	}

	return snapshot
}

func dedupe(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	unique := make([]string, 0, len(keys))
	for _, key := range keys {
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, key)
	}
	return unique
}
