package domain

import "time"

// SessionState representa a etapa da sessão interativa
type SessionState string

const (
	SessionStateNoSelection    SessionState = "no_selection"
	SessionStateProductsChosen SessionState = "products_chosen"
	SessionStateRangesChosen   SessionState = "ranges_chosen"
	SessionStateReady          SessionState = "ready"
)

// SessionSnapshot é a visão somente leitura de uma sessão
type SessionSnapshot struct {
	ID         string               `json:"id"`
	State      SessionState         `json:"state"`
	Selection  Selection            `json:"selection"`
	HasDataset bool                 `json:"has_dataset"`
	Dataset    *NormalizationReport `json:"dataset,omitempty"`
	DateBounds *DateRange           `json:"date_bounds,omitempty"` // datas válidas para os produtos selecionados
	CreatedAt  time.Time            `json:"created_at"`
	LastSeenAt time.Time            `json:"last_seen_at"`
}
