package domain

import "time"

// CartEntry is one row of the append-only purchase ledger. Entries are
// created on cart-add and never updated or deleted.
type CartEntry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	QtdItens   int       `json:"qtd_itens"`
	TotalValue float64   `json:"total_value"`
	CreatedAt  time.Time `json:"created_at"`
}

// PurchaseSummary is the derived per-account rollup of cart entries. It is
// computed on demand, never stored.
type PurchaseSummary struct {
	UserID     string  `json:"user_id"`
	Login      string  `json:"login"`
	TotalItems int     `json:"total_items"`
	TotalValue float64 `json:"total_value"`
}
