package entity

import "time"

// SnapshotVersion tags exported backup files.
const SnapshotVersion = "2.2.0"

// Snapshot is the backup bundle: every state slice plus export metadata.
// The JSON shape is the on-disk backup file format; restore applies each slice
// independently when it is present and well-typed.
type Snapshot struct {
	Transactions    []Transaction `json:"transactions"`
	Wallets         []Wallet      `json:"wallets"`
	Budgets         []Budget      `json:"budgets"`
	Categories      []string      `json:"categories"`
	FirstDayOfMonth int           `json:"firstDayOfMonth"`
	Messages        []ChatMessage `json:"messages"`
	ExportDate      time.Time     `json:"exportDate"`
	Version         string        `json:"version"`
}
