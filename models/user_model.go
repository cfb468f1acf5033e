package models

// User is one row of the usuarios table.
//
// Senha is stored and returned in plain text. This mirrors the existing
// database contract and must not be relied on by any real deployment.
type User struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}
