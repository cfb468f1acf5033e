package models

// Question is one row of the questoes table.
type Question struct {
	ID         int64  `json:"id"`
	Enunciado  string `json:"enunciado"`
	Disciplina string `json:"disciplina"`
	Tema       string `json:"tema"`
	Nivel      string `json:"nivel"`
}
