package codigo

import "time"

// IssuedCode é um código emitido e persistido no registro.
// Numero repete o 10º segmento de Identifier; é a coluna com restrição de
// unicidade no armazenamento.
type IssuedCode struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Identifier string    `json:"code"`
	Numero     string    `json:"numero"`
	AuthorID   string    `json:"user_id,omitempty"`
	AuthorName string    `json:"user_name"`
	CreatedAt  time.Time `json:"created_at"`
}
