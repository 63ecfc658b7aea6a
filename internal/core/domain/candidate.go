package domain

import (
	"time"

	"github.com/google/uuid"
)

type Candidate struct {
	ID        uuid.UUID `json:"id"`
	Number    string    `json:"number"`
	Name      string    `json:"name"`
	Party     string    `json:"party,omitempty"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// Positions is the fixed set of contestable offices.
var Positions = []string{
	"Presidente",
	"Governador",
	"Senador",
	"Deputado Federal",
	"Deputado Estadual",
	"Vereador",
}

func ValidPosition(position string) bool {
	for _, p := range Positions {
		if p == position {
			return true
		}
	}
	return false
}
