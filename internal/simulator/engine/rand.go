package engine

import (
	"math/rand"
	"time"
)

// Rand abstrai a fonte de aleatoriedade da simulação, permitindo
// sequências determinísticas em teste. *math/rand.Rand satisfaz a
// interface direto.
//
// Uma instância não é segura para uso concorrente: clock e spawner
// devem receber fontes separadas.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand cria uma fonte semeada pelo relógio
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
