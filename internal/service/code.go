package service

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"sticky-board-api/internal/domain"
)

const maxCodeAttempts = 20

// CodeGenerator returns a candidate board code; uniqueness is checked by the caller.
type CodeGenerator func() string

// NewRandomCodeGenerator draws domain.CodeLength characters uniformly from domain.CodeAlphabet.
func NewRandomCodeGenerator() CodeGenerator {
	var mu sync.Mutex
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return func() string {
		mu.Lock()
		defer mu.Unlock()

		var b strings.Builder
		b.Grow(domain.CodeLength)
		for i := 0; i < domain.CodeLength; i++ {
			b.WriteByte(domain.CodeAlphabet[rng.Intn(len(domain.CodeAlphabet))])
		}
		return b.String()
	}
}
