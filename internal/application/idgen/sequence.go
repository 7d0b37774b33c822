// Package idgen genera identificadores legibles (#ORD-1001, C7) con un contador
// monotónico: un número ya entregado no se vuelve a usar aunque el registro se borre.
package idgen

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Sequence contador con prefijo y ancho mínimo.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	width  int
	last   int64
}

// NewSequence crea una secuencia; el primer valor será floor+1.
func NewSequence(prefix string, width int, floor int64) *Sequence {
	return &Sequence{prefix: prefix, width: width, last: floor}
}

// Orders secuencia de ordens de serviço: #ORD-1001, #ORD-1002...
func Orders() *Sequence { return NewSequence("#ORD-", 4, 1000) }

// Customers secuencia de clientes: C1, C2...
func Customers() *Sequence { return NewSequence("C", 0, 0) }

// Observe adelanta el contador si id (con el mismo prefijo) es mayor que el último entregado.
// IDs con otro formato se ignoran.
func (s *Sequence) Observe(id string) {
	rest, ok := strings.CutPrefix(id, s.prefix)
	if !ok {
		return
	}
	n, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return
	}
	s.mu.Lock()
	if n > s.last {
		s.last = n
	}
	s.mu.Unlock()
}

// Next entrega el siguiente identificador.
func (s *Sequence) Next() string {
	s.mu.Lock()
	s.last++
	n := s.last
	s.mu.Unlock()
	return fmt.Sprintf("%s%0*d", s.prefix, s.width, n)
}
