package idgen_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/atelier-api/internal/application/idgen"
)

func TestOrders_Formato(t *testing.T) {
	s := idgen.Orders()
	assert.Equal(t, "#ORD-1001", s.Next())
	assert.Equal(t, "#ORD-1002", s.Next())
}

func TestObserve_AdelantaContador(t *testing.T) {
	s := idgen.Customers()
	s.Observe("C7")
	s.Observe("C3")
	s.Observe("X99")
	s.Observe("Cabc")
	assert.Equal(t, "C8", s.Next())
}

func TestNext_NoReutilizaTrasBorrado(t *testing.T) {
	// Con len+1 el cliente C3 se repetiría tras borrar C2; el contador no retrocede.
	s := idgen.Customers()
	for _, id := range []string{"C1", "C2", "C3"} {
		s.Observe(id)
	}
	assert.Equal(t, "C4", s.Next())
	assert.Equal(t, "C5", s.Next())
}

func TestNext_Concurrente(t *testing.T) {
	s := idgen.Orders()
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[string]bool{}
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := s.Next()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 50)
}
