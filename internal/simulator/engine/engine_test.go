package engine

// stubRand devolve sequências fixas de valores, segurando no último
// quando a sequência acaba. Permite forçar o resultado de cada sorteio.
type stubRand struct {
	ints   []int
	floats []float64
	i, f   int
}

func (s *stubRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.i]
	if s.i < len(s.ints)-1 {
		s.i++
	}
	return v % n
}

func (s *stubRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.f]
	if s.f < len(s.floats)-1 {
		s.f++
	}
	return v
}

// captureSink acumula os payloads entregues, na ordem de entrega
type captureSink struct {
	payloads []any
}

func (c *captureSink) Broadcast(v any) {
	c.payloads = append(c.payloads, v)
}
