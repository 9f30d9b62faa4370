package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	simmetrics "github.com/radieske/live-match-feed-poc/internal/simulator/metrics"
	"github.com/radieske/live-match-feed-poc/internal/simulator/registry"
	"github.com/radieske/live-match-feed-poc/pkg/contracts/events"
)

const writeTimeout = 2 * time.Second

// Representa um assinante conectado
// closed marca conexões que falharam na escrita e aguardam remoção
type clientConn struct {
	id     string
	conn   *websocket.Conn
	closed atomic.Bool
}

// Hub gerencia os assinantes do feed e o fan-out de payloads.
// Todo assinante novo recebe primeiro o snapshot initial_state do
// registry; depois disso só recebe o que o clock emitir.
type Hub struct {
	upgrader websocket.Upgrader
	mu       sync.RWMutex
	clients  map[string]*clientConn
	reg      *registry.Registry
	log      *zap.Logger
}

func NewHub(reg *registry.Registry, log *zap.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[string]*clientConn),
		reg:     reg,
		log:     log,
	}
}

// HandleWS aceita a conexão, envia o snapshot e registra o assinante.
// O snapshot sai antes do registro no hub, garantindo que nenhuma
// mensagem de tick chegue antes do initial_state. Mensagens do cliente
// são lidas e descartadas; a leitura só serve pra detectar desconexão.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	snapshot := events.InitialState{Type: "initial_state", Data: h.reg.Snapshot()}
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(snapshot); err != nil {
		h.log.Warn("ws snapshot write failed", zap.Error(err))
		_ = conn.Close()
		return
	}
	simmetrics.WSMessagesSent.Inc()

	c := &clientConn{id: uuid.NewString(), conn: conn}
	h.add(c)

	// Mantém a conexão viva e remove o assinante ao desconectar
	go func() {
		defer func() {
			h.remove(c.id)
			_ = conn.Close()
		}()
		_ = conn.SetReadDeadline(time.Time{})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast entrega um payload a todos os assinantes abertos.
// Melhor esforço: quem não está pronto é pulado nesta mensagem, quem
// falha na escrita é fechado e removido pelo read pump. Nada é
// enfileirado nem reenviado.
func (h *Hub) Broadcast(v any) {
	msg, err := json.Marshal(v)
	if err != nil {
		h.log.Error("payload marshal failed", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, c := range h.clients {
		if c.closed.Load() {
			continue
		}
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.log.Warn("ws write failed", zap.String("client_id", id), zap.Error(err))
			c.closed.Store(true)
			_ = c.conn.Close()
		} else {
			simmetrics.WSMessagesSent.Inc()
		}
	}
}

// Len devolve o número de assinantes registrados
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) add(c *clientConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.id] = c
	simmetrics.WSConnections.Inc()
	h.log.Info("ws client connected", zap.String("client_id", c.id))
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[id]; ok {
		delete(h.clients, id)
		simmetrics.WSConnections.Dec()
		h.log.Info("ws client disconnected", zap.String("client_id", id))
	}
}
