// Package monitor expõe a telemetria da sessão por websocket: qualquer
// cliente conectado em /ws recebe um Snapshot JSON por segundo com os
// eventos de edição acumulados desde o quadro anterior. A thread do tick
// só produz (Publish/Emit); a goroutine de broadcast consome e transmite.
package monitor

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"TerraVoxel/shared/telemetry"
	"TerraVoxel/shared/util"
)

const (
	broadcastInterval = time.Second
	writeTimeout      = 5 * time.Second
	eventRingSize     = 1024
)

// Server transmite snapshots para os observadores conectados.
type Server struct {
	addr     string
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	state   telemetry.Snapshot

	// Anel produtor-único/consumidor-único: tick produz, broadcast consome.
	events *util.RingBuffer[telemetry.Event]

	httpSrv *http.Server
	done    chan struct{}
}

// Start sobe o servidor no endereço dado. Endereço vazio desliga a
// telemetria: retorna nil, e todos os métodos aceitam receiver nil.
func Start(addr string) *Server {
	if addr == "" {
		return nil
	}

	s := newServer(addr)
	s.httpSrv = &http.Server{Addr: addr, Handler: s.Handler()}

	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[Monitor] servidor encerrou: %v", err)
		}
	}()
	go s.broadcastLoop()

	log.Printf("[Monitor] telemetria em ws://%s/ws", addr)
	return s
}

func newServer(addr string) *Server {
	return &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]bool),
		events:  util.NewRingBuffer[telemetry.Event](eventRingSize),
		done:    make(chan struct{}),
	}
}

// Handler devolve o mux com o endpoint /ws (separado do Start para os testes
// montarem o servidor sobre httptest).
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	// Quadro imediato na conexão para o cliente não esperar o próximo ciclo.
	hello, _ := json.Marshal(s.state)
	s.mu.Unlock()

	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	_ = conn.WriteMessage(websocket.TextMessage, hello)

	log.Printf("[Monitor] observador conectado: %s", conn.RemoteAddr())

	// Loop de leitura só para detectar o fechamento; mensagens são ignoradas.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}

// Publish atualiza o estado corrente. Chamado pela thread do tick; os
// eventos pendentes são anexados pelo broadcast, não aqui.
func (s *Server) Publish(snap telemetry.Snapshot) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.state = snap
	s.mu.Unlock()
}

// Emit enfileira um evento de edição. Anel cheio descarta: telemetria é
// deliberadamente com perdas, nunca um freio no tick.
func (s *Server) Emit(ev telemetry.Event) {
	if s == nil {
		return
	}
	_ = s.events.Enqueue(ev)
}

func (s *Server) broadcastLoop() {
	ticker := time.NewTicker(broadcastInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.broadcast()
		}
	}
}

// broadcast drena o anel de eventos, monta o quadro e o envia a todos os
// observadores. Conexões com erro de escrita são derrubadas na hora.
func (s *Server) broadcast() {
	var events []telemetry.Event
	for {
		ev, err := s.events.Dequeue()
		if err != nil {
			break
		}
		events = append(events, ev)
	}

	s.mu.Lock()
	if len(s.clients) == 0 {
		s.mu.Unlock()
		return
	}
	snap := s.state
	snap.Events = events
	data, err := json.Marshal(snap)
	if err != nil {
		s.mu.Unlock()
		return
	}

	var dead []*websocket.Conn
	for conn := range s.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			dead = append(dead, conn)
		}
	}
	for _, conn := range dead {
		delete(s.clients, conn)
		conn.Close()
	}
	s.mu.Unlock()
}

// Close derruba as conexões e encerra o servidor HTTP.
func (s *Server) Close() {
	if s == nil {
		return
	}
	close(s.done)

	s.mu.Lock()
	for conn := range s.clients {
		conn.Close()
	}
	s.clients = make(map[*websocket.Conn]bool)
	s.mu.Unlock()

	if s.httpSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = s.httpSrv.Shutdown(ctx)
	}
	log.Println("[Monitor] telemetria encerrada")
}
