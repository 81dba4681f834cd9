package monitor

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"TerraVoxel/shared/telemetry"
)

// dial conecta um observador de teste ao servidor montado em httptest.
func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("falha ao conectar em %s: %v", url, err)
	}
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) telemetry.Snapshot {
	t.Helper()
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("falha ao ler quadro: %v", err)
	}
	var snap telemetry.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("quadro não é JSON de Snapshot: %v", err)
	}
	return snap
}

func TestSnapshotOnConnect(t *testing.T) {
	s := newServer("teste")
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	s.Publish(telemetry.Snapshot{Seed: 1337, Tick: 42, ChunksLoaded: 9})

	conn := dial(t, srv)
	defer conn.Close()

	snap := readSnapshot(t, conn)
	if snap.Seed != 1337 || snap.Tick != 42 {
		t.Errorf("quadro inicial = seed %d tick %d, esperado 1337/42", snap.Seed, snap.Tick)
	}
	if snap.ChunksLoaded != 9 {
		t.Errorf("ChunksLoaded = %d, esperado 9", snap.ChunksLoaded)
	}
}

func TestBroadcastDrainsEvents(t *testing.T) {
	s := newServer("teste")
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()
	readSnapshot(t, conn) // quadro de boas-vindas

	s.Emit(telemetry.Event{Tick: 10, Kind: telemetry.EventBreak, X: 1, Y: 2, Z: 3, Block: "pedra"})
	s.Emit(telemetry.Event{Tick: 11, Kind: telemetry.EventPlace, X: 4, Y: 5, Z: 6, Block: "terra"})
	s.Publish(telemetry.Snapshot{Tick: 12, BlocksBroken: 1, BlocksPlaced: 1})

	s.broadcast()

	snap := readSnapshot(t, conn)
	if len(snap.Events) != 2 {
		t.Fatalf("quadro trouxe %d eventos, esperado 2", len(snap.Events))
	}
	if snap.Events[0].Kind != telemetry.EventBreak || snap.Events[0].Block != "pedra" {
		t.Errorf("primeiro evento = %+v, esperado quebra de pedra", snap.Events[0])
	}
	if snap.Events[1].X != 4 || snap.Events[1].Y != 5 || snap.Events[1].Z != 6 {
		t.Errorf("segundo evento em (%d,%d,%d), esperado (4,5,6)", snap.Events[1].X, snap.Events[1].Y, snap.Events[1].Z)
	}

	// O anel foi drenado: o próximo ciclo sai sem eventos.
	s.broadcast()
	snap = readSnapshot(t, conn)
	if len(snap.Events) != 0 {
		t.Errorf("segundo quadro trouxe %d eventos, esperado 0", len(snap.Events))
	}
}

// Endereço vazio desliga a telemetria; o receiver nil precisa ser inofensivo
// para o chamador não se encher de if por todo lado.
func TestDisabledServerIsNoOp(t *testing.T) {
	s := Start("")
	if s != nil {
		t.Fatal("Start(\"\") deveria retornar nil")
	}
	s.Publish(telemetry.Snapshot{Tick: 1})
	s.Emit(telemetry.Event{Kind: telemetry.EventChunk})
	s.Close()
}
