// O monitor acompanha uma sessão do TerraVoxel de fora do jogo: conecta no
// feed websocket de telemetria e imprime um resumo por quadro, com os
// eventos de edição ocorridos no intervalo.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"TerraVoxel/shared/telemetry"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:4600", "Endereço do jogo (host:porta)")
	raw := flag.Bool("raw", false, "Imprime os quadros JSON crus, um por linha")
	flag.Parse()

	url := fmt.Sprintf("ws://%s/ws", *addr)

	dialer := websocket.Dialer{
		HandshakeTimeout: 5 * time.Second,
	}

	var conn *websocket.Conn
	var err error
	maxRetries := 10
	for i := 0; i < maxRetries; i++ {
		log.Printf("[Monitor] Tentativa de conexão %d/%d em %s...", i+1, maxRetries, url)
		conn, _, err = dialer.Dial(url, nil)
		if err == nil {
			break
		}
		log.Printf("[Monitor] Jogo ainda não está pronto: %v. Aguardando...", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatalf("[Monitor] ERRO CRÍTICO após %d tentativas: %v", maxRetries, err)
	}
	defer conn.Close()

	log.Println("[Monitor] Conectado. Acompanhando a sessão (Ctrl+C para sair).")

	seedShown := false
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			log.Printf("[Monitor] Conexão perdida: %v", err)
			return
		}

		if *raw {
			fmt.Println(string(data))
			continue
		}

		var snap telemetry.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			log.Printf("[Monitor] Quadro inválido: %v", err)
			continue
		}

		if !seedShown && snap.Seed != 0 {
			fmt.Printf("=== TerraVoxel | seed %d ===\n", snap.Seed)
			seedShown = true
		}
		printSnapshot(snap)
	}
}

// printSnapshot imprime uma linha de resumo e os eventos do intervalo.
func printSnapshot(snap telemetry.Snapshot) {
	now := time.Now().Format("15:04:05")
	fmt.Printf("[%s] tick %-6d fps %-3d pos (%.1f, %.1f, %.1f) chunk (%d, %d) | %d chunks, %d pendentes | %d quebrados, %d colocados\n",
		now, snap.Tick, snap.FPS,
		snap.Pos[0], snap.Pos[1], snap.Pos[2],
		snap.Chunk[0], snap.Chunk[1],
		snap.ChunksLoaded, snap.PendingGen,
		snap.BlocksBroken, snap.BlocksPlaced)

	for _, ev := range snap.Events {
		fmt.Printf("        %-7s %-8s em (%d, %d, %d)\n", ev.Kind, ev.Block, ev.X, ev.Y, ev.Z)
	}
}
