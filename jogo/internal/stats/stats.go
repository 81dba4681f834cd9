// Package stats registra sessões de jogo em um banco SQLite ao lado do
// executável. São estatísticas de interface (quanto tempo, quantos blocos),
// nunca estado de mundo: o terreno continua só em memória, reproduzível
// a partir da seed.
package stats

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Session é o esquema de uma sessão de jogo encerrada.
type Session struct {
	ID              uint `gorm:"primaryKey"`
	Seed            int64
	DurationSeconds float64
	BlocksBroken    int
	BlocksPlaced    int
	ChunksGenerated int
	CreatedAt       time.Time
}

// Store encapsula a conexão gorm.
type Store struct {
	db *gorm.DB
}

// Open abre (ou cria) o banco no caminho dado e roda a migração. Caminhos
// relativos são resolvidos ao lado do executável, como o config.json.
func Open(path string) (*Store, error) {
	if !filepath.IsAbs(path) {
		if execPath, err := os.Executable(); err == nil {
			path = filepath.Join(filepath.Dir(execPath), path)
		}
	}

	// Logger silencioso: erros de IO chegam pelos retornos, não pelo stdout.
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&Session{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}

	log.Printf("[Stats] banco de sessões aberto: %s", path)
	return &Store{db: db}, nil
}

// Record grava a sessão encerrada.
func (s *Store) Record(sess Session) error {
	if err := s.db.Create(&sess).Error; err != nil {
		return fmt.Errorf("falha ao gravar sessão: %w", err)
	}
	return nil
}

// Recent retorna as últimas n sessões, da mais nova para a mais antiga.
func (s *Store) Recent(n int) ([]Session, error) {
	var sessions []Session
	if err := s.db.Order("id desc").Limit(n).Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("falha ao ler sessões: %w", err)
	}
	return sessions, nil
}

// Close fecha a conexão com o banco de sessões.
func (s *Store) Close() {
	sqlDB, _ := s.db.DB()
	if sqlDB != nil {
		sqlDB.Close()
	}
}

// LogRecent escreve um resumo das últimas sessões no log de arranque.
func (s *Store) LogRecent(n int) {
	sessions, err := s.Recent(n)
	if err != nil {
		log.Printf("[Stats] não foi possível ler sessões anteriores: %v", err)
		return
	}
	for _, sess := range sessions {
		log.Printf("[Stats] sessão #%d: seed=%d %.0fs, %d quebrados, %d colocados, %d chunks",
			sess.ID, sess.Seed, sess.DurationSeconds,
			sess.BlocksBroken, sess.BlocksPlaced, sess.ChunksGenerated)
	}
}
