// Package index persists the declarations of translated files in a sqlite
// database so they can be looked up by name later.
package index

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/btouchard/wpl/internal/compiler/scope"
)

const (
	// EnvPath overrides DefaultPath.
	EnvPath     = "WPL_INDEX_DB"
	DefaultPath = "wpl.db"
)

// PathFromEnv returns the index location configured in the environment.
func PathFromEnv() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Symbol is one indexed declaration.
type Symbol struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	File      string    `gorm:"index" json:"file"`
	Name      string    `gorm:"index" json:"name"`
	Type      string    `json:"type"`
	Kind      string    `json:"kind"`
	Depth     int       `json:"depth"`
	Line      int       `json:"line"`
	Column    int       `json:"column"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks the fields a lookup depends on.
func (s *Symbol) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name: required")
	}
	switch scope.Kind(s.Kind) {
	case scope.KindVar, scope.KindParam, scope.KindFunc:
	default:
		return fmt.Errorf("kind: unknown kind %q", s.Kind)
	}
	if s.Line < 1 || s.Column < 1 {
		return fmt.Errorf("position: invalid %d:%d", s.Line, s.Column)
	}
	return nil
}

// BeforeCreate is a GORM hook that rejects invalid rows
func (s *Symbol) BeforeCreate(tx *gorm.DB) error {
	return s.Validate()
}

func (s Symbol) String() string {
	return fmt.Sprintf("%s:%d:%d: %s %s %s", s.File, s.Line, s.Column, s.Kind, s.Type, s.Name)
}

type Store struct {
	db *gorm.DB
}

// Open opens or creates the index at path and migrates its schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening index %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Symbol{}); err != nil {
		return nil, fmt.Errorf("migrating index %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Record replaces every symbol previously recorded for file.
func (s *Store) Record(file string, decls []scope.Declaration) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("file = ?", file).Delete(&Symbol{}).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", file, err)
		}
		if len(decls) == 0 {
			return nil
		}

		syms := make([]Symbol, len(decls))
		for i, d := range decls {
			syms[i] = Symbol{
				File:   file,
				Name:   d.Name,
				Type:   d.Type,
				Kind:   string(d.Kind),
				Depth:  d.Depth,
				Line:   d.Pos.Line,
				Column: d.Pos.Column,
			}
		}
		if err := tx.Create(&syms).Error; err != nil {
			return fmt.Errorf("recording %s: %w", file, err)
		}
		return nil
	})
}

// Lookup returns every symbol named name, ordered by location.
func (s *Store) Lookup(name string) ([]Symbol, error) {
	var syms []Symbol
	err := s.db.Where("name = ?", name).
		Order("file").
		Order("line").
		Order(clause.OrderByColumn{Column: clause.Column{Name: "column"}}).
		Find(&syms).Error
	if err != nil {
		return nil, err
	}
	return syms, nil
}

// Files lists the indexed files in order.
func (s *Store) Files() ([]string, error) {
	var files []string
	if err := s.db.Model(&Symbol{}).Distinct("file").Order("file").Pluck("file", &files).Error; err != nil {
		return nil, err
	}
	return files, nil
}
