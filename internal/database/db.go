package database

import (
	"fmt"
	"sync/atomic"

	"remstroy-site/internal/models"

	"github.com/glebarez/sqlite"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Store — хранилище заявок поверх sqlite-файла. Соединение не кэшируется:
// каждая операция открывает своё и закрывает его по завершении, так что
// параллельные запросы не делят изменяемое состояние.
type Store struct {
	path     string
	failures atomic.Uint64
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) open() (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(s.path), &gorm.Config{
		Logger: gormlogger.Discard,
	})
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Initialize создаёт файл и схему, если их ещё нет. Повторный вызов
// безопасен: существующие записи не трогаются, недостающие колонки
// добавляются.
func (s *Store) Initialize() error {
	db, err := s.open()
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer closeDB(db)

	if err := db.AutoMigrate(&models.Application{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

// Insert добавляет одну заявку. Ошибка логируется и считается здесь же;
// для вызывающего кода запись best-effort.
func (s *Store) Insert(app *models.Application) error {
	db, err := s.open()
	if err != nil {
		s.failures.Add(1)
		log.Errorf("failed to open database: %v", err)
		return err
	}
	defer closeDB(db)

	if err := db.Create(app).Error; err != nil {
		s.failures.Add(1)
		log.Errorf("failed to save application: %v", err)
		return err
	}

	log.Infof("saved application from: %s", app.FullName)
	return nil
}

// List возвращает заявки, новые первыми.
func (s *Store) List(limit int) ([]models.Application, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer closeDB(db)

	var apps []models.Application
	if err := db.Order("created_at desc, id desc").Limit(limit).Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *Store) Count() (int64, error) {
	db, err := s.open()
	if err != nil {
		return 0, err
	}
	defer closeDB(db)

	var count int64
	if err := db.Model(&models.Application{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Failures — сколько вставок было проглочено с ошибкой за время жизни процесса.
func (s *Store) Failures() uint64 {
	return s.failures.Load()
}
