package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lumina-dine/table-order/models"
	"github.com/lumina-dine/table-order/utils"
)

// TableService resolves tables by their customer-facing QR code and owns the
// needs-assistance flag. No state machine here — a flat boolean toggle that
// must stay idempotent under double submission.
type TableService struct {
	DB *gorm.DB
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{DB: db}
}

func (s *TableService) AllTables() ([]models.Table, error) {
	var tables []models.Table
	if err := s.DB.Order("qr_code asc").Find(&tables).Error; err != nil {
		return nil, utils.StoreFault(err)
	}
	return tables, nil
}

func (s *TableService) TableByCode(code string) (*models.Table, error) {
	var table models.Table
	if err := s.DB.Where("qr_code = ?", code).First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("table not found: %s", code)
		}
		return nil, utils.StoreFault(err)
	}
	return &table, nil
}

// SetAssistance sets the flag for the table behind the given QR code. Writing
// the same value twice produces the same observable state as writing it once.
func (s *TableService) SetAssistance(code string, needs bool) (*models.Table, error) {
	table, err := s.TableByCode(code)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(table).Update("needs_assistance", needs).Error; err != nil {
		return nil, utils.StoreFault(err)
	}
	return s.TableByCode(code)
}
