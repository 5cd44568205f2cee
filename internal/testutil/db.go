package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/pro-booking/internal/db"
	"github.com/BruksfildServices01/pro-booking/internal/models"
)

// NewDB abre um sqlite em memória isolado por teste, já migrado. Uma única
// conexão: a transação de reserva serializa o acesso como o FOR UPDATE do
// Postgres.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return gdb
}

func Float(v float64) *float64 { return &v }

func Int(v int) *int { return &v }

// SeedProfessional cria um profissional com expediente 09:00–17:00 em
// todos os dias da semana.
func SeedProfessional(t *testing.T, gdb *gorm.DB, name string) *models.Professional {
	t.Helper()

	p := &models.Professional{Name: name, Address: "Rua Augusta, 100"}
	if err := gdb.Create(p).Error; err != nil {
		t.Fatalf("create professional: %v", err)
	}

	for wd := 0; wd < 7; wd++ {
		wh := models.WorkingHours{
			ProfessionalID: p.ID,
			Weekday:        wd,
			StartTime:      "09:00",
			EndTime:        "17:00",
			IsSelected:     true,
		}
		if err := gdb.Create(&wh).Error; err != nil {
			t.Fatalf("create working hours: %v", err)
		}
	}

	return p
}

// SeedService cria (ou reaproveita) o template e a personalização.
func SeedService(
	t *testing.T,
	gdb *gorm.DB,
	professionalID uint,
	name string,
	price float64,
	customDuration *int,
) *models.ProfessionalService {
	t.Helper()

	tpl := models.ServiceTemplate{Name: name, BasePrice: price, DefaultDurationMinutes: 45}
	if err := gdb.Where("name = ?", name).FirstOrCreate(&tpl).Error; err != nil {
		t.Fatalf("create template: %v", err)
	}

	ps := &models.ProfessionalService{
		ProfessionalID:    professionalID,
		ServiceTemplateID: tpl.ID,
		PriceAdjustment:   price,
		CustomDuration:    customDuration,
		IsActive:          true,
	}
	if err := gdb.Create(ps).Error; err != nil {
		t.Fatalf("create professional service: %v", err)
	}

	return ps
}
