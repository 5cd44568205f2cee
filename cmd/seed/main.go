package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pro-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/pro-booking/internal/db"
	"github.com/BruksfildServices01/pro-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/pro-booking/internal/logs"
	"github.com/BruksfildServices01/pro-booking/internal/middleware"
	"github.com/BruksfildServices01/pro-booking/internal/models"
)

var categories = []models.Category{
	{Name: "Barbearia", Slug: "barbearia", Icon: "scissors", IsActive: true},
	{Name: "Salão", Slug: "salao", Icon: "sparkles", IsActive: true},
	{Name: "Estética", Slug: "estetica", Icon: "leaf", IsActive: true},
	{Name: "Manicure", Slug: "manicure", Icon: "hand", IsActive: true},
}

var templates = []models.ServiceTemplate{
	{Name: "Corte", BasePrice: 50, DefaultDurationMinutes: 45},
	{Name: "Barba", BasePrice: 35, DefaultDurationMinutes: 30},
	{Name: "Coloração", BasePrice: 120, DefaultDurationMinutes: 90},
	{Name: "Escova", BasePrice: 60, DefaultDurationMinutes: 45},
	{Name: "Limpeza de pele", BasePrice: 150, DefaultDurationMinutes: 60},
	{Name: "Manicure", BasePrice: 40, DefaultDurationMinutes: 40},
}

func main() {
	cfg := config.Load()
	log := logs.New(cfg)

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Error("database", slog.Any("error", err))
		os.Exit(1)
	}

	count := 50
	if v := os.Getenv("SEED_PROFESSIONALS"); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &count); err != nil || count <= 0 {
			log.Error("invalid SEED_PROFESSIONALS", slog.String("value", v))
			os.Exit(1)
		}
	}

	_ = gofakeit.Seed(time.Now().UnixNano())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := seed(ctx, db, count); err != nil {
		log.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}

	// tokens de demonstração para chamar a API
	proToken, _ := middleware.SignToken(cfg.JWTSecret, 1, "professional", 24*time.Hour)
	customerToken, _ := middleware.SignToken(cfg.JWTSecret, 1000, "customer", 24*time.Hour)

	log.Info("seed complete",
		slog.Int("professionals", count),
		slog.String("professional_token", proToken),
		slog.String("customer_token", customerToken),
	)
}

func seed(ctx context.Context, db *gorm.DB, count int) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// --------------------------------------------------
		// 1. Catálogo compartilhado
		// --------------------------------------------------
		for i := range categories {
			if err := tx.Where("slug = ?", categories[i].Slug).FirstOrCreate(&categories[i]).Error; err != nil {
				return fmt.Errorf("category %s: %w", categories[i].Slug, err)
			}
		}
		for i := range templates {
			if err := tx.Where("name = ?", templates[i].Name).FirstOrCreate(&templates[i]).Error; err != nil {
				return fmt.Errorf("template %s: %w", templates[i].Name, err)
			}
		}

		// --------------------------------------------------
		// 2. Profissionais em torno de São Paulo
		// --------------------------------------------------
		for i := 0; i < count; i++ {
			cat := categories[gofakeit.Number(0, len(categories)-1)]
			lat := gofakeit.Float64Range(-23.70, -23.45)
			lon := gofakeit.Float64Range(-46.80, -46.45)

			p := models.Professional{
				Name:       gofakeit.Name(),
				Address:    gofakeit.Street(),
				Phone:      gofakeit.Phone(),
				Latitude:   &lat,
				Longitude:  &lon,
				CategoryID: &cat.ID,
			}
			if err := tx.Create(&p).Error; err != nil {
				return fmt.Errorf("professional: %w", err)
			}

			if err := seedWorkingHours(tx, p.ID); err != nil {
				return err
			}
			if err := seedServices(tx, &p); err != nil {
				return err
			}
		}

		return nil
	})
}

// seg a sex 09–18, sábado 09–13, domingo fechado
func seedWorkingHours(tx *gorm.DB, professionalID uint) error {
	hours := make([]models.WorkingHours, 0, 7)
	for wd := 0; wd < 7; wd++ {
		wh := models.WorkingHours{ProfessionalID: professionalID, Weekday: wd}
		switch {
		case wd >= 1 && wd <= 5:
			wh.IsSelected, wh.StartTime, wh.EndTime = true, "09:00", "18:00"
		case wd == 6:
			wh.IsSelected, wh.StartTime, wh.EndTime = true, "09:00", "13:00"
		}
		hours = append(hours, wh)
	}
	return tx.Create(&hours).Error
}

func seedServices(tx *gorm.DB, p *models.Professional) error {
	n := gofakeit.Number(1, 4)
	idx := make([]int, len(templates))
	for i := range idx {
		idx[i] = i
	}
	gofakeit.ShuffleInts(idx)

	created := make([]models.ProfessionalService, 0, n)
	for _, i := range idx[:n] {
		tpl := templates[i]
		price := tpl.BasePrice + float64(gofakeit.Number(-10, 30))

		ps := models.ProfessionalService{
			ProfessionalID:    p.ID,
			ServiceTemplateID: tpl.ID,
			PriceAdjustment:   price,
			IsActive:          true,
		}
		if gofakeit.Bool() {
			d := tpl.DefaultDurationMinutes + 15
			ps.CustomDuration = &d
		}
		if err := tx.Create(&ps).Error; err != nil {
			return fmt.Errorf("service %s: %w", tpl.Name, err)
		}
		created = append(created, ps)
	}

	lo, hi := catalog.PriceRange(created)
	return tx.Model(p).Updates(map[string]any{
		"price_range_min": lo,
		"price_range_max": hi,
	}).Error
}
