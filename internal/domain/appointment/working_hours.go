package appointment

import (
	"time"

	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/models"
)

// WorkingWindow devolve a janela de atendimento do dia. ok=false quando
// não há expediente (sem registro, dia não selecionado ou horário inválido).
func WorkingWindow(wh *models.WorkingHours, date time.Time) (Interval, bool) {
	if wh == nil || !wh.IsSelected || wh.StartTime == "" || wh.EndTime == "" {
		return Interval{}, false
	}

	parseHM := func(hm string) (time.Time, bool) {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			return time.Time{}, false
		}
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			date.Location(),
		), true
	}

	start, ok1 := parseHM(wh.StartTime)
	end, ok2 := parseHM(wh.EndTime)
	if !ok1 || !ok2 || !start.Before(end) {
		return Interval{}, false
	}

	return Interval{Start: start, End: end}, true
}

// WorkingDay é a configuração de um dia enviada pelo profissional.
type WorkingDay struct {
	Weekday    int
	IsSelected bool
	StartTime  string
	EndTime    string
}

// ValidateWorkingDays: weekday 0..6 sem repetição, HH:MM válido e
// início antes do fim nos dias selecionados.
func ValidateWorkingDays(days []WorkingDay) error {
	seen := make(map[int]bool, len(days))

	for _, d := range days {
		if d.Weekday < 0 || d.Weekday > 6 {
			return httperr.Validation("invalid_weekday")
		}
		if seen[d.Weekday] {
			return httperr.Validation("duplicated_weekday")
		}
		seen[d.Weekday] = true

		if !d.IsSelected {
			continue
		}

		start, err1 := time.Parse("15:04", d.StartTime)
		end, err2 := time.Parse("15:04", d.EndTime)
		if err1 != nil || err2 != nil {
			return httperr.Validation("invalid_time")
		}
		if !start.Before(end) {
			return httperr.Validation("start_after_end")
		}
	}

	return nil
}
