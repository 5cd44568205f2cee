package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

const (
	DateLayout = "2006-01-02"
	HourLayout = "15:04"
)

// Clock permite fixar o "agora" nos testes.
type Clock func() time.Time

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ClockIn devolve um Clock no fuso informado.
func ClockIn(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}

func ParseDate(date string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, loc)
}

func ParseDateTime(date, hm string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+HourLayout, date+" "+hm, loc)
}
