package appointment

import (
	"time"
)

const DefaultGranularity = 30 * time.Minute

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Availability struct {
	Date   string     `json:"date"`
	IsOpen bool       `json:"is_open"`
	Slots  []TimeSlot `json:"slots"`
}

// Interval é semiaberto: [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps: [a,b) e [c,d) se sobrepõem sse a < d && c < b.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

func (i Interval) Within(outer Interval) bool {
	return !i.Start.Before(outer.Start) && !i.End.After(outer.End)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// AnyOverlap informa se candidate colide com algum intervalo de busy.
func AnyOverlap(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

// GenerateSlots percorre a janela em passos de step e devolve os slots
// livres. O último slot parcial (que ultrapassaria o fim) é descartado.
func GenerateSlots(window Interval, step time.Duration, busy []Interval) []Interval {
	slots := []Interval{}
	if step <= 0 {
		return slots
	}

	for cur := window.Start; !cur.Add(step).After(window.End); cur = cur.Add(step) {
		slot := Interval{Start: cur, End: cur.Add(step)}
		if AnyOverlap(slot, busy) {
			continue
		}
		slots = append(slots, slot)
	}

	return slots
}

// ToTimeSlots formata os intervalos como HH:MM.
func ToTimeSlots(in []Interval) []TimeSlot {
	out := make([]TimeSlot, 0, len(in))
	for _, s := range in {
		out = append(out, TimeSlot{
			Start: s.Start.Format("15:04"),
			End:   s.End.Format("15:04"),
		})
	}
	return out
}
