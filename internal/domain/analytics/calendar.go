// Package analytics es el motor de agregación: funciones puras sobre el log completo
// de ventas y gastos. No hace I/O ni guarda estado; todo se recalcula en cada lectura.
//
// Semántica de calendario: un registro pertenece al día calendario de su timestamp
// convertido a la zona horaria de la fecha de referencia (nunca una ventana móvil de 24 h).
package analytics

import "time"

const dateLayout = "2006-01-02"

// weekOrder orden de iteración lunes..domingo usado por todas las reglas de desempate.
var weekOrder = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// DayStart devuelve las 00:00 del día calendario de t en loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// WeekStart devuelve el lunes 00:00 de la semana ISO que contiene date (en date.Location()).
func WeekStart(date time.Time) time.Time {
	day := DayStart(date, date.Location())
	offset := (int(day.Weekday()) + 6) % 7 // lunes=0 ... domingo=6
	return day.AddDate(0, 0, -offset)
}

// DateKey clave YYYY-MM-DD del día calendario de t en loc.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dateLayout)
}

// WeekdayLabel etiqueta en inglés del día de la semana de t en loc ("Monday").
func WeekdayLabel(t time.Time, loc *time.Location) string {
	return t.In(loc).Weekday().String()
}

func sameDay(t time.Time, day time.Time) bool {
	t = t.In(day.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// within indica si t ∈ [from, to).
func within(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}
