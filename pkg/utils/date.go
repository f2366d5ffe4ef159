package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// TruncateToDate remove o componente de hora mantendo a localização
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func SameDate(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// FirstDayOfMonth retorna o primeiro dia do mês da data informada
func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// LastDayOfMonth retorna o último dia do mês da data informada
func LastDayOfMonth(date time.Time) time.Time {
	return FirstDayOfMonth(date).AddDate(0, 1, -1)
}

// DaysBetween conta os dias de calendário entre duas datas (end - start).
// As datas podem estar em localizações diferentes (datas de período vêm do
// banco em UTC, a data da revisão vem no fuso da agência); só os componentes
// de calendário entram na conta.
func DaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}
