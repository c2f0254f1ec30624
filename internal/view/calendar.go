package view

import (
	"sync"
	"taskBoard/internal/models/task"
	"time"

	"cloud.google.com/go/civil"
)

const DaysInWeek = 7

type Day struct {
	Date    civil.Date  `json:"date"`
	Weekday string      `json:"weekday"`
	IsToday bool        `json:"is_today"`
	Tasks   []task.Task `json:"tasks"`
}

type Week struct {
	Title string     `json:"title"`
	Pivot civil.Date `json:"pivot"`
	Start civil.Date `json:"start"`
	End   civil.Date `json:"end"`
	Days  []Day      `json:"days"`
}

// StartOfWeek возвращает понедельник той же недели, что и d
func StartOfWeek(d civil.Date) civil.Date {
	weekday := d.In(time.UTC).Weekday()
	offset := (int(weekday) + 6) % DaysInWeek
	return d.AddDays(-offset)
}

// WeekDays - семь дат недели опорной даты, начиная с понедельника
func WeekDays(pivot civil.Date) []civil.Date {
	start := StartOfWeek(pivot)
	days := make([]civil.Date, DaysInWeek)
	for i := range days {
		days[i] = start.AddDays(i)
	}
	return days
}

// BuildWeek раскладывает задачи по дням недели по точной дате срока
func BuildWeek(tasks []task.Task, pivot, today civil.Date) Week {
	dates := WeekDays(pivot)

	week := Week{
		Title: pivot.In(time.UTC).Format("January 2006"),
		Pivot: pivot,
		Start: dates[0],
		End:   dates[len(dates)-1],
		Days:  make([]Day, 0, len(dates)),
	}

	for _, date := range dates {
		day := Day{
			Date:    date,
			Weekday: date.In(time.UTC).Format("Mon"),
			IsToday: date == today,
			Tasks:   []task.Task{},
		}
		for _, t := range tasks {
			if t.DueOn(date) {
				day.Tasks = append(day.Tasks, t)
			}
		}
		week.Days = append(week.Days, day)
	}
	return week
}

// Calendar хранит опорную дату между переходами по неделям
type Calendar struct {
	mtx   sync.Mutex
	pivot civil.Date
	now   func() time.Time
}

func NewCalendar(now func() time.Time) *Calendar {
	if now == nil {
		now = time.Now
	}
	return &Calendar{
		pivot: civil.DateOf(now()),
		now:   now,
	}
}

func (c *Calendar) Pivot() civil.Date {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return c.pivot
}

func (c *Calendar) Next() civil.Date {
	return c.shift(DaysInWeek)
}

func (c *Calendar) Prev() civil.Date {
	return c.shift(-DaysInWeek)
}

// Reset возвращает опорную дату на текущий день
func (c *Calendar) Reset() civil.Date {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.pivot = civil.DateOf(c.now())
	return c.pivot
}

func (c *Calendar) shift(days int) civil.Date {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.pivot = c.pivot.AddDays(days)
	return c.pivot
}
