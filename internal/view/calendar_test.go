package view_test

import (
	"taskBoard/internal/models/task"
	"taskBoard/internal/view"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStartOfWeek тестирует, что неделя начинается с понедельника
func TestStartOfWeek(t *testing.T) {
	monday := civil.Date{Year: 2024, Month: time.January, Day: 8}

	tests := []struct {
		name string
		day  civil.Date
		want civil.Date
	}{
		{"monday", monday, monday},
		{"wednesday", civil.Date{Year: 2024, Month: time.January, Day: 10}, monday},
		{"sunday", civil.Date{Year: 2024, Month: time.January, Day: 14}, monday},
		{"across year", civil.Date{Year: 2024, Month: time.January, Day: 3}, civil.Date{Year: 2024, Month: time.January, Day: 1}},
		{"across month", civil.Date{Year: 2024, Month: time.March, Day: 2}, civil.Date{Year: 2024, Month: time.February, Day: 26}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, view.StartOfWeek(tt.day))
		})
	}
}

// TestWeekDays тестирует семь последовательных дат
func TestWeekDays(t *testing.T) {
	days := view.WeekDays(civil.Date{Year: 2024, Month: time.January, Day: 14})

	require.Len(t, days, view.DaysInWeek)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.January, Day: 8}, days[0])
	assert.Equal(t, civil.Date{Year: 2024, Month: time.January, Day: 14}, days[6])
	for i := 1; i < len(days); i++ {
		assert.Equal(t, days[i-1].AddDays(1), days[i])
	}
}

// TestBuildWeek тестирует раскладку задач по дням
func TestBuildWeek(t *testing.T) {
	today := civil.Date{Year: 2024, Month: time.January, Day: 10}
	friday := civil.Date{Year: 2024, Month: time.January, Day: 12}
	outside := civil.Date{Year: 2024, Month: time.January, Day: 15}

	tasks := []task.Task{
		{ID: "a", DueDate: &today},
		{ID: "b", DueDate: &friday},
		{ID: "c", DueDate: &friday},
		{ID: "d", DueDate: &outside},
		{ID: "e"},
	}

	week := view.BuildWeek(tasks, today, today)

	assert.Equal(t, "January 2024", week.Title)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.January, Day: 8}, week.Start)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.January, Day: 14}, week.End)
	require.Len(t, week.Days, view.DaysInWeek)

	assert.Equal(t, "Mon", week.Days[0].Weekday)
	assert.Equal(t, "Sun", week.Days[6].Weekday)

	assert.True(t, week.Days[2].IsToday)
	assert.Equal(t, []string{"a"}, ids(week.Days[2].Tasks))
	assert.Equal(t, []string{"b", "c"}, ids(week.Days[4].Tasks))

	total := 0
	for _, d := range week.Days {
		require.NotNil(t, d.Tasks)
		total += len(d.Tasks)
	}
	assert.Equal(t, 3, total)
}

// TestCalendar_Navigation тестирует переходы между неделями
func TestCalendar_Navigation(t *testing.T) {
	clock := func() time.Time { return noon }
	cal := view.NewCalendar(clock)

	start := civil.DateOf(noon)
	assert.Equal(t, start, cal.Pivot())

	assert.Equal(t, start.AddDays(7), cal.Next())
	assert.Equal(t, start.AddDays(14), cal.Next())
	assert.Equal(t, start.AddDays(7), cal.Prev())
	assert.Equal(t, start, cal.Prev())
	assert.Equal(t, start.AddDays(-7), cal.Prev())

	assert.Equal(t, start, cal.Reset())
	assert.Equal(t, start, cal.Pivot())
}

// TestCalendar_PrevKeepsWeekday тестирует, что переход назад сохраняет день недели
func TestCalendar_PrevKeepsWeekday(t *testing.T) {
	cal := view.NewCalendar(func() time.Time { return noon })

	before := cal.Pivot().In(time.UTC).Weekday()
	after := cal.Prev().In(time.UTC).Weekday()
	assert.Equal(t, before, after)
}
