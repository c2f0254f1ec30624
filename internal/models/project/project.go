package project

// зарезервированные id встроенных проектов-представлений
const InboxID = "inbox"
const TodayID = "today"
const UpcomingID = "upcoming"

type Project struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color,omitempty"`
	Icon       string `json:"icon,omitempty"`
	IsArchived bool   `json:"is_archived"`
}

type Section struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ProjectID string `json:"project_id"`
	Order     int    `json:"order"`
}

// Builtins возвращает встроенные проекты в порядке отображения
func Builtins() []Project {
	return []Project{
		{ID: InboxID, Name: "Inbox", Icon: "📥"},
		{ID: TodayID, Name: "Today", Icon: "📅"},
		{ID: UpcomingID, Name: "Upcoming", Icon: "📆"},
	}
}

func IsBuiltin(id string) bool {
	switch id {
	case InboxID, TodayID, UpcomingID:
		return true
	default:
		return false
	}
}

// Title - заголовок для шапки: иконка и имя
func (p Project) Title() string {
	if p.Icon == "" {
		return p.Name
	}
	return p.Icon + " " + p.Name
}
