package project

type ProjectOption func(*Project)

type SectionOption func(*Section)

func ApplyProject(p *Project, options ...ProjectOption) {
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
}

func ApplySection(s *Section, options ...SectionOption) {
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
}

func WithName(name string) ProjectOption {
	return func(p *Project) {
		p.Name = name
	}
}

func WithColor(color string) ProjectOption {
	return func(p *Project) {
		p.Color = color
	}
}

func WithIcon(icon string) ProjectOption {
	return func(p *Project) {
		p.Icon = icon
	}
}

func WithSectionTitle(title string) SectionOption {
	return func(s *Section) {
		s.Title = title
	}
}

func WithOrder(order int) SectionOption {
	return func(s *Section) {
		s.Order = order
	}
}

// перенос секции в другой проект
func WithSectionProject(projectID string) SectionOption {
	return func(s *Section) {
		s.ProjectID = projectID
	}
}
