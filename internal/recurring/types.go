package recurring

// GeneratedTask records one queue task created from a template.
type GeneratedTask struct {
	TemplateID string
	TaskID     string
	Title      string
}

// GenerateOutput summarizes one generation run.
type GenerateOutput struct {
	TemplatesDue int
	Generated    int
	Skipped      int
	Tasks        []GeneratedTask
}
