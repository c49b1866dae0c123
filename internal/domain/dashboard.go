package domain

type OverviewResponse struct {
	TotalTasks     int              `json:"total_tasks"`
	ByStatus       map[Status]int   `json:"by_status"`
	ByPriority     map[Priority]int `json:"by_priority"`
	OverdueTasks   int              `json:"overdue_tasks"`
	CompletionRate float64          `json:"completion_rate"`
}

type WorkloadResponse struct {
	Assignees  []AssigneeWorkload `json:"assignees"`
	Unassigned int                `json:"unassigned"`
}

type AssigneeWorkload struct {
	AssigneeID string `json:"assignee_id"`
	Name       string `json:"name"`
	OpenTasks  int    `json:"open_tasks"`
}
