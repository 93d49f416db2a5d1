package model

type CreateTodoDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueAt       string `json:"due_at"`
	Priority    string `json:"priority"`
}

// UpdateTodoDTO replaces every field of a todo except owner and creation
// time. Completed is a pointer so an absent field keeps the stored value.
type UpdateTodoDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueAt       string `json:"due_at"`
	Priority    string `json:"priority"`
	Completed   *bool  `json:"completed"`
}
