package models

// Category groups expenses of one user.
type Category struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Color     *string `json:"color,omitempty"`
	UserID    int64   `json:"user_id"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// CategoryRequest is the body of category create and update calls.
type CategoryRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color,omitempty"`
}
