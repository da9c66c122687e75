package employee

import "time"

type Response struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Position  *string   `json:"position,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToResponse(e Employee) Response {
	return Response{
		ID:        e.ID,
		FullName:  e.FullName,
		Position:  e.Position,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
