/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. The canonical state
  itself is already a wire format (it is what gets persisted and
  shared), so schedule payloads use roster.State directly; these types
  cover everything else.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data
  carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import "github.com/warp/roster-engine/roster"

// =============================================================================
// REQUEST TYPES
// =============================================================================

// PatternRequest sets a new pattern with an effective date.
type PatternRequest struct {
	Pattern       []string `json:"pattern"`
	EffectiveDate string   `json:"effective_date"`
}

// PersonRequest adds a person to the current pattern.
type PersonRequest struct {
	Name string `json:"name"`
}

// SwapRequest exchanges two pattern slots.
type SwapRequest struct {
	A int `json:"a"`
	B int `json:"b"`
}

// MoveRequest moves a pattern slot to a new position.
type MoveRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// TaskRequest creates or replaces a task record.
type TaskRequest struct {
	Description string `json:"description"`
	Assignee    string `json:"assignee"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Note        string `json:"note"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// DayDTO is one resolved date with its records.
type DayDTO struct {
	Date     string                    `json:"date"`
	Resolved roster.ResolvedAssignment `json:"resolved"`
	Tasks    []roster.TaskRecord       `json:"tasks"`
}

// WeekDTO is the Monday..Sunday view around a date.
type WeekDTO struct {
	WeekNumber         int      `json:"week_number"`
	Days               []DayDTO `json:"days"`
	HasWeekendActivity bool     `json:"has_weekend_activity"`
}

// ShareDTO carries a share link payload.
type ShareDTO struct {
	Data  string `json:"data"`
	Query string `json:"query"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}
