/*
handlers.go - HTTP API handlers for the roster engine

PURPOSE:
  Exposes the roster engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to the engine.

ENDPOINTS:
  Schedule:
    GET    /api/schedule               Canonical state
    POST   /api/schedule/import        Import (runs legacy migration)
    GET    /api/schedule/export        Pretty JSON download
    GET    /api/schedule/share         Base64 share-link payload

  Pattern:
    POST   /api/pattern                Set pattern with effective date
    POST   /api/pattern/people         Add person
    DELETE /api/pattern/people/{index} Remove person
    POST   /api/pattern/swap           Swap two slots
    POST   /api/pattern/move           Move a slot

  Days:
    GET    /api/days/{date}            Resolved assignment + records
    POST   /api/days/{date}/tasks      Add task record
    PUT    /api/days/{date}/tasks/{id} Update task record
    DELETE /api/days/{date}/tasks/{id} Remove task record
    GET    /api/resolve/{date}         Resolved assignment only
    GET    /api/week/{date}            Monday..Sunday week view

  Suggestions:
    GET    /api/suggestions/descriptions
    GET    /api/suggestions/assignees
    GET    /api/suggestions/times?description=

ARCHITECTURE:
  Handler owns the persistence store, the storage key, and the loaded
  Schedule. The engine is single-threaded by contract, so the handler is
  the serializing host: every engine call happens under one mutex.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed dates/bodies, past effective dates
  - 404: Unknown task id (the engine treats this as a no-op; the API
         still reports it so stale UI edits get feedback)
  - 500: Persistence failures

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/warp/roster-engine/roster"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store roster.Store
	Key   string

	mu    sync.Mutex
	sched *roster.Schedule
}

// NewHandler creates a new handler over the given store and storage key.
func NewHandler(store roster.Store, key string) *Handler {
	return &Handler{
		Store: store,
		Key:   key,
		sched: roster.NewSchedule(nil),
	}
}

// Load reads the stored schedule and runs it through the legacy
// migrator. Migration happens once per load, before any resolution;
// for already-canonical data it is a no-op.
func (h *Handler) Load(ctx context.Context) error {
	state, err := h.Store.Load(ctx, h.Key)
	if err != nil {
		return err
	}
	if state != nil {
		raw, err := roster.Serialize(state)
		if err != nil {
			return err
		}
		if state, err = roster.Migrate(raw); err != nil {
			return err
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.sched = roster.NewSchedule(state)
	return nil
}

// persist writes the current state back under the storage key.
// Callers hold h.mu.
func (h *Handler) persist(ctx context.Context) error {
	return h.Store.Save(ctx, h.Key, h.sched.State())
}

// =============================================================================
// SCHEDULE HANDLERS
// =============================================================================

// GetSchedule returns the canonical state.
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	writeJSON(w, http.StatusOK, h.sched.State())
}

// ImportSchedule replaces the state with an imported blob of any known
// generation. Malformed input leaves the prior state untouched.
func (h *Handler) ImportSchedule(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	state, err := roster.Migrate(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid schedule data", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	previous := h.sched
	h.sched = roster.NewSchedule(state)
	if err := h.persist(r.Context()); err != nil {
		h.sched = previous
		writeError(w, http.StatusInternalServerError, "Failed to save schedule", err)
		return
	}
	writeJSON(w, http.StatusOK, h.sched.State())
}

// ExportSchedule returns the state as a pretty-printed JSON download.
func (h *Handler) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	raw, err := roster.ExportJSON(h.sched.State())
	h.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to export schedule", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="ops-planning-data.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}

// ShareSchedule returns the base64 payload and query string for a share
// link. Shared links default to read-only presentation.
func (h *Handler) ShareSchedule(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	encoded, err := roster.EncodeShare(h.sched.State())
	h.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode schedule", err)
		return
	}

	query := url.Values{}
	query.Set(roster.ShareParam, encoded)
	query.Set("viewMode", "true")

	writeJSON(w, http.StatusOK, ShareDTO{Data: encoded, Query: query.Encode()})
}

// =============================================================================
// PATTERN HANDLERS
// =============================================================================

// SetPattern appends a new pattern entry with the requested effective
// date. Past dates are rejected; an empty date means today.
func (h *Handler) SetPattern(w http.ResponseWriter, r *http.Request) {
	var req PatternRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	effective := roster.Today()
	if req.EffectiveDate != "" {
		var err error
		if effective, err = roster.ParseDay(req.EffectiveDate); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid effective_date format (use YYYY-MM-DD)", err)
			return
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.sched.SetPattern(req.Pattern, effective); err != nil {
		if errors.Is(err, roster.ErrPastEffectiveDate) {
			writeError(w, http.StatusBadRequest, "Effective date cannot be in the past", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to set pattern", err)
		return
	}
	if err := h.persist(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save schedule", err)
		return
	}
	writeJSON(w, http.StatusCreated, roster.PatternEntry{
		EffectiveDate: effective.ISO(),
		Pattern:       h.sched.CurrentPattern(),
	})
}

// AddPerson appends the person to the current pattern, effective today.
func (h *Handler) AddPerson(w http.ResponseWriter, r *http.Request) {
	var req PersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.sched.AddPerson(req.Name)
	if err := h.persist(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save schedule", err)
		return
	}
	writeJSON(w, http.StatusCreated, h.sched.CurrentPattern())
}

// RemovePerson removes the pattern slot at the given index, effective
// today.
func (h *Handler) RemovePerson(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid index", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.sched.RemovePerson(index)
	if err := h.persist(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save schedule", err)
		return
	}
	writeJSON(w, http.StatusOK, h.sched.CurrentPattern())
}

// SwapPeople exchanges two pattern slots, effective today.
func (h *Handler) SwapPeople(w http.ResponseWriter, r *http.Request) {
	var req SwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.sched.SwapPeople(req.A, req.B)
	if err := h.persist(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save schedule", err)
		return
	}
	writeJSON(w, http.StatusOK, h.sched.CurrentPattern())
}

// MovePerson moves a pattern slot to a new position, effective today.
func (h *Handler) MovePerson(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.sched.MovePerson(req.From, req.To)
	if err := h.persist(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save schedule", err)
		return
	}
	writeJSON(w, http.StatusOK, h.sched.CurrentPattern())
}

// =============================================================================
// DAY HANDLERS
// =============================================================================

// GetDay returns the resolved assignment and records for one date.
func (h *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	day, ok := h.parseDate(w, r)
	if !ok {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	writeJSON(w, http.StatusOK, h.dayDTO(day))
}

// GetResolved returns only the resolved assignment for one date.
func (h *Handler) GetResolved(w http.ResponseWriter, r *http.Request) {
	day, ok := h.parseDate(w, r)
	if !ok {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	writeJSON(w, http.StatusOK, h.sched.Resolve(day))
}

// GetWeek returns the Monday..Sunday view of the week containing a date.
func (h *Handler) GetWeek(w http.ResponseWriter, r *http.Request) {
	day, ok := h.parseDate(w, r)
	if !ok {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	dates := day.WeekDates()
	days := make([]DayDTO, len(dates))
	for i, d := range dates {
		days[i] = h.dayDTO(d)
	}
	writeJSON(w, http.StatusOK, WeekDTO{
		WeekNumber:         day.ISOWeek(),
		Days:               days,
		HasWeekendActivity: h.sched.HasWeekendActivity(day),
	})
}

// CreateTask adds a task record to a date.
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	day, ok := h.parseDate(w, r)
	if !ok {
		return
	}
	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	record := h.sched.AddTask(day, req.Description, req.Assignee, req.StartTime, req.EndTime, req.Note)
	if err := h.persist(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save schedule", err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

// UpdateTask replaces a task record matched by id.
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	day, ok := h.parseDate(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.sched.UpdateTask(day, id, req.Description, req.Assignee, req.StartTime, req.EndTime, req.Note) {
		writeError(w, http.StatusNotFound, "Task not found", nil)
		return
	}
	if err := h.persist(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save schedule", err)
		return
	}
	writeJSON(w, http.StatusOK, h.dayDTO(day))
}

// DeleteTask removes a task record matched by id.
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	day, ok := h.parseDate(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.sched.RemoveTask(day, id) {
		writeError(w, http.StatusNotFound, "Task not found", nil)
		return
	}
	if err := h.persist(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save schedule", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// SUGGESTION HANDLERS
// =============================================================================

// ListDescriptions returns the distinct task descriptions, sorted.
func (h *Handler) ListDescriptions(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	writeJSON(w, http.StatusOK, h.sched.Descriptions())
}

// ListAssignees returns the distinct person names, sorted.
func (h *Handler) ListAssignees(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	writeJSON(w, http.StatusOK, h.sched.Assignees())
}

// SuggestTimes returns averaged start/end times for a description.
func (h *Handler) SuggestTimes(w http.ResponseWriter, r *http.Request) {
	description := r.URL.Query().Get("description")
	if description == "" {
		writeError(w, http.StatusBadRequest, "Missing description parameter", nil)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	writeJSON(w, http.StatusOK, h.sched.SuggestedTimes(description))
}

// =============================================================================
// HELPERS
// =============================================================================

// dayDTO builds the per-date payload. Callers hold h.mu.
func (h *Handler) dayDTO(day roster.Day) DayDTO {
	tasks := h.sched.TasksOn(day)
	if tasks == nil {
		tasks = []roster.TaskRecord{}
	}
	return DayDTO{
		Date:     day.ISO(),
		Resolved: h.sched.Resolve(day),
		Tasks:    tasks,
	}
}

func (h *Handler) parseDate(w http.ResponseWriter, r *http.Request) (roster.Day, bool) {
	day, err := roster.ParseDay(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return roster.Day{}, false
	}
	return day, true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
