package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dormkeep/registry-service/internal/domain"
	"github.com/dormkeep/registry-service/internal/service"
)

type Handler struct {
	roomSvc     *service.RoomService
	studentSvc  *service.StudentService
	combinedSvc *service.CombinedService
}

func NewHandler(rooms *service.RoomService, students *service.StudentService, combined *service.CombinedService) *Handler {
	return &Handler{
		roomSvc:     rooms,
		studentSvc:  students,
		combinedSvc: combined,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

func writeValidationError(w http.ResponseWriter, message string, details map[string][]string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Code:    "validation_error",
		Message: message,
		Details: details,
	})
}

func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// parseIDList parses a comma-separated integer query value like "1,2,3".
// Empty segments are skipped; an empty value yields no filter.
func parseIDList(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func idListQuery(r *http.Request, w http.ResponseWriter, param string) ([]int64, bool) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return nil, true
	}
	ids, err := parseIDList(raw)
	if err != nil {
		writeValidationError(w, "Invalid query parameter", map[string][]string{
			param: {"Expected comma-separated integers."},
		})
		return nil, false
	}
	return ids, true
}

// GET /rooms?ids__in=
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	ids, ok := idListQuery(r, w, "ids__in")
	if !ok {
		return
	}
	rooms, err := h.roomSvc.ListRooms(r.Context(), ids)
	if err != nil {
		slog.Error("handler.ListRooms:", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	items := make([]RoomItem, 0, len(rooms))
	for _, rm := range rooms {
		items = append(items, newRoomItem(rm))
	}
	writeJSON(w, http.StatusOK, items)
}

// POST /rooms
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req RoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid json")
		return
	}
	if details := req.validate(); details != nil {
		writeValidationError(w, "Invalid room data", details)
		return
	}
	room, err := h.roomSvc.CreateRoom(r.Context(), req.Name)
	if err != nil {
		slog.Error("handler.CreateRoom:", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, newRoomItem(*room))
}

// GET /rooms/{id}
func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "Room not found")
		return
	}
	room, err := h.roomSvc.GetRoom(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Room not found")
			return
		}
		slog.Error("handler.GetRoom:", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, newRoomItem(*room))
}

// PUT /rooms/{id}
func (h *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "Room not found")
		return
	}
	var req RoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid json")
		return
	}
	if details := req.validate(); details != nil {
		writeValidationError(w, "Invalid room data", details)
		return
	}
	room, err := h.roomSvc.UpdateRoom(r.Context(), id, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Room not found")
			return
		}
		slog.Error("handler.UpdateRoom:", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, newRoomItem(*room))
}

// DELETE /rooms/{id}
func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "Room not found")
		return
	}
	removed, err := h.roomSvc.DeleteRoom(r.Context(), id)
	if err != nil {
		slog.Error("handler.DeleteRoom:", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "not_found", "Room not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /rooms/{id}/students
func (h *Handler) ListRoomStudents(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "Room not found")
		return
	}
	students, err := h.studentSvc.ListRoomStudents(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Room not found")
			return
		}
		slog.Error("handler.ListRoomStudents:", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	items := make([]StudentItem, 0, len(students))
	for _, st := range students {
		items = append(items, newStudentItem(st))
	}
	writeJSON(w, http.StatusOK, items)
}

// GET /students?ids__in=&room__in=
func (h *Handler) ListStudents(w http.ResponseWriter, r *http.Request) {
	ids, ok := idListQuery(r, w, "ids__in")
	if !ok {
		return
	}
	rooms, ok := idListQuery(r, w, "room__in")
	if !ok {
		return
	}
	students, err := h.studentSvc.ListStudents(r.Context(), ids, rooms)
	if err != nil {
		slog.Error("handler.ListStudents:", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	items := make([]StudentItem, 0, len(students))
	for _, st := range students {
		items = append(items, newStudentItem(st))
	}
	writeJSON(w, http.StatusOK, items)
}

// POST /students
func (h *Handler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req StudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid json")
		return
	}
	in, details := req.validate()
	if details != nil {
		writeValidationError(w, "Invalid student data", details)
		return
	}
	student, err := h.studentSvc.CreateStudent(r.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			writeError(w, http.StatusBadRequest, "room_not_found", "Target room does not exist")
			return
		}
		slog.Error("handler.CreateStudent:", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, newStudentItem(*student))
}

// GET /students/{id}
func (h *Handler) GetStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "Student not found")
		return
	}
	student, err := h.studentSvc.GetStudent(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Student not found")
			return
		}
		slog.Error("handler.GetStudent:", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, newStudentItem(*student))
}

// PUT /students/{id} — full replace of name/room/sex/birthday.
func (h *Handler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "Student not found")
		return
	}
	var req StudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid json")
		return
	}
	in, details := req.validate()
	if details != nil {
		writeValidationError(w, "Invalid student data", details)
		return
	}
	patch := domain.StudentPatch{
		Name:     &in.Name,
		Room:     &in.Room,
		Sex:      &in.Sex,
		Birthday: &in.Birthday,
	}
	student, err := h.studentSvc.UpdateStudent(r.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			writeError(w, http.StatusBadRequest, "room_not_found", "Target room does not exist")
		case errors.Is(err, domain.ErrStudentNotFound):
			writeError(w, http.StatusNotFound, "not_found", "Student not found")
		default:
			slog.Error("handler.UpdateStudent:", slog.Any("err", err))
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, newStudentItem(*student))
}

// DELETE /students/{id}
func (h *Handler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "Student not found")
		return
	}
	removed, err := h.studentSvc.DeleteStudent(r.Context(), id)
	if err != nil {
		slog.Error("handler.DeleteStudent:", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "not_found", "Student not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /students/{id}/move
func (h *Handler) MoveStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "Student not found")
		return
	}
	var req MoveStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid json")
		return
	}
	if req.ToRoomID == nil {
		writeValidationError(w, "Invalid move payload", map[string][]string{
			"to_room_id": {"This field is required."},
		})
		return
	}
	student, err := h.studentSvc.MoveStudent(r.Context(), id, *req.ToRoomID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStudentNotFound):
			writeError(w, http.StatusNotFound, "not_found", "Student not found")
		case errors.Is(err, domain.ErrRoomNotFound):
			writeError(w, http.StatusBadRequest, "room_not_found", "Target room does not exist")
		default:
			slog.Error("handler.MoveStudent:", slog.Any("err", err))
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, newStudentItem(*student))
}

// GET /combined
func (h *Handler) Combined(w http.ResponseWriter, r *http.Request) {
	view, err := h.combinedSvc.CombinedRooms(r.Context())
	if err != nil {
		slog.Error("handler.Combined:", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	items := make([]CombinedRoomItem, 0, len(view))
	for _, cr := range view {
		items = append(items, newCombinedRoomItem(cr))
	}
	writeJSON(w, http.StatusOK, items)
}
