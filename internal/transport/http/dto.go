package http

import (
	"time"

	"github.com/dormkeep/registry-service/internal/domain"
)

type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

type RoomRequest struct {
	Name string `json:"name"`
}

// Validation details are lists of messages keyed by field name.
func (r RoomRequest) validate() map[string][]string {
	details := map[string][]string{}
	if r.Name == "" {
		details["name"] = append(details["name"], "This field is required.")
	} else if len(r.Name) > 255 {
		details["name"] = append(details["name"], "Ensure this field has no more than 255 characters.")
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

type RoomItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newRoomItem(rm domain.Room) RoomItem {
	return RoomItem{ID: rm.ID, Name: rm.Name}
}

type StudentRequest struct {
	Name     string `json:"name"`
	Room     *int64 `json:"room"`
	Sex      string `json:"sex"`
	Birthday string `json:"birthday"`
}

// validate performs the boundary shape checks and hands back an
// already-validated input for the core; the room-exists check stays with
// the service layer.
func (r StudentRequest) validate() (domain.NewStudent, map[string][]string) {
	details := map[string][]string{}
	if r.Name == "" {
		details["name"] = append(details["name"], "This field is required.")
	} else if len(r.Name) > 255 {
		details["name"] = append(details["name"], "Ensure this field has no more than 255 characters.")
	}
	if r.Room == nil {
		details["room"] = append(details["room"], "This field is required.")
	}
	if r.Sex != "M" && r.Sex != "F" {
		details["sex"] = append(details["sex"], `"`+r.Sex+`" is not a valid choice.`)
	}
	birthday, err := time.Parse(domain.BirthdayLayout, r.Birthday)
	if err != nil {
		details["birthday"] = append(details["birthday"], "Datetime has wrong format. Use this format instead: YYYY-MM-DDTHH:MM:SS.ffffff.")
	}
	if len(details) > 0 {
		return domain.NewStudent{}, details
	}
	return domain.NewStudent{
		Name:     r.Name,
		Room:     *r.Room,
		Sex:      r.Sex,
		Birthday: birthday,
	}, nil
}

type StudentItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Room     int64  `json:"room"`
	Sex      string `json:"sex"`
	Birthday string `json:"birthday"`
}

func newStudentItem(st domain.Student) StudentItem {
	return StudentItem{
		ID:       st.ID,
		Name:     st.Name,
		Room:     st.Room,
		Sex:      st.Sex,
		Birthday: st.Birthday.Format(domain.BirthdayLayout),
	}
}

type MoveStudentRequest struct {
	ToRoomID *int64 `json:"to_room_id"`
}

type StudentRefItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CombinedRoomItem struct {
	ID       int64            `json:"id"`
	Name     string           `json:"name"`
	Students []StudentRefItem `json:"students"`
}

func newCombinedRoomItem(cr domain.CombinedRoom) CombinedRoomItem {
	refs := make([]StudentRefItem, 0, len(cr.Students))
	for _, st := range cr.Students {
		refs = append(refs, StudentRefItem{ID: st.ID, Name: st.Name})
	}
	return CombinedRoomItem{ID: cr.ID, Name: cr.Name, Students: refs}
}
