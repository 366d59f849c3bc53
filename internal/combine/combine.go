// Package combine builds the denormalized rooms-with-students view.
package combine

import "github.com/dormkeep/registry-service/internal/domain"

// Combine joins the two collections into one CombinedRoom per room, in room
// input order. Students land in their room's list in student input order;
// students whose room does not resolve are dropped. Rooms with no students
// keep an empty, non-nil list. Single pass over each collection.
func Combine(rooms []domain.Room, students []domain.Student) []domain.CombinedRoom {
	combined := make([]domain.CombinedRoom, 0, len(rooms))
	index := make(map[int64]int, len(rooms))
	for _, rm := range rooms {
		index[rm.ID] = len(combined)
		combined = append(combined, domain.CombinedRoom{
			ID:       rm.ID,
			Name:     rm.Name,
			Students: []domain.StudentRef{},
		})
	}

	for _, st := range students {
		i, ok := index[st.Room]
		if !ok {
			continue
		}
		combined[i].Students = append(combined[i].Students, domain.StudentRef{
			ID:   st.ID,
			Name: st.Name,
		})
	}
	return combined
}
