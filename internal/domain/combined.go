package domain

// CombinedRoom is the denormalized room-with-students view. It is computed
// on demand and never persisted.
type CombinedRoom struct {
	ID       int64
	Name     string
	Students []StudentRef
}

type StudentRef struct {
	ID   int64
	Name string
}
