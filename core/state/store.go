package state

import "sync"

// Resources whose in-flight fetches are tracked by the store.
const (
	ResourceClasses    = "classes"
	ResourceStudents   = "students"
	ResourceAttendance = "attendance"
	ResourceReports    = "reports"
)

type (
	// Snapshot is an immutable copy of the store handed to subscribers and
	// readers. It is always structurally consistent: if Selected is non-nil
	// its ID is present in Classes, and Students only ever belong to Selected.
	Snapshot struct {
		Classes  []Class
		Selected *Class
		Students []Student
		Loading  map[string]bool
	}

	// Store caches the teacher's classes, the selected class and its
	// students. Every mutation preserves the cross-entity invariants and
	// notifies subscribers with the post-mutation snapshot. Mutations never
	// fail.
	Store struct {
		mu       sync.RWMutex
		classes  []Class
		selected *Class
		students []Student
		loading  map[string]bool
		fetchSeq map[string]uint64

		subMu   sync.Mutex
		subs    map[int]func(Snapshot)
		nextSub int
	}
)

func NewStore() *Store {
	return &Store{
		loading:  make(map[string]bool),
		fetchSeq: make(map[string]uint64),
		subs:     make(map[int]func(Snapshot)),
	}
}

// Subscribe registers fn to be called after every mutation with the
// post-mutation snapshot. The returned func unsubscribes.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// mutate runs fn under the write lock, then delivers the resulting snapshot.
func (s *Store) mutate(fn func()) {
	s.mu.Lock()
	fn()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

func (s *Store) notify(snap Snapshot) {
	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}

// Class list

// ReplaceClassList sets the class collection. If the selected class is no
// longer in the list, the selection is dropped and the student collection
// cleared in the same step.
func (s *Store) ReplaceClassList(list []Class) {
	s.mutate(func() {
		s.classes = append([]Class(nil), list...)
		if s.selected != nil && !containsClass(s.classes, s.selected.ID) {
			s.selected = nil
			s.students = nil
		}
	})
}

// AddClass appends a class to the collection.
func (s *Store) AddClass(cls Class) {
	s.mutate(func() {
		s.classes = append(s.classes, cls)
	})
}

// UpdateClass replaces the class with the same id, refreshing the selection
// if it points at it. Unknown ids are ignored.
func (s *Store) UpdateClass(cls Class) {
	s.mutate(func() {
		for i := range s.classes {
			if s.classes[i].ID == cls.ID {
				s.classes[i] = cls
				break
			}
		}
		if s.selected != nil && s.selected.ID == cls.ID {
			clone := cls
			s.selected = &clone
		}
	})
}

// RemoveClass removes the class with the given id. Removing the selected
// class drops the selection and clears the students in the same step.
func (s *Store) RemoveClass(id string) {
	s.mutate(func() {
		kept := s.classes[:0]
		for _, cls := range s.classes {
			if cls.ID != id {
				kept = append(kept, cls)
			}
		}
		s.classes = kept
		if s.selected != nil && s.selected.ID == id {
			s.selected = nil
			s.students = nil
		}
	})
}

// Selection

// SelectClass focuses the given class and unconditionally clears the student
// collection; students must be re-fetched for the new selection.
func (s *Store) SelectClass(cls Class) {
	s.mutate(func() {
		clone := cls
		s.selected = &clone
		s.students = nil
	})
}

// ClearSelection drops the selection and its students.
func (s *Store) ClearSelection() {
	s.mutate(func() {
		s.selected = nil
		s.students = nil
	})
}

// Students

// ReplaceStudentList sets the student collection; the selection is untouched.
func (s *Store) ReplaceStudentList(list []Student) {
	s.mutate(func() {
		s.students = append([]Student(nil), list...)
	})
}

// AddStudent appends a student to the collection.
func (s *Store) AddStudent(st Student) {
	s.mutate(func() {
		s.students = append(s.students, st)
	})
}

// UpdateStudent replaces the student with the same id. Unknown ids are ignored.
func (s *Store) UpdateStudent(st Student) {
	s.mutate(func() {
		for i := range s.students {
			if s.students[i].ID == st.ID {
				s.students[i] = st
				break
			}
		}
	})
}

// RemoveStudent removes the student with the given id.
func (s *Store) RemoveStudent(id string) {
	s.mutate(func() {
		kept := s.students[:0]
		for _, st := range s.students {
			if st.ID != id {
				kept = append(kept, st)
			}
		}
		s.students = kept
	})
}

// Loading flags & fetch sequencing

// SetLoading flips the named resource's loading flag. Flags are independent;
// any number of resources may be loading at once.
func (s *Store) SetLoading(resource string, flag bool) {
	s.mutate(func() {
		s.loading[resource] = flag
	})
}

// BeginFetch marks the resource loading and issues a sequence token for the
// fetch. Completions carrying a stale token (a newer fetch has begun since)
// are discarded by the Complete/Fail counterparts, so an out-of-order
// completion can never overwrite a newer fetch's result.
func (s *Store) BeginFetch(resource string) uint64 {
	var token uint64
	s.mutate(func() {
		s.fetchSeq[resource]++
		token = s.fetchSeq[resource]
		s.loading[resource] = true
	})
	return token
}

// current reports whether token is the latest issued for resource.
func (s *Store) current(resource string, token uint64) bool {
	return s.fetchSeq[resource] == token
}

// CompleteClassFetch applies a class-list fetch result, unless stale.
// Reports whether the result was applied.
func (s *Store) CompleteClassFetch(token uint64, list []Class) bool {
	applied := false
	s.mutate(func() {
		if !s.current(ResourceClasses, token) {
			return
		}
		applied = true
		s.loading[ResourceClasses] = false
		s.classes = append([]Class(nil), list...)
		if s.selected != nil && !containsClass(s.classes, s.selected.ID) {
			s.selected = nil
			s.students = nil
		}
	})
	return applied
}

// CompleteStudentFetch applies a student-list fetch result, unless stale.
// Reports whether the result was applied.
func (s *Store) CompleteStudentFetch(token uint64, list []Student) bool {
	applied := false
	s.mutate(func() {
		if !s.current(ResourceStudents, token) {
			return
		}
		applied = true
		s.loading[ResourceStudents] = false
		s.students = append([]Student(nil), list...)
	})
	return applied
}

// FailFetch clears the resource's loading flag after a failed fetch, unless a
// newer fetch is in flight. The flag is never left stuck on failure.
func (s *Store) FailFetch(resource string, token uint64) {
	s.mutate(func() {
		if s.current(resource, token) {
			s.loading[resource] = false
		}
	})
}

// EndFetch clears the resource's loading flag for fetches whose results are
// not cached here (attendance, reports), unless a newer fetch is in flight.
func (s *Store) EndFetch(resource string, token uint64) {
	s.FailFetch(resource, token)
}

// Reset

// Reset clears every field back to its initial state; invoked on logout so no
// residual data outlives the session.
func (s *Store) Reset() {
	s.mutate(func() {
		s.classes = nil
		s.selected = nil
		s.students = nil
		s.loading = make(map[string]bool)
		s.fetchSeq = make(map[string]uint64)
	})
}

// Accessors

func (s *Store) Classes() []Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Class(nil), s.classes...)
}

func (s *Store) Selected() (Class, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return Class{}, false
	}
	return *s.selected, true
}

func (s *Store) Students() []Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Student(nil), s.students...)
}

func (s *Store) Loading(resource string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading[resource]
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Classes:  append([]Class(nil), s.classes...),
		Students: append([]Student(nil), s.students...),
		Loading:  make(map[string]bool, len(s.loading)),
	}
	if s.selected != nil {
		clone := *s.selected
		snap.Selected = &clone
	}
	for res, flag := range s.loading {
		snap.Loading[res] = flag
	}
	return snap
}

func containsClass(list []Class, id string) bool {
	for _, cls := range list {
		if cls.ID == id {
			return true
		}
	}
	return false
}
