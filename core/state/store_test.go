package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cls(id, subject string) Class {
	return Class{ID: id, Subject: subject, Semester: 3, ClassName: "A"}
}

func stu(id, usn string) Student {
	return Student{ID: id, USN: usn, Name: "S " + usn, Semester: 3}
}

// selectionInvariant checks that a non-nil selection always points into the
// class collection.
func selectionInvariant(t *testing.T, s *Store) {
	t.Helper()
	sel, ok := s.Selected()
	if !ok {
		return
	}
	for _, c := range s.Classes() {
		if c.ID == sel.ID {
			return
		}
	}
	t.Fatalf("selection %q not in class collection", sel.ID)
}

func TestReplaceClassListDropsStaleSelection(t *testing.T) {
	s := NewStore()
	s.ReplaceClassList([]Class{cls("1", "Math"), cls("2", "Physics")})
	s.SelectClass(cls("1", "Math"))
	s.ReplaceStudentList([]Student{stu("s1", "u1")})

	// selection survives a replace that still contains it
	s.ReplaceClassList([]Class{cls("1", "Math"), cls("3", "Chemistry")})
	sel, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, "1", sel.ID)
	assert.Len(t, s.Students(), 1)
	selectionInvariant(t, s)

	// selection vanishes with the class, students cleared in the same step
	s.ReplaceClassList([]Class{cls("3", "Chemistry")})
	_, ok = s.Selected()
	assert.False(t, ok)
	assert.Empty(t, s.Students())
	selectionInvariant(t, s)
}

func TestSelectClassClearsStudents(t *testing.T) {
	s := NewStore()
	s.ReplaceClassList([]Class{cls("1", "Math"), cls("2", "Physics")})
	s.SelectClass(cls("1", "Math"))
	s.ReplaceStudentList([]Student{stu("s1", "u1"), stu("s2", "u2")})

	s.SelectClass(cls("2", "Physics"))
	assert.Empty(t, s.Students(), "students must be cleared on every selection change")

	// re-selecting the same class also clears
	s.ReplaceStudentList([]Student{stu("s3", "u3")})
	s.SelectClass(cls("2", "Physics"))
	assert.Empty(t, s.Students())
}

func TestRemoveClass(t *testing.T) {
	s := NewStore()
	s.ReplaceClassList([]Class{cls("1", "Math"), cls("2", "Physics")})
	s.SelectClass(cls("1", "Math"))
	s.ReplaceStudentList([]Student{stu("s1", "u1")})

	// removing an unselected class leaves the selection alone
	s.RemoveClass("2")
	sel, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, "1", sel.ID)

	// removing the selected class nulls the selection and clears students
	s.RemoveClass("1")
	_, ok = s.Selected()
	assert.False(t, ok)
	assert.Empty(t, s.Students())
	assert.Empty(t, s.Classes())
	selectionInvariant(t, s)
}

func TestUpdateClassRefreshesSelection(t *testing.T) {
	s := NewStore()
	s.ReplaceClassList([]Class{cls("1", "Math"), cls("2", "Physics")})
	s.SelectClass(cls("2", "Physics"))

	updated := cls("2", "X")
	s.UpdateClass(updated)

	sel, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, "X", sel.Subject)

	classes := s.Classes()
	assert.Equal(t, "X", classes[1].Subject)

	// updating an unselected class leaves the selection alone
	s.UpdateClass(cls("1", "Algebra"))
	sel, _ = s.Selected()
	assert.Equal(t, "X", sel.Subject)
}

func TestStudentMutations(t *testing.T) {
	s := NewStore()
	s.SelectClass(cls("1", "Math"))
	s.ReplaceStudentList([]Student{stu("s1", "u1"), stu("s2", "u2")})

	s.AddStudent(stu("s3", "u3"))
	assert.Len(t, s.Students(), 3)

	upd := stu("s2", "u2")
	upd.Name = "Renamed"
	s.UpdateStudent(upd)
	assert.Equal(t, "Renamed", s.Students()[1].Name)

	s.RemoveStudent("s1")
	students := s.Students()
	assert.Len(t, students, 2)
	assert.Equal(t, "s2", students[0].ID)

	// student mutations never touch the class collection or selection
	sel, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, "1", sel.ID)
}

func TestLoadingFlags(t *testing.T) {
	s := NewStore()

	s.SetLoading(ResourceClasses, true)
	s.SetLoading(ResourceStudents, true)
	assert.True(t, s.Loading(ResourceClasses))
	assert.True(t, s.Loading(ResourceStudents))
	assert.False(t, s.Loading(ResourceReports))

	// flags are independent
	s.SetLoading(ResourceClasses, false)
	assert.False(t, s.Loading(ResourceClasses))
	assert.True(t, s.Loading(ResourceStudents))
}

func TestFailedFetchClearsLoading(t *testing.T) {
	s := NewStore()
	token := s.BeginFetch(ResourceStudents)
	assert.True(t, s.Loading(ResourceStudents))

	s.FailFetch(ResourceStudents, token)
	assert.False(t, s.Loading(ResourceStudents), "flag must never stay stuck after a failure")
}

func TestStaleFetchCompletionIsDiscarded(t *testing.T) {
	s := NewStore()
	s.ReplaceClassList([]Class{cls("1", "Math"), cls("2", "Physics")})

	// first selection, fetch outstanding
	s.SelectClass(cls("1", "Math"))
	first := s.BeginFetch(ResourceStudents)

	// user re-selects before the first fetch lands
	s.SelectClass(cls("2", "Physics"))
	second := s.BeginFetch(ResourceStudents)

	// second fetch lands first
	assert.True(t, s.CompleteStudentFetch(second, []Student{stu("s9", "u9")}))
	assert.False(t, s.Loading(ResourceStudents))

	// the first fetch's late completion must not overwrite the newer result
	assert.False(t, s.CompleteStudentFetch(first, []Student{stu("s1", "u1")}))
	students := s.Students()
	assert.Len(t, students, 1)
	assert.Equal(t, "s9", students[0].ID)

	// nor may a stale failure clear the flag of a newer in-flight fetch
	third := s.BeginFetch(ResourceStudents)
	s.FailFetch(ResourceStudents, second)
	assert.True(t, s.Loading(ResourceStudents))
	s.FailFetch(ResourceStudents, third)
	assert.False(t, s.Loading(ResourceStudents))
}

func TestStaleClassFetchIsDiscarded(t *testing.T) {
	s := NewStore()
	first := s.BeginFetch(ResourceClasses)
	second := s.BeginFetch(ResourceClasses)

	assert.True(t, s.CompleteClassFetch(second, []Class{cls("2", "Physics")}))
	assert.False(t, s.CompleteClassFetch(first, []Class{cls("1", "Math")}))

	classes := s.Classes()
	assert.Len(t, classes, 1)
	assert.Equal(t, "2", classes[0].ID)
}

func TestReset(t *testing.T) {
	s := NewStore()
	s.ReplaceClassList([]Class{cls("1", "Math")})
	s.SelectClass(cls("1", "Math"))
	s.ReplaceStudentList([]Student{stu("s1", "u1")})
	s.SetLoading(ResourceReports, true)

	s.Reset()

	assert.Empty(t, s.Classes())
	assert.Empty(t, s.Students())
	_, ok := s.Selected()
	assert.False(t, ok)
	assert.False(t, s.Loading(ResourceReports))
}

func TestSubscribersSeeConsistentState(t *testing.T) {
	s := NewStore()
	s.ReplaceClassList([]Class{cls("1", "Math"), cls("2", "Physics")})
	s.SelectClass(cls("1", "Math"))
	s.ReplaceStudentList([]Student{stu("s1", "u1")})

	var snaps []Snapshot
	unsubscribe := s.Subscribe(func(snap Snapshot) {
		snaps = append(snaps, snap)
		// every delivered snapshot satisfies the cross-entity invariant
		if snap.Selected != nil {
			found := false
			for _, c := range snap.Classes {
				if c.ID == snap.Selected.ID {
					found = true
				}
			}
			assert.True(t, found)
		}
	})

	s.RemoveClass("1")
	assert.Len(t, snaps, 1)
	assert.Nil(t, snaps[0].Selected)
	assert.Empty(t, snaps[0].Students)

	unsubscribe()
	s.AddClass(cls("3", "Chemistry"))
	assert.Len(t, snaps, 1, "unsubscribed listeners receive nothing")
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStore()
	s.ReplaceClassList([]Class{cls("1", "Math")})

	snap := s.Snapshot()
	snap.Classes[0].Subject = "mutated"
	snap.Loading[ResourceClasses] = true

	assert.Equal(t, "Math", s.Classes()[0].Subject)
	assert.False(t, s.Loading(ResourceClasses))
}
