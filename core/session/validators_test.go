package session

import (
	"errors"
	"testing"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core"
)

func TestNewTeacherPasswordPolicy(t *testing.T) {
	base := NewTeacher{Name: "Grace Hopper", TeacherID: "gh001", Department: "CS"}

	tests := []struct {
		name    string
		pwd     string
		wantTag string // expected failing field message fragment; empty = valid
	}{
		{name: "too short", pwd: "Aa1!", wantTag: pwdMinLenText},
		{name: "whitespace", pwd: "Aa1! aaaa", wantTag: pwdNoSpaceText},
		{name: "all numeric", pwd: "12345678", wantTag: pwdNotAllNumText},
		{name: "missing complexity", pwd: "aaaaaaa1", wantTag: pwdComplexityText},
		{name: "similar to teacher id", pwd: "Gh001!gh0", wantTag: pwdAttrSimText},
		{name: "valid", pwd: "Str0ng!pass"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nt := base
			nt.Password = tt.pwd
			err := core.CheckStruct(nt, errors.New("registration failed"))
			if tt.wantTag == "" {
				if err != nil {
					t.Fatalf("CheckStruct() = %v, want nil", err)
				}
				return
			}
			var vErr *core.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("CheckStruct() = %v, want *core.ValidationError", err)
			}
			for _, fld := range vErr.Fields {
				if fld.Field == "password" && fld.Error == tt.wantTag {
					return
				}
			}
			t.Errorf("no password field error %q in %+v", tt.wantTag, vErr.Fields)
		})
	}
}

func TestNewTeacherRequiredFields(t *testing.T) {
	err := core.CheckStruct(NewTeacher{}, errors.New("registration failed"))
	var vErr *core.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("CheckStruct() = %v, want *core.ValidationError", err)
	}
	want := map[string]bool{"name": false, "teacher_id": false, "department": false, "password": false}
	for _, fld := range vErr.Fields {
		if _, ok := want[fld.Field]; ok {
			want[fld.Field] = true
		}
	}
	for fld, seen := range want {
		if !seen {
			t.Errorf("missing required-field error for %q", fld)
		}
	}
}
