package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestProjectRef_RoundTrip(t *testing.T) {
	id := ProjectID{uuid.New()}

	tests := []struct {
		name string
		ref  ProjectRef
		kind RefKind
	}{
		{name: "by id", ref: ProjectRefByID(id), kind: RefID},
		{name: "by name", ref: ProjectRefByName("shop"), kind: RefName},
		{name: "default", ref: DefaultProjectRef(), kind: RefDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ref.Kind() != tt.kind {
				t.Fatalf("expected kind %v, got %v", tt.kind, tt.ref.Kind())
			}

			back, err := ProjectRefFromArgs(tt.ref.Args())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if back != tt.ref {
				t.Errorf("expected %v, got %v", tt.ref, back)
			}

			again, err := ProjectRefFromArgs(back.Args())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if again != back {
				t.Errorf("second round trip changed ref: %v -> %v", back, again)
			}
		})
	}
}

func TestProjectRefFromArgs_Conflict(t *testing.T) {
	id := uuid.New()
	_, err := ProjectRefFromArgs(ProjectRefArgs{ProjectID: &id, ProjectName: "shop"})
	if !errors.Is(err, ErrConflictingProjectRef) {
		t.Errorf("expected ErrConflictingProjectRef, got %v", err)
	}
}

func TestProjectRef_ZeroValueIsDefault(t *testing.T) {
	var ref ProjectRef
	if ref != DefaultProjectRef() {
		t.Errorf("zero ProjectRef should equal DefaultProjectRef, got %v", ref)
	}
	if _, ok := ref.ID(); ok {
		t.Error("default ref must not report an id")
	}
	if _, ok := ref.Name(); ok {
		t.Error("default ref must not report a name")
	}
}

func TestComponentRef_RoundTrip(t *testing.T) {
	cid := ComponentID{uuid.New()}
	pid := ProjectID{uuid.New()}

	refs := []ComponentIDOrName{
		ComponentRefByID(cid),
		ComponentRefByName("cart", DefaultProjectRef()),
		ComponentRefByName("cart", ProjectRefByName("shop")),
		ComponentRefByName("cart", ProjectRefByID(pid)),
	}

	for _, ref := range refs {
		t.Run(ref.String(), func(t *testing.T) {
			back, err := ComponentRefFromArgs(ref.Args())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if back != ref {
				t.Errorf("expected %v, got %v", ref, back)
			}
		})
	}
}

func TestComponentRefFromArgs_Invalid(t *testing.T) {
	cid := uuid.New()
	pid := uuid.New()

	tests := []struct {
		name string
		args ComponentArgs
		want error
	}{
		{
			name: "id and name",
			args: ComponentArgs{ComponentID: &cid, ComponentName: "cart"},
			want: ErrConflictingComponentRef,
		},
		{
			name: "id and project id",
			args: ComponentArgs{ComponentID: &cid, ProjectID: &pid},
			want: ErrConflictingComponentRef,
		},
		{
			name: "id and project name",
			args: ComponentArgs{ComponentID: &cid, ProjectName: "shop"},
			want: ErrConflictingComponentRef,
		},
		{
			name: "nothing",
			args: ComponentArgs{},
			want: ErrMissingComponentRef,
		},
		{
			name: "name with both project flags",
			args: ComponentArgs{ComponentName: "cart", ProjectID: &pid, ProjectName: "shop"},
			want: ErrConflictingProjectRef,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComponentRefFromArgs(tt.args)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
