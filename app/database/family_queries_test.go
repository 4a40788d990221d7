package database

import (
	"fmt"
	"testing"

	"github.com/ashuraya1989-cyber/assyrian-church/app/models"
)

func familyWithChildren(n int) *models.Family {
	f := &models.Family{Surname: "Younan", FirstAdultName: "Ashur"}
	for i := 0; i < n; i++ {
		f.Children = append(f.Children, &models.Child{
			Position: i + 1,
			Name:     fmt.Sprintf("Barn %d", i+1),
		})
	}
	return f
}

func TestValidateFamily(t *testing.T) {
	tests := []struct {
		name    string
		family  *models.Family
		wantErr bool
	}{
		{"adult and no children", familyWithChildren(0), false},
		{"exactly six children", familyWithChildren(6), false},
		{"seventh child rejected", familyWithChildren(7), true},
		{"no adult name", &models.Family{Surname: "Oraha"}, true},
		{"whitespace-only adult name", &models.Family{Surname: "Odisho", FirstAdultName: "   "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFamily(tt.family)
			if tt.wantErr {
				if !IsValidation(err) {
					t.Errorf("validateFamily() = %v, want a ValidationError", err)
				}
			} else if err != nil {
				t.Errorf("validateFamily() = %v, want nil", err)
			}
		})
	}
}

// The child cap is enforced before any store access: an over-limit family must
// come back as a ValidationError without the upsert ever touching the
// database.
func TestUpsertFamilyWithChildrenRejectsSeventhChild(t *testing.T) {
	_, err := UpsertFamilyWithChildren(nil, familyWithChildren(7))
	if !IsValidation(err) {
		t.Fatalf("UpsertFamilyWithChildren() = %v, want a ValidationError", err)
	}
}
