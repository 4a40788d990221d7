package models

import "testing"

func TestHasAdult(t *testing.T) {
	tests := []struct {
		name   string
		family *Family
		want   bool
	}{
		{"first adult only", &Family{FirstAdultName: "Ashur"}, true},
		{"second adult only", &Family{SecondAdultName: "Shamiram"}, true},
		{"both adults", &Family{FirstAdultName: "Ashur", SecondAdultName: "Shamiram"}, true},
		{"no adults", &Family{Surname: "Oraha"}, false},
		{"whitespace-only name", &Family{FirstAdultName: "   "}, false},
		{"whitespace both", &Family{FirstAdultName: " ", SecondAdultName: "\t"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.family.HasAdult(); got != tt.want {
				t.Errorf("HasAdult() = %v, want %v", got, tt.want)
			}
		})
	}
}
