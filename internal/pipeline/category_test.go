package pipeline

import "testing"

func TestSplitCategory(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string // expected non-nil levels in order
	}{
		{
			name: "three levels",
			raw:  "Computers&Accessories|Accessories&Peripherals|Cables&Accessories",
			want: []string{"Computers&Accessories", "Accessories&Peripherals", "Cables&Accessories"},
		},
		{
			name: "single level",
			raw:  "Electronics",
			want: []string{"Electronics"},
		},
		{
			name: "five levels",
			raw:  "a|b|c|d|e",
			want: []string{"a", "b", "c", "d", "e"},
		},
		{
			name: "extra segments dropped",
			raw:  "a|b|c|d|e|f|g",
			want: []string{"a", "b", "c", "d", "e"},
		},
		{
			name: "segments trimmed",
			raw:  " Electronics | Headphones ",
			want: []string{"Electronics", "Headphones"},
		},
		{
			name: "empty",
			raw:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			levels := SplitCategory(tt.raw)

			for idx, want := range tt.want {
				got := levels.Level(idx + 1)
				if got == nil {
					t.Fatalf("level %d is nil, want %q", idx+1, want)
				}
				if *got != want {
					t.Errorf("level %d = %q, want %q", idx+1, *got, want)
				}
			}
			// Everything past the split length must be nil.
			for idx := len(tt.want); idx < 5; idx++ {
				if got := levels.Level(idx + 1); got != nil {
					t.Errorf("level %d = %q, want nil", idx+1, *got)
				}
			}
		})
	}
}

func TestCategoryLevelBounds(t *testing.T) {
	levels := SplitCategory("a|b")
	if levels.Level(0) != nil {
		t.Error("Level(0) should be nil")
	}
	if levels.Level(6) != nil {
		t.Error("Level(6) should be nil")
	}
}
