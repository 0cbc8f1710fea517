package service

import (
	"reflect"
	"testing"
)

func TestClassifyExplicitTags(t *testing.T) {
	svc := NewTagService()

	tests := []struct {
		name     string
		explicit string
		imageRef string
		want     []string
	}{
		{
			name:     "trimmed and lower-cased, order preserved",
			explicit: "Saree, Silk",
			want:     []string{"saree", "silk"},
		},
		{
			name:     "empty parts dropped",
			explicit: "saree,, ,silk,",
			want:     []string{"saree", "silk"},
		},
		{
			name:     "duplicates preserved",
			explicit: "wood, wood",
			want:     []string{"wood", "wood"},
		},
		{
			name:     "explicit wins over image filename",
			explicit: "jewelry",
			imageRef: "handloom_saree.jpg",
			want:     []string{"jewelry"},
		},
		{
			name:     "whitespace-only falls back to default",
			explicit: " , , ",
			want:     []string{"handmade", "traditional"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Classify(tt.explicit, tt.imageRef)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify(%q, %q) = %v, want %v", tt.explicit, tt.imageRef, got, tt.want)
			}
		})
	}
}

func TestClassifyImageFilename(t *testing.T) {
	svc := NewTagService()

	tests := []struct {
		name     string
		imageRef string
		want     []string
	}{
		{
			name:     "matches in vocabulary order",
			imageRef: "blue_pottery_mug.jpg",
			want:     []string{"pottery", "mug"},
		},
		{
			name:     "uuid prefix does not disturb matching",
			imageRef: "9f8a1c2e_handloom_saree.png",
			want:     []string{"saree", "handloom"},
		},
		{
			name:     "upper-case filename",
			imageRef: "WOOD_CARVING.JPG",
			want:     []string{"wood", "carving"},
		},
		{
			name:     "no vocabulary match falls back to default",
			imageRef: "IMG_2041.jpg",
			want:     []string{"handmade", "traditional"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Classify("", tt.imageRef)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify(\"\", %q) = %v, want %v", tt.imageRef, got, tt.want)
			}
		})
	}
}

func TestClassifyNeverEmpty(t *testing.T) {
	svc := NewTagService()

	if got := svc.Classify("", ""); !reflect.DeepEqual(got, []string{"handmade", "traditional"}) {
		t.Errorf("Classify with no input = %v, want default set", got)
	}
}
