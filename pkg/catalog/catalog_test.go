package catalog

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("built-in catalog should validate: %v", err)
	}
}

func TestGlobalGroupIsNotAListing(t *testing.T) {
	for _, g := range Groups {
		if g.ID == GlobalGroupID {
			t.Fatal("the global community must not appear in the listings")
		}
	}
	if GlobalGroup.ID != GlobalGroupID {
		t.Fatal("GlobalGroup must carry GlobalGroupID")
	}
}

func TestFeaturedCountWithinListings(t *testing.T) {
	if FeaturedGroupCount > len(Groups) {
		t.Fatalf("featured count %d exceeds %d listings", FeaturedGroupCount, len(Groups))
	}
}

func TestVizagColleges(t *testing.T) {
	got := VizagColleges()
	if len(got) == 0 {
		t.Fatal("there should be Visakhapatnam colleges")
	}
	for _, c := range got {
		if !strings.EqualFold(c.Location, "Visakhapatnam") {
			t.Fatalf("college %q has location %q", c.ID, c.Location)
		}
	}
}

func TestFindCollege(t *testing.T) {
	if c := FindCollege("andhra-university"); c == nil || c.Name != "Andhra University" {
		t.Fatal("FindCollege should resolve known ids")
	}
	if c := FindCollege("nope"); c != nil {
		t.Fatal("FindCollege on an unknown id should return nil")
	}
}
