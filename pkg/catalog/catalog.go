// Package catalog holds the closed reference data the app selects from:
// colleges, branches, study years, skill and interest tags, and the
// community group listings. The data is fixed at build time and checked
// once by Validate, so the rest of the code can trust it instead of
// re-validating loosely-typed option records at every use site.
package catalog

import (
	"fmt"
	"strings"

	"github.com/vanderheijden86/edugram/pkg/model"
)

// College is an institution a user can declare on their profile.
type College struct {
	ID       string
	Name     string
	Location string
}

// Branch is a program of study.
type Branch struct {
	Code string
	Name string
}

// Colleges lists the institutions offered during profile setup.
var Colleges = []College{
	{ID: "andhra-university", Name: "Andhra University", Location: "Visakhapatnam"},
	{ID: "gitam-university", Name: "GITAM University", Location: "Visakhapatnam"},
	{ID: "gvpce", Name: "Gayatri Vidya Parishad College Of Engineering (A)", Location: "Visakhapatnam"},
	{ID: "mvgr-college", Name: "MVGR College of Engineering", Location: "Visakhapatnam"},
	{ID: "vignan-university", Name: "Vignan University", Location: "Visakhapatnam"},
	{ID: "centurion-university", Name: "Centurion University", Location: "Visakhapatnam"},
	{ID: "anil-neerukonda", Name: "Anil Neerukonda Institute of Technology", Location: "Visakhapatnam"},
	{ID: "dhanekula", Name: "Dhanekula Institute of Engineering", Location: "Visakhapatnam"},
	{ID: "pragati-engineering", Name: "Pragati Engineering College", Location: "Visakhapatnam"},
	{ID: "srkr-engineering", Name: "SRKR Engineering College", Location: "Visakhapatnam"},
	{ID: "iit-bombay", Name: "IIT Bombay", Location: "Mumbai"},
	{ID: "iit-delhi", Name: "IIT Delhi", Location: "New Delhi"},
	{ID: "iit-madras", Name: "IIT Madras", Location: "Chennai"},
	{ID: "iit-kanpur", Name: "IIT Kanpur", Location: "Kanpur"},
	{ID: "iit-kharagpur", Name: "IIT Kharagpur", Location: "Kharagpur"},
	{ID: "iit-roorkee", Name: "IIT Roorkee", Location: "Roorkee"},
	{ID: "iit-guwahati", Name: "IIT Guwahati", Location: "Guwahati"},
	{ID: "iit-hyderabad", Name: "IIT Hyderabad", Location: "Hyderabad"},
	{ID: "nit-trichy", Name: "NIT Tiruchirappalli", Location: "Tiruchirappalli"},
	{ID: "nit-warangal", Name: "NIT Warangal", Location: "Warangal"},
	{ID: "nit-surathkal", Name: "NIT Karnataka (Surathkal)", Location: "Surathkal"},
	{ID: "nit-rourkela", Name: "NIT Rourkela", Location: "Rourkela"},
	{ID: "nit-calicut", Name: "NIT Calicut", Location: "Calicut"},
	{ID: "bits-pilani", Name: "BITS Pilani", Location: "Pilani"},
	{ID: "bits-goa", Name: "BITS Goa", Location: "Goa"},
	{ID: "iiit-hyderabad", Name: "IIIT Hyderabad", Location: "Hyderabad"},
	{ID: "dtu", Name: "Delhi Technological University", Location: "New Delhi"},
	{ID: "jadavpur-university", Name: "Jadavpur University", Location: "Kolkata"},
}

// Branches lists the programs offered during profile setup.
var Branches = []Branch{
	{Code: "CSE", Name: "Computer Science Engineering"},
	{Code: "IT", Name: "Information Technology"},
	{Code: "ECE", Name: "Electronics & Communication Engineering"},
	{Code: "EEE", Name: "Electrical & Electronics Engineering"},
	{Code: "MECH", Name: "Mechanical Engineering"},
	{Code: "CIVIL", Name: "Civil Engineering"},
	{Code: "CHEM", Name: "Chemical Engineering"},
	{Code: "AERO", Name: "Aeronautical Engineering"},
	{Code: "AUTO", Name: "Automobile Engineering"},
	{Code: "BIO", Name: "Biotechnology"},
}

// Years lists the study years offered during profile setup.
var Years = []string{"1st Year", "2nd Year", "3rd Year", "4th Year", "Graduate"}

// Skills lists the selectable skill tags.
var Skills = []string{
	"Programming", "Web Development", "Mobile Development", "Data Science",
	"Machine Learning", "AI", "Cloud Computing", "DevOps", "Cybersecurity",
	"UI/UX Design", "Digital Marketing", "Project Management", "Database Management",
	"System Design", "Networking", "Blockchain", "IoT", "Robotics",
	"Game Development", "AR/VR", "Photography", "Video Editing",
}

// Interests lists the selectable interest tags.
var Interests = []string{
	"Technology", "Science", "Mathematics", "Physics", "Chemistry",
	"Biology", "History", "Literature", "Art", "Music", "Sports",
	"Travel", "Cooking", "Gaming", "Reading", "Writing", "Dancing",
	"Singing", "Fitness", "Yoga", "Meditation", "Environment",
}

// GlobalGroupID identifies the one listing anyone may join without
// verification.
const GlobalGroupID = "global-community"

// GlobalGroup is the worldwide student community listing.
var GlobalGroup = model.Group{
	ID:       GlobalGroupID,
	Name:     "Global Student Community",
	Location: "Worldwide",
	Members:  15847,
	Type:     "Global",
}

// Groups lists the college community groups, featured listings first.
var Groups = []model.Group{
	{ID: "andhra-university", Name: "Andhra University", Location: "Visakhapatnam", Members: 2847, Type: "University"},
	{ID: "gitam-university", Name: "GITAM University", Location: "Visakhapatnam", Members: 3241, Type: "University"},
	{ID: "gvpce", Name: "GVPCE(A)", Location: "Visakhapatnam", Members: 1523, Type: "Engineering"},
	{ID: "mvgr-college", Name: "MVGR College of Engineering", Location: "Visakhapatnam", Members: 1876, Type: "Engineering"},
	{ID: "vignan-university", Name: "Vignan University", Location: "Visakhapatnam", Members: 2134, Type: "University"},
	{ID: "dadi-institute", Name: "Dadi Institute of Engineering", Location: "Visakhapatnam", Members: 987, Type: "Engineering"},
	{ID: "anil-neerukonda", Name: "Anil Neerukonda Institute", Location: "Visakhapatnam", Members: 1456, Type: "Engineering"},
	{ID: "raghu-engineering", Name: "Raghu Engineering College", Location: "Visakhapatnam", Members: 1234, Type: "Engineering"},
	{ID: "iit-bombay", Name: "IIT Bombay", Location: "Mumbai", Members: 4521, Type: "IIT"},
	{ID: "iit-delhi", Name: "IIT Delhi", Location: "New Delhi", Members: 4234, Type: "IIT"},
	{ID: "iit-madras", Name: "IIT Madras", Location: "Chennai", Members: 4156, Type: "IIT"},
	{ID: "iit-kanpur", Name: "IIT Kanpur", Location: "Kanpur", Members: 3987, Type: "IIT"},
	{ID: "iit-kharagpur", Name: "IIT Kharagpur", Location: "Kharagpur", Members: 4087, Type: "IIT"},
	{ID: "iit-roorkee", Name: "IIT Roorkee", Location: "Roorkee", Members: 3654, Type: "IIT"},
	{ID: "iit-guwahati", Name: "IIT Guwahati", Location: "Guwahati", Members: 3456, Type: "IIT"},
	{ID: "iit-hyderabad", Name: "IIT Hyderabad", Location: "Hyderabad", Members: 3234, Type: "IIT"},
	{ID: "nit-trichy", Name: "NIT Tiruchirappalli", Location: "Tiruchirappalli", Members: 3876, Type: "NIT"},
	{ID: "nit-warangal", Name: "NIT Warangal", Location: "Warangal", Members: 3654, Type: "NIT"},
	{ID: "nit-surathkal", Name: "NIT Karnataka", Location: "Surathkal", Members: 3456, Type: "NIT"},
	{ID: "nit-rourkela", Name: "NIT Rourkela", Location: "Rourkela", Members: 3234, Type: "NIT"},
	{ID: "nit-calicut", Name: "NIT Calicut", Location: "Calicut", Members: 3123, Type: "NIT"},
	{ID: "nit-durgapur", Name: "NIT Durgapur", Location: "Durgapur", Members: 2987, Type: "NIT"},
	{ID: "nit-jamshedpur", Name: "NIT Jamshedpur", Location: "Jamshedpur", Members: 2876, Type: "NIT"},
	{ID: "nit-kurukshetra", Name: "NIT Kurukshetra", Location: "Kurukshetra", Members: 2765, Type: "NIT"},
	{ID: "nit-allahabad", Name: "NIT Allahabad", Location: "Prayagraj", Members: 2654, Type: "NIT"},
	{ID: "nit-bhopal", Name: "NIT Bhopal", Location: "Bhopal", Members: 2543, Type: "NIT"},
}

// FeaturedGroupCount is how many listings an empty search shows.
const FeaturedGroupCount = 5

// VizagColleges returns the subset of Colleges located in Visakhapatnam,
// the default set offered in the signup form.
func VizagColleges() []College {
	var out []College
	for _, c := range Colleges {
		if strings.EqualFold(c.Location, "Visakhapatnam") {
			out = append(out, c)
		}
	}
	return out
}

// FindCollege returns the college with the given id, or nil.
func FindCollege(id string) *College {
	for i := range Colleges {
		if Colleges[i].ID == id {
			return &Colleges[i]
		}
	}
	return nil
}

// Validate checks the catalog's internal consistency: non-empty fields
// and unique identifiers. It is called once at startup; a failure is a
// build defect, not a runtime condition.
func Validate() error {
	seen := make(map[string]bool, len(Colleges))
	for _, c := range Colleges {
		if c.ID == "" || c.Name == "" || c.Location == "" {
			return fmt.Errorf("catalog: incomplete college entry %+v", c)
		}
		if seen[c.ID] {
			return fmt.Errorf("catalog: duplicate college id %q", c.ID)
		}
		seen[c.ID] = true
	}
	seenGroup := make(map[string]bool, len(Groups)+1)
	seenGroup[GlobalGroup.ID] = true
	for _, g := range Groups {
		if g.ID == "" || g.Name == "" {
			return fmt.Errorf("catalog: incomplete group entry %+v", g)
		}
		if seenGroup[g.ID] {
			return fmt.Errorf("catalog: duplicate group id %q", g.ID)
		}
		seenGroup[g.ID] = true
	}
	for _, b := range Branches {
		if b.Code == "" || b.Name == "" {
			return fmt.Errorf("catalog: incomplete branch entry %+v", b)
		}
	}
	if len(Years) == 0 || len(Skills) == 0 || len(Interests) == 0 {
		return fmt.Errorf("catalog: empty selection list")
	}
	return nil
}
