// Package passengers holds the passenger dataset model: records, the four
// sex × survival groups, and CSV loading.
package passengers

import "strings"

// Sex of a passenger. Only "male" is Male; every other value is Female.
type Sex int

const (
	Female Sex = iota
	Male
)

// ParseSex maps a raw Sex column value to a Sex.
func ParseSex(s string) Sex {
	if strings.EqualFold(strings.TrimSpace(s), "male") {
		return Male
	}
	return Female
}

func (s Sex) String() string {
	if s == Male {
		return "male"
	}
	return "female"
}

// Record is one passenger row. Records are immutable once loaded.
type Record struct {
	Name     string
	Sex      Sex
	Age      float64
	AgeKnown bool
	Fare     float64
	Survived bool
}

// Plottable reports whether the record has an age and a nonzero fare.
func (r Record) Plottable() bool {
	return r.AgeKnown && r.Fare != 0
}

// Group identifies one of the four mutually exclusive sex × survival classes.
// The numeric value is the index into a visibility vector.
type Group int

const (
	FemaleSurvived Group = iota
	FemaleNotSurvived
	MaleSurvived
	MaleNotSurvived
)

// NumGroups is the number of groups.
const NumGroups = 4

// Groups lists every group in legend order.
var Groups = [NumGroups]Group{FemaleSurvived, FemaleNotSurvived, MaleSurvived, MaleNotSurvived}

var groupLabels = [NumGroups]string{
	"Female, survived",
	"Female, not survived",
	"Male, survived",
	"Male, not survived",
}

// Label returns the legend text for g.
func (g Group) Label() string {
	if g < 0 || int(g) >= NumGroups {
		return ""
	}
	return groupLabels[g]
}

// IsMale reports whether g is one of the male groups.
func (g Group) IsMale() bool { return g == MaleSurvived || g == MaleNotSurvived }

// Survived reports whether g is one of the survivor groups.
func (g Group) Survived() bool { return g == FemaleSurvived || g == MaleSurvived }

// Group returns the group r belongs to.
func (r Record) Group() Group {
	switch {
	case r.Sex == Male && r.Survived:
		return MaleSurvived
	case r.Sex == Male:
		return MaleNotSurvived
	case r.Survived:
		return FemaleSurvived
	default:
		return FemaleNotSurvived
	}
}

// Partition splits the plottable records by sex, preserving order.
// Records that are not plottable are skipped.
func Partition(records []Record) (male, female []Record) {
	for _, r := range records {
		if !r.Plottable() {
			continue
		}
		if r.Sex == Male {
			male = append(male, r)
		} else {
			female = append(female, r)
		}
	}
	return male, female
}

// GroupCounts tallies records per group.
type GroupCounts struct {
	Total     [NumGroups]int
	Plottable [NumGroups]int
}

// Records returns the number of records counted.
func (c GroupCounts) Records() int {
	n := 0
	for _, v := range c.Total {
		n += v
	}
	return n
}

// CountGroups counts all and plottable records per group.
func CountGroups(records []Record) GroupCounts {
	var c GroupCounts
	for _, r := range records {
		g := r.Group()
		c.Total[g]++
		if r.Plottable() {
			c.Plottable[g]++
		}
	}
	return c
}
