package passengers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSex(t *testing.T) {
	cases := map[string]Sex{
		"male":    Male,
		" Male ":  Male,
		"female":  Female,
		"":        Female,
		"unknown": Female,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseSex(in), "input %q", in)
	}
}

func TestRecordGroup_TotalAndExclusive(t *testing.T) {
	cases := []struct {
		sex      Sex
		survived bool
		want     Group
	}{
		{Female, true, FemaleSurvived},
		{Female, false, FemaleNotSurvived},
		{Male, true, MaleSurvived},
		{Male, false, MaleNotSurvived},
	}
	seen := map[Group]bool{}
	for _, c := range cases {
		g := Record{Sex: c.sex, Survived: c.survived}.Group()
		assert.Equal(t, c.want, g)
		assert.Equal(t, c.sex == Male, g.IsMale())
		assert.Equal(t, c.survived, g.Survived())
		seen[g] = true
	}
	assert.Len(t, seen, NumGroups)
}

func TestGroupLabels(t *testing.T) {
	want := []string{"Female, survived", "Female, not survived", "Male, survived", "Male, not survived"}
	for i, g := range Groups {
		assert.Equal(t, want[i], g.Label())
	}
	assert.Empty(t, Group(7).Label())
}

func TestPlottable(t *testing.T) {
	assert.True(t, Record{Age: 30, AgeKnown: true, Fare: 50}.Plottable())
	assert.True(t, Record{Age: 0, AgeKnown: true, Fare: 7.25}.Plottable(), "infant age 0 is a known age")
	assert.False(t, Record{Fare: 50}.Plottable(), "missing age")
	assert.False(t, Record{Age: 30, AgeKnown: true}.Plottable(), "zero fare")
}

func TestPartition_PreservesOrderAndSkipsUnplottable(t *testing.T) {
	recs := []Record{
		{Name: "a", Sex: Male, Age: 30, AgeKnown: true, Fare: 50},
		{Name: "b", Sex: Female, Age: 40, AgeKnown: true, Fare: 10},
		{Name: "c", Sex: Male, Fare: 50},
		{Name: "d", Sex: Female, Age: 22, AgeKnown: true, Fare: 0},
		{Name: "e", Sex: Male, Age: 5, AgeKnown: true, Fare: 20},
		{Name: "f", Sex: Female, Age: 1, AgeKnown: true, Fare: 30},
	}
	male, female := Partition(recs)
	require.Len(t, male, 2)
	require.Len(t, female, 2)
	assert.Equal(t, "a", male[0].Name)
	assert.Equal(t, "e", male[1].Name)
	assert.Equal(t, "b", female[0].Name)
	assert.Equal(t, "f", female[1].Name)
}

func TestCountGroups(t *testing.T) {
	recs := []Record{
		{Sex: Male, Survived: true, Age: 30, AgeKnown: true, Fare: 50},
		{Sex: Male, Survived: true, Fare: 50},
		{Sex: Female, Survived: false, Age: 40, AgeKnown: true, Fare: 10},
	}
	c := CountGroups(recs)
	assert.Equal(t, [NumGroups]int{0, 1, 2, 0}, c.Total)
	assert.Equal(t, [NumGroups]int{0, 1, 1, 0}, c.Plottable)
	assert.Equal(t, 3, c.Records())
}
