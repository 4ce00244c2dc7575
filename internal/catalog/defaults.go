package catalog

import (
	"strconv"
	"strings"
)

const (
	defaultSets         = 2
	defaultReps         = 10
	defaultInstructions = "1. Follow standard form\n2. Control movement\n3. Repeat as needed"
)

var defaultLibrary = []struct {
	name     string
	category string
}{
	{"Ab Stretch", "core"},
	{"Ankle Circles", "ankle"},
	{"Ankle Hops", "ankle"},
	{"Ankle Tap Push Ups", "ankle"},
	{"Back Balance Chop", "back"},
	{"Back Bent Over Row Press", "back"},
	{"Back Bird Dog", "back"},
	{"Back Extensions", "back"},
	{"Back Stretch", "back"},
	{"Butterfly Stretch", "general"},
	{"Chest Abdominal", "core"},
	{"Chest Bent Leg Jackknife Exercise", "knee"},
	{"Crunches", "core"},
	{"Neck Tilt", "neck"},
	{"Plank", "general"},
	{"Shoulder Arm Swing", "shoulder"},
	{"Shoulder Lunge Front", "shoulder"},
	{"Shoulder Roll", "shoulder"},
	{"Shoulder Squeeze Reverse Lunge", "shoulder"},
	{"Shoulder Stretch", "shoulder"},
	{"Jumping Jacks", "general"},
}

// Defaults returns a fresh copy of the built-in exercise library, with ids 1..21.
func Defaults() []Exercise {
	exercises := make([]Exercise, 0, len(defaultLibrary))
	for i, d := range defaultLibrary {
		reps := defaultReps
		gif := "images/" + slug(d.name) + ".gif"
		exercises = append(exercises, Exercise{
			ID:           strconv.Itoa(i + 1),
			Name:         d.name,
			Category:     d.category,
			Description:  "Description for " + d.name + ".",
			Instructions: defaultInstructions,
			Sets:         defaultSets,
			Reps:         &reps,
			Duration:     nil,
			Gif:          &gif,
		})
	}
	return exercises
}

func slug(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}
