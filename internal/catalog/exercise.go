package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/2beens/physioroutines/internal/document"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// Exercise is one entry of the exercise library.
type Exercise struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Category     string `json:"category" yaml:"category"`
	Description  string `json:"description" yaml:"description"`
	Instructions string `json:"instructions" yaml:"instructions"`
	Sets         int    `json:"sets" yaml:"sets"`
	Reps         *int   `json:"reps" yaml:"reps"`
	// Duration of one set, in seconds
	Duration *int    `json:"duration" yaml:"duration"`
	Image    *string `json:"image,omitempty" yaml:"image,omitempty"`
	Gif      *string `json:"gif,omitempty" yaml:"gif,omitempty"`
}

// Steps returns the instructions as separate lines.
func (e *Exercise) Steps() []string {
	if e.Instructions == "" {
		return []string{}
	}
	return lineBreak.Split(e.Instructions, -1)
}

// Normalize trims text fields, drops empty instruction lines, and clears
// empty reps, duration and media fields.
func (e *Exercise) Normalize() {
	e.Name = strings.TrimSpace(e.Name)
	e.Category = strings.TrimSpace(e.Category)
	e.Description = strings.TrimSpace(e.Description)
	e.Instructions = NormalizeInstructions(e.Instructions)
	if e.Reps != nil && *e.Reps <= 0 {
		e.Reps = nil
	}
	if e.Duration != nil && *e.Duration <= 0 {
		e.Duration = nil
	}
	e.Image = normalizeURL(e.Image)
	e.Gif = normalizeURL(e.Gif)
}

// Validate expects a normalized exercise.
func (e *Exercise) Validate() error {
	switch {
	case e.Name == "":
		return fmt.Errorf("%w: exercise name is required", document.ErrValidation)
	case e.Category == "":
		return fmt.Errorf("%w: exercise category is required", document.ErrValidation)
	case e.Description == "":
		return fmt.Errorf("%w: exercise description is required", document.ErrValidation)
	case e.Instructions == "":
		return fmt.Errorf("%w: at least one instruction is required", document.ErrValidation)
	case e.Sets < 1:
		return fmt.Errorf("%w: sets must be 1 or more", document.ErrValidation)
	case e.Reps == nil && e.Duration == nil:
		return fmt.Errorf("%w: reps or duration must be provided", document.ErrValidation)
	}
	return nil
}

// NormalizeInstructions trims every instruction line and drops the empty ones.
func NormalizeInstructions(raw string) string {
	var lines []string
	for _, line := range lineBreak.Split(raw, -1) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func normalizeURL(u *string) *string {
	if u == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*u)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
