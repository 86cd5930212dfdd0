package entity

import "strings"

// Step is one move from a split container into one of its children.
type Step int

const (
	StepLeft Step = iota
	StepRight
)

func (s Step) String() string {
	if s == StepLeft {
		return "left"
	}
	return "right"
}

// Other returns the opposite step.
func (s Step) Other() Step {
	if s == StepLeft {
		return StepRight
	}
	return StepLeft
}

// Path is a sequence of steps from a tree root.
// The empty path designates the root itself.
type Path []Step

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return Path{}
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Parent returns the path without its last step.
// The parent of the empty path is the empty path.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	return p[:len(p)-1].Clone()
}

// Last returns the final step. ok is false for the empty path.
func (p Path) Last() (step Step, ok bool) {
	if len(p) == 0 {
		return StepLeft, false
	}
	return p[len(p)-1], true
}

// Append returns a new path extended by steps; p is not modified.
func (p Path) Append(steps ...Step) Path {
	out := make(Path, 0, len(p)+len(steps))
	out = append(out, p...)
	return append(out, steps...)
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
