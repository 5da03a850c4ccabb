package prompt

import (
	"fmt"

	"github.com/theirongolddev/habitrack/internal/model"
)

// InputGoals asks for the number of goals, then each goal's name and its
// do and do-not activities.
func InputGoals(p Prompter) ([]model.Goal, error) {
	n, err := p.Int("How many goals do you have?")
	if err != nil {
		return nil, err
	}

	goals := make([]model.Goal, 0, n)
	for i := 0; i < n; i++ {
		name, err := p.Text(fmt.Sprintf("Enter Goal %d:", i+1))
		if err != nil {
			return nil, err
		}

		doList, err := activities(p, name, "do")
		if err != nil {
			return nil, err
		}
		doNotList, err := activities(p, name, "do not")
		if err != nil {
			return nil, err
		}

		goals = append(goals, model.Goal{Name: name, Do: doList, DoNot: doNotList})
	}

	return goals, nil
}

func activities(p Prompter, goal, kind string) ([]string, error) {
	n, err := p.Int(fmt.Sprintf("How many '%s' activities for '%s'?", kind, goal))
	if err != nil {
		return nil, err
	}

	list := make([]string, 0, n)
	for j := 0; j < n; j++ {
		a, err := p.Text(fmt.Sprintf("Enter '%s' activity %d for '%s':", kind, j+1, goal))
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, nil
}
