package ui

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// Prompter abstracts interactive questions so operations can be driven by
// canned answers in tests or by --yes in scripts.
type Prompter interface {
	// Confirm asks a yes/no question.
	Confirm(message string, defaultYes bool) (bool, error)

	// Input asks for a line of text, offering a default.
	Input(message, defaultValue string) (string, error)

	// Select asks the user to pick one of the options.
	Select(message string, options []string) (string, error)
}

// SurveyPrompter is the interactive terminal implementation.
type SurveyPrompter struct{}

// Confirm asks a yes/no question on the terminal.
func (SurveyPrompter) Confirm(message string, defaultYes bool) (bool, error) {
	var result bool
	q := &survey.Confirm{Message: message, Default: defaultYes}
	return result, survey.AskOne(q, &result)
}

// Input asks for a line of text on the terminal.
func (SurveyPrompter) Input(message, defaultValue string) (string, error) {
	var result string
	q := &survey.Input{Message: message, Default: defaultValue}
	return result, survey.AskOne(q, &result)
}

// Select presents a list of options on the terminal.
func (SurveyPrompter) Select(message string, options []string) (string, error) {
	var result string
	q := &survey.Select{Message: message, Options: options}
	return result, survey.AskOne(q, &result)
}

// AssumeYesPrompter answers yes to every confirmation and takes defaults for
// everything else, without prompting. Used by the --yes flag.
type AssumeYesPrompter struct{}

// Confirm always answers yes.
func (AssumeYesPrompter) Confirm(message string, defaultYes bool) (bool, error) {
	return true, nil
}

// Input always returns the default value.
func (AssumeYesPrompter) Input(message, defaultValue string) (string, error) {
	return defaultValue, nil
}

// Select always picks the first option.
func (AssumeYesPrompter) Select(message string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options for prompt %q", message)
	}
	return options[0], nil
}

// ScriptedPrompter replays pre-recorded answers in order. Each answer kind is
// consumed from its own queue; running out of answers is an error so tests
// fail loudly on unexpected prompts.
type ScriptedPrompter struct {
	Confirms   []bool
	Inputs     []string
	Selections []string

	// Questions records every message asked, in order.
	Questions []string
}

// Confirm pops the next scripted yes/no answer.
func (p *ScriptedPrompter) Confirm(message string, defaultYes bool) (bool, error) {
	p.Questions = append(p.Questions, message)
	if len(p.Confirms) == 0 {
		return false, fmt.Errorf("no scripted answer for confirm %q", message)
	}
	answer := p.Confirms[0]
	p.Confirms = p.Confirms[1:]
	return answer, nil
}

// Input pops the next scripted text answer.
func (p *ScriptedPrompter) Input(message, defaultValue string) (string, error) {
	p.Questions = append(p.Questions, message)
	if len(p.Inputs) == 0 {
		return "", fmt.Errorf("no scripted answer for input %q", message)
	}
	answer := p.Inputs[0]
	p.Inputs = p.Inputs[1:]
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// Select pops the next scripted selection.
func (p *ScriptedPrompter) Select(message string, options []string) (string, error) {
	p.Questions = append(p.Questions, message)
	if len(p.Selections) == 0 {
		return "", fmt.Errorf("no scripted answer for select %q", message)
	}
	answer := p.Selections[0]
	p.Selections = p.Selections[1:]
	return answer, nil
}
