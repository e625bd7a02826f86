package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/dact"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/dquests"
)

// QuestBrowser shows one act of one difficulty at a time. It never changes the section.
type QuestBrowser struct {
	section    dquests.Section
	difficulty int
	act        int
}

func CreateQuestBrowser(section dquests.Section) QuestBrowser {
	return QuestBrowser{
		section:    section,
		difficulty: dquests.DifficultyNormal,
		act:        0,
	}
}

func wrap(value int, delta int, n int) int {
	return ((value+delta)%n + n) % n
}

func renderField(field dact.Field) string {
	if field.Flag != nil {
		mark := " "
		if *field.Flag {
			mark = "x"
		}
		return fmt.Sprintf("[%s] %s", mark, field.Name)
	}
	flagNames := field.Quest.SetFlagNames()
	if len(flagNames) == 0 {
		flagNames = []string{"-"}
	}
	return fmt.Sprintf("    %s: %s", field.Name, strings.Join(flagNames, ", "))
}

func (b QuestBrowser) View() string {
	output := "D2S QUESTS\n\n"
	output += fmt.Sprintf(
		"Difficulty: %s    Act: %s\n\n",
		dquests.DifficultyNames[b.difficulty],
		dact.ActNames[b.act],
	)

	acts := b.section.Difficulty(b.difficulty).Acts()
	lines := lo.Map(
		acts[b.act].Fields(),
		func(field dact.Field, _ int) string {
			return renderField(field)
		},
	)
	output += strings.Join(lines, "\n")
	output += "\n\nleft/right: difficulty  up/down: act  q: quit\n"

	return output
}

func (b QuestBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		return b, tea.Quit
	case "left", "h":
		b.difficulty = wrap(b.difficulty, -1, dquests.NumDifficulties)
	case "right", "l":
		b.difficulty = wrap(b.difficulty, 1, dquests.NumDifficulties)
	case "up", "k":
		b.act = wrap(b.act, -1, len(dact.ActNames))
	case "down", "j":
		b.act = wrap(b.act, 1, len(dact.ActNames))
	}
	return b, nil
}

func (b QuestBrowser) Init() tea.Cmd {
	return nil
}
