package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/shadowevil/D2SLib-Resurrected/d2s/dquests"
)

func Start(section dquests.Section) {
	browser := CreateQuestBrowser(section)
	if err := tea.NewProgram(browser).Start(); err != nil {
		log.Panic(errors.Wrap(err, "ui.Start error"))
	}
}
