package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return sm
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "player")

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("Enter in menu should start a game")
	}

	// End the round through the game the session created
	game, ok := m.gameModel.game.(*stubGame)
	if !ok {
		t.Fatalf("game is %T, expected *stubGame", m.gameModel.game)
	}
	game.state.GameOver = true
	m = sessionUpdate(t, m, TickMsg{})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.gameModel != nil {
		t.Error("Esc after game over should return to the menu")
	}
	if m.quitting {
		t.Error("returning to the menu should not end the session")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "player")

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("Tab in menu should open the scoreboard")
	}
	if m.quitting {
		t.Fatal("opening the scoreboard should not end the session")
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Error("Esc in scoreboard should return to the menu")
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in menu should end the session")
	}
}
