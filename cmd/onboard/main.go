package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultServerURL = "http://localhost:8080"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringUsername step = iota
	stepEnteringEmail
	stepEnteringPassword
	stepAuthenticating
	stepEnteringPathTitle
	stepEnteringTargetRole
	stepCreatingPath
	stepComplete
)

type model struct {
	step         step
	serverURL    string
	username     string
	email        string
	password     string
	authToken    string
	pathTitle    string
	targetRole   string
	currentInput string
	message      string
	quitting     bool
}

type authSuccessMsg struct {
	token    string
	existing bool
}
type pathCreatedMsg struct{ title string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	serverURL := os.Getenv("PATHFINDER_URL")
	if serverURL == "" {
		serverURL = defaultServerURL
	}
	return model{
		step:      stepEnteringUsername,
		serverURL: serverURL,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// authenticate logs in first and falls back to registration for new users.
func authenticate(serverURL, username, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		if token, err := login(client, serverURL, username, password); err == nil {
			return authSuccessMsg{token: token, existing: true}
		}

		payload := map[string]string{
			"username": username,
			"email":    email,
			"password": password,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL+"/api/auth/register", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("cannot reach server at %s: %w", serverURL, err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			body, _ := io.ReadAll(resp.Body)
			return errMsg{fmt.Errorf("registration failed (%d): %s", resp.StatusCode, string(body))}
		}

		var result struct {
			Token string `json:"token"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || result.Token == "" {
			return errMsg{fmt.Errorf("no token in registration response")}
		}

		return authSuccessMsg{token: result.Token, existing: false}
	}
}

func login(client *http.Client, serverURL, username, password string) (string, error) {
	payload := map[string]string{
		"username": username,
		"password": password,
	}
	jsonData, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", serverURL+"/api/auth/login", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || result.Token == "" {
		return "", fmt.Errorf("no token in login response")
	}
	return result.Token, nil
}

func createPath(serverURL, token, title, targetRole string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 60 * time.Second}

		payload := map[string]interface{}{
			"title":            title,
			"target_role":      targetRole,
			"generate_roadmap": true,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL+"/api/career-paths", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("failed to create career path: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			body, _ := io.ReadAll(resp.Body)
			return errMsg{fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))}
		}

		return pathCreatedMsg{title: title}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			if m.step == stepEnteringUsername || m.step == stepEnteringEmail ||
				m.step == stepEnteringPassword || m.step == stepEnteringPathTitle ||
				m.step == stepEnteringTargetRole {
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepEnteringUsername:
				if m.currentInput != "" {
					m.username = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringEmail
				}

			case stepEnteringEmail:
				if strings.Contains(m.currentInput, "@") {
					m.email = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				} else {
					m.message = errorStyle.Render("Please enter a valid email address")
				}

			case stepEnteringPassword:
				if len(m.currentInput) >= 6 {
					m.password = m.currentInput
					m.currentInput = ""
					m.message = "Signing in..."
					m.step = stepAuthenticating
					return m, authenticate(m.serverURL, m.username, m.email, m.password)
				}
				m.message = errorStyle.Render("Password must be at least 6 characters")

			case stepEnteringPathTitle:
				if m.currentInput != "" {
					m.pathTitle = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringTargetRole
				}

			case stepEnteringTargetRole:
				if m.currentInput != "" {
					m.targetRole = m.currentInput
					m.currentInput = ""
					m.message = "Creating your career path (the mentor may take a moment)..."
					m.step = stepCreatingPath
					return m, createPath(m.serverURL, m.authToken, m.pathTitle, m.targetRole)
				}

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case authSuccessMsg:
		m.authToken = msg.token
		if msg.existing {
			m.message = successStyle.Render("Welcome back, " + m.username + "!")
		} else {
			m.message = successStyle.Render("Account created for " + m.username)
		}
		m.step = stepEnteringPathTitle

	case pathCreatedMsg:
		m.message = successStyle.Render(fmt.Sprintf("Career path %q is ready!\nOpen the app to see your roadmap.", msg.title))
		m.step = stepComplete

	case errMsg:
		m.message = errorStyle.Render("Error: " + msg.err.Error())
		// Back to the password prompt so the user can retry
		if m.step == stepAuthenticating {
			m.step = stepEnteringPassword
		} else if m.step == stepCreatingPath {
			m.step = stepEnteringPathTitle
		}
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Pathfinder Onboarding\n\n"))

	switch m.step {
	case stepEnteringUsername:
		s.WriteString(promptStyle.Render("Choose a username:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter (Ctrl+C to quit)\n")

	case stepEnteringEmail:
		s.WriteString(promptStyle.Render("Your email address:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Choose a password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepAuthenticating:
		s.WriteString(m.message + "\n")

	case stepEnteringPathTitle:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Name your first career path:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringTargetRole:
		s.WriteString(promptStyle.Render("What role are you aiming for?\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepCreatingPath:
		s.WriteString(m.message + "\n")

	case stepComplete:
		s.WriteString(m.message + "\n")
		s.WriteString("\nPress Enter to exit\n")
	}

	if m.message != "" && (m.step == stepEnteringEmail || m.step == stepEnteringPassword) {
		s.WriteString("\n" + m.message + "\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
