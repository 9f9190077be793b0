package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"pathfinder-server/entities"
	"pathfinder-server/usecases"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	defaultMentorModelName = "gemini-1.5-flash-latest"

	chatSystemInstruction = "You are Pathfinder, an experienced career mentor. " +
		"Give practical, specific advice about careers, skills and learning plans. " +
		"Use the provided context about the user's goals when it helps. " +
		"Keep answers concise and encouraging. Do not make up facts about the user."

	roadmapSystemInstruction = "You are a career planning assistant. " +
		"Given a target role, produce a learning roadmap as a JSON array of objects " +
		"with fields: order (int, starting at 1), title, description, resource_url. " +
		"Return only the JSON array, no prose and no code fences."

	evaluationSystemInstruction = "You are a technical reviewer assessing a portfolio project. " +
		"Given the project description, technologies and claimed skills, return a short " +
		"assessment covering strengths, gaps and whether the claimed skills look credible."

	mentorFallbackReply = "I'm sorry, I couldn't come up with a response just now. Please try again."
)

// Mentor talks to the generative AI API on behalf of the chat, roadmap and
// portfolio-evaluation features.
type Mentor struct {
	client *genai.Client
}

func NewMentor(ctx context.Context, apiKey string) (*Mentor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &Mentor{client: client}, nil
}

func (m *Mentor) Close() {
	if m.client != nil {
		if err := m.client.Close(); err != nil {
			log.Printf("error closing GenAI client: %v", err)
		}
	}
}

// ChatReply sends the conversation history to the model and returns the
// mentor's answer.
func (m *Mentor) ChatReply(ctx context.Context, history []entities.ChatMessage, chatContext string) (string, error) {
	if len(history) == 0 {
		return "", fmt.Errorf("conversation history is empty")
	}
	last := history[len(history)-1]
	if last.Role != "user" {
		return "", fmt.Errorf("last message in history is not from the user")
	}

	model := m.client.GenerativeModel(defaultMentorModelName)
	instruction := chatSystemInstruction
	if chatContext != "" {
		instruction += "\n\nContext about this user: " + chatContext
	}
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(instruction)},
	}

	session := model.StartChat()
	for _, msg := range history[:len(history)-1] {
		role := "user"
		if msg.Role == "mentor" {
			role = "model"
		}
		session.History = append(session.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return "", fmt.Errorf("mentor chat request failed: %w", err)
	}

	text := collectText(resp)
	if text == "" {
		log.Println("mentor model returned an empty response")
		return mentorFallbackReply, nil
	}
	return text, nil
}

// GenerateRoadmap asks the model for a step-by-step roadmap towards a role.
// The raw text is always returned; steps are parsed best-effort and come
// back ordered.
func (m *Mentor) GenerateRoadmap(ctx context.Context, targetRole, background string) (string, []usecases.RoadmapStep, error) {
	model := m.client.GenerativeModel(defaultMentorModelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(roadmapSystemInstruction)},
	}

	prompt := fmt.Sprintf("Target role: %s.", targetRole)
	if background != "" {
		prompt += fmt.Sprintf(" Current background: %s.", background)
	}
	prompt += " Produce 5 to 8 roadmap steps."

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", nil, fmt.Errorf("roadmap generation request failed: %w", err)
	}

	raw := collectText(resp)
	if raw == "" {
		return "", nil, fmt.Errorf("roadmap model returned an empty response")
	}

	steps := parseRoadmap(raw)
	return raw, steps, nil
}

// EvaluateProject asks the model to review a portfolio project.
func (m *Mentor) EvaluateProject(ctx context.Context, project *entities.PortfolioProject) (string, error) {
	model := m.client.GenerativeModel(defaultMentorModelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(evaluationSystemInstruction)},
	}

	prompt := fmt.Sprintf("Project: %s\nDescription: %s\nTechnologies: %s\nClaimed skills: %s",
		project.Title, project.Description, project.Technologies, project.ClaimedSkills)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("evaluation request failed: %w", err)
	}

	text := collectText(resp)
	if text == "" {
		return "", fmt.Errorf("evaluation model returned an empty response")
	}
	return text, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(sb.String())
}

// parseRoadmap extracts the JSON step array out of the model output. Models
// sometimes wrap JSON in code fences despite instructions, so strip those
// before unmarshaling. A parse failure yields no steps; the caller keeps the
// raw blob.
func parseRoadmap(raw string) []usecases.RoadmapStep {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var steps []usecases.RoadmapStep
	if err := json.Unmarshal([]byte(cleaned), &steps); err != nil {
		log.Printf("could not parse roadmap JSON, keeping raw blob: %v", err)
		return nil
	}

	sort.Slice(steps, func(i, j int) bool { return steps[i].Order < steps[j].Order })
	for i := range steps {
		if steps[i].Order == 0 {
			steps[i].Order = i + 1
		}
	}
	return steps
}
