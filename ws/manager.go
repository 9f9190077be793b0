package ws

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"pathfinder-server/entities"

	"github.com/gorilla/websocket"
)

// Manager keeps track of active user websocket connections.
type Manager struct {
	mu          sync.RWMutex
	connections map[string]*websocket.Conn // userID -> conn
}

func NewManager() *Manager {
	return &Manager{connections: make(map[string]*websocket.Conn)}
}

// Register registers a user connection, replacing any existing one.
func (m *Manager) Register(userID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.connections[userID]; ok && old != conn {
		// close old connection to avoid leaks
		_ = old.Close()
	}
	m.connections[userID] = conn
}

// Unregister removes a user connection.
func (m *Manager) Unregister(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if conn, ok := m.connections[userID]; ok {
		_ = conn.Close()
		delete(m.connections, userID)
	}
}

// SendToUser sends a text message to a user if connected.
func (m *Manager) SendToUser(userID string, payload []byte) error {
	m.mu.RLock()
	conn, ok := m.connections[userID]
	m.mu.RUnlock()
	if !ok || conn == nil {
		return errors.New("user not connected")
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}

// IsConnected returns whether a user currently has a live connection.
func (m *Manager) IsConnected(userID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.connections[userID]
	return ok
}

// List returns a copy of currently connected user IDs.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.connections))
	for id := range m.connections {
		ids = append(ids, id)
	}
	return ids
}

// NotifyAchievement pushes an achievement event to the user's connection.
// Users without a live connection just miss the push; the record is already
// persisted.
func (m *Manager) NotifyAchievement(userID string, achievement *entities.Achievement) {
	payload, err := json.Marshal(map[string]interface{}{
		"type":        "achievement_earned",
		"achievement": achievement,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("failed to marshal achievement notification: %v", err)
		return
	}
	if err := m.SendToUser(userID, payload); err == nil {
		log.Printf("pushed achievement %s to user %s", achievement.ID, userID)
	}
}
