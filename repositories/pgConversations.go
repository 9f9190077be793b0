package repositories

import (
	"time"

	"pathfinder-server/db"
	"pathfinder-server/entities"
)

type conversationPgRepository struct {
	db db.Database
}

func NewConversationPgRepository(database db.Database) ConversationRepository {
	return &conversationPgRepository{db: database}
}

func (r *conversationPgRepository) Create(conv *entities.Conversation) error {
	return r.db.GetDB().Create(conv).Error
}

func (r *conversationPgRepository) GetByID(id string) (*entities.Conversation, error) {
	var conv entities.Conversation
	err := r.db.GetDB().Where("id = ?", id).First(&conv).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *conversationPgRepository) GetByUserID(userID string) ([]entities.Conversation, error) {
	var convs []entities.Conversation
	err := r.db.GetDB().Where("user_id = ?", userID).Order("updated_at DESC").Find(&convs).Error
	return convs, err
}

func (r *conversationPgRepository) Update(conv *entities.Conversation) error {
	conv.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().Save(conv).Error
}
