package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ById filters by primary key.
type ById struct {
	Id uuid.UUID
}

func (s ById) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.Id)
}

// ByUserId filters rows owned by a user.
type ByUserId struct {
	UserId uuid.UUID
}

func (s ByUserId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserId)
}

// ByConversationKey filters by the client-generated correlation key,
// not the conversation row id.
type ByConversationKey struct {
	Key string
}

func (s ByConversationKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.Key)
}

// ByMetaId filters users by their OAuth subject.
type ByMetaId struct {
	MetaId string
}

func (s ByMetaId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("meta_id = ?", s.MetaId)
}

// ByStatus filters escalations by ticket status.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
