package mapper

import (
	"magiars-be/internal/entity"
	"magiars-be/internal/model"
)

type EscalationMapper struct{}

func NewEscalationMapper() *EscalationMapper {
	return &EscalationMapper{}
}

func (m *EscalationMapper) ToEntity(e *model.Escalation) *entity.Escalation {
	if e == nil {
		return nil
	}
	return &entity.Escalation{
		Id:             e.Id,
		UserId:         e.UserId,
		ConversationId: e.ConversationId,
		Priority:       e.Priority,
		Status:         e.Status,
		Issue:          e.Issue,
		CreatedAt:      e.CreatedAt,
		ResolvedAt:     e.ResolvedAt,
	}
}

func (m *EscalationMapper) ToModel(e *entity.Escalation) *model.Escalation {
	if e == nil {
		return nil
	}
	return &model.Escalation{
		Id:             e.Id,
		UserId:         e.UserId,
		ConversationId: e.ConversationId,
		Priority:       e.Priority,
		Status:         e.Status,
		Issue:          e.Issue,
		CreatedAt:      e.CreatedAt,
		ResolvedAt:     e.ResolvedAt,
	}
}

func (m *EscalationMapper) ReplyToEntity(r *model.EscalationReply) *entity.EscalationReply {
	if r == nil {
		return nil
	}
	return &entity.EscalationReply{
		Id:           r.Id,
		EscalationId: r.EscalationId,
		Message:      r.Message,
		Sender:       r.Sender,
		Timestamp:    r.Timestamp,
	}
}

func (m *EscalationMapper) ReplyToModel(r *entity.EscalationReply) *model.EscalationReply {
	if r == nil {
		return nil
	}
	return &model.EscalationReply{
		Id:           r.Id,
		EscalationId: r.EscalationId,
		Message:      r.Message,
		Sender:       r.Sender,
		Timestamp:    r.Timestamp,
	}
}
