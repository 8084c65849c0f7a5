package mapper

import (
	"magiars-be/internal/entity"
	"magiars-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:        u.Id,
		MetaId:    u.MetaId,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		LoginDate: u.LoginDate,
		CreatedAt: u.CreatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:        u.Id,
		MetaId:    u.MetaId,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		LoginDate: u.LoginDate,
		CreatedAt: u.CreatedAt,
	}
}
