package mapper

import (
	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/model"
)

type ReferenceMapper struct{}

func NewReferenceMapper() *ReferenceMapper {
	return &ReferenceMapper{}
}

func (m *ReferenceMapper) ToEntity(r *model.SectionReference) *entity.SectionReference {
	if r == nil {
		return nil
	}
	return &entity.SectionReference{
		Id:            r.Id,
		ApplicationId: r.ApplicationId,
		SectionKey:    r.SectionKey,
		GroupId:       r.GroupId,
		Position:      r.Position,
		CreatedAt:     r.CreatedAt,
	}
}

func (m *ReferenceMapper) ToModel(r *entity.SectionReference) *model.SectionReference {
	if r == nil {
		return nil
	}
	return &model.SectionReference{
		Id:            r.Id,
		ApplicationId: r.ApplicationId,
		SectionKey:    r.SectionKey,
		GroupId:       r.GroupId,
		Position:      r.Position,
		CreatedAt:     r.CreatedAt,
	}
}

func (m *ReferenceMapper) ToEntities(refs []*model.SectionReference) []*entity.SectionReference {
	entities := make([]*entity.SectionReference, len(refs))
	for i, r := range refs {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
