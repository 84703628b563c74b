package mapper

import (
	"time"

	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/model"
)

type OverrideMapper struct{}

func NewOverrideMapper() *OverrideMapper {
	return &OverrideMapper{}
}

func (m *OverrideMapper) ToEntity(o *model.FieldOverride) *entity.FieldOverride {
	if o == nil {
		return nil
	}

	var updatedAt *time.Time
	if !o.UpdatedAt.IsZero() {
		t := o.UpdatedAt
		updatedAt = &t
	}

	return &entity.FieldOverride{
		Id:            o.Id,
		ApplicationId: o.ApplicationId,
		FieldId:       o.FieldId,
		Value:         o.Value,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *OverrideMapper) ToModel(o *entity.FieldOverride) *model.FieldOverride {
	if o == nil {
		return nil
	}

	var updatedAt time.Time
	if o.UpdatedAt != nil {
		updatedAt = *o.UpdatedAt
	}

	return &model.FieldOverride{
		Id:            o.Id,
		ApplicationId: o.ApplicationId,
		FieldId:       o.FieldId,
		Value:         o.Value,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *OverrideMapper) ToEntities(overrides []*model.FieldOverride) []*entity.FieldOverride {
	entities := make([]*entity.FieldOverride, len(overrides))
	for i, o := range overrides {
		entities[i] = m.ToEntity(o)
	}
	return entities
}
