package mapper

import (
	"time"

	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/model"
	"visa-casework-be/pkg/checklist"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(g *model.DocumentGroup) *entity.DocumentGroup {
	if g == nil {
		return nil
	}

	var updatedAt *time.Time
	if !g.UpdatedAt.IsZero() {
		t := g.UpdatedAt
		updatedAt = &t
	}

	files := make([]entity.DocumentFile, len(g.Files))
	for i, f := range g.Files {
		files[i] = m.FileToEntity(&f)
	}

	return &entity.DocumentGroup{
		Id:            g.Id,
		ApplicationId: g.ApplicationId,
		Title:         g.Title,
		Status:        checklist.GroupStatus(g.Status),
		IsSpecial:     g.IsSpecial,
		Files:         files,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *DocumentMapper) ToModel(g *entity.DocumentGroup) *model.DocumentGroup {
	if g == nil {
		return nil
	}

	var updatedAt time.Time
	if g.UpdatedAt != nil {
		updatedAt = *g.UpdatedAt
	}

	files := make([]model.DocumentFile, len(g.Files))
	for i, f := range g.Files {
		files[i] = model.DocumentFile{
			Id:        f.Id,
			GroupId:   f.GroupId,
			FileName:  f.FileName,
			PageCount: f.PageCount,
			Removed:   f.Removed,
			CreatedAt: f.CreatedAt,
		}
	}

	return &model.DocumentGroup{
		Id:            g.Id,
		ApplicationId: g.ApplicationId,
		Title:         g.Title,
		Status:        string(g.Status),
		IsSpecial:     g.IsSpecial,
		Files:         files,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *DocumentMapper) FileToEntity(f *model.DocumentFile) entity.DocumentFile {
	return entity.DocumentFile{
		Id:        f.Id,
		GroupId:   f.GroupId,
		FileName:  f.FileName,
		PageCount: f.PageCount,
		Removed:   f.Removed,
		CreatedAt: f.CreatedAt,
	}
}

func (m *DocumentMapper) ToEntities(groups []*model.DocumentGroup) []*entity.DocumentGroup {
	entities := make([]*entity.DocumentGroup, len(groups))
	for i, g := range groups {
		entities[i] = m.ToEntity(g)
	}
	return entities
}
