package entity

import (
	"time"

	"github.com/google/uuid"

	"visa-casework-be/pkg/checklist"
)

type DocumentGroup struct {
	Id            uuid.UUID
	ApplicationId uuid.UUID
	Title         string
	Status        checklist.GroupStatus
	IsSpecial     bool
	Files         []DocumentFile
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

type DocumentFile struct {
	Id        uuid.UUID
	GroupId   uuid.UUID
	FileName  string
	PageCount int
	Removed   bool
	CreatedAt time.Time
}

// ActiveFileCount counts files not soft-removed from the group.
func (g *DocumentGroup) ActiveFileCount() int {
	n := 0
	for _, f := range g.Files {
		if !f.Removed {
			n++
		}
	}
	return n
}

// ToEngine converts the stored group into the shape the checklist engine
// consumes.
func (g *DocumentGroup) ToEngine() checklist.DocumentGroup {
	files := make([]checklist.DocumentFile, len(g.Files))
	for i, f := range g.Files {
		files[i] = checklist.DocumentFile{
			Id:        f.Id,
			Removed:   f.Removed,
			PageCount: f.PageCount,
		}
	}
	return checklist.DocumentGroup{
		Id:        g.Id,
		Title:     g.Title,
		Status:    g.Status,
		IsSpecial: g.IsSpecial,
		Files:     files,
	}
}

// GroupsToEngine converts a slice of stored groups for engine calls.
func GroupsToEngine(groups []*DocumentGroup) []checklist.DocumentGroup {
	out := make([]checklist.DocumentGroup, len(groups))
	for i, g := range groups {
		out[i] = g.ToEngine()
	}
	return out
}
