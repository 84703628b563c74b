package service

import (
	"context"

	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/pkg/serverutils"
	"visa-casework-be/internal/repository/specification"
	"visa-casework-be/internal/repository/unitofwork"
	"visa-casework-be/pkg/checklist"
	"visa-casework-be/pkg/visacatalog"

	"github.com/google/uuid"
)

// loadApplicationItems assembles the synthesis inputs for one application and
// runs the engine. Shared by the checklist, issue, digest and analysis
// services so they all see the same derived state.
func loadApplicationItems(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	catalog *visacatalog.StaticCatalog,
	applicationId uuid.UUID,
) (*entity.Application, []checklist.Item, error) {
	app, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: applicationId})
	if err != nil {
		return nil, nil, err
	}
	if app == nil {
		return nil, nil, serverutils.NewNotFoundError("Application not found")
	}

	groups, err := uow.DocumentGroupRepository().FindAll(ctx,
		specification.ByApplicationID{ApplicationID: applicationId},
		specification.WithFiles{},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, nil, err
	}

	answers, err := uow.QuestionnaireAnswerRepository().FindAll(ctx,
		specification.ByApplicationID{ApplicationID: applicationId},
	)
	if err != nil {
		return nil, nil, err
	}

	overrides, err := uow.FieldOverrideRepository().FindAll(ctx,
		specification.ByApplicationID{ApplicationID: applicationId},
	)
	if err != nil {
		return nil, nil, err
	}

	items := checklist.Synthesize(
		app.VisaType,
		entity.GroupsToEngine(groups),
		entity.AnswersToMap(answers),
		entity.OverridesToMap(overrides),
		catalog,
	)
	return app, items, nil
}

// sectionItems filters synthesized items down to one section.
func sectionItems(items []checklist.Item, section string) []checklist.Item {
	filtered := make([]checklist.Item, 0)
	for _, item := range items {
		if string(item.Section) == section {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
