package controllers_fx

import (
	"go.uber.org/fx"
	"scoutinghike/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHealthController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewEventController),
	fx.Provide(controllers.NewPostController),
	fx.Provide(controllers.NewWalkingGroupController),
	fx.Provide(controllers.NewVolunteerCodeController),
	fx.Provide(controllers.NewAssignmentController),
	fx.Provide(controllers.NewCheckpointController),
	fx.Provide(controllers.NewVolunteerController))
