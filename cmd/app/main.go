package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"scoutinghike/cmd/fx/account_fx"
	"scoutinghike/cmd/fx/assignment_fx"
	"scoutinghike/cmd/fx/checkpoint_fx"
	"scoutinghike/cmd/fx/config_fx"
	"scoutinghike/cmd/fx/controllers_fx"
	"scoutinghike/cmd/fx/db_fx"
	"scoutinghike/cmd/fx/event_fx"
	"scoutinghike/cmd/fx/logger_fx"
	"scoutinghike/cmd/fx/mail_fx"
	"scoutinghike/cmd/fx/memcache_fx"
	"scoutinghike/cmd/fx/post_fx"
	"scoutinghike/cmd/fx/volunteer_code_fx"
	"scoutinghike/cmd/fx/volunteer_session_fx"
	"scoutinghike/cmd/fx/walking_group_fx"
	"scoutinghike/internal/api/controllers"
	"scoutinghike/internal/infra"
	"scoutinghike/pkg/middleware"
	"scoutinghike/pkg/notify"
	"scoutinghike/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		event_fx.Module,
		post_fx.Module,
		walking_group_fx.Module,
		volunteer_code_fx.Module,
		volunteer_session_fx.Module,
		assignment_fx.Module,
		checkpoint_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *infra.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

// Controllers groups every handler the route table needs.
type Controllers struct {
	fx.In

	Health        *controllers.HealthController
	Account       *controllers.AccountController
	Event         *controllers.EventController
	Post          *controllers.PostController
	WalkingGroup  *controllers.WalkingGroupController
	VolunteerCode *controllers.VolunteerCodeController
	Assignment    *controllers.AssignmentController
	Checkpoint    *controllers.CheckpointController
	Volunteer     *controllers.VolunteerController
}

type RouterParams struct {
	fx.In

	Config          *infra.Config
	Logger          *zap.Logger
	Sink            notify.Sink
	OrganizerTokens *utils.TokenIssuer `name:"organizer_tokens"`
	Sessions        middleware.SessionResolver
	Controllers     Controllers
}

func ProvideRouter(p RouterParams) *gin.Engine {
	gin.SetMode(p.Config.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.NotificationMiddleware(p.Sink))

	RegisterRoutes(r,
		middleware.JWTAuthMiddleware(p.OrganizerTokens),
		middleware.VolunteerSessionMiddleware(p.Sessions),
		p.Controllers)

	return r
}

func RegisterRoutes(r *gin.Engine, organizerAuth, volunteerAuth gin.HandlerFunc, ctl Controllers) {

	r.GET("/health", ctl.Health.Health)

	accounts := r.Group("/accounts")
	accounts.POST("/register", ctl.Account.Register)
	accounts.POST("/login", ctl.Account.Login)
	accounts.POST("/password-reset", ctl.Account.RequestPasswordReset)
	accounts.POST("/password-reset/confirm", ctl.Account.ResetPassword)
	accounts.GET("/me", organizerAuth, ctl.Account.Me)
	accounts.PUT("/me", organizerAuth, ctl.Account.UpdateMe)
	accounts.DELETE("/me", organizerAuth, ctl.Account.DeleteMe)

	events := r.Group("/events", organizerAuth)
	events.GET("", ctl.Event.ListEvents)
	events.POST("", ctl.Event.CreateEvent)
	events.GET("/:eventId", ctl.Event.GetEvent)
	events.PUT("/:eventId", ctl.Event.UpdateEvent)
	events.DELETE("/:eventId", ctl.Event.DeleteEvent)
	events.PATCH("/:eventId/active", ctl.Event.SetEventActive)

	events.GET("/:eventId/posts", ctl.Post.ListPosts)
	events.POST("/:eventId/posts", ctl.Post.CreatePost)
	events.PUT("/:eventId/posts/:postId", ctl.Post.UpdatePost)
	events.DELETE("/:eventId/posts/:postId", ctl.Post.DeletePost)
	events.POST("/:eventId/posts/:postId/volunteers", ctl.Assignment.AssignVolunteer)
	events.DELETE("/:eventId/posts/:postId/volunteers/:volunteerId", ctl.Assignment.UnassignVolunteer)
	events.GET("/:eventId/volunteers", ctl.Assignment.ListVolunteers)

	events.GET("/:eventId/groups", ctl.WalkingGroup.ListGroups)
	events.POST("/:eventId/groups", ctl.WalkingGroup.CreateGroup)
	events.PUT("/:eventId/groups/:groupId", ctl.WalkingGroup.UpdateGroup)
	events.DELETE("/:eventId/groups/:groupId", ctl.WalkingGroup.DeleteGroup)

	events.GET("/:eventId/codes", ctl.VolunteerCode.ListCodes)
	events.POST("/:eventId/codes", ctl.VolunteerCode.GenerateCode)
	events.DELETE("/:eventId/codes/:code", ctl.VolunteerCode.RevokeCode)

	events.GET("/:eventId/checkpoints", ctl.Checkpoint.ListCheckpoints)
	events.POST("/:eventId/checkpoints", ctl.Checkpoint.RegisterCheckpoint)
	events.DELETE("/:eventId/checkpoints/:checkpointId", ctl.Checkpoint.DeleteCheckpoint)

	volunteers := r.Group("/volunteers")
	volunteers.POST("/redeem", ctl.Volunteer.Redeem)

	session := volunteers.Group("", volunteerAuth)
	session.GET("/me", ctl.Volunteer.Me)
	session.POST("/logout", ctl.Volunteer.Logout)
	session.GET("/post", ctl.Volunteer.PostDashboard)
	session.POST("/checkpoints", ctl.Volunteer.RegisterCheckpoint)
}
