package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"scoutinghike/internal/models/db_models"
	"scoutinghike/internal/models/request_models"
	"scoutinghike/internal/models/response_models"
	"scoutinghike/internal/repositories"
	"scoutinghike/internal/testutil"
	mem "scoutinghike/pkg/memcache"
	"scoutinghike/pkg/utils"
)

var t0 = time.Date(2025, 5, 24, 9, 0, 0, 0, time.UTC)

// scriptedGenerator hands out the scripted codes first, then random ones.
type scriptedGenerator struct {
	script []string
	next   utils.CodeGenerator
}

func (g *scriptedGenerator) Generate() (string, error) {
	if len(g.script) > 0 {
		code := g.script[0]
		g.script = g.script[1:]
		return code, nil
	}
	return g.next.Generate()
}

// recordingMailer keeps the reset tokens it was asked to send.
type recordingMailer struct {
	sent map[string][]string
	err  error
}

func (m *recordingMailer) SendMailToResetPassword(to, token string) error {
	if m.err != nil {
		return m.err
	}
	if m.sent == nil {
		m.sent = map[string][]string{}
	}
	m.sent[to] = append(m.sent[to], token)
	return nil
}

func (m *recordingMailer) last(t *testing.T, to string) string {
	t.Helper()
	tokens := m.sent[to]
	require.NotEmpty(t, tokens, "no reset mail for %s", to)
	return tokens[len(tokens)-1]
}

type fixture struct {
	db       *gorm.DB
	clock    *utils.FixedClock
	sessions *mem.VolunteerSessions
	resets   *mem.ResetTokens
	mailer   *recordingMailer
	tokens   *utils.TokenIssuer
	codeGen  *scriptedGenerator

	userRepo    repositories.UserRepository
	eventRepo   repositories.EventRepository
	codeRepo    repositories.VolunteerCodeRepository
	volRepo     repositories.VolunteerRepository
	postVolRepo repositories.PostVolunteerRepository

	accounts    AccountServiceInterface
	events      EventServiceInterface
	posts       PostServiceInterface
	groups      WalkingGroupServiceInterface
	codes       VolunteerCodeServiceInterface
	volunteers  VolunteerSessionServiceInterface
	assignments AssignmentServiceInterface
	checkpoints CheckpointServiceInterface

	org Organizer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	logger := testutil.NewLogger()
	clock := &utils.FixedClock{T: t0}

	f := &fixture{
		db:       db,
		clock:    clock,
		sessions: mem.NewVolunteerSessionsWithClock(clock.Now),
		resets:   mem.NewResetTokensWithClock(clock.Now),
		mailer:   &recordingMailer{},
		codeGen:  &scriptedGenerator{next: utils.NewNanoCodeGenerator(utils.DefaultAccessCodeLength)},
	}
	f.tokens = utils.NewTokenIssuer("session-secret-for-tests", 12*time.Hour, clock)

	f.userRepo = repositories.NewUserRepository(db)
	f.eventRepo = repositories.NewEventRepository(db)
	f.codeRepo = repositories.NewVolunteerCodeRepository(db)
	f.volRepo = repositories.NewVolunteerRepository(db)
	f.postVolRepo = repositories.NewPostVolunteerRepository(db)
	postRepo := repositories.NewPostRepository(db)
	groupRepo := repositories.NewWalkingGroupRepository(db)
	checkpointRepo := repositories.NewCheckpointRepository(db)

	organizerTokens := utils.NewTokenIssuer("organizer-secret-for-tests", time.Hour, clock)
	f.accounts = NewAccountService(f.userRepo, f.eventRepo, f.sessions, f.resets, f.mailer, organizerTokens, 30*time.Minute, logger)
	f.events = NewEventService(f.eventRepo, postRepo, groupRepo, f.volRepo, f.postVolRepo, checkpointRepo, f.sessions, logger)
	f.posts = NewPostService(f.eventRepo, postRepo, logger)
	f.groups = NewWalkingGroupService(f.eventRepo, groupRepo, logger)
	f.codes = NewVolunteerCodeService(f.eventRepo, f.codeRepo, f.sessions, f.codeGen, clock, time.Hour, logger)
	f.checkpoints = NewCheckpointService(f.eventRepo, postRepo, groupRepo, checkpointRepo, clock, logger)
	f.volunteers = NewVolunteerSessionService(f.eventRepo, f.codeRepo, f.volRepo, f.postVolRepo, groupRepo, f.checkpoints, f.sessions, f.tokens, clock, 12*time.Hour, logger)
	f.assignments = NewAssignmentService(f.eventRepo, postRepo, f.volRepo, f.postVolRepo, logger)

	f.org = f.newOrganizer(t, "organizer@scouting.nl")
	return f
}

func (f *fixture) newOrganizer(t *testing.T, email string) Organizer {
	t.Helper()
	user := &db_models.User{Email: email, PasswordHash: "x"}
	require.NoError(t, f.userRepo.Insert(context.Background(), user))
	return Organizer{ID: user.ID}
}

func (f *fixture) newEvent(t *testing.T, name string) response_models.EventResponse {
	t.Helper()
	event, err := f.events.Create(context.Background(), f.org, request_models.EventRequest{
		Name: name,
		Date: t0.Add(24 * time.Hour),
	})
	require.NoError(t, err)
	return event
}

func (f *fixture) newPost(t *testing.T, eventID uuid.UUID, name string) response_models.PostResponse {
	t.Helper()
	post, err := f.posts.Create(context.Background(), f.org, eventID, request_models.PostRequest{Name: name})
	require.NoError(t, err)
	return post
}

func (f *fixture) newGroup(t *testing.T, eventID uuid.UUID, name string) response_models.WalkingGroupResponse {
	t.Helper()
	group, err := f.groups.Create(context.Background(), f.org, eventID, request_models.WalkingGroupRequest{Name: name})
	require.NoError(t, err)
	return group
}

func (f *fixture) redeemAs(t *testing.T, eventID uuid.UUID, name string) response_models.RedeemResponse {
	t.Helper()
	code, err := f.codes.Generate(context.Background(), f.org, eventID, name)
	require.NoError(t, err)
	redeemed, err := f.volunteers.Redeem(context.Background(), code.AccessCode)
	require.NoError(t, err)
	return redeemed
}

func (f *fixture) session(t *testing.T, redeemed response_models.RedeemResponse) mem.VolunteerSession {
	t.Helper()
	session, err := f.volunteers.Resolve(context.Background(), redeemed.Token)
	require.NoError(t, err)
	return session
}

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}
