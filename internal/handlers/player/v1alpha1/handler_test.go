package v1alpha1_test

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-player/internal/booster"
	"github.com/KirkDiggler/rpg-player/internal/cache"
	"github.com/KirkDiggler/rpg-player/internal/entities/rpg"
	"github.com/KirkDiggler/rpg-player/internal/errors"
	"github.com/KirkDiggler/rpg-player/internal/handlers/player/v1alpha1"
	"github.com/KirkDiggler/rpg-player/internal/orchestrators/profile"
	profilemock "github.com/KirkDiggler/rpg-player/internal/orchestrators/profile/mock"
	"github.com/KirkDiggler/rpg-player/internal/pkg/clock/clockfake"
	"github.com/KirkDiggler/rpg-player/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-player/internal/player"
	"github.com/KirkDiggler/rpg-player/internal/progression"
	playerrepo "github.com/KirkDiggler/rpg-player/internal/repositories/player"
	"github.com/KirkDiggler/rpg-player/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockProfile *profilemock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockProfile = profilemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{ProfileService: s.mockProfile})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(req *v1alpha1.Request) *structpb.Struct {
	msg, err := v1alpha1.NewRequest(req)
	s.Require().NoError(err)
	return msg
}

func (s *HandlerTestSuite) requireCode(err error, code codes.Code) {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(code, st.Code())
}

func (s *HandlerTestSuite) TestNewHandlerValidation() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestChat() {
	s.mockProfile.EXPECT().
		Chat(s.ctx, &profile.ChatInput{PlayerID: "u1"}).
		Return(&profile.ChatOutput{Result: &player.ChatResult{
			Before:           player.LevelStats{Level: 1, Stats: rpg.BaseStats()},
			After:            &player.LevelStats{Level: 2, Stats: rpg.BaseStats()},
			ExperienceGained: 20,
		}}, nil)

	out, err := s.handler.Chat(s.ctx, s.request(&v1alpha1.Request{PlayerID: "u1"}))
	s.Require().NoError(err)

	s.False(out.Fields["busy"].GetBoolValue())
	s.Equal(float64(20), out.Fields["experience_gained"].GetNumberValue())
	s.Equal(float64(2), out.Fields["after"].GetStructValue().Fields["level"].GetNumberValue())
	stats := out.Fields["before"].GetStructValue().Fields["stats"].GetStructValue()
	s.Equal(float64(30), stats.Fields["health"].GetNumberValue())
}

func (s *HandlerTestSuite) TestChatBusy() {
	s.mockProfile.EXPECT().
		Chat(s.ctx, &profile.ChatInput{PlayerID: "u1"}).
		Return(&profile.ChatOutput{Busy: true}, nil)

	out, err := s.handler.Chat(s.ctx, s.request(&v1alpha1.Request{PlayerID: "u1"}))
	s.Require().NoError(err)
	s.True(out.Fields["busy"].GetBoolValue())
	s.NotContains(out.Fields, "before")
}

func (s *HandlerTestSuite) TestDailyCooldownInMilliseconds() {
	s.mockProfile.EXPECT().
		Daily(s.ctx, &profile.DailyInput{PlayerID: "u1"}).
		Return(&profile.DailyOutput{Result: &player.DailyResult{
			StreakBefore:      3,
			StreakAfter:       3,
			CooldownRemaining: 90 * time.Second,
		}}, nil)

	out, err := s.handler.Daily(s.ctx, s.request(&v1alpha1.Request{PlayerID: "u1"}))
	s.Require().NoError(err)
	s.Equal(float64(90000), out.Fields["cooldown_remaining_ms"].GetNumberValue())
	s.Equal(float64(3), out.Fields["streak_after"].GetNumberValue())
}

func (s *HandlerTestSuite) TestAddClassParsesTier() {
	s.mockProfile.EXPECT().
		AddClass(s.ctx, &profile.AddClassInput{
			PlayerID:    "u1",
			Class:       rpg.ClassLord,
			AdminTier:   rpg.AdminSuperuser,
			ActionToken: "action_1",
		}).
		Return(&profile.AddClassOutput{Success: true}, nil)

	out, err := s.handler.AddClass(s.ctx, s.request(&v1alpha1.Request{
		PlayerID:    "u1",
		Class:       string(rpg.ClassLord),
		AdminTier:   "superuser",
		ActionToken: "action_1",
	}))
	s.Require().NoError(err)
	s.True(out.Fields["success"].GetBoolValue())
}

func (s *HandlerTestSuite) TestChangeClassPassesSlot() {
	s.mockProfile.EXPECT().
		ChangeClass(s.ctx, &profile.ChangeClassInput{PlayerID: "u1", Class: rpg.ClassSage, Slot: 1}).
		Return(&profile.ChangeClassOutput{}, nil)

	_, err := s.handler.ChangeClass(s.ctx, s.request(&v1alpha1.Request{
		PlayerID: "u1",
		Class:    string(rpg.ClassSage),
		Slot:     1,
	}))
	s.Require().NoError(err)
}

func (s *HandlerTestSuite) TestMissingClass() {
	_, err := s.handler.AddClass(s.ctx, s.request(&v1alpha1.Request{PlayerID: "u1"}))
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestUnknownField() {
	msg, err := structpb.NewStruct(map[string]any{"player_id": "u1", "playerid": "oops"})
	s.Require().NoError(err)

	_, err = s.handler.Chat(s.ctx, msg)
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestNilRequest() {
	_, err := s.handler.GetProfile(s.ctx, nil)
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestStoreFailure() {
	s.mockProfile.EXPECT().
		GetProfile(s.ctx, &profile.GetProfileInput{PlayerID: "u1"}).
		Return(nil, errors.Persistence(fmt.Errorf("connection refused"), "failed to load player u1"))

	_, err := s.handler.GetProfile(s.ctx, s.request(&v1alpha1.Request{PlayerID: "u1"}))
	s.requireCode(err, codes.Unavailable)
}

func (s *HandlerTestSuite) TestBeginAndEndAction() {
	s.mockProfile.EXPECT().
		BeginAction(s.ctx, &profile.BeginActionInput{PlayerID: "u1"}).
		Return(&profile.BeginActionOutput{Token: "action_1"}, nil)
	s.mockProfile.EXPECT().
		EndAction(s.ctx, &profile.EndActionInput{PlayerID: "u1", Token: "action_1"}).
		Return(&profile.EndActionOutput{Released: true}, nil)

	begin, err := s.handler.BeginAction(s.ctx, s.request(&v1alpha1.Request{PlayerID: "u1"}))
	s.Require().NoError(err)
	token := begin.Fields["token"].GetStringValue()
	s.Equal("action_1", token)

	end, err := s.handler.EndAction(s.ctx, s.request(&v1alpha1.Request{PlayerID: "u1", Token: token}))
	s.Require().NoError(err)
	s.True(end.Fields["released"].GetBoolValue())
}

// ServiceTestSuite drives the registered service over an in-process
// connection with a real cache behind it
type ServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	server *grpc.Server
	conn   *grpc.ClientConn
	client v1alpha1.PlayerServiceClient
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	c, err := cache.New(&cache.Config{
		Repository: playerrepo.NewInMemory(),
		Clock:      clockfake.New(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)),
		Roller:     testutils.FixedRoller(1),
		Booster:    booster.NewStatic(),
	})
	s.Require().NoError(err)

	profiles, err := profile.NewOrchestrator(&profile.Config{
		Cache:       c,
		IDGenerator: idgen.NewSequential("action"),
	})
	s.Require().NoError(err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{ProfileService: profiles})
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer()
	v1alpha1.RegisterPlayerServiceServer(s.server, handler)
	go func() { _ = s.server.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.client = v1alpha1.NewPlayerServiceClient(conn)
}

func (s *ServiceTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
}

func (s *ServiceTestSuite) call(method string, req *v1alpha1.Request) (*structpb.Struct, error) {
	msg, err := v1alpha1.NewRequest(req)
	s.Require().NoError(err)
	return s.client.Call(s.ctx, method, msg)
}

func (s *ServiceTestSuite) TestChatThenProfile() {
	chat, err := s.call(v1alpha1.MethodChat, &v1alpha1.Request{PlayerID: "u1"})
	s.Require().NoError(err)
	s.Equal(float64(progression.BaseChatExperience), chat.Fields["experience_gained"].GetNumberValue())

	got, err := s.call(v1alpha1.MethodGetProfile, &v1alpha1.Request{PlayerID: "u1"})
	s.Require().NoError(err)
	rec := got.Fields["profile"].GetStructValue().Fields["record"].GetStructValue()
	s.Equal("u1", rec.Fields["id"].GetStringValue())
	s.Equal(float64(progression.BaseChatExperience), rec.Fields["experience"].GetNumberValue())
}

func (s *ServiceTestSuite) TestBusyAcrossCalls() {
	begin, err := s.call(v1alpha1.MethodBeginAction, &v1alpha1.Request{PlayerID: "u1"})
	s.Require().NoError(err)
	token := begin.Fields["token"].GetStringValue()
	s.NotEmpty(token)

	daily, err := s.call(v1alpha1.MethodDaily, &v1alpha1.Request{PlayerID: "u1"})
	s.Require().NoError(err)
	s.True(daily.Fields["busy"].GetBoolValue())

	_, err = s.call(v1alpha1.MethodEndAction, &v1alpha1.Request{PlayerID: "u1", Token: token})
	s.Require().NoError(err)

	daily, err = s.call(v1alpha1.MethodDaily, &v1alpha1.Request{PlayerID: "u1"})
	s.Require().NoError(err)
	s.False(daily.Fields["busy"].GetBoolValue())
	s.Equal(float64(1), daily.Fields["streak_after"].GetNumberValue())
}

func (s *ServiceTestSuite) TestInvalidArgumentStatus() {
	_, err := s.call(v1alpha1.MethodGetProfile, &v1alpha1.Request{})
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())
}
