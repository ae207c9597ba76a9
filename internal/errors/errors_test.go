package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-player/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	err := errors.NotFound("player not found")
	s.Equal("NOT_FOUND: player not found", err.Error())
	s.Equal(errors.CodeNotFound, err.Code)
}

func (s *ErrorsTestSuite) TestWrapKeepsCode() {
	base := errors.NotFoundf("player %s not found", "u1").WithMeta("player_id", "u1")
	wrapped := errors.Wrap(base, "loading profile")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("u1", wrapped.Meta["player_id"])
	s.True(errors.IsNotFound(wrapped))
	s.ErrorIs(wrapped, base)
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	wrapped := errors.Wrap(fmt.Errorf("boom"), "failed")
	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Contains(wrapped.Error(), "boom")
	s.Nil(errors.Wrap(nil, "nothing"))
}

func (s *ErrorsTestSuite) TestPersistence() {
	err := errors.Persistence(fmt.Errorf("connection refused"), "failed to load player %s", "u1")

	s.True(errors.IsPersistence(err))
	s.True(errors.IsUnavailable(err))
	s.False(errors.IsInvariant(err))
	s.Equal("failed to load player u1", errors.GetMessage(err))
}

func (s *ErrorsTestSuite) TestInvariant() {
	err := errors.Invariantf("class %s not allowed on path %s", "Priest", "Warrior")

	s.True(errors.IsInvariant(err))
	s.True(errors.IsInternal(err))
	s.True(errors.IsInvariant(errors.Wrap(err, "computing growths")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(errors.InvalidArgument("bad")))
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	testCases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{name: "not found", err: errors.NotFound("x"), code: codes.NotFound},
		{name: "unavailable", err: errors.Unavailablef("store %s down", "redis"), code: codes.Unavailable},
		{name: "invalid argument", err: errors.InvalidArgument("x"), code: codes.InvalidArgument},
		{name: "plain", err: fmt.Errorf("x"), code: codes.Internal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			st, ok := status.FromError(errors.ToGRPCError(tc.err))
			s.True(ok)
			s.Equal(tc.code, st.Code())
		})
	}

	s.Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	original := errors.FailedPrecondition("player is busy").WithMeta("player_id", "u1")

	back := errors.FromGRPCError(errors.ToGRPCError(original))

	s.True(errors.IsFailedPrecondition(back))
	s.Equal("player is busy", errors.GetMessage(back))
	s.Equal("u1", errors.GetMeta(back)["player_id"])
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	s.NoError(errors.NewValidationBuilder().Build())

	err := errors.NewValidationBuilder().
		RequiredField("Repository").
		Positive("IdleTTL", 0).
		OneOf("StoreBackend", "mongo", "redis", "sqlite", "memory").
		Build()

	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Repository: is required")
	s.Contains(err.Error(), "IdleTTL: must be positive")
	s.Contains(err.Error(), "StoreBackend: must be one of: redis, sqlite, memory")
}
