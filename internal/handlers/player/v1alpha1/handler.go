// Package v1alpha1 exposes the player flows as a gRPC service
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-player/internal/entities/rpg"
	"github.com/KirkDiggler/rpg-player/internal/errors"
	"github.com/KirkDiggler/rpg-player/internal/orchestrators/profile"
)

// HandlerConfig holds dependencies for the player handler
type HandlerConfig struct {
	ProfileService profile.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.ProfileService == nil {
		return errors.InvalidArgument("profile service is required")
	}
	return nil
}

// Handler implements PlayerServiceServer
type Handler struct {
	profiles profile.Service
}

var _ PlayerServiceServer = (*Handler)(nil)

// NewHandler creates a new player handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Handler{profiles: cfg.ProfileService}, nil
}

// unary decodes the request, runs fn and encodes its result. Every error
// leaves as a gRPC status.
func unary(msg *structpb.Struct, fn func(req *Request) (any, error)) (*structpb.Struct, error) {
	var req Request
	if err := decode(msg, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	resp, err := fn(&req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	out, err := encode(resp)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

// GetProfile returns a player's profile, creating a default one on first sight
func (h *Handler) GetProfile(ctx context.Context, msg *structpb.Struct) (*structpb.Struct, error) {
	return unary(msg, func(req *Request) (any, error) {
		out, err := h.profiles.GetProfile(ctx, &profile.GetProfileInput{PlayerID: req.PlayerID})
		if err != nil {
			return nil, err
		}
		return map[string]any{"profile": toProfile(out.Profile)}, nil
	})
}

// Chat grants chat experience
func (h *Handler) Chat(ctx context.Context, msg *structpb.Struct) (*structpb.Struct, error) {
	return unary(msg, func(req *Request) (any, error) {
		out, err := h.profiles.Chat(ctx, &profile.ChatInput{PlayerID: req.PlayerID})
		if err != nil {
			return nil, err
		}
		return toChat(out), nil
	})
}

// Daily claims the daily reward
func (h *Handler) Daily(ctx context.Context, msg *structpb.Struct) (*structpb.Struct, error) {
	return unary(msg, func(req *Request) (any, error) {
		out, err := h.profiles.Daily(ctx, &profile.DailyInput{PlayerID: req.PlayerID})
		if err != nil {
			return nil, err
		}
		return toDaily(out), nil
	})
}

// GiveReputation gives target_id one reputation point from player_id
func (h *Handler) GiveReputation(ctx context.Context, msg *structpb.Struct) (*structpb.Struct, error) {
	return unary(msg, func(req *Request) (any, error) {
		out, err := h.profiles.GiveReputation(ctx, &profile.GiveReputationInput{
			PlayerID: req.PlayerID,
			TargetID: req.TargetID,
		})
		if err != nil {
			return nil, err
		}
		return &reputationJSON{
			Busy:                out.Busy,
			SelfTargeted:        out.SelfTargeted,
			CooldownRemainingMS: millis(out.CooldownRemaining),
			TargetReputation:    out.TargetReputation,
		}, nil
	})
}

// Limitbreak trades the level cap for a prestige
func (h *Handler) Limitbreak(ctx context.Context, msg *structpb.Struct) (*structpb.Struct, error) {
	return unary(msg, func(req *Request) (any, error) {
		out, err := h.profiles.Limitbreak(ctx, &profile.LimitbreakInput{
			PlayerID:    req.PlayerID,
			ActionToken: req.ActionToken,
		})
		if err != nil {
			return nil, err
		}
		resp := &choiceJSON{Busy: out.Busy, Success: out.Success, Profile: toProfile(out.Profile)}
		if !out.Busy {
			resp.Before = toLevelStats(&out.Before)
		}
		return resp, nil
	})
}

// ChangePath picks or switches the player's path
func (h *Handler) ChangePath(ctx context.Context, msg *structpb.Struct) (*structpb.Struct, error) {
	return unary(msg, func(req *Request) (any, error) {
		if req.Path == "" {
			return nil, errors.InvalidArgument("path is required")
		}
		out, err := h.profiles.ChangePath(ctx, &profile.ChangePathInput{
			PlayerID:    req.PlayerID,
			Path:        rpg.Path(req.Path),
			ActionToken: req.ActionToken,
		})
		if err != nil {
			return nil, err
		}
		return &choiceJSON{
			Busy:    out.Busy,
			Success: out.Success,
			Reclass: out.Reclass,
			Profile: toProfile(out.Profile),
		}, nil
	})
}

// AddClass equips a class in the next open slot
func (h *Handler) AddClass(ctx context.Context, msg *structpb.Struct) (*structpb.Struct, error) {
	return unary(msg, func(req *Request) (any, error) {
		if req.Class == "" {
			return nil, errors.InvalidArgument("class is required")
		}
		out, err := h.profiles.AddClass(ctx, &profile.AddClassInput{
			PlayerID:    req.PlayerID,
			Class:       rpg.Class(req.Class),
			AdminTier:   rpg.ParseAdminTier(req.AdminTier),
			ActionToken: req.ActionToken,
		})
		if err != nil {
			return nil, err
		}
		return &choiceJSON{Busy: out.Busy, Success: out.Success, Profile: toProfile(out.Profile)}, nil
	})
}

// ChangeClass replaces the class in a slot
func (h *Handler) ChangeClass(ctx context.Context, msg *structpb.Struct) (*structpb.Struct, error) {
	return unary(msg, func(req *Request) (any, error) {
		if req.Class == "" {
			return nil, errors.InvalidArgument("class is required")
		}
		out, err := h.profiles.ChangeClass(ctx, &profile.ChangeClassInput{
			PlayerID:    req.PlayerID,
			Class:       rpg.Class(req.Class),
			Slot:        req.Slot,
			AdminTier:   rpg.ParseAdminTier(req.AdminTier),
			ActionToken: req.ActionToken,
		})
		if err != nil {
			return nil, err
		}
		return &choiceJSON{Busy: out.Busy, Success: out.Success, Profile: toProfile(out.Profile)}, nil
	})
}

// SetLevelPing toggles level-up notifications
func (h *Handler) SetLevelPing(ctx context.Context, msg *structpb.Struct) (*structpb.Struct, error) {
	return unary(msg, func(req *Request) (any, error) {
		out, err := h.profiles.SetLevelPing(ctx, &profile.SetLevelPingInput{
			PlayerID: req.PlayerID,
			Ping:     req.Ping,
		})
		if err != nil {
			return nil, err
		}
		return map[string]any{"busy": out.Busy}, nil
	})
}

// BeginAction takes the action lock and returns its token
func (h *Handler) BeginAction(ctx context.Context, msg *structpb.Struct) (*structpb.Struct, error) {
	return unary(msg, func(req *Request) (any, error) {
		out, err := h.profiles.BeginAction(ctx, &profile.BeginActionInput{PlayerID: req.PlayerID})
		if err != nil {
			return nil, err
		}
		return map[string]any{"busy": out.Busy, "token": out.Token}, nil
	})
}

// EndAction releases the action lock held under token
func (h *Handler) EndAction(ctx context.Context, msg *structpb.Struct) (*structpb.Struct, error) {
	return unary(msg, func(req *Request) (any, error) {
		out, err := h.profiles.EndAction(ctx, &profile.EndActionInput{
			PlayerID: req.PlayerID,
			Token:    req.Token,
		})
		if err != nil {
			return nil, err
		}
		return map[string]any{"released": out.Released}, nil
	})
}

// ClearLock drops the action lock regardless of holder
func (h *Handler) ClearLock(ctx context.Context, msg *structpb.Struct) (*structpb.Struct, error) {
	return unary(msg, func(req *Request) (any, error) {
		out, err := h.profiles.ClearLock(ctx, &profile.ClearLockInput{PlayerID: req.PlayerID})
		if err != nil {
			return nil, err
		}
		return map[string]any{"was_locked": out.WasLocked}, nil
	})
}

// DeleteProfile removes the player from the cache and the store
func (h *Handler) DeleteProfile(ctx context.Context, msg *structpb.Struct) (*structpb.Struct, error) {
	return unary(msg, func(req *Request) (any, error) {
		out, err := h.profiles.DeleteProfile(ctx, &profile.DeleteProfileInput{
			PlayerID:    req.PlayerID,
			ActionToken: req.ActionToken,
		})
		if err != nil {
			return nil, err
		}
		return map[string]any{"busy": out.Busy}, nil
	})
}
