// Package v1alpha1 handles the pokedex grpc service interface
package v1alpha1

import (
	"context"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/api/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/app"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Service app.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.Service == nil {
		return errors.InvalidArgument("pokedex service is required")
	}
	return nil
}

// Handler implements the pokedex gRPC service
type Handler struct {
	pokedexv1alpha1.UnimplementedPokedexServiceServer
	service app.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		service: cfg.Service,
	}, nil
}

// StartSession opens a session with the default filter
func (h *Handler) StartSession(
	ctx context.Context,
	_ *pokedexv1alpha1.StartSessionRequest,
) (*pokedexv1alpha1.StartSessionResponse, error) {
	output, err := h.service.StartSession(ctx, &app.StartSessionInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pokedexv1alpha1.StartSessionResponse{
		State: StateToProto(output.State),
	}, nil
}

// GetState returns the stored state of a session
func (h *Handler) GetState(
	ctx context.Context,
	req *pokedexv1alpha1.GetStateRequest,
) (*pokedexv1alpha1.GetStateResponse, error) {
	if req.SessionId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	output, err := h.service.GetState(ctx, &app.GetStateInput{SessionID: req.SessionId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pokedexv1alpha1.GetStateResponse{
		State: StateToProto(output.State),
	}, nil
}

// EndSession discards a session
func (h *Handler) EndSession(
	ctx context.Context,
	req *pokedexv1alpha1.EndSessionRequest,
) (*pokedexv1alpha1.EndSessionResponse, error) {
	if req.SessionId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	if _, err := h.service.EndSession(ctx, &app.EndSessionInput{SessionID: req.SessionId}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pokedexv1alpha1.EndSessionResponse{}, nil
}

// SubmitSearch looks up a pokemon by name or number. A miss is not an RPC
// error; it comes back as state with an error message and no pokemon.
func (h *Handler) SubmitSearch(
	ctx context.Context,
	req *pokedexv1alpha1.SubmitSearchRequest,
) (*pokedexv1alpha1.SubmitSearchResponse, error) {
	if req.SessionId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	output, err := h.service.SubmitSearch(ctx, &app.SubmitSearchInput{
		SessionID: req.SessionId,
		Query:     req.Query,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pokedexv1alpha1.SubmitSearchResponse{
		State:      StateToProto(output.State),
		Superseded: output.Superseded,
	}, nil
}

// ChangeGeneration switches the generation filter
func (h *Handler) ChangeGeneration(
	ctx context.Context,
	req *pokedexv1alpha1.ChangeGenerationRequest,
) (*pokedexv1alpha1.ChangeGenerationResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("session_id", req.SessionId, vb)
	errors.ValidateRequired("generation", req.Generation, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.service.ChangeGeneration(ctx, &app.ChangeGenerationInput{
		SessionID:  req.SessionId,
		Generation: pokedex.ParseGeneration(req.Generation),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pokedexv1alpha1.ChangeGenerationResponse{
		State:      StateToProto(output.State),
		Superseded: output.Superseded,
	}, nil
}

// ChangeMethodFilter switches the learn method filter
func (h *Handler) ChangeMethodFilter(
	ctx context.Context,
	req *pokedexv1alpha1.ChangeMethodFilterRequest,
) (*pokedexv1alpha1.ChangeMethodFilterResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("session_id", req.SessionId, vb)
	errors.ValidateRequired("method", req.Method, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.service.ChangeMethodFilter(ctx, &app.ChangeMethodFilterInput{
		SessionID: req.SessionId,
		Method:    pokedex.ParseFilterMethod(req.Method),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pokedexv1alpha1.ChangeMethodFilterResponse{
		State:      StateToProto(output.State),
		Superseded: output.Superseded,
	}, nil
}
