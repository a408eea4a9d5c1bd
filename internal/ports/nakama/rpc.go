package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"hungergames/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// startRequest is the payload for both simulation RPCs.
type startRequest struct {
	Room string `json:"room"`
}

// startResponse reports whether a simulation was kicked off. Refused starts
// are not errors for the caller; the simulation just does not announce.
type startResponse struct {
	Started bool `json:"started"`
}

// stopResponse reports whether a cancellation actually took effect.
type stopResponse struct {
	Stopped bool `json:"stopped"`
}

// registerRPCs wires the simulation RPCs onto the given orchestrator.
func registerRPCs(initializer runtime.Initializer, svc *app.Service) error {
	if err := initializer.RegisterRpc(RpcStartHungerGame, func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		return rpcStartHungerGame(ctx, logger, svc, payload)
	}); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcStopHungerGame, func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		return rpcStopHungerGame(ctx, logger, svc, payload)
	})
}

func rpcStartHungerGame(ctx context.Context, logger runtime.Logger, svc *app.Service, payload string) (string, error) {
	room, err := parseRoom(payload)
	if err != nil {
		return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
	}

	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	resp := startResponse{Started: true}
	if err := svc.StartSimulation(ctx, room); err != nil {
		// Refusals stay silent in the room; only the caller learns
		// that nothing started.
		logger.Info("StartHungerGame [User:%s]: refused for room %q: %v", userID, room, err)
		resp.Started = false
	} else {
		logger.Info("StartHungerGame [User:%s]: simulation started in room %q", userID, room)
	}

	return marshalResponse(resp)
}

func rpcStopHungerGame(ctx context.Context, logger runtime.Logger, svc *app.Service, payload string) (string, error) {
	room, err := parseRoom(payload)
	if err != nil {
		return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
	}

	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	stopped := svc.CancelSimulation(ctx, room)
	logger.Info("StopHungerGame [User:%s]: room %q stopped=%v", userID, room, stopped)

	return marshalResponse(stopResponse{Stopped: stopped})
}

// parseRoom extracts and validates the room name from an RPC payload.
func parseRoom(payload string) (string, error) {
	var req startRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", fmt.Errorf("failed to unmarshal request: %w", err)
	}
	if req.Room == "" {
		return "", errors.New("room is required")
	}
	return req.Room, nil
}

func marshalResponse(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", runtime.NewError("Internal error", 13) // INTERNAL
	}
	return string(b), nil
}
