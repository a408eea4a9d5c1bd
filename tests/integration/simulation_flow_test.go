package integration

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// These tests exercise the registered RPCs against a locally running server.
// They cover the request wiring, not the round loop itself: the RPC caller is
// authenticated but not present in the room channel, so starts are refused.

func TestStartRefusedInEmptyRoom(t *testing.T) {
	requireServer(t)

	client := NewTestClient(t)
	defer client.Close()

	room := fmt.Sprintf("it_room_%d", time.Now().UnixNano())
	payload := fmt.Sprintf(`{"room":%q}`, room)

	resp := client.Rpc(t, "start_hunger_game", payload)
	if resp != `{"started":false}` {
		t.Fatalf("start in an empty room = %s, want a refusal", resp)
	}
}

func TestStopWithoutRunningMatch(t *testing.T) {
	requireServer(t)

	client := NewTestClient(t)
	defer client.Close()

	room := fmt.Sprintf("it_room_%d", time.Now().UnixNano())
	payload := fmt.Sprintf(`{"room":%q}`, room)

	resp := client.Rpc(t, "stop_hunger_game", payload)
	if resp != `{"stopped":false}` {
		t.Fatalf("stop without a match = %s, want stopped=false", resp)
	}
}

func TestStartRejectsInvalidPayload(t *testing.T) {
	requireServer(t)

	client := NewTestClient(t)
	defer client.Close()

	if _, err := client.Client.RpcFunc(context.Background(), client.Session, "start_hunger_game", `{}`); err == nil {
		t.Fatalf("expected an error for a payload without a room")
	}
}
