package integration

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/heroiclabs/nakama-go/v2"
)

const (
	ServerKey = "defaultkey"
	Host      = "127.0.0.1"
	Port      = 7350
)

type TestClient struct {
	Client  *nakama.Client
	Session *nakama.Session
	Socket  *nakama.Socket
	UserID  string
}

// requireServer skips the test when no local server is listening.
func requireServer(t *testing.T) {
	t.Helper()
	addr := fmt.Sprintf("%s:%d", Host, Port)
	conn, err := net.DialTimeout("tcp", addr, time.Second)
	if err != nil {
		t.Skipf("no server at %s: %v", addr, err)
	}
	conn.Close()
}

func NewTestClient(t *testing.T) *TestClient {
	client := nakama.NewClient(ServerKey, Host, Port, false)

	// Create unique ID
	deviceID := fmt.Sprintf("test_device_%d", time.Now().UnixNano())

	// Authenticate
	session, err := client.AuthenticateDevice(context.Background(), deviceID, true, "")
	if err != nil {
		t.Fatalf("Failed to authenticate: %v", err)
	}

	// Create Socket
	socket := client.NewSocket()
	if err := socket.Connect(context.Background(), session, true); err != nil {
		t.Fatalf("Failed to connect socket: %v", err)
	}

	return &TestClient{
		Client:  client,
		Session: session,
		Socket:  socket,
		UserID:  session.UserId,
	}
}

func (tc *TestClient) Close() {
	if tc.Socket != nil {
		tc.Socket.Close()
	}
}

// Rpc calls a server RPC and returns the raw response payload.
func (tc *TestClient) Rpc(t *testing.T, id, payload string) string {
	rpc, err := tc.Client.RpcFunc(context.Background(), tc.Session, id, payload)
	if err != nil {
		t.Fatalf("RPC %s failed: %v", id, err)
	}
	return rpc.Payload
}
