package nakama

const (
	// RpcStartHungerGame is the RPC id clients call to start a simulation
	// in a chat room.
	RpcStartHungerGame = "start_hunger_game"

	// RpcStopHungerGame is the RPC id clients call to cancel the simulation
	// running in a chat room.
	RpcStopHungerGame = "stop_hunger_game"

	// matchCollection is the storage collection holding per-room match
	// records. Records are system-owned.
	matchCollection = "hungergames"

	// streamModeChannel is Nakama's chat channel stream mode; room streams
	// carry the room name as the stream label.
	streamModeChannel uint8 = 2
)
