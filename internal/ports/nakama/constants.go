package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a joinable table.
	RpcQuickMatch = "quick_match"

	// MatchNameSkat is the authoritative match handler name registered with Nakama.
	MatchNameSkat = "skat_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame    int64 = 1
	OpPlayerAction int64 = 2

	// Server -> Client events
	OpSnapshot int64 = 101
)
