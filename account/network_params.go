package account

// Named network ids and their matching chain hex ids and unbonding
// periods, adapted from the way a node's genesis package hardcodes a
// small table of known networks rather than parsing them from config.
const (
	// MainnetChainHexID is the production network's replay-protection id.
	MainnetChainHexID uint8 = 0xab
	// TestnetChainHexID is the public test network's replay-protection id.
	TestnetChainHexID uint8 = 0x42
	// LocalChainHexID is the id used by single-node local networks.
	LocalChainHexID uint8 = 0x00

	// MainnetName, TestnetName, LocalName name the presets below.
	MainnetName = "mainnet"
	TestnetName = "testnet"
	LocalName   = "local"
)

// UnbondingPeriod is a number of seconds a staked account's unbonded
// balance must wait before it becomes withdrawable.
type UnbondingPeriod = uint32

const (
	// MainnetUnbondingPeriod is three weeks, in seconds.
	MainnetUnbondingPeriod UnbondingPeriod = 60 * 60 * 24 * 21
	// TestnetUnbondingPeriod is six hours, in seconds, for faster iteration.
	TestnetUnbondingPeriod UnbondingPeriod = 60 * 60 * 6
	// LocalUnbondingPeriod is sixty seconds, for tests and demos.
	LocalUnbondingPeriod UnbondingPeriod = 60
)

// NetworkParams bundles the two network-wide constants the validation
// engine needs but never derives on its own: the replay-protection id and
// the unbonding period.
type NetworkParams struct {
	Name            string
	ChainHexID      uint8
	UnbondingPeriod UnbondingPeriod
}

var namedNetworks = map[string]NetworkParams{
	MainnetName: {Name: MainnetName, ChainHexID: MainnetChainHexID, UnbondingPeriod: MainnetUnbondingPeriod},
	TestnetName: {Name: TestnetName, ChainHexID: TestnetChainHexID, UnbondingPeriod: TestnetUnbondingPeriod},
	LocalName:   {Name: LocalName, ChainHexID: LocalChainHexID, UnbondingPeriod: LocalUnbondingPeriod},
}

// NetworkParamsByName looks up a hardcoded network preset by name, the ok
// result mirroring a map's comma-ok idiom rather than a sentinel error
// since "unknown network name" is an expected, not exceptional, outcome
// for CLI flag validation.
func NetworkParamsByName(name string) (NetworkParams, bool) {
	params, ok := namedNetworks[name]
	return params, ok
}
