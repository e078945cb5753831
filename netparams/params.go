package netparams

// MixinLimits describes the mixin bounds the network enforces from a given
// height onwards. The mixin is the ring-signature decoy count, so these
// bounds are privacy policy and change across protocol versions.
type MixinLimits struct {
	// ActivationHeight is the first height these bounds apply to.
	ActivationHeight uint64

	// MinMixin is the smallest mixin a transaction may use.
	MinMixin uint64

	// MaxMixin is the largest mixin a transaction may use.
	MaxMixin uint64

	// DefaultMixin is the mixin wallets should use when the user does not
	// choose one.
	DefaultMixin uint64
}

// Params defines a network by its parameters. These parameters may be used
// by applications to differentiate networks as well as addresses and keys
// for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// AddressPrefix is the human-readable marker every textual address on
	// this network starts with.
	AddressPrefix string

	// AddressPrefixTag is the numeric tag that, uvarint-encoded in front
	// of the address payload, produces AddressPrefix under base58.
	AddressPrefixTag uint64

	// StandardAddressLength is the textual length of a standard address.
	StandardAddressLength int

	// IntegratedAddressLength is the textual length of an integrated
	// address, which additionally embeds a payment ID.
	IntegratedAddressLength int

	// PaymentIDLength is the length of a payment ID in hex characters.
	PaymentIDLength int

	// MinimumFeePerByte is the lowest per-byte fee rate the network
	// accepts.
	MinimumFeePerByte float64

	// MixinLimits holds the mixin bounds per protocol version, ordered by
	// ascending activation height. The first entry must activate at
	// height zero.
	MixinLimits []MixinLimits
}

// MixinBounds returns the minimum, maximum and default mixin the network
// allows at the given height. It implements the height-policy oracle the
// validation engine consumes.
func (p *Params) MixinBounds(height uint64) (min, max, def uint64) {
	limits := p.MixinLimits[0]
	for _, candidate := range p.MixinLimits[1:] {
		if candidate.ActivationHeight > height {
			break
		}
		limits = candidate
	}
	return limits.MinMixin, limits.MaxMixin, limits.DefaultMixin
}

// MainnetParams defines the network parameters for the main network.
var MainnetParams = Params{
	Name: "mainnet",

	AddressPrefix:           "TRTL",
	AddressPrefixTag:        3914525,
	StandardAddressLength:   99,
	IntegratedAddressLength: 187,
	PaymentIDLength:         64,

	MinimumFeePerByte: 1.953125,

	MixinLimits: []MixinLimits{
		{ActivationHeight: 0, MinMixin: 0, MaxMixin: 100, DefaultMixin: 3},
		{ActivationHeight: 620000, MinMixin: 7, MaxMixin: 7, DefaultMixin: 7},
		{ActivationHeight: 800000, MinMixin: 1, MaxMixin: 3, DefaultMixin: 3},
	},
}

// SimnetParams defines the network parameters for the simulation test
// network. It shares the mainnet address format so codec fixtures carry
// over, but enforces no fee and a single permissive mixin range, which
// makes it convenient for tests and tooling.
var SimnetParams = Params{
	Name: "simnet",

	AddressPrefix:           "TRTL",
	AddressPrefixTag:        3914525,
	StandardAddressLength:   99,
	IntegratedAddressLength: 187,
	PaymentIDLength:         64,

	MinimumFeePerByte: 0,

	MixinLimits: []MixinLimits{
		{ActivationHeight: 0, MinMixin: 0, MaxMixin: 100, DefaultMixin: 3},
	},
}
