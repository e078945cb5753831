package wallettypes

// Destination pairs a textual address with the amount to send to it. The
// address may be standard or integrated.
type Destination struct {
	Address string
	Amount  uint64
}

// FeeType selects exactly one of the three fee models a transaction can
// use: a fixed absolute fee, a per-byte rate, or the protocol minimum.
// Construct values with FixedFee, FeePerByte or MinimumFee; the zero value
// selects nothing and is rejected by the validation engine as a programmer
// error.
type FeeType struct {
	isFixedFee   bool
	isFeePerByte bool
	isMinimum    bool

	fixedFee   uint64
	feePerByte float64
}

// FixedFee returns a FeeType charging the given absolute fee.
func FixedFee(fee uint64) FeeType {
	return FeeType{isFixedFee: true, fixedFee: fee}
}

// FeePerByte returns a FeeType charging the given rate per byte of the
// final transaction.
func FeePerByte(rate float64) FeeType {
	return FeeType{isFeePerByte: true, feePerByte: rate}
}

// MinimumFee returns a FeeType charging the lowest fee the network will
// accept for the final transaction.
func MinimumFee() FeeType {
	return FeeType{isMinimum: true}
}

// IsFixedFee returns whether the fixed fee model is selected.
func (f FeeType) IsFixedFee() bool { return f.isFixedFee }

// IsFeePerByte returns whether the per-byte fee model is selected.
func (f FeeType) IsFeePerByte() bool { return f.isFeePerByte }

// IsMinimumFee returns whether the protocol-minimum fee model is selected.
func (f FeeType) IsMinimumFee() bool { return f.isMinimum }

// IsSpecified returns whether any fee model is selected.
func (f FeeType) IsSpecified() bool {
	return f.isFixedFee || f.isFeePerByte || f.isMinimum
}

// FixedFeeAmount returns the absolute fee. Only meaningful when IsFixedFee
// is true.
func (f FeeType) FixedFeeAmount() uint64 { return f.fixedFee }

// FeePerByteRate returns the per-byte rate. Only meaningful when
// IsFeePerByte is true.
func (f FeeType) FeePerByteRate() float64 { return f.feePerByte }
