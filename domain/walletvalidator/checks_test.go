package walletvalidator

import (
	"strings"
	"testing"

	"github.com/turtlecoin/turtled/domain/walletcrypto"
	"github.com/turtlecoin/turtled/domain/walleterrors"
)

func TestValidateHash(t *testing.T) {
	validator, _ := newTestValidator(t)

	tests := []struct {
		name         string
		hash         string
		expectedCode walleterrors.ErrorCode
		valid        bool
	}{
		{name: "valid lowercase", hash: strings.Repeat("0f", 32), valid: true},
		{name: "valid mixed case", hash: strings.Repeat("aB", 32), valid: true},
		{name: "too short", hash: strings.Repeat("f", 63), expectedCode: walleterrors.ErrHashWrongLength},
		{name: "too long", hash: strings.Repeat("f", 65), expectedCode: walleterrors.ErrHashWrongLength},
		{name: "empty", hash: "", expectedCode: walleterrors.ErrHashWrongLength},
		{name: "not hex", hash: strings.Repeat("g", 64), expectedCode: walleterrors.ErrHashInvalid},
	}

	for _, test := range tests {
		err := validator.ValidateHash(test.hash)
		if test.valid {
			if err != nil {
				t.Errorf("TestValidateHash: %s: unexpected error: %v", test.name, err)
			}
			continue
		}
		if !walleterrors.IsErrorCode(err, test.expectedCode) {
			t.Errorf("TestValidateHash: %s: expected %s, got %v", test.name, test.expectedCode, err)
		}
	}
}

func TestValidatePaymentID(t *testing.T) {
	validator, _ := newTestValidator(t)

	if err := validator.ValidatePaymentID(""); err != nil {
		t.Fatalf("TestValidatePaymentID: empty payment ID must be valid, got %v", err)
	}
	if err := validator.ValidatePaymentID(testPaymentID("ab")); err != nil {
		t.Fatalf("TestValidatePaymentID: unexpected error: %v", err)
	}
	if err := validator.ValidatePaymentID("abc"); !walleterrors.IsErrorCode(err, walleterrors.ErrPaymentIDWrongLength) {
		t.Fatalf("TestValidatePaymentID: expected ErrPaymentIDWrongLength, got %v", err)
	}
	if err := validator.ValidatePaymentID(strings.Repeat("z", 64)); !walleterrors.IsErrorCode(err, walleterrors.ErrPaymentIDInvalid) {
		t.Fatalf("TestValidatePaymentID: expected ErrPaymentIDInvalid, got %v", err)
	}
}

func TestValidateMixinBoundaries(t *testing.T) {
	validator, _ := newTestValidator(t)

	tests := []struct {
		name         string
		mixin        uint64
		height       uint64
		expectedCode walleterrors.ErrorCode
		valid        bool
	}{
		// Height 800000 enforces (1, 3).
		{name: "below minimum", mixin: 0, height: 800000, expectedCode: walleterrors.ErrMixinTooSmall},
		{name: "at minimum", mixin: 1, height: 800000, valid: true},
		{name: "at maximum", mixin: 3, height: 800000, valid: true},
		{name: "above maximum", mixin: 4, height: 800000, expectedCode: walleterrors.ErrMixinTooBig},
		// Height 620000 pins the mixin to exactly 7.
		{name: "pinned too small", mixin: 6, height: 620000, expectedCode: walleterrors.ErrMixinTooSmall},
		{name: "pinned exact", mixin: 7, height: 620000, valid: true},
		{name: "pinned too big", mixin: 8, height: 620000, expectedCode: walleterrors.ErrMixinTooBig},
	}

	for _, test := range tests {
		err := validator.ValidateMixin(test.mixin, test.height)
		if test.valid {
			if err != nil {
				t.Errorf("TestValidateMixinBoundaries: %s: unexpected error: %v", test.name, err)
			}
			continue
		}
		if !walleterrors.IsErrorCode(err, test.expectedCode) {
			t.Errorf("TestValidateMixinBoundaries: %s: expected %s, got %v", test.name, test.expectedCode, err)
		}
	}
}

func TestValidateMixinMessageCarriesBounds(t *testing.T) {
	validator, _ := newTestValidator(t)

	err := validator.ValidateMixin(0, 800000)
	if err == nil {
		t.Fatal("TestValidateMixinMessageCarriesBounds: expected an error")
	}
	if !strings.Contains(err.Error(), "(0)") || !strings.Contains(err.Error(), "(1)") {
		t.Fatalf("TestValidateMixinMessageCarriesBounds: message must carry both values, got %q", err.Error())
	}
}

func TestValidateKeys(t *testing.T) {
	validator, _ := newTestValidator(t)

	var smallScalar walletcrypto.SecretKey
	smallScalar[0] = 0x01
	if err := validator.ValidatePrivateKey(smallScalar); err != nil {
		t.Fatalf("TestValidateKeys: unexpected error: %v", err)
	}

	var hugeScalar walletcrypto.SecretKey
	for i := range hugeScalar {
		hugeScalar[i] = 0xff
	}
	if err := validator.ValidatePrivateKey(hugeScalar); !walleterrors.IsErrorCode(err, walleterrors.ErrInvalidPrivateKey) {
		t.Fatalf("TestValidateKeys: expected ErrInvalidPrivateKey, got %v", err)
	}

	if err := validator.ValidatePublicKey(ourSpendKey()); err != nil {
		t.Fatalf("TestValidateKeys: unexpected error: %v", err)
	}

	var notAPoint walletcrypto.PublicKey
	notAPoint[0] = 0x01
	notAPoint[walletcrypto.KeySize-1] = 0x80
	if err := validator.ValidatePublicKey(notAPoint); !walleterrors.IsErrorCode(err, walleterrors.ErrInvalidPublicKey) {
		t.Fatalf("TestValidateKeys: expected ErrInvalidPublicKey, got %v", err)
	}
}

func TestValidateOptimizeTarget(t *testing.T) {
	validator, _ := newTestValidator(t)

	target := func(v uint64) *uint64 { return &v }

	tests := []struct {
		name   string
		target *uint64
		valid  bool
	}{
		{name: "no target", target: nil, valid: true},
		{name: "round magnitude", target: target(20000), valid: true},
		{name: "not round", target: target(23456), valid: false},
		{name: "zero", target: target(0), valid: true},
		{name: "single digit", target: target(7), valid: true},
		{name: "ten", target: target(10), valid: true},
		{name: "eleven", target: target(11), valid: false},
	}

	for _, test := range tests {
		err := validator.ValidateOptimizeTarget(test.target)
		if test.valid && err != nil {
			t.Errorf("TestValidateOptimizeTarget: %s: unexpected error: %v", test.name, err)
		}
		if !test.valid && !walleterrors.IsErrorCode(err, walleterrors.ErrAmountUgly) {
			t.Errorf("TestValidateOptimizeTarget: %s: expected ErrAmountUgly, got %v", test.name, err)
		}
	}
}
