package walletvalidator

import (
	"testing"

	"github.com/turtlecoin/turtled/domain/walleterrors"
	"github.com/turtlecoin/turtled/domain/wallettypes"
)

func TestValidateAddresses(t *testing.T) {
	validator, _ := newTestValidator(t)

	if err := validator.ValidateAddresses([]string{ourAddress(), foreignAddress()}, false); err != nil {
		t.Fatalf("TestValidateAddresses: unexpected error: %v", err)
	}

	integrated := integratedAddress(t, testPaymentID("ab"))
	if err := validator.ValidateAddresses([]string{integrated}, true); err != nil {
		t.Fatalf("TestValidateAddresses: unexpected error: %v", err)
	}
	if err := validator.ValidateAddresses([]string{integrated}, false); !walleterrors.IsErrorCode(err, walleterrors.ErrAddressIsIntegrated) {
		t.Fatalf("TestValidateAddresses: expected ErrAddressIsIntegrated, got %v", err)
	}

	// The first failing address decides the result.
	err := validator.ValidateAddresses([]string{"TRTLbogus", ourAddress()}, false)
	if !walleterrors.IsErrorCode(err, walleterrors.ErrAddressWrongLength) {
		t.Fatalf("TestValidateAddresses: expected ErrAddressWrongLength, got %v", err)
	}
}

func TestValidateOurAddresses(t *testing.T) {
	validator, _ := newTestValidator(t)

	if err := validator.ValidateOurAddresses([]string{ourAddress()}); err != nil {
		t.Fatalf("TestValidateOurAddresses: unexpected error: %v", err)
	}

	err := validator.ValidateOurAddresses([]string{foreignAddress()})
	if !walleterrors.IsErrorCode(err, walleterrors.ErrAddressNotInWallet) {
		t.Fatalf("TestValidateOurAddresses: expected ErrAddressNotInWallet, got %v", err)
	}

	// Integrated addresses can never name a sub-wallet.
	err = validator.ValidateOurAddresses([]string{integratedAddress(t, testPaymentID("ab"))})
	if !walleterrors.IsErrorCode(err, walleterrors.ErrAddressIsIntegrated) {
		t.Fatalf("TestValidateOurAddresses: expected ErrAddressIsIntegrated, got %v", err)
	}
}

func TestValidateDestinations(t *testing.T) {
	validator, _ := newTestValidator(t)

	err := validator.ValidateDestinations(nil)
	if !walleterrors.IsErrorCode(err, walleterrors.ErrNoDestinationsGiven) {
		t.Fatalf("TestValidateDestinations: expected ErrNoDestinationsGiven, got %v", err)
	}

	err = validator.ValidateDestinations([]wallettypes.Destination{
		{Address: foreignAddress(), Amount: 0},
	})
	if !walleterrors.IsErrorCode(err, walleterrors.ErrAmountIsZero) {
		t.Fatalf("TestValidateDestinations: expected ErrAmountIsZero, got %v", err)
	}

	err = validator.ValidateDestinations([]wallettypes.Destination{
		{Address: foreignAddress(), Amount: 100},
		{Address: integratedAddress(t, testPaymentID("ab")), Amount: 50},
	})
	if err != nil {
		t.Fatalf("TestValidateDestinations: unexpected error: %v", err)
	}
}

func TestValidateIntegratedAddresses(t *testing.T) {
	validator, _ := newTestValidator(t)

	pidA, pidB := testPaymentID("aa"), testPaymentID("bb")
	integratedA := wallettypes.Destination{Address: integratedAddress(t, pidA), Amount: 1}
	integratedA2 := wallettypes.Destination{Address: integratedAddress(t, pidA), Amount: 2}
	integratedB := wallettypes.Destination{Address: integratedAddress(t, pidB), Amount: 3}
	standard := wallettypes.Destination{Address: foreignAddress(), Amount: 4}

	tests := []struct {
		name         string
		destinations []wallettypes.Destination
		paymentID    string
		valid        bool
	}{
		{name: "no integrated destinations", destinations: []wallettypes.Destination{standard}, valid: true},
		{name: "single integrated", destinations: []wallettypes.Destination{integratedA, standard}, valid: true},
		{name: "two agreeing integrated", destinations: []wallettypes.Destination{integratedA, integratedA2}, valid: true},
		{name: "two conflicting integrated", destinations: []wallettypes.Destination{integratedA, integratedB}},
		{name: "supplied payment ID agrees", destinations: []wallettypes.Destination{integratedA}, paymentID: pidA, valid: true},
		{name: "supplied payment ID conflicts", destinations: []wallettypes.Destination{integratedA}, paymentID: pidB},
	}

	for _, test := range tests {
		err := validator.ValidateIntegratedAddresses(test.destinations, test.paymentID)
		if test.valid {
			if err != nil {
				t.Errorf("TestValidateIntegratedAddresses: %s: unexpected error: %v", test.name, err)
			}
			continue
		}
		if !walleterrors.IsErrorCode(err, walleterrors.ErrConflictingPaymentIDs) {
			t.Errorf("TestValidateIntegratedAddresses: %s: expected ErrConflictingPaymentIDs, got %v", test.name, err)
		}
	}
}
