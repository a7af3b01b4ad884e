package crypto

import (
	"bytes"
	"testing"
)

func TestKeccak256EmptyInputHasFixedLength(t *testing.T) {
	if len(Keccak256()) != 32 {
		t.Errorf("Keccak256() length = %d, want 32", len(Keccak256()))
	}
}

func TestKeccak256Length(t *testing.T) {
	if len(Keccak256([]byte("test"))) != 32 {
		t.Errorf("Keccak256 length = %d, want 32", len(Keccak256([]byte("test"))))
	}
}

func TestKeccak256MultipleInputsMatchConcatenation(t *testing.T) {
	a := Keccak256([]byte("hello"), []byte("world"))
	b := Keccak256([]byte("helloworld"))
	if !bytes.Equal(a, b) {
		t.Errorf("Keccak256 multi-input mismatch: %x != %x", a, b)
	}
}

func TestKeccak256Deterministic(t *testing.T) {
	a := Keccak256([]byte("same"))
	b := Keccak256([]byte("same"))
	if !bytes.Equal(a, b) {
		t.Error("Keccak256 not deterministic")
	}
}
