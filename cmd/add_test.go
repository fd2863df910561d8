package cmd

import (
	"testing"

	"github.com/drajat/kasharian"
)

func TestTransferFlag(t *testing.T) {
	var flags transferFlag

	if err := flags.Set("500000:BCA"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := flags.Set("1.250.000:Mandiri"); err != nil {
		t.Fatalf("Set with grouped digits failed: %v", err)
	}
	if err := flags.Set("250000"); err != nil {
		t.Fatalf("Set without a bank failed: %v", err)
	}

	want := []kasharian.Transfer{
		{Amount: 500000, Bank: "BCA"},
		{Amount: 1250000, Bank: "Mandiri"},
		{Amount: 250000, Bank: ""},
	}
	if len(flags) != len(want) {
		t.Fatalf("got %d transfers, want %d", len(flags), len(want))
	}
	for i := range want {
		if flags[i] != want[i] {
			t.Errorf("transfer %d = %+v, want %+v", i, flags[i], want[i])
		}
	}
}

func TestTransferFlagRejectsEmptyAmount(t *testing.T) {
	var flags transferFlag
	if err := flags.Set(":BCA"); err == nil {
		t.Error("Set with no amount should fail")
	}
	if err := flags.Set("abc:BCA"); err == nil {
		t.Error("Set with a non-numeric amount should fail")
	}
}
